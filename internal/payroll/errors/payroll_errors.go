package payrollerrors

import (
	"net/http"

	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"invalid year",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"excel or csv file is required",
		http.StatusBadRequest,
	)
	ErrUnsupportedFile = apperror.New(
		apperror.CodeInvalidInput,
		"unsupported file format, upload .xlsx or .csv",
		http.StatusBadRequest,
	)
	ErrUnreadableFile = apperror.New(
		apperror.CodeInvalidInput,
		"file could not be read as a spreadsheet",
		http.StatusBadRequest,
	)
	ErrNoValidRows = apperror.New(
		apperror.CodeInvalidInput,
		"no valid payroll rows found, check the email column",
		http.StatusBadRequest,
	)
	ErrSalaryHidden = apperror.New(
		apperror.CodeForbidden,
		"salary details are not available",
		http.StatusForbidden,
	)
	ErrPendingUpload = apperror.New(
		apperror.CodeNotFound,
		"manual payroll for this cycle has not been uploaded yet",
		http.StatusNotFound,
	)
)

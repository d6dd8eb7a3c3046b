package requesterrors

import (
	"net/http"

	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"
)

var (
	ErrInvalidKind = apperror.New(
		apperror.CodeInvalidInput,
		"kind must be LEAVE, PERMISSION, SITE_VISIT or SHOWROOM_VISIT",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidRequestID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid request id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_date must not be before start_date",
		http.StatusBadRequest,
	)
	ErrInvalidTimeRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_time must be after start_time",
		http.StatusBadRequest,
	)
	ErrReportingBhNotAssigned = apperror.New(
		apperror.CodeInvalidInput,
		"reporting business head not assigned",
		http.StatusBadRequest,
	)
	ErrRequesterNotFound = apperror.New(
		apperror.CodeNotFound,
		"requester not found",
		http.StatusNotFound,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"request not found",
		http.StatusNotFound,
	)
	ErrInvalidCycle = apperror.New(
		apperror.CodeInvalidInput,
		"month must be 1-12 and year must be valid",
		http.StatusBadRequest,
	)
)

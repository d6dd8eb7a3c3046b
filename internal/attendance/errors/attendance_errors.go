package attendanceerrors

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
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"to must not be before from",
		http.StatusBadRequest,
	)
	ErrInvalidBreakType = apperror.New(
		apperror.CodeInvalidInput,
		"break_type must be TEA, LUNCH, CLIENT_MEETING, BH_MEETING or OTHER",
		http.StatusBadRequest,
	)
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"attendance already marked for today",
		http.StatusConflict,
	)
	ErrNotCheckedIn = apperror.New(
		apperror.CodeInvalidState,
		"no attendance record found for today",
		http.StatusConflict,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeInvalidState,
		"already checked out",
		http.StatusConflict,
	)
	ErrBreakAlreadyOpen = apperror.New(
		apperror.CodeInvalidState,
		"a break is already in progress",
		http.StatusConflict,
	)
	ErrNoOpenBreak = apperror.New(
		apperror.CodeInvalidState,
		"no break in progress",
		http.StatusConflict,
	)
)

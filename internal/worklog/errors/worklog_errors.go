package worklogerrors

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
	ErrInvalidPayload = apperror.New(
		apperror.CodeInvalidInput,
		"payload must be a JSON object or a list of JSON objects",
		http.StatusBadRequest,
	)
	ErrInvalidMetrics = apperror.New(
		apperror.CodeInvalidInput,
		"metrics must be a JSON object",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"to must not be before from",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
	ErrWorkLogNotFound = apperror.New(
		apperror.CodeNotFound,
		"no work log for today",
		http.StatusNotFound,
	)
	ErrWorkLogClosed = apperror.New(
		apperror.CodeInvalidState,
		"today's work log is already closed",
		http.StatusConflict,
	)
)

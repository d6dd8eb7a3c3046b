package wfherrors

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
	ErrInvalidWfhID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid wfh request id",
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
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be APPROVED or REJECTED",
		http.StatusBadRequest,
	)
	ErrWfhDisabled = apperror.New(
		apperror.CodeForbidden,
		"WFH requests are currently disabled for your account",
		http.StatusForbidden,
	)
	ErrWrongLevel = apperror.New(
		apperror.CodeForbidden,
		"not authorized for this level of approval",
		http.StatusForbidden,
	)
	ErrWfhNotFound = apperror.New(
		apperror.CodeNotFound,
		"wfh request not found",
		http.StatusNotFound,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"user not found",
		http.StatusNotFound,
	)
)

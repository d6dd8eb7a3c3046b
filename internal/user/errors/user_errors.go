package usererrors

import (
	"net/http"

	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrUserAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"User with the same email already exists",
		http.StatusConflict,
	)

	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role",
		http.StatusBadRequest,
	)

	ErrInvalidBusinessHead = apperror.New(
		apperror.CodeInvalidInput,
		"Reporting business head must have role BUSINESS_HEAD or AE_MANAGER",
		http.StatusBadRequest,
	)

	ErrSelfReporting = apperror.New(
		apperror.CodeInvalidInput,
		"User cannot report to themselves",
		http.StatusBadRequest,
	)

	ErrInvalidDeduction = apperror.New(
		apperror.CodeInvalidInput,
		"Cycle-specific deductions need a month (1-12) and year, and amounts must not be negative",
		http.StatusBadRequest,
	)

	ErrNegativeSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Salary figures must not be negative",
		http.StatusBadRequest,
	)
)

var ErrInvalidStatus = apperror.New(
	apperror.CodeInvalidInput,
	"Status must be ACTIVE or BLOCKED",
	http.StatusBadRequest,
)

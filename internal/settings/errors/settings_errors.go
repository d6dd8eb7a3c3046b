package settingserrors

import (
	"net/http"

	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"
)

var (
	ErrUnknownKey = apperror.New(
		apperror.CodeInvalidInput,
		"unknown setting key",
		http.StatusBadRequest,
	)
	ErrInvalidValue = apperror.New(
		apperror.CodeInvalidInput,
		"invalid value for setting",
		http.StatusBadRequest,
	)
)

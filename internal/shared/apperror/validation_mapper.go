package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// break_type -> Break Type
func formatFieldName(s string) string {
	return titleCaser.String(strings.ReplaceAll(s, "_", " "))
}

// MapValidationError mengubah error binding menjadi AppError. Pesan diambil dari
// field pertama yang gagal; seluruh field yang gagal dikirim sebagai details.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	details := make(map[string]string, len(errs))
	for _, fe := range errs {
		details[fe.Field()] = fe.Tag()
	}

	e := errs[0]
	field := formatFieldName(e.Field())

	var appErr *AppError
	switch e.Tag() {
	case "required":
		appErr = RequiredField(field)
	case "oneof":
		appErr = New(
			CodeInvalidInput,
			fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(e.Param(), " ", ", ")),
			http.StatusBadRequest,
		)
	default:
		appErr = InvalidField(field)
	}
	return appErr.WithDetails(details)
}

package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		err := apperror.New(apperror.CodeConflict, "already decided", http.StatusConflict)
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
		assert.Equal(t, "already decided", got.Message)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		err := fmt.Errorf("act on request: %w", apperror.ErrForbidden)
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusForbidden, got.Status)
		assert.Equal(t, apperror.CodeForbidden, got.Code)
	})

	t.Run("plain error is internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
	})
}

func TestFieldErrors(t *testing.T) {
	assert.Equal(t, "Start Date is required", apperror.RequiredField("Start Date").Message)
	assert.Equal(t, "Email is invalid", apperror.InvalidField("Email").Message)
}

func TestWithDetails(t *testing.T) {
	sentinel := apperror.New(apperror.CodeInvalidState, "request already decided", http.StatusConflict)
	withDetails := sentinel.WithDetails(map[string]string{"status": "APPROVED"})

	assert.Nil(t, sentinel.Details)
	assert.ErrorIs(t, withDetails, sentinel)
	assert.ErrorIs(t, fmt.Errorf("act: %w", withDetails), sentinel)
	assert.NotErrorIs(t, withDetails, apperror.ErrForbidden)

	got := apperror.ToHTTP(withDetails)
	assert.Equal(t, map[string]string{"status": "APPROVED"}, got.Details)
}

type breakInput struct {
	BreakType string `json:"break_type" validate:"required,oneof=TEA LUNCH"`
	Note      string `json:"note" validate:"max=5"`
}

func validate(t *testing.T, in breakInput) error {
	t.Helper()
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	err := v.Struct(in)
	require.Error(t, err)
	return err
}

func TestMapValidationError(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.MapValidationError(validate(t, breakInput{})))
		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, "Break Type is required", got.Message)
	})

	t.Run("oneof lists allowed values", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.MapValidationError(validate(t, breakInput{BreakType: "NAP"})))
		assert.Equal(t, "Break Type must be one of: TEA, LUNCH", got.Message)
	})

	t.Run("all failed fields in details", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.MapValidationError(validate(t, breakInput{BreakType: "NAP", Note: "too long"})))
		assert.Equal(t, map[string]string{"break_type": "oneof", "note": "max"}, got.Details)
	})

	t.Run("non validation error", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.MapValidationError(errors.New("EOF")))
		assert.Equal(t, "Invalid input", got.Message)
		assert.Nil(t, got.Details)
	})
}

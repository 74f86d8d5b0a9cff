package models

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDomainErrorTaxonomy(t *testing.T) {
	cases := []struct {
		err        *DomainError
		code       ErrorCode
		statusCode int
	}{
		{NewValidationError("invalid"), ErrCodeValidationFailed, fiber.StatusUnprocessableEntity},
		{NewBadRequestError("bad"), ErrCodeValidationFailed, fiber.StatusBadRequest},
		{NewNotFoundError("missing"), ErrCodeNotFound, fiber.StatusNotFound},
		{NewConflictError("conflict"), ErrCodeConflict, fiber.StatusConflict},
		{NewPreconditionError("stale"), ErrCodePreconditionFailed, fiber.StatusPreconditionFailed},
	}
	for _, tc := range cases {
		require.Equal(t, tc.code, tc.err.Code)
		require.Equal(t, tc.statusCode, tc.err.StatusCode)
	}
}

func TestAsDomainError(t *testing.T) {
	t.Run(`доменная ошибка распознаётся и через wrap`, func(t *testing.T) {
		wrapped := errors.Wrap(NewNotFoundError("missing"), "контекст")
		domainErr, ok := AsDomainError(wrapped)
		require.Equal(t, true, ok)
		require.Equal(t, ErrCodeNotFound, domainErr.Code)
	})

	t.Run(`прочие ошибки - нет`, func(t *testing.T) {
		_, ok := AsDomainError(errors.New("boom"))
		require.Equal(t, false, ok)
	})
}

func TestValidationDetails(t *testing.T) {
	err := NewValidationError("upload request is not valid",
		FieldDetail{Field: "file_name", Message: "File name is required"},
		FieldDetail{Field: "mime_type", Message: "Mime type is required"},
	)
	require.Equal(t, 2, len(err.Details))
	require.Equal(t, "file_name", err.Details[0].Field)
	require.Equal(t, "upload request is not valid", err.Error())
}

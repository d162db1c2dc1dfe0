package util

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewForbidden("insufficient role")

	mapped := ToDomainError(original)
	require.NotNil(t, mapped)
	assert.Equal(t, "FORBIDDEN", mapped.Code)
	assert.Equal(t, http.StatusForbidden, mapped.HTTPStatus)
}

func TestToDomainErrorNoRows(t *testing.T) {
	mapped := ToDomainError(pgx.ErrNoRows)
	require.NotNil(t, mapped)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)
}

func TestToDomainErrorHidesInternalDetail(t *testing.T) {
	cause := errors.New("pq: connection refused host=10.0.0.1 dsn=postgres://user:secret@db")

	mapped := ToDomainError(cause)
	require.NotNil(t, mapped)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusInternalServerError, mapped.HTTPStatus)
	// the caller-facing message never carries driver detail
	assert.Equal(t, "internal server error", mapped.Message)
	// but the cause stays wrapped for logging
	assert.ErrorIs(t, mapped, cause)
}

func TestToDomainErrorFiberError(t *testing.T) {
	mapped := ToDomainError(fiber.ErrNotFound)
	require.NotNil(t, mapped)
	assert.Equal(t, "NOT_FOUND", mapped.Code)
	assert.Equal(t, http.StatusNotFound, mapped.HTTPStatus)

	mapped = ToDomainError(fiber.NewError(http.StatusMethodNotAllowed, "Method Not Allowed"))
	require.NotNil(t, mapped)
	assert.Equal(t, "METHOD_NOT_ALLOWED", mapped.Code)
	assert.Equal(t, http.StatusMethodNotAllowed, mapped.HTTPStatus)

	// 5xx fiber errors stay generic toward callers
	mapped = ToDomainError(fiber.NewError(http.StatusBadGateway, "upstream exploded at 10.0.0.1"))
	require.NotNil(t, mapped)
	assert.Equal(t, "INTERNAL_ERROR", mapped.Code)
	assert.Equal(t, http.StatusBadGateway, mapped.HTTPStatus)
	assert.Equal(t, "internal server error", mapped.Message)
}

func TestNewValidationErrorCarriesDetails(t *testing.T) {
	err := NewValidationError("title exceeds maximum length", map[string]any{"max_length": 200})

	mapped := ToDomainError(err)
	require.NotNil(t, mapped)
	assert.Equal(t, "VALIDATION_FAILED", mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
	assert.Equal(t, 200, mapped.Details["max_length"])
}

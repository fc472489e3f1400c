package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_IsMatchesByCode(t *testing.T) {
	err := ErrFetch.WithMessage("Failed to fetch mosques: %d %s", 500, "Internal Server Error")

	assert.True(t, Is(err, ErrFetch))
	assert.False(t, Is(err, ErrNotFound))
	assert.Equal(t, "Failed to fetch mosques: 500 Internal Server Error", err.Message)
	assert.Equal(t, "Failed to fetch data", ErrFetch.Message, "sentinel must not be mutated")
}

func TestAppError_WrapKeepsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := fmt.Errorf("list mosques: %w", ErrFetch.Wrap(cause))

	assert.True(t, stderrors.Is(err, cause))
	assert.True(t, stderrors.Is(err, ErrFetch))

	appErr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, appErr.StatusCode)
	assert.Contains(t, appErr.Error(), "connection refused")
}

func TestAppError_WithDetailsCopies(t *testing.T) {
	err := ErrInvalidRequest.WithDetails(map[string]interface{}{"field": "city"})

	assert.Equal(t, "city", err.Details["field"])
	assert.Nil(t, ErrInvalidRequest.Details)
}

func TestAs_PlainError(t *testing.T) {
	_, ok := As(stderrors.New("plain"))
	assert.False(t, ok)
}

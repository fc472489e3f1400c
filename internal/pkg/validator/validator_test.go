package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manara-web/internal/pkg/errors"
)

type sample struct {
	Query  string `json:"q" validate:"max=5"`
	CityID *int   `json:"city" validate:"omitempty,min=0"`
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateRequest(&sample{Query: "abc"}))
	})

	t.Run("invalid fields reported by json name", func(t *testing.T) {
		city := -1
		err := ValidateRequest(&sample{Query: "too long", CityID: &city})
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInvalidRequest))

		appErr, ok := errors.As(err)
		require.True(t, ok)
		assert.Equal(t, "max", appErr.Details["q"])
		assert.Equal(t, "min", appErr.Details["city"])
	})
}

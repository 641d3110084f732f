package errdefs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	t.Run("plain message", func(t *testing.T) {
		err := NewCustomError(ErrTypeInvalidScreen, "invalid screen 7")
		assert.EqualError(t, err, "invalid screen 7")
		assert.True(t, IsType(err, ErrTypeInvalidScreen))
		assert.False(t, IsType(err, ErrTypeGeneric))
	})

	t.Run("wrapped cause", func(t *testing.T) {
		cause := errors.New("unexpected end of input")
		err := Wrap(ErrTypeCatalogParse, "parsing catalog", cause)
		assert.EqualError(t, err, "parsing catalog: unexpected end of input")
		assert.ErrorIs(t, err, cause)
	})

	t.Run("type survives fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("startup: %w", NewCustomError(ErrTypeNotTerminal, "stdin is not a terminal"))
		assert.True(t, IsType(err, ErrTypeNotTerminal))
	})

	t.Run("foreign errors have no type", func(t *testing.T) {
		assert.False(t, IsType(errors.New("boom"), ErrTypeGeneric))
		assert.False(t, IsType(nil, ErrTypeGeneric))
	})
}

func TestErrorTypeString(t *testing.T) {
	assert.Equal(t, "unhandled-key", ErrTypeUnhandledKey.String())
	assert.Equal(t, "generic", ErrorType(99).String())
}

package e

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_KeepsSentinel(t *testing.T) {
	err := Wrap("CartUseCase.Add", Wrap("inner", ErrInvalidQuantity))

	assert.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, "CartUseCase.Add: inner: quantity must be at least 1", err.Error())
	assert.False(t, errors.Is(err, ErrEmptyCart))
}

package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email  string  `json:"email" validate:"required,email"`
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"gt=0"`
	Role   string  `json:"role,omitempty" validate:"omitempty,oneof=a b"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	err := Struct(sample{Email: "not-an-email", Role: "c"})
	require.Error(t, err)

	var vErr *Error
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "email must be a valid email", vErr.Fields["email"])
	assert.Equal(t, "name is required", vErr.Fields["name"])
	assert.Equal(t, "amount must be greater than 0", vErr.Fields["amount"])
	assert.Equal(t, "role must be one of: a b", vErr.Fields["role"])
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(sample{Email: "a@b.co", Name: "n", Amount: 1}))
}

func TestNewError(t *testing.T) {
	err := NewError("role", "role is invalid")
	assert.Equal(t, map[string]string{"role": "role is invalid"}, err.Fields)
	assert.Equal(t, "validation failed", err.Error())
}

package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	Left  string `validate:"required"`
	Right string `validate:"omitempty,oneof=a b"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(pair{Left: "x", Right: "a"}))
	require.NoError(t, Struct(pair{Left: "x"}))

	err := Struct(pair{Right: "c"})
	require.Error(t, err)
	fe, ok := First(err)
	require.True(t, ok)
	assert.Equal(t, "Left", fe.StructField())
	assert.Equal(t, "required", fe.Tag())
}

func TestFirst_OtherErrors(t *testing.T) {
	_, ok := First(assert.AnError)
	assert.False(t, ok)
	_, ok = First(nil)
	assert.False(t, ok)
}

type span struct {
	From, To int
}

func TestRegisterStructValidation(t *testing.T) {
	RegisterStructValidation(func(sl validator.StructLevel) {
		s := sl.Current().Interface().(span)
		if s.To < s.From {
			sl.ReportError(s.To, "To", "To", "gtefrom", "")
		}
	}, span{})

	require.NoError(t, Struct(span{From: 1, To: 2}))
	fe, ok := First(Struct(span{From: 3, To: 2}))
	require.True(t, ok)
	assert.Equal(t, "gtefrom", fe.Tag())
}

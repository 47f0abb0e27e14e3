package generator

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestClampBoxSize(t *testing.T) {
	assert.Equal(t, 40, ClampBoxSize(100))
	assert.Equal(t, 2, ClampBoxSize(0))
	assert.Equal(t, 2, ClampBoxSize(-5))
	assert.Equal(t, 10, ClampBoxSize(10))
	assert.Equal(t, 40, ClampBoxSize(40))
}

func TestClampBorder(t *testing.T) {
	assert.Equal(t, 0, ClampBorder(-1))
	assert.Equal(t, 10, ClampBorder(11))
	assert.Equal(t, 4, ClampBorder(4))
	assert.Equal(t, 0, ClampBorder(0))
}

func TestGenerationRequest_Options(t *testing.T) {
	tests := []struct {
		name string
		req  GenerationRequest
		want Options
	}{
		{"defaults", GenerationRequest{}, Options{BoxSize: 10, Border: 4}},
		{"box size too large", GenerationRequest{BoxSize: NewIntParam(100)}, Options{BoxSize: 40, Border: 4}},
		{"box size zero", GenerationRequest{BoxSize: NewIntParam(0)}, Options{BoxSize: 2, Border: 4}},
		{"negative border", GenerationRequest{Border: NewIntParam(-1)}, Options{BoxSize: 10, Border: 0}},
		{"explicit zero border", GenerationRequest{Border: NewIntParam(0)}, Options{BoxSize: 10, Border: 0}},
		{"in range", GenerationRequest{BoxSize: NewIntParam(7), Border: NewIntParam(2)}, Options{BoxSize: 7, Border: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Options())
		})
	}
}

func TestIntParam_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"integer", `12`, 12},
		{"negative", `-3`, -3},
		{"integral float", `10.0`, 10},
		{"exponent", `4e1`, 40},
		{"huge integer", `100000000000000000000`, math.MaxInt},
		{"huge negative integer", `-100000000000000000000`, math.MinInt},
		{"huge exponent", `1e20`, math.MaxInt},
		{"beyond float range", `1e400`, math.MaxInt},
		{"huge negative exponent", `-1e400`, math.MinInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p IntParam
			require.NoError(t, json.Unmarshal([]byte(tt.in), &p))
			assert.Equal(t, tt.want, int(p))
		})
	}
}

func TestIntParam_UnmarshalJSONRejectsNonIntegers(t *testing.T) {
	for _, in := range []string{`"10"`, `"big"`, `true`, `[1]`, `{}`, `10.5`, `-0.25`} {
		t.Run(in, func(t *testing.T) {
			var p IntParam
			err := json.Unmarshal([]byte(in), &p)
			assert.ErrorIs(t, err, ErrNotInteger)
		})
	}
}

func TestGenerationRequest_DecodeSaturatesThenClamps(t *testing.T) {
	// Arrange
	body := `{"text":"hi","box_size":1e20,"border":-100000000000000000000}`

	// Act
	var req GenerationRequest
	err := json.Unmarshal([]byte(body), &req)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, req.BoxSize)
	require.NotNil(t, req.Border)
	assert.Equal(t, Options{BoxSize: MaxBoxSize, Border: MinBorder}, req.Options())
}

func TestGenerationRequest_DecodeNullLeavesDefaults(t *testing.T) {
	var req GenerationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"text":"hi","box_size":null,"border":null}`), &req))

	assert.Nil(t, req.BoxSize)
	assert.Nil(t, req.Border)
	assert.Equal(t, DefaultOptions(), req.Options())
}

func TestDefaultOptions(t *testing.T) {
	assert.Equal(t, Options{BoxSize: DefaultBoxSize, Border: DefaultBorder}, DefaultOptions())
	assert.Equal(t, DefaultOptions(), DefaultOptions().Normalize())
}

func TestValidateText(t *testing.T) {
	text, err := ValidateText("  hello world \n")
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)

	_, err = ValidateText("")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = ValidateText(" \t\n ")
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = ValidateText(strings.Repeat("a", MaxTextLength+1))
	assert.ErrorIs(t, err, ErrTextTooLong)

	text, err = ValidateText(strings.Repeat("a", MaxTextLength))
	require.NoError(t, err)
	assert.Len(t, text, MaxTextLength)

	// Length is counted in characters, not bytes.
	_, err = ValidateText(strings.Repeat("é", MaxTextLength))
	assert.NoError(t, err)

	// Surrounding whitespace does not count towards the bound.
	_, err = ValidateText("  " + strings.Repeat("a", MaxTextLength) + "  ")
	assert.NoError(t, err)
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrEmptyText))
	assert.True(t, IsValidationError(ErrTextTooLong))
	assert.False(t, IsValidationError(assert.AnError))
	assert.False(t, IsValidationError(nil))
}

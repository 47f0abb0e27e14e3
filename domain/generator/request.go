package generator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/prasetyowira/qrbadge/constant"
)

// Request limits and defaults.
const (
	MaxTextLength = 2000

	DefaultBoxSize = 10
	MinBoxSize     = 2
	MaxBoxSize     = 40

	DefaultBorder = 4
	MinBorder     = 0
	MaxBorder     = 10
)

var (
	// ErrEmptyText is returned when the text is missing or only whitespace.
	ErrEmptyText = errors.New(constant.ErrEmptyText)
	// ErrTextTooLong is returned when the trimmed text exceeds MaxTextLength characters.
	ErrTextTooLong = errors.New(constant.ErrTextTooLong)
	// ErrNotInteger is returned when a numeric field holds a non-number or a fraction.
	ErrNotInteger = errors.New(constant.ErrNotInteger)
)

// IntParam is an optional integer request field. It takes any JSON number
// without a fractional part (10, 10.0, 1e20) and saturates values outside
// the int range, leaving the final clamp to ClampBoxSize and ClampBorder.
type IntParam int

// NewIntParam returns a pointer suitable for a GenerationRequest field.
func NewIntParam(n int) *IntParam {
	p := IntParam(n)
	return &p
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *IntParam) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}
	if v == nil {
		return nil
	}
	num, ok := v.(json.Number)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotInteger, data)
	}

	n, err := parseSaturated(num.String())
	if err != nil {
		return err
	}
	*p = IntParam(n)
	return nil
}

func parseSaturated(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 0)
	if err == nil {
		return int(n), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return math.MinInt, nil
		}
		return math.MaxInt, nil
	}

	// Exponent or decimal point; ParseFloat yields ±Inf on overflow.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s", ErrNotInteger, s)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %s", ErrNotInteger, s)
	}
	switch {
	case f >= math.MaxInt:
		return math.MaxInt, nil
	case f <= math.MinInt:
		return math.MinInt, nil
	}
	return int(f), nil
}

// GenerationRequest is the body of a generate call. Optional fields are
// pointers so that an absent value picks up its default while an explicit
// value (including zero) is clamped.
type GenerationRequest struct {
	Text     string    `json:"text"`
	Initials *string   `json:"initials,omitempty"`
	BoxSize  *IntParam `json:"box_size,omitempty"`
	Border   *IntParam `json:"border,omitempty"`
}

// Options are the rasterization parameters after defaults and clamps.
type Options struct {
	// BoxSize is the pixel width of one module, in [MinBoxSize, MaxBoxSize].
	BoxSize int
	// Border is the quiet zone width in modules, in [MinBorder, MaxBorder].
	Border int
}

// DefaultOptions returns the options used when a request sets nothing.
func DefaultOptions() Options {
	return Options{BoxSize: DefaultBoxSize, Border: DefaultBorder}
}

// Options resolves the request's optional numeric fields.
func (r GenerationRequest) Options() Options {
	opts := DefaultOptions()
	if r.BoxSize != nil {
		opts.BoxSize = int(*r.BoxSize)
	}
	if r.Border != nil {
		opts.Border = int(*r.Border)
	}
	return opts.Normalize()
}

// Normalize clamps both fields into their safe ranges.
func (o Options) Normalize() Options {
	return Options{
		BoxSize: ClampBoxSize(o.BoxSize),
		Border:  ClampBorder(o.Border),
	}
}

// ClampBoxSize clamps n into [MinBoxSize, MaxBoxSize].
func ClampBoxSize(n int) int {
	return clamp(n, MinBoxSize, MaxBoxSize)
}

// ClampBorder clamps n into [MinBorder, MaxBorder].
func ClampBorder(n int) int {
	return clamp(n, MinBorder, MaxBorder)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// ValidateText trims text and rejects it when empty or longer than
// MaxTextLength characters.
func ValidateText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", ErrEmptyText
	}
	if utf8.RuneCountInString(trimmed) > MaxTextLength {
		return "", ErrTextTooLong
	}
	return trimmed, nil
}

// IsValidationError reports whether err means the caller sent bad input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyText) || errors.Is(err, ErrTextTooLong)
}

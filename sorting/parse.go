package sorting

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidInput is matched (via errors.Is) by every parse failure.
var ErrInvalidInput = errors.New("sorting: invalid input")

// InvalidInputError reports the first element that is not a valid int.
type InvalidInputError struct {
	// Index is the zero-based position of the element in the input.
	Index int

	// Token is the raw element text.
	Token string
}

// Error implements the error interface.
func (e *InvalidInputError) Error() string {
	// Example: sorting: invalid input at index 2: "x1"
	return ErrInvalidInput.Error() + " at index " + strconv.Itoa(e.Index) + ": " + strconv.Quote(e.Token)
}

// Is lets errors.Is(err, ErrInvalidInput) match.
func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// ParseSequence parses ints separated by commas and/or whitespace.
//
// "31, 22,13 43" yields [31 22 13 43]. Blank input yields an empty sequence.
// Empty elements ("1,,2") and non-integers are rejected; the whole input is
// validated before anything is returned.
func ParseSequence(s string) (Sequence, error) {
	if strings.TrimSpace(s) == "" {
		return Sequence{}, nil
	}

	parts := strings.Split(s, ",")
	out := make(Sequence, 0, len(parts))
	idx := 0
	for _, part := range parts {
		fields := strings.FieldsFunc(part, unicode.IsSpace)
		if len(fields) == 0 {
			return nil, &InvalidInputError{Index: idx, Token: part}
		}
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, &InvalidInputError{Index: idx, Token: f}
			}
			out = append(out, v)
			idx++
		}
	}
	return out, nil
}

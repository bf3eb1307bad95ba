package query

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Validation constants to bound parser work on hostile input
const (
	// MaxQueryLength is the maximum allowed query text length (1MB)
	MaxQueryLength = 1024 * 1024

	// MaxTokens is the maximum number of tokens in one query text
	MaxTokens = 100000
)

var (
	// ErrUnknownField is returned when a clause names a field outside the registry
	ErrUnknownField = errors.New("unknown field")

	// ErrInvalidOperator is returned when a clause operator is not one of > >= < <= == !=
	ErrInvalidOperator = errors.New("invalid operator")

	// ErrInvalidNumericLiteral is returned when a clause value is not a float literal
	ErrInvalidNumericLiteral = errors.New("invalid numeric literal")

	// ErrMalformedClause is returned when a clause is not exactly three tokens
	ErrMalformedClause = errors.New("malformed clause")

	// ErrQueryTooLong is returned when query text exceeds MaxQueryLength
	ErrQueryTooLong = errors.New("query too long")

	// ErrTooManyTokens is returned when query text has more than MaxTokens tokens
	ErrTooManyTokens = errors.New("too many tokens in query")
)

// decimalLiteralChars are the only characters a numeric value may contain.
// This leaves out nan, inf, digit separators and hex floats.
const decimalLiteralChars = "0123456789+-.e"

// ParseNumericLiteral parses a decimal float literal such as 120, -6.5 or
// 1e3. The result is always finite.
func ParseNumericLiteral(token string) (float64, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidNumericLiteral)
	}
	for _, c := range strings.ToLower(token) {
		if !strings.ContainsRune(decimalLiteralChars, c) {
			return 0, fmt.Errorf("%w: %s", ErrInvalidNumericLiteral, token)
		}
	}

	value, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumericLiteral, token)
	}
	return value, nil
}

// ValidateQuery checks the raw query text length
func ValidateQuery(text string) error {
	if len(text) > MaxQueryLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrQueryTooLong, len(text), MaxQueryLength)
	}
	return nil
}

// ValidateTokens checks the token count
func ValidateTokens(tokens []string) error {
	if len(tokens) > MaxTokens {
		return fmt.Errorf("%w: %d tokens (max %d)", ErrTooManyTokens, len(tokens), MaxTokens)
	}
	return nil
}

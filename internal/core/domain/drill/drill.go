/*
Package drill defines the domain vocabulary shared by every exercise:
the sentinel errors, the method selector used to pick an implementation
variant, and the numeric type constraints.
*/
package drill

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrInvalidDomain is returned when an argument lies outside the domain of an
// operation, such as a non-positive operand or a digit outside 0..9.
var ErrInvalidDomain = errors.New("argument outside operation domain")

// ErrInsufficientInput is returned when a sequence is too short for an operation.
var ErrInsufficientInput = errors.New("insufficient input")

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Integer is any built-in integer type.
type Integer interface {
	constraints.Integer
}

/*
Method selects which variant of an exercise runs. Every exercise ships a
reference variant that mirrors the straightforward solution and a fast
variant with better complexity. Both must always agree.
*/
type Method string

const (
	MethodFast      Method = "fast"
	MethodReference Method = "reference"
)

// ParseMethod converts user input into a Method. Empty input yields MethodFast.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case "", MethodFast:
		return MethodFast, nil
	case MethodReference:
		return MethodReference, nil
	default:
		return "", fmt.Errorf("unknown method %q (want %q or %q)", s, MethodFast, MethodReference)
	}
}

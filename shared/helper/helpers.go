package helper

import (
	"fmt"
)

var ErrArgIndex = fmt.Errorf("argument index out of range")

// GetTypedValueOf safely asserts the result of a getter function to the expected type T.
// Returns an error if type assertion fails.
func GetTypedValueOf[T any](getFn func() (any, error)) (T, error) {
	var zero T

	res, err := getFn()
	if err != nil {
		return zero, fmt.Errorf("failed to get value: %w", err)
	}

	val, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected type: %T", res)
	}

	return val, nil
}

// TypedArg returns the positional argument at idx asserted to T.
// A nil argument is accepted when T is an interface type.
func TypedArg[T any](args []any, idx int) (T, error) {
	var zero T
	if idx >= 0 && idx < len(args) && args[idx] == nil && any(zero) == nil {
		return zero, nil
	}
	return GetTypedValueOf[T](func() (any, error) {
		if idx < 0 || idx >= len(args) {
			return nil, fmt.Errorf("%w: %d of %d", ErrArgIndex, idx, len(args))
		}
		return args[idx], nil
	})
}

// MustTypedArg is the panic-on-failure variant of TypedArg.
// Use when the arity and types are fixed by a typed wrapper.
func MustTypedArg[T any](args []any, idx int) T {
	res, err := TypedArg[T](args, idx)
	if err != nil {
		panic(err)
	}
	return res
}

// Package reduce folds sequences from left to right.
//
// Every function consumes its sequence exactly once, in order, so single-pass
// sources such as channels wrapped in an iter.Seq are fine. A drained sequence
// is not restarted; fold again over a fresh one.
package reduce

import (
	"errors"
	"iter"
	"slices"
)

var ErrEmptySequence = errors.New("reduce of empty sequence with no initial value")

// Reduce folds seq with op.
//
// Without initial, the first element seeds the accumulator and an empty seq
// yields ErrEmptySequence. With initial, an empty seq returns initial unchanged.
// Passing more than one initial value panics.
func Reduce[T any](op func(T, T) T, seq iter.Seq[T], initial ...T) (T, error) {
	var acc T
	seeded := false
	switch len(initial) {
	case 0:
	case 1:
		acc, seeded = initial[0], true
	default:
		panic("reduce: only one or zero initial values allowed")
	}

	for v := range seq {
		if !seeded {
			acc, seeded = v, true
			continue
		}
		acc = op(acc, v)
	}
	if !seeded {
		return acc, ErrEmptySequence
	}
	return acc, nil
}

// Fold folds seq into an accumulator of a different type, starting at initial.
func Fold[T, A any](op func(A, T) A, seq iter.Seq[T], initial A) A {
	acc := initial
	for v := range seq {
		acc = op(acc, v)
	}
	return acc
}

func ReduceSlice[T any](op func(T, T) T, s []T, initial ...T) (T, error) {
	return Reduce(op, slices.Values(s), initial...)
}

func FoldSlice[T, A any](op func(A, T) A, s []T, initial A) A {
	return Fold(op, slices.Values(s), initial)
}

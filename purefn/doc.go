// Package purefn provides memoization for pure functions.
//
// Cached is not just a utility to add memoization.
// It is a tool that *forces the developer to ask*:
//
//	→ "Is this function really pure?"
//	→ "Can this computation be treated as a lazy table?"
//
// The centerpiece is Cached, which remembers one result per distinct tuple of
// positional arguments. A tuple is compared element by element with ==, in order,
// so f(1, 2) and f(2, 1) are separate entries even when f is commutative.
// Pointers compare by identity. NaN compares unequal to itself, so a NaN argument
// misses on every call and each call leaves one more unreachable entry behind.
//
// Features:
//   - Wrap / Cached: unbounded memoizer for func(args ...any) (R, error).
//   - Clear: the only way entries leave the table.
//   - TableizeI1O1 to TableizeI4O1, TableizeI1O2, TableizeI2O2: typed memoizers for common arities.
//   - TableizeI1E, TableizeI2E: typed memoizers for errorable functions.
//   - Shared: the same contract behind sharded locks, for use across goroutines.
//
// Failures are never remembered: when the target returns an error, the next call
// with the same arguments runs the target again.
//
// Keyword arguments have no place in the key. Bind them beforehand with the
// partial package and wrap the result.
//
// WARNING: Do not memoize impure functions (e.g., those depending on time, I/O, etc).
// Arguments must be hashable; a slice, map or func argument yields ErrUnhashableKey.
package purefn

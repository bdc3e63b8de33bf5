package validate

import (
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/exp/constraints"
)

// formatValue renders a compared value for a message: strings quoted,
// everything else in its %v form.
func formatValue(x any) string {
	if s, ok := x.(string); ok {
		return strconv.Quote(s)
	}
	return fmt.Sprintf("%v", x)
}

// Eq passes iff a == b.
func Eq[T comparable](a, b T) Result {
	if a == b {
		return Success("Elements are equal")
	}
	return Failure("Elements are not equal")
}

// Neq passes iff a != b.
func Neq[T comparable](a, b T) Result {
	if a != b {
		return Success("Elements are unequal")
	}
	return Failuref("Elements are not unequal: %s != %s", formatValue(a), formatValue(b))
}

// Lt passes iff a < b.
func Lt[T constraints.Ordered](a, b T) Result {
	if a < b {
		return Success("Comparison satisfied")
	}
	return Failuref("Comparison failed: %s >= %s", formatValue(a), formatValue(b))
}

// Lte passes iff a <= b.
func Lte[T constraints.Ordered](a, b T) Result {
	if a <= b {
		return Success("Comparison satisfied")
	}
	return Failuref("Comparison failed: %s > %s", formatValue(a), formatValue(b))
}

// Gt passes iff a > b.
func Gt[T constraints.Ordered](a, b T) Result {
	if a > b {
		return Success("Comparison satisfied")
	}
	return Failuref("Comparison failed: %s <= %s", formatValue(a), formatValue(b))
}

// Gte passes iff a >= b.
func Gte[T constraints.Ordered](a, b T) Result {
	if a >= b {
		return Success("Comparison satisfied")
	}
	return Failuref("Comparison failed: %s < %s", formatValue(a), formatValue(b))
}

// Between passes iff x lies in [low, high].
func Between[T constraints.Ordered](x, low, high T) Result {
	interval := "[" + formatValue(low) + ", " + formatValue(high) + "]"
	if x < low {
		return Failuref("Value does not lie in %s: %s < %s", interval, formatValue(x), formatValue(low))
	}
	if x > high {
		return Failuref("Value does not lie in %s: %s > %s", interval, formatValue(x), formatValue(high))
	}
	return Successf("Value (x = %s) lies in %s", formatValue(x), interval)
}

// All applies predicate to every element, short-circuiting at the first
// failure and wrapping its message with the failing 0-based index.
func All[T any](v []T, predicate func(T) Result) Result {
	for i, x := range v {
		if res := predicate(x); res.Failed() {
			return Failuref("Failed check for element %d: %s", i, res.Message())
		}
	}
	return Success("Property satisfied by all elements")
}

// AllBetween requires every element of v to lie in [low, high].
func AllBetween[T constraints.Ordered](v []T, low, high T) Result {
	return All(v, func(x T) Result { return Between(x, low, high) })
}

// Distinct fails iff any value occurs more than once. The failure names one
// duplicated value; which one is unspecified when there are several.
func Distinct[T constraints.Ordered](v []T) Result {
	s := slices.Clone(v)
	slices.Sort(s)
	for i := 0; i+1 < len(s); i++ {
		if s[i] == s[i+1] {
			return Failuref("Elements are not distinct: Multiple occurrences of %s", formatValue(s[i]))
		}
	}
	return Success("Elements are distinct")
}

// Sorted checks that v is ordered: increasing by default, decreasing when
// the flag is set, with equal neighbors forbidden iff strict.
func Sorted[T constraints.Ordered](v []T, strict, decreasing bool) Result {
	return SortedFunc(v, func(a, b T) bool {
		if decreasing {
			a, b = b, a
		}
		if strict {
			return a < b
		}
		return a <= b
	})
}

// SortedFunc checks that every adjacent pair satisfies compare, reporting
// the first offending positions otherwise.
func SortedFunc[T any](v []T, compare func(a, b T) bool) Result {
	for i := 0; i+1 < len(v); i++ {
		if !compare(v[i], v[i+1]) {
			return Failuref("Array is not sorted: Wrong order at positions %d and %d", i, i+1)
		}
	}
	return Success("Array is sorted")
}

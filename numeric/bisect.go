package numeric

import "cmp"

// BisectLeft returns the insertion point for x in the ascending slice a,
// placed before any entries equal to x.
func BisectLeft[T cmp.Ordered](a []T, x T) int {
	lo, hi := 0, len(a)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp.Less(a[mid], x) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// BisectRight returns the insertion point for x in the ascending slice a,
// placed after any entries equal to x.
func BisectRight[T cmp.Ordered](a []T, x T) int {
	lo, hi := 0, len(a)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp.Less(x, a[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// BisectCenter returns the index of the element of a closest to x.
// An empty slice yields 0.
func BisectCenter(a []float64, x float64) int {
	i := BisectLeft(a, x)
	if i > 0 && i < len(a) && x-a[i-1] < a[i]-x {
		return i - 1
	}
	if i == len(a) && i > 0 {
		return i - 1
	}
	return i
}

// Bisector searches a slice of arbitrary elements through a key accessor.
type Bisector[E any, K cmp.Ordered] struct {
	Key func(E) K
}

// Left is BisectLeft over Key(a[i]).
func (b Bisector[E, K]) Left(a []E, x K) int {
	lo, hi := 0, len(a)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp.Less(b.Key(a[mid]), x) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// Right is BisectRight over Key(a[i]).
func (b Bisector[E, K]) Right(a []E, x K) int {
	lo, hi := 0, len(a)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp.Less(x, b.Key(a[mid])) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// Ascending is a three-way comparator; NaN sorts before every other value.
func Ascending[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

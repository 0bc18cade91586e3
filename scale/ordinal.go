package scale

import (
	"reflect"
	"sync"
)

// Ordinal maps discrete keys onto range values by index, cycling through
// the range when there are more keys than values.
//
// Implicit mode (the default): an unseen key is appended to the domain on
// first lookup and gets the next index, so lookup order decides colors for
// keys nobody declared. With an explicit unknown (WithUnknown or
// SetUnknown) unseen keys yield that value and the domain never grows.
type Ordinal[K comparable, R any] struct {
	mu       sync.RWMutex
	keys     []K
	index    map[K]int
	rng      []R
	unknown  R
	implicit bool
}

// NewOrdinal returns an ordinal scale. Duplicate domain keys keep their
// first position.
func NewOrdinal[K comparable, R any](domain []K, rng []R, opts ...Option) *Ordinal[K, R] {
	o := gatherOptions(opts)
	var zero R
	s := &Ordinal[K, R]{
		rng:      append([]R(nil), rng...),
		unknown:  unknownAs(o, zero),
		implicit: !o.hasUnknown,
	}
	s.setDomain(domain)
	return s
}

func (s *Ordinal[K, R]) setDomain(domain []K) {
	s.keys = make([]K, 0, len(domain))
	s.index = make(map[K]int, len(domain))
	for _, k := range domain {
		s.intern(k)
	}
}

// hashable reports whether k can key a map. K may be an interface type
// whose dynamic value is a slice, map or func.
func hashable[K comparable](k K) bool {
	v := any(k)
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}

// intern returns the index of k, appending it when unseen. Unhashable keys
// are never interned and yield -1.
func (s *Ordinal[K, R]) intern(k K) int {
	if !hashable(k) {
		return -1
	}
	if i, ok := s.index[k]; ok {
		return i
	}
	i := len(s.keys)
	s.keys = append(s.keys, k)
	s.index[k] = i
	return i
}

// Map returns range[index(k) mod len(range)]. An empty range or a key that
// cannot be hashed yields the unknown value.
func (s *Ordinal[K, R]) Map(k K) R {
	if !hashable(k) {
		return s.Unknown()
	}
	s.mu.RLock()
	i, ok := s.index[k]
	if ok || !s.implicit {
		defer s.mu.RUnlock()
		if !ok || len(s.rng) == 0 {
			return s.unknown
		}
		return s.rng[i%len(s.rng)]
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.implicit {
		return s.unknown
	}
	i = s.intern(k)
	if len(s.rng) == 0 {
		return s.unknown
	}
	return s.rng[i%len(s.rng)]
}

// Lookup is Map without implicit growth: ok is false for unseen keys.
func (s *Ordinal[K, R]) Lookup(k K) (R, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !hashable(k) {
		return s.unknown, false
	}
	i, ok := s.index[k]
	if !ok || len(s.rng) == 0 {
		return s.unknown, false
	}
	return s.rng[i%len(s.rng)], true
}

// Domain returns the keys in index order. It never grows the domain.
func (s *Ordinal[K, R]) Domain() []K {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]K(nil), s.keys...)
}

// SetDomain replaces the keys, dropping duplicates after their first
// occurrence.
func (s *Ordinal[K, R]) SetDomain(domain []K) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setDomain(domain)
}

func (s *Ordinal[K, R]) Range() []R {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]R(nil), s.rng...)
}

func (s *Ordinal[K, R]) SetRange(rng []R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = append([]R(nil), rng...)
}

// Implicit reports whether unseen keys extend the domain.
func (s *Ordinal[K, R]) Implicit() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.implicit
}

// SetImplicit restores implicit domain growth.
func (s *Ordinal[K, R]) SetImplicit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero R
	s.implicit, s.unknown = true, zero
}

func (s *Ordinal[K, R]) Unknown() R {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unknown
}

// SetUnknown sets an explicit unknown value and disables implicit growth.
func (s *Ordinal[K, R]) SetUnknown(v R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.implicit, s.unknown = false, v
}

func (s *Ordinal[K, R]) Copy() *Ordinal[K, R] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := &Ordinal[K, R]{
		rng:      append([]R(nil), s.rng...),
		unknown:  s.unknown,
		implicit: s.implicit,
	}
	out.setDomain(s.keys)
	return out
}

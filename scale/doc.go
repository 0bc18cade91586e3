// SPDX-License-Identifier: MIT

// Package scale maps abstract data domains onto visual ranges: pixels,
// colors, categorical buckets.
//
// 🚀 Kinds
//
//	Continuous   Linear, Log, Pow, Sqrt, Symlog, Identity, Time, UTC
//	Color        Sequential, Diverging (any Transform), SequentialQuantile
//	Discretizing Quantize, Quantile, Threshold
//	Discrete     Ordinal, Band, Point
//
// Every kind has a typed constructor (NewLinear, NewBand, ...) and is also
// reachable by name through Make, which accepts loosely typed domains and
// ranges the way a declarative chart spec supplies them:
//
//	s, err := scale.Make("log", []any{1, 1000}, []any{0, 300}, scale.WithBase(10))
//	if err != nil { ... }               // ErrDomainTooShort, ErrUnknownKind, ...
//	y := s.Map(100)                     // 200
//	if t, ok := s.(scale.Ticker); ok {  // optional capabilities
//	    _ = t.Ticks(5)
//	}
//
// ✨ Semantics
//
//   - Continuous scales transform the domain (log, pow, symlog), blend
//     linearly between the bracketing stops and invert exactly:
//     Invert(Map(x)) ≈ x for non-clamped scales.
//   - Nice rounds only the outer stops; Ticks are exact multiples of the
//     step chosen by the ticks package.
//   - Missing, NaN or non-coercible inputs yield the scale's unknown value
//     (WithUnknown); numeric typed scales default to NaN, dynamic ones to
//     nil. Configuration mistakes are errors at construction time.
//
// ⚙️ Concurrency
//
// Scales guard their state with a sync.RWMutex. Mapping and getters run
// concurrently; setters (SetDomain, Nice, ...) serialise and rebuild the
// cached mapping before releasing the lock. Ordinal lookups that grow the
// domain take the write lock. Getters return copies, so callers never alias
// a scale's internal slices. Copy gives an independent scale.
package scale

// Package numeric holds the small arithmetic kernel every other lvscale
// package leans on: interpolation primitives, saturation, ordered
// bisection and explicit value coercion.
//
// 🚀 What lives here?
//
//	• Lerp / RoundLerp       a + t·(b−a), optionally rounded to an integer
//	• Clamp / Normalize      saturation and inverse-lerp helpers
//	• BisectLeft/Right/Center  binary search over ascending slices
//	• ToNumber / ToTime      fallible coercion from arbitrary values
//
// ✨ Coercion policy:
//
//	Nothing in this package panics on bad data. Values that cannot be turned
//	into a finite number are reported through the boolean of ToNumber, and
//	scales translate that into their configured "unknown" output. NaN is
//	propagated, never invented.
//
// ⚙️ Usage:
//
//	y := numeric.Lerp(0, 100, 0.25)          // 25
//	i := numeric.BisectRight(stops, x)       // insertion point after equal keys
//	v, ok := numeric.ToNumber("42.5")        // 42.5, true
package numeric

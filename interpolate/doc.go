// Package interpolate builds interpolators: functions of t ∈ [0, 1] that
// blend two (or more) endpoint values.
//
// 🚀 Laws every interpolator here obeys:
//
//	f := X(a, b)
//	f(0) == a, f(1) == b       (up to the representation of the output type)
//	X(a, a)(t) == a            for every t
//
// ✨ Families:
//
//	Number, Round, Hue, NumberArray, Date         scalar and temporal values
//	RGB, RGBGamma, HSL(Long), Lab, HCL(Long),
//	Cubehelix(Long/Gamma), RGBBasis(Closed)       colors in a chosen space
//	String                                       numbers embedded in text
//	Array, Object                                recursive, target-shaped
//	Dynamic, DynamicIn(space), Any, AnyIn        dynamic dispatch on the target
//	Basis, BasisClosed, Discrete, Piecewise,
//	Quantize                                     composition helpers
//
// ⚙️ Dynamic values:
//
//	The Value union (NumberValue, StringValue, ColorValue, DateValue,
//	ArrayValue, ObjectValue, BoolValue) is closed; Dynamic(a, b) dispatches on
//	the variant of b, exactly as a charting front end expects when it hands
//	over loosely typed ranges:
//
//	    f := interpolate.Any("10px", "20px")
//	    f(0.5) // "15px"
//
//	Strings that parse as CSS colors are blended as colors and re-emitted
//	in rgb() notation; other strings blend only their numeric runs and copy
//	the literal text of the target verbatim.
package interpolate

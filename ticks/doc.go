// Package ticks plans "nice" axis ticks for numeric and temporal spans.
//
// 🚀 What does it compute?
//
//	Given a span [start, stop] and a target count n, the planner picks a step
//	from {1, 2, 5} × 10^k that divides the span into roughly n intervals and
//	materialises every multiple of that step inside the span.
//
// ✨ Numerical stability:
//
//	Ticks are never produced by repeated addition. The span is first divided
//	into an integer index range [i1, i2] and each tick is computed as i·step
//	(or i/inc for fractional steps, where inc = 1/step is exactly
//	representable). 0.1·3 drift therefore never leaks into tick values:
//	Ticks(0, 1, 10) yields 0.3, not 0.30000000000000004.
//
// ⚙️ Surface:
//
//	Ticks(start, stop, count)           ascending or descending tick values
//	TicksF(start, stop, count)          the same with a fractional count
//	TickIncrement(start, stop, count)   raw step; negative means 1/−inc
//	TickStep(start, stop, count)        signed step in domain units
//	Nice(start, stop, count)            widen a span to step boundaries
//	Quantile / QuantileSorted           R-7 order statistics
//	Thresholds / Sturges / Scott / ...  histogram bin boundaries
//	Format(start, stop, count)          fixed-precision tick labels
//	TimeTicks / TimeTickInterval        calendar-aware ticks for time spans
//
// Degenerate inputs: a zero-length span yields a single tick, a count that is
// not a positive finite number yields no ticks.
package ticks

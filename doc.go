// Deterministic simulations, lockstep networking and replays all
// need arithmetic that gives the same results on every machine.
// Floating point can't promise that across platforms (fused
// multiply-adds and libm implementations of sin and friends both
// vary), but plain integer arithmetic can, and that's what
// [fixed point] is about.
//
// The fixmath package defines a [Fixed] type representing a Q16.16
// fixed point value and provides arithmetic, rounding, comparison,
// trigonometric and conversion methods for it. None of the methods
// use floating point, except for the explicit float conversions.
//
// A few policies are worth knowing in advance:
//   - Named methods saturate at [MinFixed] and [MaxFixed] instead
//     of wrapping around on overflow.
//   - [Fixed.Mul](), [Fixed.Div]() and the float conversions round
//     to the nearest value, with ties going away from zero.
//   - [Fixed.Round]() rounds ties away from zero (2.5 => 3).
//   - [Fixed.ToInt]() truncates toward zero, like integer division.
//   - [Fixed.Mod]() returns the floor-based fractional part, which
//     is always in [0, 1).
//   - Division by zero is reported as [ErrDivisionByZero], never
//     as a panic.
//
// The subpackage geom defines Point and Rect helper types based
// on [Fixed], while fixlua exposes the type to Lua scripts.
//
// [fixed point]: https://en.wikipedia.org/wiki/Fixed-point_arithmetic
package fixmath

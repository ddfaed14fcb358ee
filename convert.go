package fixmath

import "math"
import "math/bits"

import "golang.org/x/exp/constraints"
import "golang.org/x/image/math/fixed"

// Converts an int to [Fixed]. Values outside [MinInt, MaxInt]
// saturate to [MinFixed] or [MaxFixed].
func FromInt(value int) Fixed { return fromInt64(int64(value)) }

// Like [FromInt](), but accepting any integer type.
func FromInteger[T constraints.Integer](value T) Fixed {
	var zero T
	if ^zero < zero { // signed type
		return fromInt64(int64(value))
	}
	unsigned := uint64(value)
	if unsigned > uint64(MaxInt) { return MaxFixed }
	return Fixed(unsigned << FracBits)
}

func fromInt64(value int64) Fixed {
	if value > int64(MaxInt) { return MaxFixed }
	if value < int64(MinInt) { return MinFixed }
	return Fixed(value << FracBits)
}

// Converts a float64 to the closest [Fixed], rounding away from
// zero in case of ties. Values outside the representable range
// (including infinities) saturate, and NaN is converted to zero.
func FromFloat64(value float64) Fixed {
	if math.IsNaN(value) { return 0 }
	scaled := math.Round(value*Scale)
	if scaled >= float64(MaxFixed) { return MaxFixed }
	if scaled <= float64(MinFixed) { return MinFixed }
	return Fixed(int32(scaled))
}

// Same as [FromFloat64](). The conversion to float64 is exact,
// so there's no double rounding.
func FromFloat32(value float32) Fixed {
	return FromFloat64(float64(value))
}

// Returns numerator/denominator as the closest [Fixed], with ties
// going away from zero and saturating if out of range. Returns
// [ErrDivisionByZero] if the denominator is zero.
func FromFraction(numerator, denominator int) (Fixed, error) {
	if denominator == 0 { return 0, ErrDivisionByZero }
	negative := (numerator < 0) != (denominator < 0)
	n, d := absU64(int64(numerator)), absU64(int64(denominator))

	// 128 bit intermediate: n*2^16 doesn't fit 64 bits in general
	hi, lo := bits.Mul64(n, Scale)
	if hi >= d { return saturateSign(negative) } // quotient >= 2^64
	quo, rem := bits.Div64(hi, lo, d)
	if rem >= d - rem {
		if quo == math.MaxUint64 { return saturateSign(negative) }
		quo += 1
	}

	if negative {
		if quo > uint64(1) << 31 { return MinFixed, nil }
		return Fixed(-int64(quo)), nil
	}
	if quo > uint64(MaxFixed) { return MaxFixed, nil }
	return Fixed(quo), nil
}

func saturateSign(negative bool) (Fixed, error) {
	if negative { return MinFixed, nil }
	return MaxFixed, nil
}

// Converts the value to int, truncating toward zero (like
// integer division). See also [Fixed.ToIntFloor](),
// [Fixed.ToIntCeil]() and [Fixed.ToIntHalfAway]().
func (self Fixed) ToInt() int {
	return int(self)/Scale
}

func (self Fixed) ToIntFloor() int {
	return int(int64(self) >> FracBits)
}

func (self Fixed) ToIntCeil() int {
	return int((int64(self) + fracMask) >> FracBits)
}

func (self Fixed) ToIntHalfUp() int {
	return int((int64(self) + int64(Half)) >> FracBits)
}

func (self Fixed) ToIntHalfDown() int {
	return int((int64(self) + int64(Half) - 1) >> FracBits)
}

// Rounds to the nearest int, ties away from zero. This is
// the int equivalent of [Fixed.Round]().
func (self Fixed) ToIntHalfAway() int {
	if self >= 0 { return self.ToIntHalfUp() }
	return self.ToIntHalfDown()
}

// Conversion is always exact.
func (self Fixed) ToFloat64() float64 {
	return float64(self)/Scale
}

// Rounds to the nearest float32 when more than 24 bits
// of precision are required.
func (self Fixed) ToFloat32() float32 {
	return float32(self)/Scale
}

// Converts a [fixed.Int26_6] to [Fixed], saturating if the
// integer part doesn't fit in 16 bits.
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
func FromInt26_6(value fixed.Int26_6) Fixed {
	return saturate(int64(value) << (FracBits - 6))
}

// Converts the value to [fixed.Int26_6], rounding the dropped
// fractional bits to nearest (ties away from zero).
//
// [fixed.Int26_6]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int26_6
func (self Fixed) ToInt26_6() fixed.Int26_6 {
	return fixed.Int26_6(divRound(int64(self), 1 << (FracBits - 6)))
}

// Converts a [fixed.Int52_12] to [Fixed], saturating if the
// integer part doesn't fit in 16 bits.
//
// [fixed.Int52_12]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int52_12
func FromInt52_12(value fixed.Int52_12) Fixed {
	const shift = FracBits - 12
	if int64(value) > int64(MaxFixed) >> shift { return MaxFixed }
	if int64(value) < int64(MinFixed) >> shift { return MinFixed }
	return Fixed(int64(value) << shift)
}

// Converts the value to [fixed.Int52_12], rounding the dropped
// fractional bits to nearest (ties away from zero).
//
// [fixed.Int52_12]: https://pkg.go.dev/golang.org/x/image/math/fixed#Int52_12
func (self Fixed) ToInt52_12() fixed.Int52_12 {
	return fixed.Int52_12(divRound(int64(self), 1 << (FracBits - 12)))
}

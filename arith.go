package fixmath

// Clamps a wide intermediate result into the representable range.
func saturate(value int64) Fixed {
	if value > int64(MaxFixed) { return MaxFixed }
	if value < int64(MinFixed) { return MinFixed }
	return Fixed(value)
}

// Divides num by den rounding to the nearest integer, with ties
// going away from zero. den must not be zero. The magnitudes are
// handled as uint64 so math.MinInt64 doesn't need special cases.
func divRound(num, den int64) int64 {
	negative := (num < 0) != (den < 0)
	n, d := absU64(num), absU64(den)
	quo, rem := n/d, n%d
	if rem >= d - rem { quo += 1 }
	if negative { return -int64(quo) }
	return int64(quo)
}

func absU64(value int64) uint64 {
	if value < 0 { return uint64(-value) }
	return uint64(value)
}

// Returns self + other, saturating on overflow.
func (self Fixed) Add(other Fixed) Fixed {
	return saturate(int64(self) + int64(other))
}

// Returns self - other, saturating on overflow.
func (self Fixed) Sub(other Fixed) Fixed {
	return saturate(int64(self) - int64(other))
}

// Returns self * other. The product is computed with a 64 bit
// intermediate and then rescaled, rounding to the nearest value
// (ties away from zero). Saturates on overflow.
func (self Fixed) Mul(multiplier Fixed) Fixed {
	return saturate(divRound(int64(self)*int64(multiplier), Scale))
}

// Multiplies the value by an integer, saturating on overflow.
func (self Fixed) MulInt(multiplier int) Fixed {
	// any multiplier beyond 32 bits already saturates, and clamping
	// keeps the int64 product from overflowing
	const limit = 1 << 32 - 1
	m := int64(multiplier)
	if m > +limit { m = +limit }
	if m < -limit { m = -limit }
	return saturate(int64(self)*m)
}

// Returns self / divisor. The division is computed with a 64 bit
// intermediate, rounding to the nearest value (ties away from zero)
// and saturating on overflow. Returns [ErrDivisionByZero] if the
// divisor is zero.
func (self Fixed) Div(divisor Fixed) (Fixed, error) {
	if divisor == 0 { return 0, ErrDivisionByZero }
	return saturate(divRound(int64(self) << FracBits, int64(divisor))), nil
}

// Like [Fixed.Div](), but panics on division by zero.
func (self Fixed) MustDiv(divisor Fixed) Fixed {
	result, err := self.Div(divisor)
	if err != nil { panic(err) }
	return result
}

// Divides the value by an integer, rounding to the nearest value
// (ties away from zero). Returns [ErrDivisionByZero] if the divisor
// is zero.
func (self Fixed) DivInt(divisor int) (Fixed, error) {
	if divisor == 0 { return 0, ErrDivisionByZero }
	return saturate(divRound(int64(self), int64(divisor))), nil
}

// Returns the remainder of the truncated division self / divisor.
// The result has the sign of self. Returns [ErrDivisionByZero] if
// the divisor is zero.
func (self Fixed) Rem(divisor Fixed) (Fixed, error) {
	if divisor == 0 { return 0, ErrDivisionByZero }
	return self % divisor, nil
}

// Returns the square root of the value, rounded to the nearest
// representable value. Returns [ErrNegativeSqrt] for negative values.
func (self Fixed) Sqrt() (Fixed, error) {
	if self < 0 { return 0, ErrNegativeSqrt }

	// sqrt(raw/2^16)*2^16 == sqrt(raw*2^16)
	return Fixed(sqrtRound(uint64(self) << FracBits)), nil
}

// Returns sqrt(x*x + y*y), computed without intermediate
// overflow and saturating if the result doesn't fit.
func Hypot(x, y Fixed) Fixed {
	sum := uint64(int64(x)*int64(x)) + uint64(int64(y)*int64(y))
	return saturate(int64(sqrtRound(sum)))
}

// Integer square root rounded to the nearest integer, computed
// bit by bit.
func sqrtRound(num uint64) uint64 {
	var result uint64
	bit := uint64(1) << 62
	for bit > num { bit >>= 2 }
	for bit != 0 {
		if num >= result + bit {
			num -= result + bit
			result = (result >> 1) + bit
		} else {
			result >>= 1
		}
		bit >>= 2
	}

	// num is now the remainder n - result^2
	if num > result { result += 1 }
	return result
}

// Linear interpolation between self (t = 0) and other (t = 1).
// t is not clamped. Saturates on overflow.
func (self Fixed) Lerp(other Fixed, t Fixed) Fixed {
	delta := int64(other) - int64(self)
	return saturate(int64(self) + divRound(delta*int64(t), Scale))
}

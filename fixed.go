package fixmath

// Fixed point type representing real values in Q16.16 format.
//
// 16 bits represent the integer part of the value (including the
// sign), while the remaining 16 bits represent the fractional part.
// In other words, the raw int32 value stores 65536ths: Fixed(65536)
// is 1.0, Fixed(98304) is 1.5 and Fixed(-32768) is -0.5.
//
// Named methods saturate at [MinFixed] and [MaxFixed] instead of
// wrapping. Raw Go operators (+, -) behave like on any int32 and
// will wrap on overflow.
type Fixed int32

// Creates a Fixed directly from its raw Q16.16 representation.
func FromRaw(raw int32) Fixed { return Fixed(raw) }

// Returns the raw Q16.16 representation of the value.
func (self Fixed) Raw() int32 { return int32(self) }

// Returns whether the value is a whole number or if it
// has a fractional part.
func (self Fixed) IsWhole() bool {
	return self & fracMask == 0
}

// Returns -One, Zero or One depending on the sign of the value.
func (self Fixed) Sign() Fixed {
	if self > 0 { return One }
	if self < 0 { return -One }
	return Zero
}

// Returns the absolute value. [MinFixed].Abs() saturates
// to [MaxFixed].
func (self Fixed) Abs() Fixed {
	if self >= 0 { return self }
	if self == MinFixed { return MaxFixed }
	return -self
}

// Returns the negated value. [MinFixed].Neg() saturates
// to [MaxFixed].
func (self Fixed) Neg() Fixed {
	if self == MinFixed { return MaxFixed }
	return -self
}

// Returns the greatest whole value <= self.
func (self Fixed) Floor() Fixed {
	return self & ^fracMask
}

// Returns the smallest whole value >= self. Values above
// 32767 can't be rounded up within range, so they saturate
// to [MaxFixed].
func (self Fixed) Ceil() Fixed {
	return saturate((int64(self) + fracMask) & ^int64(fracMask))
}

// Rounds to the nearest whole value, with ties going away
// from zero (2.5 => 3, -2.5 => -3). Saturates like [Fixed.Ceil]().
func (self Fixed) Round() Fixed {
	if self >= 0 { return self.HalfUp() }
	return self.HalfDown()
}

// Rounds to the nearest whole value, with ties going up
// (2.5 => 3, -2.5 => -2).
func (self Fixed) HalfUp() Fixed {
	return saturate((int64(self) + int64(Half)) & ^int64(fracMask))
}

// Rounds to the nearest whole value, with ties going down
// (2.5 => 2, -2.5 => -3).
func (self Fixed) HalfDown() Fixed {
	return saturate((int64(self) + int64(Half) - 1) & ^int64(fracMask))
}

// Rounds toward the given reference (floor when the value is
// above the reference, ceil otherwise).
func (self Fixed) Toward(reference int) Fixed {
	if self >= FromInt(reference) { return self.Floor() }
	return self.Ceil()
}

// Rounds away from the given reference.
func (self Fixed) Away(reference int) Fixed {
	if self <= FromInt(reference) { return self.Floor() }
	return self.Ceil()
}

// Returns the fractional part of the value, defined as
// self - self.Floor(). The result is always in [0, 1),
// also for negative values (-1.25 => 0.75).
func (self Fixed) Mod() Fixed {
	return self & fracMask
}

// Given a fractional step between 1 and 65536 (raw units), it
// quantizes the value to that fractional step, rounding up in
// case of ties.
func (self Fixed) QuantizeUp(step Fixed) Fixed {
	// safety assertions
	if step > Scale { panic("step > 16 bits") }
	if step <     1 { panic("step < 1") }

	// quantize based on the fraction relative to floor
	lfract := self & fracMask
	mod    := lfract % step
	if mod == 0 { return self }
	sum := lfract - mod
	if mod >= ((step + 1) >> 1) { // tie point
		sum += step
		if sum > Scale { sum = Scale }
	}
	return self.Floor().Add(sum)
}

// Given a fractional step between 1 and 65536 (raw units), it
// quantizes the value to that fractional step, rounding down in
// case of ties.
func (self Fixed) QuantizeDown(step Fixed) Fixed {
	// safety assertions
	if step > Scale { panic("step > 16 bits") }
	if step <     1 { panic("step < 1") }

	lfract := self & fracMask
	mod    := lfract % step
	if mod == 0 { return self }
	sum := lfract - mod
	if mod > (step >> 1) { // tie point
		sum += step
		if sum > Scale { sum = Scale }
	}
	return self.Floor().Add(sum)
}

func (self Fixed) LessThan(other Fixed) bool { return self < other }
func (self Fixed) LessThanOrEqual(other Fixed) bool { return self <= other }
func (self Fixed) GreaterThan(other Fixed) bool { return self > other }
func (self Fixed) GreaterThanOrEqual(other Fixed) bool { return self >= other }
func (self Fixed) Equals(other Fixed) bool { return self == other }

// Returns -1 if self < other, 0 if they are equal
// and +1 if self > other.
func (self Fixed) Cmp(other Fixed) int {
	if self < other { return -1 }
	if self > other { return +1 }
	return 0
}

func (self Fixed) Min(other Fixed) Fixed {
	if other < self { return other }
	return self
}

func (self Fixed) Max(other Fixed) Fixed {
	if other > self { return other }
	return self
}

// Clamps the value to [low, high]. The behavior is
// undefined if low > high.
func (self Fixed) Clamp(low, high Fixed) Fixed {
	if self < low  { return low  }
	if self > high { return high }
	return self
}

package fixmath

//go:generate go run mktables.go

// Trigonometric functions are computed without floating point
// so results are bit-for-bit reproducible on every platform.
//
// Angles are first converted to a 32 bit turn phase (0 = 0 rad,
// 1 << 32 = 2*Pi rad) with a single wrapping multiplication, which
// reduces the input modulo the period exactly. The two top bits of
// the phase select the quadrant, and the rest is looked up in a
// quarter-wave sine table with linear interpolation. The tables
// keep 30 fractional bits, so the maximum absolute error of Sin,
// Cos and Atan2 is below 1 unit in the last place (2^-16).

const tableBits  = 10
const tableSize  = 1 << tableBits
const interpBits = 30 - tableBits

// round(2^48/(2*Pi)): converts raw radians to 2^-32 turns.
const radToTurn = 44798133900177

const quarterTurn = 1 << 30

// Pi/2 and Pi in 2^-30 units.
const halfPi30 = 1686629713
const pi30     = 3373259426

// Returns the sine of the angle (in radians).
func (self Fixed) Sin() Fixed {
	return Fixed(divRound(sin30(turnPhase(self)), 1 << 14))
}

// Returns the cosine of the angle (in radians).
func (self Fixed) Cos() Fixed {
	return Fixed(divRound(sin30(turnPhase(self) + quarterTurn), 1 << 14))
}

// Returns the tangent of the angle (in radians). Results
// near the asymptotes saturate to [MaxFixed] or [MinFixed].
func (self Fixed) Tan() Fixed {
	phase := turnPhase(self)
	sin, cos := sin30(phase), sin30(phase + quarterTurn)
	if cos == 0 {
		if sin >= 0 { return MaxFixed }
		return MinFixed
	}
	return saturate(divRound(sin << FracBits, cos))
}

// Returns the angle of the (x, y) vector in radians, within
// [-Pi, Pi]. Atan2(0, 0) returns 0, and x == 0 returns Pi/2
// or -Pi/2 depending on the sign of y.
func Atan2(y, x Fixed) Fixed {
	if x == 0 && y == 0 { return 0 }

	// octant reduction: the table only covers atan([0, 1])
	absY, absX := absU64(int64(y)), absU64(int64(x))
	var angle int64
	if absY <= absX {
		angle = interpolate(&atanTable, uint32((absY << 30)/absX))
	} else {
		angle = halfPi30 - interpolate(&atanTable, uint32((absX << 30)/absY))
	}
	if x < 0 { angle = pi30 - angle }
	if y < 0 { angle = -angle }
	return Fixed(divRound(angle, 1 << 14))
}

// Returns the arctangent of the value, within [-Pi/2, Pi/2].
func (self Fixed) Atan() Fixed {
	return Atan2(self, One)
}

// Returns the arcsine of the value, within [-Pi/2, Pi/2].
// Returns [ErrDomain] if the value is outside [-1, 1].
func (self Fixed) Asin() (Fixed, error) {
	cos, err := self.complement()
	if err != nil { return 0, err }
	return Atan2(self, cos), nil
}

// Returns the arccosine of the value, within [0, Pi].
// Returns [ErrDomain] if the value is outside [-1, 1].
func (self Fixed) Acos() (Fixed, error) {
	sin, err := self.complement()
	if err != nil { return 0, err }
	return Atan2(sin, self), nil
}

// Returns sqrt(1 - self^2) for self in [-1, 1].
func (self Fixed) complement() (Fixed, error) {
	if self > One || self < -One { return 0, ErrDomain }
	square := uint64(int64(self)*int64(self)) // 2^-32 units
	return Fixed(sqrtRound(1 << 32 - square)), nil
}

// Converts radians to degrees. Same rounding and saturation
// as [Fixed.Mul]().
func (self Fixed) ToDegrees() Fixed {
	return self.Mul(DegPerRad)
}

// Converts degrees to radians. Same rounding as [Fixed.Div]().
func (self Fixed) ToRadians() Fixed {
	return saturate(divRound(int64(self) << FracBits, int64(DegPerRad)))
}

// Converts radians to a wrapping 2^-32 turn phase. Two's
// complement multiplication wraps negative angles correctly.
func turnPhase(angle Fixed) uint32 {
	return uint32((uint64(int64(angle))*radToTurn) >> 32)
}

// Returns the sine of the given turn phase in 2^-30 units.
func sin30(phase uint32) int64 {
	quadrant := phase >> 30
	offset := phase & (quarterTurn - 1)
	if quadrant & 1 == 1 { offset = quarterTurn - offset }
	value := interpolate(&sinTable, offset)
	if quadrant >= 2 { return -value }
	return value
}

// Linearly interpolates the table at the given position, where
// position is in [0, 2^30] and 2^30 corresponds to the last entry.
func interpolate(table *[tableSize + 1]int32, position uint32) int64 {
	index := position >> interpBits
	if index >= tableSize { return int64(table[tableSize]) }
	fract := int64(position & (1 << interpBits - 1))
	low, high := int64(table[index]), int64(table[index + 1])
	return low + ((high - low)*fract + 1 << (interpBits - 1)) >> interpBits
}

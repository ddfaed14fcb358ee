package fixmath

// Format constants.
const (
	FracBits = 16
	Scale    = 1 << FracBits // 65536
	fracMask = Scale - 1
)

// Minimum and maximum constants.
const (
	MaxFixed Fixed = +0x7FFFFFFF
	MinFixed Fixed = -0x7FFFFFFF - 1
	MaxInt int = +32767
	MinInt int = -32768
	MaxFloat64 float64 = +32767.9999847412109375
	MinFloat64 float64 = -32768
	Delta float64 = 0.0000152587890625 // 1.0/65536.0
)

// Common values.
const (
	Zero Fixed = 0
	One  Fixed = Scale // fixmath.One.ToInt() == 1
	Two  Fixed = 2*Scale
	Half Fixed = Scale/2
	
	Pi     Fixed = 205887 // 3.14159...
	HalfPi Fixed = 102944
	TwoPi  Fixed = 411775
	E      Fixed = 178145 // 2.71828...

	// Degrees per radian (57.29577...). Used by [Fixed.ToDegrees]()
	// and [Fixed.ToRadians]().
	DegPerRad Fixed = 3754936
)

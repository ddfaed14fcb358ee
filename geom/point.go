package geom

import "image"

import "github.com/tinne26/fixmath"

// A pair of [fixmath.Fixed] coordinates.
type Point struct {
	X fixmath.Fixed
	Y fixmath.Fixed
}

// Creates a point from a pair of fixed point values.
func Pt(x, y fixmath.Fixed) Point {
	return Point{ X: x, Y: y }
}

// Creates a point from a pair of ints. Saturates if out of range.
func IntsToPoint(x, y int) Point {
	return Point{ X: fixmath.FromInt(x), Y: fixmath.FromInt(y) }
}

// Creates a point from a pair of float64s, rounding to
// the nearest representable values.
func FloatsToPoint(x, y float64) Point {
	return Point{ X: fixmath.FromFloat64(x), Y: fixmath.FromFloat64(y) }
}

// Converts the point coordinates to ints and returns
// them as an [image.Point] stdlib value. Coordinates are
// rounded to the nearest int (ties away from zero).
func (self Point) ImagePoint() image.Point {
	x, y := self.ToInts()
	return image.Pt(x, y)
}

// Returns the point coordinates as a pair of ints, rounded
// to the nearest int (ties away from zero).
func (self Point) ToInts() (int, int) {
	return self.X.ToIntHalfAway(), self.Y.ToIntHalfAway()
}

// Returns the point coordinates as a pair of float64s.
func (self Point) ToFloat64s() (x, y float64) {
	return self.X.ToFloat64(), self.Y.ToFloat64()
}

// Returns the point coordinates as a pair of float32s.
func (self Point) ToFloat32s() (x, y float32) {
	return self.X.ToFloat32(), self.Y.ToFloat32()
}

// Returns the result of adding the two points.
func (self Point) Add(other Point) Point {
	return Point{ X: self.X.Add(other.X), Y: self.Y.Add(other.Y) }
}

// Returns the result of subtracting other from the point.
func (self Point) Sub(other Point) Point {
	return Point{ X: self.X.Sub(other.X), Y: self.Y.Sub(other.Y) }
}

// Returns the point with both coordinates multiplied by the
// given factor.
func (self Point) Scale(factor fixmath.Fixed) Point {
	return Point{ X: self.X.Mul(factor), Y: self.Y.Mul(factor) }
}

// Returns the dot product of the two points as vectors.
func (self Point) Dot(other Point) fixmath.Fixed {
	return self.X.Mul(other.X).Add(self.Y.Mul(other.Y))
}

// Returns the distance from the origin to the point.
func (self Point) Len() fixmath.Fixed {
	return fixmath.Hypot(self.X, self.Y)
}

// Returns the distance between the two points.
func (self Point) Dist(other Point) fixmath.Fixed {
	return self.Sub(other).Len()
}

// Returns the angle of the point as a vector, in radians
// within [-Pi, Pi]. See [fixmath.Atan2]().
func (self Point) Angle() fixmath.Fixed {
	return fixmath.Atan2(self.Y, self.X)
}

// Returns the point rotated around the origin by the given
// angle (in radians, counterclockwise when Y points up).
func (self Point) Rotate(angle fixmath.Fixed) Point {
	sin, cos := angle.Sin(), angle.Cos()
	return Point{
		X: self.X.Mul(cos).Sub(self.Y.Mul(sin)),
		Y: self.X.Mul(sin).Add(self.Y.Mul(cos)),
	}
}

// Returns whether the current point is inside the given [Rect].
func (self Point) In(rect Rect) bool {
	return self.X >= rect.Min.X && self.X < rect.Max.X && self.Y >= rect.Min.Y && self.Y < rect.Max.Y
}

// Returns a textual representation of the point (e.g.: "(2.5, -4)").
func (self Point) String() string {
	return "(" + self.X.String() + ", " + self.Y.String() + ")"
}

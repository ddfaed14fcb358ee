package geom

import "image"

import "github.com/tinne26/fixmath"

// A pair of [Point] values defining a rectangular region.
// Like [image.Rectangle], the Max point is not included
// in the rectangle. Rects with Min.X >= Max.X or
// Min.Y >= Max.Y are empty.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from a set of four fixed point values.
func Rct(minX, minY, maxX, maxY fixmath.Fixed) Rect {
	return Rect{
		Min: Point{ X: minX, Y: minY },
		Max: Point{ X: maxX, Y: maxY },
	}
}

// Creates a rect from a pair of points.
func PointsToRect(min, max Point) Rect {
	return Rect{ Min: min, Max: max }
}

// Creates a rect from a set of four integers.
func IntsToRect(minX, minY, maxX, maxY int) Rect {
	return Rect{ Min: IntsToPoint(minX, minY), Max: IntsToPoint(maxX, maxY) }
}

// Creates a rect from an [image.Rectangle].
func FromImageRect(rect image.Rectangle) Rect {
	return IntsToRect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
}

// Converts the rect coordinates to ints and returns them
// as an [image.Rectangle] stdlib value. See [Rect.ToInts]().
func (self Rect) ImageRect() image.Rectangle {
	minX, minY, maxX, maxY := self.ToInts()
	return image.Rect(minX, minY, maxX, maxY)
}

// Returns the rect coordinates as a set of four ints.
// The conversion may introduce a loss of precision, but
// the returned ints are guaranteed to contain the original
// rect.
func (self Rect) ToInts() (minX, minY, maxX, maxY int) {
	return self.Min.X.ToIntFloor(), self.Min.Y.ToIntFloor(), self.Max.X.ToIntCeil(), self.Max.Y.ToIntCeil()
}

// Returns the rect coordinates as a set of four float64s.
func (self Rect) ToFloat64s() (minX, minY, maxX, maxY float64) {
	return self.Min.X.ToFloat64(), self.Min.Y.ToFloat64(), self.Max.X.ToFloat64(), self.Max.Y.ToFloat64()
}

func (self Rect) Width() fixmath.Fixed {
	return self.Max.X.Sub(self.Min.X)
}

func (self Rect) Height() fixmath.Fixed {
	return self.Max.Y.Sub(self.Min.Y)
}

// Utility method equivalent to ([Rect.Width](), [Rect.Height]()).
func (self Rect) Size() (width, height fixmath.Fixed) {
	return self.Width(), self.Height()
}

// Returns the width of the rect as an int. The returned
// width is guaranteed to be >= than the original.
func (self Rect) IntWidth() int {
	return self.Width().ToIntCeil()
}

// Returns the height of the rect as an int. The returned
// height is guaranteed to be >= than the original.
func (self Rect) IntHeight() int {
	return self.Height().ToIntCeil()
}

// Returns the central point of the rect.
func (self Rect) Center() Point {
	return Point{
		X: self.Min.X.Add(self.Width().MustDiv(fixmath.Two)),
		Y: self.Min.Y.Add(self.Height().MustDiv(fixmath.Two)),
	}
}

// Returns whether the rect is empty or not.
func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}

// Returns the result of applying the given paddings to each
// side of the rect. In other words, the rect's width after the
// padding is increased by horzPad*2 (likewise for the height
// with vertPad*2).
func (self Rect) Pad(horzPad, vertPad fixmath.Fixed) Rect {
	return Rct(
		self.Min.X.Sub(horzPad), self.Min.Y.Sub(vertPad),
		self.Max.X.Add(horzPad), self.Max.Y.Add(vertPad),
	)
}

// Returns the result of translating the rect by the given point.
func (self Rect) Add(point Point) Rect {
	return Rect{ Min: self.Min.Add(point), Max: self.Max.Add(point) }
}

// Returns the result of translating the rect so its center
// becomes aligned to the given point.
func (self Rect) CenteredAt(point Point) Rect {
	return self.Add(point.Sub(self.Center()))
}

// Returns the largest rect contained by both rects. If the
// two rects don't overlap, the zero rect is returned.
func (self Rect) Intersect(other Rect) Rect {
	self.Min.X = self.Min.X.Max(other.Min.X)
	self.Min.Y = self.Min.Y.Max(other.Min.Y)
	self.Max.X = self.Max.X.Min(other.Max.X)
	self.Max.Y = self.Max.Y.Min(other.Max.Y)
	if self.Empty() { return Rect{} }
	return self
}

// Returns the smallest rect containing both rects. Empty
// rects are ignored.
func (self Rect) Union(other Rect) Rect {
	if other.Empty() { return self }
	if self.Empty() { return other }
	self.Min.X = self.Min.X.Min(other.Min.X)
	self.Min.Y = self.Min.Y.Min(other.Min.Y)
	self.Max.X = self.Max.X.Max(other.Max.X)
	self.Max.Y = self.Max.Y.Max(other.Max.Y)
	return self
}

// Returns whether the rect contains the given point or not.
//
// Remember that point == Rect.Min is included, but point == Rect.Max
// is not.
func (self Rect) Contains(point Point) bool {
	return point.In(self)
}

// Returns a textual representation of the rect (e.g.: "(0, 0)-(1.5, 8.5)").
func (self Rect) String() string {
	return self.Min.String() + "-" + self.Max.String()
}

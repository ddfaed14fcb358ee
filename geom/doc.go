// The geom subpackage defines the [Point] and [Rect] helper types,
// with [fixmath.Fixed] coordinates.
//
// All the operations use the saturating methods of the fixmath
// package, so results never wrap around. Conversions to [image]
// types round outwards for rects and to nearest for points.
//
// Building with the "ebitengine" tag also adds [Rect.Clip] to
// retrieve the area of an Ebitengine image covered by a rect.
package geom

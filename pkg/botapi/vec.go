package botapi

import "math"

// Vec2 is a two dimensional vector with float64 components.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NewVec2 creates a vector with the given x and y components.
func NewVec2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns the component-wise difference of v and o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return o.Sub(v).Len() }

// AngleTo returns the direction from v to o in radians, anticlockwise with 0
// pointing along the positive X axis.
func (v Vec2) AngleTo(o Vec2) float64 {
	d := o.Sub(v)
	return math.Atan2(d.Y, d.X)
}

// Heading returns the unit vector pointing in the given direction, in
// radians, anticlockwise with 0 pointing along the positive X axis.
func Heading(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Package core provides fundamental types and utilities for the flappy simulation.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Rect represents an axis-aligned bounding box used for collision detection.
// Y grows downward, matching screen coordinates.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround creates a square box of half-size r centred on (cx, cy).
func RectAround(cx, cy, r float64) Rect {
	return Rect{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Shrink returns the rectangle inset by margin on all four sides.
// A margin larger than half of a dimension collapses that dimension to zero
// around the centre.
func (r Rect) Shrink(margin float64) Rect {
	out := Rect{X: r.X + margin, Y: r.Y + margin, W: r.W - 2*margin, H: r.H - 2*margin}
	if out.W < 0 {
		out.X = r.X + r.W/2
		out.W = 0
	}
	if out.H < 0 {
		out.Y = r.Y + r.H/2
		out.H = 0
	}
	return out
}

// Intersects returns true if this rectangle overlaps with another.
// Uses standard AABB collision detection; touching edges do not overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
// The left and top edges are inclusive, the right and bottom exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Circle is a centre and radius.
type Circle struct {
	X, Y   float64
	Radius float64
}

// NewCircle creates a circle centred on (x, y).
func NewCircle(x, y, radius float64) Circle {
	return Circle{X: x, Y: y, Radius: radius}
}

// Bounds returns the circle's bounding box.
func (c Circle) Bounds() Rect {
	return RectAround(c.X, c.Y, c.Radius)
}

// CheckRectCollision reports whether two boxes overlap.
func CheckRectCollision(a, b Rect) bool {
	return a.Intersects(b)
}

// CheckRectCollisionWithMargin shrinks b by margin on every side before testing
// it against a. A positive margin makes the test more lenient than b's visual size.
func CheckRectCollisionWithMargin(a, b Rect, margin float64) bool {
	return a.Intersects(b.Shrink(margin))
}

// CheckCircleRectangleCollision reports whether the circle touches or overlaps the
// rectangle: the point of r nearest to the centre lies within the radius.
func CheckCircleRectangleCollision(c Circle, r Rect) bool {
	nx := ClampF(c.X, r.X, r.Right())
	ny := ClampF(c.Y, r.Y, r.Bottom())
	return DistanceSq(c.X, c.Y, nx, ny) <= c.Radius*c.Radius
}

// CheckCircleCollision reports whether two circles touch or overlap.
func CheckCircleCollision(a, b Circle) bool {
	rs := a.Radius + b.Radius
	return DistanceSq(a.X, a.Y, b.X, b.Y) <= rs*rs
}

// PointInCircle reports whether (x, y) lies inside or on the circle.
func PointInCircle(x, y float64, c Circle) bool {
	return DistanceSq(x, y, c.X, c.Y) <= c.Radius*c.Radius
}

// PointInRect reports whether (x, y) lies inside the rectangle.
func PointInRect(x, y float64, r Rect) bool {
	return r.Contains(x, y)
}

// DistanceSq returns the squared distance between two points.
func DistanceSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSq(x1, y1, x2, y2))
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// PickupFactor scales a collectible's size into its pickup radius.
// Pickups are deliberately generous rather than pixel exact.
const PickupFactor = 0.8

// CheckAvatarObstacleCollision tests an avatar collision box against an
// obstacle occupying [left, right] horizontally (caps included) with an open
// gap between gapTop and gapBottom. The box is inset by margin first.
// A hit needs horizontal overlap and the box reaching above the gap top or
// below the gap bottom.
func CheckAvatarObstacleCollision(box Rect, left, right, gapTop, gapBottom, margin float64) bool {
	b := box.Shrink(margin)
	if b.Right() <= left || b.X >= right {
		return false
	}
	return b.Y < gapTop || b.Bottom() > gapBottom
}

// CheckCollectiblePickup reports whether an avatar centred at avatar reaches
// an item of the given size centred at item.
func CheckCollectiblePickup(avatar, item Point, size float64) bool {
	return PointInCircle(avatar.X, avatar.Y, NewCircle(item.X, item.Y, size*PickupFactor))
}

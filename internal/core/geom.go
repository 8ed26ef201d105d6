// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Vec2 is a point or direction in field units.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns the vector multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of the vector.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector in the direction of v.
// The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec2) float64 {
	return a.Sub(b).Len()
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

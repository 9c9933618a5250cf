package vmath

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a float64 2D vector backed by mathgl
type Vec2 mgl64.Vec2

// V2 returns Vec2{x, y}
func V2(x, y float64) Vec2 { return Vec2{x, y} }

func (v Vec2) X() float64 { return v[0] }
func (v Vec2) Y() float64 { return v[1] }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2(mgl64.Vec2(v).Add(mgl64.Vec2(o))) }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2(mgl64.Vec2(v).Sub(mgl64.Vec2(o))) }
func (v Vec2) Mul(s float64) Vec2 { return Vec2(mgl64.Vec2(v).Mul(s)) }
func (v Vec2) Dot(o Vec2) float64 { return mgl64.Vec2(v).Dot(mgl64.Vec2(o)) }

// Div divides per component so v.Mul(s).Div(s) stays as close to v as the format allows
func (v Vec2) Div(s float64) Vec2 { return Vec2{v[0] / s, v[1] / s} }

func (v Vec2) Len() float64    { return mgl64.Vec2(v).Len() }
func (v Vec2) LenSqr() float64 { return mgl64.Vec2(v).LenSqr() }

// ApproxEqual reports whether every component differs by at most eps
func (v Vec2) ApproxEqual(o Vec2, eps float64) bool {
	return mgl64.Abs(v[0]-o[0]) <= eps && mgl64.Abs(v[1]-o[1]) <= eps
}

// Vec2f is the float32 variant, for callers trading precision for size
type Vec2f mgl32.Vec2

// V2f returns Vec2f{x, y}
func V2f(x, y float32) Vec2f { return Vec2f{x, y} }

func (v Vec2f) X() float32 { return v[0] }
func (v Vec2f) Y() float32 { return v[1] }

func (v Vec2f) Add(o Vec2f) Vec2f { return Vec2f(mgl32.Vec2(v).Add(mgl32.Vec2(o))) }
func (v Vec2f) Sub(o Vec2f) Vec2f { return Vec2f(mgl32.Vec2(v).Sub(mgl32.Vec2(o))) }
func (v Vec2f) Mul(s float32) Vec2f { return Vec2f(mgl32.Vec2(v).Mul(s)) }
func (v Vec2f) Div(s float32) Vec2f { return Vec2f{v[0] / s, v[1] / s} }
func (v Vec2f) Dot(o Vec2f) float32 { return mgl32.Vec2(v).Dot(mgl32.Vec2(o)) }

func (v Vec2f) Len() float32 { return mgl32.Vec2(v).Len() }

// ApproxEqual reports whether every component differs by at most eps
func (v Vec2f) ApproxEqual(o Vec2f, eps float32) bool {
	return mgl32.Abs(v[0]-o[0]) <= eps && mgl32.Abs(v[1]-o[1]) <= eps
}

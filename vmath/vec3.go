package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a float64 3D vector backed by mathgl
type Vec3 mgl64.Vec3

// V3 returns Vec3{x, y, z}
func V3(x, y, z float64) Vec3 { return Vec3{x, y, z} }

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3(mgl64.Vec3(v).Add(mgl64.Vec3(o))) }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3(mgl64.Vec3(v).Sub(mgl64.Vec3(o))) }
func (v Vec3) Mul(s float64) Vec3 { return Vec3(mgl64.Vec3(v).Mul(s)) }
func (v Vec3) Div(s float64) Vec3 { return Vec3{v[0] / s, v[1] / s, v[2] / s} }
func (v Vec3) Dot(o Vec3) float64 { return mgl64.Vec3(v).Dot(mgl64.Vec3(o)) }

// Cross returns the right-handed cross product
func (v Vec3) Cross(o Vec3) Vec3 { return Vec3(mgl64.Vec3(v).Cross(mgl64.Vec3(o))) }

func (v Vec3) Len() float64 { return mgl64.Vec3(v).Len() }

// XY drops Z for 2D projection
func (v Vec3) XY() Vec2 { return Vec2{v[0], v[1]} }

// ApproxEqual reports whether every component differs by at most eps
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	for i := range v {
		if mgl64.Abs(v[i]-o[i]) > eps {
			return false
		}
	}
	return true
}

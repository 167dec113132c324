package geometry

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// rectThickness pads the zero-width axis of a rect's bounding box
const rectThickness = 0.0001

// RectPlane selects which axis-aligned plane a Rect lies in
type RectPlane int

const (
	PlaneXY RectPlane = iota // Spans X and Y at constant Z
	PlaneXZ                  // Spans X and Z at constant Y
	PlaneYZ                  // Spans Y and Z at constant X
)

// axes returns the two in-plane axes and the constant axis
func (p RectPlane) axes() (a, b, k int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

func (p RectPlane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	default:
		return "yz"
	}
}

// Rect is an axis-aligned rectangle [A0,A1]×[B0,B1] on the plane at K.
// Its outward normal points along the positive constant axis.
type Rect struct {
	Plane    RectPlane
	A0, A1   float64 // Bounds on the first in-plane axis
	B0, B1   float64 // Bounds on the second in-plane axis
	K        float64 // Position on the constant axis
	Material material.Material
}

// NewXYRect creates a rect spanning x0..x1, y0..y1 at z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *Rect {
	return &Rect{Plane: PlaneXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: material}
}

// NewXZRect creates a rect spanning x0..x1, z0..z1 at y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *Rect {
	return &Rect{Plane: PlaneXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: material}
}

// NewYZRect creates a rect spanning y0..y1, z0..z1 at x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *Rect {
	return &Rect{Plane: PlaneYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: material}
}

// Hit intersects the ray with the rect's plane and tests the bounds
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	aAxis, bAxis, kAxis := r.Plane.axes()

	direction := ray.Direction.Axis(kAxis)
	if direction == 0 {
		return nil, false
	}

	t := (r.K - ray.Origin.Axis(kAxis)) / direction
	if t < tMin || t > tMax {
		return nil, false
	}

	a := ray.Origin.Axis(aAxis) + t*ray.Direction.Axis(aAxis)
	b := ray.Origin.Axis(bAxis) + t*ray.Direction.Axis(bAxis)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (a - r.A0) / (r.A1 - r.A0),
		V:        (b - r.B0) / (r.B1 - r.B0),
		Material: r.Material,
	}
	hit.SetFaceNormal(ray, r.Normal())

	return hit, true
}

// BoundingBox returns the rect's bounds padded along the constant axis
func (r *Rect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	min := r.point(r.A0, r.B0)
	max := r.point(r.A1, r.B1)
	return core.NewAABBFromPoints(min, max).Pad(rectThickness), true
}

// Normal returns the outward unit normal
func (r *Rect) Normal() core.Vec3 {
	_, _, kAxis := r.Plane.axes()
	return axisVector(kAxis, 1)
}

// Area returns the rect's surface area
func (r *Rect) Area() float64 {
	return (r.A1 - r.A0) * (r.B1 - r.B0)
}

// PointAt maps a sample in [0,1)² uniformly onto the rect
func (r *Rect) PointAt(sample core.Vec2) core.Vec3 {
	return r.point(
		core.SampleRange(sample.X, r.A0, r.A1),
		core.SampleRange(sample.Y, r.B0, r.B1),
	)
}

// point builds a world-space point from in-plane coordinates
func (r *Rect) point(a, b float64) core.Vec3 {
	aAxis, bAxis, kAxis := r.Plane.axes()
	return axisVector(aAxis, a).Add(axisVector(bAxis, b)).Add(axisVector(kAxis, r.K))
}

// axisVector returns a vector with value on the given axis and zero elsewhere
func axisVector(axis int, value float64) core.Vec3 {
	switch axis {
	case 0:
		return core.NewVec3(value, 0, 0)
	case 1:
		return core.NewVec3(0, value, 0)
	default:
		return core.NewVec3(0, 0, value)
	}
}

package geometry

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Translate moves the wrapped object by Offset
type Translate struct {
	Object Hittable
	Offset core.Vec3
}

// NewTranslate wraps object so it appears displaced by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit moves the ray into object space, delegates, and moves the hit back
func (tr *Translate) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	moved := core.NewRayAtTime(ray.Origin.Subtract(tr.Offset), ray.Direction, ray.Time)

	hit, ok := tr.Object.Hit(moved, tMin, tMax)
	if !ok {
		return nil, false
	}

	// Directions are unchanged by a translation, so the normal and face stay valid
	hit.Point = hit.Point.Add(tr.Offset)
	return hit, true
}

// BoundingBox returns the wrapped box moved by Offset
func (tr *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := tr.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(tr.Offset), true
}

// RotateY rotates the wrapped object around the Y axis
type RotateY struct {
	Object   Hittable
	Degrees  float64
	sinTheta float64
	cosTheta float64
}

// NewRotateY wraps object rotated by degrees around +Y (counter-clockwise
// looking down from +Y)
func NewRotateY(object Hittable, degrees float64) *RotateY {
	radians := degrees * math.Pi / 180
	return &RotateY{
		Object:   object,
		Degrees:  degrees,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}
}

// Hit rotates the ray into object space, delegates, and rotates the point
// and normal back to world space
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	rotated := core.NewRayAtTime(
		ray.Origin.RotateY(-r.sinTheta, r.cosTheta),
		ray.Direction.RotateY(-r.sinTheta, r.cosTheta),
		ray.Time,
	)

	hit, ok := r.Object.Hit(rotated, tMin, tMax)
	if !ok {
		return nil, false
	}

	// Rotation preserves dot products, so FrontFace carries over unchanged
	hit.Point = hit.Point.RotateY(r.sinTheta, r.cosTheta)
	hit.Normal = hit.Normal.RotateY(r.sinTheta, r.cosTheta)
	return hit, true
}

// BoundingBox returns the box around the eight rotated corners of the
// wrapped object's box
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := r.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}

	corners := box.Corners()
	for i := range corners {
		corners[i] = corners[i].RotateY(r.sinTheta, r.cosTheta)
	}
	return core.NewAABBFromPoints(corners[:]...), true
}

// FlipFace inverts the front-face flag of the wrapped object's hits. The
// geometry and the normal are untouched.
type FlipFace struct {
	Object Hittable
}

// NewFlipFace wraps object with an inverted front face
func NewFlipFace(object Hittable) *FlipFace {
	return &FlipFace{Object: object}
}

// Hit delegates and flips FrontFace
func (f *FlipFace) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	hit, ok := f.Object.Hit(ray, tMin, tMax)
	if !ok {
		return nil, false
	}
	hit.FrontFace = !hit.FrontFace
	return hit, true
}

// BoundingBox is the wrapped object's box
func (f *FlipFace) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return f.Object.BoundingBox(time0, time1)
}

package geometry

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal. It has
// no bounding box and so can only live in a list that is scanned linearly.
type Plane struct {
	Point    core.Vec3         // A point on the plane
	Normal   core.Vec3         // Unit normal
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Parallel ray
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hit.SetFaceNormal(ray, p.Normal)

	return hit, true
}

// BoundingBox always reports no box
func (p *Plane) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

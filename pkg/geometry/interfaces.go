package geometry

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Hittable is anything a ray can be intersected with: primitives, transform
// wrappers, lists and BVH nodes.
type Hittable interface {
	// Hit returns the nearest intersection with t in the query range
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the object over the time interval.
	// It returns false when the object has no finite extent.
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}

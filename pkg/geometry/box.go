package geometry

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Box is an axis-aligned box between two corners, made of six rects
type Box struct {
	Min, Max core.Vec3
	sides    *HittableList
}

// NewBox creates a box spanning p0..p1. Faces with a negative-axis outward
// normal are wrapped in FlipFace so every face's front is outside.
func NewBox(p0, p1 core.Vec3, material material.Material) *Box {
	min := p0.Min(p1)
	max := p0.Max(p1)

	sides := NewHittableList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, material),
		NewFlipFace(NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, material)),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, material),
		NewFlipFace(NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, material)),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, material),
		NewFlipFace(NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, material)),
	)

	return &Box{Min: min, Max: max, sides: sides}
}

// Hit returns the nearest face hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box's own extent
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}

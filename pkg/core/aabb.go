package core

import "math"

// parallelEpsilon is the direction magnitude below which a ray is treated as
// parallel to a slab
const parallelEpsilon = 1e-12

// AABB represents an axis-aligned bounding box. It may have zero extent
// along any axis.
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	box := AABB{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		box.Min = box.Min.Min(point)
		box.Max = box.Max.Max(point)
	}
	return box
}

// SurroundingBox returns the smallest box enclosing both a and b
func SurroundingBox(a, b AABB) AABB {
	return AABB{
		Min: a.Min.Min(b.Min),
		Max: a.Max.Max(b.Max),
	}
}

// Hit tests if a ray intersects with this AABB using the slab method
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		min := aabb.Min.Axis(axis)
		max := aabb.Max.Axis(axis)
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		// Parallel to the slab: the origin alone decides this axis
		if math.Abs(direction) < parallelEpsilon {
			if origin < min || origin > max {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t0 := (min - origin) * invDirection
		t1 := (max - origin) * invDirection
		if invDirection < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax < tMin {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return SurroundingBox(aabb, other)
}

// Contains reports whether other lies entirely within this box
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && aabb.Min.Y <= other.Min.Y && aabb.Min.Z <= other.Min.Z &&
		aabb.Max.X >= other.Max.X && aabb.Max.Y >= other.Max.Y && aabb.Max.Z >= other.Max.Z
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// Pad returns a copy grown by delta on every axis whose extent is below delta
func (aabb AABB) Pad(delta float64) AABB {
	padded := aabb
	size := aabb.Size()
	half := delta / 2
	if size.X < delta {
		padded.Min.X -= half
		padded.Max.X += half
	}
	if size.Y < delta {
		padded.Min.Y -= half
		padded.Max.Y += half
	}
	if size.Z < delta {
		padded.Min.Z -= half
		padded.Max.Z += half
	}
	return padded
}

// Translate returns the box moved by offset
func (aabb AABB) Translate(offset Vec3) AABB {
	return AABB{Min: aabb.Min.Add(offset), Max: aabb.Max.Add(offset)}
}

// Corners returns the eight corner points of the box
func (aabb AABB) Corners() [8]Vec3 {
	var corners [8]Vec3
	for i := 0; i < 8; i++ {
		corner := aabb.Min
		if i&1 != 0 {
			corner.X = aabb.Max.X
		}
		if i&2 != 0 {
			corner.Y = aabb.Max.Y
		}
		if i&4 != 0 {
			corner.Z = aabb.Max.Z
		}
		corners[i] = corner
	}
	return corners
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

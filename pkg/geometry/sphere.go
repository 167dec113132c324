package geometry

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return hitSphere(ray, tMin, tMax, s.Center, s.Radius, s.Material)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return sphereBox(s.Center, s.Radius), true
}

func sphereBox(center core.Vec3, radius float64) core.AABB {
	r := math.Abs(radius)
	extent := core.NewVec3(r, r, r)
	return core.NewAABB(center.Subtract(extent), center.Add(extent))
}

// hitSphere solves the ray-sphere quadratic. Roots must lie strictly inside
// (tMin, tMax); the nearer one wins.
func hitSphere(ray core.Ray, tMin, tMax float64, center core.Vec3, radius float64, mat material.Material) (*material.HitRecord, bool) {
	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - radius*radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return nil, false
		}
	}

	hit := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: mat,
	}

	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / radius)
	hit.SetFaceNormal(ray, outwardNormal)
	hit.U, hit.V = sphereUV(outwardNormal)

	return hit, true
}

// sphereUV maps a point on the unit sphere to (u, v) in [0,1]²: u is the
// angle around Y starting at -X, v is the angle from -Y to +Y.
func sphereUV(p core.Vec3) (float64, float64) {
	theta := math.Acos(math.Max(-1, math.Min(1, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

package lights

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
)

// SphereLight samples the whole surface of a sphere uniformly
type SphereLight struct {
	Sphere *geometry.Sphere
}

// NewSphereLight creates a light over sphere
func NewSphereLight(sphere *geometry.Sphere) *SphereLight {
	return &SphereLight{Sphere: sphere}
}

// SamplePoint maps the sample to a uniform point on the sphere
func (l *SphereLight) SamplePoint(sample core.Vec2) core.Vec3 {
	z := 1 - 2*sample.X
	r := math.Sqrt(math.Max(0, 1-z*z))
	phi := 2 * math.Pi * sample.Y
	direction := core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
	return l.Sphere.Center.Add(direction.Multiply(l.Sphere.Radius))
}

// NormalAt returns the outward normal at point
func (l *SphereLight) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(l.Sphere.Center).Normalize()
}

// Area returns the sphere's surface area
func (l *SphereLight) Area() float64 {
	return 4 * math.Pi * l.Sphere.Radius * l.Sphere.Radius
}

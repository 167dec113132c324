package integrator

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Radiance estimates the radiance arriving along ray. depth is the number
	// of bounces left; background is returned for rays that escape.
	Radiance(ray core.Ray, background core.Vec3, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3
}

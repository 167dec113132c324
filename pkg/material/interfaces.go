package material

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// Material is the scattering contract consumed by the integrator
type Material interface {
	// Emitted returns the radiance emitted at surface coordinates (u, v) and point
	Emitted(rayIn core.Ray, hit *HitRecord, u, v float64, point core.Vec3) core.Vec3

	// Scatter reports whether the incoming ray scatters. A pure emitter returns false.
	Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool)

	// ScatteringPDF returns the density of scattering rayIn into scattered
	ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64
}

// ScatterRecord contains the result of material scattering
type ScatterRecord struct {
	Albedo    core.Vec3 // Per-channel reflectance
	Scattered core.Ray  // Direction sampled by the material
	PDF       float64   // Density of Scattered under the material's own sampling
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T         float64   // Parameter t along the ray
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit normal, facing against the incoming ray
	FrontFace bool      // Whether ray hit the front face
	U, V      float64   // Surface coordinates
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

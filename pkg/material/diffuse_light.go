package material

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	Emit Texture // Emitted radiance
}

// NewDiffuseLight creates a new emissive material with uniform radiance
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// Emitted returns the emission on the front face only
func (d *DiffuseLight) Emitted(rayIn core.Ray, hit *HitRecord, u, v float64, point core.Vec3) core.Vec3 {
	if hit != nil && !hit.FrontFace {
		return core.Vec3{}
	}
	return d.Emit.Value(u, v, point)
}

// Scatter never scatters; lights absorb all incoming rays
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// ScatteringPDF is always zero
func (d *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	return 0
}

package material

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Emitted returns black; diffuse surfaces do not emit
func (l *Lambertian) Emitted(rayIn core.Ray, hit *HitRecord, u, v float64, point core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Scatter samples a cosine-weighted direction around the hit normal
func (l *Lambertian) Scatter(rayIn core.Ray, hit *HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	onb := core.NewONBFromW(hit.Normal)
	direction := onb.Local(core.RandomCosineDirection(sampler.Get2D())).Normalize()

	return ScatterRecord{
		Albedo:    l.Albedo.Value(hit.U, hit.V, hit.Point),
		Scattered: core.NewRayAtTime(hit.Point, direction, rayIn.Time),
		PDF:       onb.W.Dot(direction) / math.Pi,
	}, true
}

// ScatteringPDF is cos(θ)/π above the surface and zero below it
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit *HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}

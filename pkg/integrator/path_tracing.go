package integrator

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/lights"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// PathTracer is a recursive path tracer. When lights are configured every
// diffuse bounce is sent toward a sampled point on a light; otherwise the
// material's own sampled direction is followed.
type PathTracer struct {
	Lights     lights.LightSampler // May be nil or empty
	Tolerances core.Tolerances
}

// NewPathTracer creates a path tracer
func NewPathTracer(lightSampler lights.LightSampler, tolerances core.Tolerances) *PathTracer {
	return &PathTracer{
		Lights:     lightSampler,
		Tolerances: tolerances,
	}
}

// Radiance computes the color carried back along ray
func (pt *PathTracer) Radiance(ray core.Ray, background core.Vec3, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth < 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, pt.Tolerances.Epsilon, pt.Tolerances.Infinity)
	if !isHit {
		return background
	}

	emitted := hit.Material.Emitted(ray, hit, hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return emitted
	}

	if pt.Lights == nil || pt.Lights.Len() == 0 {
		return pt.materialSampled(ray, hit, scatter, emitted, background, world, depth, sampler)
	}

	light, selectionProbability := pt.Lights.SampleLight(sampler.Get1D())
	if light == nil || selectionProbability <= 0 {
		return emitted
	}

	lightSample := lights.SampleToward(light, hit.Point, sampler.Get2D())
	if lightSample.Direction.Dot(hit.Normal) < 0 {
		return emitted
	}
	if lightSample.Cosine < pt.Tolerances.Epsilon {
		return emitted
	}

	pdf := lightSample.DistanceSquared / (lightSample.Cosine * light.Area()) * selectionProbability
	if pdf <= 0 {
		return emitted
	}

	scattered := core.NewRayAtTime(hit.Point, lightSample.Direction, ray.Time)
	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	incoming := pt.Radiance(scattered, background, world, depth-1, sampler)

	return emitted.Add(scatter.Albedo.MultiplyVec(incoming).Multiply(scatteringPDF / pdf))
}

// materialSampled follows the direction the material itself sampled,
// weighting by the material PDF
func (pt *PathTracer) materialSampled(ray core.Ray, hit *material.HitRecord, scatter material.ScatterRecord, emitted, background core.Vec3, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	if scatter.PDF <= 0 {
		return emitted
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scatter.Scattered)
	incoming := pt.Radiance(scatter.Scattered, background, world, depth-1, sampler)

	return emitted.Add(scatter.Albedo.MultiplyVec(incoming).Multiply(scatteringPDF / scatter.PDF))
}

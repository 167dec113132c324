package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/lights"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// fixedSampler returns the same value for every dimension
type fixedSampler struct {
	value float64
}

func (s fixedSampler) Get1D() float64 { return s.value }
func (s fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.value, s.value)
}
func (s fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.value, s.value, s.value)
}

func assertColorNear(t *testing.T, expected, actual core.Vec3, tolerance float64) {
	t.Helper()
	if math.Abs(expected.X-actual.X) > tolerance ||
		math.Abs(expected.Y-actual.Y) > tolerance ||
		math.Abs(expected.Z-actual.Z) > tolerance {
		t.Errorf("Expected color %v, got %v", expected, actual)
	}
}

// litFloor builds a floor at y=0 and an emitting unit square at height,
// facing downward toward the floor
func litFloor(height float64, emit core.Vec3) (*geometry.HittableList, *lights.RectLight) {
	floor := geometry.NewXZRect(-10, 10, -10, 10, 0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	lightRect := geometry.NewXZRect(-0.5, 0.5, -0.5, 0.5, height, material.NewDiffuseLight(emit))

	world := geometry.NewHittableList(floor, geometry.NewFlipFace(lightRect))
	return world, lights.NewRectLight(lightRect)
}

func TestPathTracer_NegativeDepthIsBlack(t *testing.T) {
	world, light := litFloor(2, core.NewVec3(4, 4, 4))
	pt := NewPathTracer(lights.NewUniformLightSampler(light), core.DefaultTolerances())

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	color := pt.Radiance(ray, core.NewVec3(1, 1, 1), world, -1, core.NewSeededSampler(1))

	if !color.IsZero() {
		t.Errorf("Expected black at depth -1, got %v", color)
	}
}

func TestPathTracer_EmptyWorldReturnsBackground(t *testing.T) {
	pt := NewPathTracer(nil, core.DefaultTolerances())
	background := core.NewVec3(0.7, 0.8, 1.0)

	tests := []struct {
		name  string
		depth int
	}{
		{"depth 0", 0},
		{"depth 10", 10},
		{"depth 50", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0.3, -0.2, -1))
			color := pt.Radiance(ray, background, geometry.NewHittableList(), tt.depth, core.NewSeededSampler(2))
			if color != background {
				t.Errorf("Expected background %v, got %v", background, color)
			}
		})
	}
}

func TestPathTracer_EmitterFaces(t *testing.T) {
	emit := core.NewVec3(3, 2, 1)
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -5), 1, material.NewDiffuseLight(emit)))
	pt := NewPathTracer(nil, core.DefaultTolerances())

	outside := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if color := pt.Radiance(outside, core.Vec3{}, world, 5, core.NewSeededSampler(3)); color != emit {
		t.Errorf("Expected emission %v from the front face, got %v", emit, color)
	}

	inside := core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, -1))
	if color := pt.Radiance(inside, core.Vec3{}, world, 5, core.NewSeededSampler(3)); !color.IsZero() {
		t.Errorf("Expected no emission from the back face, got %v", color)
	}
}

func TestPathTracer_DirectLightSample(t *testing.T) {
	world, light := litFloor(2, core.NewVec3(4, 4, 4))
	pt := NewPathTracer(lights.NewUniformLightSampler(light), core.DefaultTolerances())

	// With every sample at 0.5 the light point is the center of the square,
	// straight above the floor hit: d²=4, both cosines 1, area 1.
	// albedo · (1/π) · L / (d² / area) = 0.5 · 4 / (4π)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	color := pt.Radiance(ray, core.Vec3{}, world, 5, fixedSampler{value: 0.5})

	expected := 0.5 / math.Pi
	assertColorNear(t, core.NewVec3(expected, expected, expected), color, 1e-9)
}

func TestPathTracer_SelectionProbability(t *testing.T) {
	world, light := litFloor(2, core.NewVec3(4, 4, 4))
	sampler, err := lights.NewWeightedLightSampler([]lights.Light{light, light}, []float64{1, 1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	pt := NewPathTracer(sampler, core.DefaultTolerances())

	// Each entry is picked half the time, so one sample counts double
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	color := pt.Radiance(ray, core.Vec3{}, world, 5, fixedSampler{value: 0.5})

	expected := 1.0 / math.Pi
	assertColorNear(t, core.NewVec3(expected, expected, expected), color, 1e-9)
}

func TestPathTracer_LightBehindSurface(t *testing.T) {
	world, light := litFloor(-2, core.NewVec3(4, 4, 4))
	pt := NewPathTracer(lights.NewUniformLightSampler(light), core.DefaultTolerances())

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	color := pt.Radiance(ray, core.Vec3{}, world, 5, core.NewSeededSampler(4))

	if !color.IsZero() {
		t.Errorf("Expected black for a light below the floor, got %v", color)
	}
}

func TestPathTracer_OccludedLight(t *testing.T) {
	world, light := litFloor(2, core.NewVec3(4, 4, 4))
	// A black blocker between the floor and the light
	world.Add(geometry.NewXZRect(-1, 1, -1, 1, 1, material.NewLambertian(core.NewVec3(0, 0, 0))))
	pt := NewPathTracer(lights.NewUniformLightSampler(light), core.DefaultTolerances())

	ray := core.NewRay(core.NewVec3(0, 0.5, 0), core.NewVec3(0, -1, 0))
	color := pt.Radiance(ray, core.Vec3{}, world, 5, fixedSampler{value: 0.5})

	if !color.IsZero() {
		t.Errorf("Expected black under the blocker, got %v", color)
	}
}

func TestPathTracer_MaterialSamplingWithoutLights(t *testing.T) {
	// A single convex diffuse sphere under a white sky: every bounce escapes,
	// so the estimate is exactly the albedo
	albedo := core.NewVec3(0.5, 0.25, 0.75)
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(albedo)))
	pt := NewPathTracer(nil, core.DefaultTolerances())

	sampler := core.NewSeededSampler(5)
	for i := 0; i < 100; i++ {
		ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
		color := pt.Radiance(ray, core.NewVec3(1, 1, 1), world, 10, sampler)
		assertColorNear(t, albedo, color, 1e-9)
	}
}

func TestPathTracer_TwoSpheres(t *testing.T) {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
	)
	pt := NewPathTracer(nil, core.DefaultTolerances())
	background := core.NewVec3(0.7, 0.8, 1.0)

	sampler := core.NewSeededSampler(6)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	var sum core.Vec3
	const samples = 200
	for i := 0; i < samples; i++ {
		color := pt.Radiance(ray, background, world, 50, sampler)
		if math.IsNaN(color.X) || math.IsNaN(color.Y) || math.IsNaN(color.Z) {
			t.Fatalf("Sample %d is NaN", i)
		}
		sum = sum.Add(color)
	}
	mean := sum.Multiply(1.0 / samples)

	// Reflectance below one can only darken the sky
	if mean.X > background.X || mean.Y > background.Y || mean.Z > background.Z {
		t.Errorf("Expected mean %v to be darker than the background %v", mean, background)
	}
	if mean.X <= 0 {
		t.Errorf("Expected some light to reach the camera, got %v", mean)
	}
}

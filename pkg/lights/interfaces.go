package lights

import "github.com/df07/go-bvh-pathtracer/pkg/core"

// Light is an emitter that can be sampled by area for direct lighting
type Light interface {
	// SamplePoint maps a sample in [0,1)² uniformly onto the light surface
	SamplePoint(sample core.Vec2) core.Vec3

	// NormalAt returns the unit surface normal at a point on the light
	NormalAt(point core.Vec3) core.Vec3

	// Area returns the emitting surface area
	Area() float64
}

// LightSample is a point sampled on a light as seen from a shading point
type LightSample struct {
	Point           core.Vec3 // Point on the light source
	Normal          core.Vec3 // Light normal at Point
	Direction       core.Vec3 // Unit direction from shading point to light
	DistanceSquared float64   // Squared distance to Point
	Cosine          float64   // |Direction · Normal|
}

// LightSampler picks one light from a set
type LightSampler interface {
	// SampleLight selects a light with u in [0,1) and returns it with its
	// selection probability. It returns (nil, 0) when there are no lights.
	SampleLight(u float64) (Light, float64)

	// Len returns the number of lights
	Len() int
}

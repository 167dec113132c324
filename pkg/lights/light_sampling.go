package lights

import (
	"fmt"
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// SampleToward samples a point on light and describes it from point
func SampleToward(light Light, point core.Vec3, sample core.Vec2) LightSample {
	onLight := light.SamplePoint(sample)
	toLight := onLight.Subtract(point)
	distanceSquared := toLight.LengthSquared()
	direction := toLight.Normalize()
	normal := light.NormalAt(onLight)

	return LightSample{
		Point:           onLight,
		Normal:          normal,
		Direction:       direction,
		DistanceSquared: distanceSquared,
		Cosine:          math.Abs(direction.Dot(normal)),
	}
}

// WeightedLightSampler picks lights with fixed, normalized weights
type WeightedLightSampler struct {
	lights  []Light
	weights []float64
}

// NewWeightedLightSampler creates a sampler with one weight per light.
// Weights are normalized to sum to 1; all-zero weights fall back to uniform.
func NewWeightedLightSampler(lights []Light, weights []float64) (*WeightedLightSampler, error) {
	if len(lights) != len(weights) {
		return nil, fmt.Errorf("lights length (%d) must match weights length (%d)", len(lights), len(weights))
	}

	totalWeight := 0.0
	for i, weight := range weights {
		if weight < 0 || math.IsNaN(weight) {
			return nil, fmt.Errorf("weight %d is %v: weights must be non-negative", i, weight)
		}
		totalWeight += weight
	}

	normalized := make([]float64, len(weights))
	for i, weight := range weights {
		if totalWeight == 0 {
			normalized[i] = 1.0 / float64(len(weights))
		} else {
			normalized[i] = weight / totalWeight
		}
	}

	return &WeightedLightSampler{lights: lights, weights: normalized}, nil
}

// NewUniformLightSampler gives every light the same probability
func NewUniformLightSampler(lights ...Light) *WeightedLightSampler {
	weights := make([]float64, len(lights))
	for i := range weights {
		weights[i] = 1.0 / float64(len(lights))
	}
	return &WeightedLightSampler{lights: lights, weights: weights}
}

// SampleLight walks the cumulative distribution
func (s *WeightedLightSampler) SampleLight(u float64) (Light, float64) {
	if len(s.lights) == 0 {
		return nil, 0
	}

	var cumulativeProbability float64
	for i, light := range s.lights {
		cumulativeProbability += s.weights[i]
		if u < cumulativeProbability {
			return light, s.weights[i]
		}
	}

	// Rounding can leave the total just below 1
	last := len(s.lights) - 1
	return s.lights[last], s.weights[last]
}

// Probability returns the selection probability of the light at index
func (s *WeightedLightSampler) Probability(index int) float64 {
	if index < 0 || index >= len(s.weights) {
		return 0
	}
	return s.weights[index]
}

// Len returns the number of lights
func (s *WeightedLightSampler) Len() int {
	return len(s.lights)
}

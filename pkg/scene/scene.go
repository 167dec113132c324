package scene

import (
	"fmt"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/lights"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          *geometry.HittableList // Objects in the scene
	Lights         []lights.Light         // Lights sampled for direct lighting, may be empty
	LightWeights   []float64              // Selection weights per light; nil means uniform
	LightSampler   lights.LightSampler    // Nil when there are no lights
	CameraConfig   renderer.CameraConfig
	Background     core.Vec3 // Radiance of rays that escape
	SamplingConfig renderer.SamplingConfig
}

// GetCameraConfig returns the scene's camera setup
func (s *Scene) GetCameraConfig() renderer.CameraConfig {
	return s.CameraConfig
}

// GetWorld returns the world list
func (s *Scene) GetWorld() geometry.Hittable {
	return s.World
}

// GetBackground returns the background radiance
func (s *Scene) GetBackground() core.Vec3 {
	return s.Background
}

// Preprocess builds the world's BVH and the light sampler. Call it after the
// world or lights change.
func (s *Scene) Preprocess() error {
	if err := s.World.Build(s.CameraConfig.Time0, s.CameraConfig.Time1); err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}

	switch {
	case len(s.Lights) == 0:
		s.LightSampler = nil
	case s.LightWeights == nil:
		s.LightSampler = lights.NewUniformLightSampler(s.Lights...)
	default:
		sampler, err := lights.NewWeightedLightSampler(s.Lights, s.LightWeights)
		if err != nil {
			return fmt.Errorf("scene %s: %w", s.Name, err)
		}
		s.LightSampler = sampler
	}
	return nil
}

// SetBVHThreshold rebuilds the world with a different BVH threshold
func (s *Scene) SetBVHThreshold(threshold int) error {
	s.World = geometry.NewHittableListWithThreshold(threshold, s.World.Entries()...)
	return s.Preprocess()
}

// mustPreprocess is used by the built-in scenes, whose data is fixed
func mustPreprocess(s *Scene) *Scene {
	if err := s.Preprocess(); err != nil {
		panic(err)
	}
	return s
}

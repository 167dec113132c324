package scene

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
)

// NewTwoSpheres creates a small diffuse sphere resting on a huge one under a
// sky-blue background, with no lights
func NewTwoSpheres() *Scene {
	gray := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
	)

	return mustPreprocess(&Scene{
		Name:  "two-spheres",
		World: world,
		CameraConfig: renderer.CameraConfig{
			LookFrom:    core.NewVec3(0, 0, 0),
			LookAt:      core.NewVec3(0, 0, -1),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        90,
			AspectRatio: 16.0 / 9.0,
		},
		Background: core.NewVec3(0.7, 0.8, 1.0),
		SamplingConfig: renderer.SamplingConfig{
			Width:           384,
			Height:          216,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			Seed:            42,
		},
	})
}

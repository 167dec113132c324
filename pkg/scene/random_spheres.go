package scene

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
)

// randomSpheresGrid is the half-width of the grid of small spheres
const randomSpheresGrid = 11

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS, then cube
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewVec3(r, g, blue).Clamp(0, 1)
}

// NewRandomSpheres creates a checkered ground with a jittered grid of small
// diffuse spheres, some of them moving, and three large spheres. The layout
// is fixed by seed. With several hundred entries the world is BVH-bound.
func NewRandomSpheres(seed int64) *Scene {
	sampler := core.NewSeededSampler(seed)

	checker := material.NewCheckerTexture(
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9),
		10,
	)
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	)

	for a := -randomSpheresGrid; a < randomSpheresGrid; a++ {
		for b := -randomSpheresGrid; b < randomSpheresGrid; b++ {
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			hue := 360 * sampler.Get1D()
			albedo := material.NewLambertian(oklchToRGB(0.7, 0.15, hue))

			if sampler.Get1D() < 0.2 {
				// Bounce upward during the shutter interval
				end := center.Add(core.NewVec3(0, 0.5*sampler.Get1D(), 0))
				world.Add(geometry.NewMovingSphere(center, end, 0, 1, 0.2, albedo))
			} else {
				world.Add(geometry.NewSphere(center, 0.2, albedo))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewLambertian(oklchToRGB(0.8, 0.05, 90))))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(oklchToRGB(0.5, 0.15, 30))))
	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBox(core.NewVec3(-0.7, 0, -0.7), core.NewVec3(0.7, 1.4, 0.7), material.NewLambertian(oklchToRGB(0.6, 0.12, 250))), 30),
		core.NewVec3(4, 0, 0),
	))

	return mustPreprocess(&Scene{
		Name:  "random-spheres",
		World: world,
		CameraConfig: renderer.CameraConfig{
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          20,
			AspectRatio:   16.0 / 9.0,
			Aperture:      0.1,
			FocusDistance: 10,
			Time0:         0,
			Time1:         1,
		},
		Background: core.NewVec3(0.7, 0.8, 1.0),
		SamplingConfig: renderer.SamplingConfig{
			Width:           400,
			Height:          225,
			SamplesPerPixel: 50,
			MaxDepth:        50,
			Seed:            seed,
		},
	})
}

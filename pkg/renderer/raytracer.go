package renderer

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/integrator"
	"github.com/df07/go-bvh-pathtracer/pkg/log"
)

var logger = log.New("renderer")

// Scene interface to avoid circular imports
type Scene interface {
	GetCameraConfig() CameraConfig
	GetWorld() geometry.Hittable
	GetBackground() core.Vec3
}

// Raytracer renders a scene one pixel at a time
type Raytracer struct {
	scene      Scene
	integrator integrator.Integrator
	config     SamplingConfig
	camera     *Camera
}

// NewRaytracer creates a new raytracer. A camera without an aspect ratio
// takes the image's.
func NewRaytracer(scene Scene, integ integrator.Integrator, config SamplingConfig) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	cameraConfig := scene.GetCameraConfig()
	if cameraConfig.AspectRatio == 0 {
		cameraConfig.AspectRatio = config.AspectRatio()
	}

	return &Raytracer{
		scene:      scene,
		integrator: integ,
		config:     config,
		camera:     NewCamera(cameraConfig),
	}, nil
}

// Camera returns the camera rays are generated from
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render traces SamplesPerPixel jittered rays through every pixel. Rows are
// traced bottom-up and stored top-down in the image.
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	width, height := rt.config.Width, rt.config.Height
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	sampler := core.NewSeededSampler(rt.config.Seed)
	world := rt.scene.GetWorld()
	background := rt.scene.GetBackground()

	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
	}
	start := time.Now()

	for j := height - 1; j >= 0; j-- {
		if log.IsDebug() {
			logger.Debugf("scanlines remaining: %d", j)
		}

		for i := 0; i < width; i++ {
			var colorAccum core.Vec3
			valid := 0

			for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
				s := (float64(i) + sampler.Get1D()) / float64(width-1)
				t := (float64(j) + sampler.Get1D()) / float64(height-1)
				ray := rt.camera.GetRay(s, t, sampler)

				radiance := rt.integrator.Radiance(ray, background, world, rt.config.MaxDepth, sampler)
				if !isFinite(radiance) {
					stats.InvalidSamples++
					continue
				}
				colorAccum = colorAccum.Add(radiance)
				valid++
			}

			stats.TotalSamples += rt.config.SamplesPerPixel
			img.SetRGBA(i, height-1-j, ToRGBA(averageSamples(colorAccum, valid)))
		}
	}

	stats.TotalPixels = width * height
	stats.Elapsed = time.Since(start)
	stats.AverageLuminance = CalculateAverageLuminance(img)

	logger.Noticef("rendered %dx%d at %d spp in %s", width, height, rt.config.SamplesPerPixel, stats.Elapsed)
	if stats.InvalidSamples > 0 {
		logger.Warningf("dropped %d non-finite samples", stats.InvalidSamples)
	}
	return img, stats
}

// averageSamples divides by the finite samples only; a pixel with none is black
func averageSamples(sum core.Vec3, valid int) core.Vec3 {
	if valid == 0 {
		return core.Vec3{}
	}
	return sum.Multiply(1.0 / float64(valid))
}

// ToRGBA converts an averaged linear color to 8-bit sRGB-ish output with
// gamma 2 and 255.999 scaling
func ToRGBA(c core.Vec3) color.RGBA {
	c = c.Clamp(0, math.Inf(1)).GammaCorrect(2.0).Clamp(0, 1)
	return color.RGBA{
		R: uint8(255.999 * c.X),
		G: uint8(255.999 * c.Y),
		B: uint8(255.999 * c.Z),
		A: 255,
	}
}

func isFinite(c core.Vec3) bool {
	for _, v := range []float64{c.X, c.Y, c.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

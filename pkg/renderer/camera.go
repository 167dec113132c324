package renderer

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// CameraConfig describes a thin-lens camera with a shutter interval
type CameraConfig struct {
	LookFrom      core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up, need not be orthogonal to the view
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height; zero means use the image size
	Aperture      float64   // Lens diameter; zero is a pinhole
	FocusDistance float64   // Distance to the plane in focus; zero means |LookAt - LookFrom|
	Time0, Time1  float64   // Shutter open and close times
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// NewCamera creates a camera from config
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := config.AspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = config.LookFrom.Subtract(config.LookAt).Length()
	}

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth * focusDistance)
	vertical := v.Multiply(viewportHeight * focusDistance)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		time0:           config.Time0,
		time1:           config.Time1,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// (0, 0) is the lower-left corner. The ray time is drawn from the shutter
// interval.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.time0
	if c.time1 != c.time0 {
		time = core.SampleRange(sampler.Get1D(), c.time0, c.time1)
	}

	return core.NewRayAtTime(origin, direction, time)
}

// Forward returns the unit viewing direction
func (c *Camera) Forward() core.Vec3 {
	return c.w.Negate()
}

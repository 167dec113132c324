package material

import (
	"math"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns the color at surface coordinates (u, v) and point p
	Value(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two textures in a 3D checker pattern
type CheckerTexture struct {
	Even  Texture
	Odd   Texture
	Scale float64 // Checker frequency; one cell spans π/Scale units
}

// NewCheckerTexture creates a checker pattern of two solid colors
func NewCheckerTexture(even, odd core.Vec3, scale float64) *CheckerTexture {
	return &CheckerTexture{
		Even:  NewSolidColor(even),
		Odd:   NewSolidColor(odd),
		Scale: scale,
	}
}

// Value picks even or odd by the sign of a product of sines
func (c *CheckerTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*p.X) * math.Sin(c.Scale*p.Y) * math.Sin(c.Scale*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

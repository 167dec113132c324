package lights

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
)

// RectLight samples an axis-aligned rect. The rect is shared with the world,
// usually behind a FlipFace so its emitting side faces the scene.
type RectLight struct {
	Rect *geometry.Rect
}

// NewRectLight creates a light over rect
func NewRectLight(rect *geometry.Rect) *RectLight {
	return &RectLight{Rect: rect}
}

// SamplePoint samples the rect uniformly
func (l *RectLight) SamplePoint(sample core.Vec2) core.Vec3 {
	return l.Rect.PointAt(sample)
}

// NormalAt returns the rect's normal, which is the same everywhere
func (l *RectLight) NormalAt(point core.Vec3) core.Vec3 {
	return l.Rect.Normal()
}

// Area returns the rect's area
func (l *RectLight) Area() float64 {
	return l.Rect.Area()
}

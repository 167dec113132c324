package renderer

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable settings
var ErrInvalidConfig = errors.New("invalid sampling config")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Seed for the render's sampler
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Validate checks that the config can produce an image
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width < 2 || c.Height < 2:
		return fmt.Errorf("%w: image must be at least 2x2, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}

// AspectRatio returns Width / Height
func (c SamplingConfig) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

package renderer

import (
	"image"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width, Height    int           // Image size
	SamplesPerPixel  int           // Rays traced per pixel
	MaxDepth         int           // Bounce limit
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of samples taken
	InvalidSamples   int           // NaN or infinite samples dropped from the average
	AverageLuminance float64       // Mean Rec. 709 luminance of the 8-bit output
	Elapsed          time.Duration // Wall time spent tracing
}

// SamplesPerSecond returns the traced sample rate
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}

// CalculateAverageLuminance returns the mean luminance of img in [0, 1]
func CalculateAverageLuminance(img *image.RGBA) float64 {
	bounds := img.Bounds()
	pixels := bounds.Dx() * bounds.Dy()
	if pixels == 0 {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := img.RGBAAt(x, y)
			total += 0.2126*float64(c.R)/255 + 0.7152*float64(c.G)/255 + 0.0722*float64(c.B)/255
		}
	}
	return total / float64(pixels)
}

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
	"github.com/df07/go-bvh-pathtracer/pkg/scene"
)

func TestRenderOptions_Apply(t *testing.T) {
	base := renderer.SamplingConfig{Width: 500, Height: 500, SamplesPerPixel: 100, MaxDepth: 50, Seed: 1}

	tests := []struct {
		name     string
		opts     renderOptions
		expected renderer.SamplingConfig
	}{
		{
			name:     "no overrides",
			opts:     renderOptions{MaxDepth: -1, Scene: sceneOptions{Seed: 1}},
			expected: base,
		},
		{
			name:     "size and samples",
			opts:     renderOptions{Width: 64, Height: 32, SamplesPerPixel: 4, MaxDepth: -1, Scene: sceneOptions{Seed: 9}},
			expected: renderer.SamplingConfig{Width: 64, Height: 32, SamplesPerPixel: 4, MaxDepth: 50, Seed: 9},
		},
		{
			name:     "explicit zero depth",
			opts:     renderOptions{MaxDepth: 0, Scene: sceneOptions{Seed: 1}},
			expected: renderer.SamplingConfig{Width: 500, Height: 500, SamplesPerPixel: 100, MaxDepth: 0, Seed: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.apply(base); got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestLoadScene(t *testing.T) {
	sc, err := loadScene(sceneOptions{ID: "random-spheres", Seed: 3, Threshold: -1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !sc.World.IsBuilt() {
		t.Error("Expected the default threshold to build a BVH")
	}

	sc, err = loadScene(sceneOptions{ID: "random-spheres", Seed: 3, Threshold: 100000})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if sc.World.IsBuilt() {
		t.Error("Expected a huge threshold to keep the world linear")
	}

	if _, err := loadScene(sceneOptions{ID: "missing"}); !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestRenderFrame(t *testing.T) {
	for _, name := range []string{"frame.ppm", "frame.png"} {
		t.Run(name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), name)
			opts := renderOptions{
				Scene:           sceneOptions{ID: "two-spheres", Seed: 1, Threshold: -1},
				Width:           8,
				Height:          6,
				SamplesPerPixel: 2,
				MaxDepth:        3,
				Output:          out,
			}

			stats, err := renderFrame(opts)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if stats.TotalPixels != 48 {
				t.Errorf("Expected 48 pixels, got %d", stats.TotalPixels)
			}

			info, err := os.Stat(out)
			if err != nil {
				t.Fatalf("Expected output file: %v", err)
			}
			if info.Size() == 0 {
				t.Error("Expected a non-empty output file")
			}
		})
	}
}

func TestRenderFrame_BadOutput(t *testing.T) {
	opts := renderOptions{
		Scene:           sceneOptions{ID: "two-spheres", Seed: 1, Threshold: -1},
		Width:           4,
		Height:          4,
		SamplesPerPixel: 1,
		MaxDepth:        1,
		Output:          filepath.Join(t.TempDir(), "frame.bmp"),
	}

	if _, err := renderFrame(opts); err == nil {
		t.Error("Expected an error for an unsupported output format")
	}
}

func TestTables(t *testing.T) {
	scenes := sceneTable(scene.ListScenes())
	for _, id := range []string{"cornell", "cornell-sphere", "two-spheres", "random-spheres"} {
		if !strings.Contains(scenes, id) {
			t.Errorf("Scene table is missing %q:\n%s", id, scenes)
		}
	}

	cornell, err := loadScene(sceneOptions{ID: "cornell", Threshold: -1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	bvh := bvhTable(cornell.World)
	if !strings.Contains(bvh, "bvh") || !strings.Contains(bvh, "ENTRIES") {
		t.Errorf("Unexpected BVH table:\n%s", bvh)
	}

	orb, err := loadScene(sceneOptions{ID: "cornell-sphere", Threshold: -1})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	lightsTable := lightTable(orb)
	for _, want := range []string{"*lights.RectLight", "*lights.SphereLight", "13650.0"} {
		if !strings.Contains(lightsTable, want) {
			t.Errorf("Light table is missing %q:\n%s", want, lightsTable)
		}
	}

	stats := statsTable(renderer.RenderStats{
		Width: 10, Height: 5, SamplesPerPixel: 2, MaxDepth: 3,
		TotalPixels: 50, TotalSamples: 100, Elapsed: 2 * time.Second,
	})
	for _, want := range []string{"10x5", "100", "2s"} {
		if !strings.Contains(stats, want) {
			t.Errorf("Stats table is missing %q:\n%s", want, stats)
		}
	}
}

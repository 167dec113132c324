package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/integrator"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// renderOptions override a scene's sampling settings; zero keeps the
// scene's value
type renderOptions struct {
	Scene           sceneOptions
	Width, Height   int
	SamplesPerPixel int
	MaxDepth        int
	Output          string
}

func renderOptionsFromContext(ctx *cli.Context) renderOptions {
	opts := renderOptions{
		Scene:           sceneOptionsFromContext(ctx),
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        -1,
		Output:          ctx.String("out"),
	}
	if ctx.IsSet("depth") {
		opts.MaxDepth = ctx.Int("depth")
	}
	return opts
}

// apply returns config with the options' overrides
func (opts renderOptions) apply(config renderer.SamplingConfig) renderer.SamplingConfig {
	if opts.Width > 0 {
		config.Width = opts.Width
	}
	if opts.Height > 0 {
		config.Height = opts.Height
	}
	if opts.SamplesPerPixel > 0 {
		config.SamplesPerPixel = opts.SamplesPerPixel
	}
	if opts.MaxDepth >= 0 {
		config.MaxDepth = opts.MaxDepth
	}
	config.Seed = opts.Scene.Seed
	return config
}

// RenderFrame renders a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	stats, err := renderFrame(renderOptionsFromContext(ctx))
	if err != nil {
		logger.Error(err)
		return err
	}

	logger.Noticef("frame statistics\n%s", statsTable(stats))
	return nil
}

func renderFrame(opts renderOptions) (renderer.RenderStats, error) {
	sc, err := loadScene(opts.Scene)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	config := opts.apply(sc.SamplingConfig)
	tracer := integrator.NewPathTracer(sc.LightSampler, core.DefaultTolerances())

	rt, err := renderer.NewRaytracer(sc, tracer, config)
	if err != nil {
		return renderer.RenderStats{}, err
	}

	logger.Infof("rendering %q at %dx%d, %d spp, depth %d", sc.Name, config.Width, config.Height, config.SamplesPerPixel, config.MaxDepth)
	img, stats := rt.Render()

	if err := renderer.SaveImage(opts.Output, img); err != nil {
		return stats, fmt.Errorf("writing %s: %w", opts.Output, err)
	}
	logger.Noticef("wrote %s", opts.Output)
	return stats, nil
}

func statsTable(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "SPP", "Depth", "Samples", "Invalid", "Luminance", "Samples/sec", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.InvalidSamples),
		fmt.Sprintf("%.4f", stats.AverageLuminance),
		fmt.Sprintf("%.0f", stats.SamplesPerSecond()),
		stats.Elapsed.String(),
	})
	table.Render()
	return buf.String()
}

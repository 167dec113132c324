package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/lights"
	"github.com/df07/go-bvh-pathtracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// sceneOptions selects and prepares a built-in scene
type sceneOptions struct {
	ID        string
	Seed      int64
	Threshold int // BVH threshold; negative keeps the scene's own
}

func sceneOptionsFromContext(ctx *cli.Context) sceneOptions {
	opts := sceneOptions{
		ID:        ctx.String("scene"),
		Seed:      ctx.Int64("seed"),
		Threshold: -1,
	}
	if ctx.IsSet("threshold") {
		opts.Threshold = ctx.Int("threshold")
	}
	return opts
}

func loadScene(opts sceneOptions) (*scene.Scene, error) {
	sc, err := scene.Load(opts.ID, opts.Seed)
	if err != nil {
		return nil, err
	}

	if opts.Threshold >= 0 {
		if err := sc.SetBVHThreshold(opts.Threshold); err != nil {
			return nil, err
		}
	}

	logger.Infof("loaded scene %q: %d top-level entries, %d lights, BVH built: %t",
		sc.Name, sc.World.Len(), len(sc.Lights), sc.World.IsBuilt())
	return sc, nil
}

// ListScenes prints the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	logger.Noticef("available scenes\n%s", sceneTable(scene.ListScenes()))
	return nil
}

func sceneTable(scenes []scene.SceneInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scenes {
		table.Append([]string{info.ID, info.Description})
	}
	table.Render()
	return buf.String()
}

// SceneStats prints the acceleration structure of a scene.
func SceneStats(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(sceneOptionsFromContext(ctx))
	if err != nil {
		logger.Error(err)
		return err
	}

	logger.Noticef("scene statistics\n%s", bvhTable(sc.World))
	if len(sc.Lights) > 0 {
		logger.Noticef("light statistics\n%s", lightTable(sc))
	}
	return nil
}

// lightTable lists the sampled lights and how often each is picked
func lightTable(sc *scene.Scene) string {
	weighted, _ := sc.LightSampler.(*lights.WeightedLightSampler)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Light", "Type", "Area", "Probability"})
	for i, light := range sc.Lights {
		probability := "-"
		if weighted != nil {
			probability = fmt.Sprintf("%.4f", weighted.Probability(i))
		}
		table.Append([]string{
			fmt.Sprintf("#%d", i),
			fmt.Sprintf("%T", light),
			fmt.Sprintf("%.1f", light.Area()),
			probability,
		})
	}
	table.Render()
	return buf.String()
}

// bvhTable lists every top-level entry; BVH nodes get their shape
func bvhTable(world *geometry.HittableList) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Entry", "Type", "Nodes", "Leaves", "Max depth"})

	addNode := func(name string, node *geometry.BVHNode) {
		stats := node.Stats()
		table.Append([]string{
			name,
			"bvh",
			fmt.Sprintf("%d", stats.Nodes),
			fmt.Sprintf("%d", stats.Leaves),
			fmt.Sprintf("%d", stats.MaxDepth),
		})
	}

	if root := world.BVH(); root != nil {
		addNode("world", root)
	} else {
		for i, entry := range world.Entries() {
			name := fmt.Sprintf("#%d", i)
			if node, ok := entry.(*geometry.BVHNode); ok {
				addNode(name, node)
				continue
			}
			table.Append([]string{name, fmt.Sprintf("%T", entry), "-", "1", "-"})
		}
	}

	table.SetFooter([]string{"", "", "", "ENTRIES", fmt.Sprintf("%d", world.Len())})
	table.Render()
	return buf.String()
}

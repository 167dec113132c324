package scene

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/geometry"
	"github.com/df07/go-bvh-pathtracer/pkg/lights"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
	"github.com/df07/go-bvh-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellRoom holds the shared parts of the Cornell scenes
type cornellRoom struct {
	objects      *geometry.HittableList
	ceilingLight *geometry.Rect
	white        material.Material
}

// newCornellRoom builds the walls, the ceiling light and the tall box
func newCornellRoom() cornellRoom {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	// The light rect is shared: flipped in the world so it emits downward,
	// sampled directly by the integrator
	ceilingLight := geometry.NewXZRect(213, 343, 227, 332, 554, light)

	objects := geometry.NewHittableList(
		geometry.NewFlipFace(geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green)),
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),
		geometry.NewFlipFace(ceilingLight),
		geometry.NewFlipFace(geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white)),
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white),
		geometry.NewFlipFace(geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white)),
	)

	var tall geometry.Hittable = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))
	objects.Add(tall)

	return cornellRoom{objects: objects, ceilingLight: ceilingLight, white: white}
}

// scene wraps the room in a single BVH node, whatever the threshold
func (r cornellRoom) scene(name string, sceneLights []lights.Light, weights []float64) *Scene {
	root, err := geometry.NewBVHNode(r.objects.Entries(), 0, 1)
	if err != nil {
		panic(err)
	}

	return mustPreprocess(&Scene{
		Name:         name,
		World:        geometry.NewHittableList(root),
		Lights:       sceneLights,
		LightWeights: weights,
		CameraConfig: renderer.CameraConfig{
			LookFrom:      core.NewVec3(278, 278, -800),
			LookAt:        core.NewVec3(278, 278, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          40,
			AspectRatio:   1,
			Aperture:      0,
			FocusDistance: 10,
			Time0:         0,
			Time1:         1,
		},
		Background: core.NewVec3(0, 0, 0),
		SamplingConfig: renderer.SamplingConfig{
			Width:           500,
			Height:          500,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			Seed:            42,
		},
	})
}

// NewCornellBox creates the classic Cornell box: colored side walls,
// a ceiling light and two rotated white boxes
func NewCornellBox() *Scene {
	room := newCornellRoom()

	var short geometry.Hittable = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), room.white)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))
	room.objects.Add(short)

	return room.scene("cornell", []lights.Light{lights.NewRectLight(room.ceilingLight)}, nil)
}

// NewCornellSphere replaces the short box with a glowing sphere. Both the
// ceiling rect and the sphere are sampled, weighted by their areas.
func NewCornellSphere() *Scene {
	room := newCornellRoom()

	glow := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	orb := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, glow)
	room.objects.Add(orb)

	sceneLights := []lights.Light{
		lights.NewRectLight(room.ceilingLight),
		lights.NewSphereLight(orb),
	}
	weights := make([]float64, len(sceneLights))
	for i, light := range sceneLights {
		weights[i] = light.Area()
	}

	return room.scene("cornell-sphere", sceneLights, weights)
}

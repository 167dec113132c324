package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
)

// randomSpheres scatters count small spheres through a cube, each tagged
// with its index
func randomSpheres(count int, seed int64) []Hittable {
	sampler := core.NewSeededSampler(seed)
	spheres := make([]Hittable, count)
	for i := range spheres {
		center := core.NewVec3(
			core.SampleRange(sampler.Get1D(), -10, 10),
			core.SampleRange(sampler.Get1D(), -10, 10),
			core.SampleRange(sampler.Get1D(), -10, 10),
		)
		radius := core.SampleRange(sampler.Get1D(), 0.2, 1.5)
		spheres[i] = NewSphere(center, radius, newTestMaterial(i))
	}
	return spheres
}

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, isHit := list.Hit(ray, 0.001, math.MaxFloat64); isHit {
		t.Error("Expected empty list to miss")
	}
	if _, ok := list.BoundingBox(0, 1); ok {
		t.Error("Expected empty list to report no bounding box")
	}
	if err := list.Build(0, 1); err != nil {
		t.Errorf("Expected empty build to be a no-op, got %v", err)
	}
	if list.IsBuilt() {
		t.Error("Expected empty list to stay unbuilt")
	}
}

func TestHittableList_ClosestHit(t *testing.T) {
	far := NewSphere(core.NewVec3(0, 0, -10), 1, newTestMaterial(1))
	near := NewSphere(core.NewVec3(0, 0, -3), 1, newTestMaterial(2))
	list := NewHittableList(far, near)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := list.Hit(ray, 0.001, math.MaxFloat64)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if materialID(t, hit) != 2 {
		t.Errorf("Expected nearest sphere to win, got id %d", materialID(t, hit))
	}
	if math.Abs(hit.T-2) > 1e-9 {
		t.Errorf("Expected t=2, got t=%f", hit.T)
	}

	// Limiting tMax below the near sphere misses both
	if _, isHit := list.Hit(ray, 0.001, 1.5); isHit {
		t.Error("Expected miss with tMax before both spheres")
	}
}

func TestHittableList_BuildThreshold(t *testing.T) {
	tests := []struct {
		name          string
		threshold     int
		count         int
		expectedBuilt bool
	}{
		{"below default threshold", DefaultBVHThreshold, 5, false},
		{"at default threshold", DefaultBVHThreshold, DefaultBVHThreshold, false},
		{"above default threshold", DefaultBVHThreshold, DefaultBVHThreshold + 1, true},
		{"zero threshold single entry", 0, 1, true},
		{"custom threshold", 3, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewHittableListWithThreshold(tt.threshold, randomSpheres(tt.count, 1)...)
			if err := list.Build(0, 1); err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if list.IsBuilt() != tt.expectedBuilt {
				t.Errorf("Expected built=%t, got %t", tt.expectedBuilt, list.IsBuilt())
			}
			if list.Len() != tt.count {
				t.Errorf("Expected %d entries, got %d", tt.count, list.Len())
			}
		})
	}
}

func TestHittableList_AddInvalidatesBVH(t *testing.T) {
	list := NewHittableList(randomSpheres(20, 2)...)
	if err := list.Build(0, 1); err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !list.IsBuilt() {
		t.Fatal("Expected list to be built")
	}

	// The new sphere sits on the ray in front of everything else
	blocker := NewSphere(core.NewVec3(0, 0, 30), 1, newTestMaterial(99))
	list.Add(blocker)

	if list.IsBuilt() {
		t.Error("Expected Add to discard the BVH")
	}

	ray := core.NewRay(core.NewVec3(0, 0, 40), core.NewVec3(0, 0, -1))
	hit, isHit := list.Hit(ray, 0.001, math.MaxFloat64)
	if !isHit || materialID(t, hit) != 99 {
		t.Fatal("Expected the added sphere to be visible before rebuilding")
	}

	if err := list.Build(0, 1); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}
	hit, isHit = list.Hit(ray, 0.001, math.MaxFloat64)
	if !isHit || materialID(t, hit) != 99 {
		t.Fatal("Expected the added sphere to be visible after rebuilding")
	}
}

func TestHittableList_Clear(t *testing.T) {
	list := NewHittableList(randomSpheres(15, 3)...)
	if err := list.Build(0, 1); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	list.Clear()
	if list.Len() != 0 || list.IsBuilt() {
		t.Errorf("Expected an empty unbuilt list, got len=%d built=%t", list.Len(), list.IsBuilt())
	}
}

func TestHittableList_BoundingBox(t *testing.T) {
	list := NewHittableList(
		NewSphere(core.NewVec3(0, 0, 0), 1, newTestMaterial(0)),
		NewSphere(core.NewVec3(5, 2, -3), 0.5, newTestMaterial(1)),
	)

	box, ok := list.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected list to have a bounding box")
	}
	assertVecNear(t, "min", core.NewVec3(-1, -1, -3.5), box.Min, 1e-12)
	assertVecNear(t, "max", core.NewVec3(5.5, 2.5, 1), box.Max, 1e-12)

	list.Add(NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), newTestMaterial(2)))
	if _, ok := list.BoundingBox(0, 1); ok {
		t.Error("Expected a list with an unbounded entry to report no box")
	}
}

func TestHittableList_UnboundedEntryBuild(t *testing.T) {
	entries := randomSpheres(12, 4)
	entries = append(entries, NewPlane(core.NewVec3(0, -20, 0), core.NewVec3(0, 1, 0), newTestMaterial(100)))
	list := NewHittableList(entries...)

	if err := list.Build(0, 1); err == nil {
		t.Fatal("Expected build to fail with an unbounded entry")
	}
	if list.IsBuilt() {
		t.Error("Expected failed build to leave the list unbuilt")
	}

	// Linear scan still sees the plane
	ray := core.NewRay(core.NewVec3(50, 0, 50), core.NewVec3(0, -1, 0))
	hit, isHit := list.Hit(ray, 0.001, math.MaxFloat64)
	if !isHit || materialID(t, hit) != 100 {
		t.Error("Expected the plane to be hit by the linear scan")
	}
}

func TestHittableList_SmallUnboundedListNeedsNoBox(t *testing.T) {
	list := NewHittableList(
		NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), newTestMaterial(0)),
		NewSphere(core.NewVec3(0, 1, 0), 1, newTestMaterial(1)),
	)
	if err := list.Build(0, 1); err != nil {
		t.Errorf("Expected build at or below threshold to succeed, got %v", err)
	}
}

func TestHittableList_EntriesIsCopy(t *testing.T) {
	list := NewHittableList(randomSpheres(3, 5)...)
	entries := list.Entries()
	entries[0] = nil

	if list.Entries()[0] == nil {
		t.Error("Expected Entries to return a copy")
	}
}

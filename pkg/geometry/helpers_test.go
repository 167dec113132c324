package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// testMaterial is a tagged Lambertian so tests can tell hit objects apart
type testMaterial struct {
	*material.Lambertian
	id int
}

func newTestMaterial(id int) *testMaterial {
	return &testMaterial{Lambertian: material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)), id: id}
}

func materialID(t *testing.T, hit *material.HitRecord) int {
	t.Helper()
	m, ok := hit.Material.(*testMaterial)
	if !ok {
		t.Fatalf("Expected *testMaterial, got %T", hit.Material)
	}
	return m.id
}

func assertVecNear(t *testing.T, name string, expected, actual core.Vec3, tolerance float64) {
	t.Helper()
	if math.Abs(expected.X-actual.X) > tolerance ||
		math.Abs(expected.Y-actual.Y) > tolerance ||
		math.Abs(expected.Z-actual.Z) > tolerance {
		t.Errorf("Expected %s %v, got %v", name, expected, actual)
	}
}

package geometry

import (
	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

// DefaultBVHThreshold is the entry count at or below which a list is scanned
// linearly instead of building a BVH
const DefaultBVHThreshold = 10

// HittableList is an unordered collection of objects. Entries are shared:
// the same object may be referenced by several lists.
//
// A list is not safe for concurrent Add/Build; concurrent Hit calls are safe
// once building is done.
type HittableList struct {
	entries   []Hittable
	threshold int
	root      *BVHNode
}

// NewHittableList creates a list with the default BVH threshold
func NewHittableList(entries ...Hittable) *HittableList {
	return NewHittableListWithThreshold(DefaultBVHThreshold, entries...)
}

// NewHittableListWithThreshold creates a list that only builds a BVH when it
// holds more than threshold entries
func NewHittableListWithThreshold(threshold int, entries ...Hittable) *HittableList {
	list := &HittableList{threshold: threshold}
	for _, entry := range entries {
		list.Add(entry)
	}
	return list
}

// Add appends an entry. Any built BVH is discarded; queries fall back to the
// linear scan until Build is called again.
func (l *HittableList) Add(entry Hittable) {
	l.entries = append(l.entries, entry)
	l.root = nil
}

// Clear removes all entries and the BVH
func (l *HittableList) Clear() {
	l.entries = nil
	l.root = nil
}

// Len returns the number of entries
func (l *HittableList) Len() int {
	return len(l.entries)
}

// Entries returns a copy of the entry slice
func (l *HittableList) Entries() []Hittable {
	entries := make([]Hittable, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Threshold returns the BVH threshold
func (l *HittableList) Threshold() int {
	return l.threshold
}

// IsBuilt reports whether queries currently go through a BVH
func (l *HittableList) IsBuilt() bool {
	return l.root != nil
}

// BVH returns the built BVH root, or nil
func (l *HittableList) BVH() *BVHNode {
	return l.root
}

// Build constructs a BVH over the current entries when there are more than
// the threshold. Objects are bounded over [time0, time1].
func (l *HittableList) Build(time0, time1 float64) error {
	if len(l.entries) <= l.threshold {
		return nil
	}

	root, err := NewBVHNode(l.entries, time0, time1)
	if err != nil {
		return err
	}
	l.root = root
	return nil
}

// Hit returns the nearest hit, through the BVH when one is built
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if l.root == nil {
		return l.HitForce(ray, tMin, tMax)
	}
	return l.root.Hit(ray, tMin, tMax)
}

// HitForce tests every entry, narrowing the range to the closest hit so far
func (l *HittableList) HitForce(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, entry := range l.entries {
		if hit, isHit := entry.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the box around every entry. It reports no box when the
// list is empty or any entry is unbounded.
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.entries) == 0 {
		return core.AABB{}, false
	}

	var result core.AABB
	for i, entry := range l.entries {
		box, ok := entry.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			result = box
		} else {
			result = core.SurroundingBox(result, box)
		}
	}
	return result, true
}

package geometry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-bvh-pathtracer/pkg/core"
	"github.com/df07/go-bvh-pathtracer/pkg/log"
	"github.com/df07/go-bvh-pathtracer/pkg/material"
)

var (
	// ErrEmptyRange is returned when a BVH is built over no entries
	ErrEmptyRange = errors.New("bvh: empty entry range")

	// ErrUnboundedEntry is returned when an entry has no bounding box
	ErrUnboundedEntry = errors.New("bvh: entry has no bounding box")
)

var bvhLogger = log.New("bvh")

// BVHNode is a binary node of a bounding volume hierarchy. Left and Right are
// either leaf objects or further nodes; a single-entry range stores the same
// object in both.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	Box   core.AABB
}

// BVHStats summarizes the shape of a built hierarchy
type BVHStats struct {
	Nodes    int // Interior nodes
	Leaves   int // Distinct leaf references
	MaxDepth int // Depth of the deepest node, root is 1
}

// bvhEntry caches an object with its box so sorting never recomputes boxes
type bvhEntry struct {
	object Hittable
	box    core.AABB
}

// NewBVHNode builds a hierarchy over entries bounded across [time0, time1].
// The input slice is not modified.
func NewBVHNode(entries []Hittable, time0, time1 float64) (*BVHNode, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyRange
	}

	boxed := make([]bvhEntry, len(entries))
	for i, entry := range entries {
		box, ok := entry.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("entry %d (%T): %w", i, entry, ErrUnboundedEntry)
		}
		boxed[i] = bvhEntry{object: entry, box: box}
	}

	root := buildBVH(boxed)
	if log.IsDebug() {
		stats := root.Stats()
		bvhLogger.Debugf("built BVH over %d entries: %d nodes, %d leaves, depth %d",
			len(entries), stats.Nodes, stats.Leaves, stats.MaxDepth)
	}
	return root, nil
}

// buildBVH splits entries at the midpoint after a stable sort along the
// longest axis of their combined box. entries is reordered in place.
func buildBVH(entries []bvhEntry) *BVHNode {
	switch len(entries) {
	case 1:
		only := entries[0]
		return &BVHNode{Left: only.object, Right: only.object, Box: only.box}

	case 2:
		axis := rangeBox(entries).LongestAxis()
		left, right := entries[0], entries[1]
		if right.box.Min.Axis(axis) < left.box.Min.Axis(axis) {
			left, right = right, left
		}
		return &BVHNode{
			Left:  left.object,
			Right: right.object,
			Box:   core.SurroundingBox(left.box, right.box),
		}
	}

	axis := rangeBox(entries).LongestAxis()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].box.Min.Axis(axis) < entries[j].box.Min.Axis(axis)
	})

	mid := len(entries) / 2
	leftNode := buildBVH(entries[:mid])
	rightNode := buildBVH(entries[mid:])

	return &BVHNode{
		Left:  leftNode,
		Right: rightNode,
		Box:   core.SurroundingBox(leftNode.Box, rightNode.Box),
	}
}

// rangeBox returns the box around every entry in the range
func rangeBox(entries []bvhEntry) core.AABB {
	box := entries[0].box
	for _, entry := range entries[1:] {
		box = core.SurroundingBox(box, entry.box)
	}
	return box
}

// Hit rejects on a box miss, then tests the left child and the right child
// with the range narrowed to the left hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax)
	if hitLeft {
		tMax = leftHit.T
	}

	rightHit, hitRight := n.Right.Hit(ray, tMin, tMax)
	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the node's box
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// Stats walks the hierarchy
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(1, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.Nodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Hittable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}
	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.Leaves++
		}
	}
}

// Package area holds the active entity area: the cube of entities ticking
// and colliding around the viewer, its loose octree index, and the space
// warp that keeps the cube centered without entities ever holding absolute
// world coordinates.
package area

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/config"
)

// BBox is an axis-aligned bounding box in area-local coordinates, stored as
// the mgl32.Vec3 corners matching the teacher's AABB usage in
// internal/physics/collision.go.
type BBox struct {
	Min, Max mgl32.Vec3
}

// ComputeBB returns the box centered on pos with the given full size.
func ComputeBB(pos, size mgl32.Vec3) BBox {
	half := size.Mul(0.5)
	return BBox{Min: pos.Sub(half), Max: pos.Add(half)}
}

// Intersects reports whether b and o overlap on every axis.
func (b BBox) Intersects(o BBox) bool {
	return b.Min.X() <= o.Max.X() && b.Max.X() >= o.Min.X() &&
		b.Min.Y() <= o.Max.Y() && b.Max.Y() >= o.Min.Y() &&
		b.Min.Z() <= o.Max.Z() && b.Max.Z() >= o.Min.Z()
}

// Octree is a loose octree: an object is stored at every node whose box
// intersects the object's box, not just the leaf it would tightly fit in.
// This duplicates storage but lets range queries early-out at any level
// (§4.8), grounded on original_source/src/datatypes/octree.c.
type Octree struct {
	box      BBox
	count    int
	octants  [8]*Octree
	contents []any

	mu sync.Mutex
}

// NewOctree builds a loose octree spanning a cube of the given side,
// centered on the origin, subdividing until a node's side is at most
// config's octree resolution or its depth reaches the configured max.
func NewOctree(span float32) *Octree {
	return newOctreeRecursive(span, 0, 0, 0, 0)
}

func newOctreeRecursive(size, ox, oy, oz float32, depth int) *Octree {
	half := size / 2
	center := mgl32.Vec3{ox, oy, oz}
	result := &Octree{
		box: BBox{
			Min: center.Sub(mgl32.Vec3{half, half, half}),
			Max: center.Add(mgl32.Vec3{half, half, half}),
		},
	}
	resolution := float32(config.OctreeResolution())
	maxDepth := config.OctreeMaxDepth()
	if size > resolution && depth < maxDepth {
		quarter := size / 4
		for i := 0; i < 8; i++ {
			subX := ox - quarter + (size/2)*float32(i&1)
			subY := oy - quarter + (size/2)*float32((i&2)>>1)
			subZ := oz - quarter + (size/2)*float32((i&4)>>2)
			result.octants[i] = newOctreeRecursive(size/2, subX, subY, subZ, depth+1)
		}
	}
	return result
}

// Lock/Unlock guard concurrent insert/remove against concurrent range
// queries, mirroring the source's per-node omp_lock_t.
func (o *Octree) Lock()   { o.mu.Lock() }
func (o *Octree) Unlock() { o.mu.Unlock() }

// HasChildren reports whether ot was subdivided.
func (o *Octree) HasChildren() bool { return o.octants[0] != nil }

// IsEmpty reports whether no object is stored at this node.
func (o *Octree) IsEmpty() bool { return o.count == 0 }

// Count returns the number of objects stored at or below this node.
func (o *Octree) Count() int { return o.count }

// Box returns the node's bounding box.
func (o *Octree) Box() BBox { return o.box }

// Insert adds object at every node (including this one) whose box
// intersects box, provided box overlaps the tree's own extent at all.
// Returns false if it doesn't overlap, in which case nothing is stored.
func (o *Octree) Insert(object any, box BBox) bool {
	if !box.Intersects(o.box) {
		return false
	}
	o.insertRecursive(object, box)
	return true
}

func (o *Octree) insertRecursive(object any, box BBox) {
	if o.HasChildren() {
		for _, child := range o.octants {
			if box.Intersects(child.box) {
				before := child.count
				child.insertRecursive(object, box)
				o.count += child.count - before
			}
		}
	}
	o.contents = append(o.contents, object)
	o.count++
}

// Remove deletes every copy of object from this node and its descendants,
// returning the number of copies removed.
func (o *Octree) Remove(object any) int {
	removed := removeAllElements(&o.contents, object)
	if removed > 0 && o.HasChildren() {
		for _, child := range o.octants {
			if !child.IsEmpty() {
				removed += child.Remove(object)
			}
		}
	}
	o.count -= removed
	return removed
}

func removeAllElements(list *[]any, object any) int {
	removed := 0
	kept := (*list)[:0]
	for _, v := range *list {
		if v == object {
			removed++
			continue
		}
		kept = append(kept, v)
	}
	*list = kept
	return removed
}

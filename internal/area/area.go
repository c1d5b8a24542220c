package area

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/voxel"
)

// OutOfBoundsHandler fires when a warped entity's new position no longer
// fits anywhere in the tree. The default destroys the entity.
type OutOfBoundsHandler func(a *Area, e *Entity)

// Area is the active entity area: a cube of side Span, in blocks, centered
// on Origin. Entities live in Area-local float coordinates; Origin is the
// only place an absolute GlobalPos is kept (§4.7 "no entity ever holds
// absolute world coordinates directly").
type Area struct {
	mu sync.RWMutex

	Origin   voxel.GlobalPos
	Span     float32
	tree     *Octree
	entities map[*Entity]struct{}
	player   *Entity

	OnOutOfBounds OutOfBoundsHandler
}

// NewArea creates an empty area of the given span centered at origin.
func NewArea(origin voxel.GlobalPos, span float32) *Area {
	return &Area{
		Origin:        origin,
		Span:          span,
		tree:          NewOctree(span),
		entities:      make(map[*Entity]struct{}),
		OnOutOfBounds: destroyEntity,
	}
}

func destroyEntity(a *Area, e *Entity) {
	delete(a.entities, e)
}

// Insert adds e to the area's entity set and octree index.
func (a *Area) Insert(e *Entity) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entities[e] = struct{}{}
	if e.IsPlayer {
		a.player = e
	}
	e.RefreshBBox()
	a.tree.Lock()
	a.tree.Insert(e, e.bbox)
	a.tree.Unlock()
}

// Remove deletes e from both the entity set and the octree.
func (a *Area) Remove(e *Entity) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.entities, e)
	if a.player == e {
		a.player = nil
	}
	a.tree.Lock()
	a.tree.Remove(e)
	a.tree.Unlock()
}

// Each calls fn for every live entity. fn must not add or remove entities.
func (a *Area) Each(fn func(*Entity)) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for e := range a.entities {
		fn(e)
	}
}

// Count returns the number of entities currently resident.
func (a *Area) Count() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.entities)
}

// MaybeWarp inspects the player entity's position; if it has drifted outside
// the area's central chunk, performs the space warp (§4.7) and returns true.
// It is a no-op (returning false) if no player entity has been inserted.
func (a *Area) MaybeWarp() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.player == nil {
		return false
	}
	wx := floorDivFloat(a.player.Pos.X(), voxel.ChunkSize)
	wy := floorDivFloat(a.player.Pos.Y(), voxel.ChunkSize)
	wz := floorDivFloat(a.player.Pos.Z(), voxel.ChunkSize)
	if wx == 0 && wy == 0 && wz == 0 {
		return false
	}
	a.warp(wx, wy, wz)
	return true
}

func floorDivFloat(v float32, n int) int64 {
	return int64(math.Floor(float64(v) / float64(n)))
}

// warp subtracts (wx,wy,wz)*ChunkSize (in block units) from every entity's
// position and adds it to the area's origin, so every entity's absolute
// GlobalPos is unchanged. Entities are removed and re-inserted into the
// octree since their bounding boxes move; a failed re-insertion (position
// now outside the area cube entirely) fires OnOutOfBounds.
func (a *Area) warp(wx, wy, wz int64) {
	delta := mgl32.Vec3{
		float32(wx) * voxel.ChunkSize,
		float32(wy) * voxel.ChunkSize,
		float32(wz) * voxel.ChunkSize,
	}

	a.Origin.X += wx * voxel.ChunkSize
	a.Origin.Y += wy * voxel.ChunkSize
	a.Origin.Z += wz * voxel.ChunkSize

	for e := range a.entities {
		a.tree.Lock()
		a.tree.Remove(e)
		a.tree.Unlock()

		e.Pos = e.Pos.Sub(delta)
		e.RefreshBBox()

		a.tree.Lock()
		ok := a.tree.Insert(e, e.bbox)
		a.tree.Unlock()
		if !ok && a.OnOutOfBounds != nil {
			a.OnOutOfBounds(a, e)
		}
	}
}

// Tree exposes the octree for range queries (collision broad-phase).
func (a *Area) Tree() *Octree { return a.tree }

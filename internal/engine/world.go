package engine

import (
	"voxelcore/internal/area"
	"voxelcore/internal/chunkcache"
	"voxelcore/internal/mesh"
	"voxelcore/internal/voxel"
)

// World is the aggregate the source keeps as module-level globals (active
// area pointer, cache singleton): a single value owning the cache, the
// active entity area, the diff overlay, and the generator, passed
// explicitly into every entry point (§9 design notes).
type World struct {
	Cache     *chunkcache.Cache
	Area      *area.Area
	Diffs     *DiffRegistry
	Generator Generator
	Textures  mesh.TextureTable

	scanOffsets []chunkOffset
	scanCursor  int
}

// NewWorld assembles a fresh world around an empty cache and area.
func NewWorld(gen Generator, origin voxel.GlobalPos, areaSpan float32, textures mesh.TextureTable) *World {
	return &World{
		Cache:     chunkcache.New(),
		Area:      area.NewArea(origin, areaSpan),
		Diffs:     NewDiffRegistry(),
		Generator: gen,
		Textures:  textures,
	}
}

// cacheNeighbors adapts a *chunkcache.Cache to mesh.NeighborSource: the
// accessor exposure needs for faces that cross a chunk boundary.
type cacheNeighbors struct {
	cache *chunkcache.Cache
}

// Neighbor implements mesh.NeighborSource.
func (n cacheNeighbors) Neighbor(pos voxel.ChunkPos, dx, dy, dz int) (voxel.BlockAccessor, bool) {
	np := voxel.ChunkPos{X: pos.X + int64(dx), Y: pos.Y + int64(dy), Z: pos.Z + int64(dz)}
	coa := n.cache.GetBestData(np)
	acc := coa.Accessor()
	if acc == nil {
		return nil, false
	}
	return acc, true
}

// Neighbors returns a mesh.NeighborSource backed by this world's cache.
func (w *World) Neighbors() mesh.NeighborSource {
	return cacheNeighbors{cache: w.Cache}
}

// BestDataSource returns the world's cache viewed as an area.BestDataSource,
// for constructing per-caller block_at caches.
func (w *World) BestDataSource() area.BestDataSource {
	return w.Cache
}

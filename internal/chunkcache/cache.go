// Package chunkcache holds the multi-LOD chunk map: a hash map per detail
// level keyed by chunk coordinate, admission/eviction bookkeeping, and the
// two global FIFO work queues the load/compile pipeline drains.
package chunkcache

import (
	"sync"

	"voxelcore/internal/voxel"
)

// shardCount is the number of map shards per detail level, keyed by the low
// bits of the chunk coordinate (§5 "sharded map keyed by the low bits of the
// chunk coordinate").
const shardCount = 16

type shard struct {
	mu sync.RWMutex
	m  map[voxel.ChunkPos]voxel.ChunkOrApprox
}

func newShard() *shard {
	return &shard{m: make(map[voxel.ChunkPos]voxel.ChunkOrApprox)}
}

func shardIndex(pos voxel.ChunkPos) int {
	h := uint64(pos.X)*0x9E3779B97F4A7C15 ^ uint64(pos.Y)*0xC2B2AE3D27D4EB4F ^ uint64(pos.Z)*0x165667B19E3779F9
	return int(h % shardCount)
}

// Cache is the multi-level map levels[DetailFull..NLODs) of ChunkPos ->
// ChunkOrApprox, safe for many readers and a single writer (the data
// thread) per level.
type Cache struct {
	levels [voxel.NLODs][shardCount]*shard

	Reload    *Queue
	Recompile *Queue
}

// New creates an empty cache with its load/recompile queues.
func New() *Cache {
	c := &Cache{
		Reload:    NewQueue(),
		Recompile: NewQueue(),
	}
	for l := range c.levels {
		for s := range c.levels[l] {
			c.levels[l][s] = newShard()
		}
	}
	return c
}

func (c *Cache) shardFor(d voxel.Detail, pos voxel.ChunkPos) *shard {
	return c.levels[d][shardIndex(pos)]
}

// Insert places coa at (pos, detail), idempotently. If sameContents is true
// and an entry already exists at this (pos, detail), the replacement's GPU
// mesh handles are transferred from the existing entry instead of leaving
// them zero — the caller asserts the block contents are bit-identical, so no
// re-upload is needed.
func (c *Cache) Insert(pos voxel.ChunkPos, detail voxel.Detail, coa voxel.ChunkOrApprox, sameContents bool) {
	sh := c.shardFor(detail, pos)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if sameContents {
		if existing, ok := sh.m[pos]; ok {
			transferMeshHandles(existing, coa)
		}
	}
	sh.m[pos] = coa
}

func transferMeshHandles(from, to voxel.ChunkOrApprox) {
	fa, ta := from.Accessor(), to.Accessor()
	if fa == nil || ta == nil {
		return
	}
	for l := voxel.Layer(0); l < 3; l++ {
		toBuf := ta.MeshBuffers(l)
		fromBuf := fa.MeshBuffers(l)
		toBuf.GPUHandle = fromBuf.GPUHandle
	}
}

// get returns the entry at exactly (pos, detail), or NotLoaded.
func (c *Cache) get(pos voxel.ChunkPos, detail voxel.Detail) voxel.ChunkOrApprox {
	sh := c.shardFor(detail, pos)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	if v, ok := sh.m[pos]; ok {
		return v
	}
	return voxel.NotLoaded
}

// Remove deletes the entry at (pos, detail), if present.
func (c *Cache) Remove(pos voxel.ChunkPos, detail voxel.Detail) {
	sh := c.shardFor(detail, pos)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	delete(sh.m, pos)
}

// GetBestData probes from finest (DetailFull) to coarsest (NLODs-1) detail
// and returns the first resident entry, or NotLoaded. It never generates.
func (c *Cache) GetBestData(pos voxel.ChunkPos) voxel.ChunkOrApprox {
	return c.GetBestDataLimited(pos, voxel.Detail(voxel.NLODs-1))
}

// GetBestDataLimited is GetBestData but stops probing at minDetail
// (inclusive) — used when a caller only wants detail at least as fine as a
// given LOD.
func (c *Cache) GetBestDataLimited(pos voxel.ChunkPos, minDetail voxel.Detail) voxel.ChunkOrApprox {
	for d := voxel.DetailFull; d <= minDetail; d++ {
		if v := c.get(pos, d); v.IsLoaded() {
			return v
		}
	}
	return voxel.NotLoaded
}

// MarkForReload sets a resident entry's NEEDS_RELOAD flag and enqueues it; a
// no-op if the flag is already set or nothing is resident at any detail.
func (c *Cache) MarkForReload(pos voxel.ChunkPos) {
	coa := c.GetBestData(pos)
	acc := coa.Accessor()
	if acc == nil || acc.Status()&voxel.StatusNeedsReload != 0 {
		return
	}
	acc.SetStatus(voxel.StatusNeedsReload)
	c.Reload.PushBack(coa)
}

// MarkForLoad allocates a chunk or approximation at (pos, detail) if nothing
// is resident there yet, publishes it into the cache with NEEDS_RELOAD set,
// and enqueues it for loading. A no-op if an entry already exists at that
// exact (pos, detail) — the admission side of §4.3's scan loop.
func (c *Cache) MarkForLoad(pos voxel.ChunkPos, detail voxel.Detail) {
	if c.Has(pos, detail) {
		return
	}
	var coa voxel.ChunkOrApprox
	if detail == voxel.DetailFull {
		coa = voxel.Full(voxel.NewChunk(pos))
	} else {
		coa = voxel.Approx(voxel.NewChunkApprox(pos, detail))
	}
	coa.Accessor().SetStatus(voxel.StatusNeedsReload)
	c.Insert(pos, detail, coa, false)
	c.Reload.PushBack(coa)
}

// MarkForRecompile sets a resident entry's NEEDS_RECOMPILE flag and enqueues
// it; a no-op if already set or nothing is resident.
func (c *Cache) MarkForRecompile(pos voxel.ChunkPos) {
	coa := c.GetBestData(pos)
	acc := coa.Accessor()
	if acc == nil || acc.Status()&voxel.StatusNeedsRecompile != 0 {
		return
	}
	acc.SetStatus(voxel.StatusNeedsRecompile)
	c.Recompile.PushBack(coa)
}

// Entry pairs a coordinate, detail, and entry for bulk iteration (eviction
// sweeps).
type Entry struct {
	Pos    voxel.ChunkPos
	Detail voxel.Detail
	Data   voxel.ChunkOrApprox
}

// EachAtDetail calls fn for every resident entry at the given detail level.
// fn must not mutate the cache.
func (c *Cache) EachAtDetail(detail voxel.Detail, fn func(Entry)) {
	for s := range c.levels[detail] {
		sh := c.levels[detail][s]
		sh.mu.RLock()
		for pos, data := range sh.m {
			fn(Entry{Pos: pos, Detail: detail, Data: data})
		}
		sh.mu.RUnlock()
	}
}

// Has reports whether an entry is resident at exactly (pos, detail). The map
// key already enforces at most one entry per (pos, detail).
func (c *Cache) Has(pos voxel.ChunkPos, detail voxel.Detail) bool {
	return c.get(pos, detail).IsLoaded()
}

package area

import "voxelcore/internal/voxel"

// BestDataSource is the one cache operation block_at needs: resolve the best
// available data at a chunk coordinate, full detail or approximation.
type BestDataSource interface {
	GetBestData(pos voxel.ChunkPos) voxel.ChunkOrApprox
}

// BlockAtCache is the per-caller cache named in §9's design notes: it
// memoizes the last chunk coordinate and its resolved accessor so that
// swept-volume rasterization (many nearby block_at calls in a row) doesn't
// re-walk the cache's sharded maps for every sample. Callers that mutate
// block data through a path this cache doesn't see must call Refresh.
type BlockAtCache struct {
	src BestDataSource

	valid    bool
	lastPos  voxel.ChunkPos
	lastData voxel.ChunkOrApprox
}

// NewBlockAtCache creates a cache reading from src.
func NewBlockAtCache(src BestDataSource) *BlockAtCache {
	return &BlockAtCache{src: src}
}

// Get resolves the block at a GlobalPos, reusing the last resolved chunk
// when pos falls in the same chunk as the previous call. Returns VOID for
// positions whose chunk isn't resident at any detail.
func (c *BlockAtCache) Get(pos voxel.GlobalPos) voxel.Block {
	cp := voxel.ToChunkPos(pos)
	if !c.valid || cp != c.lastPos {
		c.lastData = c.src.GetBestData(cp)
		c.lastPos = cp
		c.valid = true
	}
	acc := c.lastData.Accessor()
	if acc == nil {
		return voxel.VOID
	}
	return acc.GetBlock(voxel.ToChunkIndex(pos))
}

// Refresh invalidates the memoized chunk, forcing the next Get to re-resolve
// it from src. Call this whenever block data the cache might be holding has
// changed underneath it.
func (c *BlockAtCache) Refresh() {
	c.valid = false
}

package voxel

import "sync"

// StatusFlag is a bitset of chunk-level lifecycle flags.
type StatusFlag uint32

const (
	StatusLoaded StatusFlag = 1 << iota
	StatusNeedsReload
	StatusNeedsRecompile
	StatusCompiled
)

// Layer identifies one of the three rendering layers a chunk compiles into.
type Layer int

const (
	LayerOpaque Layer = iota
	LayerTransparent
	LayerTranslucent
	numLayers
)

// MeshBuffers is one layer's compiled mesh: CPU staging vectors the data
// thread writes, plus an opaque GPU handle only the main thread touches.
type MeshBuffers struct {
	StagingVertices []uint32
	StagingIndices  []uint32
	// SegmentBoundaries holds offsets into StagingIndices where the index
	// count since the previous boundary reached the 16-bit cap (§4.6's
	// MAX_INDICES):
	// the uploader opens a new GPU index buffer at each boundary rather than
	// widening every buffer to 32-bit indices unconditionally.
	SegmentBoundaries []int
	// GPUHandle is an opaque identifier (e.g. a VAO/VBO name) assigned by the
	// renderer on upload; zero means "not yet uploaded". Reassigning it is the
	// main thread's job exclusively.
	GPUHandle uint32
}

// BlockEntity is extended per-block data keyed by local chunk index.
type BlockEntity struct {
	Index ChunkIndex
	Data  any
}

// Chunk is an axis-aligned cube of ChunkSize^3 blocks at full detail.
type Chunk struct {
	Pos ChunkPos

	blocks [ChunkSize * ChunkSize * ChunkSize]Block
	flags  [ChunkSize * ChunkSize * ChunkSize]uint8

	// statusBits is manipulated with atomics across threads: release on set,
	// acquire on read (§5 "Chunk flag manipulation across threads").
	statusBits uint32

	Mesh [numLayers]MeshBuffers
	// meshMu guards staging-buffer swap-in; held only around handle swaps,
	// never across generation or exposure work (§5).
	meshMu sync.Mutex

	BlockEntities []BlockEntity
}

// NewChunk allocates an empty chunk at pos. Blocks default to VOID; callers
// fill it from the generator and diff before marking it StatusLoaded.
func NewChunk(pos ChunkPos) *Chunk {
	return &Chunk{Pos: pos}
}

// GetBlock returns the block at idx, masking components by ChunkSize-1 —
// out-of-range inputs wrap rather than fault.
func (c *Chunk) GetBlock(idx ChunkIndex) Block {
	return c.blocks[idx.Linear()]
}

// PutBlock writes the block at idx and marks the chunk for recompile.
func (c *Chunk) PutBlock(idx ChunkIndex, b Block) {
	c.blocks[idx.Linear()] = b
	c.SetStatus(StatusNeedsRecompile)
}

// GetFlags returns the per-block flag byte at idx.
func (c *Chunk) GetFlags(idx ChunkIndex) Flag {
	return Flag(c.flags[idx.Linear()])
}

// SetFlags ORs bits into the per-block flag byte at idx.
func (c *Chunk) SetFlags(idx ChunkIndex, f Flag) {
	c.flags[idx.Linear()] |= uint8(f)
}

// ClearFlags ANDs bits out of the per-block flag byte at idx.
func (c *Chunk) ClearFlags(idx ChunkIndex, f Flag) {
	c.flags[idx.Linear()] &^= uint8(f)
}

// Status reads the chunk's lifecycle bitset (acquire).
func (c *Chunk) Status() StatusFlag {
	return statusLoad(&c.statusBits)
}

// SetStatus sets bits in the lifecycle bitset (release).
func (c *Chunk) SetStatus(f StatusFlag) {
	statusOr(&c.statusBits, uint32(f))
}

// ClearStatus clears bits in the lifecycle bitset (release).
func (c *Chunk) ClearStatus(f StatusFlag) {
	statusAnd(&c.statusBits, ^uint32(f))
}

// Has reports whether all bits in f are set.
func (c *Chunk) Has(f StatusFlag) bool {
	return c.Status()&f == f
}

// LockMesh guards a staging-buffer swap-in; held only for handle swaps.
func (c *Chunk) LockMesh()   { c.meshMu.Lock() }
func (c *Chunk) UnlockMesh() { c.meshMu.Unlock() }

// GetNeighbors returns the six axis-adjacent blocks inside the chunk,
// substituting VOID when idx sits on a face. Crossing chunk boundaries is not
// this function's job — that belongs to exposure computation.
func GetNeighbors(c BlockAccessor, idx ChunkIndex) (above, below, north, south, east, west Block) {
	m := idx.Mask()
	above = faceOrVoid(c, m.X, m.Y+1, m.Z)
	below = faceOrVoid(c, m.X, m.Y-1, m.Z)
	north = faceOrVoid(c, m.X, m.Y, m.Z+1)
	south = faceOrVoid(c, m.X, m.Y, m.Z-1)
	east = faceOrVoid(c, m.X+1, m.Y, m.Z)
	west = faceOrVoid(c, m.X-1, m.Y, m.Z)
	return
}

func faceOrVoid(c BlockAccessor, x, y, z int) Block {
	if x < 0 || x >= c.Side() || y < 0 || y >= c.Side() || z < 0 || z >= c.Side() {
		return VOID
	}
	return c.GetBlock(ChunkIndex{X: x, Y: y, Z: z})
}

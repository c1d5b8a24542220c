package voxel

// BlockAccessor is the shared block-access capability a Chunk and a
// ChunkApprox both implement, dispatching on detail internally so callers
// never need to switch on it themselves.
type BlockAccessor interface {
	GetBlock(idx ChunkIndex) Block
	PutBlock(idx ChunkIndex, b Block)
	GetFlags(idx ChunkIndex) Flag
	SetFlags(idx ChunkIndex, f Flag)
	ClearFlags(idx ChunkIndex, f Flag)
	// Side returns the array side length this accessor indexes over (ChunkSize
	// for a full chunk, ChunkSize>>detail for an approximation).
	Side() int
	// Detail returns the approximation level (DetailFull for a full chunk).
	Detail() Detail
	Status() StatusFlag
	SetStatus(f StatusFlag)
	ClearStatus(f StatusFlag)
	Position() ChunkPos
	LockMesh()
	UnlockMesh()
	MeshBuffers(l Layer) *MeshBuffers
}

// Side returns ChunkSize: a full-detail Chunk always indexes the full array.
func (c *Chunk) Side() int { return ChunkSize }

// Detail returns DetailFull for a full-resolution chunk.
func (c *Chunk) Detail() Detail { return DetailFull }

// Position returns the chunk's coordinate.
func (c *Chunk) Position() ChunkPos { return c.Pos }

// MeshBuffers returns the staging/handle pair for layer l.
func (c *Chunk) MeshBuffers(l Layer) *MeshBuffers { return &c.Mesh[l] }

var _ BlockAccessor = (*Chunk)(nil)
var _ BlockAccessor = (*ChunkApprox)(nil)

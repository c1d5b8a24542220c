// Package voxel holds the hierarchical block storage: chunks, multi-resolution
// approximations, and the run-length diff overlay, plus the coordinate-space
// conversions that tie them together.
package voxel

const (
	// ChunkBits is the number of bits of a GlobalPos that select a block's
	// position inside its chunk; ChunkSize = 2^ChunkBits.
	ChunkBits = 4
	// ChunkSize is the side length, in blocks, of a chunk.
	ChunkSize = 1 << ChunkBits
	// chunkMask masks a coordinate down to its in-chunk component.
	chunkMask = ChunkSize - 1
)

// GlobalPos is a canonical world block address: signed per-axis, unbounded.
type GlobalPos struct {
	X, Y, Z int64
}

// ChunkPos identifies a chunk by its integer chunk coordinate (GlobalPos >> ChunkBits).
type ChunkPos struct {
	X, Y, Z int64
}

// ChunkIndex addresses a block inside a single chunk; components are taken
// modulo ChunkSize by the accessors that consume it (bit-masked, never
// bounds-checked) so an out-of-range index wraps instead of faulting.
type ChunkIndex struct {
	X, Y, Z int
}

// AreaPos is an entity's kinematic position, relative to its area's origin.
type AreaPos struct {
	X, Y, Z float32
}

// floorDivInt64 performs floor division for signed 64-bit operands.
func floorDivInt64(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// ToChunkPos converts a GlobalPos to the ChunkPos of the chunk containing it.
func ToChunkPos(p GlobalPos) ChunkPos {
	return ChunkPos{
		X: floorDivInt64(p.X, ChunkSize),
		Y: floorDivInt64(p.Y, ChunkSize),
		Z: floorDivInt64(p.Z, ChunkSize),
	}
}

// ToChunkIndex extracts the in-chunk local index of a GlobalPos via bit masking.
func ToChunkIndex(p GlobalPos) ChunkIndex {
	return ChunkIndex{
		X: int(p.X) & chunkMask,
		Y: int(p.Y) & chunkMask,
		Z: int(p.Z) & chunkMask,
	}
}

// FromChunk reconstructs the GlobalPos of a chunk-local index within cp.
func FromChunk(cp ChunkPos, idx ChunkIndex) GlobalPos {
	return GlobalPos{
		X: cp.X*ChunkSize + int64(idx.X&chunkMask),
		Y: cp.Y*ChunkSize + int64(idx.Y&chunkMask),
		Z: cp.Z*ChunkSize + int64(idx.Z&chunkMask),
	}
}

// Mask wraps each component of idx into [0, ChunkSize) by bit masking.
func (idx ChunkIndex) Mask() ChunkIndex {
	return ChunkIndex{X: idx.X & chunkMask, Y: idx.Y & chunkMask, Z: idx.Z & chunkMask}
}

// Linear returns the z + y*N + x*N^2 flattened index of idx inside an N^3 cube.
func (idx ChunkIndex) Linear() int {
	m := idx.Mask()
	return m.Z + m.Y*ChunkSize + m.X*ChunkSize*ChunkSize
}

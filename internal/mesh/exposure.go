// Package mesh computes per-face exposure and compiles chunk and
// approximation contents into packed vertex/index staging buffers.
package mesh

import (
	"voxelcore/internal/profiling"
	"voxelcore/internal/voxel"
)

// direction is one axis-aligned face offset paired with the flag it sets.
type direction struct {
	dx, dy, dz int
	flag       voxel.Flag
}

var directions = [6]direction{
	{0, 1, 0, voxel.FlagExposedUp},
	{0, -1, 0, voxel.FlagExposedDown},
	{0, 0, 1, voxel.FlagExposedNorth},
	{0, 0, -1, voxel.FlagExposedSouth},
	{1, 0, 0, voxel.FlagExposedEast},
	{-1, 0, 0, voxel.FlagExposedWest},
}

// NeighborSource resolves the chunk or approximation adjacent to pos in the
// cache, without generating or loading anything. It is satisfied by a thin
// adapter over the chunk cache (see engine.World.Neighbors).
type NeighborSource interface {
	Neighbor(pos voxel.ChunkPos, dx, dy, dz int) (voxel.BlockAccessor, bool)
}

// ComputeExposure runs §4.5 over every block in acc, setting or clearing the
// six EXPOSED_* flags against the occlusion rule. Blocks on a chunk boundary
// consult src for the neighboring accessor; an absent neighbor (unloaded) or
// one at a different detail than acc's is treated as not-exposed, per the
// spec's resolved Open Question on LOD-transition seams.
func ComputeExposure(acc voxel.BlockAccessor, src NeighborSource) {
	defer profiling.Track("mesh.ComputeExposure")()

	side := acc.Side()
	step := acc.Detail().Step()
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			for z := 0; z < side; z++ {
				idx := voxel.ChunkIndex{X: x * step, Y: y * step, Z: z * step}
				self := acc.GetBlock(idx)
				for _, d := range directions {
					neighbor, withinBounds := faceNeighbor(acc, src, voxel.ChunkIndex{X: x, Y: y, Z: z}, side, d)
					if withinBounds {
						if Occludes(neighbor, self) {
							acc.ClearFlags(idx, d.flag)
						} else {
							acc.SetFlags(idx, d.flag)
						}
						continue
					}
					// Out-of-bounds with no usable neighbor data: closed.
					acc.ClearFlags(idx, d.flag)
				}
			}
		}
	}
}

// Occludes is the voxel package's occlusion rule, re-exported for callers
// that only import mesh.
func Occludes(neighbor, self voxel.Block) bool { return voxel.Occludes(neighbor, self) }

// faceNeighbor returns the block across one face of idx and whether it was
// resolvable at all (in-chunk, or a same-detail neighbor chunk). idx is in
// acc's Side()-wide grid; it is scaled by the detail step before each
// accessor call. When it returns false, the caller must treat the face as
// not-exposed.
func faceNeighbor(acc voxel.BlockAccessor, src NeighborSource, idx voxel.ChunkIndex, side int, d direction) (voxel.Block, bool) {
	step := acc.Detail().Step()
	nx, ny, nz := idx.X+d.dx, idx.Y+d.dy, idx.Z+d.dz
	if nx >= 0 && nx < side && ny >= 0 && ny < side && nz >= 0 && nz < side {
		return acc.GetBlock(voxel.ChunkIndex{X: nx * step, Y: ny * step, Z: nz * step}), true
	}
	if src == nil {
		return voxel.VOID, false
	}
	neighborAcc, ok := src.Neighbor(acc.Position(), d.dx, d.dy, d.dz)
	if !ok || neighborAcc.Detail() != acc.Detail() {
		return voxel.VOID, false
	}
	wx, wy, wz := wrap(nx, side), wrap(ny, side), wrap(nz, side)
	return neighborAcc.GetBlock(voxel.ChunkIndex{X: wx * step, Y: wy * step, Z: wz * step}), true
}

func wrap(v, side int) int {
	if v < 0 {
		return v + side
	}
	if v >= side {
		return v - side
	}
	return v
}

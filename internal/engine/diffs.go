package engine

import (
	"sync"

	"voxelcore/internal/voxel"
)

// RegionPos identifies one DiffSize^3 diff volume by its region coordinate
// (GlobalPos divided by DiffSize, floored).
type RegionPos struct {
	X, Y, Z int64
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func regionOf(p voxel.GlobalPos) RegionPos {
	return RegionPos{
		X: floorDiv(p.X, voxel.DiffSize),
		Y: floorDiv(p.Y, voxel.DiffSize),
		Z: floorDiv(p.Z, voxel.DiffSize),
	}
}

func regionLocal(p voxel.GlobalPos, r RegionPos) voxel.DiffPos {
	return voxel.DiffPos{
		X: p.X - r.X*voxel.DiffSize,
		Y: p.Y - r.Y*voxel.DiffSize,
		Z: p.Z - r.Z*voxel.DiffSize,
	}
}

// DiffRegistry is the world's overlay of authored edits: one run-length
// Diff per DiffSize^3 region, created lazily. The source leaves the
// region-to-diff mapping's exact scale unreconciled with the generator
// (spec.md §9 Open Questions); this registry picks the straightforward
// fixed grid aligned on DiffSize as its resolution.
type DiffRegistry struct {
	mu      sync.Mutex
	regions map[RegionPos]*voxel.Diff
}

// NewDiffRegistry creates an empty registry.
func NewDiffRegistry() *DiffRegistry {
	return &DiffRegistry{regions: make(map[RegionPos]*voxel.Diff)}
}

func (r *DiffRegistry) region(p voxel.GlobalPos) *voxel.Diff {
	rp := regionOf(p)
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.regions[rp]
	if !ok {
		d = voxel.NewDiff()
		r.regions[rp] = d
	}
	return d
}

// GetBlock returns the diff override at p, or VOID if p has never been
// written through PutBlock.
func (r *DiffRegistry) GetBlock(p voxel.GlobalPos) voxel.Block {
	rp := regionOf(p)
	r.mu.Lock()
	d, ok := r.regions[rp]
	r.mu.Unlock()
	if !ok {
		return voxel.VOID
	}
	return d.GetBlock(regionLocal(p, rp))
}

// PutBlock records an authored edit at p.
func (r *DiffRegistry) PutBlock(p voxel.GlobalPos, b voxel.Block) {
	rp := regionOf(p)
	d := r.region(p)
	d.PutBlock(regionLocal(p, rp), b)
}

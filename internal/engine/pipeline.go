package engine

import (
	"voxelcore/internal/chunkcache"
	"voxelcore/internal/config"
	"voxelcore/internal/mesh"
	"voxelcore/internal/profiling"
	"voxelcore/internal/voxel"
)

type chunkOffset struct{ dx, dy, dz int64 }

// ensureScanOffsets lazily builds the spherical shell of chunk offsets the
// admission scan sweeps, out to the coarsest configured render radius.
func (w *World) ensureScanOffsets() {
	if w.scanOffsets != nil {
		return
	}
	radii := config.MaxRenderDistances()
	if len(radii) == 0 {
		return
	}
	maxR := int64(radii[len(radii)-1])
	for dx := -maxR; dx <= maxR; dx++ {
		for dy := -maxR; dy <= maxR; dy++ {
			for dz := -maxR; dz <= maxR; dz++ {
				if dx*dx+dy*dy+dz*dz <= maxR*maxR {
					w.scanOffsets = append(w.scanOffsets, chunkOffset{dx, dy, dz})
				}
			}
		}
	}
}

// AdmissionScan is the data thread's half of §4.3's admission policy: for
// every missing entry in a shell around center, call mark_for_load with
// the detail desired_detail(dist²) resolves to. The scan cursor persists
// across calls so a full sphere is covered over several ticks, with an
// early cutoff once budget loads have been made this call.
func (w *World) AdmissionScan(center voxel.ChunkPos, budget int) int {
	defer profiling.Track("engine.AdmissionScan")()
	w.ensureScanOffsets()
	n := len(w.scanOffsets)
	if n == 0 || budget <= 0 {
		return 0
	}
	loaded := 0
	for steps := 0; steps < n; steps++ {
		off := w.scanOffsets[w.scanCursor]
		w.scanCursor = (w.scanCursor + 1) % n

		pos := voxel.ChunkPos{X: center.X + off.dx, Y: center.Y + off.dy, Z: center.Z + off.dz}
		dist2 := off.dx*off.dx + off.dy*off.dy + off.dz*off.dz
		desired := chunkcache.DesiredDetail(dist2)
		if int(desired) >= voxel.NLODs {
			continue
		}
		if w.Cache.Has(pos, desired) {
			continue
		}
		w.Cache.MarkForLoad(pos, desired)
		loaded++
		if loaded >= budget {
			return loaded
		}
	}
	return loaded
}

// ReloadTick drains up to config's load cap from the reload queue, filling
// each chunk's blocks from the generator and diff overlay (§4.4 reload
// sequence). Returns the number processed.
func (w *World) ReloadTick() int {
	defer profiling.Track("engine.ReloadTick")()
	capN := config.GetLoadCap()
	n := 0
	for n < capN {
		coa, ok := w.Cache.Reload.PopFront()
		if !ok {
			break
		}
		w.reloadOne(coa)
		n++
	}
	return n
}

func (w *World) reloadOne(coa voxel.ChunkOrApprox) {
	acc := coa.Accessor()
	if acc == nil {
		return
	}
	pos := acc.Position()
	step := acc.Detail().Step()
	side := acc.Side()

	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			for z := 0; z < side; z++ {
				idx := voxel.ChunkIndex{X: x * step, Y: y * step, Z: z * step}
				gp := voxel.FromChunk(pos, idx)

				base := w.Generator.Generate(gp)
				if d := w.Diffs.GetBlock(gp); !voxel.IsVoid(d) {
					base = d
				}
				acc.PutBlock(idx, base)
			}
		}
	}

	acc.ClearStatus(voxel.StatusNeedsReload)
	acc.SetStatus(voxel.StatusLoaded)
	acc.SetStatus(voxel.StatusNeedsRecompile)
	w.Cache.Recompile.PushBack(coa)
}

// RecompileTick drains the recompile queue under the dual budget of §4.4:
// at most config's compile cap items attempted, and at most queue-length
// skips before the live-lock guard trips. An item whose six-neighborhood
// isn't fully resident is re-enqueued to the tail rather than processed.
func (w *World) RecompileTick() (processed, skipped int) {
	defer profiling.Track("engine.RecompileTick")()
	capN := config.GetCompileCap()
	q := w.Cache.Recompile
	queueLen := q.Len()

	attempts := 0
	for attempts < capN && queueLen-skipped > 0 {
		coa, ok := q.PopFront()
		if !ok {
			break
		}
		attempts++

		acc := coa.Accessor()
		if acc == nil {
			continue
		}
		if !w.neighborhoodLoaded(acc.Position()) {
			q.PushBack(coa)
			skipped++
			continue
		}

		mesh.ComputeExposure(acc, w.Neighbors())
		mesh.Compile(acc, w.Textures)
		processed++
	}
	return processed, skipped
}

func (w *World) neighborhoodLoaded(pos voxel.ChunkPos) bool {
	offsets := [6]chunkOffset{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	for _, o := range offsets {
		np := voxel.ChunkPos{X: pos.X + o.dx, Y: pos.Y + o.dy, Z: pos.Z + o.dz}
		if !w.Cache.GetBestData(np).IsLoaded() {
			return false
		}
	}
	return true
}


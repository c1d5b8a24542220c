package chunkcache

import (
	"voxelcore/internal/config"
	"voxelcore/internal/voxel"
)

// DesiredDetail is a step function of squared chunk distance from the
// viewer: it returns the finest detail level that remains valid at dist2
// (in squared chunk units), or NLODs (meaning "out of range entirely") when
// even the coarsest LOD's radius is exceeded.
func DesiredDetail(dist2 int64) voxel.Detail {
	radii := config.MaxRenderDistances()
	for d := voxel.DetailFull; int(d) < len(radii); d++ {
		r := radii[d]
		if dist2 <= int64(r)*int64(r) {
			return d
		}
	}
	return voxel.Detail(voxel.NLODs)
}

// EvictOutOfRange sweeps every detail level and removes entries whose
// squared chunk distance from center exceeds that level's radius. The
// eviction policy for out-of-range entries is not spelled out by the source
// beyond "dynamic capping" (spec.md §9 Open Questions); this is the safe
// radius-based default the spec names explicitly. Returns the count removed.
func (c *Cache) EvictOutOfRange(center voxel.ChunkPos) int {
	radii := config.MaxRenderDistances()
	removed := 0
	for d := voxel.DetailFull; int(d) < len(radii) && int(d) < voxel.NLODs; d++ {
		r := int64(radii[d])
		var toRemove []voxel.ChunkPos
		c.EachAtDetail(d, func(e Entry) {
			dx := e.Pos.X - center.X
			dy := e.Pos.Y - center.Y
			dz := e.Pos.Z - center.Z
			dist2 := dx*dx + dy*dy + dz*dz
			if dist2 > r*r {
				toRemove = append(toRemove, e.Pos)
			}
		})
		for _, pos := range toRemove {
			c.Remove(pos, d)
			removed++
		}
	}
	return removed
}

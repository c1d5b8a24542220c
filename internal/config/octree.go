package config

import "sync"

// OctreeSettings holds the loose octree's subdivision tuning. Values are
// carried over from the original source's published constants
// (OCTREE_RESOLUTION=8, OCTREE_MAX_DEPTH=6) — spec.md names both constants
// but leaves the numbers unspecified (see SPEC_FULL.md §C).
type OctreeSettings struct {
	mu         sync.RWMutex
	resolution int
	maxDepth   int
}

var globalOctreeSettings = &OctreeSettings{
	resolution: 8,
	maxDepth:   6,
}

// OctreeResolution returns the minimum leaf side length, in blocks.
func OctreeResolution() int {
	globalOctreeSettings.mu.RLock()
	defer globalOctreeSettings.mu.RUnlock()
	return globalOctreeSettings.resolution
}

// SetOctreeResolution sets the minimum leaf side length.
func SetOctreeResolution(res int) {
	globalOctreeSettings.mu.Lock()
	defer globalOctreeSettings.mu.Unlock()
	if res < 1 {
		res = 1
	}
	globalOctreeSettings.resolution = res
}

// OctreeMaxDepth returns the maximum subdivision depth.
func OctreeMaxDepth() int {
	globalOctreeSettings.mu.RLock()
	defer globalOctreeSettings.mu.RUnlock()
	return globalOctreeSettings.maxDepth
}

// SetOctreeMaxDepth sets the maximum subdivision depth.
func SetOctreeMaxDepth(depth int) {
	globalOctreeSettings.mu.Lock()
	defer globalOctreeSettings.mu.Unlock()
	if depth < 0 {
		depth = 0
	}
	globalOctreeSettings.maxDepth = depth
}

package chunkcache

import (
	"sync"

	"voxelcore/internal/voxel"
)

// Queue is a FIFO of chunk-or-approximation entries. The load and recompile
// pipelines (§4.4) both drain a Queue under a fixed per-tick budget, and the
// recompile queue re-enqueues items whose neighborhood isn't ready yet — so
// PushBack/PopFront are both supported directly rather than via a channel,
// which can't easily support "peek current length, then push back".
type Queue struct {
	mu    sync.Mutex
	items []voxel.ChunkOrApprox
}

// NewQueue creates an empty queue.
func NewQueue() *Queue { return &Queue{} }

// PushBack appends an item to the tail.
func (q *Queue) PushBack(c voxel.ChunkOrApprox) {
	q.mu.Lock()
	q.items = append(q.items, c)
	q.mu.Unlock()
}

// PopFront removes and returns the head item, or (zero, false) if empty.
func (q *Queue) PopFront() (voxel.ChunkOrApprox, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return voxel.ChunkOrApprox{}, false
	}
	item := q.items[0]
	q.items[0] = voxel.ChunkOrApprox{}
	q.items = q.items[1:]
	return item, true
}

// Len returns the current queue length.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

package voxel

import "sync"

// Diff constants: a fixed S^3 cube of authored-edit positions.
const (
	DiffShift  = 10
	DiffSize   = 1 << DiffShift // 1024
	DiffLength = DiffSize * DiffSize * DiffSize
)

// DiffPos is a position within a diff's S^3 domain.
type DiffPos struct {
	X, Y, Z int64
}

// dindex computes the linear index z + y*S + x*S^2 of a diff position.
func dindex(p DiffPos) int64 {
	return p.Z + p.Y*DiffSize + p.X*DiffSize*DiffSize
}

// run is one run-length element: block, its run length, and the arena index
// of the next run (-1 for none). Runs are held in an arena (a slice) indexed
// by position rather than linked via pointers, per the "arena + index"
// design note — this avoids pointer chasing and makes in-place compaction a
// straight rebuild of the slice.
type run struct {
	block  Block
	length int64
	next   int32
}

const noNext int32 = -1

// Diff is a run-length-encoded overlay of authored edits over a fixed S^3
// volume. The sentinel block VOID in a run means "no override" — the
// generator's block wins. Diffs are assumed quiescent for the duration of a
// chunk load; Put/Get take an internal mutex so a caller that forgets the
// external lock still gets a consistent read, but concurrent Get during a
// Put is still a race on the *values* observed (the contract forbids it).
type Diff struct {
	mu   sync.RWMutex
	runs []run
	head int32
}

// NewDiff creates a diff with a single run spanning the whole volume with VOID
// (no overrides).
func NewDiff() *Diff {
	return &Diff{
		runs: []run{{block: VOID, length: DiffLength, next: noNext}},
		head: 0,
	}
}

// GetBlock walks runs accumulating length until the linear index of pos is
// reached, returning that run's block.
func (d *Diff) GetBlock(pos DiffPos) Block {
	d.mu.RLock()
	defer d.mu.RUnlock()

	target := dindex(pos)
	var cum int64
	i := d.head
	for i != noNext {
		r := &d.runs[i]
		if target < cum+r.length {
			return r.block
		}
		cum += r.length
		i = r.next
	}
	// Unreachable if the invariant sum(length) == DiffLength holds.
	panic("voxel: diff run list exhausted before reaching target index")
}

// PutBlock splits, merges, or prepends runs so the cumulative invariant
// sum(run.length) == DiffLength is preserved, coalescing adjacent runs with
// equal blocks when the operation permits. This is a transcription of the
// by-cases insertion algorithm of §4.2.
func (d *Diff) PutBlock(pos DiffPos, b Block) {
	d.mu.Lock()
	defer d.mu.Unlock()

	target := dindex(pos)
	var cum int64
	prev := noNext
	i := d.head

	for i != noNext {
		r := &d.runs[i]
		length := r.length
		if cum+length <= target {
			prev = i
			cum += length
			i = r.next
			continue
		}

		// Target falls within this run.
		if r.block == b {
			return // case 1: no-op
		}

		r.length-- // case 2
		if r.length == 0 {
			// case 3: the run was a singleton — overwrite in place.
			r.block = b
			r.length = 1
			return
		}

		switch {
		case target == cum: // case 4: at run start
			if prev == noNext {
				d.head = d.newRun(b, 1, i)
			} else if d.runs[prev].block == b {
				d.runs[prev].length++
			} else {
				n := d.newRun(b, 1, i)
				d.runs[prev].next = n
			}
		case target < cum+length-1: // case 5: strict interior
			suffixLen := length - 1 - (target - cum)
			prefixLen := target - cum
			suffix := d.newRun(r.block, suffixLen, r.next)
			mid := d.newRun(b, 1, suffix)
			// newRun may have grown the arena, so r is stale; index afresh.
			d.runs[i].length = prefixLen
			d.runs[i].next = mid
		default: // case 6: at run end (target == cum+length-1)
			succ := r.next
			if succ != noNext && d.runs[succ].block == b {
				d.runs[succ].length++
			} else {
				n := d.newRun(b, 1, succ)
				d.runs[i].next = n
			}
		}
		return
	}
	// case 7: reachability assertion — the loop must find the target.
	panic("voxel: diff put_block target index unreachable")
}

// newRun appends a fresh run to the arena and returns its index.
func (d *Diff) newRun(b Block, length int64, next int32) int32 {
	d.runs = append(d.runs, run{block: b, length: length, next: next})
	return int32(len(d.runs) - 1)
}

// Compact rebuilds the arena by walking the run list from head, coalescing
// adjacent runs that carry equal blocks. Useful after a burst of edits leaves
// the arena full of superseded or splittable entries.
func (d *Diff) Compact() {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []run
	i := d.head
	for i != noNext {
		r := d.runs[i]
		if n := len(out); n > 0 && out[n-1].block == r.block {
			out[n-1].length += r.length
		} else {
			out = append(out, run{block: r.block, length: r.length, next: noNext})
		}
		i = d.runs[i].next
	}
	for idx := range out {
		if idx+1 < len(out) {
			out[idx].next = int32(idx + 1)
		} else {
			out[idx].next = noNext
		}
	}
	d.runs = out
	d.head = 0
}

// TotalLength sums run lengths; used by tests to check the DIFF_LENGTH
// invariant.
func (d *Diff) TotalLength() int64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var sum int64
	i := d.head
	for i != noNext {
		sum += d.runs[i].length
		i = d.runs[i].next
	}
	return sum
}

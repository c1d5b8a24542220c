package voxel

import "testing"

func TestDiffRoundTrip(t *testing.T) {
	d := NewDiff()
	positions := []DiffPos{
		{X: 0, Y: 0, Z: 0},
		{X: 5, Y: 5, Z: 5},
		{X: DiffSize - 1, Y: DiffSize - 1, Z: DiffSize - 1},
		{X: 100, Y: 200, Z: 300},
	}
	for _, p := range positions {
		b := MakeBlock(7, 3)
		d.PutBlock(p, b)
		if got := d.GetBlock(p); got != b {
			t.Fatalf("GetBlock(%v) = %v, want %v", p, got, b)
		}
	}
	if total := d.TotalLength(); total != DiffLength {
		t.Fatalf("TotalLength() = %d, want %d", total, DiffLength)
	}
}

func TestDiffLastWriterWins(t *testing.T) {
	d := NewDiff()
	p := DiffPos{X: 42, Y: 42, Z: 42}
	d.PutBlock(p, MakeBlock(1, 0))
	d.PutBlock(p, MakeBlock(2, 0))
	if got := d.GetBlock(p); got.ID() != 2 {
		t.Fatalf("GetBlock = %v, want id 2", got)
	}
	if total := d.TotalLength(); total != DiffLength {
		t.Fatalf("TotalLength() = %d, want %d", total, DiffLength)
	}
}

func TestDiffInsertionCases(t *testing.T) {
	// Case 4: at index 0 (run start of the single initial run).
	d := NewDiff()
	d.PutBlock(DiffPos{X: 0, Y: 0, Z: 0}, MakeBlock(9, 0))
	if got := d.GetBlock(DiffPos{X: 0}); got.ID() != 9 {
		t.Fatalf("case 4: got %v", got)
	}

	// Case 6: at the last index (run end).
	d2 := NewDiff()
	last := DiffPos{X: DiffSize - 1, Y: DiffSize - 1, Z: DiffSize - 1}
	d2.PutBlock(last, MakeBlock(9, 0))
	if got := d2.GetBlock(last); got.ID() != 9 {
		t.Fatalf("case 6: got %v", got)
	}
	if total := d2.TotalLength(); total != DiffLength {
		t.Fatalf("case 6 total = %d", total)
	}

	// Case 5: strict interior of a run, splitting it into three.
	d3 := NewDiff()
	mid := DiffPos{X: 1, Y: 0, Z: 0}
	d3.PutBlock(mid, MakeBlock(9, 0))
	if got := d3.GetBlock(mid); got.ID() != 9 {
		t.Fatalf("case 5: got %v", got)
	}
	if got := d3.GetBlock(DiffPos{X: 0}); got != VOID {
		t.Fatalf("case 5: prefix disturbed, got %v", got)
	}
	if got := d3.GetBlock(DiffPos{X: 2}); got != VOID {
		t.Fatalf("case 5: suffix disturbed, got %v", got)
	}
	if total := d3.TotalLength(); total != DiffLength {
		t.Fatalf("case 5 total = %d", total)
	}
}

func TestDiffCoalescesAdjacentRuns(t *testing.T) {
	d := NewDiff()
	b := MakeBlock(3, 0)
	d.PutBlock(DiffPos{Z: 0}, b)
	d.PutBlock(DiffPos{Z: 1}, b) // linear index 1: should extend the predecessor run, not split
	if len(d.runs) > 2 {
		t.Fatalf("expected coalescing to keep run count low, got %d runs", len(d.runs))
	}
	if got := d.GetBlock(DiffPos{Z: 0}); got != b || d.GetBlock(DiffPos{Z: 1}) != b {
		t.Fatalf("coalesced run lost block identity")
	}
}

func TestDiffCompactPreservesReads(t *testing.T) {
	d := NewDiff()
	for i := int64(0); i < 50; i++ {
		d.PutBlock(DiffPos{X: i}, MakeBlock(uint8(i%5), 0))
	}
	before := make([]Block, 50)
	for i := range before {
		before[i] = d.GetBlock(DiffPos{X: int64(i)})
	}
	d.Compact()
	for i := range before {
		if got := d.GetBlock(DiffPos{X: int64(i)}); got != before[i] {
			t.Fatalf("Compact changed read at %d: got %v want %v", i, got, before[i])
		}
	}
	if total := d.TotalLength(); total != DiffLength {
		t.Fatalf("TotalLength after compact = %d", total)
	}
}

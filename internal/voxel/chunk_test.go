package voxel

import "testing"

func TestChunkGetPutBlock(t *testing.T) {
	c := NewChunk(ChunkPos{})
	idx := ChunkIndex{X: 3, Y: 4, Z: 5}
	b := MakeBlock(0x40, 1)
	c.PutBlock(idx, b)
	if got := c.GetBlock(idx); got != b {
		t.Fatalf("GetBlock = %v, want %v", got, b)
	}
	if !c.Has(StatusNeedsRecompile) {
		t.Fatal("PutBlock must set NEEDS_RECOMPILE")
	}
}

func TestChunkIndexWraps(t *testing.T) {
	c := NewChunk(ChunkPos{})
	b := MakeBlock(1, 0)
	c.PutBlock(ChunkIndex{X: 0, Y: 0, Z: 0}, b)
	wrapped := ChunkIndex{X: ChunkSize, Y: ChunkSize * 2, Z: -ChunkSize}
	if got := c.GetBlock(wrapped); got != b {
		t.Fatalf("wrapped index did not alias origin: got %v", got)
	}
}

func TestGetNeighborsSubstitutesVoidAtFace(t *testing.T) {
	c := NewChunk(ChunkPos{})
	top := MakeBlock(5, 0)
	c.PutBlock(ChunkIndex{X: 0, Y: ChunkSize - 1, Z: 0}, top)

	above, below, _, _, _, _ := GetNeighbors(c, ChunkIndex{X: 0, Y: ChunkSize - 1, Z: 0})
	if above != VOID {
		t.Fatalf("above at top face should be VOID, got %v", above)
	}
	if below != VOID {
		t.Fatalf("below of a freshly-created chunk should read VOID (the zero block), got %v", below)
	}
}

func TestStatusFlagsSetClear(t *testing.T) {
	c := NewChunk(ChunkPos{})
	c.SetStatus(StatusLoaded | StatusNeedsRecompile)
	if !c.Has(StatusLoaded) || !c.Has(StatusNeedsRecompile) {
		t.Fatal("expected both flags set")
	}
	c.ClearStatus(StatusNeedsRecompile)
	if c.Has(StatusNeedsRecompile) {
		t.Fatal("NEEDS_RECOMPILE should be cleared")
	}
	if !c.Has(StatusLoaded) {
		t.Fatal("LOADED should remain set")
	}
}

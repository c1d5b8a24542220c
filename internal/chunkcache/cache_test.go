package chunkcache

import (
	"testing"

	"voxelcore/internal/voxel"
)

func TestInsertAndGetBestDataProbesFinestFirst(t *testing.T) {
	c := New()
	pos := voxel.ChunkPos{X: 10, Y: 10, Z: 0}

	approx := voxel.NewChunkApprox(pos, voxel.DetailQuarter)
	c.Insert(pos, voxel.DetailQuarter, voxel.Approx(approx), false)

	got := c.GetBestData(pos)
	if !got.IsLoaded() || got.IsFull() {
		t.Fatalf("expected quarter approx, got IsLoaded=%v IsFull=%v", got.IsLoaded(), got.IsFull())
	}

	full := voxel.NewChunk(pos)
	c.Insert(pos, voxel.DetailFull, voxel.Full(full), false)

	got = c.GetBestData(pos)
	if !got.IsFull() {
		t.Fatal("expected full chunk to take priority over approximation")
	}
}

func TestGetBestDataLimited(t *testing.T) {
	c := New()
	pos := voxel.ChunkPos{X: 1, Y: 1, Z: 1}
	full := voxel.NewChunk(pos)
	c.Insert(pos, voxel.DetailFull, voxel.Full(full), false)

	// Limiting to a coarser minimum detail than what's resident at DetailFull
	// should still find it, since DetailFull <= minDetail.
	got := c.GetBestDataLimited(pos, voxel.DetailQuarter)
	if !got.IsFull() {
		t.Fatal("expected full chunk to be found within limited probe")
	}

	empty := voxel.ChunkPos{X: 99}
	if c.GetBestDataLimited(empty, voxel.DetailQuarter).IsLoaded() {
		t.Fatal("expected NotLoaded for absent coordinate")
	}
}

func TestNoTwoEntriesShareCoordAndDetail(t *testing.T) {
	c := New()
	pos := voxel.ChunkPos{X: 2, Y: 2, Z: 2}
	first := voxel.NewChunk(pos)
	second := voxel.NewChunk(pos)
	c.Insert(pos, voxel.DetailFull, voxel.Full(first), false)
	c.Insert(pos, voxel.DetailFull, voxel.Full(second), false)

	count := 0
	c.EachAtDetail(voxel.DetailFull, func(e Entry) {
		if e.Pos == pos {
			count++
		}
	})
	if count != 1 {
		t.Fatalf("expected exactly one entry at (pos, detail), found %d", count)
	}
	got, _ := c.get(pos, voxel.DetailFull).AsFull()
	if got != second {
		t.Fatal("second insert should have replaced the first")
	}
}

func TestInsertTransfersMeshHandlesWhenContentsIdentical(t *testing.T) {
	c := New()
	pos := voxel.ChunkPos{}
	old := voxel.NewChunk(pos)
	old.MeshBuffers(voxel.LayerOpaque).GPUHandle = 42
	c.Insert(pos, voxel.DetailFull, voxel.Full(old), false)

	replacement := voxel.NewChunk(pos)
	c.Insert(pos, voxel.DetailFull, voxel.Full(replacement), true)

	if replacement.MeshBuffers(voxel.LayerOpaque).GPUHandle != 42 {
		t.Fatal("expected GPU handle to be transferred when sameContents=true")
	}
}

func TestMarkForReloadIsNoOpWhenAlreadySet(t *testing.T) {
	c := New()
	pos := voxel.ChunkPos{}
	full := voxel.NewChunk(pos)
	c.Insert(pos, voxel.DetailFull, voxel.Full(full), false)

	c.MarkForReload(pos)
	if c.Reload.Len() != 1 {
		t.Fatalf("expected one queued reload, got %d", c.Reload.Len())
	}
	c.MarkForReload(pos)
	if c.Reload.Len() != 1 {
		t.Fatalf("second MarkForReload should be a no-op, queue len = %d", c.Reload.Len())
	}
}

package engine

import (
	"testing"

	"voxelcore/internal/config"
	"voxelcore/internal/mesh"
	"voxelcore/internal/voxel"
)

type stubTextures struct{}

func (stubTextures) FaceTexture(id uint8, face mesh.Face) uint16 { return uint16(id) }

func TestTickSequenceReachesCompiled(t *testing.T) {
	w := NewWorld(NewDensityGenerator(7), voxel.GlobalPos{}, 256, stubTextures{})

	spawnChunk := voxel.ToChunkPos(voxel.GlobalPos{X: 0, Y: 0, Z: 50})
	w.Cache.MarkForLoad(spawnChunk, voxel.DetailFull)

	// Tick 1: reload runs, publishing LOADED and queuing for recompile.
	w.ReloadTick()
	coa := w.Cache.GetBestData(spawnChunk)
	if !coa.IsLoaded() {
		t.Fatal("expected the chunk to be resident after reload")
	}
	if coa.Accessor().Status()&voxel.StatusLoaded == 0 {
		t.Fatal("expected StatusLoaded after tick 1")
	}

	// Recompile needs all six neighbors loaded too; load them before tick 2.
	loadNeighborhood(t, w, spawnChunk)

	w.RecompileTick()
	coa = w.Cache.GetBestData(spawnChunk)
	if coa.Accessor().Status()&voxel.StatusCompiled == 0 {
		t.Fatal("expected StatusCompiled after tick 2")
	}
}

func loadNeighborhood(t *testing.T, w *World, center voxel.ChunkPos) {
	t.Helper()
	offsets := [6]chunkOffset{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}
	for _, o := range offsets {
		pos := voxel.ChunkPos{X: center.X + o.dx, Y: center.Y + o.dy, Z: center.Z + o.dz}
		w.Cache.MarkForLoad(pos, voxel.DetailFull)
	}
	w.ReloadTick()
}

func TestEditThenReloadReadsDiffOverGenerator(t *testing.T) {
	w := NewWorld(NewDensityGenerator(7), voxel.GlobalPos{}, 256, stubTextures{})
	edited := voxel.GlobalPos{X: 100, Y: 100, Z: 60}
	stone := voxel.MakeBlock(0x40, 0)
	w.Diffs.PutBlock(edited, stone)

	cp := voxel.ToChunkPos(edited)
	w.Cache.MarkForLoad(cp, voxel.DetailFull)
	w.ReloadTick()

	acc := w.Cache.GetBestData(cp).Accessor()
	got := acc.GetBlock(voxel.ToChunkIndex(edited))
	if got != stone {
		t.Fatalf("block_at(edited) = %v, want the diff override %v", got, stone)
	}

	// A neighboring, un-edited position falls through to the generator.
	neighbor := voxel.GlobalPos{X: 100, Y: 101, Z: 60}
	wantGen := w.Generator.Generate(neighbor)
	gotGen := acc.GetBlock(voxel.ToChunkIndex(neighbor))
	if gotGen != wantGen {
		t.Fatalf("block_at(neighbor) = %v, want generator value %v", gotGen, wantGen)
	}
}

func TestRecompileTickAvoidsLiveLock(t *testing.T) {
	w := NewWorld(NewDensityGenerator(1), voxel.GlobalPos{}, 256, stubTextures{})

	// Spread the chunks far enough apart on X that none is a neighbor of
	// another, so every one of them fails the six-neighborhood check.
	const n = 100

	// Raise the compile cap well above the queue length so that the
	// live-lock guard, not the per-tick budget, is what ends the tick.
	oldCap := config.GetCompileCap()
	config.SetCompileCap(10 * n)
	t.Cleanup(func() { config.SetCompileCap(oldCap) })
	for i := 0; i < n; i++ {
		pos := voxel.ChunkPos{X: int64(i) * 100, Y: 0, Z: 0}
		c := voxel.NewChunk(pos)
		c.SetStatus(voxel.StatusLoaded | voxel.StatusNeedsRecompile)
		coa := voxel.Full(c)
		w.Cache.Insert(pos, voxel.DetailFull, coa, false)
		w.Cache.Recompile.PushBack(coa)
	}

	processed, skipped := w.RecompileTick()
	if processed != 0 {
		t.Fatalf("expected 0 processed (no neighborhoods loaded), got %d", processed)
	}
	if skipped != n {
		t.Fatalf("expected exactly %d skips (one per item, no repeats), got %d", n, skipped)
	}
	if w.Cache.Recompile.Len() != n {
		t.Fatalf("expected the queue to retain all %d items, got %d", n, w.Cache.Recompile.Len())
	}
}

package area

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxelcore/internal/voxel"
)

func TestSpaceWarpMovesOriginAndEntities(t *testing.T) {
	a := NewArea(voxel.GlobalPos{}, 256)

	player := NewEntity(mgl32.Vec3{25, 0, 0}, mgl32.Vec3{1, 2, 1})
	player.IsPlayer = true
	a.Insert(player)

	other := NewEntity(mgl32.Vec3{5, 0, 0}, mgl32.Vec3{1, 2, 1})
	a.Insert(other)

	warped := a.MaybeWarp()
	if !warped {
		t.Fatal("expected a warp to occur")
	}

	if a.Origin.X != voxel.ChunkSize {
		t.Fatalf("origin.X = %d, want %d", a.Origin.X, voxel.ChunkSize)
	}
	if player.Pos.X() != 9 {
		t.Fatalf("player.Pos.X() = %v, want 9", player.Pos.X())
	}
	if other.Pos.X() != 5-voxel.ChunkSize {
		t.Fatalf("other.Pos.X() = %v, want %v", other.Pos.X(), 5-voxel.ChunkSize)
	}
}

func TestSpaceWarpIsIdentityThereAndBack(t *testing.T) {
	a := NewArea(voxel.GlobalPos{}, 256)
	player := NewEntity(mgl32.Vec3{20, 0, 0}, mgl32.Vec3{1, 2, 1})
	player.IsPlayer = true
	a.Insert(player)

	originalOrigin := a.Origin
	originalPos := player.Pos.X()

	a.MaybeWarp()    // warps by +1 chunk
	a.warp(-1, 0, 0) // and back by -1 chunk, with no external motion in between

	if a.Origin != originalOrigin {
		t.Fatalf("origin = %+v, want %+v", a.Origin, originalOrigin)
	}
	if player.Pos.X() != originalPos {
		t.Fatalf("player.Pos.X() = %v, want %v", player.Pos.X(), originalPos)
	}
}

func TestMaybeWarpNoopWithoutPlayer(t *testing.T) {
	a := NewArea(voxel.GlobalPos{}, 256)
	e := NewEntity(mgl32.Vec3{100, 0, 0}, mgl32.Vec3{1, 1, 1})
	a.Insert(e)

	if a.MaybeWarp() {
		t.Fatal("expected no warp without a player entity")
	}
}

func TestOutOfBoundsHandlerFiresOnFailedReinsert(t *testing.T) {
	a := NewArea(voxel.GlobalPos{}, 16)
	var destroyed *Entity
	a.OnOutOfBounds = func(area *Area, e *Entity) {
		destroyed = e
		delete(area.entities, e)
	}

	// 31 warps by +1 chunk (floor(31/16)=1), leaving a remainder of 15 —
	// with a size-1 box that's entirely past the span-16 tree's edge at 8.
	player := NewEntity(mgl32.Vec3{31, 0, 0}, mgl32.Vec3{1, 1, 1})
	player.IsPlayer = true
	a.Insert(player)

	a.MaybeWarp()
	if destroyed == nil {
		t.Fatal("expected the out-of-bounds handler to fire")
	}
}

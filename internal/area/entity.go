package area

import "github.com/go-gl/mathgl/mgl32"

// MoveFlag is a small per-entity bitset physics reads and writes alongside
// pos/vel/impulse; the spec names the contract (§4.7) but not a flag table,
// so this carries only what a basic kinematic simulation needs.
type MoveFlag uint8

const (
	MoveOnGround MoveFlag = 1 << iota
	MoveInLiquid
	MoveCollidedX
	MoveCollidedY
	MoveCollidedZ
)

// Entity is one kinematic body in an Area: position, velocity, and pending
// impulse are area-local vectors (mgl32.Vec3, as every position/velocity
// field in the teacher's world/entity/physics packages is typed), refreshed
// into a bounding box that keys it in the octree.
type Entity struct {
	Pos, Vel, Imp mgl32.Vec3

	Size   mgl32.Vec3
	Facing float32
	Mass   float32
	Flags  MoveFlag

	// IsPlayer marks the one entity per Area whose drift away from the
	// central chunk triggers a space warp (§4.7).
	IsPlayer bool

	bbox BBox
}

// NewEntity returns an entity positioned at pos with the given box size.
func NewEntity(pos, size mgl32.Vec3) *Entity {
	e := &Entity{Pos: pos, Size: size, Mass: 1}
	e.RefreshBBox()
	return e
}

// RefreshBBox recomputes the entity's bounding box from its current
// position and size.
func (e *Entity) RefreshBBox() {
	e.bbox = ComputeBB(e.Pos, e.Size)
}

// BBox returns the entity's last-computed bounding box.
func (e *Entity) BBox() BBox { return e.bbox }

func (e *Entity) Has(f MoveFlag) bool { return e.Flags&f != 0 }
func (e *Entity) Set(f MoveFlag)      { e.Flags |= f }
func (e *Entity) Clear(f MoveFlag)    { e.Flags &^= f }

package mesh

import (
	"voxelcore/internal/profiling"
	"voxelcore/internal/voxel"
)

// fullBrightness is the brightness packed into every vertex. No lighting
// model (ambient occlusion, sky/block light propagation) is part of this
// package's scope; the field exists so a future lighting pass has somewhere
// to write without a vertex format change.
const fullBrightness uint8 = 255

// layerFor routes a block to one of the three compiled layers, or reports ok
// == false for blocks that emit no geometry at all (§4.6 layer routing).
func layerFor(b voxel.Block) (voxel.Layer, bool) {
	switch voxel.KindOf(b) {
	case voxel.KindSolidOpaque, voxel.KindOpaqueLiquid:
		return voxel.LayerOpaque, true
	case voxel.KindSolidTranslucent:
		return voxel.LayerTransparent, true
	case voxel.KindTranslucentLiquid:
		return voxel.LayerTranslucent, true
	default:
		return 0, false
	}
}

// Compile runs §4.6 over acc: for every exposed face of every visible block,
// emits one quad into the matching layer's staging buffers. Exposure
// (§4.5, ComputeExposure) must already have been run against the current
// cache state; Compile only reads the EXPOSED_* flags, it never recomputes
// them.
func Compile(acc voxel.BlockAccessor, textures TextureTable) {
	defer profiling.Track("mesh.Compile")()

	side := acc.Side()
	step := acc.Detail().Step()
	var builders [3]quadBuilder

	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			for z := 0; z < side; z++ {
				idx := voxel.ChunkIndex{X: x * step, Y: y * step, Z: z * step}
				b := acc.GetBlock(idx)
				if voxel.IsInvisible(b) {
					continue
				}
				layer, ok := layerFor(b)
				if !ok {
					continue
				}

				flags := acc.GetFlags(idx)
				orientable := flags&voxel.FlagOrientable != 0
				ori := b.Data()

				bx, by, bz := x*step, y*step, z*step
				for i, d := range directions {
					if flags&d.flag == 0 {
						continue
					}
					face := Face(i)
					texFace := rotatedFace(i, ori, orientable)
					texID := textures.FaceTexture(b.ID(), texFace)
					corners := faceQuad(bx, by, bz, step, face)
					builders[layer].emitQuad(corners, face, fullBrightness, texID, 0)
				}
			}
		}
	}

	for l := voxel.Layer(0); l < 3; l++ {
		buf := acc.MeshBuffers(l)
		buf.StagingVertices = builders[l].vertices
		buf.StagingIndices = builders[l].indices
		buf.SegmentBoundaries = builders[l].bounds
	}

	acc.ClearStatus(voxel.StatusNeedsRecompile)
	acc.SetStatus(voxel.StatusCompiled)
}

// faceQuad returns the four corners (in full-resolution local units) of one
// face of a cube of side s whose minimum corner is (x,y,z), wound
// counter-clockwise as seen from outside the face.
func faceQuad(x, y, z, s int, face Face) [4][3]int {
	switch face {
	case FaceUp:
		return [4][3]int{{x, y + s, z}, {x, y + s, z + s}, {x + s, y + s, z + s}, {x + s, y + s, z}}
	case FaceDown:
		return [4][3]int{{x, y, z}, {x + s, y, z}, {x + s, y, z + s}, {x, y, z + s}}
	case FaceNorth:
		return [4][3]int{{x, y, z + s}, {x + s, y, z + s}, {x + s, y + s, z + s}, {x, y + s, z + s}}
	case FaceSouth:
		return [4][3]int{{x, y, z}, {x, y + s, z}, {x + s, y + s, z}, {x + s, y, z}}
	case FaceEast:
		return [4][3]int{{x + s, y, z}, {x + s, y + s, z}, {x + s, y + s, z + s}, {x + s, y, z + s}}
	default: // FaceWest
		return [4][3]int{{x, y, z}, {x, y, z + s}, {x, y + s, z + s}, {x, y + s, z}}
	}
}

package mesh

// Vertex packing follows the teacher's greedy mesher: two uint32 words per
// vertex. V1 packs local position, face normal, and brightness; V2 packs the
// atlas texture index and an RGB565 tint. UV corners are implied by winding
// order rather than stored, since every face is an axis-aligned unit quad.
//
// V1: X(5) Y(9) Z(5) Normal(3) Brightness(8)
// V2: TexID(16) Tint(16)
const (
	vertexStride = 2

	posXBits = 5
	posYBits = 9
	posZBits = 5

	posYShift   = posXBits
	posZShift   = posYShift + posYBits
	normalShift = posZShift + posZBits
	brightShift = normalShift + 3
	texIDShift  = 0
	tintShift   = 16
)

// maxUint16Index is the largest vertex index a 16-bit index buffer can
// address; §4.6's MAX_INDICES = 3*(umax/4) is expressed in terms of it.
const maxUint16Index = 0xFFFF

// MaxIndices16 is the index-count ceiling before a 16-bit index buffer must
// give way to a new segment (§4.6).
const MaxIndices16 = 3 * (maxUint16Index / 4)

func packVertex(x, y, z int, normal Face, brightness uint8, texID uint16, tint uint16) (uint32, uint32) {
	v1 := uint32(x&0x1F) |
		uint32(y&0x1FF)<<posYShift |
		uint32(z&0x1F)<<posZShift |
		uint32(normal&0x7)<<normalShift |
		uint32(brightness)<<brightShift
	v2 := uint32(texID)<<texIDShift | uint32(tint)<<tintShift
	return v1, v2
}

// quadBuilder accumulates vertices/indices for one layer's MeshBuffers,
// opening a new index segment boundary whenever the indices emitted since
// the last boundary would exceed MaxIndices16 (§4.6 MAX_INDICES).
type quadBuilder struct {
	vertices []uint32
	indices  []uint32
	bounds   []int
	vertsIn  int // vertices emitted since the last segment boundary
}

// emitQuad appends one axis-aligned quad (4 vertices, 2 triangles, 6
// indices) built from corners in counter-clockwise winding as seen from
// outside the face.
func (q *quadBuilder) emitQuad(corners [4][3]int, normal Face, brightness uint8, texID uint16, tint uint16) {
	if (q.vertsIn/4+1)*6 > MaxIndices16 {
		q.bounds = append(q.bounds, len(q.indices))
		q.vertsIn = 0
	}
	base := uint32(len(q.vertices) / vertexStride)
	for _, c := range corners {
		v1, v2 := packVertex(c[0], c[1], c[2], normal, brightness, texID, tint)
		q.vertices = append(q.vertices, v1, v2)
	}
	q.indices = append(q.indices,
		base+0, base+1, base+2,
		base+0, base+2, base+3,
	)
	q.vertsIn += 4
}

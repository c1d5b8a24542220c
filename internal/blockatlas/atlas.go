// Package blockatlas assembles the placeholder texture atlas the demo
// drivers hand to the renderer: one tile per registered texture name,
// stacked into a single image so mesh.FaceTexture's layer index is a row
// offset. Grounded on the teacher's internal/graphics/texture_util.go
// decode-then-upload idiom, generalized from "load one named PNG off disk"
// to "synthesize one flat-color tile per block texture name" since this
// repo ships no texture assets of its own.
package blockatlas

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// TileSize is the side length, in pixels, of one atlas tile.
const TileSize = 16

// Atlas is a vertical stack of TileSize x TileSize tiles, one per texture
// name, in the order given to Build.
type Atlas struct {
	Image *image.RGBA
	Names []string
	Index map[string]int
}

// placeholderColor derives a stable, visually distinct fill color for a
// texture name so different block faces are at least distinguishable
// without real art. Grounded on the teacher's tint-color fields in
// registry/blocks.go (0xRRGGBB per block), generalized to hash the
// texture name directly since this atlas has no hand-authored tint table.
func placeholderColor(name string) color.RGBA {
	var h uint32 = 2166136261
	for i := 0; i < len(name); i++ {
		h ^= uint32(name[i])
		h *= 16777619
	}
	return color.RGBA{
		R: uint8(h >> 16),
		G: uint8(h >> 8),
		B: uint8(h),
		A: 255,
	}
}

// Build renders one placeholder tile per name into a single atlas image,
// scaling each tile through golang.org/x/image/draw's bilinear scaler
// rather than a flat stdlib copy, mirroring the quality the teacher's font
// atlas pipeline applies to its own glyph bitmaps.
func Build(names []string) *Atlas {
	a := &Atlas{
		Names: append([]string(nil), names...),
		Index: make(map[string]int, len(names)),
	}
	h := TileSize * len(names)
	if h == 0 {
		h = TileSize
	}
	a.Image = image.NewRGBA(image.Rect(0, 0, TileSize, h))

	for i, name := range names {
		a.Index[name] = i
		src := image.NewUniform(placeholderColor(name))
		dstRect := image.Rect(0, i*TileSize, TileSize, (i+1)*TileSize)
		draw.BiLinear.Scale(a.Image, dstRect, src, src.Bounds(), draw.Src, nil)
	}
	return a
}

// Layer returns the atlas row index for a texture name, or -1 if unknown.
func (a *Atlas) Layer(name string) int {
	if i, ok := a.Index[name]; ok {
		return i
	}
	return -1
}

package engine

import "voxelcore/internal/voxel"

// Stock block ids used by the default generator. A real deployment would
// own a much larger registry; these few cover the solid-opaque and
// opaque-liquid Kinds only (no translucent ids).
const (
	stoneID = 0x40 // MinSolid, KindSolidOpaque
	dirtID  = 0x41
	waterID = 0x3D // KindOpaqueLiquid
)

var (
	Stone = voxel.MakeBlock(stoneID, 0)
	Dirt  = voxel.MakeBlock(dirtID, 0)
	Water = voxel.MakeBlock(waterID, 0)
)

// Generator is the external interface §4.4 step 2 calls per block: a pure
// function from a world position to the base block there, with no mutable
// state besides what's fixed at construction (the seed).
type Generator interface {
	Generate(pos voxel.GlobalPos) voxel.Block
}

// DensityGenerator is a 3D value-noise terrain generator, adapted from the
// density-field approach in the teacher's world package (noise.go,
// density.go): positive density is stone, and non-solid positions at or
// below y=0 (sea level) are water. There is no explicit floor; the height
// gradient alone makes deep positions solid. Dirt is defined but never
// emitted.
type DensityGenerator struct {
	seed             int64
	scale            float64
	gradientStrength float64
	seaLevel         int
	octaves          int
	persistence      float64
	lacunarity       float64
}

// NewDensityGenerator returns a generator with the teacher's default tuning.
func NewDensityGenerator(seed int64) *DensityGenerator {
	return &DensityGenerator{
		seed:             seed,
		scale:            1.0 / 64.0,
		gradientStrength: 32.0,
		seaLevel:         0,
		octaves:          4,
		persistence:      0.5,
		lacunarity:       2.0,
	}
}

func (g *DensityGenerator) Generate(pos voxel.GlobalPos) voxel.Block {
	density := g.density(pos)
	if density > 0 {
		return Stone
	}
	if int(pos.Y) <= g.seaLevel {
		return Water
	}
	return voxel.AIR
}

func (g *DensityGenerator) density(pos voxel.GlobalPos) float64 {
	nx := float64(pos.X) * g.scale
	ny := float64(pos.Y) * g.scale
	nz := float64(pos.Z) * g.scale

	n := octaveNoise3D(nx, ny, nz, g.seed, g.octaves, g.persistence, g.lacunarity)
	n = n*2 - 1 // [0,1] -> [-1,1]

	heightGradient := -float64(pos.Y) / g.gradientStrength
	return n + heightGradient
}

package mesh

// BlockDefinition names the textures a block id samples per face and
// whatever a texture atlas needs to look them up. Grounded on the teacher's
// internal/registry/blocks.go block table, generalized from the teacher's
// fixed BlockType enum to this engine's uint8 block ids and Face type.
type BlockDefinition struct {
	ID          uint8
	Name        string
	TextureTop  string
	TextureSide string
	TextureBot  string
}

// Registry collects block definitions and assigns each distinct texture
// name a stable atlas layer index, the same two-pass scheme
// (RegisterBlock + registerTexture) the teacher's package uses to guarantee
// grass_top/grass_side/dirt land at layers 0/1/2.
type Registry struct {
	defs         map[uint8]*BlockDefinition
	textureNames []string
	textureIndex map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs:         make(map[uint8]*BlockDefinition),
		textureIndex: make(map[string]int),
	}
}

// Register adds a block definition and its textures to the atlas layer list.
func (r *Registry) Register(def BlockDefinition) {
	d := def
	r.defs[def.ID] = &d
	r.registerTexture(def.TextureTop)
	r.registerTexture(def.TextureSide)
	r.registerTexture(def.TextureBot)
}

func (r *Registry) registerTexture(name string) {
	if name == "" {
		return
	}
	if _, ok := r.textureIndex[name]; ok {
		return
	}
	r.textureIndex[name] = len(r.textureNames)
	r.textureNames = append(r.textureNames, name)
}

// TextureNames returns the atlas layer list in registration order.
func (r *Registry) TextureNames() []string { return r.textureNames }

// FaceTextures builds the per-id, per-face texture table compile.go consumes,
// resolving each definition's top/side/bottom names to their atlas layer.
func (r *Registry) FaceTextures() FaceTextures {
	out := make(FaceTextures, len(r.defs))
	for id, def := range r.defs {
		top := uint16(r.textureIndex[def.TextureTop])
		side := uint16(r.textureIndex[def.TextureSide])
		bot := uint16(r.textureIndex[def.TextureBot])
		out[id] = [numFaces]uint16{
			FaceUp:    top,
			FaceDown:  bot,
			FaceNorth: side,
			FaceSouth: side,
			FaceEast:  side,
			FaceWest:  side,
		}
	}
	return out
}

// DefaultRegistry mirrors the teacher's InitRegistry: the three stock block
// ids engine/generator.go defines (Stone, Dirt, Water; the generator itself
// emits only stone and water), each given top/side/bottom texture names for
// a placeholder atlas.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(BlockDefinition{ID: 0x40, Name: "stone", TextureTop: "stone.png", TextureSide: "stone.png", TextureBot: "stone.png"})
	r.Register(BlockDefinition{ID: 0x41, Name: "dirt", TextureTop: "dirt_top.png", TextureSide: "dirt_side.png", TextureBot: "dirt.png"})
	r.Register(BlockDefinition{ID: 0x3D, Name: "water", TextureTop: "water.png", TextureSide: "water.png", TextureBot: "water.png"})
	return r
}

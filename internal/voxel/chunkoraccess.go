package voxel

// ChunkOrApprox is a tagged union over "not loaded yet", a full-detail
// chunk, or an approximation. Callers always go through it rather than
// switching on detail externally.
type ChunkOrApprox struct {
	full   *Chunk
	approx *ChunkApprox
}

// NotLoaded is the zero value: neither variant present.
var NotLoaded ChunkOrApprox

// Full wraps a full-detail chunk.
func Full(c *Chunk) ChunkOrApprox { return ChunkOrApprox{full: c} }

// Approx wraps an approximation.
func Approx(a *ChunkApprox) ChunkOrApprox { return ChunkOrApprox{approx: a} }

// IsLoaded reports whether either variant is present.
func (c ChunkOrApprox) IsLoaded() bool { return c.full != nil || c.approx != nil }

// IsFull reports whether this is a full-detail chunk.
func (c ChunkOrApprox) IsFull() bool { return c.full != nil }

// AsFull returns the full chunk and true, or (nil, false).
func (c ChunkOrApprox) AsFull() (*Chunk, bool) { return c.full, c.full != nil }

// AsApprox returns the approximation and true, or (nil, false).
func (c ChunkOrApprox) AsApprox() (*ChunkApprox, bool) { return c.approx, c.approx != nil }

// Accessor returns the shared block-access capability, whichever variant is
// loaded, or nil for NotLoaded.
func (c ChunkOrApprox) Accessor() BlockAccessor {
	if c.full != nil {
		return c.full
	}
	if c.approx != nil {
		return c.approx
	}
	return nil
}

// Detail returns the loaded variant's detail level, or DetailFull if empty
// (callers should check IsLoaded first).
func (c ChunkOrApprox) Detail() Detail {
	if a := c.Accessor(); a != nil {
		return a.Detail()
	}
	return DetailFull
}

// Position returns the loaded variant's chunk coordinate.
func (c ChunkOrApprox) Position() (ChunkPos, bool) {
	if a := c.Accessor(); a != nil {
		return a.Position(), true
	}
	return ChunkPos{}, false
}

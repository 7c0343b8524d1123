package texture

import "github.com/rustray/raytrace/internal/geometry"

// SolidTexture is the trivial texture: every UV maps to the same surface.
type SolidTexture struct {
	Surface Surface
}

// NewSolid builds a SolidTexture from a surface.
func NewSolid(s Surface) SolidTexture {
	return SolidTexture{Surface: s}
}

// At always returns the wrapped surface.
func (s SolidTexture) At(geometry.UV) Surface {
	return s.Surface
}

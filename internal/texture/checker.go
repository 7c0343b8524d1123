package texture

import (
	"math"

	"github.com/rustray/raytrace/internal/geometry"
)

// CheckerTexture alternates between two surfaces on a lattice scaled by
// Scale cells per unit UV. The lattice cell is even or odd based on the
// parity of floor(u*scale) + floor(v*scale), which (unlike a sin-based
// checker) tiles exactly with no seams at negative coordinates.
type CheckerTexture struct {
	Even, Odd Surface
	Scale     float64
}

// NewChecker builds a checker texture from two surfaces and a lattice
// scale (cells per unit UV distance).
func NewChecker(even, odd Surface, scale float64) CheckerTexture {
	return CheckerTexture{Even: even, Odd: odd, Scale: scale}
}

// At selects Even or Odd by the parity of the scaled, floored UV cell.
func (c CheckerTexture) At(uv geometry.UV) Surface {
	cellU := math.Floor(uv.U * c.Scale)
	cellV := math.Floor(uv.V * c.Scale)
	if int64(cellU+cellV)%2 == 0 {
		return c.Even
	}
	return c.Odd
}

package texture

import "github.com/rustray/raytrace/internal/geometry"

// Texture maps a UV coordinate to a Surface. It is a pure function of UV —
// no state is mutated on the hot path.
type Texture interface {
	At(uv geometry.UV) Surface
}

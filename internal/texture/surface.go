package texture

// Surface is the shading input resolved from a texture lookup: an albedo
// color and the material parameters to shade it with.
type Surface struct {
	Color    Color
	Material Material
}

// White is a plain white diffuse surface, the default for untextured
// objects.
var White = Surface{Color: Color{R: 1, G: 1, B: 1}, Material: DefaultMaterial}

package texture

// Material carries the shading parameters for a surface. Reflectivity of 1
// skips the diffuse term entirely (a pure mirror); Refractive of 1 disables
// refraction.
type Material struct {
	Reflectivity float64 // in [0,1]
	Emission     Color
	Refractive   float64 // >= 1; 1 disables refraction
}

// DefaultMaterial is a fully diffuse, non-reflective, non-refractive,
// non-emissive material.
var DefaultMaterial = Material{Reflectivity: 0, Emission: Black, Refractive: 1}

// Mirror returns a purely specular material.
func Mirror() Material {
	return Material{Reflectivity: 1, Emission: Black, Refractive: 1}
}

// Glass returns a dielectric material with the given index of refraction
// and a small amount of surface reflectivity (a Fresnel-free approximation,
// matching the fixed reflectivity weighting in the shading model).
func Glass(refractiveIndex float64) Material {
	return Material{Reflectivity: 0.05, Emission: Black, Refractive: refractiveIndex}
}

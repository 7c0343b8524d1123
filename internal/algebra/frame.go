package algebra

import "github.com/go-gl/mathgl/mgl64"

// Frame is an affine transform: three basis vectors plus an origin, stored
// as a 4x4 homogeneous matrix. Basis columns need not be orthonormal —
// non-uniform scale is allowed — which is why Frame is a compact matrix
// rather than a rotation+translation pair.
type Frame struct {
	mgl64.Mat4
}

// Identity returns the identity frame.
func Identity() Frame { return Frame{mgl64.Ident4()} }

// Translation returns a frame that translates by v.
func Translation(v Vec3) Frame {
	return Frame{mgl64.Translate3D(v.X(), v.Y(), v.Z())}
}

// NonUniformScale returns a frame that scales each axis independently.
func NonUniformScale(v Vec3) Frame {
	return Frame{mgl64.Scale3D(v.X(), v.Y(), v.Z())}
}

// AxisAngleRotation returns a frame that rotates by angle radians about
// axis (which need not be unit length; it is normalized here, since
// mgl64.HomogRotate3D expects a unit axis).
func AxisAngleRotation(axis Vec3, angleRadians float64) Frame {
	return Frame{mgl64.HomogRotate3D(angleRadians, axis.Normalize().Vec3)}
}

// Compose returns the frame equivalent to applying f2 then f1 (f1 * f2 in
// matrix terms), matching how T*R*S is built up: Identity().Compose(T).Compose(R).Compose(S).
func (f Frame) Compose(f2 Frame) Frame {
	return Frame{f.Mat4.Mul4(f2.Mat4)}
}

// Inverse returns the algebraic inverse of f. Callers must check
// Invertible first; Inverse of a singular frame returns an undefined
// result (mgl64 returns a zero matrix).
func (f Frame) Inverse() Frame {
	return Frame{f.Mat4.Inv()}
}

// Invertible reports whether f has a non-zero determinant.
func (f Frame) Invertible() bool {
	return f.Mat4.Det() != 0
}

// TransformPoint applies the frame to a point (translation included).
func (f Frame) TransformPoint(p Point3) Point3 {
	v4 := f.Mat4.Mul4x1(mgl64.Vec4{p.X(), p.Y(), p.Z(), 1})
	return NewPoint3(v4[0], v4[1], v4[2])
}

// TransformVector applies the frame to a vector (translation excluded).
func (f Frame) TransformVector(v Vec3) Vec3 {
	v4 := f.Mat4.Mul4x1(mgl64.Vec4{v.X(), v.Y(), v.Z(), 0})
	return NewVec3(v4[0], v4[1], v4[2])
}

// Transpose returns the transpose of f, used to transform normals under
// non-uniform scale (the inverse-transpose rule).
func (f Frame) Transpose() Frame {
	return Frame{f.Mat4.Transpose()}
}

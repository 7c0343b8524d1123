// Package camera builds primary rays from pixel indices via a
// precomputed basis: front/right/up vectors computed once in New rather
// than recomputed per pixel.
package camera

import (
	"fmt"
	"math"

	"github.com/rustray/raytrace/internal/algebra"
)

// ErrInvalidConfig is returned by New when the requested camera parameters
// cannot describe a valid viewing frustum.
var ErrInvalidConfig = fmt.Errorf("invalid camera config")

// Camera converts pixel indices to primary rays.
type Camera struct {
	origin algebra.Point3

	corner      algebra.Vec3
	pixelStepX  algebra.Vec3
	pixelStepY  algebra.Vec3

	Width, Height int
}

// New builds a Camera from an origin, a forward direction, the output
// resolution, and a vertical field of view in degrees. It fails with
// ErrInvalidConfig for zero/negative resolution or an FOV outside (0,180).
func New(origin algebra.Point3, forward algebra.Vec3, width, height int, fovDegrees float64) (*Camera, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width and height must be positive, got %dx%d", ErrInvalidConfig, width, height)
	}
	if fovDegrees <= 0 || fovDegrees >= 180 {
		return nil, fmt.Errorf("%w: fov must be in (0,180), got %g", ErrInvalidConfig, fovDegrees)
	}

	forwardUnit := forward.Normalize()
	aspect := float64(width) / float64(height)
	scale := math.Tan(fovDegrees / 2 * math.Pi / 180)

	right := algebra.NewVec3(0, 1, 0).Cross(forwardUnit.Vec3).Normalize()
	up := forwardUnit.Cross(right.Vec3).Normalize()

	pixelStepX := right.Scale(2 * aspect * scale / float64(width))
	pixelStepY := up.Scale(-2 * scale / float64(height))

	corner := forwardUnit.Vec3.
		Sub(pixelStepX.Scale(float64(width) / 2)).
		Sub(pixelStepY.Scale(float64(height) / 2))

	return &Camera{
		origin:     origin,
		corner:     corner,
		pixelStepX: pixelStepX,
		pixelStepY: pixelStepY,
		Width:      width,
		Height:     height,
	}, nil
}

// RayAt returns the primary ray through pixel (x, y). No half-pixel offset
// is applied: the ray passes through the top-left corner of the pixel's
// cell on the image plane, not its center.
func (c *Camera) RayAt(x, y int) algebra.Ray {
	dir := c.corner.
		Add(c.pixelStepX.Scale(float64(x))).
		Add(c.pixelStepY.Scale(float64(y)))
	return algebra.NewRay(c.origin, dir)
}

package camera

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustray/raytrace/internal/algebra"
)

func TestNewRejectsNonPositiveResolution(t *testing.T) {
	_, err := New(algebra.NewPoint3(0, 0, 0), algebra.NewVec3(0, 0, -1), 0, 100, 60)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewRejectsOutOfRangeFOV(t *testing.T) {
	_, err := New(algebra.NewPoint3(0, 0, 0), algebra.NewVec3(0, 0, -1), 100, 100, 180)
	require.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(algebra.NewPoint3(0, 0, 0), algebra.NewVec3(0, 0, -1), 100, 100, 0)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRayAtCenterPointsForward(t *testing.T) {
	origin := algebra.NewPoint3(0, 0, 0)
	forward := algebra.NewVec3(0, 0, -1)
	cam, err := New(origin, forward, 100, 100, 60)
	require.NoError(t, err)

	ray := cam.RayAt(50, 50)
	assert.InDelta(t, 0, ray.Direction.X(), 0.02)
	assert.InDelta(t, 0, ray.Direction.Y(), 0.02)
	assert.Less(t, ray.Direction.Z(), 0.0)
}

func TestRayAtOriginIsCameraOrigin(t *testing.T) {
	origin := algebra.NewPoint3(1, 2, 3)
	cam, err := New(origin, algebra.NewVec3(0, 0, -1), 100, 100, 60)
	require.NoError(t, err)

	ray := cam.RayAt(0, 0)
	assert.Equal(t, origin, ray.Origin)
}

func TestRayDirectionsAreUnitLength(t *testing.T) {
	cam, err := New(algebra.NewPoint3(0, 0, 0), algebra.NewVec3(0, 0, -1), 64, 48, 90)
	require.NoError(t, err)

	for _, pt := range [][2]int{{0, 0}, {63, 0}, {0, 47}, {63, 47}, {32, 24}} {
		ray := cam.RayAt(pt[0], pt[1])
		assert.InDelta(t, 1, ray.Direction.Magnitude(), 1e-9)
	}
}

package transform

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustray/raytrace/internal/algebra"
)

func TestNewRejectsZeroScale(t *testing.T) {
	_, err := New(algebra.NewVec3(0, 0, 0), algebra.NewVec3(0, 1, 0), 0, algebra.NewVec3(1, 0, 1))
	require.ErrorIs(t, err, ErrSingular)
}

func TestIdentityIsNoOp(t *testing.T) {
	tr := Identity()
	world := algebra.Ray{Origin: algebra.NewPoint3(1, 2, 3), Direction: algebra.NewVec3(0, 0, -1).Normalize()}
	lr := tr.ToLocalRay(world)

	assert.InDelta(t, world.Origin.X(), lr.Ray.Origin.X(), 1e-9)
	assert.InDelta(t, world.Origin.Y(), lr.Ray.Origin.Y(), 1e-9)
	assert.InDelta(t, world.Origin.Z(), lr.Ray.Origin.Z(), 1e-9)
	assert.InDelta(t, 1, lr.Scale, 1e-9)
}

func TestToWorldDistanceRoundTripsWithUniformScale(t *testing.T) {
	tr, err := New(algebra.NewVec3(5, 0, 0), algebra.NewVec3(0, 1, 0), 0, algebra.NewVec3(2, 2, 2))
	require.NoError(t, err)

	world := algebra.Ray{Origin: algebra.NewPoint3(-10, 0, 0), Direction: algebra.NewVec3(1, 0, 0).Normalize()}
	lr := tr.ToLocalRay(world)
	localT := 4.0
	worldT := lr.ToWorldDistance(localT)

	worldHit := world.At(worldT)
	localHit := lr.Ray.At(localT)
	backToWorld := tr.ToWorldPoint(localHit)

	assert.InDelta(t, worldHit.X(), backToWorld.X(), 1e-9)
	assert.InDelta(t, worldHit.Y(), backToWorld.Y(), 1e-9)
	assert.InDelta(t, worldHit.Z(), backToWorld.Z(), 1e-9)
}

func TestToWorldNormalHandlesNonUniformScale(t *testing.T) {
	tr, err := New(algebra.NewVec3(0, 0, 0), algebra.NewVec3(0, 1, 0), 0, algebra.NewVec3(2, 1, 1))
	require.NoError(t, err)

	localNormal := algebra.UnitVec3{Vec3: algebra.NewVec3(1, 0, 0)}
	worldNormal := tr.ToWorldNormal(localNormal)

	assert.InDelta(t, 1, worldNormal.Magnitude(), 1e-9)
	assert.InDelta(t, 1, math.Abs(worldNormal.X()), 1e-9)
}

func TestRotationToIdentical(t *testing.T) {
	v := algebra.NewVec3(1, 0, 0).Normalize()
	_, angle := RotationTo(v, v)
	assert.InDelta(t, 0, angle, 1e-12)
}

func TestRotationToOpposite(t *testing.T) {
	v := algebra.NewVec3(1, 0, 0).Normalize()
	axis, angle := RotationTo(v, v.Negate())
	assert.InDelta(t, math.Pi, angle, 1e-9)
	assert.InDelta(t, 1, axis.Magnitude(), 1e-9)
	assert.InDelta(t, 0, axis.Dot(v.Vec3), 1e-9)
}

func TestRotationToPerpendicular(t *testing.T) {
	x := algebra.NewVec3(1, 0, 0).Normalize()
	y := algebra.NewVec3(0, 1, 0).Normalize()
	_, angle := RotationTo(x, y)
	assert.InDelta(t, math.Pi/2, angle, 1e-9)
}

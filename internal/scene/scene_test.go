package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomSpheresProducesRequestedCountWhenRoomAllows(t *testing.T) {
	objects := RandomSpheres(1, 20, 10)
	assert.Len(t, objects, 20)
}

func TestRandomSpheresIsDeterministic(t *testing.T) {
	a := RandomSpheres(42, 15, 10)
	b := RandomSpheres(42, 15, 10)
	require := assert.New(t)
	require.Equal(len(a), len(b))
	for i := range a {
		boxA := a[i].BoundingBox()
		boxB := b[i].BoundingBox()
		require.Equal(boxA, boxB)
	}
}

func TestRandomSpheresDoNotOverlap(t *testing.T) {
	objects := RandomSpheres(7, 30, 15)

	type placed struct {
		cx, cy, cz, radius float64
	}
	spheres := make([]placed, len(objects))
	for i, o := range objects {
		bb := o.BoundingBox()
		center := bb.Center()
		spheres[i] = placed{center.X(), center.Y(), center.Z(), (bb.Max.X() - bb.Min.X()) / 2}
	}

	for i := range spheres {
		for j := i + 1; j < len(spheres); j++ {
			a, b := spheres[i], spheres[j]
			dx, dy, dz := a.cx-b.cx, a.cy-b.cy, a.cz-b.cz
			dist := dx*dx + dy*dy + dz*dz
			minDist := a.radius + b.radius
			assert.GreaterOrEqual(t, dist, minDist*minDist-1e-9)
		}
	}
}

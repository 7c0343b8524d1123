package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustray/raytrace/internal/algebra"
	"github.com/rustray/raytrace/internal/camera"
	"github.com/rustray/raytrace/internal/geometry"
	"github.com/rustray/raytrace/internal/object"
	"github.com/rustray/raytrace/internal/octree"
	"github.com/rustray/raytrace/internal/texture"
	"github.com/rustray/raytrace/internal/transform"
	"github.com/rustray/raytrace/internal/world"
)

func TestToRGB8ClampsOutOfRangeChannels(t *testing.T) {
	rgb := toRGB8(texture.Color{R: -1, G: 0.5, B: 2})
	assert.Equal(t, [3]byte{0, 128, 255}, rgb)
}

func TestToRGB8RoundsToNearestByte(t *testing.T) {
	rgb := toRGB8(texture.Color{R: 1.0 / 255 * 0.6, G: 0, B: 0})
	assert.Equal(t, byte(1), rgb[0])
}

func buildTestWorld(t *testing.T) *world.World {
	t.Helper()
	tr, err := transform.New(algebra.NewVec3(0, 0, -5), algebra.NewVec3(0, 1, 0), 0, algebra.NewVec3(1, 1, 1))
	require.NoError(t, err)
	sphere := object.New(geometry.Sphere{}, tr, texture.NewSolid(texture.White))
	light := world.NewPointLight(algebra.NewPoint3(5, 5, 0), texture.Color{R: 1, G: 1, B: 1})
	return world.New([]*object.Object{sphere}, []world.Light{light}, octree.DefaultConfig)
}

func TestTakePhotoSerialAndParallelAgree(t *testing.T) {
	w := buildTestWorld(t)
	cam, err := camera.New(algebra.NewPoint3(0, 0, 0), algebra.NewVec3(0, 0, -1), 16, 12, 60)
	require.NoError(t, err)

	serial := TakePhoto(w, cam, nil, false)
	parallel := TakePhoto(w, cam, nil, true)

	assert.Equal(t, serial.Image.Pix, parallel.Image.Pix)
}

func TestTakePhotoReportsEveryPixel(t *testing.T) {
	w := buildTestWorld(t)
	cam, err := camera.New(algebra.NewPoint3(0, 0, 0), algebra.NewVec3(0, 0, -1), 8, 6, 60)
	require.NoError(t, err)

	count := 0
	TakePhoto(w, cam, func(PixelMessage) { count++ }, false)
	assert.Equal(t, 8*6, count)
}

// Package render provides the primary-ray casting pipeline: it dispatches
// one independent radiance query per pixel across a parallel work set,
// converts the result to 8-bit RGB, and streams per-pixel notifications —
// plus, for preview mode, a frame-pacing buffer (see pacer.go).
package render

import (
	"image"
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/rustray/raytrace/internal/camera"
	"github.com/rustray/raytrace/internal/texture"
	"github.com/rustray/raytrace/internal/world"
)

// DefaultDepth is the recursion budget handed to Cast for every primary
// ray: it strictly decreases along every recursive edge and guarantees
// termination.
const DefaultDepth = 5

// Photo is the result of a single TakePhoto call: the raster image plus
// how long it took to produce.
type Photo struct {
	Image   *image.RGBA
	Elapsed time.Duration
}

// TakePhoto renders one frame: for every pixel in [0,width) x [0,height),
// it builds the primary ray, casts it at DefaultDepth, converts the
// resulting linear color to 8-bit, reports it via onPixel, and stores it
// in the output image. Every pixel computation is a pure function of the
// (read-only) world and its own index, so the parallel path needs no
// locking — it partitions rows across a worker pool sized to the host's
// CPU count, mirroring the image-processing pack's concurrency pattern.
func TakePhoto(w *world.World, cam *camera.Camera, onPixel func(PixelMessage), parallel bool) Photo {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, cam.Width, cam.Height))

	renderRow := func(y int) {
		for x := 0; x < cam.Width; x++ {
			ray := cam.RayAt(x, y)
			color := w.Cast(ray, DefaultDepth)
			rgb := toRGB8(color)
			offset := img.PixOffset(x, y)
			img.Pix[offset+0] = rgb[0]
			img.Pix[offset+1] = rgb[1]
			img.Pix[offset+2] = rgb[2]
			img.Pix[offset+3] = 0xff
			if onPixel != nil {
				onPixel(PixelMessage{X: x, Y: y, RGB: rgb})
			}
		}
	}

	if !parallel {
		for y := 0; y < cam.Height; y++ {
			renderRow(y)
		}
		return Photo{Image: img, Elapsed: time.Since(start)}
	}

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	rows := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for y := range rows {
				renderRow(y)
			}
		}()
	}
	for y := 0; y < cam.Height; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return Photo{Image: img, Elapsed: time.Since(start)}
}

// toRGB8 converts a channel in [0,1] (values outside the range are
// clamped) to a rounded byte, per channel.
func toRGB8(c texture.Color) [3]byte {
	return [3]byte{channelToByte(c.R), channelToByte(c.G), channelToByte(c.B)}
}

func channelToByte(c float64) byte {
	scaled := math.Round(c * 255)
	if scaled < 0 {
		scaled = 0
	}
	if scaled > 255 {
		scaled = 255
	}
	return byte(scaled)
}

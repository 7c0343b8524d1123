// Command raytrace is the CLI harness around the trace core: it builds a
// demo scene, a camera, and a world, then renders either a single photo,
// a video of frames, or an interactive preview, depending on the flags.
package main

import (
	"flag"
	"image"
	"image/png"
	"os"

	"go.uber.org/zap"

	"github.com/rustray/raytrace/internal/algebra"
	"github.com/rustray/raytrace/internal/camera"
	"github.com/rustray/raytrace/internal/logging"
	"github.com/rustray/raytrace/internal/object"
	"github.com/rustray/raytrace/internal/octree"
	"github.com/rustray/raytrace/internal/preview"
	"github.com/rustray/raytrace/internal/render"
	"github.com/rustray/raytrace/internal/scene"
	"github.com/rustray/raytrace/internal/texture"
	"github.com/rustray/raytrace/internal/world"
)

func main() {
	width := flag.Int("width", 3840, "output image width")
	height := flag.Int("height", 1920, "output image height")
	noParallel := flag.Bool("no-parallel", false, "disable the parallel pixel map")
	visualize := flag.Bool("visualize", false, "open a preview window")
	video := flag.Bool("video", false, "animate frame-by-frame instead of rendering one photo")
	videoFrames := flag.Int("video-frames", 64, "number of frames to render in video mode")
	flag.IntVar(videoFrames, "f", 64, "shorthand for -video-frames (requires -video)")
	videoBuffer := flag.Int("video-buffer", 1, "pacer buffer size in video mode")
	flag.IntVar(videoBuffer, "b", 1, "shorthand for -video-buffer (requires -video)")
	output := flag.String("output", "output.png", "output PNG path (ignored in preview/video mode)")
	flag.StringVar(output, "o", "output.png", "shorthand for -output")
	verbose := flag.Bool("verbose", false, "enable development-mode logging")
	flag.Parse()

	log := logging.New(*verbose)
	defer log.Sync()

	if *videoFrames < 1 {
		*videoFrames = 1
	}
	if *videoBuffer < 1 {
		*videoBuffer = 1
	}

	cam, err := camera.New(
		algebra.NewPoint3(0, 2, 6),
		algebra.NewVec3(0, -0.1, -1),
		*width, *height, 60,
	)
	if err != nil {
		log.Error("build camera", zap.Error(err))
		os.Exit(1)
	}

	w := buildWorld()

	switch {
	case *video:
		runVideo(log, w, cam, *videoFrames, *videoBuffer, *visualize, *noParallel)
	case *visualize:
		runVisualize(log, w, cam, *noParallel)
	default:
		runPhoto(log, w, cam, *output, *noParallel)
	}
}

func runPhoto(log *zap.Logger, w *world.World, cam *camera.Camera, output string, noParallel bool) {
	photo := render.TakePhoto(w, cam, nil, !noParallel)
	log.Info("rendered photo", zap.Duration("elapsed", photo.Elapsed))

	f, err := os.Create(output)
	if err != nil {
		log.Error("create output file", zap.Error(err))
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, photo.Image); err != nil {
		log.Error("encode png", zap.Error(err))
		os.Exit(1)
	}
}

func runVisualize(log *zap.Logger, w *world.World, cam *camera.Camera, noParallel bool) {
	win, err := preview.New(cam.Width, cam.Height, "raytrace")
	if err != nil {
		log.Error("open preview window", zap.Error(err))
		os.Exit(1)
	}
	defer win.Close()

	pixels := make(chan render.PixelMessage, 4096)
	sink := render.NewPixelSink(pixels)
	frames := make(chan render.FrameMessage)
	stop := make(chan struct{})

	go func() {
		defer close(pixels)
		render.TakePhoto(w, cam, func(p render.PixelMessage) { sink.Send(p) }, !noParallel)
	}()

	go func() {
		defer close(frames)
		for p := range pixels {
			frames <- render.FrameMessage{Kind: render.FrameKindPixel, Pixel: p}
		}
	}()

	win.Run(frames, stop)
}

func runVideo(log *zap.Logger, w *world.World, cam *camera.Camera, frameCount, bufferSize int, visualize, noParallel bool) {
	pacer := render.NewPacer(bufferSize, 30)
	out := make(chan render.FrameMessage)

	go pacer.Run(out)

	go func() {
		defer pacer.Close()
		for i := 0; i < frameCount; i++ {
			photo := render.TakePhoto(w, cam, nil, !noParallel)
			pacer.Enqueue(render.FrameMessage{
				Kind: render.FrameKindImage,
				Image: render.ImagePayload{
					Width:  cam.Width,
					Height: cam.Height,
					Bytes:  packRGB24(photo.Image),
				},
			})
		}
	}()

	if !visualize {
		for range out {
		}
		return
	}

	win, err := preview.New(cam.Width, cam.Height, "raytrace (video)")
	if err != nil {
		log.Error("open preview window", zap.Error(err))
		os.Exit(1)
	}
	defer win.Close()

	win.Run(out, make(chan struct{}))
}

// packRGB24 flattens the image's RGBA pixel buffer to the packed RGB24
// format ImagePayload carries to the preview.
func packRGB24(img *image.RGBA) []byte {
	b := img.Bounds()
	out := make([]byte, 0, b.Dx()*b.Dy()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			offset := img.PixOffset(x, y)
			out = append(out, img.Pix[offset+0], img.Pix[offset+1], img.Pix[offset+2])
		}
	}
	return out
}

// buildWorld assembles the default demo scene: a checkered floor and a
// mirror/glass/diffuse sphere trio, exercising every shading path at once.
func buildWorld() *world.World {
	ground := texture.Color{R: 0.9, G: 0.9, B: 0.9}
	checkerDark := texture.Color{R: 0.1, G: 0.1, B: 0.1}

	floor := scene.CheckeredPlane(0, 1, scene.DiffuseSurface(ground), scene.DiffuseSurface(checkerDark))
	mirrorSphere := scene.Sphere(algebra.NewPoint3(-2, 1, 0), 1, scene.MirrorSurface(texture.Color{R: 1, G: 1, B: 1}))
	glassSphere := scene.Sphere(algebra.NewPoint3(0, 1, 0), 1, scene.GlassSurface(texture.Color{R: 1, G: 1, B: 1}, 1.5))
	diffuseSphere := scene.Sphere(algebra.NewPoint3(2, 1, 0), 1, scene.DiffuseSurface(texture.Color{R: 0.8, G: 0.2, B: 0.2}))

	lights := []world.Light{
		world.NewPointLight(algebra.NewPoint3(5, 8, 5), texture.Color{R: 1, G: 1, B: 1}),
	}

	objects := []*object.Object{floor, mirrorSphere, glassSphere, diffuseSphere}
	return world.New(objects, lights, octree.DefaultConfig)
}

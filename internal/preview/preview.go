// Package preview provides the interactive preview surface: a window that
// displays whatever frame the trace core has most recently produced. It
// never traces a ray itself — it only blits an already-computed RGB24
// buffer to a full-screen textured quad.
package preview

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/rustray/raytrace/internal/render"
)

func init() {
	// GLFW and GL calls must run on the OS thread that owns the window.
	runtimeLockOSThread()
}

// Window owns a GLFW/GL context sized to the rendered frame and displays
// FrameMessage updates as they arrive, either pixel-by-pixel during an
// interactive render or whole-frame during video playback.
type Window struct {
	win     *glfw.Window
	quad    *quad
	shader  *render.Shader
	texture uint32
	width   int
	height  int
	// scratch holds the full-frame RGB24 buffer kept up to date by pixel
	// updates, so a partially rendered frame can still be displayed.
	scratch []byte
}

// New creates a window of the given size, titled title. Call Close when
// done; Run or ApplyFrame must be called from the same goroutine New was
// called from, since GL contexts are not safe to migrate across threads.
func New(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("preview: init glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("preview: create window: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("preview: init gl: %w", err)
	}

	shader, err := render.NewShader(quadVertexShader, quadFragmentShader)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("preview: compile display shader: %w", err)
	}

	q := newQuad()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, int32(width), int32(height), 0, gl.RGB, gl.UNSIGNED_BYTE, nil)

	return &Window{
		win:     win,
		quad:    q,
		shader:  shader,
		texture: tex,
		width:   width,
		height:  height,
		scratch: make([]byte, width*height*3),
	}, nil
}

// Close releases the window's GL resources and terminates GLFW. Safe to
// call once, after the last ApplyFrame/Run call returns.
func (w *Window) Close() {
	if w.texture != 0 {
		gl.DeleteTextures(1, &w.texture)
	}
	w.quad.delete()
	w.shader.Delete()
	w.win.Destroy()
	glfw.Terminate()
}

// ShouldClose reports whether the user has asked to close the window.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// ApplyPixel patches a single pixel into the scratch buffer without
// uploading it to the GPU — callers batch many of these per Present to
// avoid a texture upload per pixel.
func (w *Window) ApplyPixel(x, y int, rgb [3]byte) {
	if x < 0 || x >= w.width || y < 0 || y >= w.height {
		return
	}
	offset := (y*w.width + x) * 3
	w.scratch[offset+0] = rgb[0]
	w.scratch[offset+1] = rgb[1]
	w.scratch[offset+2] = rgb[2]
}

// ApplyFrame replaces the scratch buffer wholesale with a freshly traced
// frame, used by video mode where each tick produces a complete image
// rather than a pixel stream.
func (w *Window) ApplyFrame(rgb24 []byte) {
	n := copy(w.scratch, rgb24)
	if n < len(w.scratch) {
		for i := n; i < len(w.scratch); i++ {
			w.scratch[i] = 0
		}
	}
}

// Present uploads the scratch buffer to the display texture and draws one
// frame: clear, draw the textured quad, swap, poll events. Must run on the
// window's owning goroutine.
func (w *Window) Present() {
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w.width), int32(w.height), gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(w.scratch))

	gl.Viewport(0, 0, int32(w.width), int32(w.height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	w.shader.Use()
	w.shader.SetInt("uFrame", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, w.texture)
	w.quad.draw()

	w.win.SwapBuffers()
	glfw.PollEvents()
}

// Run drives the display loop until the window is closed or stop is
// signaled, consuming FrameMessage values from frames and presenting after
// each one; once frames is closed it keeps presenting the last image on
// every loop. It runs on the goroutine that called New, alongside the
// render driver's worker pool — the frame channel is the only thing
// crossing between them.
func (w *Window) Run(frames <-chan render.FrameMessage, stop <-chan struct{}) {
	for !w.ShouldClose() {
		select {
		case <-stop:
			return
		case msg, ok := <-frames:
			if !ok {
				w.Present()
				continue
			}
			switch msg.Kind {
			case render.FrameKindPixel:
				w.ApplyPixel(msg.Pixel.X, msg.Pixel.Y, msg.Pixel.RGB)
			case render.FrameKindImage:
				w.ApplyFrame(msg.Image.Bytes)
			}
			w.Present()
		}
	}
}

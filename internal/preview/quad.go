package preview

import "github.com/go-gl/gl/v4.1-core/gl"

// quad is the two-triangle full-screen rectangle the frame texture is
// painted onto (vertex layout: clip-space xy followed by texture uv).
type quad struct {
	vao, vbo uint32
}

func newQuad() *quad {
	vertices := []float32{
		-1, -1, 0, 0,
		1, -1, 1, 0,
		1, 1, 1, 1,
		-1, -1, 0, 0,
		1, 1, 1, 1,
		-1, 1, 0, 1,
	}

	q := &quad{}
	gl.GenVertexArrays(1, &q.vao)
	gl.GenBuffers(1, &q.vbo)

	gl.BindVertexArray(q.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, q.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return q
}

func (q *quad) draw() {
	gl.BindVertexArray(q.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

func (q *quad) delete() {
	if q.vbo != 0 {
		gl.DeleteBuffers(1, &q.vbo)
	}
	if q.vao != 0 {
		gl.DeleteVertexArrays(1, &q.vao)
	}
}

const quadVertexShader = `
#version 410 core

layout(location = 0) in vec2 aPos;
layout(location = 1) in vec2 aTexCoord;

out vec2 vTexCoord;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    vTexCoord = aTexCoord;
}
` + "\x00"

// quadFragmentShader samples the traced frame directly. Unlike the
// teacher's debug quad, it runs no ray marching of its own — the pixels
// it displays were already produced by the CPU trace core.
const quadFragmentShader = `
#version 410 core

in vec2 vTexCoord;

uniform sampler2D uFrame;

out vec4 fragColor;

void main() {
    fragColor = vec4(texture(uFrame, vTexCoord).rgb, 1.0);
}
` + "\x00"

package postfx

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/showroom/internal/engine/shader"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec2 aPosition;
layout (location = 1) in vec2 aTexCoord;

out vec2 vTexCoord;

void main() {
    vTexCoord = aTexCoord;
    gl_Position = vec4(aPosition, 0.0, 1.0);
}
`

const fragmentShaderSource = `#version 410 core
in vec2 vTexCoord;

uniform sampler2D uScene;
uniform vec3 uFadeColor;
uniform float uStrength;
uniform float uRadius;
uniform float uSoftness;

out vec4 FragColor;

void main() {
    vec3 scene = texture(uScene, vTexCoord).rgb;
    float dist = length(vTexCoord * 2.0 - 1.0);
    float fade = smoothstep(uRadius, uRadius + uSoftness, dist) * uStrength;
    FragColor = vec4(mix(scene, uFadeColor, fade), 1.0);
}
`

// Vignette is the full-screen radial fade pass. It samples the scene color
// texture and blends toward the fade color by Params.Falloff of the
// fragment's distance from the screen center.
type Vignette struct {
	program     uint32
	locScene    int32
	locColor    int32
	locStrength int32
	locRadius   int32
	locSoftness int32

	vao uint32
	vbo uint32
}

// NewVignette compiles the pass. Requires a current OpenGL context.
func NewVignette() (*Vignette, error) {
	program, err := shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("vignette shader: %w", err)
	}

	v := &Vignette{
		program:     program,
		locScene:    shader.GetUniform(program, "uScene"),
		locColor:    shader.GetUniform(program, "uFadeColor"),
		locStrength: shader.GetUniform(program, "uStrength"),
		locRadius:   shader.GetUniform(program, "uRadius"),
		locSoftness: shader.GetUniform(program, "uSoftness"),
	}

	// One clip-space triangle covering the screen.
	vertices := []float32{
		// position   // texcoord
		-1, -1, 0, 0,
		3, -1, 2, 0,
		-1, 3, 0, 2,
	}

	gl.GenVertexArrays(1, &v.vao)
	gl.BindVertexArray(v.vao)

	gl.GenBuffers(1, &v.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, nil)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, unsafe.Pointer(uintptr(2*4)))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return v, nil
}

// Draw composites the scene texture to the current render target with the
// vignette applied.
func (v *Vignette) Draw(sceneTexture uint32, p Params) {
	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	gl.UseProgram(v.program)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, sceneTexture)
	gl.Uniform1i(v.locScene, 0)

	gl.Uniform3f(v.locColor, float32(p.FadeColor[0]), float32(p.FadeColor[1]), float32(p.FadeColor[2]))
	gl.Uniform1f(v.locStrength, float32(p.Strength))
	gl.Uniform1f(v.locRadius, float32(p.Radius))
	gl.Uniform1f(v.locSoftness, float32(p.Softness))

	gl.BindVertexArray(v.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.BindVertexArray(0)
}

// Destroy releases GL resources.
func (v *Vignette) Destroy() {
	if v.vao != 0 {
		gl.DeleteVertexArrays(1, &v.vao)
		v.vao = 0
	}
	if v.vbo != 0 {
		gl.DeleteBuffers(1, &v.vbo)
		v.vbo = 0
	}
	if v.program != 0 {
		gl.DeleteProgram(v.program)
		v.program = 0
	}
}

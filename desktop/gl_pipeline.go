package desktop

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glPipeline holds the two shader programs and the two dynamic-vertex-buffer
// quads the renderer draws through: one untextured program for solid-color
// background runs, one textured program for glyph runs sampled from the
// font atlas. Both are the same minimal ortho-projected 2D quad shaders the
// teacher renderer used for its own colored-rect and glyph draws; nothing
// beyond a flat color or a single-channel alpha texture lookup runs in
// either fragment shader (no lighting, no post effects, no animation
// uniforms), which is the cheapest way to drive OpenGL 2D draw calls
// without growing an actual shader pipeline.
type glPipeline struct {
	quadProgram uint32
	quadColorLoc, quadProjLoc int32
	quadVAO, quadVBO uint32

	textProgram uint32
	textColorLoc, textProjLoc, textSamplerLoc int32
	textVAO, textVBO uint32
}

func newGLPipeline() (*glPipeline, error) {
	p := &glPipeline{}

	quadVert := `
		#version 410 core
		layout (location = 0) in vec2 aPos;
		uniform mat4 projection;
		void main() {
			gl_Position = projection * vec4(aPos, 0.0, 1.0);
		}
	` + "\x00"
	quadFrag := `
		#version 410 core
		out vec4 FragColor;
		uniform vec4 color;
		void main() {
			FragColor = color;
		}
	` + "\x00"

	var err error
	p.quadProgram, err = createProgram(quadVert, quadFrag)
	if err != nil {
		return nil, fmt.Errorf("creating background quad program: %w", err)
	}
	p.quadColorLoc = gl.GetUniformLocation(p.quadProgram, gl.Str("color\x00"))
	p.quadProjLoc = gl.GetUniformLocation(p.quadProgram, gl.Str("projection\x00"))

	textVert := `
		#version 410 core
		layout (location = 0) in vec4 vertex;
		out vec2 TexCoords;
		uniform mat4 projection;
		void main() {
			gl_Position = projection * vec4(vertex.xy, 0.0, 1.0);
			TexCoords = vertex.zw;
		}
	` + "\x00"
	textFrag := `
		#version 410 core
		in vec2 TexCoords;
		out vec4 FragColor;
		uniform sampler2D glyphs;
		uniform vec4 textColor;
		void main() {
			float alpha = texture(glyphs, TexCoords).r;
			FragColor = vec4(textColor.rgb, textColor.a * alpha);
		}
	` + "\x00"

	p.textProgram, err = createProgram(textVert, textFrag)
	if err != nil {
		return nil, fmt.Errorf("creating text run program: %w", err)
	}
	p.textColorLoc = gl.GetUniformLocation(p.textProgram, gl.Str("textColor\x00"))
	p.textProjLoc = gl.GetUniformLocation(p.textProgram, gl.Str("projection\x00"))
	p.textSamplerLoc = gl.GetUniformLocation(p.textProgram, gl.Str("glyphs\x00"))

	gl.GenVertexArrays(1, &p.quadVAO)
	gl.GenBuffers(1, &p.quadVBO)
	gl.BindVertexArray(p.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 6*2*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.GenVertexArrays(1, &p.textVAO)
	gl.GenBuffers(1, &p.textVBO)
	gl.BindVertexArray(p.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.textVBO)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, 4*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return p, nil
}

func (p *glPipeline) destroy() {
	gl.DeleteVertexArrays(1, &p.quadVAO)
	gl.DeleteBuffers(1, &p.quadVBO)
	gl.DeleteVertexArrays(1, &p.textVAO)
	gl.DeleteBuffers(1, &p.textVBO)
	gl.DeleteProgram(p.quadProgram)
	gl.DeleteProgram(p.textProgram)
}

// drawQuad draws one filled rectangle in pixel space using the solid-color
// program; x1,y1,x2,y2 are already in the flipped pixel coordinate system
// the renderer computes per spec.md's coordinate-flip rule.
func (p *glPipeline) drawQuad(proj [16]float32, x1, y1, x2, y2 float32, rgba [4]float32) {
	verts := [12]float32{
		x1, y1, x2, y1, x1, y2,
		x1, y2, x2, y1, x2, y2,
	}
	gl.UseProgram(p.quadProgram)
	gl.UniformMatrix4fv(p.quadProjLoc, 1, false, &proj[0])
	gl.Uniform4f(p.quadColorLoc, rgba[0], rgba[1], rgba[2], rgba[3])
	gl.BindVertexArray(p.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.quadVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(&verts[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

// drawGlyphQuad draws one textured quad sampling the given atlas texture at
// the given normalized UV rect, tinted by rgba.
func (p *glPipeline) drawGlyphQuad(proj [16]float32, tex uint32, x1, y1, x2, y2, u1, v1, u2, v2 float32, rgba [4]float32) {
	verts := [24]float32{
		x1, y1, u1, v1,
		x2, y1, u2, v1,
		x1, y2, u1, v2,
		x1, y2, u1, v2,
		x2, y1, u2, v1,
		x2, y2, u2, v2,
	}
	gl.UseProgram(p.textProgram)
	gl.UniformMatrix4fv(p.textProjLoc, 1, false, &proj[0])
	gl.Uniform4f(p.textColorLoc, rgba[0], rgba[1], rgba[2], rgba[3])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Uniform1i(p.textSamplerLoc, 0)
	gl.BindVertexArray(p.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.textVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(&verts[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func orthoMatrix(left, right, bottom, top, near, far float32) [16]float32 {
	return [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, -2 / (far - near), 0,
		-(right + left) / (right - left), -(top + bottom) / (top - bottom), -(far + near) / (far - near), 1,
	}
}

func createProgram(vertexSource, fragmentSource string) (uint32, error) {
	vs, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("linking program: %v", log)
	}
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("compiling shader: %v", log)
	}
	return shader, nil
}

package mesh

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/spinlight/internal/logger"
)

// GPUMesh is a mesh resident in a vertex buffer, described by a VAO.
type GPUMesh struct {
	Name     string
	VAO      uint32
	VBO      uint32
	Vertices int32
	Layout   Layout
}

// Upload copies the mesh into a static vertex buffer and records the
// attribute layout in a new VAO. A GL context must be current.
func Upload(m *Mesh, layout Layout) (*GPUMesh, error) {
	data, err := m.VertexData(layout)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("mesh %s: empty", m.Name)
	}

	g := &GPUMesh{
		Name:     m.Name,
		Vertices: int32(m.VertexCount()),
		Layout:   layout,
	}

	gl.GenVertexArrays(1, &g.VAO)
	gl.BindVertexArray(g.VAO)

	gl.GenBuffers(1, &g.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	stride := layout.Stride()

	// 0: vertex position (x, y, z)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// 1: vertex normal (x, y, z)
	if layout == LayoutPositionNormal {
		gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(3*floatSize)))
		gl.EnableVertexAttribArray(1)
	}

	// The VAO keeps the buffer binding recorded by VertexAttribPointer.
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.String("mesh", g.Name),
		zap.Stringer("layout", layout),
		zap.Int32("vertices", g.Vertices),
		zap.Uint32("vao", g.VAO),
		zap.Uint32("vbo", g.VBO),
	)
	return g, nil
}

// Draw issues one non-indexed triangle draw for the whole mesh.
func (g *GPUMesh) Draw() {
	gl.BindVertexArray(g.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, g.Vertices)
	gl.BindVertexArray(0)
}

// Delete releases the VAO and VBO.
func (g *GPUMesh) Delete() {
	if g.VAO != 0 {
		gl.DeleteVertexArrays(1, &g.VAO)
		g.VAO = 0
	}
	if g.VBO != 0 {
		gl.DeleteBuffers(1, &g.VBO)
		g.VBO = 0
	}
}

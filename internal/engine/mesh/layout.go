package mesh

import "fmt"

// Layout selects the vertex attributes uploaded for a mesh.
type Layout int

const (
	// LayoutPosition uploads positions only (attribute 0).
	LayoutPosition Layout = iota
	// LayoutPositionNormal interleaves position (attribute 0) and normal
	// (attribute 1).
	LayoutPositionNormal
)

const floatSize = 4

// Components returns the number of floats per vertex.
func (l Layout) Components() int {
	if l == LayoutPositionNormal {
		return 6
	}
	return 3
}

// Stride returns the byte stride between vertices.
func (l Layout) Stride() int32 {
	return int32(l.Components() * floatSize)
}

func (l Layout) String() string {
	switch l {
	case LayoutPosition:
		return "position"
	case LayoutPositionNormal:
		return "position+normal"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// Interleave packs positions and normals as [px py pz nx ny nz ...].
func Interleave(positions, normals []float32) ([]float32, error) {
	if len(positions) != len(normals) {
		return nil, fmt.Errorf("interleave: %d positions vs %d normals", len(positions), len(normals))
	}
	if len(positions)%3 != 0 {
		return nil, fmt.Errorf("interleave: %d floats is not a whole number of vertices", len(positions))
	}

	out := make([]float32, 0, len(positions)*2)
	for i := 0; i < len(positions); i += 3 {
		out = append(out, positions[i:i+3]...)
		out = append(out, normals[i:i+3]...)
	}
	return out, nil
}

// VertexData returns the buffer contents for the layout.
func (m *Mesh) VertexData(l Layout) ([]float32, error) {
	switch l {
	case LayoutPosition:
		return m.Positions, nil
	case LayoutPositionNormal:
		if !m.HasNormals() {
			return nil, fmt.Errorf("mesh %s: no normals for %s layout", m.Name, l)
		}
		return Interleave(m.Positions, m.Normals)
	default:
		return nil, fmt.Errorf("mesh %s: unknown layout %s", m.Name, l)
	}
}

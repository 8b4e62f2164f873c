// Package mesh describes triangle meshes, computes their flat normals and
// uploads them to the GPU.
package mesh

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Loader reads raw asset bytes by path.
type Loader interface {
	Load(name string) ([]byte, error)
}

// Mesh is a non-indexed triangle list: every three vertices form a triangle.
type Mesh struct {
	Name      string
	Positions []float32 // x, y, z per vertex
	Normals   []float32 // same length as Positions once computed
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// HasNormals reports whether per-vertex normals are present.
func (m *Mesh) HasNormals() bool {
	return len(m.Normals) > 0 && len(m.Normals) == len(m.Positions)
}

// ComputeNormals fills Normals with flat per-triangle normals.
func (m *Mesh) ComputeNormals() error {
	normals, err := FlatNormals(m.Positions)
	if err != nil {
		return fmt.Errorf("mesh %s: %w", m.Name, err)
	}
	m.Normals = normals
	return nil
}

type meshFile struct {
	Name      string        `yaml:"name"`
	Triangles [][][]float32 `yaml:"triangles"`
}

// Parse decodes a YAML mesh description.
func Parse(data []byte) (*Mesh, error) {
	var f meshFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding mesh: %w", err)
	}
	if len(f.Triangles) == 0 {
		return nil, fmt.Errorf("mesh %q: no triangles", f.Name)
	}

	m := &Mesh{
		Name:      f.Name,
		Positions: make([]float32, 0, len(f.Triangles)*9),
	}
	for ti, tri := range f.Triangles {
		if len(tri) != 3 {
			return nil, fmt.Errorf("mesh %q: triangle %d has %d vertices", f.Name, ti, len(tri))
		}
		for vi, v := range tri {
			if len(v) != 3 {
				return nil, fmt.Errorf("mesh %q: triangle %d vertex %d has %d components", f.Name, ti, vi, len(v))
			}
			m.Positions = append(m.Positions, v...)
		}
	}
	return m, nil
}

// Load reads meshes/<name>.yaml through the loader and computes its normals.
func Load(l Loader, name string) (*Mesh, error) {
	data, err := l.Load("meshes/" + name + ".yaml")
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if m.Name == "" {
		m.Name = name
	}
	if err := m.ComputeNormals(); err != nil {
		return nil, err
	}
	return m, nil
}

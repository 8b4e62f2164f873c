package renderer

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/spinlight/internal/engine/mesh"
	"github.com/Faultbox/spinlight/internal/engine/scene"
	"github.com/Faultbox/spinlight/internal/engine/shader"
	"github.com/Faultbox/spinlight/internal/logger"
)

// Loader reads named assets such as "shaders/x_vs.glsl" or "meshes/cube.yaml".
type Loader interface {
	Load(name string) ([]byte, error)
}

// Resources is the CPU side of a scene: shader text and meshes with normals.
type Resources struct {
	Shader shader.Sources
	Meshes map[string]*mesh.Mesh
}

// LoadResources reads everything a scene needs before any GL call is made.
// An empty shaderName selects the scene's default shader pair.
func LoadResources(l Loader, sc *scene.Scene, shaderName string) (*Resources, error) {
	if shaderName == "" {
		shaderName = sc.ShaderName
	}
	src, err := shader.LoadSources(l, shaderName)
	if err != nil {
		return nil, err
	}

	res := &Resources{
		Shader: src,
		Meshes: make(map[string]*mesh.Mesh),
	}
	for _, o := range sc.Objects {
		if _, ok := res.Meshes[o.Mesh]; ok {
			continue
		}
		m, err := mesh.Load(l, o.Mesh)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", sc.Name, err)
		}
		res.Meshes[o.Mesh] = m
		logger.Debug("mesh loaded",
			zap.String("mesh", m.Name),
			zap.Int("vertices", m.VertexCount()),
		)
	}
	return res, nil
}

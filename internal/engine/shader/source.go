package shader

import "fmt"

// Loader reads raw asset bytes by path.
type Loader interface {
	Load(name string) ([]byte, error)
}

// Sources is a vertex/fragment source pair.
type Sources struct {
	Name     string
	Vertex   string
	Fragment string
}

// FileNames returns the conventional file names of a shader pair.
func FileNames(name string) (vertex, fragment string) {
	return name + "_vs.glsl", name + "_fs.glsl"
}

// LoadSources reads shaders/<name>_vs.glsl and shaders/<name>_fs.glsl.
func LoadSources(l Loader, name string) (Sources, error) {
	vsName, fsName := FileNames(name)

	vs, err := l.Load("shaders/" + vsName)
	if err != nil {
		return Sources{}, fmt.Errorf("vertex shader source: %w", err)
	}
	fs, err := l.Load("shaders/" + fsName)
	if err != nil {
		return Sources{}, fmt.Errorf("fragment shader source: %w", err)
	}

	return Sources{Name: name, Vertex: string(vs), Fragment: string(fs)}, nil
}

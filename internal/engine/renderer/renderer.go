// Package renderer owns the OpenGL state: the linked program, the uploaded
// meshes and the viewport. It draws one scene frame per call.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/spinlight/internal/config"
	"github.com/Faultbox/spinlight/internal/engine/camera"
	"github.com/Faultbox/spinlight/internal/engine/mesh"
	"github.com/Faultbox/spinlight/internal/engine/scene"
	"github.com/Faultbox/spinlight/internal/engine/shader"
	"github.com/Faultbox/spinlight/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width         int
	Height        int
	ClearColor    [3]float32
	Projection    camera.Projection
	CheckGLErrors bool
}

// FromConfig builds the renderer settings for an initial framebuffer size.
func FromConfig(c config.RenderConfig, width, height int) Config {
	return Config{
		Width:      width,
		Height:     height,
		ClearColor: c.ClearColor,
		Projection: camera.Projection{
			FOVDegrees: c.FOVDegrees,
			Near:       c.Near,
			Far:        c.Far,
		},
		CheckGLErrors: c.CheckGLErrors,
	}
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	scene  *scene.Scene

	program *shader.Program
	uploads map[string]*mesh.GPUMesh
	objects []*mesh.GPUMesh // parallel to scene.Objects
}

// New initializes GL, builds the program and uploads the meshes.
// A GL context must be current.
func New(cfg Config, sc *scene.Scene, res *Resources) (*Renderer, error) {
	r := &Renderer{
		config:  cfg,
		scene:   sc,
		uploads: make(map[string]*mesh.GPUMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	logInfo()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], 1.0)

	program, err := shader.Build(shader.GL{}, res.Shader.Vertex, res.Shader.Fragment)
	if err != nil {
		return nil, fmt.Errorf("shader %s: %w", res.Shader.Name, err)
	}
	r.program = program
	r.program.Resolve(sc.UniformNames()...)
	if missing := r.program.Unresolved(); len(missing) > 0 {
		// The GLSL compiler drops uniforms that do not affect output.
		logger.Warn("uniforms not active in program",
			zap.String("shader", res.Shader.Name),
			zap.Strings("uniforms", missing),
		)
	}

	for _, o := range sc.Objects {
		g, ok := r.uploads[o.Mesh]
		if !ok {
			m, found := res.Meshes[o.Mesh]
			if !found {
				r.Close()
				return nil, fmt.Errorf("mesh %s not loaded", o.Mesh)
			}
			g, err = mesh.Upload(m, mesh.LayoutPositionNormal)
			if err != nil {
				r.Close()
				return nil, fmt.Errorf("uploading mesh %s: %w", o.Mesh, err)
			}
			r.uploads[o.Mesh] = g
		}
		r.objects = append(r.objects, g)
	}

	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))
	logger.Sugar.Infof("Starting viewport: (%d, %d)", cfg.Width, cfg.Height)
	r.checkErrors("setup")

	return r, nil
}

func logInfo() {
	logger.Sugar.Infof("Vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Sugar.Infof("Renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Sugar.Infof("OpenGL version supported %s", gl.GoStr(gl.GetString(gl.VERSION)))
	logger.Sugar.Infof("GLSL version supported %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	for name, g := range r.uploads {
		g.Delete()
		delete(r.uploads, name)
	}
	r.objects = nil
	if r.program != nil {
		r.program.Delete()
		r.program = nil
	}
}

// Resize sets the viewport to the new framebuffer size.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Sugar.Infof("New viewport: (%d, %d)", width, height)
}

// Draw renders the scene at time t seconds.
func (r *Renderer) Draw(t float64) error {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	f := r.scene.Frame(t, r.config.Projection, r.config.Width, r.config.Height)

	r.program.Use()
	if err := r.scene.ApplyShared(r.program, f); err != nil {
		return err
	}
	for i, g := range r.objects {
		scene.ApplyObject(r.program, f.Objects[i])
		g.Draw()
	}

	r.checkErrors("frame")
	return nil
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	if w <= 0 || h <= 0 {
		return nil, 0, 0
	}
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

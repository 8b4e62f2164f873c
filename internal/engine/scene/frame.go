package scene

import (
	"github.com/Faultbox/spinlight/internal/engine/camera"
	"github.com/Faultbox/spinlight/internal/engine/lighting"
	"github.com/Faultbox/spinlight/pkg/math"
)

// Uniforms is the shader program surface a frame is pushed through.
type Uniforms interface {
	lighting.UniformSetter
	SetMat4(name string, m math.Mat4)
	SetMat3(name string, m math.Mat3)
}

// Transform is a model matrix together with its normal matrix. Build it
// with NewTransform so the two never disagree.
type Transform struct {
	model  math.Mat4
	normal math.Mat3
}

// NewTransform derives the normal matrix from the model matrix.
func NewTransform(model math.Mat4) Transform {
	return Transform{model: model, normal: math.NormalMatrix(model)}
}

// Model returns the model matrix.
func (tr Transform) Model() math.Mat4 { return tr.model }

// Normal returns the inverse-transpose of the model's upper 3x3.
func (tr Transform) Normal() math.Mat3 { return tr.normal }

// Frame is the transform state of one rendered frame.
type Frame struct {
	Time       float64
	Width      int
	Height     int
	View       math.Mat4
	Projection math.Mat4
	ViewPos    math.Vec3
	Objects    []Transform // parallel to Scene.Objects
}

// Frame computes the transforms at time t for a viewport.
func (s *Scene) Frame(t float64, proj camera.Projection, width, height int) Frame {
	f := Frame{
		Time:       t,
		Width:      width,
		Height:     height,
		View:       s.View.Matrix(t),
		Projection: proj.Matrix(width, height),
		ViewPos:    s.View.Position(t),
		Objects:    make([]Transform, len(s.Objects)),
	}
	for i, o := range s.Objects {
		f.Objects[i] = NewTransform(o.ModelMatrix(t))
	}
	return f
}

// ApplyShared pushes the per-frame uniforms: view, projection, view_pos,
// lights and material.
func (s *Scene) ApplyShared(u Uniforms, f Frame) error {
	u.SetMat4("view", f.View)
	u.SetMat4("projection", f.Projection)
	u.SetVec3("view_pos", f.ViewPos)
	if err := lighting.ApplyLights(u, s.Lights); err != nil {
		return err
	}
	s.Material.Apply(u)
	return nil
}

// ApplyObject pushes model and normal_matrix for one object.
func ApplyObject(u Uniforms, tr Transform) {
	u.SetMat4("model", tr.Model())
	u.SetMat3("normal_matrix", tr.Normal())
}

// UniformNames lists every uniform the scene sets.
func (s *Scene) UniformNames() []string {
	names := []string{"model", "view", "projection", "normal_matrix", "view_pos"}
	return append(names, lighting.UniformNames(len(s.Lights))...)
}

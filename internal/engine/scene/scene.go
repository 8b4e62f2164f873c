// Package scene describes what is drawn: meshes with their animation, the
// camera, the lights and the material. It turns a point in time into the
// matrices and uniforms for one frame.
package scene

import (
	"fmt"

	"github.com/Faultbox/spinlight/internal/engine/camera"
	"github.com/Faultbox/spinlight/internal/engine/lighting"
	"github.com/Faultbox/spinlight/pkg/math"
)

// Builtin scene names.
const (
	NameCube        = "cube"
	NamePyramidCube = "pyramid_cube"
)

// Rotation spins an object about a fixed axis at a constant rate.
type Rotation struct {
	Axis     math.Vec3
	SpeedDeg float32 // degrees per second
}

// Object is one mesh placed in the scene.
type Object struct {
	Mesh        string // asset name under meshes/
	Translation math.Vec3
	Rotations   []Rotation // applied right to left, like nested glm::rotate calls
}

// ModelMatrix returns translate * rot[0](t) * rot[1](t) * ... at time t.
func (o Object) ModelMatrix(t float64) math.Mat4 {
	m := math.Translate(o.Translation.X, o.Translation.Y, o.Translation.Z)
	for _, r := range o.Rotations {
		angle := math.Radians(float32(t) * r.SpeedDeg)
		m = m.Mul(math.RotateAxis(r.Axis, angle))
	}
	return m
}

// Scene is an immutable description of a demo variant.
type Scene struct {
	Name       string
	ShaderName string
	Objects    []Object
	Lights     []lighting.Light
	Material   lighting.Material
	View       camera.View
}

// Validate checks the scene against what the shaders support.
func (s *Scene) Validate() error {
	if len(s.Objects) == 0 {
		return fmt.Errorf("scene %s: no objects", s.Name)
	}
	if len(s.Lights) > lighting.MaxLights {
		return fmt.Errorf("scene %s: %d lights, at most %d", s.Name, len(s.Lights), lighting.MaxLights)
	}
	if err := s.Material.Validate(); err != nil {
		return fmt.Errorf("scene %s: %w", s.Name, err)
	}
	if s.View == nil {
		return fmt.Errorf("scene %s: no view", s.Name)
	}
	return nil
}

// ByName returns a fresh copy of a builtin scene.
func ByName(name string) (*Scene, error) {
	switch name {
	case NameCube:
		return Cube(), nil
	case NamePyramidCube:
		return PyramidCube(), nil
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
}

var (
	axisX = math.Vec3{X: 1}
	axisY = math.Vec3{Y: 1}
	white = math.Vec3{X: 1, Y: 1, Z: 1}
)

func gray(v float32) math.Vec3 {
	return math.Vec3{X: v, Y: v, Z: v}
}

// coral is the material shared by both variants.
func coral() lighting.Material {
	return lighting.Material{
		Ambient:   math.Vec3{X: 1, Y: 0.5, Z: 0.31},
		Diffuse:   math.Vec3{X: 1, Y: 0.5, Z: 0.31},
		Specular:  gray(0.5),
		Shininess: 32,
	}
}

func keyLight() lighting.Light {
	return lighting.Light{
		Position: math.Vec3{X: 1.2, Y: 1, Z: 2},
		Ambient:  gray(0.2),
		Diffuse:  gray(0.5),
		Specular: white,
	}
}

// Cube is the single spinning cube lit by one light, seen through the
// fixed "moving cube" framing.
func Cube() *Scene {
	return &Scene{
		Name:       NameCube,
		ShaderName: "spinningcube_withlight",
		Objects: []Object{{
			Mesh: "cube",
			Rotations: []Rotation{
				{Axis: axisY, SpeedDeg: 45},
				{Axis: axisX, SpeedDeg: 20},
			},
		}},
		Lights:   []lighting.Light{keyLight()},
		Material: coral(),
		View: camera.FixedView{
			Offset:   math.Vec3{Z: -2},
			YawDeg:   45,
			PitchDeg: 45,
		},
	}
}

// PyramidCube is a pyramid at the origin and a cube orbiting beside it,
// lit by two lights and watched by a camera circling the origin.
func PyramidCube() *Scene {
	return &Scene{
		Name:       NamePyramidCube,
		ShaderName: "spinningpyramidcube_twolights",
		Objects: []Object{
			{
				Mesh: "pyramid",
				Rotations: []Rotation{
					{Axis: axisY, SpeedDeg: 45},
				},
			},
			{
				Mesh:        "cube",
				Translation: math.Vec3{X: 0.75},
				Rotations: []Rotation{
					{Axis: axisY, SpeedDeg: -30},
					{Axis: axisX, SpeedDeg: 20},
				},
			},
		},
		Lights: []lighting.Light{
			keyLight(),
			{
				Position: math.Vec3{X: -1.2, Y: -0.5, Z: 1.5},
				Ambient:  gray(0.05),
				Diffuse:  math.Vec3{X: 0.2, Y: 0.2, Z: 0.6},
				Specular: gray(0.5),
			},
		},
		Material: coral(),
		View: camera.OrbitView{
			Distance:    3,
			YawSpeedDeg: 10,
		},
	}
}

// Package lighting holds the Phong light and material descriptors and
// pushes them to shader uniforms.
package lighting

import (
	"fmt"

	"github.com/Faultbox/spinlight/pkg/math"
)

// MaxLights is the number of point lights the shaders declare.
const MaxLights = 2

// UniformSetter is the subset of a shader program used to push lighting.
type UniformSetter interface {
	SetVec3(name string, v math.Vec3)
	SetFloat(name string, v float32)
}

// Light is a point light with Phong color terms.
type Light struct {
	Position math.Vec3
	Ambient  math.Vec3
	Diffuse  math.Vec3
	Specular math.Vec3
}

// Material describes how a surface reflects each Phong term.
type Material struct {
	Ambient   math.Vec3
	Diffuse   math.Vec3
	Specular  math.Vec3
	Shininess float32 // specular exponent, must be positive
}

// Validate checks the shininess exponent.
func (m Material) Validate() error {
	if m.Shininess <= 0 {
		return fmt.Errorf("material shininess %v must be positive", m.Shininess)
	}
	return nil
}

// Apply sets material.ambient, material.diffuse, material.specular and
// material.shininess.
func (m Material) Apply(u UniformSetter) {
	u.SetVec3("material.ambient", m.Ambient)
	u.SetVec3("material.diffuse", m.Diffuse)
	u.SetVec3("material.specular", m.Specular)
	u.SetFloat("material.shininess", m.Shininess)
}

// Apply sets <prefix>.position, .ambient, .diffuse and .specular.
func (l Light) Apply(u UniformSetter, prefix string) {
	u.SetVec3(prefix+".position", l.Position)
	u.SetVec3(prefix+".ambient", l.Ambient)
	u.SetVec3(prefix+".diffuse", l.Diffuse)
	u.SetVec3(prefix+".specular", l.Specular)
}

// Prefix returns the uniform struct name of the i-th light: light, light2, ...
func Prefix(i int) string {
	if i == 0 {
		return "light"
	}
	return fmt.Sprintf("light%d", i+1)
}

// ApplyLights pushes every light under its Prefix.
func ApplyLights(u UniformSetter, lights []Light) error {
	if len(lights) > MaxLights {
		return fmt.Errorf("%d lights, shaders support %d", len(lights), MaxLights)
	}
	for i, l := range lights {
		l.Apply(u, Prefix(i))
	}
	return nil
}

// UniformNames lists the uniforms read by Material.Apply and ApplyLights
// for n lights, for resolving locations up front.
func UniformNames(n int) []string {
	names := []string{
		"material.ambient",
		"material.diffuse",
		"material.specular",
		"material.shininess",
	}
	for i := 0; i < n; i++ {
		p := Prefix(i)
		names = append(names, p+".position", p+".ambient", p+".diffuse", p+".specular")
	}
	return names
}

// Package camera provides the view and projection transforms.
package camera

import (
	gomath "math"

	"github.com/Faultbox/spinlight/pkg/math"
)

// View yields the view matrix and eye position at an animation time in seconds.
type View interface {
	Matrix(t float64) math.Mat4
	Position(t float64) math.Vec3
}

// FixedView frames the scene by moving the world rather than the eye:
// translate(Offset) * rotY(Yaw) * rotX(Pitch).
type FixedView struct {
	Offset   math.Vec3
	YawDeg   float32
	PitchDeg float32

	// Eye is the position reported to the lighting stage.
	Eye math.Vec3
}

// Matrix returns the view matrix. It does not depend on t.
func (v FixedView) Matrix(float64) math.Mat4 {
	return math.Translate(v.Offset.X, v.Offset.Y, v.Offset.Z).
		Mul(math.RotateY(math.Radians(v.YawDeg))).
		Mul(math.RotateX(math.Radians(v.PitchDeg)))
}

// Position returns the configured eye position.
func (v FixedView) Position(float64) math.Vec3 {
	return v.Eye
}

// OrbitView looks at Center from a point on a sphere, optionally circling
// around the Y axis over time.
type OrbitView struct {
	Center math.Vec3

	Distance    float32
	Pitch       float32 // radians above the XZ plane
	Yaw         float32 // radians around Y at t = 0
	YawSpeedDeg float32 // degrees per second, 0 for a static camera
}

// Position returns the eye position at time t.
func (c OrbitView) Position(t float64) math.Vec3 {
	yaw := float64(c.Yaw) + t*float64(math.Radians(c.YawSpeedDeg))
	pitch := float64(c.Pitch)

	x := c.Distance * float32(gomath.Cos(pitch)*gomath.Sin(yaw))
	y := c.Distance * float32(gomath.Sin(pitch))
	z := c.Distance * float32(gomath.Cos(pitch)*gomath.Cos(yaw))

	return c.Center.Add(math.Vec3{X: x, Y: y, Z: z})
}

// Matrix returns the look-at view matrix at time t.
func (c OrbitView) Matrix(t float64) math.Mat4 {
	return math.LookAt(c.Position(t), c.Center, math.Vec3{Y: 1})
}

// Projection holds perspective parameters.
type Projection struct {
	FOVDegrees float32
	Near       float32
	Far        float32
}

// Aspect returns width/height, or 1 when the height is not positive
// (minimized windows report 0x0).
func Aspect(width, height int) float32 {
	if width <= 0 || height <= 0 {
		return 1
	}
	return float32(width) / float32(height)
}

// Matrix returns the perspective matrix for a viewport.
func (p Projection) Matrix(width, height int) math.Mat4 {
	return math.Perspective(math.Radians(p.FOVDegrees), Aspect(width, height), p.Near, p.Far)
}

package mesh

import (
	"errors"
	"fmt"

	"github.com/Faultbox/spinlight/pkg/math"
)

// ErrNotTriangles is returned when a position list does not hold whole
// triangles (a multiple of 9 floats).
var ErrNotTriangles = errors.New("positions are not a whole number of triangles")

// FlatNormals returns one normal per vertex where all three vertices of a
// triangle share the face normal (v2-v1) × (v3-v1).
//
// Normals are not normalized; the fragment stage renormalizes after
// interpolation.
func FlatNormals(positions []float32) ([]float32, error) {
	if len(positions)%9 != 0 {
		return nil, fmt.Errorf("%w: got %d floats", ErrNotTriangles, len(positions))
	}

	normals := make([]float32, len(positions))
	for i := 0; i < len(positions); i += 9 {
		v1 := math.Vec3{X: positions[i], Y: positions[i+1], Z: positions[i+2]}
		v2 := math.Vec3{X: positions[i+3], Y: positions[i+4], Z: positions[i+5]}
		v3 := math.Vec3{X: positions[i+6], Y: positions[i+7], Z: positions[i+8]}

		n := FaceNormal(v1, v2, v3)
		for k := 0; k < 3; k++ {
			normals[i+k*3] = n.X
			normals[i+k*3+1] = n.Y
			normals[i+k*3+2] = n.Z
		}
	}
	return normals, nil
}

// FaceNormal returns the unnormalized normal of triangle (v1, v2, v3).
// Collinear vertices give the zero vector.
func FaceNormal(v1, v2, v3 math.Vec3) math.Vec3 {
	return v2.Sub(v1).Cross(v3.Sub(v1))
}

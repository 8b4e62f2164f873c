package math

// Mat3 is a 3x3 matrix in column-major order.
type Mat3 [9]float32

// Identity3 returns the 3x3 identity.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// At returns the element at row, col.
func (m Mat3) At(row, col int) float32 {
	return m[col*3+row]
}

// Transpose swaps rows and columns.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Det returns the determinant.
func (m Mat3) Det() float32 {
	a, b, c := m[0], m[3], m[6]
	d, e, f := m[1], m[4], m[7]
	g, h, i := m[2], m[5], m[8]
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// Inverse returns the inverse of the matrix.
// Returns identity if the matrix is singular.
func (m Mat3) Inverse() Mat3 {
	a, b, c := m[0], m[3], m[6]
	d, e, f := m[1], m[4], m[7]
	g, h, i := m[2], m[5], m[8]

	det := a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
	if det == 0 {
		return Identity3()
	}
	inv := 1 / det

	// Written column by column.
	return Mat3{
		(e*i - f*h) * inv, -(d*i - f*g) * inv, (d*h - e*g) * inv,
		-(b*i - c*h) * inv, (a*i - c*g) * inv, -(a*h - b*g) * inv,
		(b*f - c*e) * inv, -(a*f - c*d) * inv, (a*e - b*d) * inv,
	}
}

// MulVec3 returns m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat3) Ptr() *float32 {
	return &m[0]
}

// NormalMatrix returns the inverse-transpose of the model matrix's upper
// 3x3 block. It maps local normals to world space and stays correct under
// non-uniform scale.
func NormalMatrix(model Mat4) Mat3 {
	return model.Mat3().Inverse().Transpose()
}

package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNormalMatrixIdentity(t *testing.T) {
	if got := NormalMatrix(Identity()); got != Identity3() {
		t.Errorf("NormalMatrix(I) = %v, want identity", got)
	}
}

func TestNormalMatrixIgnoresTranslation(t *testing.T) {
	if got := NormalMatrix(Translate(4, -2, 9)); got != Identity3() {
		t.Errorf("NormalMatrix(T) = %v, want identity", got)
	}
}

func TestNormalMatrixRotationIsRotation(t *testing.T) {
	model := RotateY(0.4).Mul(RotateX(1.1))
	got := NormalMatrix(model)
	want := model.Mat3()
	for i := range got {
		if abs(got[i]-want[i]) > 1e-5 {
			t.Fatalf("element %d = %f, want %f", i, got[i], want[i])
		}
	}
}

func TestNormalMatrixNonUniformScale(t *testing.T) {
	model := RotateY(0.3).Mul(Scale(2, 1, 0.5))
	got := NormalMatrix(model)
	want := mgl32.HomogRotate3DY(0.3).Mul4(mgl32.Scale3D(2, 1, 0.5)).Mat3().Inv().Transpose()
	for i := range got {
		if abs(got[i]-want[i]) > 1e-5 {
			t.Fatalf("element %d = %f, want %f", i, got[i], want[i])
		}
	}

	// A transformed normal stays perpendicular to a transformed tangent.
	n := Vec3{1, 1, 0}
	tangent := Vec3{1, -1, 0}
	nw := got.MulVec3(n)
	tw := model.Mat3().MulVec3(tangent)
	if d := nw.Dot(tw); abs(d) > 1e-5 {
		t.Errorf("normal not perpendicular after transform: dot = %f", d)
	}
}

func TestMat3InverseSingular(t *testing.T) {
	var zero Mat3
	if zero.Det() != 0 {
		t.Fatal("zero matrix should have zero determinant")
	}
	if zero.Inverse() != Identity3() {
		t.Error("singular inverse should fall back to identity")
	}
}

func TestMat3Inverse(t *testing.T) {
	m := Mat3{2, 0, 1, 1, 3, 0, 0, 1, 4}
	prod := mulMat3(m, m.Inverse())
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			want := float32(0)
			if r == c {
				want = 1
			}
			if abs(prod.At(r, c)-want) > 1e-5 {
				t.Fatalf("(M * M^-1)[%d][%d] = %f, want %f", r, c, prod.At(r, c), want)
			}
		}
	}
}

func mulMat3(a, b Mat3) Mat3 {
	var out Mat3
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			out[c*3+r] = a.At(r, 0)*b.At(0, c) + a.At(r, 1)*b.At(1, c) + a.At(r, 2)*b.At(2, c)
		}
	}
	return out
}

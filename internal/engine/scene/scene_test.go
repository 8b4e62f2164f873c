package scene

import (
	gomath "math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/spinlight/internal/engine/camera"
	"github.com/Faultbox/spinlight/pkg/math"
)

type recorder struct {
	mat4 map[string]math.Mat4
	mat3 map[string]math.Mat3
	vec3 map[string]math.Vec3
	f32  map[string]float32
}

func newRecorder() *recorder {
	return &recorder{
		mat4: map[string]math.Mat4{},
		mat3: map[string]math.Mat3{},
		vec3: map[string]math.Vec3{},
		f32:  map[string]float32{},
	}
}

func (r *recorder) SetMat4(name string, m math.Mat4) { r.mat4[name] = m }
func (r *recorder) SetMat3(name string, m math.Mat3) { r.mat3[name] = m }
func (r *recorder) SetVec3(name string, v math.Vec3) { r.vec3[name] = v }
func (r *recorder) SetFloat(name string, v float32)  { r.f32[name] = v }

var proj = camera.Projection{FOVDegrees: 50, Near: 0.1, Far: 1000}

func near(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-4
}

func TestBuiltinScenesValidate(t *testing.T) {
	for _, name := range []string{NameCube, NamePyramidCube} {
		s, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		if s.Name != name {
			t.Errorf("ByName(%q).Name = %q", name, s.Name)
		}
		if err := s.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
	if _, err := ByName("teapot"); err == nil {
		t.Error("expected error for unknown scene")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Scene)
	}{
		{"no objects", func(s *Scene) { s.Objects = nil }},
		{"too many lights", func(s *Scene) { s.Lights = append(s.Lights, s.Lights...) }},
		{"zero shininess", func(s *Scene) { s.Material.Shininess = 0 }},
		{"no view", func(s *Scene) { s.View = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := PyramidCube()
			tt.modify(s)
			if err := s.Validate(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestModelMatrixAtZeroIsTranslation(t *testing.T) {
	s := PyramidCube()
	for i, o := range s.Objects {
		got := o.ModelMatrix(0)
		want := math.Translate(o.Translation.X, o.Translation.Y, o.Translation.Z)
		for j := range got {
			if !near(got[j], want[j]) {
				t.Fatalf("object %d: element %d = %v, want %v", i, j, got[j], want[j])
			}
		}
	}
}

func TestModelMatrixMatchesMathgl(t *testing.T) {
	o := Cube().Objects[0]
	const tm = 1.5
	got := o.ModelMatrix(tm)
	want := mgl32.HomogRotate3DY(mgl32.DegToRad(45 * tm)).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(20 * tm)))
	for i := range got {
		if !near(got[i], want[i]) {
			t.Fatalf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFrameIdentityModelGivesIdentityNormal(t *testing.T) {
	s := Cube()
	f := s.Frame(0, proj, 640, 480)
	id := math.Identity3()
	if f.Objects[0].Normal() != id {
		t.Errorf("normal matrix at t=0 = %v, want identity", f.Objects[0].Normal())
	}
}

func TestFrameRecomputesNormalMatrix(t *testing.T) {
	s := Cube()
	for _, tm := range []float64{0.3, 1, 7.25} {
		f := s.Frame(tm, proj, 640, 480)
		tr := f.Objects[0]
		want := math.NormalMatrix(tr.Model())
		if tr.Normal() != want {
			t.Errorf("t=%v: stale normal matrix", tm)
		}
	}
}

func TestFrameProjectionTracksAspect(t *testing.T) {
	s := Cube()
	for _, size := range [][2]int{{640, 480}, {800, 400}, {300, 900}} {
		f := s.Frame(0, proj, size[0], size[1])
		aspect := float32(size[0]) / float32(size[1])
		want := mgl32.Perspective(mgl32.DegToRad(50), aspect, 0.1, 1000)
		for i := range want {
			if !near(f.Projection[i], want[i]) {
				t.Fatalf("%dx%d: element %d = %v, want %v", size[0], size[1], i, f.Projection[i], want[i])
			}
		}
	}
}

func TestCubeViewAndEye(t *testing.T) {
	f := Cube().Frame(3, proj, 640, 480)
	want := mgl32.Translate3D(0, 0, -2).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(45))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(45)))
	for i := range want {
		if !near(f.View[i], want[i]) {
			t.Fatalf("view element %d = %v, want %v", i, f.View[i], want[i])
		}
	}
	if f.ViewPos != (math.Vec3{}) {
		t.Errorf("view_pos = %v, want origin", f.ViewPos)
	}
}

func TestPyramidCubeEyeFollowsOrbit(t *testing.T) {
	s := PyramidCube()
	f := s.Frame(9, proj, 640, 480)
	// 10 deg/s for 9 s puts the eye 90 degrees around, on +X.
	if !near(f.ViewPos.X, 3) || !near(f.ViewPos.Y, 0) || !near(f.ViewPos.Z, 0) {
		t.Errorf("view_pos = %v, want (3,0,0)", f.ViewPos)
	}
}

func TestApplySharedPushesEverything(t *testing.T) {
	s := PyramidCube()
	f := s.Frame(2, proj, 640, 480)
	r := newRecorder()
	if err := s.ApplyShared(r, f); err != nil {
		t.Fatalf("ApplyShared: %v", err)
	}
	ApplyObject(r, f.Objects[1])

	for _, name := range s.UniformNames() {
		_, m4 := r.mat4[name]
		_, m3 := r.mat3[name]
		_, v3 := r.vec3[name]
		_, f1 := r.f32[name]
		if !m4 && !m3 && !v3 && !f1 {
			t.Errorf("uniform %q never set", name)
		}
	}
	if r.vec3["light2.position"] != s.Lights[1].Position {
		t.Errorf("light2.position = %v", r.vec3["light2.position"])
	}
	if r.mat4["model"] != f.Objects[1].Model() {
		t.Error("model uniform does not match the second object")
	}
}

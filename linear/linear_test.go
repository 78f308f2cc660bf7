package linear

import (
	"math"
	"testing"
)

func TestV3(t *testing.T) {
	v := V3{1, 2, 4}
	w := V3{0, -1, 2}

	if u := v.Add(w); u != (V3{1, 1, 6}) {
		t.Fatalf("V3.Add:\nhave %v\nwant [1 1 6]", u)
	}
	if u := v.Sub(w); u != (V3{1, 3, 2}) {
		t.Fatalf("V3.Sub:\nhave %v\nwant [1 3 2]", u)
	}
	if u := v.Scale(-1); u != (V3{-1, -2, -4}) {
		t.Fatalf("V3.Scale:\nhave %v\nwant [-1 -2 -4]", u)
	}
	if d := v.Dot(w); d != 6 {
		t.Fatalf("V3.Dot:\nhave %v\nwant 6", d)
	}
	if l := v.Len(); l != float32(math.Sqrt(21)) {
		t.Fatalf("V3.Len:\nhave %v\nwant %v", l, math.Sqrt(21))
	}

	z := V3{0, 0, -2}
	y := V3{0, 4, 0}
	if n := z.Norm(); n != (V3{0, 0, -1}) {
		t.Fatalf("V3.Norm:\nhave %v\nwant [0 0 -1]", n)
	}
	if n := y.Norm(); n != (V3{0, 1, 0}) {
		t.Fatalf("V3.Norm:\nhave %v\nwant [0 1 0]", n)
	}
	if c := z.Norm().Cross(y.Norm()); c != (V3{1, 0, 0}) {
		t.Fatalf("V3.Cross:\nhave %v\nwant [1 0 0]", c)
	}
	if c := y.Norm().Cross(z.Norm()); c != (V3{-1, 0, 0}) {
		t.Fatalf("V3.Cross:\nhave %v\nwant [-1 0 0]", c)
	}
}

func TestV4(t *testing.T) {
	v := NewV4(V3{1, 2, 3}, 1)
	if v.XYZ() != (V3{1, 2, 3}) {
		t.Fatalf("V4.XYZ:\nhave %v\nwant [1 2 3]", v.XYZ())
	}
	w := V4{2, 4, 6, 2}
	if d := w.DivScalar(2); d != (V4{1, 2, 3, 1}) {
		t.Fatalf("V4.DivScalar:\nhave %v\nwant [1 2 3 1]", d)
	}
	c := V4{-1, 0.5, 2, 1.5}.Clamp(0, 1)
	if c != (V4{0, 0.5, 1, 1}) {
		t.Fatalf("V4.Clamp:\nhave %v\nwant [0 0.5 1 1]", c)
	}
}

func TestM4MulIdentity(t *testing.T) {
	m := M4{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}, {13, 14, 15, 16}}
	if r := m.Mul(IdentityM4()); r != m {
		t.Fatalf("M4.Mul with identity:\nhave %v\nwant %v", r, m)
	}
	if r := IdentityM4().Mul(m); r != m {
		t.Fatalf("M4.Mul with identity:\nhave %v\nwant %v", r, m)
	}
}

func TestMulM4V4(t *testing.T) {
	m := Translation(V3{1, 2, 3})
	v := NewV4(V3{0, 0, 0}, 1)
	got := v.MulM4(m)
	want := V4{1, 2, 3, 1}
	if got != want {
		t.Fatalf("V4.MulM4 with translation:\nhave %v\nwant %v", got, want)
	}
}

func TestLookAtOrigin(t *testing.T) {
	m := LookAt(V3{0, 0, 10}, V3{0, 0, 0}, V3{0, 1, 0})
	v := NewV4(V3{0, 0, 0}, 1).MulM4(m)
	want := V4{0, 0, -10, 1}
	for i := range v {
		if diff := v[i] - want[i]; diff > 1e-4 || diff < -1e-4 {
			t.Fatalf("LookAt: origin maps to\nhave %v\nwant %v", v, want)
		}
	}
}

func TestPerspectiveMapsNearFarToClipRange(t *testing.T) {
	p := Perspective(math.Pi/2, 1, 1, 100)
	near := NewV4(V3{0, 0, -1}, 1).MulM4(p)
	far := NewV4(V3{0, 0, -100}, 1).MulM4(p)
	if z := near[2] / near[3]; z < -1-1e-3 || z > -1+1e-3 {
		t.Fatalf("Perspective: near plane NDC z\nhave %v\nwant ~-1 (after divide by w=%v)", z, near[3])
	}
	if z := far[2] / far[3]; z < 1-1e-3 || z > 1+1e-3 {
		t.Fatalf("Perspective: far plane NDC z\nhave %v\nwant ~1 (after divide by w=%v)", z, far[3])
	}
}

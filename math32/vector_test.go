package math32

import (
	"testing"
)

func TestVector3_Equals(t *testing.T) {
	tests := []struct {
		A, B     Vector3
		Expected bool
	}{
		{Vector3{1, 0, 0}, Vector3{1, 0, 0}, true},
		{Vector3{1, 2, 3}, Vector3{1, 2, 3}, true},
		{Vector3{0.0000001, 0, 0}, Vector3{0, 0, 0}, true},
		{Vector3{0, 0, 1}, Vector3{1, 0, 0}, false},
		{Vector3{1, 2, 3}, Vector3{-4, 5, 6}, false},
	}

	for _, c := range tests {
		if r := c.A.Equals(c.B, 5); r != c.Expected {
			t.Errorf("Vector3(%v).Equals(Vector3(%v), 5) != %v (got %v)", c.A, c.B, c.Expected, r)
		}
	}
}

func TestVector3_Length(t *testing.T) {
	tests := []struct {
		Value    Vector3
		Expected float32
	}{
		{Vector3{1, 2, 3}, Sqrt(1*1 + 2*2 + 3*3)},
		{Vector3{3.1, 4.2, 1.3}, Sqrt(3.1*3.1 + 4.2*4.2 + 1.3*1.3)},
		{Vector3{0, 0, 0}, 0},
	}

	for _, c := range tests {
		if r := c.Value.Length(); !NearlyEquals(r, c.Expected, 0.00001) {
			t.Errorf("Vector3(%v).Length() != %v (got %v)", c.Value, c.Expected, r)
		}
	}
}

func BenchmarkVector3_Length(b *testing.B) {
	v := Vector3{3.1, 4.2, 1.3}

	for i := 0; i < b.N; i++ {
		v.Length()
	}
}

func TestVector3_Dot(t *testing.T) {
	tests := []struct {
		A, B     Vector3
		Expected float32
	}{
		{Vector3{0, 0, 0}, Vector3{0, 0, 0}, 0},
		{Vector3{1, 2, 3}, Vector3{4, 5, 6}, 32},
		{Vector3{1, 0, 0}, Vector3{0, 1, 0}, 0},
	}

	for _, c := range tests {
		if r := c.A.Dot(c.B); !NearlyEquals(r, c.Expected, 0.00001) {
			t.Errorf("Vector3(%v).Dot(Vector3(%v)) != %v (got %v)", c.A, c.B, c.Expected, r)
		}
	}
}

func TestVector3_Cross(t *testing.T) {
	tests := []struct {
		A, B     Vector3
		Expected Vector3
	}{
		{Vector3{1, 0, 0}, Vector3{0, 1, 0}, Vector3{0, 0, 1}},
		{Vector3{2, 0, 0}, Vector3{0, 3, 0}, Vector3{0, 0, 6}},
		{Vector3{0, 1, 0}, Vector3{1, 0, 0}, Vector3{0, 0, -1}},
		{Vector3{0, 0, 1}, Vector3{1, 0, 0}, Vector3{0, 1, 0}},
		{Vector3{1, 2, 3}, Vector3{-4, 5, 6}, Vector3{-3, -18, 13}},
	}

	for _, c := range tests {
		if r := c.A.Cross(c.B); !r.Equals(c.Expected, 5) {
			t.Errorf("Vector3(%v).Cross(Vector3(%v)) != %v (got %v)", c.A, c.B, c.Expected, r)
		}
	}
}

func BenchmarkVector3_Cross(b *testing.B) {
	va := Vector3{1, 2, 3}
	vb := Vector3{5, 6, 7}

	for i := 0; i < b.N; i++ {
		va.Cross(vb)
	}
}

func TestVector3_Normalize(t *testing.T) {
	tests := []struct {
		A        Vector3
		Expected Vector3
	}{
		{Vector3{1, 2, -2}, Vector3{1.0 / 3.0, 2.0 / 3.0, -2.0 / 3.0}},
		{Vector3{1, 0, 0}, Vector3{1, 0, 0}},
		{Vector3{0, 0, 0}, Vector3{0, 0, 0}},
	}

	for _, c := range tests {
		if r := c.A.Normalize(); !r.Equals(c.Expected, 5) {
			t.Errorf("Vector3(%v).Normalize() != %v (got %v)", c.A, c.Expected, r)
		}
	}
}

func TestVector3_NormalizeIdempotent(t *testing.T) {
	tests := []Vector3{
		{1, 2, 3},
		{-0.001, 0.002, 100},
		{0, 5, 0},
	}

	for _, v := range tests {
		once := v.Normalize()
		twice := once.Normalize()

		if !twice.Equals(once, 5) {
			t.Errorf("Vector3(%v).Normalize().Normalize() != %v (got %v)", v, once, twice)
		}
		if l := once.Length(); !NearlyEquals(l, 1, 0.00001) {
			t.Errorf("Vector3(%v).Normalize().Length() != 1 (got %v)", v, l)
		}
	}
}

func TestVector3_AddSub(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{5, 6, 7}

	if r := a.Add(b); !r.Equals(Vector3{6, 8, 10}, 5) {
		t.Errorf("Vector3(%v).Add(Vector3(%v)) != 6 8 10 (got %v)", a, b, r)
	}
	if r := a.Sub(b); !r.Equals(Vector3{-4, -4, -4}, 5) {
		t.Errorf("Vector3(%v).Sub(Vector3(%v)) != -4 -4 -4 (got %v)", a, b, r)
	}
}

func TestVector3_MulScalar(t *testing.T) {
	tests := []struct {
		A        Vector3
		S        float32
		Expected Vector3
	}{
		{Vector3{0, 0, 0}, 1, Vector3{0, 0, 0}},
		{Vector3{1, 0, 0}, 2, Vector3{2, 0, 0}},
		{Vector3{1, 2, 3}, 3, Vector3{3, 6, 9}},
		{Vector3{1, 2, 3}, -1, Vector3{-1, -2, -3}},
	}

	for _, c := range tests {
		if r := c.A.MulScalar(c.S); !r.Equals(c.Expected, 5) {
			t.Errorf("Vector3(%v).MulScalar(%v) != %v (got %v)", c.A, c.S, c.Expected, r)
		}
	}
}

func TestVector3_Negate(t *testing.T) {
	tests := []struct {
		A        Vector3
		Expected Vector3
	}{
		{Vector3{0, 0, 0}, Vector3{0, 0, 0}},
		{Vector3{1, -2, 3}, Vector3{-1, 2, -3}},
	}

	for _, c := range tests {
		if r := c.A.Negate(); !r.Equals(c.Expected, 5) {
			t.Errorf("Vector3(%v).Negate() != %v (got %v)", c.A, c.Expected, r)
		}
	}
}

func TestVector4_Dot(t *testing.T) {
	tests := []struct {
		A, B     Vector4
		Expected float32
	}{
		{Vector4{0, 0, 0, 0}, Vector4{0, 0, 0, 0}, 0},
		{Vector4{1, 2, 3, 4}, Vector4{5, 6, 7, 8}, 70},
	}

	for _, c := range tests {
		if r := c.A.Dot(c.B); !NearlyEquals(r, c.Expected, 0.00001) {
			t.Errorf("Vector4(%v).Dot(Vector4(%v)) != %v (got %v)", c.A, c.B, c.Expected, r)
		}
	}
}

func TestVector4_Vector3(t *testing.T) {
	v := Vector4{1, 2, 3, 4}

	if r := v.Vector3(); !r.Equals(Vector3{1, 2, 3}, 5) {
		t.Errorf("Vector4(%v).Vector3() != 1 2 3 (got %v)", v, r)
	}
}

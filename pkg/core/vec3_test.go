package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-9

func vecNear(a, b Vec3, eps float64) bool {
	return mgl64.FloatEqualThreshold(a.X, b.X, eps) &&
		mgl64.FloatEqualThreshold(a.Y, b.Y, eps) &&
		mgl64.FloatEqualThreshold(a.Z, b.Z, eps)
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"add", a.Add(b), NewVec3(5, -3, 9)},
		{"subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"scale scalar first", Scale(2, a), a.Multiply(2)},
		{"divide", b.Divide(2), NewVec3(2, -2.5, 3)},
		{"cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"cross anticommutes", b.Cross(a), a.Cross(b).Negate()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.result, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	v := NewVec3(2, 3, 6)
	if v.Dot(NewVec3(1, 1, 1)) != 11 {
		t.Errorf("Expected dot 11, got %f", v.Dot(NewVec3(1, 1, 1)))
	}
	if v.LengthSquared() != 49 {
		t.Errorf("Expected squared length 49, got %f", v.LengthSquared())
	}
	if v.Length() != 7 {
		t.Errorf("Expected length 7, got %f", v.Length())
	}
}

func TestVec3_Normalize(t *testing.T) {
	vectors := []Vec3{
		NewVec3(3, 4, 0),
		NewVec3(-1, -1, -1),
		NewVec3(1e-6, 0, 0),
		NewVec3(1e6, -2e6, 3e6),
	}

	for _, v := range vectors {
		n := v.Normalize()
		if math.Abs(n.Length()-1) > 1e-5 {
			t.Errorf("Normalize(%v) has length %f, expected 1", v, n.Length())
		}
		if n.Dot(v) <= 0 {
			t.Errorf("Normalize(%v) = %v points away from the input", v, n)
		}
	}
}

func TestVec3_NormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic normalizing the zero vector")
		}
	}()
	Zero.Normalize()
}

func TestVec3_Reflect(t *testing.T) {
	normals := []Vec3{
		Up,
		NewVec3(1, 1, 0).Normalize(),
		NewVec3(-0.3, 0.2, 0.9).Normalize(),
	}
	incidents := []Vec3{
		NewVec3(1, -1, 0),
		NewVec3(0.5, 2, -3),
		NewVec3(0, 0, -1),
	}

	for _, n := range normals {
		for _, v := range incidents {
			r := v.Reflect(n)
			if math.Abs(r.Length()-v.Length()) > 1e-9 {
				t.Errorf("Reflect(%v, %v) changed length: %f vs %f", v, n, r.Length(), v.Length())
			}
			if math.Abs(r.Dot(n)+v.Dot(n)) > 1e-9 {
				t.Errorf("Reflect(%v, %v): expected r·n = %f, got %f", v, n, -v.Dot(n), r.Dot(n))
			}
		}
	}

	got := NewVec3(1, -1, 0).Reflect(Up)
	if !vecNear(got, NewVec3(1, 1, 0), tolerance) {
		t.Errorf("Expected (1, 1, 0), got %v", got)
	}
}

func TestVec3_Clamp(t *testing.T) {
	got := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if got != NewVec3(0, 0.5, 1) {
		t.Errorf("Expected (0, 0.5, 1), got %v", got)
	}
}

func TestVec3_String(t *testing.T) {
	if s := NewVec3(0.2, 0.7, 0.8).String(); s != "(0.2, 0.7, 0.8)" {
		t.Errorf("Unexpected string %q", s)
	}
}

func TestRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -10))
	if ray.Direction != NewVec3(0, 0, -1) {
		t.Errorf("Expected unit direction, got %v", ray.Direction)
	}
	if p := ray.At(2); p != NewVec3(1, 2, 1) {
		t.Errorf("Expected (1, 2, 1), got %v", p)
	}
}

package math

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	// Addition
	result := v1.Add(v2)
	expected := NewVec3(5, 7, 9)
	if result != expected {
		t.Errorf("Add: expected %v, got %v", expected, result)
	}

	// Subtraction
	result = v2.Sub(v1)
	expected = NewVec3(3, 3, 3)
	if result != expected {
		t.Errorf("Sub: expected %v, got %v", expected, result)
	}

	// Scalar multiplication
	result = v1.Mul(2)
	expected = NewVec3(2, 4, 6)
	if result != expected {
		t.Errorf("Mul: expected %v, got %v", expected, result)
	}

	// Dot product
	dot := v1.Dot(v2)
	expectedDot := float64(32) // 1*4 + 2*5 + 3*6
	if dot != expectedDot {
		t.Errorf("Dot: expected %v, got %v", expectedDot, dot)
	}

	// Cross product (Right x Up = Front in right-handed system)
	cross := Vec3Right.Cross(Vec3Up)
	if cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 0)
	normalized := v.Normalize()
	expected := NewVec3(1, 0, 0)

	if normalized != expected {
		t.Errorf("Normalize: expected %v, got %v", expected, normalized)
	}

	// Check length is 1
	length := normalized.Length()
	if math.Abs(length-1) > 0.0001 {
		t.Errorf("Normalize: expected length 1, got %v", length)
	}
}

func TestVec3NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("NearZero: expected tiny vector to be near zero")
	}
	if NewVec3(0.1, 0, 0).NearZero() {
		t.Error("NearZero: expected (0.1,0,0) not to be near zero")
	}
}

func TestReflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	result := Reflect(v, n)
	expected := NewVec3(1, 1, 0)
	if result != expected {
		t.Errorf("Reflect: expected %v, got %v", expected, result)
	}
}

func TestRefractPreservesUnitLength(t *testing.T) {
	uv := NewVec3(0.6, -0.8, 0).Normalize()
	n := NewVec3(0, 1, 0)
	result := Refract(uv, n, 1.0/1.5)
	if math.Abs(result.Length()-1) > 0.01 {
		t.Errorf("Refract: expected unit length, got %v", result.Length())
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0), 0)
	p := r.At(3)
	expected := NewVec3(3, 0, 0)
	if p != expected {
		t.Errorf("Ray.At: expected %v, got %v", expected, p)
	}
}

func TestRandomInUnitSphereBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(rng)
		if p.LengthSqr() >= 1 {
			t.Fatalf("RandomInUnitSphere: sample outside unit ball: %v", p)
		}
	}
}

func TestRandomUnitVectorIsUnit(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(rng)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("RandomUnitVector: expected unit length, got %v", v.Length())
		}
	}
}

func TestRandomInUnitDiskIsFlat(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(rng)
		if p.Z != 0 {
			t.Fatalf("RandomInUnitDisk: expected Z=0, got %v", p.Z)
		}
		if p.LengthSqr() >= 1 {
			t.Fatalf("RandomInUnitDisk: sample outside unit disk: %v", p)
		}
	}
}

func BenchmarkVec3Add(b *testing.B) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	for i := 0; i < b.N; i++ {
		_ = v1.Add(v2)
	}
}

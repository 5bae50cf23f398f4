package vec

import (
	"math"
	"testing"
)

const eps = 1e-12

func TestArithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(4, -5, 6)

	tests := []struct {
		name string
		got  Vector3
		want Vector3
	}{
		{"add", a.Add(b), New(5, -3, 9)},
		{"sub", a.Sub(b), New(-3, 7, -3)},
		{"scale", a.Scale(2), New(2, 4, 6)},
		{"div", b.Div(2), New(2, -2.5, 3)},
		{"neg", a.Neg(), New(-1, -2, -3)},
		{"lerp start", a.Lerp(b, 0), a},
		{"lerp end", a.Lerp(b, 1), b},
		{"lerp mid", a.Lerp(b, 0.5), New(2.5, -1.5, 4.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.ApproxEqual(tt.want, eps) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestOperationsDoNotMutate(t *testing.T) {
	a := New(1, 2, 3)
	_ = a.Add(New(1, 1, 1))
	_ = a.Scale(10)
	_ = a.Normalize()
	if a != New(1, 2, 3) {
		t.Errorf("receiver mutated: %v", a)
	}
}

func TestDot(t *testing.T) {
	if got := New(1, 2, 3).Dot(New(4, -5, 6)); got != 12 {
		t.Errorf("Dot = %f, want 12", got)
	}
}

func TestCrossRightHanded(t *testing.T) {
	x := New(1, 0, 0)
	y := New(0, 1, 0)
	z := New(0, 0, 1)

	if got := x.Cross(y); got != z {
		t.Errorf("x × y = %v, want %v", got, z)
	}
	if got := y.Cross(z); got != x {
		t.Errorf("y × z = %v, want %v", got, x)
	}
	if got := y.Cross(x); got != z.Neg() {
		t.Errorf("y × x = %v, want %v", got, z.Neg())
	}
}

func TestNormalize(t *testing.T) {
	t.Run("zero unchanged", func(t *testing.T) {
		if got := Zero.Normalize(); got != Zero {
			t.Errorf("Normalize(0) = %v", got)
		}
	})
	t.Run("unit unchanged", func(t *testing.T) {
		u := New(0, 1, 0)
		if got := u.Normalize(); got != u {
			t.Errorf("Normalize(unit) = %v", got)
		}
	})
	t.Run("scaled to unit", func(t *testing.T) {
		got := New(3, 0, 4).Normalize()
		if !got.ApproxEqual(New(0.6, 0, 0.8), eps) {
			t.Errorf("Normalize = %v", got)
		}
		if math.Abs(got.Len()-1) > eps {
			t.Errorf("|Normalize| = %f", got.Len())
		}
	})
}

func TestDivByZeroPropagatesIEEE(t *testing.T) {
	got := New(1, -1, 0).Div(0)
	if !math.IsInf(got.X, 1) || !math.IsInf(got.Y, -1) || !math.IsNaN(got.Z) {
		t.Errorf("Div(0) = %v, want (+Inf, -Inf, NaN)", got)
	}
	if got.IsFinite() {
		t.Error("IsFinite() = true for Div(0) result")
	}
}

package common

import (
	"math"
	"testing"
)

func TestNormalizeZeroVector(t *testing.T) {
	got := (Vec2{}).Normalize()
	if got != (Vec2{}) {
		t.Errorf("Normalize of zero vector = %v, want zero vector", got)
	}
}

func TestDistIsSymmetric(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 0, Y: 0}
	if d := a.Dist(b); d != 5 {
		t.Errorf("Dist = %f, want 5", d)
	}
	if a.Dist(b) != b.Dist(a) {
		t.Errorf("Dist not symmetric: %f vs %f", a.Dist(b), b.Dist(a))
	}
}

func TestCosAngleBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float64
	}{
		{"parallel", Vec2{X: 1, Y: 0}, Vec2{X: 5, Y: 0}, 1},
		{"perpendicular", Vec2{X: 1, Y: 0}, Vec2{X: 0, Y: 3}, 0},
		{"opposite", Vec2{X: 2, Y: 0}, Vec2{X: -1, Y: 0}, -1},
		{"zero left operand", Vec2{}, Vec2{X: 1, Y: 1}, 1},
		{"zero right operand", Vec2{X: 1, Y: 1}, Vec2{}, 1},
		{"both zero", Vec2{}, Vec2{}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosAngleBetween(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("CosAngleBetween(%v, %v) = %f, want %f", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPerpIsOrthogonal(t *testing.T) {
	v := Vec2{X: 3, Y: -7}
	if dot := v.Dot(v.Perp()); dot != 0 {
		t.Errorf("v.Dot(v.Perp()) = %f, want 0", dot)
	}
}

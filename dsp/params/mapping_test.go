package params

import (
	"math"
	"testing"
)

func TestMapEndpoints(t *testing.T) {
	mappings := []Mapping{
		{Min: 0, Max: 9, Curve: CurveLinear},
		{Min: 0, Max: 6, Curve: CurveSquared},
		{Min: 80, Max: 500, Curve: CurveExponential},
	}
	for _, m := range mappings {
		if got := m.Map(0); got != m.Min {
			t.Fatalf("%v: Map(0) = %v, want %v", m.Curve, got, m.Min)
		}
		if got := m.Map(100); got != m.Max {
			t.Fatalf("%v: Map(100) = %v, want %v", m.Curve, got, m.Max)
		}
	}
}

func TestMapClampsOutOfRange(t *testing.T) {
	m := Mapping{Min: 0, Max: 10, Curve: CurveLinear}
	if got := m.Map(-50); got != 0 {
		t.Fatalf("Map(-50) = %v, want 0", got)
	}
	if got := m.Map(250); got != 10 {
		t.Fatalf("Map(250) = %v, want 10", got)
	}
	if got := m.Map(math.NaN()); got != 0 {
		t.Fatalf("Map(NaN) = %v, want Min", got)
	}
}

func TestMapMonotonic(t *testing.T) {
	mappings := []Mapping{
		{Min: 0, Max: 9, Curve: CurveLinear},
		{Min: 0, Max: 6, Curve: CurveSquared},
		{Min: 80, Max: 500, Curve: CurveExponential},
		{Min: 500, Max: 80, Curve: CurveLinear}, // descending range
	}
	for _, m := range mappings {
		ascending := m.Max >= m.Min
		prev := m.Map(0)
		for v := 1.0; v <= 100; v++ {
			cur := m.Map(v)
			if ascending && cur < prev {
				t.Fatalf("%v: not monotonic at %v: %v < %v", m.Curve, v, cur, prev)
			}
			if !ascending && cur > prev {
				t.Fatalf("%v: not monotonic at %v: %v > %v", m.Curve, v, cur, prev)
			}
			prev = cur
		}
	}
}

func TestMapDeterministic(t *testing.T) {
	m := Mapping{Min: 80, Max: 500, Curve: CurveExponential}
	for v := 0.0; v <= 100; v += 12.5 {
		if m.Map(v) != m.Map(v) {
			t.Fatalf("Map(%v) is not deterministic", v)
		}
	}
}

func TestExponentialGeometricMidpoint(t *testing.T) {
	m := Mapping{Min: 100, Max: 400, Curve: CurveExponential}
	want := 200.0 // sqrt(100*400)
	if got := m.Map(50); math.Abs(got-want) > 1e-9 {
		t.Fatalf("Map(50) = %v, want %v", got, want)
	}
}

func TestExponentialFallsBackToLinear(t *testing.T) {
	m := Mapping{Min: 0, Max: 10, Curve: CurveExponential}
	if got := m.Map(50); got != 5 {
		t.Fatalf("Map(50) = %v, want linear fallback 5", got)
	}
}

func TestNormalizeInverse(t *testing.T) {
	m := Mapping{Min: 0, Max: 9, Curve: CurveLinear}
	for v := 0.0; v <= 100; v += 10 {
		back := m.Normalize(m.Map(v))
		if math.Abs(back-v) > 1e-9 {
			t.Fatalf("Normalize(Map(%v)) = %v", v, back)
		}
	}

	degenerate := Mapping{Min: 3, Max: 3}
	if got := degenerate.Normalize(3); got != 0 {
		t.Fatalf("degenerate Normalize = %v, want 0", got)
	}
}

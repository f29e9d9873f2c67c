package gm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRad_Normalized(t *testing.T) {
	cases := []struct {
		name     string
		angle    Rad
		expected Rad
	}{
		{"zero", 0, 0},
		{"pi stays pi", math.Pi, math.Pi},
		{"minus pi wraps to pi", -math.Pi, math.Pi},
		{"three halves pi", 1.5 * math.Pi, -0.5 * math.Pi},
		{"minus three halves pi", -1.5 * math.Pi, 0.5 * math.Pi},
		{"full turn", 2 * math.Pi, 0},
		{"many turns", 0.25 + 40*math.Pi, 0.25},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.InDelta(t, float64(c.expected), float64(c.angle.Normalized()), 1e-9)
		})
	}
}

func TestRad_NormalizedIdempotent(t *testing.T) {
	for _, angle := range []Rad{-3, -1, 0, 0.5, 2, 3.1, math.Pi} {
		once := angle.Normalized()
		require.Equal(t, once, once.Normalized())
	}
}

func TestRad_NormalizedFullTurns(t *testing.T) {
	for _, angle := range []Rad{-2.5, -0.3, 0.7, 2.9} {
		for k := -5; k <= 5; k++ {
			shifted := angle + Rad(2*math.Pi*float64(k))
			require.InDelta(t, float64(angle.Normalized()), float64(shifted.Normalized()), 1e-9,
				"angle %v shifted by %d turns", angle, k)
		}
	}
}

func TestRad_NormalizedRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		angle := Rad(RandomIn(-100, 100)).Normalized()
		require.Greater(t, float64(angle), -math.Pi)
		require.LessOrEqual(t, float64(angle), math.Pi)
	}
}

func TestRad_DifferenceTo(t *testing.T) {
	diff := DegToRad(170).DifferenceTo(DegToRad(-170))
	require.InDelta(t, DegToRad(-20).Radians(), diff.Radians(), 1e-9)
}

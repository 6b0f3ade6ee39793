package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeRadiansRange(t *testing.T) {
	testCases := []struct {
		name   string
		in     float64
		expect float64
	}{
		{"zero", 0, 0},
		{"pi stays pi", math.Pi, math.Pi},
		{"minus pi maps to pi", -math.Pi, math.Pi},
		{"past three pi", 3*math.Pi + 0.5, 0.5 - math.Pi},
		{"minus three halves pi", -1.5 * math.Pi, 0.5 * math.Pi},
		{"three halves pi", 1.5 * math.Pi, -0.5 * math.Pi},
		{"two pi", 2 * math.Pi, 0},
		{"small negative", -0.25, -0.25},
		{"large", 101 * math.Pi / 4, -3 * math.Pi / 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := NormalizeRadians(tc.in)
			require.InDelta(t, tc.expect, r, 1e-9)
			require.True(t, r > -math.Pi && r <= math.Pi, "%v out of range", r)
		})
	}
}

func TestNormalizeRadiansPeriodic(t *testing.T) {
	for _, a := range []float64{-3, -1.2, -0.1, 0, 0.7, 2.5, 3.1} {
		base := NormalizeRadians(a)
		for k := -5; k <= 5; k++ {
			r := NormalizeRadians(a + 2*math.Pi*float64(k))
			require.InDelta(t, base, r, 1e-9, "a=%v k=%d", a, k)
			require.True(t, r > -math.Pi && r <= math.Pi)
		}
	}
}

func TestAngleSign(t *testing.T) {
	require.Equal(t, 0.0, Angle(0).Sign())
	require.Equal(t, 1.0, Angle(1e-12).Sign())
	require.Equal(t, -1.0, Angle(-2).Sign())
}

func TestAngleArithmetic(t *testing.T) {
	a := AngleFromDegrees(170)
	require.InDelta(t, -170, a.AddRadians(20*math.Pi/180).Degrees(), 1e-9)
	require.InDelta(t, 20, AngleFromDegrees(-170).Sub(AngleFromDegrees(170)).Degrees(), 1e-9)
	require.InDelta(t, 10, AngleFromDegrees(10).Abs()*180/math.Pi, 1e-9)
	p := AngleFromDegrees(90).Project(2)
	require.InDelta(t, 0, p.X, 1e-9)
	require.InDelta(t, 2, p.Y, 1e-9)
}

package motion

import (
	"io/ioutil"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeClamp(t *testing.T) {
	r := Range{Min: 1, Max: 5, Default: 2}
	for _, tc := range []struct{ in, out float64 }{
		{3, 3}, {0, 1}, {-5, 1}, {5, 5}, {7, 5}, {math.Inf(-1), 2},
	} {
		v, _ := r.Clamp(tc.in)
		require.Equal(t, tc.out, v)
	}
	_, err := r.Clamp(math.NaN())
	require.Equal(t, ErrInvalidParam, err)
}

func TestConfigLoadFile(t *testing.T) {
	f, err := ioutil.TempFile("", "motion-config")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	_, err = f.WriteString(`{"lookahead_distance": 80, "speed": {"min": 1, "max": 8, "default": 3}}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	conf := NewConfig()
	conf.File = f.Name()
	require.NoError(t, conf.Load())
	require.Equal(t, 80.0, conf.LookaheadDistance)
	require.Equal(t, DefaultTargetRadius, conf.TargetRadius)
	require.Equal(t, Range{Min: 1, Max: 8, Default: 3}, conf.Speed)

	s := conf.NewSimulator()
	require.Equal(t, 3.0, s.Speed())
	require.Equal(t, 80.0, s.Pursuit.LookaheadDistance)

	conf.File = f.Name() + ".missing"
	require.Error(t, conf.Load())
}

func TestConfigLoadWithoutFile(t *testing.T) {
	conf := NewConfig()
	require.NoError(t, conf.Load())
	require.Equal(t, *Default(), *conf)
}

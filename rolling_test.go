package gorolling

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reference implementation, scans the whole window each step
func naiveExtremum(values []float64, window int, minPeriods int, mode PriorityMode) []float64 {
	if minPeriods < 1 {
		minPeriods = 1
	}

	out := make([]float64, len(values))
	for i := range values {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}

		nobs := 0
		ext := math.NaN()
		for j := lo; j <= i; j++ {
			v := values[j]
			if math.IsNaN(v) {
				continue
			}
			nobs++
			if math.IsNaN(ext) || (mode == MIN && v < ext) || (mode == MAX && v > ext) {
				ext = v
			}
		}

		if nobs < minPeriods {
			out[i] = math.NaN()
		} else {
			out[i] = ext
		}
	}
	return out
}

func assertSeriesEqual(t *testing.T, want []float64, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		if math.IsNaN(want[i]) {
			assert.True(t, math.IsNaN(got[i]), "index %d: want NaN, got %f", i, got[i])
		} else {
			assert.Equal(t, want[i], got[i], "index %d", i)
		}
	}
}

func TestRollingMinFixedWindow(t *testing.T) {
	series := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}
	got := RollingMin(series, 3, 1)
	assertSeriesEqual(t, naiveExtremum(series, 3, 1, MIN), got)
}

func TestRollingMaxFixedWindow(t *testing.T) {
	series := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3}
	got := RollingMax(series, 3, 1)
	assertSeriesEqual(t, naiveExtremum(series, 3, 1, MAX), got)
}

func TestRollingMinPeriods(t *testing.T) {
	series := []float64{2, 4, 6, 8}
	got := RollingMin(series, 3, 3)

	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	assert.Equal(t, 2.0, got[2])
	assert.Equal(t, 4.0, got[3])
}

func TestRollingSkipsNaN(t *testing.T) {
	nan := math.NaN()
	series := []float64{1, nan, 3, nan, nan, 2}

	got := RollingMin(series, 2, 1)
	assertSeriesEqual(t, []float64{1, 1, 3, 3, nan, 2}, got)

	got = RollingMin(series, 2, 2)
	assertSeriesEqual(t, []float64{nan, nan, nan, nan, nan, nan}, got)
}

func TestRollingAgainstNaiveRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for _, window := range []int{1, 2, 5, 16, 64} {
		series := make([]float64, 200)
		for i := range series {
			if rnd.Intn(10) == 0 {
				series[i] = math.NaN()
			} else {
				series[i] = math.Floor(rnd.Float64() * 50)
			}
		}

		minPeriods := 1 + rnd.Intn(window)
		assertSeriesEqual(t, naiveExtremum(series, window, minPeriods, MIN), RollingMin(series, window, minPeriods))
		assertSeriesEqual(t, naiveExtremum(series, window, minPeriods, MAX), RollingMax(series, window, minPeriods))
	}
}

func TestRollerPush(t *testing.T) {
	option := NewRollerOption()
	option.SetWindow(2)
	option.SetMinPeriods(2)
	option.SetMode(MAX)

	roller := NewRoller(option)

	_, ok := roller.Push(1)
	assert.False(t, ok)

	v, ok := roller.Push(3)
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	v, ok = roller.Push(2)
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	// the 3 fell out of the window
	v, ok = roller.Push(1)
	require.True(t, ok)
	assert.Equal(t, 2.0, v)

	assert.Equal(t, 2, roller.GetSize())
	assert.Equal(t, 4, roller.GetPosition())
}

func TestRollerReset(t *testing.T) {
	option := NewRollerOption()
	option.SetWindow(3)

	roller := NewRoller(option)
	roller.Push(5)
	roller.Push(6)
	roller.Reset()

	assert.Equal(t, 0, roller.GetSize())
	assert.Equal(t, 0, roller.GetPosition())

	v, ok := roller.Push(9)
	require.True(t, ok)
	assert.Equal(t, 9.0, v)
}

func TestRollerExpireBacklogDrains(t *testing.T) {
	// a tiny batch limit forces Push to call Expire repeatedly
	option := NewRollerOption()
	option.SetWindow(4)
	option.SetExpireBatchLimit(1)

	rnd := rand.New(rand.NewSource(11))
	series := make([]float64, 100)
	for i := range series {
		series[i] = rnd.Float64() * 10
	}

	roller := NewRoller(option)
	want := naiveExtremum(series, 4, 1, MIN)
	for i, v := range series {
		got, ok := roller.Push(v)
		require.True(t, ok)
		require.Equal(t, want[i], got, "index %d", i)
	}
}

func TestNewRollerRejectsZeroWindow(t *testing.T) {
	assert.Panics(t, func() { NewRoller(NewRollerOption().unsetWindow()) })
}

// helper to reach the invalid state the setters refuse by default
func (i *RollerOption) unsetWindow() *RollerOption {
	i.window = 0
	return i
}

func TestRollingWindowsVariable(t *testing.T) {
	series := []float64{5, 1, 8, 2, 9, 0, 7, 3}
	starts := []int{0, 0, 1, 2, 2, 4, 5, 6}
	ends := []int{1, 2, 3, 4, 5, 6, 7, 8}

	got, err := RollingWindows(series, starts, ends, 1, MIN)
	require.NoError(t, err)

	want := make([]float64, len(series))
	for i := range series {
		ext := math.Inf(1)
		for j := starts[i]; j < ends[i]; j++ {
			if series[j] < ext {
				ext = series[j]
			}
		}
		want[i] = ext
	}
	assertSeriesEqual(t, want, got)
}

func TestRollingWindowsJumpPastBatchLimit(t *testing.T) {
	// the start jumps by more than the batch limit in one step, leftovers
	// must be cleaned up before the extremum is read
	n := 20
	series := make([]float64, n)
	starts := make([]int, n)
	ends := make([]int, n)
	for i := range series {
		series[i] = float64(n - i)
		ends[i] = i + 1
		if i < n/2 {
			starts[i] = 0
		} else {
			starts[i] = i
		}
	}

	got, err := RollingWindows(series, starts, ends, 1, MAX)
	require.NoError(t, err)

	for i := n / 2; i < n; i++ {
		assert.Equal(t, series[i], got[i], "index %d", i)
	}
}

func TestRollingWindowsValidation(t *testing.T) {
	series := []float64{1, 2, 3}

	_, err := RollingWindows(series, []int{0, 0}, []int{1, 2, 3}, 1, MIN)
	assert.Error(t, err)

	_, err = RollingWindows(series, []int{0, 1, 0}, []int{1, 2, 3}, 1, MIN)
	assert.Error(t, err)

	_, err = RollingWindows(series, []int{0, 0, 0}, []int{1, 2, 9}, 1, MIN)
	assert.Error(t, err)

	_, err = RollingWindows(series, []int{0, 0, 3}, []int{1, 2, 2}, 1, MIN)
	assert.Error(t, err)
}

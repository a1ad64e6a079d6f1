package gorolling

import (
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Roller computes a rolling min or max over a stream of observations. It
// owns one PriorityList and the threshold table its death labels point
// at: the observation pushed at position j carries death label j, and
// thresholds[j] is the first position at which that observation is
// outside the window.
type Roller struct {
	option     *RollerOption
	list       *PriorityList
	thresholds []int
	position   int
}

func NewRoller(option *RollerOption) *Roller {
	if option.window < 1 {
		panic("roller window must be at least 1!\ntip: Set RollerOption.SetWindow() before creating the roller!")
	}
	if option.minPeriods < 1 {
		option.minPeriods = 1
	}

	hint := option.capacityHint
	if hint == 0 {
		hint = option.window
	}

	list := NewPriorityList(hint, option.mode)
	list.SetExpireBatchLimit(option.expireBatchLimit)

	return &Roller{
		option:     option,
		list:       list,
		thresholds: make([]int, 0, hint),
	}
}

// returns the roller's id, generating one the first time it is asked for
func (r *Roller) ID() string {
	if r.option.id == nil {
		newID := uuid.New().String()
		r.option.id = &newID
	}
	return *r.option.id
}

// Push feeds the next observation and returns the extremum of the window
// ending at it. The second return is false while the window holds fewer
// than minPeriods live observations. NaN observations advance the window
// but are never inserted.
func (r *Roller) Push(value float64) (float64, bool) {
	idx := r.position
	r.thresholds = append(r.thresholds, idx+r.option.window)

	if !math.IsNaN(value) {
		r.list.Insert(value, idx)
	}

	r.position++
	r.drain(idx)

	if r.list.GetSize() < r.option.minPeriods {
		return 0, false
	}
	return r.list.Peek()
}

// returns the number of live observations in the current window
func (r *Roller) GetSize() int {
	return r.list.GetSize()
}

// returns the position the next observation will be pushed at
func (r *Roller) GetPosition() int {
	return r.position
}

// returns an ordered copy of the live window entries
func (r *Roller) Snapshot() []PriorityEntry {
	return r.list.Snapshot()
}

// Reset clears the window state so the roller can be reused on a new
// series. The id, options and recycled nodes are kept.
func (r *Roller) Reset() {
	r.list.Clear()
	r.thresholds = r.thresholds[:0]
	r.position = 0
}

// one Expire call is capped, keep calling until the backlog is gone
func (r *Roller) drain(current int) {
	for r.list.Expire(r.thresholds, current) == r.list.expireBatchLimit {
	}
}

// RollingMin computes the rolling minimum of [values] over a fixed size
// [window], emitting NaN until a window holds [minPeriods] live
// observations
func RollingMin(values []float64, window int, minPeriods int) []float64 {
	return rollingExtremum(values, window, minPeriods, MIN)
}

// RollingMax computes the rolling maximum of [values] over a fixed size
// [window], emitting NaN until a window holds [minPeriods] live
// observations
func RollingMax(values []float64, window int, minPeriods int) []float64 {
	return rollingExtremum(values, window, minPeriods, MAX)
}

func rollingExtremum(values []float64, window int, minPeriods int, mode PriorityMode) []float64 {
	option := NewRollerOption()
	option.SetWindow(window)
	option.SetMinPeriods(minPeriods)
	option.SetMode(mode)

	roller := NewRoller(option)
	out := make([]float64, len(values))
	for i, value := range values {
		res, ok := roller.Push(value)
		if !ok {
			out[i] = math.NaN()
			continue
		}
		out[i] = res
	}
	return out
}

// RollingWindows computes the extremum over caller supplied window
// bounds: window i covers values[starts[i]:ends[i]]. Both bound slices
// must be as long as [values], non-decreasing and with starts[i] <=
// ends[i] <= len(values).
func RollingWindows(values []float64, starts []int, ends []int, minPeriods int, mode PriorityMode) ([]float64, error) {
	if len(starts) != len(values) || len(ends) != len(values) {
		return nil, fmt.Errorf("window bounds must match the series: got %d starts and %d ends for %d values", len(starts), len(ends), len(values))
	}
	if minPeriods < 1 {
		minPeriods = 1
	}

	// thresholds[j] is the first window whose start moved past j
	thresholds := make([]int, len(values))
	k := 0
	for j := range values {
		if j > 0 && (starts[j] < starts[j-1] || ends[j] < ends[j-1]) {
			return nil, fmt.Errorf("window bounds must be non-decreasing, they shrink at %d", j)
		}
		if starts[j] > ends[j] || ends[j] > len(values) {
			return nil, fmt.Errorf("window %d is out of range: [%d, %d)", j, starts[j], ends[j])
		}

		for k < len(starts) && starts[k] <= j {
			k++
		}
		thresholds[j] = k
	}

	list := NewPriorityList(len(values), mode)
	out := make([]float64, len(values))
	next := 0
	for i := range values {
		for next < ends[i] {
			if !math.IsNaN(values[next]) {
				list.Insert(values[next], next)
			}
			next++
		}

		for list.Expire(thresholds, i) == list.expireBatchLimit {
		}

		if res, ok := list.Peek(); ok && list.GetSize() >= minPeriods {
			out[i] = res
		} else {
			out[i] = math.NaN()
		}
	}
	return out, nil
}

package wealth

import (
	"iter"
	"slices"
	"sort"
)

// DailyValue is one day of a dense daily series: exactly one entry per
// calendar day, in date order, no gaps.
type DailyValue struct {
	On    Date
	Value Money
}

// Timeline stores sparse, dated Money marks, chronologically sorted with
// unique dates. It is the input shape of the forward-fill: a few user-entered
// points from which a dense daily series is reconstructed.
type Timeline struct {
	days   []Date
	values []Money
}

// Len returns the number of marks in the timeline.
func (t *Timeline) Len() int { return len(t.days) }

// First returns the earliest date and value, or zero values when empty.
func (t *Timeline) First() (Date, Money) {
	if len(t.days) == 0 {
		return Date{}, Money{}
	}
	return t.days[0], t.values[0]
}

// Latest returns the latest date and value, or zero values when empty.
func (t *Timeline) Latest() (Date, Money) {
	last := len(t.days) - 1
	if last < 0 {
		return Date{}, Money{}
	}
	return t.days[last], t.values[last]
}

type chronologicalTimeline struct{ *Timeline }

func (s chronologicalTimeline) Len() int           { return len(s.days) }
func (s chronologicalTimeline) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }
func (s chronologicalTimeline) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

func (t *Timeline) sort() { sort.Sort(chronologicalTimeline{t}) }

// Append adds a mark to the timeline. An existing value at that date is
// overwritten, the last write wins.
func (t *Timeline) Append(on Date, v Money) *Timeline {
	if i := slices.Index(t.days, on); i >= 0 {
		t.values[i] = v
		return t
	}
	t.days, t.values = append(t.days, on), append(t.values, v)
	t.sort()
	return t
}

// AppendAdd adds a mark to the timeline. An existing value at that date is
// added to, which is how same-date values are aggregated.
func (t *Timeline) AppendAdd(on Date, v Money) *Timeline {
	if i := slices.Index(t.days, on); i >= 0 {
		t.values[i] = t.values[i].Add(v)
		return t
	}
	t.days, t.values = append(t.days, on), append(t.values, v)
	t.sort()
	return t
}

// Values returns an iterator over all date/value marks in chronological order.
func (t *Timeline) Values() iter.Seq2[Date, Money] {
	return func(yield func(Date, Money) bool) {
		for i, on := range t.days {
			if !yield(on, t.values[i]) {
				return
			}
		}
	}
}

// ValueAsOf returns the value on a given day, or the most recent value
// before it. It returns false when no mark exists on or before that day.
func (t *Timeline) ValueAsOf(on Date) (Money, bool) {
	i, found := slices.BinarySearchFunc(t.days, on, compareDates)
	if found {
		return t.values[i], true
	}
	if i == 0 {
		return Money{}, false
	}
	return t.values[i-1], true
}

// FillDaily reconstructs the dense daily series from the sparse marks: one
// DailyValue per calendar day from the first mark through 'now' inclusive,
// holding the last known value constant between marks.
//
// An empty timeline yields nil, and so does a 'now' before the first mark.
// Otherwise the result has exactly now.Sub(first)+1 entries.
func (t *Timeline) FillDaily(now Date) []DailyValue {
	if len(t.days) == 0 {
		return nil
	}
	start := t.days[0]
	if now.Before(start) {
		return nil
	}
	daily := make([]DailyValue, 0, now.Sub(start)+1)
	current := t.values[0]
	next := 1
	for on := start; !on.After(now); on = on.Add(1) {
		for next < len(t.days) && !t.days[next].After(on) {
			current = t.values[next]
			next++
		}
		daily = append(daily, DailyValue{On: on, Value: current})
	}
	return daily
}

// dailyAsOf returns the value of a dense daily series on a given day, or
// the last value when the day is past the series end. It returns false when
// the day is before the series start or the series is empty.
func dailyAsOf(series []DailyValue, on Date) (Money, bool) {
	if len(series) == 0 || on.Before(series[0].On) {
		return Money{}, false
	}
	i := on.Sub(series[0].On)
	if i >= len(series) {
		i = len(series) - 1
	}
	return series[i].Value, true
}

// mergeDaily sums several dense daily series date-wise into a new timeline.
// A series that does not exist yet on a given date contributes nothing, each
// input is already forward-filled over its own lifetime.
func mergeDaily(series ...[]DailyValue) *Timeline {
	dates := make([][]Date, len(series))
	for i, s := range series {
		dates[i] = make([]Date, len(s))
		for j, dv := range s {
			dates[i][j] = dv.On
		}
	}
	merged := &Timeline{}
	for on := range iterate(dates...) {
		total := Money{}
		for i, s := range series {
			if j, found := slices.BinarySearchFunc(dates[i], on, compareDates); found {
				total = total.Add(s[j].Value)
			}
		}
		merged.Append(on, total)
	}
	return merged
}

func compareDates(d, target Date) int {
	if d.After(target) {
		return 1
	}
	if d.Before(target) {
		return -1
	}
	return 0
}

// iterate returns an iterator over all unique, sorted dates from multiple
// series of sorted dates.
func iterate(series ...[]Date) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		indexes := make([]int, len(series))
		reached := make([]Date, 0, len(series))
		for {
			reached = reached[:0]
			for i, index := range indexes {
				if index < len(series[i]) {
					reached = append(reached, series[i][index])
				}
			}
			if len(reached) == 0 {
				// all series have been consumed
				return
			}
			m := reached[0]
			for _, on := range reached {
				if on.Before(m) {
					m = on
				}
			}
			// consume every series currently sitting on the min
			for i, index := range indexes {
				if index < len(series[i]) && series[i][index] == m {
					indexes[i]++
				}
			}
			if !yield(m) {
				return
			}
		}
	}
}

// History stores a chronological series of values, each associated with a
// specific date, with unique sorted dates. The wealth index series uses it
// with float64 values.
type History[T float32 | float64 | string] struct {
	days   []Date
	values []T
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.days) }

// First returns the earliest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) First() (day Date, value T) {
	if len(h.days) == 0 {
		return Date{}, *new(T)
	}
	return h.days[0], h.values[0]
}

// Latest returns the latest date and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, *new(T)
	}
	return h.days[last], h.values[last]
}

type chronological[T float32 | float64 | string] struct{ *History[T] }

func (s chronological[T]) Len() int           { return len(s.days) }
func (s chronological[T]) Less(i, j int) bool { return s.days[i].Before(s.days[j]) }
func (s chronological[T]) Swap(i, j int) {
	s.days[i], s.days[j] = s.days[j], s.days[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}

func (h *History[T]) sort() { sort.Sort(chronological[T]{h}) }

// Append adds a point to the history. An existing value at that date is
// overwritten.
func (h *History[T]) Append(on Date, v T) *History[T] {
	if i := slices.Index(h.days, on); i >= 0 {
		h.values[i] = v
		return h
	}
	h.days, h.values = append(h.days, on), append(h.values, v)
	h.sort()
	return h
}

// Values returns an iterator over all date/value pairs in the history, in
// chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// Get returns the value at 'day' and true, or the zero value and false.
func (h *History[T]) Get(day Date) (T, bool) {
	if i := slices.Index(h.days, day); i >= 0 {
		return h.values[i], true
	}
	return *new(T), false
}

// ValueAsOf returns the value on a given day, or the most recent value
// before it. It returns false when no point exists on or before that day.
func (h *History[T]) ValueAsOf(day Date) (T, bool) {
	i, found := slices.BinarySearchFunc(h.days, day, compareDates)
	if found {
		return h.values[i], true
	}
	if i == 0 {
		return *new(T), false
	}
	return h.values[i-1], true
}

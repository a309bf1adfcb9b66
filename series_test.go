package wealth

import (
	"testing"
	"time"
)

func TestTimeline_Append(t *testing.T) {
	tl := &Timeline{}
	d1, v1 := NewDate(2025, time.July, 1), NO(100)
	d2, v2 := NewDate(2024, time.July, 1), NO(50)

	// Append two marks in reverse order and check the timeline is sorted at
	// every step of the way.

	if tl.Len() != 0 {
		t.Errorf("Timeline.Len() = %v want 0", tl.Len())
	}

	tl.Append(d1, v1)
	if tl.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", tl.Len())
	}

	tl.Append(d2, v2)
	if tl.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", tl.Len())
	}

	if first, _ := tl.First(); first != d2 {
		t.Errorf("First() day = %v want %v", first, d2)
	}
	if last, _ := tl.Latest(); last != d1 {
		t.Errorf("Latest() day = %v want %v", last, d1)
	}

	// same date replaces, the last write wins
	tl.Append(d1, NO(999))
	if tl.Len() != 2 {
		t.Errorf("Append(d1, v).Len() = %v want 2", tl.Len())
	}
	if _, v := tl.Latest(); !v.Equal(NO(999)) {
		t.Errorf("Latest() value = %v want %v", v, NO(999))
	}
}

func TestTimeline_AppendAdd(t *testing.T) {
	tl := &Timeline{}
	d := NewDate(2025, time.July, 1)
	tl.AppendAdd(d, NO(100))
	tl.AppendAdd(d, NO(50))

	if tl.Len() != 1 {
		t.Fatalf("AppendAdd() kept %d marks, want 1", tl.Len())
	}
	if _, v := tl.Latest(); !v.Equal(NO(150)) {
		t.Errorf("AppendAdd() value = %v want %v", v, NO(150))
	}
}

func TestTimeline_ValueAsOf(t *testing.T) {
	tl := &Timeline{}
	tl.Append(MustParse("2025-01-10"), NO(100))
	tl.Append(MustParse("2025-01-20"), NO(200))

	testCases := []struct {
		name   string
		on     string
		want   Money
		wantOK bool
	}{
		{"Before first mark", "2025-01-09", Money{}, false},
		{"On first mark", "2025-01-10", NO(100), true},
		{"Between marks", "2025-01-15", NO(100), true},
		{"On second mark", "2025-01-20", NO(200), true},
		{"After last mark", "2025-02-01", NO(200), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tl.ValueAsOf(MustParse(tc.on))
			if ok != tc.wantOK {
				t.Fatalf("ValueAsOf(%s) ok = %v, want %v", tc.on, ok, tc.wantOK)
			}
			if ok && !got.Equal(tc.want) {
				t.Errorf("ValueAsOf(%s) = %v, want %v", tc.on, got, tc.want)
			}
		})
	}
}

func TestTimeline_FillDaily(t *testing.T) {
	tl := &Timeline{}
	tl.Append(MustParse("2020-01-01"), NO(1000))
	tl.Append(MustParse("2020-02-01"), NO(1500))

	now := MustParse("2020-03-01")
	daily := tl.FillDaily(now)

	// one entry per calendar day from the first mark through now, 2020 is a
	// leap year
	wantLen := 31 + 29 + 1
	if len(daily) != wantLen {
		t.Fatalf("FillDaily() produced %d entries, want %d", len(daily), wantLen)
	}
	if wantLen != now.Sub(MustParse("2020-01-01"))+1 {
		t.Fatalf("test fixture is inconsistent")
	}

	testCases := []struct {
		name string
		on   string
		want Money
	}{
		{"First day", "2020-01-01", NO(1000)},
		{"Held flat through January", "2020-01-31", NO(1000)},
		{"New mark applies", "2020-02-01", NO(1500)},
		{"Held flat to the end", "2020-03-01", NO(1500)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			on := MustParse(tc.on)
			got := daily[on.Sub(MustParse("2020-01-01"))]
			if got.On != on {
				t.Fatalf("entry day = %v, want %v", got.On, on)
			}
			if !got.Value.Equal(tc.want) {
				t.Errorf("value on %s = %v, want %v", tc.on, got.Value, tc.want)
			}
		})
	}
}

func TestTimeline_FillDaily_Empty(t *testing.T) {
	tl := &Timeline{}
	if got := tl.FillDaily(Today()); got != nil {
		t.Errorf("FillDaily() on empty timeline = %v, want nil", got)
	}

	tl.Append(MustParse("2025-06-01"), NO(100))
	if got := tl.FillDaily(MustParse("2025-05-31")); got != nil {
		t.Errorf("FillDaily() before first mark = %v, want nil", got)
	}
}

func TestDailyAsOf(t *testing.T) {
	tl := &Timeline{}
	tl.Append(MustParse("2025-01-10"), NO(100))
	tl.Append(MustParse("2025-01-12"), NO(300))
	series := tl.FillDaily(MustParse("2025-01-14"))

	testCases := []struct {
		name   string
		on     string
		want   Money
		wantOK bool
	}{
		{"Before the series", "2025-01-09", Money{}, false},
		{"First day", "2025-01-10", NO(100), true},
		{"Middle", "2025-01-13", NO(300), true},
		{"Past the end clamps to the last value", "2025-02-01", NO(300), true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := dailyAsOf(series, MustParse(tc.on))
			if ok != tc.wantOK {
				t.Fatalf("dailyAsOf(%s) ok = %v, want %v", tc.on, ok, tc.wantOK)
			}
			if ok && !got.Equal(tc.want) {
				t.Errorf("dailyAsOf(%s) = %v, want %v", tc.on, got, tc.want)
			}
		})
	}
}

func TestMergeDaily(t *testing.T) {
	// two series with different inceptions: the late one contributes
	// nothing before it exists
	a := (&Timeline{}).Append(MustParse("2025-01-01"), NO(100)).FillDaily(MustParse("2025-01-05"))
	b := (&Timeline{}).Append(MustParse("2025-01-03"), NO(10)).FillDaily(MustParse("2025-01-05"))

	merged := mergeDaily(a, b)

	testCases := []struct {
		name string
		on   string
		want Money
	}{
		{"Only the first series exists", "2025-01-01", NO(100)},
		{"Day before the second starts", "2025-01-02", NO(100)},
		{"Both series", "2025-01-03", NO(110)},
		{"Last day", "2025-01-05", NO(110)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := merged.ValueAsOf(MustParse(tc.on))
			if !ok {
				t.Fatalf("ValueAsOf(%s) has no value", tc.on)
			}
			if !got.Equal(tc.want) {
				t.Errorf("merged value on %s = %v, want %v", tc.on, got, tc.want)
			}
		})
	}

	if merged.Len() != 5 {
		t.Errorf("merged.Len() = %d, want 5", merged.Len())
	}
}

func TestHistory_Append(t *testing.T) {
	h := new(History[string])
	d1, v1 := NewDate(2025, 07, 01), "25 Jul 1"
	d2, v2 := NewDate(2024, 07, 01), "24 Jul 1"

	// Test is about appending two values in reverse order and checking that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[0], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[1], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[0], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[1], v2)
	}
}

func TestHistory_ValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(MustParse("2025-01-10"), 1.5)
	h.Append(MustParse("2025-01-20"), 2.5)

	if _, ok := h.ValueAsOf(MustParse("2025-01-09")); ok {
		t.Errorf("ValueAsOf() before first point should have no value")
	}
	if got, ok := h.ValueAsOf(MustParse("2025-01-15")); !ok || got != 1.5 {
		t.Errorf("ValueAsOf() = %v, %v, want 1.5, true", got, ok)
	}
	if got, ok := h.ValueAsOf(MustParse("2025-03-01")); !ok || got != 2.5 {
		t.Errorf("ValueAsOf() = %v, %v, want 2.5, true", got, ok)
	}
}

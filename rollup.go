package wealth

import "time"

// YearSummary rolls the net series up over one calendar year: how the value
// moved, how much of the move was fed in versus earned, and how the year
// tracks against its declared goals.
type YearSummary struct {
	Year  int
	Start Money // previous year's End, zero for the first tracked year
	End   Money // last net value in the year

	Contribution             Money
	TotalGrowth              Money
	TransactionGrowthPercent Percent
	SelfGrowthPercent        Percent
	WIDelta                  float64
	SalaryDelta              Money

	Months []MonthSummary
	Goals  []YearGoalProgress
}

// MonthSummary is the same rollup shape at month granularity. On is the
// snapshot day: the last calendar day of the month, or today for the month
// still in progress.
type MonthSummary struct {
	Month time.Month
	On    Date
	Start Money
	End   Money

	Contribution             Money
	TotalGrowth              Money
	TransactionGrowthPercent Percent
	SelfGrowthPercent        Percent
	WIDelta                  float64
	SalaryDelta              Money

	Expected Money // expected value on that snapshot per the year goal, zero without one
}

// YearGoalProgress is one declared year goal with its expected trajectory
// derived from the year's starting value.
type YearGoalProgress struct {
	Goal            YearGoal
	ExpectedEnd     Money // Start * (1 + percentage/100)
	ExpectedMonthly Money // (ExpectedEnd - Start) / 12
	Progress        Percent
}

// buildYears groups the net daily series and its contributions by calendar
// year and month. Years come out ascending, and every year between the
// first net value and now is present, the series is dense.
func buildYears(net []DailyValue, contributions []Contribution, wi *History[float64], salaries []DailyValue, goals []YearGoal, now Date) []*YearSummary {
	if len(net) == 0 {
		return nil
	}

	goalsByYear := make(map[int][]YearGoal)
	for _, g := range goals {
		goalsByYear[g.Year] = append(goalsByYear[g.Year], g)
	}

	var years []*YearSummary
	prevEnd := Money{}
	var prevDate Date

	first, last := net[0].On.Year(), net[len(net)-1].On.Year()
	for y := first; y <= last; y++ {
		days := yearSlice(net, y)
		if len(days) == 0 {
			continue
		}
		end := days[len(days)-1]

		ys := &YearSummary{
			Year:  y,
			Start: prevEnd,
			End:   end.Value,
		}
		ys.TotalGrowth = ys.End.Sub(ys.Start)
		for _, c := range contributions {
			if c.On.Year() == y {
				ys.Contribution = ys.Contribution.Add(c.Amount)
			}
		}
		ys.TransactionGrowthPercent = ys.Contribution.PercentOf(ys.TotalGrowth)
		ys.SelfGrowthPercent = 100 - ys.TransactionGrowthPercent
		ys.WIDelta = wiDelta(wi, prevDate, end.On)
		ys.SalaryDelta = salaryDelta(salaries, prevDate, end.On)

		for _, g := range goalsByYear[y] {
			expectedEnd := ys.Start.Mul(Q(1).Add(Q(float64(g.Percentage)).Div(Q(100))))
			progress := YearGoalProgress{
				Goal:            g,
				ExpectedEnd:     expectedEnd,
				ExpectedMonthly: expectedEnd.Sub(ys.Start).Div(Q(12)),
				Progress:        ys.TotalGrowth.PercentOf(expectedEnd.Sub(ys.Start)),
			}
			ys.Goals = append(ys.Goals, progress)
		}

		ys.Months = buildMonths(days, contributions, wi, salaries, ys, prevDate, now)

		years = append(years, ys)
		prevEnd, prevDate = ys.End, end.On
	}
	return years
}

// buildMonths selects one snapshot per month inside a year: the last
// calendar day of the month, or today for the running month. When both
// would match, today wins and the month yields a single snapshot.
func buildMonths(days []DailyValue, contributions []Contribution, wi *History[float64], salaries []DailyValue, ys *YearSummary, yearPrevDate Date, now Date) []MonthSummary {
	var months []MonthSummary
	prevEnd, prevDate := ys.Start, yearPrevDate

	var snapshot *DailyValue
	flush := func() {
		if snapshot == nil {
			return
		}
		ms := MonthSummary{
			Month: snapshot.On.Month(),
			On:    snapshot.On,
			Start: prevEnd,
			End:   snapshot.Value,
		}
		ms.TotalGrowth = ms.End.Sub(ms.Start)
		month := Monthly.Range(snapshot.On)
		for _, c := range contributions {
			if month.Contains(c.On) {
				ms.Contribution = ms.Contribution.Add(c.Amount)
			}
		}
		ms.TransactionGrowthPercent = ms.Contribution.PercentOf(ms.TotalGrowth)
		ms.SelfGrowthPercent = 100 - ms.TransactionGrowthPercent
		ms.WIDelta = wiDelta(wi, prevDate, snapshot.On)
		ms.SalaryDelta = salaryDelta(salaries, prevDate, snapshot.On)
		if len(ys.Goals) > 0 {
			ms.Expected = ys.Start.Add(ys.Goals[0].ExpectedMonthly.Mul(Q(int(snapshot.On.Month()))))
		}
		months = append(months, ms)
		prevEnd, prevDate = ms.End, ms.On
		snapshot = nil
	}

	currentMonth := time.Month(0)
	for i := range days {
		dv := days[i]
		if dv.On.Month() != currentMonth {
			flush()
			currentMonth = dv.On.Month()
		}
		if dv.On == now {
			// today preempts the calendar month end
			snapshot = &days[i]
			flush()
			continue
		}
		if dv.On == dv.On.EndOf(Monthly) {
			snapshot = &days[i]
		}
	}
	flush()
	return months
}

// yearSlice returns the dense sub-series belonging to one calendar year.
func yearSlice(net []DailyValue, year int) []DailyValue {
	lo, hi := 0, len(net)
	for lo < hi && net[lo].On.Year() < year {
		lo++
	}
	i := lo
	for i < hi && net[i].On.Year() == year {
		i++
	}
	return net[lo:i]
}

// wiDelta returns the wealth index move between two as-of dates.
func wiDelta(wi *History[float64], from, to Date) float64 {
	end, ok := wi.ValueAsOf(to)
	if !ok {
		return 0
	}
	start, ok := wi.ValueAsOf(from)
	if !ok {
		start = 0
	}
	return end - start
}

// salaryDelta returns the salary move between two as-of dates.
func salaryDelta(salaries []DailyValue, from, to Date) Money {
	end, ok := dailyAsOf(salaries, to)
	if !ok {
		return Money{}
	}
	start, _ := dailyAsOf(salaries, from)
	return end.Sub(start)
}

package wealth

// The wealth index is the single fitness number the whole tool tracks: net
// assets expressed in years of salary, normalized by age. An index of 1.0
// means holding one year of salary per decade of age.

// WealthIndex computes the index for one day:
//
//	(assetValue / (12 * monthlySalary)) / (ageYears / 10)
//
// Any zero operand makes the index zero by convention, there is no
// meaningful ratio against no salary or no age.
func WealthIndex(assetValue, monthlySalary Money, ageYears float64) float64 {
	if assetValue.IsZero() || monthlySalary.IsZero() || ageYears == 0 {
		return 0
	}
	yearsOfSalary := assetValue.AsFloat() / (12 * monthlySalary.AsFloat())
	return yearsOfSalary / (ageYears / 10)
}

// ageYears returns the age in fractional years on a given day.
func ageYears(birth, on Date) float64 {
	if birth.IsZero() {
		return 0
	}
	return float64(on.Sub(birth)) / 365.25
}

// IndexPoint is one day of the wealth index trajectory.
type IndexPoint struct {
	On    Date
	Index float64
}

// WIGoalLine is the straight-line visual target for one declared wealth
// index goal: from today's index to the goal index at the goal age. It is a
// drawing aid, not a computed trajectory.
type WIGoalLine struct {
	Goal WIGoal
	From IndexPoint
	To   IndexPoint
}

// buildWealthIndex joins the net asset series and the salary series on
// shared dates and computes the index for each, using the age on that day.
// Without a birthday, a salary, or net assets there is no index and the
// history comes out empty.
func buildWealthIndex(birth Date, net, salaries []DailyValue) *History[float64] {
	wi := &History[float64]{}
	if birth.IsZero() || len(net) == 0 || len(salaries) == 0 {
		return wi
	}
	// both series are dense, so the salary on a date sits at a fixed offset
	first := salaries[0].On
	for _, dv := range net {
		i := dv.On.Sub(first)
		if i < 0 || i >= len(salaries) {
			continue
		}
		wi.Append(dv.On, WealthIndex(dv.Value, salaries[i].Value, ageYears(birth, dv.On)))
	}
	return wi
}

// buildWIGoals projects each declared goal as a two-point line anchored on
// the current index. Goals need a birthday to place the target date.
func buildWIGoals(goals []WIGoal, birth, now Date, current float64) []WIGoalLine {
	if birth.IsZero() {
		return nil
	}
	lines := make([]WIGoalLine, 0, len(goals))
	for _, g := range goals {
		target := birth.Add(int(g.Age * 365.25))
		lines = append(lines, WIGoalLine{
			Goal: g,
			From: IndexPoint{On: now, Index: current},
			To:   IndexPoint{On: target, Index: g.Index},
		})
	}
	return lines
}

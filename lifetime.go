package wealth

// lifetimeCapMonths bounds the simulation at 50 years. Past that the answer
// is "indefinite", not a longer number.
const lifetimeCapMonths = 600

// Lifetime is the outcome of one money lifetime simulation: how long the
// net assets would last under one declared parameter set, seeded with the
// current salary and net asset value.
type Lifetime struct {
	Params MoneyLifetime

	SeedValue  Money // net asset value the simulation started from
	SeedSalary Money // monthly salary the withdrawal was sized on

	MonthsElapsed int  // months survived before exhaustion, or the cap
	Years         int  // MonthsElapsed split for reporting
	Months        int  // remainder months after Years
	Capped        bool // true when funds outlive the 50-year horizon

	FinalValue     Money // value left when the simulation stopped
	FinalDeduction Money // monthly withdrawal when the simulation stopped
}

// simulateLifetime runs the monthly withdrawal simulation.
//
// Each simulated month withdraws the deduction, grows what remains by one
// month of asset growth, and grows the deduction by one month of inflation:
//
//	value'     = (value - deduction) * (1 + assetGrowth/1200)
//	deduction' = deduction * (1 + inflation/1200)
//
// It stops when the next withdrawal cannot be covered, or at the cap. A
// bounded, deterministic loop, the capped outcome is a result, not an error.
func simulateLifetime(params MoneyLifetime, salary, netValue Money) Lifetime {
	deduction := salary.Mul(Q(float64(params.PercentOfSalary)).Div(Q(100)))
	value := netValue
	growth := Q(1).Add(Q(float64(params.AssetGrowth)).Div(Q(1200)))
	inflation := Q(1).Add(Q(float64(params.Inflation)).Div(Q(1200)))

	months := 0
	capped := false
	for {
		if value.Sub(deduction).IsNegative() {
			break // funds exhausted
		}
		if months >= lifetimeCapMonths {
			capped = true
			break
		}
		value = value.Sub(deduction).Mul(growth)
		deduction = deduction.Mul(inflation)
		months++
	}

	return Lifetime{
		Params:         params,
		SeedValue:      netValue,
		SeedSalary:     salary,
		MonthsElapsed:  months,
		Years:          months / 12,
		Months:         months % 12,
		Capped:         capped,
		FinalValue:     value,
		FinalDeduction: deduction,
	}
}

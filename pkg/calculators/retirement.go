package calculators

import (
	"math"

	"github.com/plutus-labs/finadvisor/pkg/constants"
	"github.com/plutus-labs/finadvisor/pkg/mathutil"
)

// Retirement is the retirement corpus projection and the monthly SIP needed
// to close the corpus gap by the retirement age.
type Retirement struct {
	CurrentAge           int     `json:"currentAge"`
	RetirementAge        int     `json:"retirementAge"`
	YearsToRetirement    int     `json:"yearsToRetirement"`
	CurrentExpenses      float64 `json:"currentExpenses"`
	RetirementNeed       float64 `json:"retirementNeed"`
	InflationRate        float64 `json:"inflationRate"`
	FutureMonthlyExpense float64 `json:"futureMonthlyExpense"`
	FutureAnnualExpense  float64 `json:"futureAnnualExpense"`
	PostRetirementYears  int     `json:"postRetirementYears"`
	ExpectedReturn       float64 `json:"expectedReturn"`
	RealReturn           float64 `json:"realReturn"`
	CorpusNeeded         float64 `json:"corpusNeeded"`
	CurrentInvestmentsFV float64 `json:"currentInvestmentsFV"`
	EPFFV                float64 `json:"epfFV"`
	TotalFV              float64 `json:"totalFV"`
	Gap                  float64 `json:"gap"`
	MonthlySIPNeeded     float64 `json:"monthlySIPNeeded"`
	SIPPctOfIncome       float64 `json:"sipPctOfIncome"`
	Status               string  `json:"status"`
}

// CalculateRetirement projects post-retirement expenses (70% of current
// spending inflated at 6%/yr), prices the corpus with an inflation-adjusted
// annuity over the years to age 85, compounds existing holdings (12%/yr
// market, 8%/yr EPF), and solves the future-value-of-annuity equation for
// the monthly contribution that closes any remaining gap.
func CalculateRetirement(p Profile) Retirement {
	yearsToRetirement := p.YearsToRetirement()
	retirementNeed := p.CurrentExpenses * constants.RetirementExpenseShare

	futureMonthlyExpense := retirementNeed * math.Pow(1+constants.InflationRate, float64(yearsToRetirement))
	futureAnnualExpense := futureMonthlyExpense * constants.MonthsPerYear

	postRetirementYears := constants.LifeExpectancyAge - p.RetirementAge
	realReturn := (constants.ExpectedReturn - constants.InflationRate) / (1 + constants.InflationRate)

	corpusNeeded := futureAnnualExpense * ((1 - math.Pow(1+realReturn, -float64(postRetirementYears))) / realReturn)

	currentInvestmentsFV := p.CurrentInvestments * math.Pow(1+constants.ExpectedReturn, float64(yearsToRetirement))
	epfFV := p.EPFBalance * math.Pow(1+constants.EPFReturn, float64(yearsToRetirement))
	totalFV := currentInvestmentsFV + epfFV

	gap := mathutil.Max(0, corpusNeeded-totalFV)

	monthlyReturn := constants.ExpectedReturn / constants.MonthsPerYear
	months := yearsToRetirement * constants.MonthsPerYear
	var monthlySIPNeeded float64
	if gap > 0 {
		monthlySIPNeeded = (gap * monthlyReturn) / (math.Pow(1+monthlyReturn, float64(months)) - 1)
	}

	sipPctOfIncome := (monthlySIPNeeded / p.MonthlyIncome) * constants.PercentageMultiplier

	status := StatusActionNeeded
	if gap == 0 {
		status = StatusOnTrack
	}

	return Retirement{
		CurrentAge:           p.Age,
		RetirementAge:        p.RetirementAge,
		YearsToRetirement:    yearsToRetirement,
		CurrentExpenses:      p.CurrentExpenses,
		RetirementNeed:       retirementNeed,
		InflationRate:        constants.InflationRate,
		FutureMonthlyExpense: futureMonthlyExpense,
		FutureAnnualExpense:  futureAnnualExpense,
		PostRetirementYears:  postRetirementYears,
		ExpectedReturn:       constants.ExpectedReturn,
		RealReturn:           realReturn,
		CorpusNeeded:         corpusNeeded,
		CurrentInvestmentsFV: currentInvestmentsFV,
		EPFFV:                epfFV,
		TotalFV:              totalFV,
		Gap:                  gap,
		MonthlySIPNeeded:     monthlySIPNeeded,
		SIPPctOfIncome:       sipPctOfIncome,
		Status:               status,
	}
}

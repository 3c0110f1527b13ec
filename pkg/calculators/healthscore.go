package calculators

import (
	"github.com/plutus-labs/finadvisor/pkg/constants"
	"github.com/plutus-labs/finadvisor/pkg/mathutil"
)

// HealthScore is the composite financial health score built from five capped
// component scores under fixed weights (25/20/25/15/15).
type HealthScore struct {
	SavingsRate         float64 `json:"savingsRate"`
	SavingsScore        float64 `json:"savingsScore"`
	EFCompletion        float64 `json:"efCompletion"`
	EFScore             float64 `json:"efScore"`
	TermCoverage        float64 `json:"termCoverage"`
	HealthCoverage      float64 `json:"healthCoverage"`
	TermScore           float64 `json:"termScore"`
	HealthScore         float64 `json:"healthScore"`
	InsuranceScore      float64 `json:"insuranceScore"`
	EMIPct              float64 `json:"emiPct"`
	DebtScore           float64 `json:"debtScore"`
	CurrentInvestments  float64 `json:"currentInvestments"`
	ExpectedInvestments float64 `json:"expectedInvestments"`
	InvestmentScore     float64 `json:"investmentScore"`
	OverallScore        float64 `json:"overallScore"`
	Grade               string  `json:"grade"`
	Rating              string  `json:"rating"`
}

// Health score component weights.
const (
	savingsWeight    = 0.25
	efWeight         = 0.20
	insuranceWeight  = 0.25
	debtWeight       = 0.15
	investmentWeight = 0.15
)

// CalculateHealthScore combines budget, emergency fund, and insurance results
// into the composite score. A 30% savings rate, full emergency fund, full
// insurance cover, no EMI load past 40% of income, and two years of income
// already invested each earn a perfect component score.
func CalculateHealthScore(p Profile, budget BudgetAllocation, ef EmergencyFund, insurance Insurance) HealthScore {
	savingsScore := mathutil.Min(100, (budget.SavingsRate/30)*constants.PercentageMultiplier)

	efScore := mathutil.Min(100, ef.CompletionPct)

	termCoverage := (p.ExistingTermInsurance / insurance.Term.Recommended) * constants.PercentageMultiplier
	healthCoverage := (p.ExistingHealthInsurance / insurance.Health.Recommended) * constants.PercentageMultiplier
	termScore := mathutil.Min(100, termCoverage)
	healthScore := mathutil.Min(100, healthCoverage)
	insuranceScore := (termScore + healthScore) / 2

	emiPct := (p.LoanEMI / p.MonthlyIncome) * constants.PercentageMultiplier
	debtScore := mathutil.Clamp((1-emiPct/40)*constants.PercentageMultiplier, 0, 100)

	expectedInvestments := p.AnnualIncome() * 2
	investmentScore := mathutil.Min(100, (p.CurrentInvestments/expectedInvestments)*constants.PercentageMultiplier)

	overall := savingsScore*savingsWeight +
		efScore*efWeight +
		insuranceScore*insuranceWeight +
		debtScore*debtWeight +
		investmentScore*investmentWeight

	grade := "D"
	rating := "Needs Attention"
	switch {
	case overall >= 80:
		grade = "A"
		rating = StatusExcellent
	case overall >= 60:
		grade = "B"
		rating = "Good Financial Health"
	case overall >= 40:
		grade = "C"
	}

	return HealthScore{
		SavingsRate:         budget.SavingsRate,
		SavingsScore:        savingsScore,
		EFCompletion:        ef.CompletionPct,
		EFScore:             efScore,
		TermCoverage:        termCoverage,
		HealthCoverage:      healthCoverage,
		TermScore:           termScore,
		HealthScore:         healthScore,
		InsuranceScore:      insuranceScore,
		EMIPct:              emiPct,
		DebtScore:           debtScore,
		CurrentInvestments:  p.CurrentInvestments,
		ExpectedInvestments: expectedInvestments,
		InvestmentScore:     investmentScore,
		OverallScore:        overall,
		Grade:               grade,
		Rating:              rating,
	}
}

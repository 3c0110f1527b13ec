package calculators

import "github.com/plutus-labs/finadvisor/pkg/constants"

// BudgetAllocation is the 50/30/20 split of monthly income alongside the
// household's actual savings position.
type BudgetAllocation struct {
	Needs           float64 `json:"needs"`
	Wants           float64 `json:"wants"`
	Savings         float64 `json:"savings"`
	TotalIncome     float64 `json:"totalIncome"`
	CurrentExpenses float64 `json:"currentExpenses"`
	CurrentSavings  float64 `json:"currentSavings"`
	SavingsRate     float64 `json:"savingsRate"`
	Status          string  `json:"status"`
}

// CalculateBudget computes the 50/30/20 income split and the current savings
// rate. SavingsRate goes negative when expenses plus EMI exceed income; it is
// reported as-is, not clamped.
func CalculateBudget(p Profile) BudgetAllocation {
	needs := p.MonthlyIncome * constants.NeedsShare
	wants := p.MonthlyIncome * constants.WantsShare
	savings := p.MonthlyIncome * constants.SavingsShare

	currentExpenses := p.CurrentExpenses + p.LoanEMI
	currentSavings := p.MonthlyIncome - currentExpenses
	savingsRate := (currentSavings / p.MonthlyIncome) * constants.PercentageMultiplier

	status := StatusNeedsImprovement
	if savingsRate >= 30 {
		status = StatusExcellent
	} else if savingsRate >= 20 {
		status = StatusGood
	}

	return BudgetAllocation{
		Needs:           needs,
		Wants:           wants,
		Savings:         savings,
		TotalIncome:     p.MonthlyIncome,
		CurrentExpenses: currentExpenses,
		CurrentSavings:  currentSavings,
		SavingsRate:     savingsRate,
		Status:          status,
	}
}

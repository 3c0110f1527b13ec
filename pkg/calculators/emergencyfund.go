package calculators

import (
	"github.com/plutus-labs/finadvisor/pkg/constants"
	"github.com/plutus-labs/finadvisor/pkg/mathutil"
)

// EmergencyFund holds the emergency fund targets, the gap against existing
// savings, and catch-up contribution plans over 12 and 24 month horizons.
type EmergencyFund struct {
	EssentialExpenses     float64 `json:"essentialExpenses"`
	MinimumTarget         float64 `json:"minimumTarget"`
	RecommendedTarget     float64 `json:"recommendedTarget"`
	ConservativeTarget    float64 `json:"conservativeTarget"`
	Existing              float64 `json:"existing"`
	Gap                   float64 `json:"gap"`
	CompletionPct         float64 `json:"completionPct"`
	MonthlyContribution12 float64 `json:"monthlyContribution12"`
	MonthlyContribution24 float64 `json:"monthlyContribution24"`
	Status                string  `json:"status"`
}

// CalculateEmergencyFund sizes the emergency fund against essential expenses
// (70% of spending plus the full EMI). CompletionPct is unbounded above 100;
// display layers clamp it themselves.
func CalculateEmergencyFund(p Profile) EmergencyFund {
	essential := p.CurrentExpenses*constants.EssentialExpenseShare + p.LoanEMI
	minimum := essential * constants.MinimumFundMonths
	recommended := essential * constants.RecommendedFundMonths
	conservative := essential * constants.ConservativeFundMonths

	gap := mathutil.Max(0, recommended-p.ExistingEmergencyFund)
	completionPct := (p.ExistingEmergencyFund / recommended) * constants.PercentageMultiplier

	status := StatusPriorityAction
	if completionPct >= 100 {
		status = StatusExcellent
	} else if completionPct >= 75 {
		status = StatusGood
	}

	var monthly12, monthly24 float64
	if gap > 0 {
		monthly12 = gap / 12
		monthly24 = gap / constants.EmergencyFundHorizonMonths
	}

	return EmergencyFund{
		EssentialExpenses:     essential,
		MinimumTarget:         minimum,
		RecommendedTarget:     recommended,
		ConservativeTarget:    conservative,
		Existing:              p.ExistingEmergencyFund,
		Gap:                   gap,
		CompletionPct:         completionPct,
		MonthlyContribution12: monthly12,
		MonthlyContribution24: monthly24,
		Status:                status,
	}
}

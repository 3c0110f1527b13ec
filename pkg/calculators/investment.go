package calculators

import (
	"github.com/plutus-labs/finadvisor/pkg/constants"
	"github.com/plutus-labs/finadvisor/pkg/mathutil"
)

// Investment is the monthly SIP recommendation with its equity/debt split.
type Investment struct {
	BaseEquityPct             float64 `json:"baseEquityPct"`
	RiskAdjustment            float64 `json:"riskAdjustment"`
	FinalEquityPct            float64 `json:"finalEquityPct"`
	FinalDebtPct              float64 `json:"finalDebtPct"`
	RecommendedSavings        float64 `json:"recommendedSavings"`
	EmergencyFundContribution float64 `json:"emergencyFundContribution"`
	AvailableForInvestment    float64 `json:"availableForInvestment"`
	MonthlySIP                float64 `json:"monthlySIP"`
	EquityPortion             float64 `json:"equityPortion"`
	DebtPortion               float64 `json:"debtPortion"`
}

// CalculateInvestment derives the equity allocation from age (100 minus age)
// tilted by risk tolerance and clamped to [30, 90]. While an emergency fund
// gap remains, part of the recommended savings is diverted to close it over
// 24 months before the investable SIP is computed.
func CalculateInvestment(p Profile, emergencyFundGap float64) Investment {
	baseEquityPct := float64(100 - p.Age)

	var riskAdjustment float64
	switch p.RiskTolerance {
	case Aggressive:
		riskAdjustment = constants.RiskEquityAdjustment
	case Conservative:
		riskAdjustment = -constants.RiskEquityAdjustment
	}

	finalEquityPct := mathutil.Clamp(baseEquityPct+riskAdjustment, constants.MinEquityPct, constants.MaxEquityPct)
	finalDebtPct := constants.PercentageMultiplier - finalEquityPct

	recommendedSavings := p.MonthlyIncome * constants.SavingsShare

	var efContribution float64
	if emergencyFundGap > 0 {
		efContribution = mathutil.Min(recommendedSavings, emergencyFundGap/constants.EmergencyFundHorizonMonths)
	}
	available := recommendedSavings - efContribution

	monthlySIP := available
	equityPortion := mathutil.ApplyPercentage(monthlySIP, finalEquityPct)
	debtPortion := mathutil.ApplyPercentage(monthlySIP, finalDebtPct)

	return Investment{
		BaseEquityPct:             baseEquityPct,
		RiskAdjustment:            riskAdjustment,
		FinalEquityPct:            finalEquityPct,
		FinalDebtPct:              finalDebtPct,
		RecommendedSavings:        recommendedSavings,
		EmergencyFundContribution: efContribution,
		AvailableForInvestment:    available,
		MonthlySIP:                monthlySIP,
		EquityPortion:             equityPortion,
		DebtPortion:               debtPortion,
	}
}

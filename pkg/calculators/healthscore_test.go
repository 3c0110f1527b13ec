package calculators

import (
	"math"
	"testing"
)

func scoreFixture(p Profile) HealthScore {
	budget := CalculateBudget(p)
	ef := CalculateEmergencyFund(p)
	insurance := CalculateInsurance(p)
	return CalculateHealthScore(p, budget, ef, insurance)
}

func TestHealthScoreWeightedSum(t *testing.T) {
	p := Profile{
		Age:                     30,
		MonthlyIncome:           100000,
		CityTier:                Tier1,
		Dependents:              1,
		RiskTolerance:           Moderate,
		CurrentExpenses:         70000,
		ExistingEmergencyFund:   300000,
		ExistingTermInsurance:   5000000,
		ExistingHealthInsurance: 1000000,
		LoanEMI:                 15000,
		CurrentInvestments:      800000,
		RetirementAge:           60,
	}
	result := scoreFixture(p)

	expected := result.SavingsScore*0.25 +
		result.EFScore*0.20 +
		result.InsuranceScore*0.25 +
		result.DebtScore*0.15 +
		result.InvestmentScore*0.15
	if math.Abs(result.OverallScore-expected) > 1e-9 {
		t.Errorf("OverallScore = %v, expected weighted sum %v", result.OverallScore, expected)
	}
	if result.OverallScore < 0 || result.OverallScore > 100 {
		t.Errorf("OverallScore = %v outside [0, 100]", result.OverallScore)
	}
}

func TestHealthScoreComponentsCapped(t *testing.T) {
	// Everything oversized: each component must cap at 100.
	p := Profile{
		Age:                     30,
		MonthlyIncome:           100000,
		CityTier:                Tier3,
		RiskTolerance:           Moderate,
		CurrentExpenses:         10000,
		ExistingEmergencyFund:   10000000,
		ExistingTermInsurance:   100000000,
		ExistingHealthInsurance: 10000000,
		LoanEMI:                 0,
		CurrentInvestments:      100000000,
		RetirementAge:           60,
	}
	result := scoreFixture(p)

	for name, score := range map[string]float64{
		"SavingsScore":    result.SavingsScore,
		"EFScore":         result.EFScore,
		"InsuranceScore":  result.InsuranceScore,
		"DebtScore":       result.DebtScore,
		"InvestmentScore": result.InvestmentScore,
	} {
		if score < 0 || score > 100 {
			t.Errorf("%s = %v outside [0, 100]", name, score)
		}
	}
	if result.OverallScore != 100 {
		t.Errorf("OverallScore = %v, expected 100 for a perfect profile", result.OverallScore)
	}
	if result.Grade != "A" || result.Rating != StatusExcellent {
		t.Errorf("Grade/Rating = %q/%q, expected A/Excellent", result.Grade, result.Rating)
	}
}

func TestHealthScoreDebtComponent(t *testing.T) {
	tests := []struct {
		name     string
		emi      float64
		expected float64
	}{
		{"No EMI is perfect", 0, 100},
		{"Half the ceiling", 20000, 50},
		{"At the 40% ceiling", 40000, 0},
		{"Past the ceiling floors at zero", 60000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Profile{
				Age:             30,
				MonthlyIncome:   100000,
				CityTier:        Tier1,
				RiskTolerance:   Moderate,
				CurrentExpenses: 30000,
				LoanEMI:         tt.emi,
				RetirementAge:   60,
			}
			result := scoreFixture(p)
			if math.Abs(result.DebtScore-tt.expected) > 0.01 {
				t.Errorf("DebtScore = %v, expected %v", result.DebtScore, tt.expected)
			}
		})
	}
}

func TestHealthScoreGrades(t *testing.T) {
	// A profile with nothing going for it lands in the bottom band.
	weak := scoreFixture(Profile{
		Age:             30,
		MonthlyIncome:   100000,
		CityTier:        Tier1,
		RiskTolerance:   Moderate,
		CurrentExpenses: 100000,
		LoanEMI:         50000,
		RetirementAge:   60,
	})
	if weak.Grade != "D" {
		t.Errorf("weak profile graded %q (score %v), expected D", weak.Grade, weak.OverallScore)
	}
	if weak.Rating != "Needs Attention" {
		t.Errorf("weak profile rating = %q, expected Needs Attention", weak.Rating)
	}

	// A strong but imperfect profile lands in the B band with its rating.
	// Scores ~60.5: savings 83.3, EF 31.7, insurance 48.1, debt 100,
	// investment 41.7 under the 25/20/25/15/15 weights.
	solid := scoreFixture(Profile{
		Age:                     30,
		MonthlyIncome:           100000,
		CityTier:                Tier1,
		Dependents:              1,
		RiskTolerance:           Moderate,
		CurrentExpenses:         75000,
		ExistingEmergencyFund:   150000,
		ExistingTermInsurance:   10000000,
		ExistingHealthInsurance: 1000000,
		CurrentInvestments:      1000000,
		RetirementAge:           60,
	})
	if solid.Grade != "B" {
		t.Errorf("solid profile graded %q (score %v), expected B", solid.Grade, solid.OverallScore)
	}
	if solid.Rating != "Good Financial Health" {
		t.Errorf("solid profile rating = %q, expected Good Financial Health", solid.Rating)
	}
}

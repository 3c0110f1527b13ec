package calculators

import (
	"math"
	"testing"
)

func TestCalculateEmergencyFund(t *testing.T) {
	tests := []struct {
		name                string
		profile             Profile
		expectedEssential   float64
		expectedRecommended float64
		expectedGap         float64
		expectedStatus      string
	}{
		{
			name: "Reference household with no fund",
			profile: Profile{
				MonthlyIncome:   100000,
				CurrentExpenses: 70000,
				LoanEMI:         15000,
			},
			expectedEssential:   64000, // 0.7*70000 + 15000
			expectedRecommended: 576000,
			expectedGap:         576000,
			expectedStatus:      StatusPriorityAction,
		},
		{
			name: "Partially funded",
			profile: Profile{
				MonthlyIncome:         100000,
				CurrentExpenses:       70000,
				LoanEMI:               15000,
				ExistingEmergencyFund: 450000,
			},
			expectedEssential:   64000,
			expectedRecommended: 576000,
			expectedGap:         126000,
			expectedStatus:      StatusGood, // 78.1% complete
		},
		{
			name: "Fully funded",
			profile: Profile{
				MonthlyIncome:         100000,
				CurrentExpenses:       70000,
				LoanEMI:               15000,
				ExistingEmergencyFund: 600000,
			},
			expectedEssential:   64000,
			expectedRecommended: 576000,
			expectedGap:         0,
			expectedStatus:      StatusExcellent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateEmergencyFund(tt.profile)

			if math.Abs(result.EssentialExpenses-tt.expectedEssential) > 0.01 {
				t.Errorf("EssentialExpenses = %.2f, expected %.2f", result.EssentialExpenses, tt.expectedEssential)
			}
			if math.Abs(result.RecommendedTarget-tt.expectedRecommended) > 0.01 {
				t.Errorf("RecommendedTarget = %.2f, expected %.2f", result.RecommendedTarget, tt.expectedRecommended)
			}
			if math.Abs(result.Gap-tt.expectedGap) > 0.01 {
				t.Errorf("Gap = %.2f, expected %.2f", result.Gap, tt.expectedGap)
			}
			if result.Status != tt.expectedStatus {
				t.Errorf("Status = %q, expected %q", result.Status, tt.expectedStatus)
			}
		})
	}
}

func TestEmergencyFundTargetLadder(t *testing.T) {
	result := CalculateEmergencyFund(Profile{CurrentExpenses: 50000, LoanEMI: 10000})
	essential := 0.7*50000 + 10000.0

	if math.Abs(result.MinimumTarget-essential*6) > 0.01 {
		t.Errorf("MinimumTarget = %.2f, expected %.2f", result.MinimumTarget, essential*6)
	}
	if math.Abs(result.RecommendedTarget-essential*9) > 0.01 {
		t.Errorf("RecommendedTarget = %.2f, expected %.2f", result.RecommendedTarget, essential*9)
	}
	if math.Abs(result.ConservativeTarget-essential*12) > 0.01 {
		t.Errorf("ConservativeTarget = %.2f, expected %.2f", result.ConservativeTarget, essential*12)
	}
}

func TestEmergencyFundGapNeverNegative(t *testing.T) {
	funds := []float64{0, 100000, 576000, 576001, 2000000}
	for _, existing := range funds {
		result := CalculateEmergencyFund(Profile{
			CurrentExpenses:       70000,
			LoanEMI:               15000,
			ExistingEmergencyFund: existing,
		})
		if result.Gap < 0 {
			t.Errorf("Gap = %.2f for existing %.2f, expected >= 0", result.Gap, existing)
		}
		if existing >= result.RecommendedTarget && result.Gap != 0 {
			t.Errorf("Gap = %.2f with existing %.2f >= target %.2f, expected 0",
				result.Gap, existing, result.RecommendedTarget)
		}
	}
}

func TestEmergencyFundContributionPlans(t *testing.T) {
	result := CalculateEmergencyFund(Profile{
		CurrentExpenses: 70000,
		LoanEMI:         15000,
	})
	if math.Abs(result.MonthlyContribution12-result.Gap/12) > 0.01 {
		t.Errorf("MonthlyContribution12 = %.2f, expected %.2f", result.MonthlyContribution12, result.Gap/12)
	}
	if math.Abs(result.MonthlyContribution24-result.Gap/24) > 0.01 {
		t.Errorf("MonthlyContribution24 = %.2f, expected %.2f", result.MonthlyContribution24, result.Gap/24)
	}

	funded := CalculateEmergencyFund(Profile{
		CurrentExpenses:       70000,
		LoanEMI:               15000,
		ExistingEmergencyFund: 1000000,
	})
	if funded.MonthlyContribution12 != 0 || funded.MonthlyContribution24 != 0 {
		t.Errorf("contribution plans should be zero when no gap remains")
	}
	if funded.CompletionPct <= 100 {
		t.Errorf("CompletionPct = %.2f, expected above 100 (unbounded)", funded.CompletionPct)
	}
}

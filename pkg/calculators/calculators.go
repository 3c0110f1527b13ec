// Package calculators implements the pure financial planning calculations:
// budget split, emergency fund targets, insurance cover gaps, investment
// allocation, retirement corpus, and the composite health score.
//
// Every function is a deterministic, side-effect-free transformation of its
// inputs. None of them perform I/O, hold state, or return errors; degenerate
// inputs (zero income, retirement age at or below current age) propagate as
// non-finite or negative values and are expected to be rejected by the
// caller's input validation beforehand.
package calculators

// CityTier classifies the household's city of residence.
type CityTier string

// City tiers.
const (
	Tier1 CityTier = "Tier 1"
	Tier2 CityTier = "Tier 2"
	Tier3 CityTier = "Tier 3"
)

// RiskTolerance classifies the investor's appetite for equity risk.
type RiskTolerance string

// Risk tolerance levels.
const (
	Conservative RiskTolerance = "Conservative"
	Moderate     RiskTolerance = "Moderate"
	Aggressive   RiskTolerance = "Aggressive"
)

// Profile holds one household's planning inputs. It is treated as immutable
// for the duration of a calculation run.
type Profile struct {
	Name                    string        `json:"name"`
	Age                     int           `json:"age"`
	MonthlyIncome           float64       `json:"monthlyIncome"`
	CityTier                CityTier      `json:"cityTier"`
	Dependents              int           `json:"dependents"`
	MaritalStatus           string        `json:"maritalStatus"`
	RiskTolerance           RiskTolerance `json:"riskTolerance"`
	CurrentExpenses         float64       `json:"currentExpenses"`
	ExistingEmergencyFund   float64       `json:"existingEmergencyFund"`
	ExistingTermInsurance   float64       `json:"existingTermInsurance"`
	ExistingHealthInsurance float64       `json:"existingHealthInsurance"`
	LoanEMI                 float64       `json:"loanEMI"`
	CurrentInvestments      float64       `json:"currentInvestments"`
	RetirementAge           int           `json:"retirementAge"`
	EPFBalance              float64       `json:"epfBalance"`
}

// AnnualIncome returns the profile's gross annual income.
func (p Profile) AnnualIncome() float64 {
	return p.MonthlyIncome * 12
}

// YearsToRetirement returns the remaining working years.
func (p Profile) YearsToRetirement() int {
	return p.RetirementAge - p.Age
}

// Status labels shared across calculator results.
const (
	StatusExcellent        = "Excellent"
	StatusGood             = "Good"
	StatusNeedsImprovement = "Needs Improvement"
	StatusPriorityAction   = "Priority Action Needed"
	StatusAdequate         = "Adequate"
	StatusIncreaseCover    = "Increase Cover"
	StatusOnTrack          = "On Track"
	StatusActionNeeded     = "Action Needed"
)

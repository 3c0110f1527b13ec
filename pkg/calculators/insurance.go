package calculators

import (
	"github.com/plutus-labs/finadvisor/pkg/constants"
	"github.com/plutus-labs/finadvisor/pkg/mathutil"
)

// TermInsuranceNeed is the term life cover recommendation. Recommended is the
// average of the income-multiple method and the human-life-value method.
type TermInsuranceNeed struct {
	Multiplier        float64 `json:"multiplier"`
	AnnualIncome      float64 `json:"annualIncome"`
	Method1           float64 `json:"method1"`
	YearsToRetirement int     `json:"yearsToRetirement"`
	Method2           float64 `json:"method2"`
	Recommended       float64 `json:"recommended"`
	Existing          float64 `json:"existing"`
	Gap               float64 `json:"gap"`
	AnnualPremium     float64 `json:"annualPremium"`
	Status            string  `json:"status"`
}

// HealthInsuranceNeed is the health cover recommendation. The city-tier
// multiplier caps how many units of base cover apply regardless of family
// size.
type HealthInsuranceNeed struct {
	BaseCover     float64 `json:"baseCover"`
	FamilySize    int     `json:"familySize"`
	Multiplier    float64 `json:"multiplier"`
	Recommended   float64 `json:"recommended"`
	Existing      float64 `json:"existing"`
	Gap           float64 `json:"gap"`
	AnnualPremium float64 `json:"annualPremium"`
	Status        string  `json:"status"`
}

// Insurance combines the term and health recommendations with their total
// premium impact on the monthly budget.
type Insurance struct {
	Term               TermInsuranceNeed   `json:"term"`
	Health             HealthInsuranceNeed `json:"health"`
	TotalAnnualPremium float64             `json:"totalAnnualPremium"`
	MonthlyImpact      float64             `json:"monthlyImpact"`
	PctOfIncome        float64             `json:"pctOfIncome"`
}

// termMultiplier returns the income multiple for term cover. Bands are
// inclusive below, exclusive above.
func termMultiplier(age int) float64 {
	switch {
	case age >= 40:
		return 12
	case age >= 35:
		return 15
	case age >= 30:
		return 18
	default:
		return 20
	}
}

// healthCoverBand returns the base cover and family-size cap for a city tier.
// Unrecognized tiers fall back to Tier 1.
func healthCoverBand(tier CityTier) (baseCover, multiplier float64) {
	switch tier {
	case Tier2:
		return 750000, 2.0
	case Tier3:
		return 500000, 1.5
	default:
		return 1000000, 2.5
	}
}

// CalculateInsurance sizes term and health cover against the profile and
// reports the gap to existing cover. Premiums are flat-rate approximations,
// not actuarial quotes.
func CalculateInsurance(p Profile) Insurance {
	multiplier := termMultiplier(p.Age)
	annualIncome := p.AnnualIncome()
	method1 := annualIncome * multiplier

	yearsToRetirement := p.YearsToRetirement()
	method2 := annualIncome * float64(yearsToRetirement) * constants.HumanLifeValueFactor

	termRecommended := (method1 + method2) / 2
	termGap := mathutil.Max(0, termRecommended-p.ExistingTermInsurance)
	termPremium := termRecommended / 1000 * constants.TermPremiumRatePerThousand

	termStatus := StatusIncreaseCover
	if termGap == 0 {
		termStatus = StatusAdequate
	}

	baseCover, healthMultiplier := healthCoverBand(p.CityTier)
	familySize := p.Dependents + 1
	healthRecommended := baseCover * mathutil.Min(float64(familySize), healthMultiplier)
	healthGap := mathutil.Max(0, healthRecommended-p.ExistingHealthInsurance)
	healthPremium := healthRecommended * constants.HealthPremiumRate

	healthStatus := StatusIncreaseCover
	if healthGap == 0 {
		healthStatus = StatusAdequate
	}

	totalPremium := termPremium + healthPremium
	monthlyImpact := totalPremium / constants.MonthsPerYear
	pctOfIncome := (monthlyImpact / p.MonthlyIncome) * constants.PercentageMultiplier

	return Insurance{
		Term: TermInsuranceNeed{
			Multiplier:        multiplier,
			AnnualIncome:      annualIncome,
			Method1:           method1,
			YearsToRetirement: yearsToRetirement,
			Method2:           method2,
			Recommended:       termRecommended,
			Existing:          p.ExistingTermInsurance,
			Gap:               termGap,
			AnnualPremium:     termPremium,
			Status:            termStatus,
		},
		Health: HealthInsuranceNeed{
			BaseCover:     baseCover,
			FamilySize:    familySize,
			Multiplier:    healthMultiplier,
			Recommended:   healthRecommended,
			Existing:      p.ExistingHealthInsurance,
			Gap:           healthGap,
			AnnualPremium: healthPremium,
			Status:        healthStatus,
		},
		TotalAnnualPremium: totalPremium,
		MonthlyImpact:      monthlyImpact,
		PctOfIncome:        pctOfIncome,
	}
}

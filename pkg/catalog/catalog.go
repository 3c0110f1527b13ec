// Package catalog defines the read-only product catalog consumed by the
// selector and includes functions for loading it from versioned JSON
// documents. The rest of the application never mutates a loaded catalog.
package catalog

// Fund categories recognized by the selector.
const (
	CategoryLargeCap      = "Large Cap"
	CategoryMidCap        = "Mid Cap"
	CategorySmallCap      = "Small Cap"
	CategoryFlexiCap      = "Flexi Cap"
	CategoryELSS          = "ELSS"
	CategoryLiquid        = "Liquid"
	CategoryOvernight     = "Overnight"
	CategoryShortDuration = "Short Duration"
	CategoryCorporateBond = "Corporate Bond"
	CategoryGilt          = "Gilt"
)

// FD rating bands recognized by the selector.
const (
	RatingGovernment = "Government"
	RatingAAA        = "AAA"
	RatingAAPlus     = "AA+"
)

// MutualFund describes one mutual fund scheme in the catalog.
type MutualFund struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	AMC          string  `json:"amc"`
	Category     string  `json:"category"`
	PlanType     string  `json:"plan_type"`
	AUMCr        float64 `json:"aum_cr"`
	ExpenseRatio float64 `json:"expense_ratio"`
	ExitLoad     string  `json:"exit_load"`
	MinSIP       float64 `json:"min_sip"`
	Returns1Y    float64 `json:"returns_1y,omitempty"`
	Returns3Y    float64 `json:"returns_3y,omitempty"`
	Returns5Y    float64 `json:"returns_5y,omitempty"`
	RiskBand     string  `json:"risk_band"`
	Benchmark    string  `json:"benchmark"`
}

// FDRate describes one fixed-deposit offering.
type FDRate struct {
	ID                    string  `json:"id"`
	Institution           string  `json:"institution"`
	RatingBand            string  `json:"rating_band"`
	TenureMinMonths       int     `json:"tenure_min_m"`
	TenureMaxMonths       int     `json:"tenure_max_m"`
	RateGeneral           float64 `json:"rate_general"`
	RateSenior            float64 `json:"rate_senior"`
	Compounding           string  `json:"compounding"`
	PrematurePenaltyNotes string  `json:"premature_penalty_notes"`
	MinAmount             float64 `json:"min_amount"`
}

// TermInsurance describes one term life insurance product.
type TermInsurance struct {
	ID                    string   `json:"id"`
	Insurer               string   `json:"insurer"`
	Product               string   `json:"product"`
	ClaimSettlementRatio  float64  `json:"claim_settlement_ratio"`
	SolvencyRatio         float64  `json:"solvency_ratio"`
	MinSumInsured         float64  `json:"min_sum_insured"`
	MaxSumInsured         float64  `json:"max_sum_insured"`
	SamplePremiumAge301Cr float64  `json:"sample_premium_age_30_1cr"`
	Riders                []string `json:"riders"`
}

// HealthInsurance describes one health insurance plan.
type HealthInsurance struct {
	ID                       string    `json:"id"`
	Insurer                  string    `json:"insurer"`
	Plan                     string    `json:"plan"`
	SumInsuredBands          []float64 `json:"sum_insured_bands"`
	RoomRules                string    `json:"room_rules"`
	Copay                    string    `json:"copay"`
	WaitingPeriods           string    `json:"waiting_periods"`
	Restoration              bool      `json:"restoration"`
	NoClaimBonus             string    `json:"no_claim_bonus"`
	PortabilityNotes         string    `json:"portability_notes"`
	SamplePremiumFamilyFloat float64   `json:"sample_premium_family_float"`
}

// Document is one versioned product catalog snapshot. AsOf is opaque
// passthrough metadata for display and takes no part in any computation.
type Document struct {
	DataVersion     string            `json:"data_version"`
	AsOf            string            `json:"as_of"`
	MutualFunds     []MutualFund      `json:"mutual_funds"`
	FDRates         []FDRate          `json:"fd_rates"`
	TermInsurance   []TermInsurance   `json:"term_insurance"`
	HealthInsurance []HealthInsurance `json:"health_insurance"`
}

// Package constants provides shared constants for the finadvisor application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 paisa)
	CurrencyTolerance = 0.01
)

// Budget model constants (50/30/20 rule)
const (
	// NeedsShare is the share of income allocated to needs
	NeedsShare = 0.50

	// WantsShare is the share of income allocated to wants
	WantsShare = 0.30

	// SavingsShare is the share of income allocated to savings
	SavingsShare = 0.20
)

// Emergency fund model constants
const (
	// EssentialExpenseShare is the portion of expenses considered essential
	EssentialExpenseShare = 0.70

	// MinimumFundMonths is the minimum emergency fund target in months
	MinimumFundMonths = 6

	// RecommendedFundMonths is the recommended emergency fund target in months
	RecommendedFundMonths = 9

	// ConservativeFundMonths is the conservative emergency fund target in months
	ConservativeFundMonths = 12
)

// Insurance model constants
const (
	// HumanLifeValueFactor scales the income-replacement method for term cover
	HumanLifeValueFactor = 0.6

	// TermPremiumRatePerThousand is the flat annual premium per 1000 of term cover
	TermPremiumRatePerThousand = 0.5

	// HealthPremiumRate is the flat annual premium as a fraction of health cover
	HealthPremiumRate = 0.015
)

// Investment model constants
const (
	// MinEquityPct is the lower clamp on the equity allocation percentage
	MinEquityPct = 30.0

	// MaxEquityPct is the upper clamp on the equity allocation percentage
	MaxEquityPct = 90.0

	// RiskEquityAdjustment is the equity tilt applied for risk tolerance
	RiskEquityAdjustment = 10.0

	// EmergencyFundHorizonMonths spreads emergency fund catch-up contributions
	EmergencyFundHorizonMonths = 24
)

// Retirement model constants
const (
	// InflationRate is the assumed annual inflation rate
	InflationRate = 0.06

	// ExpectedReturn is the assumed annual return on market investments
	ExpectedReturn = 0.12

	// EPFReturn is the assumed annual return on EPF balances
	EPFReturn = 0.08

	// RetirementExpenseShare is the share of current expenses needed in retirement
	RetirementExpenseShare = 0.70

	// LifeExpectancyAge is the planning horizon for post-retirement years
	LifeExpectancyAge = 85
)

// Product selection constants
const (
	// ShortlistSize caps insurance shortlists
	ShortlistSize = 3

	// CoreExpenseRatioCap is the expense ratio ceiling for core index funds
	CoreExpenseRatioCap = 0.2

	// CSRTieWindow is the claim-settlement-ratio window treated as a tie, in
	// percentage points
	CSRTieWindow = 0.5

	// ShortHorizonMonths is the horizon at or below which parking prefers
	// overnight funds over liquid funds
	ShortHorizonMonths = 6

	// ParkingMaxTenureMonths is the maximum minimum-tenure for parking FDs
	ParkingMaxTenureMonths = 12
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default profile configuration file name
	DefaultConfigFile = "profile.yaml"

	// DefaultProductsFile is the default product catalog file name
	DefaultProductsFile = "products.json"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxRequestSizeBytes int64 = 256 * 1024
)

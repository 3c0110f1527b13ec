// Package config defines the data structures related to configuration and
// includes functions for loading and validating the planning profile.
package config

import (
	"fmt"
	"strings"

	"github.com/plutus-labs/finadvisor/pkg/calculators"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for finadvisor.
type Configuration struct {
	Profile Profile
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// Profile holds the household planning inputs as written in the config file.
// Enum-like fields stay strings here; Normalize maps them onto the
// calculator types.
type Profile struct {
	Name                    string
	Age                     int
	MonthlyIncome           float64
	CityTier                string
	Dependents              int
	MaritalStatus           string
	RiskTolerance           string
	CurrentExpenses         float64
	ExistingEmergencyFund   float64
	ExistingTermInsurance   float64
	ExistingHealthInsurance float64
	LoanEMI                 float64
	CurrentInvestments      float64
	RetirementAge           int
	EPFBalance              float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Validate checks the profile for inputs the calculators cannot meaningfully
// process. Hard failures come back as the error; soft issues come back as
// warnings for the caller to surface.
func (p *Profile) Validate() ([]string, error) {
	if p.MonthlyIncome <= 0 {
		return nil, fmt.Errorf("monthlyIncome must be positive, got %.2f", p.MonthlyIncome)
	}
	if p.Age <= 0 {
		return nil, fmt.Errorf("age must be positive, got %d", p.Age)
	}
	if p.RetirementAge <= p.Age {
		return nil, fmt.Errorf("retirementAge (%d) must be greater than age (%d)", p.RetirementAge, p.Age)
	}
	for name, value := range map[string]float64{
		"currentExpenses":         p.CurrentExpenses,
		"existingEmergencyFund":   p.ExistingEmergencyFund,
		"existingTermInsurance":   p.ExistingTermInsurance,
		"existingHealthInsurance": p.ExistingHealthInsurance,
		"loanEMI":                 p.LoanEMI,
		"currentInvestments":      p.CurrentInvestments,
		"epfBalance":              p.EPFBalance,
	} {
		if value < 0 {
			return nil, fmt.Errorf("%s must not be negative, got %.2f", name, value)
		}
	}

	var warnings []string
	if p.CurrentExpenses+p.LoanEMI > p.MonthlyIncome {
		warnings = append(warnings, fmt.Sprintf("expenses plus EMI (%.2f) exceed monthly income (%.2f); savings rate will be negative",
			p.CurrentExpenses+p.LoanEMI, p.MonthlyIncome))
	}
	if _, ok := parseCityTier(p.CityTier); !ok {
		warnings = append(warnings, fmt.Sprintf("unrecognized cityTier %q; assuming Tier 1", p.CityTier))
	}
	if _, ok := parseRiskTolerance(p.RiskTolerance); !ok {
		warnings = append(warnings, fmt.Sprintf("unrecognized riskTolerance %q; assuming Moderate", p.RiskTolerance))
	}
	if p.RetirementAge > 85 {
		warnings = append(warnings, fmt.Sprintf("retirementAge %d is beyond the planning horizon of 85", p.RetirementAge))
	}
	return warnings, nil
}

// Normalize converts the raw profile into the calculator input type,
// applying enum defaults where the config is blank or unrecognized.
func (p *Profile) Normalize() calculators.Profile {
	tier, _ := parseCityTier(p.CityTier)
	risk, _ := parseRiskTolerance(p.RiskTolerance)

	return calculators.Profile{
		Name:                    p.Name,
		Age:                     p.Age,
		MonthlyIncome:           p.MonthlyIncome,
		CityTier:                tier,
		Dependents:              p.Dependents,
		MaritalStatus:           p.MaritalStatus,
		RiskTolerance:           risk,
		CurrentExpenses:         p.CurrentExpenses,
		ExistingEmergencyFund:   p.ExistingEmergencyFund,
		ExistingTermInsurance:   p.ExistingTermInsurance,
		ExistingHealthInsurance: p.ExistingHealthInsurance,
		LoanEMI:                 p.LoanEMI,
		CurrentInvestments:      p.CurrentInvestments,
		RetirementAge:           p.RetirementAge,
		EPFBalance:              p.EPFBalance,
	}
}

func parseCityTier(raw string) (calculators.CityTier, bool) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "") {
	case "tier1", "1":
		return calculators.Tier1, true
	case "tier2", "2":
		return calculators.Tier2, true
	case "tier3", "3":
		return calculators.Tier3, true
	default:
		return calculators.Tier1, false
	}
}

func parseRiskTolerance(raw string) (calculators.RiskTolerance, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "conservative":
		return calculators.Conservative, true
	case "moderate":
		return calculators.Moderate, true
	case "aggressive":
		return calculators.Aggressive, true
	default:
		return calculators.Moderate, false
	}
}

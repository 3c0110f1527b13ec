// Package planner runs the calculators in dependency order and feeds their
// outputs into the product selectors, assembling one complete Plan.
package planner

import (
	"github.com/plutus-labs/finadvisor/pkg/calculators"
	"github.com/plutus-labs/finadvisor/pkg/catalog"
	"github.com/plutus-labs/finadvisor/pkg/selector"
	"go.uber.org/zap"
)

// Plan is the full snapshot recommendation for one profile against one
// catalog snapshot.
type Plan struct {
	Profile       calculators.Profile          `json:"profile"`
	Budget        calculators.BudgetAllocation `json:"budget"`
	EmergencyFund calculators.EmergencyFund    `json:"emergencyFund"`
	Insurance     calculators.Insurance        `json:"insurance"`
	Investment    calculators.Investment       `json:"investment"`
	Retirement    calculators.Retirement       `json:"retirement"`
	HealthScore   calculators.HealthScore      `json:"healthScore"`

	SIPBasket       []selector.SuggestedSIP     `json:"sipBasket"`
	Parking         []selector.SuggestedParking `json:"parking"`
	TermShortlist   []selector.SuggestedTerm    `json:"termShortlist"`
	HealthShortlist []selector.SuggestedHealth  `json:"healthShortlist"`

	// Catalog snapshot metadata, passed through for display only.
	CatalogVersion string `json:"catalogVersion,omitempty"`
	CatalogAsOf    string `json:"catalogAsOf,omitempty"`
}

// parkingHorizonMonths is the emergency fund build-up horizon handed to the
// parking selector.
const parkingHorizonMonths = 12

// BuildPlan computes every calculator result in dependency order (Investment
// needs the emergency fund gap; HealthScore needs Budget, EmergencyFund, and
// Insurance) and then shortlists products against the catalog. A nil catalog
// yields a plan with empty shortlists; it is never an error.
func BuildPlan(logger *zap.Logger, profile calculators.Profile, products *catalog.Document) Plan {
	if logger == nil {
		logger = zap.NewNop()
	}

	budget := calculators.CalculateBudget(profile)
	ef := calculators.CalculateEmergencyFund(profile)
	insurance := calculators.CalculateInsurance(profile)
	investment := calculators.CalculateInvestment(profile, ef.Gap)
	retirement := calculators.CalculateRetirement(profile)
	healthScore := calculators.CalculateHealthScore(profile, budget, ef, insurance)

	plan := Plan{
		Profile:       profile,
		Budget:        budget,
		EmergencyFund: ef,
		Insurance:     insurance,
		Investment:    investment,
		Retirement:    retirement,
		HealthScore:   healthScore,
	}

	if products == nil {
		logger.Debug("no product catalog supplied, skipping selection",
			zap.String("op", "planner.BuildPlan"),
		)
		return plan
	}

	plan.CatalogVersion = products.DataVersion
	plan.CatalogAsOf = products.AsOf

	plan.SIPBasket = selector.SIPBasket(
		products.MutualFunds,
		investment.FinalEquityPct,
		investment.FinalDebtPct,
		profile.RiskTolerance,
		investment.MonthlySIP,
	)
	plan.Parking = selector.ParkingOptions(products.MutualFunds, products.FDRates, parkingHorizonMonths, ef.Gap)
	plan.TermShortlist = selector.TermPolicies(products.TermInsurance, insurance.Term.Gap)
	plan.HealthShortlist = selector.HealthPolicies(products.HealthInsurance, insurance.Health.Gap)

	logger.Debug("plan assembled",
		zap.String("op", "planner.BuildPlan"),
		zap.Float64("overallScore", healthScore.OverallScore),
		zap.Int("sipBasket", len(plan.SIPBasket)),
		zap.Int("parking", len(plan.Parking)),
		zap.Int("termShortlist", len(plan.TermShortlist)),
		zap.Int("healthShortlist", len(plan.HealthShortlist)),
	)

	return plan
}

package integration

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/plutus-labs/finadvisor/internal/config"
	"github.com/plutus-labs/finadvisor/internal/planner"
	"github.com/plutus-labs/finadvisor/pkg/catalog"
	"github.com/plutus-labs/finadvisor/pkg/output"
	"go.uber.org/zap"
)

// TestPlanFromExampleFiles runs the whole pipeline the way main() does,
// from the example profile and catalog shipped at the repository root.
func TestPlanFromExampleFiles(t *testing.T) {
	logger := zap.NewNop()

	conf, err := config.LoadConfiguration("../../profile.yaml.example")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	warnings, err := conf.Profile.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("example profile produced warnings: %v", warnings)
	}

	products, err := catalog.Load(logger, "../../products.json.example")
	if err != nil {
		t.Fatalf("catalog.Load() error = %v", err)
	}

	plan := planner.BuildPlan(logger, conf.Profile.Normalize(), products)

	// Baseline values for the example profile (income 100000, expenses
	// 70000, EMI 15000, age 30, Tier 1, one dependent, moderate risk).
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"budget.savingsRate", plan.Budget.SavingsRate, 15.0},
		{"emergencyFund.recommendedTarget", plan.EmergencyFund.RecommendedTarget, 576000},
		{"emergencyFund.gap", plan.EmergencyFund.Gap, 426000},
		{"insurance.term.recommended", plan.Insurance.Term.Recommended, 21600000},
		{"insurance.term.gap", plan.Insurance.Term.Gap, 16600000},
		{"insurance.health.recommended", plan.Insurance.Health.Recommended, 2000000},
		{"insurance.health.gap", plan.Insurance.Health.Gap, 1500000},
		{"investment.finalEquityPct", plan.Investment.FinalEquityPct, 70},
		{"investment.emergencyFundContribution", plan.Investment.EmergencyFundContribution, 17750},
		{"investment.monthlySIP", plan.Investment.MonthlySIP, 2250},
	}
	for _, check := range checks {
		if math.Abs(check.got-check.want) > 0.01 {
			t.Errorf("%s = %v, expected %v", check.name, check.got, check.want)
		}
	}

	if plan.HealthScore.OverallScore < 0 || plan.HealthScore.OverallScore > 100 {
		t.Errorf("overallScore = %v, expected within [0, 100]", plan.HealthScore.OverallScore)
	}
	if plan.HealthScore.Grade == "" {
		t.Error("expected a letter grade")
	}

	// Selection against the example catalog: the moderate basket takes the
	// index core, the mid cap on 3Y returns, a small cap sliver, and a
	// corporate bond fund for the debt side.
	wantBasket := []string{"mf-nifty50-index", "mf-midcap-150", "mf-smallcap-250", "mf-corp-bond"}
	if len(plan.SIPBasket) != len(wantBasket) {
		t.Fatalf("len(SIPBasket) = %d, expected %d", len(plan.SIPBasket), len(wantBasket))
	}
	for i, id := range wantBasket {
		if plan.SIPBasket[i].Fund.ID != id {
			t.Errorf("SIPBasket[%d] = %s, expected %s", i, plan.SIPBasket[i].Fund.ID, id)
		}
	}

	if len(plan.Parking) != 2 {
		t.Fatalf("len(Parking) = %d, expected 2", len(plan.Parking))
	}
	if plan.Parking[0].Fund == nil || plan.Parking[0].Fund.ID != "mf-liquid" {
		t.Errorf("Parking[0] should pick the liquid fund over a 12 month horizon")
	}
	if plan.Parking[1].FD == nil || plan.Parking[1].FD.ID != "fd-national-bank" {
		t.Errorf("Parking[1] should pick the highest-rate eligible FD")
	}

	// Claim settlement ratios 99.1 and 98.9 fall inside the tie window, so
	// the higher solvency ratio leads the shortlist.
	wantTerm := []string{"term-secure-smart", "term-shield-plus", "term-family-first"}
	if len(plan.TermShortlist) != len(wantTerm) {
		t.Fatalf("len(TermShortlist) = %d, expected %d", len(plan.TermShortlist), len(wantTerm))
	}
	for i, id := range wantTerm {
		if plan.TermShortlist[i].Policy.ID != id {
			t.Errorf("TermShortlist[%d] = %s, expected %s", i, plan.TermShortlist[i].Policy.ID, id)
		}
	}

	wantHealth := []string{"health-care-gold", "health-secure-family"}
	if len(plan.HealthShortlist) != len(wantHealth) {
		t.Fatalf("len(HealthShortlist) = %d, expected %d", len(plan.HealthShortlist), len(wantHealth))
	}
	for i, id := range wantHealth {
		if plan.HealthShortlist[i].Policy.ID != id {
			t.Errorf("HealthShortlist[%d] = %s, expected %s", i, plan.HealthShortlist[i].Policy.ID, id)
		}
	}

	// All three output formats should render the plan without error.
	var pretty bytes.Buffer
	output.PrettyFormat(&pretty, plan)
	if !strings.Contains(pretty.String(), "Financial plan for Asha") {
		t.Error("pretty output missing the plan header")
	}

	var csv bytes.Buffer
	output.CsvFormat(&csv, plan)
	if !strings.Contains(csv.String(), `"budget","savingsRate","15.00"`) {
		t.Error("csv output missing the savings rate row")
	}

	var js bytes.Buffer
	if err := output.JSONFormat(&js, plan); err != nil {
		t.Errorf("JSONFormat() error = %v", err)
	}
}

// Package output provides utilities for formatting and displaying plans.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/plutus-labs/finadvisor/internal/planner"
	"github.com/plutus-labs/finadvisor/pkg/format"
	"github.com/plutus-labs/finadvisor/pkg/selector"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat writes a human-readable rather than machine-readable report.
func PrettyFormat(w io.Writer, plan planner.Plan) {
	p := message.NewPrinter(language.English)

	name := plan.Profile.Name
	if name == "" {
		name = "household"
	}
	_, _ = p.Fprintf(w, "--- Financial plan for %s ---\n", name)
	if plan.CatalogAsOf != "" {
		_, _ = p.Fprintf(w, "Product data as of %s (version %s)\n", plan.CatalogAsOf, plan.CatalogVersion)
	}

	_, _ = p.Fprintf(w, "\nBudget (50/30/20) [%s]\n", plan.Budget.Status)
	_, _ = p.Fprintf(w, "  Needs %s | Wants %s | Savings %s\n",
		format.Rupee(plan.Budget.Needs), format.Rupee(plan.Budget.Wants), format.Rupee(plan.Budget.Savings))
	_, _ = p.Fprintf(w, "  Current savings %s (%.1f%% of income)\n",
		format.Rupee(plan.Budget.CurrentSavings), plan.Budget.SavingsRate)

	_, _ = p.Fprintf(w, "\nEmergency fund [%s]\n", plan.EmergencyFund.Status)
	_, _ = p.Fprintf(w, "  Target %s (9 months of essentials), saved %s, gap %s\n",
		format.Rupee(plan.EmergencyFund.RecommendedTarget),
		format.Rupee(plan.EmergencyFund.Existing),
		format.Rupee(plan.EmergencyFund.Gap))
	if plan.EmergencyFund.Gap > 0 {
		_, _ = p.Fprintf(w, "  Close it with %s/month over 12 months or %s/month over 24\n",
			format.Rupee(plan.EmergencyFund.MonthlyContribution12),
			format.Rupee(plan.EmergencyFund.MonthlyContribution24))
	}

	_, _ = p.Fprintf(w, "\nTerm insurance [%s]\n", plan.Insurance.Term.Status)
	_, _ = p.Fprintf(w, "  Recommended cover %s, existing %s, gap %s\n",
		format.Compact(plan.Insurance.Term.Recommended),
		format.Compact(plan.Insurance.Term.Existing),
		format.Compact(plan.Insurance.Term.Gap))
	_, _ = p.Fprintf(w, "\nHealth insurance [%s]\n", plan.Insurance.Health.Status)
	_, _ = p.Fprintf(w, "  Recommended cover %s, existing %s, gap %s\n",
		format.Compact(plan.Insurance.Health.Recommended),
		format.Compact(plan.Insurance.Health.Existing),
		format.Compact(plan.Insurance.Health.Gap))
	_, _ = p.Fprintf(w, "  Combined premium impact %s/month (%.1f%% of income)\n",
		format.Rupee(plan.Insurance.MonthlyImpact), plan.Insurance.PctOfIncome)

	_, _ = p.Fprintf(w, "\nInvestment allocation\n")
	_, _ = p.Fprintf(w, "  Equity %.0f%% / Debt %.0f%%, monthly SIP %s\n",
		plan.Investment.FinalEquityPct, plan.Investment.FinalDebtPct, format.Rupee(plan.Investment.MonthlySIP))
	if plan.Investment.EmergencyFundContribution > 0 {
		_, _ = p.Fprintf(w, "  %s/month diverted to the emergency fund first\n",
			format.Rupee(plan.Investment.EmergencyFundContribution))
	}

	_, _ = p.Fprintf(w, "\nRetirement [%s]\n", plan.Retirement.Status)
	_, _ = p.Fprintf(w, "  Corpus needed at %d: %s, projected holdings %s\n",
		plan.Retirement.RetirementAge,
		format.Compact(plan.Retirement.CorpusNeeded),
		format.Compact(plan.Retirement.TotalFV))
	if plan.Retirement.Gap > 0 {
		_, _ = p.Fprintf(w, "  SIP needed to close the gap: %s/month (%.1f%% of income)\n",
			format.Rupee(plan.Retirement.MonthlySIPNeeded), plan.Retirement.SIPPctOfIncome)
	}

	_, _ = p.Fprintf(w, "\nFinancial health score: %.1f (grade %s, %s)\n",
		plan.HealthScore.OverallScore, plan.HealthScore.Grade, plan.HealthScore.Rating)

	if len(plan.SIPBasket) > 0 {
		_, _ = p.Fprintf(w, "\nSuggested SIP basket\n")
		for _, entry := range plan.SIPBasket {
			_, _ = p.Fprintf(w, "  %5.1f%% | %s/month | %s (%s) - %s\n",
				entry.AllocationPct, format.Rupee(entry.MonthlyAmount),
				entry.Fund.Name, entry.Fund.Category, entry.Reason)
		}
	}
	if len(plan.Parking) > 0 {
		_, _ = p.Fprintf(w, "\nEmergency fund parking\n")
		for _, entry := range plan.Parking {
			_, _ = p.Fprintf(w, "  %5.1f%% | %s | %s - %s\n",
				entry.AllocationPct, format.Rupee(entry.Amount), parkingLabel(entry), entry.Reason)
		}
	}
	if len(plan.TermShortlist) > 0 {
		_, _ = p.Fprintf(w, "\nTerm insurance shortlist\n")
		for i, entry := range plan.TermShortlist {
			_, _ = p.Fprintf(w, "  %d. %s %s - %s\n", i+1, entry.Policy.Insurer, entry.Policy.Product, entry.Reason)
		}
	}
	if len(plan.HealthShortlist) > 0 {
		_, _ = p.Fprintf(w, "\nHealth insurance shortlist\n")
		for i, entry := range plan.HealthShortlist {
			_, _ = p.Fprintf(w, "  %d. %s %s - %s\n", i+1, entry.Policy.Insurer, entry.Policy.Plan, entry.Reason)
		}
	}
}

func parkingLabel(entry selector.SuggestedParking) string {
	switch entry.Kind {
	case selector.ParkingFD:
		if entry.FD != nil {
			return fmt.Sprintf("%s FD @ %.2f%%", entry.FD.Institution, entry.FD.RateGeneral)
		}
	case selector.ParkingLiquidFund:
		if entry.Fund != nil {
			return fmt.Sprintf("%s (%s)", entry.Fund.Name, entry.Fund.Category)
		}
	}
	return string(entry.Kind)
}

// CsvFormat writes the plan as section,key,value rows.
func CsvFormat(w io.Writer, plan planner.Plan) {
	write := func(section, key string, value interface{}) {
		switch v := value.(type) {
		case float64:
			_, _ = fmt.Fprintf(w, "%q,%q,%q\n", section, key, format.NumericRupee(v))
		default:
			_, _ = fmt.Fprintf(w, "%q,%q,%q\n", section, key, fmt.Sprint(v))
		}
	}

	write("budget", "needs", plan.Budget.Needs)
	write("budget", "wants", plan.Budget.Wants)
	write("budget", "savings", plan.Budget.Savings)
	write("budget", "savingsRate", fmt.Sprintf("%.2f", plan.Budget.SavingsRate))
	write("budget", "status", plan.Budget.Status)

	write("emergencyFund", "recommendedTarget", plan.EmergencyFund.RecommendedTarget)
	write("emergencyFund", "existing", plan.EmergencyFund.Existing)
	write("emergencyFund", "gap", plan.EmergencyFund.Gap)
	write("emergencyFund", "status", plan.EmergencyFund.Status)

	write("insurance.term", "recommended", plan.Insurance.Term.Recommended)
	write("insurance.term", "gap", plan.Insurance.Term.Gap)
	write("insurance.health", "recommended", plan.Insurance.Health.Recommended)
	write("insurance.health", "gap", plan.Insurance.Health.Gap)

	write("investment", "finalEquityPct", fmt.Sprintf("%.0f", plan.Investment.FinalEquityPct))
	write("investment", "finalDebtPct", fmt.Sprintf("%.0f", plan.Investment.FinalDebtPct))
	write("investment", "monthlySIP", plan.Investment.MonthlySIP)

	write("retirement", "corpusNeeded", plan.Retirement.CorpusNeeded)
	write("retirement", "totalFV", plan.Retirement.TotalFV)
	write("retirement", "monthlySIPNeeded", plan.Retirement.MonthlySIPNeeded)
	write("retirement", "status", plan.Retirement.Status)

	write("healthScore", "overallScore", fmt.Sprintf("%.2f", plan.HealthScore.OverallScore))
	write("healthScore", "grade", plan.HealthScore.Grade)

	for _, entry := range plan.SIPBasket {
		write("sipBasket", entry.Fund.Name, entry.MonthlyAmount)
	}
	for _, entry := range plan.Parking {
		write("parking", string(entry.Kind), entry.Amount)
	}
	for _, entry := range plan.TermShortlist {
		write("termShortlist", entry.Policy.Insurer, entry.Reason)
	}
	for _, entry := range plan.HealthShortlist {
		write("healthShortlist", entry.Policy.Insurer, entry.Reason)
	}
}

// JSONFormat writes the full plan as indented JSON.
func JSONFormat(w io.Writer, plan planner.Plan) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(plan); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return nil
}

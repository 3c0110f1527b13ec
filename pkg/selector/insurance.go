package selector

import (
	"fmt"
	"math"
	"sort"

	"github.com/plutus-labs/finadvisor/pkg/catalog"
	"github.com/plutus-labs/finadvisor/pkg/constants"
)

// TermPolicies shortlists up to three term policies whose maximum sum insured
// covers the recommendation. Ranking is by claim settlement ratio descending,
// except that CSR values within half a percentage point are treated as tied
// and ordered by solvency ratio descending instead. The fuzzy comparator is
// deliberate (it mirrors how insurers publish near-identical CSRs) and the
// stable sort pins full ties to catalog order.
func TermPolicies(policies []catalog.TermInsurance, recommendedCover float64) []SuggestedTerm {
	if recommendedCover == 0 {
		return nil
	}

	var eligible []*catalog.TermInsurance
	for i := range policies {
		if policies[i].MaxSumInsured >= recommendedCover {
			eligible = append(eligible, &policies[i])
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		a, b := eligible[i], eligible[j]
		if math.Abs(a.ClaimSettlementRatio-b.ClaimSettlementRatio) > constants.CSRTieWindow {
			return a.ClaimSettlementRatio > b.ClaimSettlementRatio
		}
		return a.SolvencyRatio > b.SolvencyRatio
	})

	if len(eligible) > constants.ShortlistSize {
		eligible = eligible[:constants.ShortlistSize]
	}

	var shortlist []SuggestedTerm
	for _, policy := range eligible {
		shortlist = append(shortlist, SuggestedTerm{
			Policy: policy,
			Reason: fmt.Sprintf("CSR: %v%% | Solvency: %v", policy.ClaimSettlementRatio, policy.SolvencyRatio),
		})
	}
	return shortlist
}

// HealthPolicies shortlists up to three health plans offering a sum insured
// band at or above the recommendation, cheapest family-floater premium first.
func HealthPolicies(policies []catalog.HealthInsurance, recommendedCover float64) []SuggestedHealth {
	if recommendedCover == 0 {
		return nil
	}

	var eligible []*catalog.HealthInsurance
	for i := range policies {
		if hasBandAtLeast(policies[i].SumInsuredBands, recommendedCover) {
			eligible = append(eligible, &policies[i])
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].SamplePremiumFamilyFloat < eligible[j].SamplePremiumFamilyFloat
	})

	if len(eligible) > constants.ShortlistSize {
		eligible = eligible[:constants.ShortlistSize]
	}

	var shortlist []SuggestedHealth
	for _, policy := range eligible {
		restoration := "No"
		if policy.Restoration {
			restoration = "Yes"
		}
		shortlist = append(shortlist, SuggestedHealth{
			Policy: policy,
			Reason: fmt.Sprintf("%s | Restoration: %s", policy.Copay, restoration),
		})
	}
	return shortlist
}

func hasBandAtLeast(bands []float64, cover float64) bool {
	for _, band := range bands {
		if band >= cover {
			return true
		}
	}
	return false
}

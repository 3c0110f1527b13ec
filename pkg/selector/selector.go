// Package selector maps computed planning targets onto the product catalog,
// producing ranked, annotated shortlists. Every function is pure: the same
// catalog and targets always yield the same shortlist, nothing is mutated,
// and the uniform "nothing eligible" signal is an empty result, never an
// error. Suggestions reference catalog entries; they never own or copy them.
package selector

import "github.com/plutus-labs/finadvisor/pkg/catalog"

// ParkingKind tags which side of the parking union a suggestion carries.
type ParkingKind string

// Parking instrument kinds.
const (
	ParkingLiquidFund ParkingKind = "liquid_fund"
	ParkingFD         ParkingKind = "fd"
)

// SuggestedSIP is one fund leg of the SIP basket. AllocationPct is relative
// to the whole basket, not to the leg's equity or debt bucket.
type SuggestedSIP struct {
	Fund          *catalog.MutualFund `json:"fund"`
	AllocationPct float64             `json:"allocation_pct"`
	MonthlyAmount float64             `json:"monthly_amount"`
	Reason        string              `json:"reason"`
}

// SuggestedParking is one emergency-fund parking leg. Exactly one of Fund or
// FD is set, decided once at selection time by Kind.
type SuggestedParking struct {
	Kind          ParkingKind         `json:"type"`
	Fund          *catalog.MutualFund `json:"fund,omitempty"`
	FD            *catalog.FDRate     `json:"fd,omitempty"`
	AllocationPct float64             `json:"allocation_pct"`
	Amount        float64             `json:"amount"`
	Reason        string              `json:"reason"`
}

// SuggestedTerm is one shortlisted term insurance policy.
type SuggestedTerm struct {
	Policy *catalog.TermInsurance `json:"policy"`
	Reason string                 `json:"reason"`
}

// SuggestedHealth is one shortlisted health insurance plan.
type SuggestedHealth struct {
	Policy *catalog.HealthInsurance `json:"policy"`
	Reason string                   `json:"reason"`
}

// bestFund scans funds for the entry that passes keep and wins under better,
// returning a pointer into the caller's slice. Earlier entries win full ties,
// matching a stable sort over the catalog order. Returns nil when nothing
// passes the filter.
func bestFund(funds []catalog.MutualFund, keep func(catalog.MutualFund) bool, better func(a, b catalog.MutualFund) bool) *catalog.MutualFund {
	best := -1
	for i := range funds {
		if !keep(funds[i]) {
			continue
		}
		if best == -1 || better(funds[i], funds[best]) {
			best = i
		}
	}
	if best == -1 {
		return nil
	}
	return &funds[best]
}

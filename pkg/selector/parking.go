package selector

import (
	"fmt"
	"math"

	"github.com/plutus-labs/finadvisor/pkg/catalog"
	"github.com/plutus-labs/finadvisor/pkg/constants"
)

// ParkingOptions splits the emergency fund target 50/50 between a liquid
// mutual fund and a fixed deposit. Short horizons (at or under six months)
// park in overnight funds instead of liquid funds; the FD side is restricted
// to government or AAA institutions with minimum tenures of a year or less,
// highest general rate first. Either side is omitted when nothing qualifies.
func ParkingOptions(funds []catalog.MutualFund, fdRates []catalog.FDRate, monthsToReach int, targetAmount float64) []SuggestedParking {
	var options []SuggestedParking

	if targetAmount <= 0 {
		return options
	}

	liquidCategory := catalog.CategoryLiquid
	if monthsToReach <= constants.ShortHorizonMonths {
		liquidCategory = catalog.CategoryOvernight
	}

	if liquid := bestFund(funds, inCategory(liquidCategory), cheaperExpense); liquid != nil {
		options = append(options, SuggestedParking{
			Kind:          ParkingLiquidFund,
			Fund:          liquid,
			AllocationPct: 50,
			Amount:        math.Round(targetAmount * 0.5),
			Reason:        fmt.Sprintf("High liquidity - %s fund", liquid.Category),
		})
	}

	if fd := bestParkingFD(fdRates); fd != nil {
		options = append(options, SuggestedParking{
			Kind:          ParkingFD,
			FD:            fd,
			AllocationPct: 50,
			Amount:        math.Round(targetAmount * 0.5),
			Reason:        fmt.Sprintf("Safe returns - %s FD", fd.Institution),
		})
	}

	return options
}

func bestParkingFD(fdRates []catalog.FDRate) *catalog.FDRate {
	best := -1
	for i := range fdRates {
		fd := &fdRates[i]
		if fd.RatingBand != catalog.RatingGovernment && fd.RatingBand != catalog.RatingAAA {
			continue
		}
		if fd.TenureMinMonths > constants.ParkingMaxTenureMonths {
			continue
		}
		if best == -1 || fd.RateGeneral > fdRates[best].RateGeneral {
			best = i
		}
	}
	if best == -1 {
		return nil
	}
	return &fdRates[best]
}

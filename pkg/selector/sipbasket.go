package selector

import (
	"fmt"
	"math"

	"github.com/plutus-labs/finadvisor/pkg/calculators"
	"github.com/plutus-labs/finadvisor/pkg/catalog"
	"github.com/plutus-labs/finadvisor/pkg/constants"
)

// SIPBasket splits the monthly SIP amount into an equity bucket and a debt
// bucket by the target percentages, then fills each bucket from the catalog
// under a risk-tolerance-specific sub-allocation:
//
//	Aggressive:   50% core large cap, 30% mid cap, 20% small cap
//	Moderate:     50% core large cap, 40% flexi or mid cap, 10% small cap
//	Conservative: 50% core large cap, remainder into flexi cap
//
// The core slot takes the cheapest large cap fund with an expense ratio below
// 0.2; satellites rank by trailing returns. The debt slot prefers short
// duration funds for conservative investors and corporate bond funds
// otherwise, cheapest first. A bucket whose category has no eligible fund is
// silently omitted.
func SIPBasket(funds []catalog.MutualFund, targetEquityPct, targetDebtPct float64, risk calculators.RiskTolerance, monthlySIP float64) []SuggestedSIP {
	var basket []SuggestedSIP

	if monthlySIP <= 0 || targetEquityPct+targetDebtPct == 0 {
		return basket
	}

	if targetEquityPct > 0 {
		equityAmount := math.Round(monthlySIP * targetEquityPct / 100)

		core := bestFund(funds,
			func(f catalog.MutualFund) bool {
				return f.Category == catalog.CategoryLargeCap && f.ExpenseRatio < constants.CoreExpenseRatioCap
			},
			cheaperExpense,
		)
		if core != nil {
			basket = append(basket, SuggestedSIP{
				Fund:          core,
				AllocationPct: targetEquityPct * 0.5,
				MonthlyAmount: math.Round(equityAmount * 0.5),
				Reason:        "Core equity allocation - Low cost index fund",
			})
		}

		satelliteAmount := equityAmount - math.Round(equityAmount*0.5)

		switch risk {
		case calculators.Aggressive:
			if mid := bestFund(funds, inCategory(catalog.CategoryMidCap), higherReturns3Y); mid != nil {
				basket = append(basket, SuggestedSIP{
					Fund:          mid,
					AllocationPct: targetEquityPct * 0.3,
					MonthlyAmount: math.Round(equityAmount * 0.3),
					Reason:        "Satellite - Mid cap for growth",
				})
			}
			if small := bestFund(funds, inCategory(catalog.CategorySmallCap), higherReturns3Y); small != nil {
				basket = append(basket, SuggestedSIP{
					Fund:          small,
					AllocationPct: targetEquityPct * 0.2,
					MonthlyAmount: math.Round(equityAmount * 0.2),
					Reason:        "Satellite - Small cap for higher growth",
				})
			}
		case calculators.Conservative:
			if flexi := bestFund(funds, inCategory(catalog.CategoryFlexiCap), higherReturns5Y); flexi != nil {
				basket = append(basket, SuggestedSIP{
					Fund:          flexi,
					AllocationPct: targetEquityPct * 0.5,
					MonthlyAmount: satelliteAmount,
					Reason:        "Satellite - Flexi cap for conservative equity",
				})
			}
		default: // Moderate
			flexiOrMid := bestFund(funds,
				func(f catalog.MutualFund) bool {
					return f.Category == catalog.CategoryFlexiCap || f.Category == catalog.CategoryMidCap
				},
				func(a, b catalog.MutualFund) bool {
					if a.Returns3Y != b.Returns3Y {
						return a.Returns3Y > b.Returns3Y
					}
					// Flexi cap wins a dead heat.
					return a.Category == catalog.CategoryFlexiCap && b.Category == catalog.CategoryMidCap
				},
			)
			if flexiOrMid != nil {
				basket = append(basket, SuggestedSIP{
					Fund:          flexiOrMid,
					AllocationPct: targetEquityPct * 0.4,
					MonthlyAmount: math.Round(equityAmount * 0.4),
					Reason:        "Satellite - Balanced growth",
				})
			}
			if small := bestFund(funds, inCategory(catalog.CategorySmallCap), higherReturns3Y); small != nil {
				basket = append(basket, SuggestedSIP{
					Fund:          small,
					AllocationPct: targetEquityPct * 0.1,
					MonthlyAmount: math.Round(equityAmount * 0.1),
					Reason:        "Satellite - Small allocation to small cap",
				})
			}
		}
	}

	if targetDebtPct > 0 {
		debtAmount := math.Round(monthlySIP * targetDebtPct / 100)

		debtCategory := catalog.CategoryCorporateBond
		if risk == calculators.Conservative {
			debtCategory = catalog.CategoryShortDuration
		}

		// Corporate bond funds stay eligible as the fallback category.
		debt := bestFund(funds,
			func(f catalog.MutualFund) bool {
				return f.Category == debtCategory || f.Category == catalog.CategoryCorporateBond
			},
			cheaperExpense,
		)
		if debt != nil {
			basket = append(basket, SuggestedSIP{
				Fund:          debt,
				AllocationPct: targetDebtPct,
				MonthlyAmount: debtAmount,
				Reason:        fmt.Sprintf("Debt allocation - %s", debt.Category),
			})
		}
	}

	return basket
}

func inCategory(category string) func(catalog.MutualFund) bool {
	return func(f catalog.MutualFund) bool {
		return f.Category == category
	}
}

func cheaperExpense(a, b catalog.MutualFund) bool {
	return a.ExpenseRatio < b.ExpenseRatio
}

func higherReturns3Y(a, b catalog.MutualFund) bool {
	return a.Returns3Y > b.Returns3Y
}

func higherReturns5Y(a, b catalog.MutualFund) bool {
	return a.Returns5Y > b.Returns5Y
}

package split

import (
	"github.com/shopspring/decimal"

	"github.com/frly/client-go/internal/types"
)

// Infer reconstructs the split strategy of a stored expense from its shares,
// since the strategy is not persisted. Classification:
//
//   - PAYER_ONLY: a single share owned by the payer and equal to the total.
//   - EVERYONE: one share per current member, each within Tolerance of an
//     equal split of the total.
//   - CUSTOM: everything else.
//
// The check runs against the group's current member count, so a CUSTOM
// split can be read as EVERYONE when membership and amounts happen to line
// up after the group changed. That ambiguity is inherent to not persisting
// the strategy.
func Infer(exp types.Expense, memberCount int) Strategy {
	shares := exp.Shares

	if len(shares) == 1 &&
		shares[0].UserID == exp.PaidByUserID &&
		shares[0].ShareAmount.Decimal.Equal(exp.TotalAmount.Decimal) {
		return StrategyPayerOnly
	}

	if memberCount > 0 && len(shares) == memberCount {
		per := exp.TotalAmount.Decimal.Div(decimal.NewFromInt(int64(memberCount))).Round(2)
		allEqual := true
		for _, s := range shares {
			if s.ShareAmount.Decimal.Sub(per).Abs().GreaterThan(Tolerance) {
				allEqual = false
				break
			}
		}
		if allEqual {
			return StrategyEveryone
		}
	}

	return StrategyCustom
}

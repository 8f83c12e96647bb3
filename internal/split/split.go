// Package split derives per-member share amounts from a chosen split
// strategy and validates expenses before they are submitted. All arithmetic
// is decimal; the accepted drift between the share sum and the total is
// 0.01, which absorbs the per-member rounding of an equal split.
package split

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/frly/client-go/internal/types"
)

// Strategy is the rule used to derive shares from a total amount. The
// strategy itself is not persisted; see Infer for the reverse mapping.
type Strategy string

const (
	// StrategyPayerOnly records a personal expense: a single share equal to
	// the total, owned by the payer, so nobody owes anyone.
	StrategyPayerOnly Strategy = "PAYER_ONLY"

	// StrategyEveryone divides the total evenly across all current group
	// members.
	StrategyEveryone Strategy = "EVERYONE"

	// StrategyCustom uses explicit per-member amounts supplied by the user.
	StrategyCustom Strategy = "CUSTOM"
)

// Tolerance is the maximum accepted |sum(shares) - total|. It exists for
// rounding drift of the EVERYONE strategy, not to forgive user error.
var Tolerance = decimal.New(1, -2) // 0.01

// Validation errors, surfaced to the user before any network call is made.
var (
	ErrAmountNotPositive = errors.New("total amount must be greater than zero")
	ErrNoPayer           = errors.New("an expense must have a payer")
	ErrNoShares          = errors.New("at least one non-zero share is required")
	ErrShareMismatch     = errors.New("sum of shares must equal total amount")
)

// PayerOnly yields exactly one share covering the full total, attributed to
// the payer.
func PayerOnly(payerID int64, total types.Money) []types.ShareInput {
	return []types.ShareInput{{UserID: payerID, ShareAmount: total}}
}

// Everyone yields one share per member, each equal to total/N rounded
// half-up to two decimal places. The rounding residual (up to 0.005 per
// member) is deliberately not redistributed; Validate's tolerance accepts
// it.
func Everyone(memberIDs []int64, total types.Money) []types.ShareInput {
	if len(memberIDs) == 0 {
		return nil
	}
	per := total.Decimal.Div(decimal.NewFromInt(int64(len(memberIDs)))).Round(2)
	shares := make([]types.ShareInput, 0, len(memberIDs))
	for _, id := range memberIDs {
		shares = append(shares, types.ShareInput{UserID: id, ShareAmount: types.NewMoney(per)})
	}
	return shares
}

// Custom converts user-entered amounts into shares, dropping zero and
// negative entries. The result is ordered by user id so repeated submissions
// of the same input produce the same payload.
func Custom(amounts map[int64]types.Money) []types.ShareInput {
	shares := make([]types.ShareInput, 0, len(amounts))
	for id, amt := range amounts {
		if !amt.Decimal.IsPositive() {
			continue
		}
		shares = append(shares, types.ShareInput{UserID: id, ShareAmount: amt})
	}
	sort.Slice(shares, func(i, j int) bool { return shares[i].UserID < shares[j].UserID })
	return shares
}

// Validate checks an expense request against the submission contract:
// positive total, a payer, at least one share, and a share sum within
// Tolerance of the total. It performs no I/O.
func Validate(req types.ExpenseRequest) error {
	if !req.TotalAmount.Decimal.IsPositive() {
		return ErrAmountNotPositive
	}
	if req.PaidByUserID == 0 {
		return ErrNoPayer
	}
	if len(req.Shares) == 0 {
		return ErrNoShares
	}
	sum := decimal.Zero
	for _, s := range req.Shares {
		sum = sum.Add(s.ShareAmount.Decimal)
	}
	if sum.Sub(req.TotalAmount.Decimal).Abs().GreaterThan(Tolerance) {
		return ErrShareMismatch
	}
	return nil
}

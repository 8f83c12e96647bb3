package split

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/frly/client-go/internal/types"
)

// ComputeBalances mirrors the server's settlement arithmetic: every payer is
// credited the full expense total, every share holder is debited their
// share. Positive means the group owes the member. The server remains
// authoritative; this exists for display-consistency checks and offline
// rendering.
func ComputeBalances(expenses []types.Expense) []types.Balance {
	net := make(map[int64]decimal.Decimal)
	for _, exp := range expenses {
		net[exp.PaidByUserID] = net[exp.PaidByUserID].Add(exp.TotalAmount.Decimal)
		for _, s := range exp.Shares {
			net[s.UserID] = net[s.UserID].Sub(s.ShareAmount.Decimal)
		}
	}

	balances := make([]types.Balance, 0, len(net))
	for id, d := range net {
		balances = append(balances, types.Balance{UserID: id, Balance: types.NewMoney(d)})
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].UserID < balances[j].UserID })
	return balances
}

// MemberBalance selects one member's net balance from a fetched balance set,
// zero if the member has no entry.
func MemberBalance(balances []types.Balance, userID int64) types.Money {
	for _, b := range balances {
		if b.UserID == userID {
			return b.Balance
		}
	}
	return types.Money{}
}

// TotalSpent sums the totals of all expenses, i.e. the ledger's overall
// volume regardless of who owes whom.
func TotalSpent(expenses []types.Expense) types.Money {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.TotalAmount.Decimal)
	}
	return types.NewMoney(sum)
}

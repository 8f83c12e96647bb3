package client

import "github.com/frly/client-go/internal/split"

// SplitStrategy is the rule used to derive per-member shares from a total
// expense amount. It is chosen per expense and never persisted; editing an
// existing expense reconstructs it with InferSplitStrategy.
type SplitStrategy = split.Strategy

const (
	SplitPayerOnly = split.StrategyPayerOnly
	SplitEveryone  = split.StrategyEveryone
	SplitCustom    = split.StrategyCustom
)

// Validation errors returned by ValidateExpense (and by CreateExpense /
// UpdateExpense before any network call).
var (
	ErrAmountNotPositive = split.ErrAmountNotPositive
	ErrNoPayer           = split.ErrNoPayer
	ErrNoShares          = split.ErrNoShares
	ErrShareMismatch     = split.ErrShareMismatch
)

// Share derivation and settlement helpers, re-exported from the internal
// split package.
var (
	// SplitPayerOnlyShares yields one share covering the full total,
	// attributed to the payer: a personal expense, nobody owes anyone.
	SplitPayerOnlyShares = split.PayerOnly

	// SplitEveryoneShares divides the total evenly, one share per member,
	// rounded half-up to two decimals. The rounding residual is not
	// redistributed; ValidateExpense's tolerance accepts it.
	SplitEveryoneShares = split.Everyone

	// SplitCustomShares converts user-entered amounts to shares, dropping
	// zero entries.
	SplitCustomShares = split.Custom

	// ValidateExpense checks the submission contract: positive total, a
	// payer, at least one share, share sum within 0.01 of the total.
	ValidateExpense = split.Validate

	// InferSplitStrategy reconstructs the strategy of a stored expense from
	// its shares and the current member count.
	InferSplitStrategy = split.Infer

	// ComputeBalances mirrors the server's settlement arithmetic for
	// display-consistency checks; the server remains authoritative.
	ComputeBalances = split.ComputeBalances

	// MemberBalance selects one member's net balance from a balance set,
	// zero if absent.
	MemberBalance = split.MemberBalance
)

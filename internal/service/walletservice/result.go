package walletservice

import "github.com/adesinaj/kobovest/internal/domain"

type Outcome string

const (
	// OutcomeApplied means the ledger entry was created and the balance
	// moved.
	OutcomeApplied Outcome = "applied"
	// OutcomeDuplicate means the reference was seen before; nothing
	// changed. Ingestion paths treat this as success.
	OutcomeDuplicate Outcome = "duplicate"
	// OutcomeRejected means a business rule refused the operation before
	// any mutation; Reason carries which one.
	OutcomeRejected Outcome = "rejected"
)

// Result is the tagged outcome of a settlement primitive. Duplicate
// replays are an expected, frequent case, so callers branch on data
// instead of catching errors.
type Result struct {
	Outcome     Outcome
	Transaction *domain.Transaction
	Balance     int64
	Reason      error
}

func applied(txn *domain.Transaction, balance int64) *Result {
	return &Result{Outcome: OutcomeApplied, Transaction: txn, Balance: balance}
}

func duplicate(txn *domain.Transaction) *Result {
	return &Result{Outcome: OutcomeDuplicate, Transaction: txn}
}

func rejected(reason error) *Result {
	return &Result{Outcome: OutcomeRejected, Reason: reason}
}

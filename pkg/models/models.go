package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementType is one of the four document classes the classifier knows.
type StatementType string

const (
	StatementMortgage   StatementType = "mortgage"
	StatementCreditCard StatementType = "credit_card"
	StatementBrokerage  StatementType = "brokerage"
	StatementBank       StatementType = "bank"
)

// Classification is the outcome of scoring a document against the cue tables.
type Classification struct {
	Type       StatementType
	Confidence float64
}

// InstitutionInfo holds the matched institution display name and the masked
// account number, either of which may be empty.
type InstitutionInfo struct {
	Institution   string
	MaskedAccount string
}

// Period is the date range a statement covers. Start is never after End.
type Period struct {
	Start time.Time
	End   time.Time
}

// Transaction is one extracted statement line. Merchant is not populated by
// the line heuristics today but survives to the store schema.
type Transaction struct {
	PostedAt    time.Time
	Description string
	Amount      decimal.Decimal
	Merchant    string
}

// CategoryKind distinguishes income and expense categories.
type CategoryKind string

const (
	KindIncome  CategoryKind = "income"
	KindExpense CategoryKind = "expense"
)

// CategoryAssignment is the categorizer's verdict for one transaction.
// IsIncome and IsExpense derive from the amount sign alone and are
// independent of the keyword match.
type CategoryAssignment struct {
	Name      string
	Kind      CategoryKind
	IsIncome  bool
	IsExpense bool
}

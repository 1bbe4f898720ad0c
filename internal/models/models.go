// Package models provides the data structures shared across the application.
package models

// Transaction types attached to every transaction.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Bank statement formats understood by the parsers.
const (
	FormatSofi       = "sofi"
	FormatCapitalOne = "capital_one"
	FormatGeneric    = "generic"
	FormatAuto       = "auto"
)

// Transaction statuses as reported by banks. Only posted transactions are
// importable.
const (
	StatusPosted  = "posted"
	StatusPending = "pending"
)

// Upload session types.
const (
	UploadTypeBulk   = "bulk"
	UploadTypeManual = "manual"
)

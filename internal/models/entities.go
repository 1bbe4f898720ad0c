package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is an account holder. Transactions and account balances belong to a
// user.
type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Transaction is a persisted income or expense record.
type Transaction struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Store           string          `json:"store"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	Tag             string          `json:"tag,omitempty"`
	Date            time.Time       `json:"date"`
	IsBulkUpload    bool            `json:"is_bulk_upload"`
	UploadSessionID int64           `json:"upload_session_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Account is a point-in-time balance record for a bank account. The account
// history is append-only; the latest record per (name, type) pair is the
// current balance.
type Account struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"user_id"`
	Name         string          `json:"name"`
	AccountType  string          `json:"account_type"`
	Balance      decimal.Decimal `json:"balance"`
	DateRecorded time.Time       `json:"date_recorded"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// UploadSession groups the transactions persisted from one import or bulk
// entry event. PublicID is the stable reference handed to clients.
type UploadSession struct {
	ID                        int64     `json:"id"`
	PublicID                  string    `json:"public_id"`
	UserID                    int64     `json:"user_id"`
	UploadType                string    `json:"upload_type"`
	TransactionCount          int       `json:"transaction_count"`
	UploadDate                time.Time `json:"upload_date"`
	MostRecentTransactionDate time.Time `json:"most_recent_transaction_date,omitempty"`
	CreatedAt                 time.Time `json:"created_at"`
}

// Summary is the aggregate income/expense/balance view of a user's
// transactions.
type Summary struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

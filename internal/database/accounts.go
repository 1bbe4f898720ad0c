package database

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gmhollar5/PersonalFinanceApp/internal/dateutils"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
)

// CreateAccount appends a balance record. Account history is append-only;
// the newest record per (name, account_type) is the current balance.
func (db *DB) CreateAccount(account *models.Account) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO accounts (user_id, name, account_type, balance, date_recorded)
		VALUES (?, ?, ?, ?, ?)
	`, account.UserID, account.Name, account.AccountType,
		models.FormatAmount(account.Balance), dateutils.ToISODate(account.DateRecorded))
	if err != nil {
		return 0, fmt.Errorf("insert account: %w", err)
	}
	return result.LastInsertId()
}

// GetAccounts returns the full balance history for a user, newest first.
func (db *DB) GetAccounts(userID int64) ([]models.Account, error) {
	rows, err := db.Query(`
		SELECT id, user_id, name, account_type, balance, date(date_recorded),
		       created_at, updated_at
		FROM accounts
		WHERE user_id = ?
		ORDER BY date_recorded DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()
	return collectAccounts(rows)
}

// GetLatestAccounts returns the most recent balance record for every
// (name, account_type) pair the user has.
func (db *DB) GetLatestAccounts(userID int64) ([]models.Account, error) {
	rows, err := db.Query(`
		SELECT a.id, a.user_id, a.name, a.account_type, a.balance,
		       date(a.date_recorded), a.created_at, a.updated_at
		FROM accounts a
		JOIN (
			SELECT name, account_type, MAX(id) AS max_id
			FROM accounts
			WHERE user_id = ?
			GROUP BY name, account_type
		) latest ON a.id = latest.max_id
		ORDER BY a.name, a.account_type
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query latest accounts: %w", err)
	}
	defer rows.Close()
	return collectAccounts(rows)
}

type accountRows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func collectAccounts(rows accountRows) ([]models.Account, error) {
	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		var rawBalance, rawDate string
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name, &a.AccountType, &rawBalance,
			&rawDate, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		balance, err := decimal.NewFromString(rawBalance)
		if err != nil {
			return nil, fmt.Errorf("parse stored balance %q: %w", rawBalance, err)
		}
		a.Balance = balance
		date, err := dateutils.ParseDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("parse stored date %q: %w", rawDate, err)
		}
		a.DateRecorded = date
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

package database

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gmhollar5/PersonalFinanceApp/internal/dateutils"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
)

// Amounts are stored as fixed two-decimal TEXT so they round-trip through
// shopspring decimals without binary float drift.

// CreateTransaction inserts a single transaction and returns its ID.
func (db *DB) CreateTransaction(txn *models.Transaction) (int64, error) {
	var sessionID interface{}
	if txn.UploadSessionID != 0 {
		sessionID = txn.UploadSessionID
	}
	result, err := db.Exec(`
		INSERT INTO transactions (
			user_id, type, category, store, amount, description, tag,
			date, is_bulk_upload, upload_session_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, txn.UserID, txn.Type, txn.Category, txn.Store, models.FormatAmount(txn.Amount),
		txn.Description, txn.Tag, dateutils.ToISODate(txn.Date), txn.IsBulkUpload, sessionID)
	if err != nil {
		return 0, fmt.Errorf("insert transaction: %w", err)
	}
	return result.LastInsertId()
}

// CreateTransactions inserts a batch of transactions for one user inside a
// single database transaction, linked to a fresh upload session. All rows are
// inserted or none are.
func (db *DB) CreateTransactions(userID int64, uploadType string, txns []models.Transaction) (*models.UploadSession, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	session, err := createUploadSession(tx, userID, uploadType, txns)
	if err != nil {
		return nil, err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO transactions (
			user_id, type, category, store, amount, description, tag,
			date, is_bulk_upload, upload_session_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range txns {
		t := &txns[i]
		_, err := stmt.Exec(userID, t.Type, t.Category, t.Store, models.FormatAmount(t.Amount),
			t.Description, t.Tag, dateutils.ToISODate(t.Date), session.ID)
		if err != nil {
			return nil, fmt.Errorf("insert transaction: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transactions: %w", err)
	}
	return session, nil
}

// GetTransactions returns all transactions for a user, newest first.
func (db *DB) GetTransactions(userID int64) ([]models.Transaction, error) {
	rows, err := db.Query(`
		SELECT id, user_id, type, category, store, amount, description, tag,
		       date(date), is_bulk_upload, COALESCE(upload_session_id, 0),
		       created_at, updated_at
		FROM transactions
		WHERE user_id = ?
		ORDER BY date DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}

// GetTransaction returns a single transaction by ID.
func (db *DB) GetTransaction(id int64) (*models.Transaction, error) {
	row := db.QueryRow(`
		SELECT id, user_id, type, category, store, amount, description, tag,
		       date(date), is_bulk_upload, COALESCE(upload_session_id, 0),
		       created_at, updated_at
		FROM transactions
		WHERE id = ?
	`, id)
	t, err := scanTransaction(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetSummary computes the income, expense and balance totals for a user.
// Aggregation happens over decimals rather than SQL SUM so the TEXT amounts
// stay exact.
func (db *DB) GetSummary(userID int64) (*models.Summary, error) {
	rows, err := db.Query(`
		SELECT type, amount FROM transactions WHERE user_id = ?
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query summary: %w", err)
	}
	defer rows.Close()

	summary := &models.Summary{
		Income:  decimal.Zero,
		Expense: decimal.Zero,
	}
	for rows.Next() {
		var txnType, raw string
		if err := rows.Scan(&txnType, &raw); err != nil {
			return nil, fmt.Errorf("scan summary row: %w", err)
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("parse stored amount %q: %w", raw, err)
		}
		if txnType == models.TypeIncome {
			summary.Income = summary.Income.Add(amount)
		} else {
			summary.Expense = summary.Expense.Add(amount)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	summary.Balance = summary.Income.Sub(summary.Expense)
	return summary, nil
}

// DeleteTransaction removes a transaction by ID.
func (db *DB) DeleteTransaction(id int64) error {
	result, err := db.Exec(`DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*models.Transaction, error) {
	var t models.Transaction
	var rawAmount, rawDate string
	if err := row.Scan(&t.ID, &t.UserID, &t.Type, &t.Category, &t.Store, &rawAmount,
		&t.Description, &t.Tag, &rawDate, &t.IsBulkUpload, &t.UploadSessionID,
		&t.CreatedAt, &t.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan transaction: %w", err)
	}
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return nil, fmt.Errorf("parse stored amount %q: %w", rawAmount, err)
	}
	t.Amount = amount
	date, err := dateutils.ParseDate(rawDate)
	if err != nil {
		return nil, fmt.Errorf("parse stored date %q: %w", rawDate, err)
	}
	t.Date = date
	return &t, nil
}

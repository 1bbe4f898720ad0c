package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Init())
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *DB) int64 {
	t.Helper()
	id, err := db.CreateUser(&models.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)
	return id
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestUsers(t *testing.T) {
	db := newTestDB(t)

	id := createTestUser(t, db)
	user, err := db.GetUser(id)
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, "ada@example.com", user.Email)

	byEmail, err := db.GetUserByEmail("ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, byEmail.ID)

	_, err = db.GetUser(9999)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = db.GetUserByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	users, err := db.GetUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestTransactionRoundTrip(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db)

	id, err := db.CreateTransaction(&models.Transaction{
		UserID:      userID,
		Type:        models.TypeExpense,
		Category:    "Dining",
		Store:       "Starbucks",
		Amount:      decimal.RequireFromString("4.50"),
		Description: "morning coffee",
		Tag:         "coffee",
		Date:        date("2024-01-15"),
	})
	require.NoError(t, err)

	tx, err := db.GetTransaction(id)
	require.NoError(t, err)
	assert.Equal(t, "Starbucks", tx.Store)
	assert.Equal(t, "Dining", tx.Category)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("4.50")), "got %s", tx.Amount)
	assert.Equal(t, "2024-01-15", tx.Date.Format("2006-01-02"))
	assert.False(t, tx.IsBulkUpload)
	assert.Zero(t, tx.UploadSessionID)
}

func TestTransactionsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db)

	for _, d := range []string{"2024-01-10", "2024-03-05", "2024-02-20"} {
		_, err := db.CreateTransaction(&models.Transaction{
			UserID:   userID,
			Type:     models.TypeExpense,
			Category: "Groceries",
			Store:    "Kroger",
			Amount:   decimal.NewFromInt(10),
			Date:     date(d),
		})
		require.NoError(t, err)
	}

	txns, err := db.GetTransactions(userID)
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, "2024-03-05", txns[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-02-20", txns[1].Date.Format("2006-01-02"))
	assert.Equal(t, "2024-01-10", txns[2].Date.Format("2006-01-02"))
}

func TestBulkInsertCreatesSession(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db)

	batch := []models.Transaction{
		{Type: models.TypeExpense, Category: "Dining", Store: "Starbucks",
			Amount: decimal.RequireFromString("4.50"), Date: date("2024-01-15")},
		{Type: models.TypeIncome, Category: "Salary", Store: "Acme",
			Amount: decimal.NewFromInt(2500), Date: date("2024-01-16")},
	}

	session, err := db.CreateTransactions(userID, models.UploadTypeBulk, batch)
	require.NoError(t, err)
	assert.NotEmpty(t, session.PublicID)
	assert.Equal(t, 2, session.TransactionCount)
	assert.Equal(t, "2024-01-16", session.MostRecentTransactionDate.Format("2006-01-02"))

	txns, err := db.GetTransactions(userID)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	for _, tx := range txns {
		assert.True(t, tx.IsBulkUpload)
		assert.Equal(t, session.ID, tx.UploadSessionID)
	}

	sessions, err := db.GetUploadSessions(userID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, session.PublicID, sessions[0].PublicID)
}

func TestSummary(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db)

	entries := []struct {
		txnType string
		amount  string
	}{
		{models.TypeIncome, "2500.00"},
		{models.TypeIncome, "1.23"},
		{models.TypeExpense, "4.50"},
		{models.TypeExpense, "1400.00"},
	}
	for _, e := range entries {
		_, err := db.CreateTransaction(&models.Transaction{
			UserID:   userID,
			Type:     e.txnType,
			Category: "Other Expense",
			Store:    "Store",
			Amount:   decimal.RequireFromString(e.amount),
			Date:     date("2024-01-15"),
		})
		require.NoError(t, err)
	}

	summary, err := db.GetSummary(userID)
	require.NoError(t, err)
	assert.True(t, summary.Income.Equal(decimal.RequireFromString("2501.23")), "income %s", summary.Income)
	assert.True(t, summary.Expense.Equal(decimal.RequireFromString("1404.50")), "expense %s", summary.Expense)
	assert.True(t, summary.Balance.Equal(decimal.RequireFromString("1096.73")), "balance %s", summary.Balance)
}

func TestSummaryEmptyUser(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db)

	summary, err := db.GetSummary(userID)
	require.NoError(t, err)
	assert.True(t, summary.Income.IsZero())
	assert.True(t, summary.Expense.IsZero())
	assert.True(t, summary.Balance.IsZero())
}

func TestDeleteTransaction(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db)

	id, err := db.CreateTransaction(&models.Transaction{
		UserID:   userID,
		Type:     models.TypeExpense,
		Category: "Dining",
		Store:    "Cafe",
		Amount:   decimal.NewFromInt(5),
		Date:     date("2024-01-15"),
	})
	require.NoError(t, err)

	require.NoError(t, db.DeleteTransaction(id))
	_, err = db.GetTransaction(id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, db.DeleteTransaction(id), ErrNotFound)
}

func TestAccounts(t *testing.T) {
	db := newTestDB(t)
	userID := createTestUser(t, db)

	records := []struct {
		name    string
		accType string
		balance string
		date    string
	}{
		{"Checking", "checking", "1200.00", "2024-01-01"},
		{"Checking", "checking", "1350.00", "2024-02-01"},
		{"Brokerage", "investment", "9000.00", "2024-01-15"},
	}
	for _, r := range records {
		_, err := db.CreateAccount(&models.Account{
			UserID:       userID,
			Name:         r.name,
			AccountType:  r.accType,
			Balance:      decimal.RequireFromString(r.balance),
			DateRecorded: date(r.date),
		})
		require.NoError(t, err)
	}

	history, err := db.GetAccounts(userID)
	require.NoError(t, err)
	assert.Len(t, history, 3)

	latest, err := db.GetLatestAccounts(userID)
	require.NoError(t, err)
	require.Len(t, latest, 2)

	byName := map[string]models.Account{}
	for _, a := range latest {
		byName[a.Name] = a
	}
	assert.True(t, byName["Checking"].Balance.Equal(decimal.RequireFromString("1350.00")))
	assert.True(t, byName["Brokerage"].Balance.Equal(decimal.RequireFromString("9000.00")))
}

package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gmhollar5/PersonalFinanceApp/internal/dateutils"
	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
)

func createUploadSession(tx *sql.Tx, userID int64, uploadType string, txns []models.Transaction) (*models.UploadSession, error) {
	session := &models.UploadSession{
		PublicID:         uuid.NewString(),
		UserID:           userID,
		UploadType:       uploadType,
		TransactionCount: len(txns),
		UploadDate:       time.Now().UTC(),
	}
	for _, t := range txns {
		if t.Date.After(session.MostRecentTransactionDate) {
			session.MostRecentTransactionDate = t.Date
		}
	}

	var mostRecent interface{}
	if !session.MostRecentTransactionDate.IsZero() {
		mostRecent = dateutils.ToISODate(session.MostRecentTransactionDate)
	}
	result, err := tx.Exec(`
		INSERT INTO upload_sessions (
			public_id, user_id, upload_type, transaction_count,
			upload_date, most_recent_transaction_date
		) VALUES (?, ?, ?, ?, ?, ?)
	`, session.PublicID, session.UserID, session.UploadType, session.TransactionCount,
		session.UploadDate, mostRecent)
	if err != nil {
		return nil, fmt.Errorf("insert upload session: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert upload session: %w", err)
	}
	session.ID = id
	return session, nil
}

// GetUploadSessions returns all upload sessions for a user, newest first.
func (db *DB) GetUploadSessions(userID int64) ([]models.UploadSession, error) {
	rows, err := db.Query(`
		SELECT id, public_id, user_id, upload_type, transaction_count,
		       upload_date, COALESCE(date(most_recent_transaction_date), ''), created_at
		FROM upload_sessions
		WHERE user_id = ?
		ORDER BY upload_date DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query upload sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.UploadSession
	for rows.Next() {
		var s models.UploadSession
		var mostRecent string
		if err := rows.Scan(&s.ID, &s.PublicID, &s.UserID, &s.UploadType,
			&s.TransactionCount, &s.UploadDate, &mostRecent, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan upload session: %w", err)
		}
		if mostRecent != "" {
			date, err := dateutils.ParseDate(mostRecent)
			if err != nil {
				return nil, fmt.Errorf("parse stored date %q: %w", mostRecent, err)
			}
			s.MostRecentTransactionDate = date
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

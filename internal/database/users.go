package database

import (
	"database/sql"
	"fmt"

	"github.com/gmhollar5/PersonalFinanceApp/internal/models"
)

// CreateUser inserts a new user and returns its ID. The email address must be
// unique.
func (db *DB) CreateUser(user *models.User) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO users (first_name, last_name, email)
		VALUES (?, ?, ?)
	`, user.FirstName, user.LastName, user.Email)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return result.LastInsertId()
}

// GetUser returns a single user by ID.
func (db *DB) GetUser(id int64) (*models.User, error) {
	var u models.User
	err := db.QueryRow(`
		SELECT id, first_name, last_name, email, created_at, updated_at
		FROM users
		WHERE id = ?
	`, id).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

// GetUserByEmail returns a single user by email address.
func (db *DB) GetUserByEmail(email string) (*models.User, error) {
	var u models.User
	err := db.QueryRow(`
		SELECT id, first_name, last_name, email, created_at, updated_at
		FROM users
		WHERE email = ?
	`, email).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	return &u, nil
}

// GetUsers returns all users ordered by creation.
func (db *DB) GetUsers() ([]models.User, error) {
	rows, err := db.Query(`
		SELECT id, first_name, last_name, email, created_at, updated_at
		FROM users
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"condition_monitor/internal/models"

	"github.com/jmoiron/sqlx"
)

// UserSQLite stores device owners.
type UserSQLite struct {
	db *sqlx.DB
}

func NewUserSQLite(db *sqlx.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

var _ Authorization = (*UserSQLite)(nil)

const (
	insertUserSQL           = `INSERT INTO users (username, password_hash) VALUES (?, ?) ON CONFLICT(username) DO NOTHING`
	selectUserByUsernameSQL = `SELECT id, username, password_hash FROM users WHERE username = ?`
)

// Create returns the new user id, or ErrDuplicate if the username is taken.
func (r *UserSQLite) Create(username, passwordHash string) (int, error) {
	res, err := r.db.Exec(insertUserSQL, username, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", username, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for user %q: %w", username, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("user %q: %w", username, ErrDuplicate)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id for user %q: %w", username, err)
	}
	return int(id), nil
}

// GetByUsername returns (nil, nil) for an unknown username.
func (r *UserSQLite) GetByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Get(&u, selectUserByUsernameSQL, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return &u, nil
}

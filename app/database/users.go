package database

import (
	"database/sql"
	"fmt"

	"gj-schools/app/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrEmailTaken is returned when registering an email that already exists.
var ErrEmailTaken = fmt.Errorf("email already registered")

// CreateUser inserts a new staff account. The password must already be
// hashed.
func CreateUser(db *sql.DB, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	err := db.QueryRow(
		`INSERT INTO users (id, name, email, password_hash, school, role)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING created_at`,
		user.ID, user.Name, user.Email, user.Password, user.School, user.Role,
	).Scan(&user.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// GetUserByEmail fetches a user for login. Returns sql.ErrNoRows when the
// email is unknown.
func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	u := &models.User{}
	err := db.QueryRow(
		`SELECT id, name, email, password_hash, school, role, last_login, created_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.School, &u.Role, &u.LastLogin, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// TouchLastLogin records a successful login.
func TouchLastLogin(db *sql.DB, userID string) error {
	_, err := db.Exec(`UPDATE users SET last_login = now() WHERE id = $1`, userID)
	return err
}

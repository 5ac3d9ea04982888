package database

import (
	"database/sql"

	"campus-connect/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, name, role, created_at
			  FROM users WHERE email = $1`

	var role string
	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name, &role, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Role = normalizeRole(role)
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, name, role, created_at
			  FROM users WHERE id = $1`

	var role string
	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.Name, &role, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Role = normalizeRole(role)
	return user, nil
}

// GetUserRole resolves the role for a user id, defaulting to student when
// the profile row is missing or holds an unknown value.
func GetUserRole(db *sql.DB, userID string) (models.RoleName, error) {
	var role string
	err := db.QueryRow(`SELECT role FROM users WHERE id = $1`, userID).Scan(&role)
	if err == sql.ErrNoRows {
		return models.RoleStudent, nil
	}
	if err != nil {
		return "", err
	}
	return normalizeRole(role), nil
}

// CreateUser inserts a new user profile row
func CreateUser(db *sql.DB, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password, name, role, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`
	return db.QueryRow(
		query,
		user.ID, user.Email, user.Password, user.Name, string(user.Role),
	).Scan(&user.CreatedAt)
}

func normalizeRole(role string) models.RoleName {
	if role == string(models.RoleAdmin) {
		return models.RoleAdmin
	}
	return models.RoleStudent
}

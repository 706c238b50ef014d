package storage

import (
	"WeightLossDataGenerator/internal/models"
	"errors"
	"time"

	"modernc.org/sqlite"
)

var ErrUsernameExists = errors.New("username already exists")

// sqlite extended result code SQLITE_CONSTRAINT_UNIQUE
const sqliteConstraintUnique = 2067

func CreateUser(username, passwordHash string) (int, error) {
	stmt, err := db.Prepare("INSERT INTO users(username, password_hash, created_at) VALUES(?, ?, ?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	res, err := stmt.Exec(username, passwordHash, formatTime(time.Now()))
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) {
			if sqliteErr.Code() == sqliteConstraintUnique {
				return 0, ErrUsernameExists
			}
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

// GetUserByUsername returns sql.ErrNoRows when the user does not exist.
func GetUserByUsername(username string) (models.User, error) {
	var user models.User
	var createdStr string

	row := db.QueryRow("SELECT id, username, password_hash, created_at FROM users WHERE username = ?", username)
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &createdStr); err != nil {
		return user, err
	}
	user.CreatedAt = parseTime(createdStr)
	return user, nil
}

func GetUserIDByUsername(username string) (int, error) {
	var id int
	row := db.QueryRow("SELECT id FROM users WHERE username = ?", username)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

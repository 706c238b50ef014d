package storage

import (
	"WeightLossDataGenerator/internal/models"
	"database/sql"
	"errors"
)

var ErrGenerationNotFound = errors.New("generation not found")

func CreateGeneration(g models.Generation) error {
	stmt, err := db.Prepare(`INSERT INTO generations(id, user_id, row_count, seed, filename, file_path, size_bytes, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(g.ID, g.UserID, g.Rows, g.Seed, g.Filename, g.FilePath, g.SizeBytes, formatTime(g.CreatedAt))
	return err
}

// GetGenerationsByUserID lists a user's generations, newest first. limit <= 0 means no limit.
func GetGenerationsByUserID(userID int, limit int) ([]models.Generation, error) {
	query := `
		SELECT id, user_id, row_count, seed, filename, file_path, size_bytes, created_at
		FROM generations
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`
	if limit <= 0 {
		limit = -1 // sqlite: negative LIMIT means unbounded
	}
	rows, err := db.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	generations := make([]models.Generation, 0)
	for rows.Next() {
		g, err := scanGeneration(rows)
		if err != nil {
			return nil, err
		}
		generations = append(generations, g)
	}
	return generations, rows.Err()
}

// GetGeneration fetches one generation owned by userID.
func GetGeneration(userID int, id string) (models.Generation, error) {
	row := db.QueryRow(`
		SELECT id, user_id, row_count, seed, filename, file_path, size_bytes, created_at
		FROM generations
		WHERE id = ? AND user_id = ?
	`, id, userID)
	g, err := scanGeneration(row)
	if errors.Is(err, sql.ErrNoRows) {
		return g, ErrGenerationNotFound
	}
	return g, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGeneration(s scanner) (models.Generation, error) {
	var g models.Generation
	var createdStr string // SQLite에는 텍스트로 저장됨
	if err := s.Scan(&g.ID, &g.UserID, &g.Rows, &g.Seed, &g.Filename, &g.FilePath, &g.SizeBytes, &createdStr); err != nil {
		return g, err
	}
	g.CreatedAt = parseTime(createdStr)
	return g, nil
}

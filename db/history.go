package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Statuses of a generation record.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Generation is one row of the clip generation history.
type Generation struct {
	ID         int64
	VideoPath  string
	OutputPath string
	Format     string
	StartMs    int
	EndMs      int
	Status     string
	Error      string
	SizeBytes  int64
	ElapsedMs  int64
	CreatedAt  time.Time
}

// InsertGeneration records one generation attempt and returns its ID.
func InsertGeneration(db *sql.DB, g Generation) (int64, error) {
	result, err := db.Exec(
		`INSERT INTO generations (video_path, output_path, format, start_ms, end_ms, status, error, size_bytes, elapsed_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.VideoPath, g.OutputPath, g.Format, g.StartMs, g.EndMs, g.Status, g.Error, g.SizeBytes, g.ElapsedMs,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert generation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get generation ID: %w", err)
	}
	return id, nil
}

// ListGenerations returns the most recent generations, newest first.
func ListGenerations(db *sql.DB, limit int) ([]Generation, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(
		`SELECT id, video_path, output_path, format, start_ms, end_ms, status,
		        COALESCE(error, ''), COALESCE(size_bytes, 0), COALESCE(elapsed_ms, 0), created_at
		 FROM generations ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query generations: %w", err)
	}
	defer rows.Close()

	var out []Generation
	for rows.Next() {
		var g Generation
		if err := rows.Scan(&g.ID, &g.VideoPath, &g.OutputPath, &g.Format,
			&g.StartMs, &g.EndMs, &g.Status, &g.Error, &g.SizeBytes, &g.ElapsedMs, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generation: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating generations: %w", err)
	}
	return out, nil
}

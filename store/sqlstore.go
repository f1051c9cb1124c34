// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/danielhkuo/wheel-stock/models"
)

// SQLStore implements StockStore on a database/sql connection. It works
// against both PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite); the
// queries stick to the shared subset of both dialects.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Remaining(ctx context.Context, shopID string, segmentID int) (int, error) {
	var remaining int
	err := s.db.QueryRowContext(ctx, `
		SELECT remaining FROM shop_stock WHERE shop_id = $1 AND segment_id = $2
	`, shopID, segmentID).Scan(&remaining)

	if err == sql.ErrNoRows {
		// Absent row reads as exhausted, not as an error
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("query remaining: %w", err)
	}
	return remaining, nil
}

func (s *SQLStore) ListAvailable(ctx context.Context, shopID string) ([]models.SegmentStock, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT segment_id, remaining FROM shop_stock
		WHERE shop_id = $1 AND remaining > 0
		ORDER BY segment_id
	`, shopID)
	if err != nil {
		return nil, fmt.Errorf("query stock: %w", err)
	}
	defer rows.Close()

	segments := []models.SegmentStock{}
	for rows.Next() {
		var seg models.SegmentStock
		if err := rows.Scan(&seg.ID, &seg.Remaining); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		segments = append(segments, seg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock rows: %w", err)
	}
	return segments, nil
}

// DecrementIfPositive relies on a single conditional UPDATE so the
// check and the write cannot be separated by a concurrent claim. The
// database totally orders concurrent decrements on the same row; once
// remaining hits 0 the WHERE clause stops matching and every further
// claim observes ErrOutOfStock.
func (s *SQLStore) DecrementIfPositive(ctx context.Context, shopID string, segmentID int) (int, error) {
	var remaining int
	err := s.db.QueryRowContext(ctx, `
		UPDATE shop_stock SET remaining = remaining - 1
		WHERE shop_id = $1 AND segment_id = $2 AND remaining > 0
		RETURNING remaining
	`, shopID, segmentID).Scan(&remaining)

	if err == sql.ErrNoRows {
		return 0, ErrOutOfStock
	}
	if err != nil {
		return 0, fmt.Errorf("decrement stock: %w", err)
	}
	return remaining, nil
}

func (s *SQLStore) SetStock(ctx context.Context, shopID string, segmentID, remaining int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shop_stock (shop_id, segment_id, remaining)
		VALUES ($1, $2, $3)
		ON CONFLICT (shop_id, segment_id) DO UPDATE SET remaining = excluded.remaining
	`, shopID, segmentID, remaining)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	return nil
}

// IsUniqueViolation reports whether err is a uniqueness-constraint
// violation from either supported driver. The sqlite and pq drivers
// expose no shared error type, so this matches their message text.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

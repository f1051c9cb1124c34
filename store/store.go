// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/danielhkuo/wheel-stock/models"
)

// ErrOutOfStock is returned by DecrementIfPositive when the counter is
// already zero or the (shop, segment) row does not exist. An absent row
// is exhausted stock, not a distinct error.
var ErrOutOfStock = errors.New("out of stock")

// StockStore is the durable source of truth for remaining prize units
// per (shop, segment). DecrementIfPositive is the ONLY client-facing
// mutator; no other code path may write remaining. Every implementation
// must make it a single atomic conditional write at the backing store,
// so that a counter seeded with N admits exactly N successful claims
// under arbitrary concurrent callers.
type StockStore interface {
	// Remaining returns the current count. Absent rows read as 0.
	Remaining(ctx context.Context, shopID string, segmentID int) (int, error)

	// ListAvailable returns the segments with remaining > 0 for a shop,
	// ordered by segment id.
	ListAvailable(ctx context.Context, shopID string) ([]models.SegmentStock, error)

	// DecrementIfPositive atomically decrements the counter and returns
	// the post-decrement value, or ErrOutOfStock when the counter was
	// not positive.
	DecrementIfPositive(ctx context.Context, shopID string, segmentID int) (int, error)

	// SetStock seeds or replenishes a counter (upsert). Reserved for the
	// out-of-band admin surface.
	SetStock(ctx context.Context, shopID string, segmentID, remaining int) error
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/wheel-stock/cliparse"
	"github.com/danielhkuo/wheel-stock/models"
)

const dispatchTimeout = 10 * time.Second

// Dispatcher posts win notifications to the external notify-win (shop)
// and notify-client (winner) collaborators. Everything here is
// best-effort: a failed or half-delivered notification never rolls back
// the stock decrement that triggered it, and each send gets at most one
// immediate retry before being logged and dropped.
type Dispatcher struct {
	db     *sql.DB
	client *http.Client

	winURL    string
	clientURL string
}

func NewDispatcher(db *sql.DB, cfg cliparse.Config) *Dispatcher {
	return &Dispatcher{
		db:        db,
		client:    &http.Client{Timeout: dispatchTimeout},
		winURL:    cfg.NotifyWinURL,
		clientURL: cfg.NotifyClientURL,
	}
}

// Enabled reports whether any notification endpoint is configured.
func (d *Dispatcher) Enabled() bool {
	return d.winURL != "" || d.clientURL != ""
}

// DispatchWin notifies the shop and the winner about a committed claim.
// Intended to run in its own goroutine after the decrement commits; it
// uses a detached context so an already-answered HTTP request does not
// cancel the sends.
func (d *Dispatcher) DispatchWin(shopID string, segmentID int, segmentTitle, userEmail string) {
	if !d.Enabled() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	dispatchID := uuid.NewString()

	shop, err := d.lookupShop(ctx, shopID)
	if err != nil {
		slog.Warn("win dispatch aborted: shop lookup failed",
			"dispatch_id", dispatchID, "shop_id", shopID, "error", err)
		return
	}

	if d.winURL != "" {
		payload := models.ShopWinNotification{
			ShopID:       shopID,
			SegmentID:    segmentID,
			SegmentTitle: segmentTitle,
			UserEmail:    userEmail,
		}
		if err := d.post(ctx, d.winURL, dispatchID, payload); err != nil {
			slog.Warn("shop notification dropped",
				"dispatch_id", dispatchID, "shop_id", shopID, "error", err)
		} else {
			slog.Info("shop notified of win",
				"dispatch_id", dispatchID, "shop_id", shopID, "segment_id", segmentID)
		}
	}

	if d.clientURL != "" {
		firstName, lastName := d.lookupParticipant(ctx, userEmail)
		payload := models.WinnerNotification{
			FirstName:    firstName,
			LastName:     lastName,
			Email:        userEmail,
			ShopName:     shop.Name,
			SegmentTitle: segmentTitle,
		}
		if err := d.post(ctx, d.clientURL, dispatchID, payload); err != nil {
			slog.Warn("winner notification dropped",
				"dispatch_id", dispatchID, "shop_id", shopID, "error", err)
		} else {
			slog.Info("winner notified",
				"dispatch_id", dispatchID, "shop_id", shopID, "segment_id", segmentID)
		}
	}
}

func (d *Dispatcher) lookupShop(ctx context.Context, shopID string) (models.Shop, error) {
	var shop models.Shop
	err := d.db.QueryRowContext(ctx, `
		SELECT id, name, email FROM shop WHERE id = $1
	`, shopID).Scan(&shop.ID, &shop.Name, &shop.Email)
	if err != nil {
		return models.Shop{}, fmt.Errorf("query shop: %w", err)
	}
	return shop, nil
}

// lookupParticipant is tolerant: the winner notification still goes out
// with empty names when the registration row cannot be found.
func (d *Dispatcher) lookupParticipant(ctx context.Context, email string) (firstName, lastName string) {
	err := d.db.QueryRowContext(ctx, `
		SELECT first_name, last_name FROM participant WHERE email = $1
	`, email).Scan(&firstName, &lastName)
	if err != nil && err != sql.ErrNoRows {
		slog.Warn("participant lookup failed", "error", err)
	}
	return firstName, lastName
}

// post sends the payload, retrying once immediately on failure.
func (d *Dispatcher) post(ctx context.Context, url, dispatchID string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		lastErr = d.send(ctx, url, dispatchID, body)
		if lastErr == nil {
			return nil
		}
	}
	return lastErr
}

func (d *Dispatcher) send(ctx context.Context, url, dispatchID string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Dispatch-ID", dispatchID)

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("post %s: unexpected status %d", url, resp.StatusCode)
	}
	return nil
}

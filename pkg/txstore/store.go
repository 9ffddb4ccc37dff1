// Package txstore journals submitted transactions and their lifecycle.
package txstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no record exists for a hash.
var ErrNotFound = errors.New("transaction not found")

// Status is the lifecycle state of a submitted transaction.
type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

// Terminal reports whether s is confirmed or failed.
func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

// Record is one journaled transaction.
type Record struct {
	ID          uuid.UUID `json:"id"`
	Hash        string    `json:"hash"`
	Action      string    `json:"action"`
	Contract    string    `json:"contract"`
	Network     string    `json:"network"`
	ChainID     int64     `json:"chainId"`
	From        string    `json:"from"`
	Status      Status    `json:"status"`
	BlockNumber uint64    `json:"blockNumber,omitempty"`
	GasUsed     uint64    `json:"gasUsed,omitempty"`
	Error       string    `json:"error,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// StatusUpdate carries the fields changed by a lifecycle transition.
type StatusUpdate struct {
	Status      Status
	BlockNumber uint64
	GasUsed     uint64
	Error       string
}

// Store persists transaction records. Saving a hash that already exists
// replaces the earlier record.
type Store interface {
	Save(ctx context.Context, rec *Record) error
	UpdateStatus(ctx context.Context, hash string, upd StatusUpdate) error
	Get(ctx context.Context, hash string) (*Record, error)
	ListRecent(ctx context.Context, limit int) ([]*Record, error)
}

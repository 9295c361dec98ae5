// Package store persists visitor memory records and records visits and
// navigation-mode choices against them.
package store

import (
	"context"
	"errors"

	"github.com/oklog/ulid/v2"

	"github.com/rcliao/aiplayland-journey/internal/model"
)

// ErrNotFound is returned by admin lookups of a visitor with no record.
var ErrNotFound = errors.New("visitor not found")

// Store defines the visitor memory storage interface.
type Store interface {
	// Load returns the visitor's memory. A missing, unreadable or corrupt
	// record yields the zero memory; Load never fails.
	Load(ctx context.Context, visitorID string) model.VisitorMemory

	// Save overwrites the visitor's memory with m.
	Save(ctx context.Context, visitorID string, m model.VisitorMemory) error

	// Close closes the store.
	Close() error
}

// NewVisitorID mints an identifier for a new visitor.
func NewVisitorID() string {
	return ulid.Make().String()
}

package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a room id is unknown
var ErrNotFound = errors.New("room not found")

// Room is a persisted room record
// Live state (players, phase) lives in the registry, not here
type Room struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Closed  bool      `json:"closed"`
	Created time.Time `json:"created"`
}

// RoomStore persists room records
type RoomStore interface {
	// Create saves a new room record and fills in its created time
	Create(ctx context.Context, room *Room) error

	// Get returns a room by id, or ErrNotFound
	Get(ctx context.Context, id string) (*Room, error)

	// List returns open rooms, newest first
	List(ctx context.Context, start int64, rows int) ([]*Room, error)

	// SetClosed marks a room as closed. Closed rooms are not listed.
	SetClosed(ctx context.Context, id string) error
}

package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Memory is an in-memory RoomStore
// It backs tests and DSN-less deployments
type Memory struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewMemory returns an in-memory room store
func NewMemory() *Memory {
	return &Memory{
		rooms: make(map[string]*Room),
	}
}

// Create saves a new room record
func (m *Memory) Create(_ context.Context, room *Room) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	room.Created = time.Now()
	saved := *room
	m.rooms[room.ID] = &saved

	return nil
}

// Get returns a room by id
func (m *Memory) Get(_ context.Context, id string) (*Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	room, ok := m.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}

	copied := *room
	return &copied, nil
}

// List returns open rooms, newest first
func (m *Memory) List(_ context.Context, start int64, rows int) ([]*Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*Room, 0, len(m.rooms))
	for _, room := range m.rooms {
		if room.Closed {
			continue
		}

		copied := *room
		records = append(records, &copied)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Created.Equal(records[j].Created) {
			return records[i].ID < records[j].ID
		}

		return records[i].Created.After(records[j].Created)
	})

	if start >= int64(len(records)) {
		return []*Room{}, nil
	}

	records = records[start:]
	if rows < len(records) {
		records = records[:rows]
	}

	return records, nil
}

// SetClosed marks a room as closed
func (m *Memory) SetClosed(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	room, ok := m.rooms[id]
	if !ok {
		return ErrNotFound
	}

	room.Closed = true
	return nil
}

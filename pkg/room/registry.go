package room

import (
	"context"
	"errors"
	"sync"
	"time"

	"seotda-server/internal/util"
	"seotda-server/pkg/game"
	"seotda-server/pkg/store"
	"seotda-server/pkg/token"

	"github.com/sirupsen/logrus"
)

// ErrRoomNotFound is returned when a room id has no live session
var ErrRoomNotFound = errors.New("room not found")

// roomCodeLength is the length of generated room codes
const roomCodeLength = 6

// Registry maps room ids to live sessions and player ids to rooms.
// It is the only owner of both maps; all access is serialized here.
type Registry struct {
	mu         sync.Mutex
	rooms      map[string]*Session
	playerRoom map[string]string

	store store.RoomStore
	opts  game.Options
}

// NewRegistry returns a new room registry
func NewRegistry(roomStore store.RoomStore, opts game.Options) *Registry {
	return &Registry{
		rooms:      make(map[string]*Session),
		playerRoom: make(map[string]string),
		store:      roomStore,
		opts:       opts,
	}
}

// CreateRoom persists a room record and registers a live session for it.
// The room is visible to joins as soon as this returns.
func (r *Registry) CreateRoom(ctx context.Context, name string) (*store.Room, error) {
	code, err := token.Generate(roomCodeLength)
	if err != nil {
		return nil, err
	}

	record := &store.Room{ID: code, Name: name}
	if err := r.store.Create(ctx, record); err != nil {
		return nil, err
	}

	s := newSession(game.New(code, r.opts, nil), logrus.WithField("room", code))

	r.mu.Lock()
	r.rooms[code] = s
	r.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"room": code,
		"name": name,
	}).Info("room created")

	return record, nil
}

// Join seats a player in a room and binds the client to it
func (r *Registry) Join(roomID string, c *Client, playerID, playerName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}

	// one room per player id
	if _, ok := r.playerRoom[playerID]; ok {
		return game.ErrAlreadySeated
	}

	if playerName == "" {
		playerName = util.GetRandomName()
	}

	if err := s.join(c, playerID, playerName); err != nil {
		return err
	}

	r.playerRoom[playerID] = roomID
	return nil
}

// Leave removes the client's player from its room. Empty rooms are
// destroyed and their stored record closed. Safe to call for clients that
// never joined a room.
func (r *Registry) Leave(c *Client) {
	if c.PlayerID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	roomID, ok := r.playerRoom[c.PlayerID]
	if !ok {
		return
	}
	delete(r.playerRoom, c.PlayerID)

	s, ok := r.rooms[roomID]
	if !ok {
		return
	}

	if s.leave(c) {
		delete(r.rooms, roomID)

		if err := r.store.SetClosed(context.Background(), roomID); err != nil {
			logrus.WithError(err).WithField("room", roomID).Error("could not close room record")
		}

		logrus.WithField("room", roomID).Info("room closed")
	}
}

// Lookup returns the live session for a room id, or nil
func (r *Registry) Lookup(roomID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rooms[roomID]
}

// PlayerRoom returns the room id a player is seated in
func (r *Registry) PlayerRoom(playerID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	roomID, ok := r.playerRoom[playerID]
	return roomID, ok
}

// Receive handles a decoded envelope from a connection
func (r *Registry) Receive(c *Client, env *Envelope) {
	msg, err := ParseMessage(env)
	if err != nil {
		logrus.WithError(err).WithField("client", c.String()).Warn("invalid message")
		return
	}

	if join, ok := msg.(*JoinRoom); ok {
		if err := r.Join(join.RoomID, c, join.PlayerID, join.PlayerName); err != nil {
			c.Send(NewErrorEvent(err.Error()))
		}
		return
	}

	if c.session == nil {
		logrus.WithField("client", c.String()).Warn("received message, but client is not in a room")
		return
	}

	c.session.Handle(c, msg)
}

// ClientDisconnected is called when a client's connection closes
func (r *Registry) ClientDisconnected(c *Client) {
	r.Leave(c)
}

// Summary is a room listing entry: the stored record overlaid with live
// player count and phase
type Summary struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	PlayerCount int        `json:"playerCount"`
	Phase       game.Phase `json:"phase"`
	Created     time.Time  `json:"created"`
}

func (r *Registry) summarize(record *store.Room) *Summary {
	summary := &Summary{
		ID:      record.ID,
		Name:    record.Name,
		Phase:   game.PhaseWaiting,
		Created: record.Created,
	}

	if s := r.Lookup(record.ID); s != nil {
		summary.PlayerCount = s.PlayerCount()
		summary.Phase = s.Phase()
	}

	return summary
}

// ListRooms returns summaries of open rooms, newest first
func (r *Registry) ListRooms(ctx context.Context, start int64, rows int) ([]*Summary, error) {
	records, err := r.store.List(ctx, start, rows)
	if err != nil {
		return nil, err
	}

	summaries := make([]*Summary, len(records))
	for i, record := range records {
		summaries[i] = r.summarize(record)
	}

	return summaries, nil
}

// GetRoom returns the summary of a single room
func (r *Registry) GetRoom(ctx context.Context, roomID string) (*Summary, error) {
	record, err := r.store.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}

	return r.summarize(record), nil
}

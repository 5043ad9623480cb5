package room

import (
	"context"
	"testing"

	"seotda-server/pkg/game"
	"seotda-server/pkg/store"

	"github.com/stretchr/testify/assert"
)

func newTestRegistry() *Registry {
	return NewRegistry(store.NewMemory(), game.DefaultOptions())
}

// lastEvent drains the client's send buffer and returns the final event
func lastEvent(t *testing.T, c *Client) *Event {
	t.Helper()

	var last *Event
	for {
		select {
		case msg := <-c.SendChan():
			event, ok := msg.(*Event)
			if !ok {
				t.Fatalf("unexpected message type %T", msg)
			}
			last = event
		default:
			if last == nil {
				t.Fatal("no event queued")
			}
			return last
		}
	}
}

func lastState(t *testing.T, c *Client) *game.State {
	t.Helper()

	event := lastEvent(t, c)
	if event.Type != "game_state" {
		t.Fatalf("expected game_state, got %s", event.Type)
	}

	return event.Data.(*game.State)
}

func TestRegistry_CreateRoom(t *testing.T) {
	a := assert.New(t)
	r := newTestRegistry()

	record, err := r.CreateRoom(context.Background(), "Test Room")
	a.NoError(err)
	a.Len(record.ID, 6)
	a.Equal("Test Room", record.Name)
	a.False(record.Created.IsZero())

	s := r.Lookup(record.ID)
	a.NotNil(s)
	a.Equal(game.PhaseWaiting, s.Phase())
	a.Equal(0, s.PlayerCount())

	a.Nil(r.Lookup("nope"))
}

func TestRegistry_Join(t *testing.T) {
	a := assert.New(t)
	r := newTestRegistry()

	record, err := r.CreateRoom(context.Background(), "Test Room")
	a.NoError(err)

	c1 := NewClient(nil)
	r.Receive(c1, &Envelope{Type: "join_room", RoomID: record.ID, PlayerID: "p1", PlayerName: "Alice"})

	a.Equal("p1", c1.PlayerID)
	state := lastState(t, c1)
	a.Len(state.Players, 1)
	a.Equal("Alice", state.Players[0].Name)
	a.Equal(5000, state.Players[0].Chips)

	roomID, ok := r.PlayerRoom("p1")
	a.True(ok)
	a.Equal(record.ID, roomID)

	c2 := NewClient(nil)
	r.Receive(c2, &Envelope{Type: "join_room", RoomID: record.ID, PlayerID: "p2", PlayerName: "Bob"})

	// both clients see the two-player snapshot
	a.Len(lastState(t, c1).Players, 2)
	a.Len(lastState(t, c2).Players, 2)

	// a third seat does not exist
	c3 := NewClient(nil)
	r.Receive(c3, &Envelope{Type: "join_room", RoomID: record.ID, PlayerID: "p3"})
	event := lastEvent(t, c3)
	a.Equal("error", event.Type)
	a.Equal(errorData{Message: "room is full"}, event.Data)
	a.Equal("", c3.PlayerID)

	// unknown rooms are not auto-created
	c4 := NewClient(nil)
	r.Receive(c4, &Envelope{Type: "join_room", RoomID: "nope00", PlayerID: "p4"})
	event = lastEvent(t, c4)
	a.Equal("error", event.Type)
	a.Equal(errorData{Message: "room not found"}, event.Data)

	// duplicate player ids are rejected
	c5 := NewClient(nil)
	r.Receive(c5, &Envelope{Type: "join_room", RoomID: record.ID, PlayerID: "p1"})
	event = lastEvent(t, c5)
	a.Equal("error", event.Type)
	a.Equal(errorData{Message: "player is already seated"}, event.Data)
}

func TestRegistry_JoinBlankName(t *testing.T) {
	a := assert.New(t)
	r := newTestRegistry()

	record, err := r.CreateRoom(context.Background(), "Test Room")
	a.NoError(err)

	c := NewClient(nil)
	r.Receive(c, &Envelope{Type: "join_room", RoomID: record.ID, PlayerID: "p1"})

	state := lastState(t, c)
	a.NotEmpty(state.Players[0].Name)
}

// full round: join, ready, call, call, resolve
func TestRegistry_FullRound(t *testing.T) {
	a := assert.New(t)
	r := newTestRegistry()

	record, err := r.CreateRoom(context.Background(), "Test Room")
	a.NoError(err)

	c1 := NewClient(nil)
	c2 := NewClient(nil)
	r.Receive(c1, &Envelope{Type: "join_room", RoomID: record.ID, PlayerID: "p1", PlayerName: "Alice"})
	r.Receive(c2, &Envelope{Type: "join_room", RoomID: record.ID, PlayerID: "p2", PlayerName: "Bob"})

	r.Receive(c1, &Envelope{Type: "ready"})
	state := lastState(t, c1)
	a.Equal(game.PhaseWaiting, state.Phase)
	a.True(state.Players[0].IsReady)

	r.Receive(c2, &Envelope{Type: "ready"})
	state = lastState(t, c2)
	a.Equal(game.PhaseBetting, state.Phase)
	a.Equal(0, state.Pot)
	a.Equal(0, state.CurrentPlayer)
	a.Equal(1, state.Round)

	for _, p := range state.Players {
		a.Len(p.Cards, 2)
		a.Equal(game.StatusPlaying, p.Status)
		a.False(p.IsReady)
	}

	r.Receive(c1, &Envelope{Type: "bet", Action: "call"})
	state = lastState(t, c1)
	a.Equal(100, state.Pot)
	a.Equal(4900, state.Players[0].Chips)
	a.Equal(1, state.CurrentPlayer)

	// betting out of turn is silently ignored: no new broadcast
	r.Receive(c1, &Envelope{Type: "bet", Action: "call"})
	select {
	case msg := <-c1.SendChan():
		t.Fatalf("expected no broadcast, got %v", msg)
	default:
	}

	r.Receive(c2, &Envelope{Type: "bet", Action: "call"})
	state = lastState(t, c2)
	a.Equal(game.PhaseFinished, state.Phase)
	a.Equal(200, state.Pot)

	p1, p2 := state.Players[0], state.Players[1]
	switch {
	case p1.HandValue > p2.HandValue:
		a.Equal("Alice", state.Winner)
		a.Equal(5100, p1.Chips)
		a.Equal(4900, p2.Chips)
	case p2.HandValue > p1.HandValue:
		a.Equal("Bob", state.Winner)
		a.Equal(4900, p1.Chips)
		a.Equal(5100, p2.Chips)
	default:
		a.Equal("Alice, Bob", state.Winner)
		a.Equal(5000, p1.Chips)
		a.Equal(5000, p2.Chips)
	}

	// the next round can start
	r.Receive(c1, &Envelope{Type: "new_game"})
	state = lastState(t, c1)
	a.Equal(game.PhaseBetting, state.Phase)
	a.Equal(2, state.Round)
	a.Equal(0, state.Pot)
}

func TestRegistry_Leave(t *testing.T) {
	a := assert.New(t)
	m := store.NewMemory()
	r := NewRegistry(m, game.DefaultOptions())
	ctx := context.Background()

	record, err := r.CreateRoom(ctx, "Test Room")
	a.NoError(err)

	c1 := NewClient(nil)
	c2 := NewClient(nil)
	r.Receive(c1, &Envelope{Type: "join_room", RoomID: record.ID, PlayerID: "p1", PlayerName: "Alice"})
	r.Receive(c2, &Envelope{Type: "join_room", RoomID: record.ID, PlayerID: "p2", PlayerName: "Bob"})

	r.ClientDisconnected(c1)

	// the remaining player sees the departure
	state := lastState(t, c2)
	a.Len(state.Players, 1)
	a.Equal("Bob", state.Players[0].Name)

	_, ok := r.PlayerRoom("p1")
	a.False(ok)
	a.NotNil(r.Lookup(record.ID))

	// idempotent
	r.ClientDisconnected(c1)

	r.ClientDisconnected(c2)
	a.Nil(r.Lookup(record.ID))

	// the stored record is marked closed
	stored, err := m.Get(ctx, record.ID)
	a.NoError(err)
	a.True(stored.Closed)

	// clients that never joined are a no-op
	r.ClientDisconnected(NewClient(nil))
}

func TestRegistry_Summaries(t *testing.T) {
	a := assert.New(t)
	r := newTestRegistry()
	ctx := context.Background()

	record, err := r.CreateRoom(ctx, "Test Room")
	a.NoError(err)

	c := NewClient(nil)
	r.Receive(c, &Envelope{Type: "join_room", RoomID: record.ID, PlayerID: "p1", PlayerName: "Alice"})

	summaries, err := r.ListRooms(ctx, 0, 100)
	a.NoError(err)
	a.Len(summaries, 1)
	a.Equal(record.ID, summaries[0].ID)
	a.Equal(1, summaries[0].PlayerCount)
	a.Equal(game.PhaseWaiting, summaries[0].Phase)

	summary, err := r.GetRoom(ctx, record.ID)
	a.NoError(err)
	a.Equal(1, summary.PlayerCount)

	_, err = r.GetRoom(ctx, "nope00")
	a.Equal(store.ErrNotFound, err)

	// a room vanishes from the listing once its last player leaves
	r.ClientDisconnected(c)
	summaries, err = r.ListRooms(ctx, 0, 100)
	a.NoError(err)
	a.Len(summaries, 0)
}

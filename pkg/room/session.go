package room

import (
	"fmt"
	"sync"

	"seotda-server/pkg/game"

	"github.com/sirupsen/logrus"
)

// Session owns one live room: its game state and its connected clients.
// Every mutation and its broadcast run under the session mutex so players
// never observe a snapshot mid-mutation.
type Session struct {
	game    *game.Game
	clients map[string]*Client
	mu      sync.Mutex
	log     logrus.FieldLogger
}

func newSession(g *game.Game, log logrus.FieldLogger) *Session {
	return &Session{
		game:    g,
		clients: make(map[string]*Client),
		log:     log,
	}
}

// PlayerCount returns the number of seated players
func (s *Session) PlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.PlayerCount()
}

// Phase returns the room's current phase
func (s *Session) Phase() game.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.Phase()
}

// State returns the current snapshot
func (s *Session) State() *game.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.State()
}

// join seats the player, binds the client, and broadcasts
func (s *Session) join(c *Client, playerID, playerName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.game.AddPlayer(playerID, playerName, c.ID); err != nil {
		return err
	}

	c.PlayerID = playerID
	c.session = s
	s.clients[c.ID] = c

	s.broadcast()
	return nil
}

// Handle dispatches a bound client's message into the game
func (s *Session) Handle(c *Client, msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changed bool
	switch m := msg.(type) {
	case *Ready:
		changed = s.game.SetReady(c.PlayerID)
	case *Bet:
		changed = s.game.Bet(c.PlayerID, m.Action)
	case *NewGame:
		changed = s.game.NewRound(c.PlayerID)
	case *JoinRoom:
		// joins go through the registry
		return
	}

	if !changed {
		s.log.WithFields(logrus.Fields{
			"client":  c.String(),
			"message": fmt.Sprintf("%T", msg),
		}).Debug("message ignored")
		return
	}

	s.broadcast()
}

// leave removes the player and reports whether the room is now empty
func (s *Session) leave(c *Client) (empty bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.clients, c.ID)
	if c.PlayerID != "" {
		s.game.RemovePlayer(c.PlayerID)
	}

	if s.game.PlayerCount() == 0 {
		return true
	}

	s.broadcast()
	return false
}

// broadcast pushes the full snapshot to every connected client.
// Callers must hold s.mu. Each send is fault-isolated: one dead or slow
// peer never blocks the others.
func (s *Session) broadcast() {
	event := NewStateEvent(s.game.State())

	for _, c := range s.clients {
		if !c.Send(event) {
			s.log.WithField("client", c.String()).Warn("send buffer full, dropping state update")
		}
	}
}

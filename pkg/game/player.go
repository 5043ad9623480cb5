package game

import "seotda-server/pkg/deck"

// Status represents a player's status within the current round
type Status string

// player status constants
const (
	StatusWaiting Status = "waiting"
	StatusPlaying Status = "playing"
	StatusFolded  Status = "folded"
	StatusAllIn   Status = "all-in"
)

// Player is a seated player
// A player is owned by exactly one Game and must only be accessed through it
type Player struct {
	ID         string
	Name       string
	Chips      int
	CurrentBet int
	Cards      []*deck.Card
	HandValue  int
	HandName   string
	Status     Status
	IsReady    bool

	// SubscriberID is an opaque handle to the player's outbound message
	// channel. The transport layer owns the connection and looks it up by
	// this id, so the game never touches a connection directly.
	SubscriberID string
}

func newPlayer(id, name, subscriberID string, chips int) *Player {
	return &Player{
		ID:           id,
		Name:         name,
		Chips:        chips,
		Cards:        make([]*deck.Card, 0, 2),
		Status:       StatusWaiting,
		SubscriberID: subscriberID,
	}
}

// Hand returns a shallow copy of the player's hand
func (p *Player) Hand() []*deck.Card {
	return append([]*deck.Card{}, p.Cards...)
}

func (p *Player) clearHand() {
	p.Cards = make([]*deck.Card, 0, 2)
	p.HandValue = 0
	p.HandName = ""
}

package game

import "seotda-server/pkg/deck"

// State is the full room snapshot broadcast to every player after a
// mutation. The JSON field names are the wire contract; do not rename.
type State struct {
	ID            string         `json:"id"`
	Players       []*PlayerState `json:"players"`
	CurrentPlayer int            `json:"currentPlayer"`
	Phase         Phase          `json:"phase"`
	Pot           int            `json:"pot"`
	MinBet        int            `json:"minBet"`
	MaxBet        int            `json:"maxBet"`
	Round         int            `json:"round"`
	Winner        string         `json:"winner"`
}

// PlayerState is a player's slice of the snapshot
type PlayerState struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Chips      int          `json:"chips"`
	CurrentBet int          `json:"currentBet"`
	Cards      []*deck.Card `json:"cards"`
	HandValue  int          `json:"handValue"`
	HandName   string       `json:"handName"`
	Status     Status       `json:"status"`
	IsReady    bool         `json:"isReady"`
}

// State returns the current snapshot
func (g *Game) State() *State {
	players := make([]*PlayerState, len(g.players))
	for i, p := range g.players {
		players[i] = &PlayerState{
			ID:         p.ID,
			Name:       p.Name,
			Chips:      p.Chips,
			CurrentBet: p.CurrentBet,
			Cards:      p.Hand(),
			HandValue:  p.HandValue,
			HandName:   p.HandName,
			Status:     p.Status,
			IsReady:    p.IsReady,
		}
	}

	return &State{
		ID:            g.id,
		Players:       players,
		CurrentPlayer: g.currentPlayer,
		Phase:         g.phase,
		Pot:           g.pot,
		MinBet:        g.options.MinBet,
		MaxBet:        g.options.MaxBet,
		Round:         g.round,
		Winner:        g.winner,
	}
}

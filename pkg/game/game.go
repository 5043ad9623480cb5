package game

import (
	"strings"

	"seotda-server/pkg/deck"

	"github.com/sirupsen/logrus"
)

// Phase represents the current phase of the round
type Phase string

// phase constants
const (
	PhaseWaiting  Phase = "waiting"
	PhaseBetting  Phase = "betting"
	PhaseReveal   Phase = "reveal"
	PhaseFinished Phase = "finished"
)

// Action is a betting action
type Action string

// betting action constants
const (
	ActionFold  Action = "fold"
	ActionCall  Action = "call"
	ActionHalf  Action = "half"
	ActionAllIn Action = "all-in"
)

// ActionFromString validates a client-supplied action string
func ActionFromString(s string) (Action, bool) {
	switch a := Action(s); a {
	case ActionFold, ActionCall, ActionHalf, ActionAllIn:
		return a, true
	}

	return "", false
}

// maxPlayers is the table size. Seotda here is strictly heads-up.
const maxPlayers = 2

// Game is a single Seotda table
// Game is not safe for concurrent use; the room session serializes access
type Game struct {
	id      string
	options Options

	// players is in seat order; seat order determines turn order
	players       []*Player
	currentPlayer int
	phase         Phase
	pot           int
	round         int
	winner        string

	// deckSeed forces a deterministic deal. Tests only.
	deckSeed int64

	log logrus.FieldLogger
}

// New returns a new table in the waiting phase
func New(id string, opts Options, log logrus.FieldLogger) *Game {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Game{
		id:      id,
		options: opts,
		players: make([]*Player, 0, maxPlayers),
		phase:   PhaseWaiting,
		log:     log.WithField("game", id),
	}
}

// ID returns the table identifier
func (g *Game) ID() string {
	return g.id
}

// Phase returns the current phase
func (g *Game) Phase() Phase {
	return g.phase
}

// PlayerCount returns the number of seated players
func (g *Game) PlayerCount() int {
	return len(g.players)
}

// Player returns the seated player with the given id, or nil
func (g *Game) Player(id string) *Player {
	for _, p := range g.players {
		if p.ID == id {
			return p
		}
	}

	return nil
}

// AddPlayer seats a new player
func (g *Game) AddPlayer(id, name, subscriberID string) (*Player, error) {
	if g.Player(id) != nil {
		return nil, ErrAlreadySeated
	}

	if len(g.players) >= maxPlayers {
		return nil, ErrGameFull
	}

	p := newPlayer(id, name, subscriberID, g.options.StartingChips)
	g.players = append(g.players, p)

	g.log.WithFields(logrus.Fields{
		"player": id,
		"name":   name,
	}).Debug("player seated")

	return p, nil
}

// RemovePlayer removes a seated player
// Removing an unknown id is a no-op and returns false
func (g *Game) RemovePlayer(id string) bool {
	for i, p := range g.players {
		if p.ID == id {
			g.players = append(g.players[:i], g.players[i+1:]...)
			if g.currentPlayer >= len(g.players) {
				g.currentPlayer = 0
			}

			g.log.WithField("player", id).Debug("player left")
			return true
		}
	}

	return false
}

// SetReady marks the player as ready. When both seats are filled and ready,
// the first betting round starts. Returns false if nothing changed.
func (g *Game) SetReady(id string) bool {
	if g.phase != PhaseWaiting {
		return false
	}

	p := g.Player(id)
	if p == nil {
		return false
	}

	p.IsReady = true

	if len(g.players) == maxPlayers && g.allReady() {
		g.startRound()
	}

	return true
}

func (g *Game) allReady() bool {
	for _, p := range g.players {
		if !p.IsReady {
			return false
		}
	}

	return true
}

// startRound resets the per-round state and deals new hands
func (g *Game) startRound() {
	g.phase = PhaseBetting
	g.currentPlayer = 0
	g.pot = 0
	g.winner = ""
	g.round++

	for _, p := range g.players {
		p.Status = StatusPlaying
		p.CurrentBet = 0
		p.IsReady = false
	}

	g.deal()

	g.log.WithField("round", g.round).Debug("round started")
}

// deal reshuffles a full deck and gives each seat two cards in seat order
func (g *Game) deal() {
	d := deck.New()
	if g.deckSeed != 0 {
		d.SetSeed(g.deckSeed)
	}
	d.Shuffle()

	for _, p := range g.players {
		p.clearHand()
		for i := 0; i < 2; i++ {
			card, err := d.Draw()
			if err != nil {
				// cannot happen with two seats and a 36-card deck
				panic(err)
			}
			p.Cards = append(p.Cards, card)
		}

		p.HandValue, p.HandName = EvaluateHand(p.Cards)
	}
}

// Bet performs a betting action for the given player.
// Actions from a player out of turn, in the wrong phase, or with
// insufficient chips are silent no-ops and return false.
func (g *Game) Bet(id string, action Action) bool {
	if g.phase != PhaseBetting {
		return false
	}

	if g.currentPlayer >= len(g.players) {
		return false
	}

	p := g.players[g.currentPlayer]
	if p.ID != id {
		return false
	}

	switch action {
	case ActionFold:
		return g.fold(p)
	case ActionCall:
		return g.placeBet(p, g.options.MinBet)
	case ActionHalf:
		return g.placeBet(p, g.pot/2)
	case ActionAllIn:
		return g.allIn(p)
	}

	return false
}

func (g *Game) fold(p *Player) bool {
	p.Status = StatusFolded

	// heads-up: a fold always ends the hand
	for _, other := range g.players {
		if other.ID != p.ID {
			other.Chips += g.pot
			g.winner = other.Name
			break
		}
	}

	g.phase = PhaseFinished
	g.log.WithField("winner", g.winner).Debug("player folded")

	return true
}

func (g *Game) placeBet(p *Player, amount int) bool {
	if p.Chips < amount {
		return false
	}

	p.Chips -= amount
	p.CurrentBet += amount
	g.pot += amount

	g.advanceTurn()
	g.maybeResolve()

	return true
}

func (g *Game) allIn(p *Player) bool {
	amount := p.Chips
	p.CurrentBet += amount
	g.pot += amount
	p.Chips = 0
	p.Status = StatusAllIn

	g.advanceTurn()
	g.maybeResolve()

	return true
}

func (g *Game) advanceTurn() {
	g.currentPlayer = (g.currentPlayer + 1) % len(g.players)
}

// maybeResolve moves to the reveal once every live player has chips in
func (g *Game) maybeResolve() {
	for _, p := range g.players {
		if p.Status == StatusPlaying && p.CurrentBet == 0 {
			return
		}
	}

	g.phase = PhaseReveal
	g.resolve()
}

// resolve awards the pot to the best live hand and finishes the round.
// On a rank tie the pot splits evenly, odd chip to the earlier seat.
func (g *Game) resolve() {
	var winners []*Player
	best := -1

	for _, p := range g.players {
		if p.Status == StatusFolded {
			continue
		}

		if p.HandValue > best {
			best = p.HandValue
			winners = []*Player{p}
		} else if p.HandValue == best {
			winners = append(winners, p)
		}
	}

	share := g.pot / len(winners)
	remainder := g.pot % len(winners)

	names := make([]string, len(winners))
	for i, w := range winners {
		amount := share
		if i == 0 {
			amount += remainder
		}

		w.Chips += amount
		names[i] = w.Name
	}

	g.winner = strings.Join(names, ", ")
	g.phase = PhaseFinished

	g.log.WithFields(logrus.Fields{
		"winner": g.winner,
		"pot":    g.pot,
	}).Debug("round resolved")
}

// NewRound starts the next round at the request of a seated player.
// Only valid once the current round has finished.
func (g *Game) NewRound(id string) bool {
	if g.phase != PhaseFinished {
		return false
	}

	if g.Player(id) == nil {
		return false
	}

	g.startRound()
	return true
}

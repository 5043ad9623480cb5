package room

import (
	"errors"
	"fmt"

	"seotda-server/pkg/game"
)

// Envelope is the raw tagged message read off the wire
type Envelope struct {
	Type       string `json:"type"`
	RoomID     string `json:"roomId,omitempty"`
	PlayerID   string `json:"playerId,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
	Action     string `json:"action,omitempty"`
}

// Message is a validated inbound message
// The concrete types form a closed set; envelopes are converted at the
// boundary so the game never sees raw wire data
type Message interface {
	message()
}

// JoinRoom seats the sender at a room
type JoinRoom struct {
	RoomID     string
	PlayerID   string
	PlayerName string
}

// Ready marks the sender as ready for the next round
type Ready struct{}

// Bet performs a betting action for the sender
type Bet struct {
	Action game.Action
}

// NewGame requests the next round
type NewGame struct{}

func (*JoinRoom) message() {}
func (*Ready) message()    {}
func (*Bet) message()      {}
func (*NewGame) message()  {}

// ParseMessage validates an envelope into a typed message
func ParseMessage(env *Envelope) (Message, error) {
	switch env.Type {
	case "join_room":
		if env.RoomID == "" {
			return nil, errors.New("roomId is required")
		}
		if env.PlayerID == "" {
			return nil, errors.New("playerId is required")
		}

		return &JoinRoom{
			RoomID:     env.RoomID,
			PlayerID:   env.PlayerID,
			PlayerName: env.PlayerName,
		}, nil
	case "ready":
		return &Ready{}, nil
	case "bet":
		action, ok := game.ActionFromString(env.Action)
		if !ok {
			return nil, fmt.Errorf("unknown bet action: %q", env.Action)
		}

		return &Bet{Action: action}, nil
	case "new_game":
		return &NewGame{}, nil
	}

	return nil, fmt.Errorf("unknown message type: %q", env.Type)
}

// Event is an outbound tagged message
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type errorData struct {
	Message string `json:"message"`
}

// NewStateEvent wraps a game snapshot for broadcast
func NewStateEvent(state *game.State) *Event {
	return &Event{
		Type: "game_state",
		Data: state,
	}
}

// NewErrorEvent wraps an error message for a single client
func NewErrorEvent(message string) *Event {
	return &Event{
		Type: "error",
		Data: errorData{Message: message},
	}
}

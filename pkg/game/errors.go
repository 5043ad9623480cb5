package game

import "errors"

// ErrGameFull is returned when a player tries to join a full table
var ErrGameFull = errors.New("room is full")

// ErrAlreadySeated is returned when a player id is already seated at the table
var ErrAlreadySeated = errors.New("player is already seated")

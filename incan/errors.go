package incan

import "errors"

var (
	ErrGameEnded      = errors.New("game already ended")
	ErrGameInProgress = errors.New("game already in progress")
	ErrTooFewPlayers  = errors.New("not enough players")
	ErrTableFull      = errors.New("table is full")
	ErrGameAborted    = errors.New("game aborted by player")
	ErrMalformedCard  = errors.New("malformed card")
)

type InvalidStateError string

func (e InvalidStateError) Error() string { return "invalid state: " + string(e) }

func ErrInvalidState(msg string) error { return InvalidStateError(msg) }

// Package tserrors holds the error values that describe why a player's command
// could not be carried out. Every one of them is recoverable; each carries a
// message meant to be shown to the player in place of a normal response.
package tserrors

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the kind of error returned when a line of input does not
	// match the command grammar at all.
	ErrParse = errors.New("input does not match command grammar")

	// ErrVocabulary is the kind of error returned when a command names a word
	// that is not a known object.
	ErrVocabulary = errors.New("word does not name a known object")

	// ErrPresence is the kind of error returned when a command names a known
	// object that is not in the scene.
	ErrPresence = errors.New("object is not in the scene")

	// ErrCapability is the kind of error returned when an object in the scene
	// does not support the requested action.
	ErrCapability = errors.New("object does not support the action")

	// ErrSpent is the kind of error returned when a one-time action is
	// attempted on an object that it was already done to.
	ErrSpent = errors.New("action was already done to the object")
)

// gameError is an error that happened while carrying out a player command. It
// has a human-readable message to show the player as well as a more technical
// message for Error().
type gameError struct {
	msg   string
	human string
	kind  error
}

func (e *gameError) Error() string {
	return e.msg
}

// GameMessage shows the message that should be displayed in-game to describe
// the error.
func (e *gameError) GameMessage() string {
	return e.human
}

// Unwrap gives the kind of failure, one of the Err* values of this package.
func (e *gameError) Unwrap() error {
	return e.kind
}

// New returns an error of the given kind that shows the given message to the
// player. kind should be one of the Err* values in this package; it is what
// errors.Is will match against.
func New(kind error, game string) error {
	technical := fmt.Sprintf("%v: %q", kind, game)
	if kind == nil {
		technical = fmt.Sprintf("game error: %q", game)
	}
	return &gameError{
		msg:   technical,
		human: game,
		kind:  kind,
	}
}

// Newf is New with the player message built from a format string and its
// arguments.
func Newf(kind error, gameFormat string, a ...interface{}) error {
	return New(kind, fmt.Sprintf(gameFormat, a...))
}

// Suffix returns a copy of err with suffix appended to its player message. The
// kind of the error is kept. If err is not a game error, a new game error with
// no kind is made from err.Error().
func Suffix(err error, suffix string) error {
	var ge *gameError
	if errors.As(err, &ge) {
		return New(ge.kind, ge.human+suffix)
	}
	return New(nil, err.Error()+suffix)
}

// GameMessage gets the message to display to the player for the given error.
// If it is one of the errors made in tserrors, the game message is returned.
// Otherwise, err.Error() is returned.
func GameMessage(err error) string {
	var ge *gameError
	if errors.As(err, &ge) {
		return ge.GameMessage()
	}
	return err.Error()
}

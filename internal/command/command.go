// Package command defines the instructions a player can give and handles
// parsing of them from lines of input.
package command

import (
	"fmt"

	"github.com/dekarrin/tunascene/internal/vocab"
)

// Action is the thing an Instruction asks to be done.
type Action int

const (
	// Exit ends the session. It never reaches a scene; whatever runs the
	// session must handle it.
	Exit Action = iota

	// Look surveys the whole scene.
	Look

	// Describe looks at one object.
	Describe

	// Consume eats one object.
	Consume

	// Read reads one object.
	Read
)

func (a Action) String() string {
	switch a {
	case Exit:
		return "EXIT"
	case Look:
		return "LOOK"
	case Describe:
		return "DESCRIBE"
	case Consume:
		return "CONSUME"
	case Read:
		return "READ"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// TakesObject returns whether the Action is done to a particular object.
func (a Action) TakesObject() bool {
	return a == Describe || a == Consume || a == Read
}

// Instruction is a single parsed player command. It is a plain value, built
// once per turn.
type Instruction struct {

	// Action is what the player wants to do.
	Action Action

	// Kind is the kind of object the player named. It is vocab.None if the
	// Action does not take an object, or if the word the player used for the
	// object is not one that is known.
	Kind vocab.Kind

	// Token is exactly what the player typed to name the object. It is kept
	// even when Kind is vocab.None so that responses can echo it back. It is
	// empty for Actions that do not take an object.
	Token string
}

// Resolved returns whether the object named in the Instruction was recognized
// as a known kind.
func (inst Instruction) Resolved() bool {
	return inst.Kind != vocab.None
}

func (inst Instruction) String() string {
	if !inst.Action.TakesObject() {
		return inst.Action.String()
	}
	return fmt.Sprintf("%s(%s, %q)", inst.Action, inst.Kind, inst.Token)
}

// Reader is a type that can be used for getting lines of command input.
type Reader interface {
	// ReadCommand reads a single line of user input. It will block until one
	// is ready. If there is an error or input is at end (EOF), the returned
	// string will be empty.
	//
	// When error is io.EOF, string will always be empty. If EOF was
	// encountered on a call but some input was received, the input will be
	// returned and error will be nil, and the next call to ReadCommand will
	// return "", io.EOF.
	ReadCommand() (string, error)

	// Close performs any operations required to clean the resources created
	// by the Reader. It should be called at least once when the Reader is no
	// longer needed.
	Close() error
}

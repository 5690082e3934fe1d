package command

import (
	"strings"

	"github.com/dekarrin/tunascene/internal/tserrors"
	"github.com/dekarrin/tunascene/internal/vocab"
)

// ParseFailureMessage is shown to the player for every line that does not
// match the command grammar.
const ParseFailureMessage = "I don't understand."

// filler is the one word that may sit between a verb and its object without
// changing the meaning.
const filler = "the"

// Parse parses an Instruction from a single line of input. If the line does
// not match the grammar, a non-nil error wrapping tserrors.ErrParse is
// returned; the same error is used for every kind of malformed line.
//
// The grammar is strict. Verbs are lower case, tokens are separated by exactly
// one space, and the only accepted forms are:
//
//	exit
//	look
//	look at [the] NOUN
//	eat [the] NOUN
//	read [the] NOUN
//
// A NOUN that is not known vocabulary still parses; the returned Instruction
// will have a Kind of vocab.None and keep the word in Token.
func Parse(line string) (Instruction, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Instruction{}, parseFailure()
	}

	tokens := strings.Split(line, " ")
	verb, args := tokens[0], tokens[1:]

	switch verb {
	case "exit":
		if len(args) != 0 {
			return Instruction{}, parseFailure()
		}
		return Instruction{Action: Exit}, nil
	case "look":
		if len(args) == 0 {
			return Instruction{Action: Look}, nil
		}

		// anything else must be a look AT something
		if args[0] != "at" {
			return Instruction{}, parseFailure()
		}
		return parseObject(Describe, args[1:])
	case "eat":
		return parseObject(Consume, args)
	case "read":
		return parseObject(Read, args)
	default:
		return Instruction{}, parseFailure()
	}
}

// parseObject parses "NOUN" or "the NOUN" from args.
func parseObject(act Action, args []string) (Instruction, error) {
	if len(args) == 2 && args[0] == filler {
		args = args[1:]
	}
	if len(args) != 1 || args[0] == "" {
		return Instruction{}, parseFailure()
	}

	noun := args[0]
	kind, _ := vocab.Resolve(noun)

	inst := Instruction{
		Action: act,
		Kind:   kind,
		Token:  noun,
	}
	return inst, nil
}

func parseFailure() error {
	return tserrors.New(tserrors.ErrParse, ParseFailureMessage)
}

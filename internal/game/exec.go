package game

import (
	"fmt"

	"github.com/dekarrin/tunascene/internal/command"
	"github.com/dekarrin/tunascene/internal/tserrors"
	"github.com/dekarrin/tunascene/internal/util"
)

const (
	// ConsumeFailureSuffix finishes the sentence of every failed Consume.
	ConsumeFailureSuffix = ", so you decide not to eat it."

	// ReadFailureSuffix finishes the sentence of every failed Read.
	ReadFailureSuffix = ", so you put it back down."
)

// Do carries out the instruction against the Scene and returns the narrative
// response to show the player. Failures are part of the narrative; Do returns
// the failure's game message in that case. At most one entity changes state.
//
// Do panics if given an Exit instruction. Exit must be handled by whatever is
// running the session before it ever reaches a Scene.
func (sc *Scene) Do(inst command.Instruction) string {
	output, err := sc.Execute(inst)
	if err != nil {
		return tserrors.GameMessage(err)
	}
	return output
}

// Execute carries out the instruction against the Scene. If the instruction
// could not be carried out, the returned error wraps one of
// tserrors.ErrVocabulary, tserrors.ErrPresence, tserrors.ErrCapability, or
// tserrors.ErrSpent, and its game message is the full response to show.
//
// Execute panics if given an Exit instruction.
func (sc *Scene) Execute(inst command.Instruction) (string, error) {
	switch inst.Action {
	case command.Exit:
		panic("exit instruction reached the scene; it must be handled by the caller")
	case command.Look:
		return sc.Summary(), nil
	case command.Describe:
		ent, err := sc.target(inst)
		if err != nil {
			return "", err
		}
		return ent.Describe(), nil
	case command.Consume:
		ent, err := sc.target(inst)
		if err != nil {
			return "", err
		}
		output, err := ent.Consume()
		if err != nil {
			return "", tserrors.Suffix(err, ConsumeFailureSuffix)
		}
		return output, nil
	case command.Read:
		ent, err := sc.target(inst)
		if err != nil {
			return "", err
		}
		output, err := ent.Read()
		if err != nil {
			return "", tserrors.Suffix(err, ReadFailureSuffix)
		}
		return output, nil
	default:
		panic(fmt.Sprintf("unknown action: %v", inst.Action))
	}
}

// target gets the entity that the instruction is acting upon. Unrecognized
// words are checked before presence so the two failures never overlap.
func (sc *Scene) target(inst command.Instruction) (Entity, error) {
	if !inst.Resolved() {
		return nil, tserrors.Newf(tserrors.ErrVocabulary, "You've never heard of %s.", util.WithArticle(inst.Token))
	}

	ent := sc.Find(inst.Kind)
	if ent == nil {
		return nil, tserrors.Newf(tserrors.ErrPresence, "You can't find %s here.", util.WithArticle(inst.Token))
	}

	return ent, nil
}

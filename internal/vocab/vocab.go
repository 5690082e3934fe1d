// Package vocab holds the closed set of object kinds that can exist in a scene
// and the vocabulary used to refer to them.
package vocab

import (
	"fmt"
	"strings"
)

// Kind identifies a category of world object. It says which live entity to
// look up; it carries no behavior of its own.
type Kind int

const (
	// None is the zero Kind. It means a word was not recognized as any known
	// object.
	None Kind = iota
	Apple
	Book
	Wrench
)

// nouns maps every recognized word to the Kind it names. Words are exact and
// lower case; there are no synonyms.
var nouns = map[string]Kind{
	"apple":  Apple,
	"book":   Book,
	"wrench": Wrench,
}

// All returns every Kind other than None, in declaration order.
func All() []Kind {
	return []Kind{Apple, Book, Wrench}
}

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Apple:
		return "apple"
	case Book:
		return "book"
	case Wrench:
		return "wrench"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Resolve returns the Kind that word names. If word is not a recognized noun,
// the returned Kind is None and ok is false. Resolution is about vocabulary
// only; it says nothing about whether such an object is actually present
// anywhere.
func Resolve(word string) (k Kind, ok bool) {
	k, ok = nouns[word]
	return k, ok
}

// ParseKind parses the name of a Kind as written in a scene definition. Unlike
// Resolve, case is ignored and surrounding space is trimmed, and an
// unrecognized name is an error.
func ParseKind(s string) (Kind, error) {
	k, ok := Resolve(strings.ToLower(strings.TrimSpace(s)))
	if !ok {
		return None, fmt.Errorf("not a known kind of object: %q", s)
	}
	return k, nil
}

package game

import (
	"fmt"

	"github.com/dekarrin/tunascene/internal/tserrors"
	"github.com/dekarrin/tunascene/internal/vocab"
)

// File entity.go holds the objects that can exist in a scene and what each
// of them does when acted upon.

// Entity is one live object in a Scene. The set of implementations is closed;
// only the types in this package satisfy it.
//
// Describe always succeeds. Consume and Read return the narrative of the action
// on success, or an error from tserrors describing why the action could not be
// done. Failure messages are clauses with no final punctuation so the caller
// can finish the sentence.
type Entity interface {
	// Kind returns the kind of object the Entity is.
	Kind() vocab.Kind

	// Name returns the word the player uses to refer to the Entity.
	Name() string

	// Describe returns what the player sees when looking at the Entity. It
	// reflects the Entity's current state.
	Describe() string

	// Consume attempts to eat the Entity.
	Consume() (string, error)

	// Read attempts to read the Entity.
	Read() (string, error)

	entity()
}

// inert gives the default behavior for every action: it is not possible. Each
// Entity embeds it and overrides only the actions that make sense for it.
type inert struct{}

func (inert) entity() {}

func (inert) Consume() (string, error) {
	return "", tserrors.New(tserrors.ErrCapability, "It's not food")
}

func (inert) Read() (string, error) {
	return "", tserrors.New(tserrors.ErrCapability, "There's nothing to read")
}

// Apple is food that can be eaten exactly once. After that only the core is
// left.
type Apple struct {
	inert
	consumed bool
}

// NewApple returns a whole, uneaten Apple.
func NewApple() *Apple {
	return &Apple{}
}

// Kind returns vocab.Apple.
func (a *Apple) Kind() vocab.Kind {
	return vocab.Apple
}

// Consumed returns whether the Apple has been eaten.
func (a *Apple) Consumed() bool {
	return a.consumed
}

func (a *Apple) Name() string {
	return a.Kind().String()
}

func (a *Apple) Describe() string {
	if a.consumed {
		return "It's an apple core."
	}
	return "It's a tempting red apple."
}

// Consume eats the Apple. This succeeds only the first time; every later call
// returns an error that wraps tserrors.ErrSpent and leaves the Apple as it is.
func (a *Apple) Consume() (string, error) {
	if a.consumed {
		return "", tserrors.New(tserrors.ErrSpent, "The core doesn't look appetising")
	}

	a.consumed = true
	return "It's delicious! All that's left is the core.", nil
}

// Book can be read any number of times. Its text never changes.
type Book struct {
	inert

	// Title is the title printed on the cover.
	Title string

	// Author is who wrote the Book.
	Author string

	// Contents is the full text of the Book, returned verbatim by Read.
	Contents string
}

// NewBook returns a Book with the given title, author, and text.
func NewBook(title, author, contents string) *Book {
	return &Book{
		Title:    title,
		Author:   author,
		Contents: contents,
	}
}

// Kind returns vocab.Book.
func (b *Book) Kind() vocab.Kind {
	return vocab.Book
}

func (b *Book) Name() string {
	return b.Kind().String()
}

func (b *Book) Describe() string {
	return fmt.Sprintf("It's a book. The title reads \"%s\" by %s.", b.Title, b.Author)
}

func (b *Book) Read() (string, error) {
	return "The book reads:\n" + b.Contents, nil
}

// Wrench is a prop. It can be looked at and nothing else.
type Wrench struct {
	inert
}

// NewWrench returns a Wrench.
func NewWrench() *Wrench {
	return &Wrench{}
}

// Kind returns vocab.Wrench.
func (w *Wrench) Kind() vocab.Kind {
	return vocab.Wrench
}

func (w *Wrench) Name() string {
	return w.Kind().String()
}

func (w *Wrench) Describe() string {
	return "It's a wrench."
}

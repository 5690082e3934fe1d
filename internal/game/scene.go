// Package game holds the scene the player is in, the objects in it, and the
// logic for carrying out instructions against them.
package game

import (
	"fmt"

	"github.com/dekarrin/tunascene/internal/util"
	"github.com/dekarrin/tunascene/internal/vocab"
)

// Scene is the single room the game takes place in and every object in it. The
// roster of objects is fixed when the Scene is made; objects are never added
// or removed afterwards, only changed.
//
// A Scene must be made with NewScene or DefaultScene.
type Scene struct {
	entities []Entity
}

// NewScene creates a Scene holding the given entities, in order. At most one
// entity of each kind may be given. An empty Scene is allowed.
func NewScene(entities ...Entity) (*Scene, error) {
	seen := map[vocab.Kind]bool{}
	roster := make([]Entity, 0, len(entities))

	for i, ent := range entities {
		if ent == nil {
			return nil, fmt.Errorf("entity %d is nil", i)
		}
		k := ent.Kind()
		if seen[k] {
			return nil, fmt.Errorf("entity %d: scene already has a %s", i, k)
		}
		seen[k] = true
		roster = append(roster, ent)
	}

	return &Scene{entities: roster}, nil
}

// DefaultScene returns the standard scene: an apple and a book.
func DefaultScene() *Scene {
	// the roster is static and duplicate-free, so this cannot fail
	sc, _ := NewScene(
		NewApple(),
		NewBook(
			"The Lusty Argonian Maid",
			"Crassius Curio",
			"[contents here]",
		),
	)
	return sc
}

// Find returns the entity of the given kind in the Scene. If there is no such
// entity, nil is returned. The returned Entity is the live object; changes
// made through it persist in the Scene.
func (sc *Scene) Find(k vocab.Kind) Entity {
	for _, ent := range sc.entities {
		if ent.Kind() == k {
			return ent
		}
	}
	return nil
}

// Kinds returns the kinds of every entity in the Scene, in roster order.
func (sc *Scene) Kinds() []vocab.Kind {
	kinds := make([]vocab.Kind, len(sc.entities))
	for i := range sc.entities {
		kinds[i] = sc.entities[i].Kind()
	}
	return kinds
}

// Len returns the number of entities in the Scene.
func (sc *Scene) Len() int {
	return len(sc.entities)
}

// Summary returns what the player sees when looking around the whole Scene.
func (sc *Scene) Summary() string {
	if len(sc.entities) < 1 {
		return "You look around and see nothing of interest."
	}

	names := make([]string, len(sc.entities))
	for i := range sc.entities {
		names[i] = sc.entities[i].Name()
	}

	return "You look around and see " + util.MakeTextList(names, true) + "."
}

func (sc *Scene) String() string {
	return fmt.Sprintf("Scene%v", sc.Kinds())
}

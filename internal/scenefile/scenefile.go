// Package scenefile has functions for loading a scene roster from a TQS
// (TunaScene) data file. A TQS file may be written as TOML or as YAML; which
// one is decided by the file extension.
package scenefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/tunascene/internal/game"
	"github.com/dekarrin/tunascene/internal/vocab"
	"gopkg.in/yaml.v3"
)

const (
	// FormatTQS is the only value of the "format" key that is accepted.
	FormatTQS = "TQS"

	// TypeScene is the only value of the "type" key that is accepted.
	TypeScene = "SCENE"
)

var (
	// ErrUnknownEncoding is returned when a file's extension does not say
	// whether it is TOML or YAML.
	ErrUnknownEncoding = errors.New("file extension must be one of .tqs, .toml, .yaml, or .yml")

	// ErrDuplicateKind is returned when a scene lists the same kind of object
	// more than once.
	ErrDuplicateKind = errors.New("kind of object given more than once")
)

// Encoding is the text encoding a TQS file is written in.
type Encoding int

const (
	TOML Encoding = iota
	YAML
)

func (enc Encoding) String() string {
	switch enc {
	case TOML:
		return "TOML"
	case YAML:
		return "YAML"
	default:
		return fmt.Sprintf("Encoding(%d)", int(enc))
	}
}

// EncodingFor returns the Encoding of the file at path based on its extension.
func EncodingFor(path string) (Encoding, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tqs", ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return TOML, ErrUnknownEncoding
	}
}

// Load reads the TQS file at path and builds the Scene it describes.
func Load(path string) (*game.Scene, error) {
	enc, err := EncodingFor(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}

	sc, err := Parse(data, enc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes TQS data in the given encoding and builds the Scene it
// describes.
func Parse(data []byte, enc Encoding) (*game.Scene, error) {
	var tqs topLevelScene

	switch enc {
	case TOML:
		if err := toml.Unmarshal(data, &tqs); err != nil {
			return nil, fmt.Errorf("decoding TOML: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &tqs); err != nil {
			return nil, fmt.Errorf("decoding YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported encoding: %v", enc)
	}

	return tqs.toGameScene()
}

// topLevelScene is the top-level structure of a complete TQS file.
type topLevelScene struct {
	Format  string   `toml:"format" yaml:"format"`
	Type    string   `toml:"type" yaml:"type"`
	Objects []object `toml:"object" yaml:"object"`
}

func (tqs topLevelScene) toGameScene() (*game.Scene, error) {
	if strings.ToUpper(tqs.Format) != FormatTQS {
		return nil, fmt.Errorf("format: must be %q but is %q", FormatTQS, tqs.Format)
	}
	if strings.ToUpper(tqs.Type) != TypeScene {
		return nil, fmt.Errorf("type: must be %q but is %q", TypeScene, tqs.Type)
	}

	seen := map[vocab.Kind]int{}
	entities := make([]game.Entity, len(tqs.Objects))
	for i, obj := range tqs.Objects {
		k, err := vocab.ParseKind(obj.Kind)
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		if prev, ok := seen[k]; ok {
			return nil, fmt.Errorf("object %d: %w: %s is also object %d", i, ErrDuplicateKind, k, prev)
		}
		seen[k] = i

		entities[i], err = obj.toGameEntity(k)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, k, err)
		}
	}

	return game.NewScene(entities...)
}

// object is a single [[object]] entry. Which fields apply depends on its kind.
type object struct {
	Kind     string `toml:"kind" yaml:"kind"`
	Title    string `toml:"title" yaml:"title"`
	Author   string `toml:"author" yaml:"author"`
	Contents string `toml:"contents" yaml:"contents"`
}

func (obj object) toGameEntity(k vocab.Kind) (game.Entity, error) {
	switch k {
	case vocab.Apple:
		return game.NewApple(), nil
	case vocab.Book:
		if obj.Title == "" {
			return nil, fmt.Errorf("title: must be set")
		}
		if obj.Author == "" {
			return nil, fmt.Errorf("author: must be set")
		}
		return game.NewBook(obj.Title, obj.Author, obj.Contents), nil
	case vocab.Wrench:
		return game.NewWrench(), nil
	default:
		return nil, fmt.Errorf("no object can be made of kind %s", k)
	}
}

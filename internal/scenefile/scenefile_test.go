package scenefile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dekarrin/tunascene/internal/game"
	"github.com/dekarrin/tunascene/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlScene = `
format = "TQS"
type = "SCENE"

[[object]]
kind = "apple"

[[object]]
kind = "book"
title = "On Fish"
author = "A. Tuna"
contents = """Fish are friends."""

[[object]]
kind = "wrench"
`

const yamlScene = `
format: TQS
type: SCENE
object:
  - kind: wrench
  - kind: Book
    title: On Fish
    author: A. Tuna
    contents: |-
      Fish are friends.
      Not food.
`

func Test_Parse(t *testing.T) {
	testCases := []struct {
		name      string
		data      string
		enc       Encoding
		expect    []vocab.Kind
		expectErr bool
	}{
		{
			name:   "toml",
			data:   tomlScene,
			enc:    TOML,
			expect: []vocab.Kind{vocab.Apple, vocab.Book, vocab.Wrench},
		},
		{
			name:   "yaml",
			data:   yamlScene,
			enc:    YAML,
			expect: []vocab.Kind{vocab.Wrench, vocab.Book},
		},
		{
			name:   "no objects",
			data:   "format = \"tqs\"\ntype = \"scene\"\n",
			enc:    TOML,
			expect: []vocab.Kind{},
		},
		{
			name:      "wrong format",
			data:      "format = \"TQW\"\ntype = \"SCENE\"\n",
			enc:       TOML,
			expectErr: true,
		},
		{
			name:      "wrong type",
			data:      "format = \"TQS\"\ntype = \"MANIFEST\"\n",
			enc:       TOML,
			expectErr: true,
		},
		{
			name:      "unknown kind",
			data:      "format = \"TQS\"\ntype = \"SCENE\"\n[[object]]\nkind = \"dolphin\"\n",
			enc:       TOML,
			expectErr: true,
		},
		{
			name:      "duplicate kind",
			data:      "format = \"TQS\"\ntype = \"SCENE\"\n[[object]]\nkind = \"apple\"\n[[object]]\nkind = \"apple\"\n",
			enc:       TOML,
			expectErr: true,
		},
		{
			name:      "book without title",
			data:      "format: TQS\ntype: SCENE\nobject:\n  - kind: book\n    author: Someone\n",
			enc:       YAML,
			expectErr: true,
		},
		{
			name:      "bad toml",
			data:      "format = ",
			enc:       TOML,
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := Parse([]byte(tc.data), tc.enc)
			if tc.expectErr {
				assert.Error(err)
				return
			}

			assert.NoError(err)
			assert.Equal(tc.expect, actual.Kinds())
		})
	}
}

func Test_Parse_bookContents(t *testing.T) {
	assert := assert.New(t)

	sc, err := Parse([]byte(yamlScene), YAML)
	require.NoError(t, err)

	book, ok := sc.Find(vocab.Book).(*game.Book)
	require.True(t, ok)

	assert.Equal("On Fish", book.Title)
	assert.Equal("A. Tuna", book.Author)
	assert.Equal("Fish are friends.\nNot food.", book.Contents)
}

func Test_Parse_duplicateKindError(t *testing.T) {
	data := "format = \"TQS\"\ntype = \"SCENE\"\n[[object]]\nkind = \"book\"\ntitle = \"a\"\nauthor = \"b\"\n[[object]]\nkind = \"BOOK\"\ntitle = \"a\"\nauthor = \"b\"\n"

	_, err := Parse([]byte(data), TOML)

	assert.ErrorIs(t, err, ErrDuplicateKind)
}

func Test_EncodingFor(t *testing.T) {
	testCases := []struct {
		name      string
		path      string
		expect    Encoding
		expectErr bool
	}{
		{name: "tqs", path: "room.tqs", expect: TOML},
		{name: "toml", path: "dir/room.TOML", expect: TOML},
		{name: "yaml", path: "room.yaml", expect: YAML},
		{name: "yml", path: "room.yml", expect: YAML},
		{name: "json", path: "room.json", expectErr: true},
		{name: "no extension", path: "room", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := EncodingFor(tc.path)
			if tc.expectErr {
				assert.ErrorIs(err, ErrUnknownEncoding)
				return
			}

			assert.NoError(err)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Load(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "scene.tqs")
	yamlPath := filepath.Join(dir, "scene.yml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(tomlScene), 0644))
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlScene), 0644))

	sc, err := Load(tomlPath)
	if assert.NoError(err) {
		assert.Equal(3, sc.Len())
	}

	sc, err = Load(yamlPath)
	if assert.NoError(err) {
		assert.Equal(2, sc.Len())
	}

	_, err = Load(filepath.Join(dir, "missing.tqs"))
	assert.Error(err)

	_, err = Load(filepath.Join(dir, "scene.txt"))
	assert.ErrorIs(err, ErrUnknownEncoding)
}

func Test_Load_bundledScenes(t *testing.T) {
	testCases := []struct {
		name   string
		path   string
		expect []vocab.Kind
	}{
		{
			name:   "workshop",
			path:   filepath.Join("..", "..", "scenes", "workshop.tqs"),
			expect: []vocab.Kind{vocab.Apple, vocab.Book, vocab.Wrench},
		},
		{
			name:   "pantry",
			path:   filepath.Join("..", "..", "scenes", "pantry.yml"),
			expect: []vocab.Kind{vocab.Apple},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			sc, err := Load(tc.path)
			if !assert.NoError(err) {
				return
			}

			assert.Equal(tc.expect, sc.Kinds())
		})
	}
}

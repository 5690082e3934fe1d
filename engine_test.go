package tunascene

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dekarrin/tunascene/internal/config"
	"github.com/dekarrin/tunascene/internal/game"
	"github.com/dekarrin/tunascene/internal/logging"
	"github.com/dekarrin/tunascene/internal/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, in string, opts Options) (*Engine, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer
	opts.ForceDirect = true
	eng, err := New(strings.NewReader(in), &out, opts)
	require.NoError(t, err)
	t.Cleanup(func() { eng.Close() })

	return eng, &out
}

func Test_Engine_Turn(t *testing.T) {
	testCases := []struct {
		name       string
		input      []string
		expect     []string
		expectExit bool
	}{
		{
			name:  "full walkthrough",
			input: []string{"look", "eat apple", "eat apple", "look at book"},
			expect: []string{
				"You look around and see an apple and a book.",
				"It's delicious! All that's left is the core.",
				"The core doesn't look appetising, so you decide not to eat it.",
				`It's a book. The title reads "The Lusty Argonian Maid" by Crassius Curio.`,
			},
		},
		{
			name:   "each failure kind",
			input:  []string{"dance", "look at dolphin", "read wrench", "eat the book", "read apple"},
			expect: []string{
				"I don't understand.",
				"You've never heard of a dolphin.",
				"You can't find a wrench here.",
				"It's not food, so you decide not to eat it.",
				"There's nothing to read, so you put it back down.",
			},
		},
		{
			name:       "exit",
			input:      []string{"look", "exit"},
			expect:     []string{"You look around and see an apple and a book.", ""},
			expectExit: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			eng, _ := newTestEngine(t, "", Options{})

			var actual []string
			var exit bool
			for _, line := range tc.input {
				var output string
				output, exit = eng.Turn(line)
				actual = append(actual, output)
			}

			assert.Equal(tc.expect, actual)
			assert.Equal(tc.expectExit, exit)
		})
	}
}

func Test_Engine_Turn_exitLeavesSceneAlone(t *testing.T) {
	assert := assert.New(t)

	eng, _ := newTestEngine(t, "", Options{})

	assert.NotPanics(func() {
		_, exit := eng.Turn("exit")
		assert.True(exit)
	})

	apple := eng.Scene().Find(vocab.Apple).(*game.Apple)
	assert.False(apple.Consumed())
}

func Test_Engine_RunUntilExit(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		opts          Options
		expectOutput  []string
		expectAbsent  []string
		expectEaten   bool
		expectGoodbye bool
	}{
		{
			name:  "stops at exit",
			input: "look\nexit\neat apple\n",
			expectOutput: []string{
				"Welcome to TunaScene",
				"(direct input mode)",
				"You look around and see an apple and a book.",
			},
			expectAbsent:  []string{"delicious"},
			expectGoodbye: true,
		},
		{
			name:  "stops at end of input",
			input: "eat apple\nread book",
			expectOutput: []string{
				"It's delicious! All that's left is the core.",
				"The book reads:\n[contents here]",
			},
			expectEaten:   true,
			expectGoodbye: true,
		},
		{
			name:          "blank line is not understood",
			input:         "\nexit\n",
			expectOutput:  []string{"I don't understand."},
			expectGoodbye: true,
		},
		{
			name:          "echo shows commands",
			input:         "look at the apple\nexit\n",
			opts:          Options{Echo: true},
			expectOutput:  []string{"> look at the apple\n", "It's a tempting red apple."},
			expectGoodbye: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			eng, out := newTestEngine(t, tc.input, tc.opts)

			err := eng.RunUntilExit()
			if !assert.NoError(err) {
				return
			}

			actual := out.String()
			for _, s := range tc.expectOutput {
				assert.Contains(actual, s)
			}
			for _, s := range tc.expectAbsent {
				assert.NotContains(actual, s)
			}
			if tc.expectGoodbye {
				assert.True(strings.HasSuffix(actual, "Goodbye\n"), "output should end with goodbye: %q", actual)
			}

			apple := eng.Scene().Find(vocab.Apple).(*game.Apple)
			assert.Equal(tc.expectEaten, apple.Consumed())
		})
	}
}

func Test_New_sceneFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "shed.tqs")
	data := "format = \"TQS\"\ntype = \"SCENE\"\n[[object]]\nkind = \"wrench\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	eng, _ := newTestEngine(t, "", Options{SceneFile: path})

	assert.Equal([]vocab.Kind{vocab.Wrench}, eng.Scene().Kinds())

	output, _ := eng.Turn("look at book")
	assert.Equal("You can't find a book here.", output)

	output, _ = eng.Turn("look")
	assert.Equal("You look around and see a wrench.", output)
}

func Test_New_badSceneFile(t *testing.T) {
	assert := assert.New(t)

	_, err := New(strings.NewReader(""), &bytes.Buffer{}, Options{
		ForceDirect: true,
		SceneFile:   filepath.Join(t.TempDir(), "missing.tqs"),
	})

	assert.Error(err)
}

func Test_Engine_logsTurns(t *testing.T) {
	assert := assert.New(t)

	var logBuf bytes.Buffer
	log, err := logging.New(config.Config{LogLevel: "debug", LogFormat: config.LogFormatJSON}, &logBuf)
	require.NoError(t, err)

	eng, _ := newTestEngine(t, "", Options{Log: log})

	eng.Turn("eat book")
	eng.Turn("look at dolphin")

	logged := logBuf.String()
	assert.Contains(logged, eng.Session().String())
	assert.Contains(logged, `"outcome":"capability"`)
	assert.Contains(logged, `"outcome":"vocabulary"`)
	assert.Contains(logged, `"token":"dolphin"`)
}

func Test_Engine_Close_whileRunning(t *testing.T) {
	assert := assert.New(t)

	eng, _ := newTestEngine(t, "", Options{})
	eng.running = true
	defer func() { eng.running = false }()

	assert.Error(eng.Close())
}

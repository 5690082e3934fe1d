// Package tunascene contains a CLI-driven engine for reading player commands
// and carrying them out against a scene continuously until the player exits.
package tunascene

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/dekarrin/tunascene/internal/command"
	"github.com/dekarrin/tunascene/internal/game"
	"github.com/dekarrin/tunascene/internal/input"
	"github.com/dekarrin/tunascene/internal/logging"
	"github.com/dekarrin/tunascene/internal/scenefile"
	"github.com/dekarrin/tunascene/internal/tserrors"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultOutputWidth = 80

// Options are the settings used to create an Engine. The zero value is valid
// and runs the default scene.
type Options struct {
	// Scene is the scene to play. If nil, the scene is loaded from SceneFile.
	Scene *game.Scene

	// SceneFile is the path to a TQS file to load the scene from. If both it
	// and Scene are unset, the default scene is used.
	SceneFile string

	// ForceDirect forces reading directly from the input stream as opposed to
	// using readline, even when attached to a terminal.
	ForceDirect bool

	// Echo writes each command read back to the output after the prompt. It
	// is for replaying scripted input so the transcript shows what was typed.
	Echo bool

	// Width is the column that output is wrapped at. If less than 2, 80 is
	// used.
	Width int

	// Log receives a debug entry for every turn. If nil, nothing is logged.
	Log *logrus.Logger
}

// Engine contains the things needed to run a scene from an interactive shell
// attached to an input stream and an output stream.
type Engine struct {
	scene       *game.Scene
	in          command.Reader
	out         *bufio.Writer
	log         *logrus.Entry
	session     uuid.UUID
	width       int
	turn        int
	interactive bool
	forceDirect bool
	echo        bool
	running     bool
}

// New creates a new engine ready to operate on the given input and output
// streams. It will immediately open a buffered reader on the input stream and
// a buffered writer on the output stream.
//
// If nil is given for the input stream, stdin is used. If nil is given for the
// output stream, stdout is used. Readline is used for input only when both are
// the standard streams and opts.ForceDirect is not set.
func New(inputStream io.Reader, outputStream io.Writer, opts Options) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	sc := opts.Scene
	if sc == nil {
		if opts.SceneFile != "" {
			var err error
			sc, err = scenefile.Load(opts.SceneFile)
			if err != nil {
				return nil, fmt.Errorf("loading scene: %w", err)
			}
		} else {
			sc = game.DefaultScene()
		}
	}

	if opts.Width < 2 {
		opts.Width = defaultOutputWidth
	}

	logger := opts.Log
	if logger == nil {
		logger = logging.Discard()
	}

	session, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("could not generate session ID: %w", err)
	}

	eng := &Engine{
		scene:       sc,
		out:         bufio.NewWriter(outputStream),
		session:     session,
		width:       opts.Width,
		forceDirect: opts.ForceDirect,
		echo:        opts.Echo,
	}
	eng.log = logger.WithField("session", session.String())

	useReadline := !opts.ForceDirect && inputStream == os.Stdin && outputStream == os.Stdout

	// a blank line is a command like any other; the player is told it wasn't
	// understood
	if useReadline {
		icr, err := input.NewInteractiveReader()
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
		icr.AllowBlank(true)
		eng.in = icr
		eng.interactive = true
	} else {
		dcr := input.NewDirectReader(inputStream)
		dcr.AllowBlank(true)
		eng.in = dcr
	}

	eng.log.WithField("scene", sc.String()).Debug("engine created")

	return eng, nil
}

// Scene returns the scene the Engine is running.
func (eng *Engine) Scene() *game.Scene {
	return eng.scene
}

// Session returns the ID of the Engine's session. It is used to tell apart
// log entries from different sessions.
func (eng *Engine) Session() uuid.UUID {
	return eng.session
}

// Close closes all resources associated with the Engine, including any
// readline-related resources created for interactive mode.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running game engine")
	}

	err := eng.in.Close()
	if err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}

	return nil
}

// Turn carries out a single line of player input and returns the response to
// show. If the line is the exit command, exit is true and nothing is done to
// the scene; it is up to the caller to stop.
func (eng *Engine) Turn(line string) (output string, exit bool) {
	eng.turn++
	entry := eng.log.WithField("turn", eng.turn)

	inst, err := command.Parse(line)
	if err != nil {
		entry.WithField("outcome", outcomeOf(err)).Debug("could not parse input")
		return tserrors.GameMessage(err), false
	}

	entry = entry.WithField("action", inst.Action.String())
	if inst.Action.TakesObject() {
		entry = entry.WithFields(logrus.Fields{
			"kind":  inst.Kind.String(),
			"token": inst.Token,
		})
	}

	if inst.Action == command.Exit {
		entry.Debug("exit requested")
		return "", true
	}

	output, err = eng.scene.Execute(inst)
	entry.WithField("outcome", outcomeOf(err)).Debug("turn done")
	if err != nil {
		return tserrors.GameMessage(err), false
	}
	return output, false
}

// RunUntilExit begins reading commands from the streams and applying them to
// the scene until the exit command is received or input runs out.
func (eng *Engine) RunUntilExit() error {
	introMsg := "Welcome to TunaScene\n"
	if eng.forceDirect {
		introMsg += "(direct input mode)\n"
	}
	introMsg += "====================\n"
	introMsg += "\n"
	introMsg += eng.wrap("You are in a small, quiet room. Type \"look\" to look around, or \"exit\" to leave.") + "\n\n"

	if err := eng.write(introMsg); err != nil {
		return err
	}

	eng.running = true
	// so we dont have to remember to do this on every returned error condition
	defer func() {
		eng.running = false
	}()

	for eng.running {
		if !eng.interactive {
			if err := eng.write(input.DefaultPrompt); err != nil {
				return err
			}
		}

		line, err := eng.in.ReadCommand()
		if err != nil {
			if errors.Is(err, io.EOF) {
				eng.log.Debug("end of input")
				if !eng.interactive {
					if err := eng.write("\n"); err != nil {
						return err
					}
				}
				break
			}
			return fmt.Errorf("get user command: %w", err)
		}

		if eng.echo && !eng.interactive {
			if err := eng.write(line + "\n"); err != nil {
				return err
			}
		}

		output, exit := eng.Turn(line)
		if exit {
			eng.running = false
			break
		}

		if err := eng.write(eng.wrap(output) + "\n\n"); err != nil {
			return err
		}
	}

	return eng.write("Goodbye\n")
}

// wrap wraps each line of s to the Engine's width. Existing line breaks are
// kept.
func (eng *Engine) wrap(s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		if lines[i] == "" {
			continue
		}
		lines[i] = rosed.Edit(lines[i]).Wrap(eng.width).String()
	}
	return strings.Join(lines, "\n")
}

func (eng *Engine) write(s string) error {
	if _, err := eng.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}

// outcomeOf gives a short name for the kind of failure err is, for logging.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, tserrors.ErrParse):
		return "parse"
	case errors.Is(err, tserrors.ErrVocabulary):
		return "vocabulary"
	case errors.Is(err, tserrors.ErrPresence):
		return "presence"
	case errors.Is(err, tserrors.ErrCapability):
		return "capability"
	case errors.Is(err, tserrors.ErrSpent):
		return "spent"
	default:
		return "error"
	}
}

// Package input contains readers that get lines of player input from a
// terminal or from any other stream.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// DefaultPrompt is shown before each line is read.
const DefaultPrompt = "> "

// DirectReader implements command.Reader and reads lines from any generic
// input stream directly. It does not sanitize the input of control and escape
// sequences, and it does not show a prompt; callers that want one must write
// it themselves.
//
// DirectReader should not be created directly; use NewDirectReader.
type DirectReader struct {
	r             *bufio.Reader
	blanksAllowed bool
}

// InteractiveReader implements command.Reader and reads lines from stdin using
// a go implementation of GNU Readline. This keeps input clear of typing and
// editing escape sequences and gives the player command history. It should
// only be used when directly attached to a TTY.
//
// InteractiveReader should not be created directly; use
// NewInteractiveReader.
type InteractiveReader struct {
	rl            *readline.Instance
	blanksAllowed bool
	prompt        string
}

// NewDirectReader creates a DirectReader that buffers reads from r.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{
		r: bufio.NewReader(r),
	}
}

// NewInteractiveReader creates an InteractiveReader and initializes readline.
// The returned reader must have Close called on it before disposal to tear
// down readline.
func NewInteractiveReader() (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: DefaultPrompt,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveReader{
		rl:     rl,
		prompt: DefaultPrompt,
	}, nil
}

// Close does nothing; DirectReader does not own its stream. It exists so
// DirectReader implements command.Reader.
func (dr *DirectReader) Close() error {
	return nil
}

// Close cleans up readline resources.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}

// ReadCommand reads the next line from the stream with surrounding whitespace
// removed. Unless blank lines are allowed, it keeps reading until a line with
// non-space characters is found.
//
// At end of input, the returned string is empty and error is io.EOF.
func (dr *DirectReader) ReadCommand() (string, error) {
	return readNonBlank(dr.blanksAllowed, func() (string, error) {
		return dr.r.ReadString('\n')
	})
}

// ReadCommand reads the next line from the terminal with surrounding
// whitespace removed. Unless blank lines are allowed, it keeps reading until a
// line with non-space characters is entered.
//
// At end of input (or on interrupt), the returned string is empty and error is
// io.EOF or readline.ErrInterrupt.
func (ir *InteractiveReader) ReadCommand() (string, error) {
	return readNonBlank(ir.blanksAllowed, ir.rl.Readline)
}

// AllowBlank sets whether blank lines are returned. By default they are
// skipped.
func (dr *DirectReader) AllowBlank(allow bool) {
	dr.blanksAllowed = allow
}

// AllowBlank sets whether blank lines are returned. By default they are
// skipped.
func (ir *InteractiveReader) AllowBlank(allow bool) {
	ir.blanksAllowed = allow
}

// SetPrompt updates the prompt to the given text.
func (ir *InteractiveReader) SetPrompt(p string) {
	ir.prompt = p
	ir.rl.SetPrompt(p)
}

// GetPrompt gets the current prompt.
func (ir *InteractiveReader) GetPrompt() string {
	return ir.prompt
}

// readNonBlank calls next until it gives a line that is not blank, or until
// any line at all if blanks are allowed. A final line with no newline before
// EOF is still returned; the EOF is then reported on the following call.
func readNonBlank(blanksAllowed bool, next func() (string, error)) (string, error) {
	for {
		line, err := next()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)
		if line != "" || blanksAllowed {
			return line, nil
		}
	}
}

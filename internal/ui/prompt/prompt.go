package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrAborted is returned when input ends or the user interrupts a prompt.
var ErrAborted = errors.New("input aborted")

// Prompter asks a question and returns the trimmed answer.
type Prompter interface {
	Text(ctx context.Context, prompt, placeholder string) (string, error)
}

// New returns a TeaPrompter when in is a terminal and a LinePrompter
// otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return NewTea(in, out)
	}
	return NewLine(in, out)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// LinePrompter reads answers line by line. It never reads past the end of
// an answer, so whatever follows the last answer is left for the template
// script, which inherits the same stdin.
type LinePrompter struct {
	r   io.Reader
	out io.Writer
}

// NewLine creates a LinePrompter.
func NewLine(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{r: in, out: out}
}

// readLine reads up to and excluding the next newline, one byte at a time.
func readLine(r io.Reader) (string, error) {
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				return string(line), nil
			}
			line = append(line, buf[0])
		}
		if err != nil {
			return string(line), err
		}
	}
}

type lineResult struct {
	line string
	err  error
}

// Text prints "prompt: " and reads one line. A final line without a
// newline is accepted; end of input before any byte or cancellation of ctx
// returns ErrAborted. After an abort the prompter must not be reused.
func (p *LinePrompter) Text(ctx context.Context, prompt, _ string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", prompt)

	// The read runs aside so that an interrupt is not stuck behind a
	// blocking terminal read.
	ch := make(chan lineResult, 1)
	go func() {
		line, err := readLine(p.r)
		ch <- lineResult{line: line, err: err}
	}()

	var res lineResult
	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ErrAborted
	case res = <-ch:
	}

	line, err := res.line, res.err
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			fmt.Fprintln(p.out)
			return "", ErrAborted
		}
	}
	return strings.TrimSpace(line), nil
}

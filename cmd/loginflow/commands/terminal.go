package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"loginflow/internal/domain"
)

var errInputClosed = errors.New("input closed")

// hostEvent is something the controller asked the terminal to show.
type hostEvent struct {
	route   *domain.Route
	message domain.Message
}

// terminal hosts the login controller on a line-oriented terminal. The
// View and Navigator methods are called on the UI loop; they only record
// state and queue events for the prompt goroutine.
type terminal struct {
	in      *bufio.Reader
	out     io.Writer
	enabled atomic.Bool
	events  chan hostEvent
}

func newTerminal(in io.Reader, out io.Writer) *terminal {
	return &terminal{
		in:     bufio.NewReader(in),
		out:    out,
		events: make(chan hostEvent, 16),
	}
}

var (
	_ domain.View      = (*terminal)(nil)
	_ domain.Navigator = (*terminal)(nil)
)

func (t *terminal) SetSubmitEnabled(enabled bool) { t.enabled.Store(enabled) }

func (t *terminal) ShowMessage(m domain.Message) {
	t.events <- hostEvent{message: m}
}

func (t *terminal) Navigate(r domain.Route) {
	t.events <- hostEvent{route: &r}
}

// prompt prints label and reads one line with surrounding space trimmed.
func (t *terminal) prompt(label string) (string, error) {
	line, err := t.promptRaw(label)
	return strings.TrimSpace(line), err
}

// promptRaw prints label and reads one line, dropping only the line
// terminator. Secrets and codes are passed on exactly as typed.
func (t *terminal) promptRaw(label string) (string, error) {
	fmt.Fprint(t.out, label)
	line, err := t.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", errInputClosed
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (t *terminal) println(a ...any) { fmt.Fprintln(t.out, a...) }

package surface

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/x/term"
	"github.com/muesli/cancelreader"

	"veil/internal/app/indicator"
	"veil/internal/config/logger"
)

const (
	clearLine = "\r\x1b[2K"
	ctrlC     = 0x03
)

// Input is the terminal the surface puts into raw mode while it blocks interaction
type Input interface {
	io.Reader
	Fd() uintptr
}

// Terminal draws the indicator on a single line of out
type Terminal struct {
	out   io.Writer
	in    Input
	log   logger.Logger
	view  indicator.View
	state *term.State

	visible bool
	blocked bool
	drawn   bool

	raw         atomic.Bool
	reader      cancelreader.CancelReader
	drained     chan struct{}
	interruptMu sync.Mutex
	interrupt   func()
}

// NewTerminal creates a terminal surface; in may be nil when input cannot be blocked
func NewTerminal(out io.Writer, in Input, log logger.Logger) *Terminal {
	return &Terminal{
		out: out,
		in:  in,
		log: log.WithComponent("SURFACE"),
	}
}

// OnInterrupt registers fn to run when ctrl+c is read while input is blocked
func (t *Terminal) OnInterrupt(fn func()) {
	t.interruptMu.Lock()
	defer t.interruptMu.Unlock()

	t.interrupt = fn
}

// SetVisible raises or lowers the indicator line
func (t *Terminal) SetVisible(visible bool) {
	t.visible = visible

	if !visible {
		t.clear()
	}

	t.applyInput()
}

// SetInteractionBlocked sets whether keystrokes are swallowed while visible
func (t *Terminal) SetInteractionBlocked(blocked bool) {
	t.blocked = blocked
	t.applyInput()
}

// Attach makes view the line's content
func (t *Terminal) Attach(view indicator.View) {
	t.view = view
}

// Detach clears the line's content when view is the attached one
func (t *Terminal) Detach(view indicator.View) {
	if t.view == view {
		t.clear()
		t.view = nil
	}
}

// Visible reports whether the line is raised
func (t *Terminal) Visible() bool {
	return t.visible
}

// Raw reports whether the input terminal is in raw mode
func (t *Terminal) Raw() bool {
	return t.raw.Load()
}

// Tick advances the view and redraws the line
func (t *Terminal) Tick() {
	if !t.visible || t.view == nil || t.view.Hidden() {
		t.clear()
		return
	}

	if a, ok := t.view.(advancer); ok {
		a.Advance()
	}

	fmt.Fprint(t.out, clearLine+t.view.Render())
	t.drawn = true
}

// Close restores the input terminal and clears the line
func (t *Terminal) Close() {
	t.visible = false
	t.clear()
	t.applyInput()
}

func (t *Terminal) clear() {
	if !t.drawn {
		return
	}

	fmt.Fprint(t.out, clearLine)
	t.drawn = false
}

// applyInput puts the input terminal in raw mode exactly while visible and blocked
func (t *Terminal) applyInput() {
	want := t.visible && t.blocked

	if want == (t.state != nil) {
		return
	}

	if t.in == nil || !term.IsTerminal(t.in.Fd()) {
		return
	}

	if !want {
		if err := term.Restore(t.in.Fd(), t.state); err != nil {
			t.log.Warn().Err(err).Msg("Failed to restore terminal")
		}

		t.state = nil
		t.raw.Store(false)
		t.stopDrain()

		return
	}

	state, err := term.MakeRaw(t.in.Fd())
	if err != nil {
		t.log.Warn().Err(err).Msg("Failed to block terminal input")
		return
	}

	t.state = state
	t.raw.Store(true)
	t.startDrain()
}

// startDrain reads the input until stopDrain, so keystrokes typed while blocked never reach the shell
func (t *Terminal) startDrain() {
	reader, err := cancelreader.NewReader(t.in)
	if err != nil {
		t.log.Warn().Err(err).Msg("Failed to read terminal input")
		return
	}

	t.reader = reader
	t.drained = make(chan struct{})

	go t.drain(reader, t.drained)
}

// stopDrain cancels the pending read and waits for the drain to return
func (t *Terminal) stopDrain() {
	if t.reader == nil {
		return
	}

	if !t.reader.Cancel() {
		t.log.Debug().Msg("Terminal input read could not be cancelled")
	} else {
		<-t.drained
	}

	t.reader = nil
}

// drain swallows keystrokes, turning ctrl+c into an interrupt
func (t *Terminal) drain(reader cancelreader.CancelReader, done chan<- struct{}) {
	defer close(done)
	defer reader.Close()

	buf := make([]byte, 64)

	for {
		n, err := reader.Read(buf)
		if err != nil {
			return
		}

		for _, b := range buf[:n] {
			if b == ctrlC {
				t.interruptMu.Lock()
				fn := t.interrupt
				t.interruptMu.Unlock()

				if fn != nil {
					fn()
				}
			}
		}
	}
}

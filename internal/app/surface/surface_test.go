package surface

import (
	"bytes"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veil/internal/app/indicator"
	"veil/internal/config/logger"
)

var (
	_ indicator.Surface = (*Overlay)(nil)
	_ indicator.Surface = (*Terminal)(nil)
)

type stubView struct {
	text     string
	hidden   bool
	advanced int
}

func (v *stubView) Render() string {
	if v.hidden {
		return ""
	}

	return v.text
}

func (v *stubView) SetHidden(hidden bool) { v.hidden = hidden }
func (v *stubView) Hidden() bool          { return v.hidden }
func (v *stubView) Advance()              { v.advanced++ }

func Test_Overlay_Absorbs(t *testing.T) {
	tests := []struct {
		name    string
		visible bool
		blocked bool
		want    bool
	}{
		{name: "hidden", visible: false, blocked: true, want: false},
		{name: "visible, not blocking", visible: true, blocked: false, want: false},
		{name: "visible and blocking", visible: true, blocked: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewOverlay()
			o.SetVisible(tt.visible)
			o.SetInteractionBlocked(tt.blocked)

			assert.Equal(t, tt.want, o.Absorbs())
			assert.Equal(t, tt.visible, o.Visible())
			assert.Equal(t, tt.blocked, o.Blocked())
		})
	}
}

func Test_Overlay_AttachDetach(t *testing.T) {
	o := NewOverlay()
	first := &stubView{text: "first"}
	second := &stubView{text: "second"}

	o.Attach(first)
	o.Attach(second)
	o.Detach(first)

	require.Len(t, o.Views(), 1)
	assert.Same(t, second, o.Views()[0])

	o.Detach(first)
	assert.Len(t, o.Views(), 1)
}

func Test_Overlay_Tick(t *testing.T) {
	o := NewOverlay()
	v := &stubView{text: "x"}
	o.Attach(v)

	o.Tick()
	o.Tick()

	assert.Equal(t, 2, v.advanced)
}

func Test_Overlay_Compose(t *testing.T) {
	base := "status line\nsecond line"

	t.Run("hidden overlay leaves base untouched", func(t *testing.T) {
		o := NewOverlay()
		o.Attach(&stubView{text: "busy"})

		assert.Equal(t, base, o.Compose(base, 40, 10))
	})

	t.Run("shield dims without a box", func(t *testing.T) {
		o := NewOverlay()
		o.Attach(&stubView{text: "busy", hidden: true})
		o.SetVisible(true)

		out := ansi.Strip(o.Compose(base, 40, 10))

		assert.Contains(t, out, "status line")
		assert.NotContains(t, out, "busy")
		assert.NotContains(t, out, "╭")
		assert.Len(t, strings.Split(out, "\n"), 10)
	})

	t.Run("visible view is boxed in the middle", func(t *testing.T) {
		o := NewOverlay()
		o.Attach(&stubView{text: "busy"})
		o.SetVisible(true)

		out := ansi.Strip(o.Compose(base, 40, 11))
		lines := strings.Split(out, "\n")

		assert.Contains(t, out, "busy")
		assert.Contains(t, out, "╭")
		assert.Contains(t, lines[0], "status line")
		assert.Contains(t, lines[5], "busy")
	})
}

func Test_Terminal_Draw(t *testing.T) {
	var out bytes.Buffer

	term := NewTerminal(&out, nil, logger.NewNopLogger())
	v := &stubView{text: "working"}
	term.Attach(v)

	term.Tick()
	assert.Empty(t, out.String(), "nothing drawn while lowered")

	term.SetVisible(true)
	term.Tick()

	assert.Equal(t, clearLine+"working", out.String())
	assert.Equal(t, 1, v.advanced)

	out.Reset()
	term.SetVisible(false)

	assert.Equal(t, clearLine, out.String())

	out.Reset()
	term.SetVisible(false)

	assert.Empty(t, out.String(), "clearing twice writes once")
}

func Test_Terminal_HiddenView(t *testing.T) {
	var out bytes.Buffer

	term := NewTerminal(&out, nil, logger.NewNopLogger())
	term.Attach(&stubView{text: "working", hidden: true})
	term.SetVisible(true)
	term.SetInteractionBlocked(true)

	term.Tick()

	assert.Empty(t, out.String())
	assert.False(t, term.Raw(), "no input terminal to block")
}

func Test_Terminal_Detach(t *testing.T) {
	var out bytes.Buffer

	term := NewTerminal(&out, nil, logger.NewNopLogger())
	first := &stubView{text: "first"}
	second := &stubView{text: "second"}

	term.Attach(first)
	term.SetVisible(true)
	term.Tick()

	term.Detach(second)
	out.Reset()
	term.Tick()
	assert.Contains(t, out.String(), "first")

	term.Detach(first)
	term.Attach(second)
	out.Reset()
	term.Tick()
	assert.Contains(t, out.String(), "second")
}

func Test_Terminal_NonTerminalInput(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	defer r.Close()
	defer w.Close()

	var out bytes.Buffer

	term := NewTerminal(&out, r, logger.NewNopLogger())
	term.SetInteractionBlocked(true)
	term.SetVisible(true)

	assert.False(t, term.Raw())

	term.Close()

	assert.False(t, term.Visible())
}

func Test_Terminal_DrainStopsWithRawMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Pipe reads cannot be cancelled on windows")
	}

	r, w, err := os.Pipe()
	require.NoError(t, err)

	defer r.Close()
	defer w.Close()

	var out bytes.Buffer

	var interrupts atomic.Int32

	term := NewTerminal(&out, r, logger.NewNopLogger())
	term.OnInterrupt(func() { interrupts.Add(1) })

	term.startDrain()

	_, err = w.Write([]byte{'x', ctrlC})
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return interrupts.Load() == 1 }, time.Second, 10*time.Millisecond)

	term.stopDrain()

	select {
	case <-term.drained:
	default:
		t.Fatal("drain still reading after stop")
	}

	_, err = w.Write([]byte("ls\n"))
	require.NoError(t, err)

	buf := make([]byte, 8)
	n, err := r.Read(buf)
	require.NoError(t, err)

	assert.Equal(t, "ls\n", string(buf[:n]), "input after raw mode reaches its reader")
	assert.Equal(t, int32(1), interrupts.Load())
}

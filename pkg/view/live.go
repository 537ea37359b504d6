package view

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var stopStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

const StopMessage = "Stopping scanner..."

// Live keeps one table on screen and redraws it in place on every update.
// When the output is not a terminal each frame is simply appended.
type Live struct {
	mu    sync.Mutex
	out   io.Writer
	tty   bool
	lines int
}

func NewLive(out io.Writer) *Live {
	tty := false
	if f, ok := out.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Live{out: out, tty: tty}
}

// Update replaces whatever frame is on screen with v. The frame is written
// in a single call so a reader never sees half a table.
func (t *Live) Update(v View) {
	frame := RenderTable(v)

	t.mu.Lock()
	defer t.mu.Unlock()

	var b strings.Builder
	if t.tty && t.lines > 0 {
		// cursor up over the previous frame, then clear to end of screen
		fmt.Fprintf(&b, "\x1b[%dA\r\x1b[J", t.lines)
	} else if t.lines > 0 {
		b.WriteString("\n")
	}
	b.WriteString(frame)

	io.WriteString(t.out, b.String())
	t.lines = strings.Count(frame, "\n")
}

func (t *Live) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	io.WriteString(t.out, "\n"+stopStyle.Render(StopMessage)+"\n")
}

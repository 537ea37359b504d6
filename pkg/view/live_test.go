package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiveAppendsFramesWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer
	l := NewLive(&buf)

	l.Update(Build(nil))
	l.Update(Build(sample))
	l.Stop()

	out := buf.String()
	assert.NotContains(t, out, "\x1b[J")
	assert.Equal(t, 2, strings.Count(out, Title))
	assert.Less(t, strings.Index(out, Placeholder), strings.Index(out, "Home"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), StopMessage))
}

func TestLiveRedrawsInPlaceOnTerminal(t *testing.T) {
	var buf bytes.Buffer
	l := &Live{out: &buf, tty: true}

	l.Update(Build(nil))
	first := buf.Len()
	l.Update(Build(sample))

	second := buf.String()[first:]
	// the placeholder frame is a title line and a message line
	assert.True(t, strings.HasPrefix(second, "\x1b[2A\r\x1b[J"))
	assert.Contains(t, second, "Home")
}

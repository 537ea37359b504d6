package scanner

import "bytes"

// LineWriter implements io.Writer and calls receiver once per complete line.
// A trailing partial line is held back until the next write completes it.
type LineWriter struct {
	receiver func(string)
	buf      bytes.Buffer
}

func NewLineWriter(receiver func(string)) *LineWriter {
	return &LineWriter{receiver: receiver}
}

func (t *LineWriter) Write(p []byte) (int, error) {
	t.buf.Write(p)

	for {
		line, err := t.buf.ReadBytes('\n')
		if err != nil {
			// no newline yet, keep the fragment for later
			t.buf.Write(append([]byte(nil), line...))
			break
		}
		t.receiver(string(bytes.TrimRight(line, "\r\n")))
	}

	return len(p), nil
}

// Flush hands any buffered partial line to the receiver.
func (t *LineWriter) Flush() {
	if t.buf.Len() == 0 {
		return
	}
	t.receiver(t.buf.String())
	t.buf.Reset()
}

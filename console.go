package ringlog

import "io"

// consoleSink mirrors records to the diagnostic stream. No rotation
// concept applies. Like the file sink, it is only ever driven by one
// goroutine at a time.
type consoleSink struct {
	w     io.Writer
	color bool
	buf   []byte
}

func newConsoleSink(w io.Writer, color bool) *consoleSink {
	return &consoleSink{w: w, color: color, buf: make([]byte, 0, 256)}
}

func (s *consoleSink) write(rec record) {
	s.buf = appendConsoleLine(s.buf[:0], rec, s.color)
	_, _ = s.w.Write(s.buf)
}

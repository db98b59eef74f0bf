package hexd

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// Sink accepts rendered lines one at a time. WriteLine receives the line
// without its terminator; how (and whether) a terminator is committed is the
// sink's concern. A failing WriteLine aborts the remainder of the dump.
type Sink interface {
	WriteLine(line string) error
}

// Flusher is implemented by sinks with buffered destinations. The engine
// flushes per Options.FlushEvery and once at end-of-dump.
type Flusher interface {
	Flush() error
}

// stringSink accumulates the dump as text, one "\n" per line.
type stringSink struct {
	sb strings.Builder
}

func (s *stringSink) WriteLine(line string) error {
	s.sb.WriteString(line)
	s.sb.WriteByte('\n')
	return nil
}

// bufferSink accumulates the dump as raw bytes.
type bufferSink struct {
	buf bytes.Buffer
}

func (s *bufferSink) WriteLine(line string) error {
	s.buf.WriteString(line)
	s.buf.WriteByte('\n')
	return nil
}

// linesSink accumulates the dump as a slice of unterminated lines.
type linesSink struct {
	lines []string
}

func (s *linesSink) WriteLine(line string) error {
	s.lines = append(s.lines, line)
	return nil
}

// writerSink commits lines to an io.Writer through a buffer, counting the
// bytes accepted. Write and flush failures surface immediately.
type writerSink struct {
	bw *bufio.Writer
	n  int64
}

func newWriterSink(w io.Writer) *writerSink {
	return &writerSink{bw: bufio.NewWriter(w)}
}

func (s *writerSink) WriteLine(line string) error {
	n, err := s.bw.WriteString(line)
	s.n += int64(n)
	if err != nil {
		return err
	}
	if err := s.bw.WriteByte('\n'); err != nil {
		return err
	}
	s.n++
	return nil
}

func (s *writerSink) Flush() error {
	return s.bw.Flush()
}

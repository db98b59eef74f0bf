package hexd

import (
	"bufio"
	"io"
)

// Source produces the byte sequence of a dump. Read follows io.Reader
// semantics: it fills p with up to len(p) bytes and returns io.EOF once the
// sequence is exhausted. A Source is consumed by a single dump; it is not
// shared and not rewound.
//
// Sources may additionally implement Skipper and Sizer. The engine detects
// both by type assertion and falls back to draining reads and an unknown
// length when they are absent.
type Source interface {
	Read(p []byte) (n int, err error)
}

// Skipper is implemented by sources that can discard n bytes without
// producing them, used to seek to the start of a range window. It returns
// the number of bytes actually discarded, which is less than n only when
// the source ends early.
type Skipper interface {
	Skip(n int) (int, error)
}

// Sizer is implemented by sources that know their total byte count up
// front. The size is a hint used to fit the offset column and pre-size
// in-memory sinks; it is never required for correctness.
type Sizer interface {
	Size() int
}

// sliceSource serves bytes from a slice with random-access skipping.
type sliceSource struct {
	b   []byte
	off int
}

func newSliceSource(b []byte) *sliceSource {
	return &sliceSource{b: b}
}

func (s *sliceSource) Read(p []byte) (int, error) {
	if s.off >= len(s.b) {
		return 0, io.EOF
	}
	n := copy(p, s.b[s.off:])
	s.off += n
	return n, nil
}

func (s *sliceSource) Skip(n int) (int, error) {
	rem := len(s.b) - s.off
	if n > rem {
		n = rem
	}
	s.off += n
	return n, nil
}

func (s *sliceSource) Size() int {
	return len(s.b)
}

// iterSource serves bytes from a pull function until it reports exhaustion.
type iterSource struct {
	next func() (byte, bool)
	done bool
}

func (s *iterSource) Read(p []byte) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	for i := range p {
		b, ok := s.next()
		if !ok {
			s.done = true
			if i == 0 {
				return 0, io.EOF
			}
			return i, nil
		}
		p[i] = b
	}
	return len(p), nil
}

// readerSource adapts an io.Reader, buffering reads and skipping by
// discarding.
type readerSource struct {
	br *bufio.Reader
}

func newReaderSource(r io.Reader) *readerSource {
	return &readerSource{br: bufio.NewReader(r)}
}

func (s *readerSource) Read(p []byte) (int, error) {
	return s.br.Read(p)
}

func (s *readerSource) Skip(n int) (int, error) {
	d, err := s.br.Discard(n)
	if err == io.EOF {
		err = nil
	}
	return d, err
}

// readFull fills p from src, stopping early only at end of sequence.
// Unlike io.ReadFull it treats a short read as success.
func readFull(src Source, p []byte) (int, error) {
	n := 0
	for n < len(p) {
		m, err := src.Read(p[n:])
		n += m
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if m == 0 {
			break
		}
	}
	return n, nil
}

// skipBytes discards n bytes from src, seeking when the source supports it.
func skipBytes(src Source, n int) (int, error) {
	if s, ok := src.(Skipper); ok {
		return s.Skip(n)
	}
	var scratch [64]byte
	skipped := 0
	for skipped < n {
		chunk := n - skipped
		if chunk > len(scratch) {
			chunk = len(scratch)
		}
		m, err := readFull(src, scratch[:chunk])
		skipped += m
		if err != nil {
			return skipped, err
		}
		if m < chunk {
			break
		}
	}
	return skipped, nil
}

// sizeHint returns the source's declared total byte count, or -1 when the
// source does not know its length.
func sizeHint(src Source) int {
	if s, ok := src.(Sizer); ok {
		return s.Size()
	}
	return -1
}

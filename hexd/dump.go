package hexd

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Dump binds a byte source to a set of options. Build one with a source
// constructor (Bytes, Reader, Iter, Ints, ...), refine it with the fluent
// option methods, then call a terminal method (String, Print, WriteTo, To)
// to produce output. A Dump consumes its source; use it for one dump only.
type Dump struct {
	src  Source
	opts Options
}

// New wraps an arbitrary Source with default options.
func New(src Source) *Dump {
	return &Dump{src: src, opts: DefaultOptions()}
}

// Bytes dumps a byte slice. Strings convert directly:
//
//	hexd.Bytes([]byte("greetings earthling!")).Print()
func Bytes(b []byte) *Dump {
	return New(newSliceSource(b))
}

// Reader dumps an io.Reader, streaming; the total length is unknown, so
// the offset column falls back to its minimum width.
func Reader(r io.Reader) *Dump {
	return New(newReaderSource(r))
}

// Iter dumps a pull iterator. next returns the next byte and true, or
// false once the sequence is exhausted.
func Iter(next func() (byte, bool)) *Dump {
	return New(&iterSource{next: next})
}

// Ints dumps a slice of fixed-width integers, each decomposed into bytes
// in the given order and concatenated in sequence order. The grouping
// defaults to the element width, so each element reads as one block:
//
//	hexd.Ints([]uint16{0x6120, 0x6120}, binary.LittleEndian).Print()
//	// 00000000: 2061 2061                               | a a            |
func Ints[T Integer](vals []T, order binary.ByteOrder) *Dump {
	src := newIntSource(vals, order)
	d := New(src)
	d.opts.Grouping = groupingForWidth(src.width)
	return d
}

// Int dumps a single fixed-width integer.
func Int[T Integer](v T, order binary.ByteOrder) *Dump {
	return Ints([]T{v}, order)
}

// Uint128s dumps a slice of 128-bit values, one sixteen-byte group per
// line.
func Uint128s(vals []Uint128, order binary.ByteOrder) *Dump {
	d := New(newUint128Source(vals, order))
	d.opts.Grouping = groupingForWidth(16)
	return d
}

// String renders the dump as text, one terminated line per output line.
// It panics when the options are invalid; in-memory rendering has no other
// failure mode. Use To for an error-returning variant.
func (d *Dump) String() string {
	var sink stringSink
	if n := d.preSize(); n > 0 {
		sink.sb.Grow(n)
	}
	if err := d.To(&sink); err != nil {
		panic(err)
	}
	return sink.sb.String()
}

// Bytes renders the dump into a fresh byte buffer. Panics on invalid
// options, like String.
func (d *Dump) Bytes() []byte {
	var sink bufferSink
	if n := d.preSize(); n > 0 {
		sink.buf.Grow(n)
	}
	if err := d.To(&sink); err != nil {
		panic(err)
	}
	return sink.buf.Bytes()
}

// Lines renders the dump as a slice of unterminated lines. Panics on
// invalid options, like String.
func (d *Dump) Lines() []string {
	var sink linesSink
	if err := d.To(&sink); err != nil {
		panic(err)
	}
	return sink.lines
}

// Print writes the dump to standard output.
func (d *Dump) Print() error {
	_, err := d.WriteTo(os.Stdout)
	return err
}

// PrintErr writes the dump to standard error.
func (d *Dump) PrintErr() error {
	_, err := d.WriteTo(os.Stderr)
	return err
}

// WriteTo writes the dump to w through a buffer, implementing io.WriterTo.
// Write failures abort the dump immediately; output already committed is
// not rolled back.
func (d *Dump) WriteTo(w io.Writer) (int64, error) {
	sink := newWriterSink(w)
	err := d.To(sink)
	return sink.n, err
}

// To drives the dump into an arbitrary sink. This is the primitive the
// other terminal methods build on: options are validated up front, then
// lines are produced, rendered and written one at a time, with at most one
// line of source bytes and one rendered line in memory.
func (d *Dump) To(sink Sink) error {
	if err := d.opts.Validate(); err != nil {
		return err
	}

	it := newLineIter(d.src, d.opts)
	r := newRenderer(d.opts, sizeHint(d.src))

	written := 0
	emit := func(lb *lineBuf, rowIndex int) error {
		if err := sink.WriteLine(r.render(lb, rowIndex)); err != nil {
			return fmt.Errorf("hexd: write line: %w", err)
		}
		written++
		if d.opts.FlushEvery > 0 && written%d.opts.FlushEvery == 0 {
			if err := flushSink(sink); err != nil {
				return err
			}
		}
		return nil
	}
	marker := func() error {
		if err := sink.WriteLine(r.elisionMarker()); err != nil {
			return fmt.Errorf("hexd: write line: %w", err)
		}
		written++
		if d.opts.FlushEvery > 0 && written%d.opts.FlushEvery == 0 {
			if err := flushSink(sink); err != nil {
				return err
			}
		}
		return nil
	}

	var cur, elided lineBuf
	elidedAt := -1
	i := 0
	for {
		res, err := it.next(&cur)
		if err != nil {
			return err
		}
		if res == lineEOF {
			break
		}
		switch res {
		case lineRow:
			if elidedAt >= 0 {
				// Close the elided run: the marker stands in for the
				// middle, the last repeat prints with its own offset.
				if i-elidedAt > 1 {
					if err := marker(); err != nil {
						return err
					}
				}
				if err := emit(&elided, cur.rowIndex-it.width); err != nil {
					return err
				}
				elidedAt = -1
			}
			if err := emit(&cur, cur.rowIndex); err != nil {
				return err
			}
		case lineElided:
			if elidedAt < 0 {
				elided = cur
				elidedAt = i
			}
		}
		i++
	}
	if elidedAt >= 0 {
		if i-elidedAt > 1 {
			if err := marker(); err != nil {
				return err
			}
		}
		if err := emit(&elided, it.index-it.width); err != nil {
			return err
		}
	}
	return flushSink(sink)
}

func flushSink(sink Sink) error {
	f, ok := sink.(Flusher)
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return fmt.Errorf("hexd: flush: %w", err)
	}
	return nil
}

// preSize estimates the rendered byte count for in-memory sinks. Zero means
// no estimate; the estimate ignores autoskip, so it is an upper bound.
func (d *Dump) preSize() int {
	size := sizeHint(d.src)
	if size < 0 || d.opts.Validate() != nil {
		return 0
	}
	n := size - d.opts.Range.Skip
	if l := d.opts.Range.length(); l >= 0 && l < n {
		n = l
	}
	if n <= 0 {
		return 0
	}
	w := d.opts.LineWidth()
	lines := (n + w - 1) / w
	if d.opts.Align {
		lines++ // a mid-line range start can add one partial line
	}
	per := 8 + 2 + w*(d.opts.Base.cellWidth()+4) + w + 3
	return lines * per
}

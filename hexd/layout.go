package hexd

import "fmt"

// MaxLineWidth is the largest line width the engine supports. The layout
// engine holds exactly one line of source bytes at a time in a fixed buffer
// of this size, which is what keeps memory constant regardless of input
// size.
const MaxLineWidth = 256

// lineBuf is the engine's per-line descriptor: up to one line width of
// source bytes plus the positions needed to render them. It is refilled in
// place for every line and never retained.
type lineBuf struct {
	data [MaxLineWidth]byte
	n    int

	// rowIndex is the source index of the line's first column; with
	// alignment on it is eltIndex rounded down to the line width.
	rowIndex int

	// eltIndex is the source index of the first byte actually present.
	eltIndex int
}

// rightAligned reports whether the line's bytes start past its first
// column, as happens on the first line of an unaligned range.
func (l *lineBuf) rightAligned() bool {
	return l.eltIndex != l.rowIndex
}

type iterState int

const (
	stateNotStarted iterState = iota
	stateInProgress
	stateDone
)

type lineResult int

const (
	lineEOF lineResult = iota
	lineRow
	lineElided
)

// lineIter turns a byte source into a sequence of line descriptors,
// applying range clipping, alignment and autoskip detection. It is
// pull-based: each next call computes exactly one line.
type lineIter struct {
	src   Source
	opts  Options
	width int

	// index is the source-relative position of the next byte to consume.
	index int
	state iterState

	// elision pattern: the bytes of the last full line that repeats its
	// leading group, candidates for autoskip.
	elide    [MaxLineWidth]byte
	elideSet bool
}

func newLineIter(src Source, opts Options) *lineIter {
	return &lineIter{src: src, opts: opts, width: opts.LineWidth()}
}

// next fills lb with the next line's bytes. It returns lineElided for lines
// swallowed by autoskip, and lineEOF once the range window or the source is
// exhausted.
func (it *lineIter) next(lb *lineBuf) (lineResult, error) {
	if it.state == stateDone {
		return lineEOF, nil
	}

	if it.state == stateNotStarted && it.opts.Range.Skip > 0 {
		if _, err := skipBytes(it.src, it.opts.Range.Skip); err != nil {
			return lineEOF, fmt.Errorf("hexd: skip to range start: %w", err)
		}
		// Offsets track the source position even when the source ended
		// before the range start; reads below will simply produce nothing.
		it.index = it.opts.Range.Skip
	}

	w := it.width
	limit := w
	if it.opts.Range.Limit >= 0 {
		if it.index < it.opts.Range.Limit {
			limit = it.opts.Range.Limit - it.index
		} else {
			limit = 0
		}
	}
	ew := min(w, limit)

	readLen := ew
	if it.state == stateNotStarted && it.opts.Align {
		if l := it.opts.Range.length(); l >= 0 && l < w {
			readLen = l
		} else if ew > 0 {
			readLen = ew - it.index%ew
		}
	}
	it.state = stateInProgress

	rowIndex := it.index
	if it.opts.Align {
		rowIndex = it.index / w * w
	}

	n, err := readFull(it.src, lb.data[:readLen])
	if err != nil {
		return lineEOF, fmt.Errorf("hexd: read source: %w", err)
	}
	lb.n = n
	lb.rowIndex = rowIndex
	lb.eltIndex = it.index
	it.index += n

	if n == 0 {
		it.state = stateDone
		return lineEOF, nil
	}

	if it.opts.Autoskip {
		if it.elideSet && it.matchesElide(lb) {
			return lineElided, nil
		}
		it.elideSet = false
		it.tryElide(lb)
	}
	return lineRow, nil
}

// matchesElide reports whether lb is a full line identical to the current
// elision pattern.
func (it *lineIter) matchesElide(lb *lineBuf) bool {
	if lb.n != it.width {
		return false
	}
	for i := 0; i < it.width; i++ {
		if lb.data[i] != it.elide[i] {
			return false
		}
	}
	return true
}

// tryElide records lb as the elision pattern when it is a full line whose
// leading group repeats across the whole line.
func (it *lineIter) tryElide(lb *lineBuf) {
	if lb.n != it.width {
		return
	}
	g := it.opts.Grouping.firstGroupSize()
	if g <= 0 || it.width%g != 0 {
		return
	}
	for i := g; i < it.width; i++ {
		if lb.data[i] != lb.data[i-g] {
			return
		}
	}
	copy(it.elide[:it.width], lb.data[:it.width])
	it.elideSet = true
}

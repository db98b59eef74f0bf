package hexd

import (
	"encoding/binary"
	"io"
	"unsafe"

	"github.com/joshuapare/hexkit/internal/buf"
)

// Integer is the set of fixed-width integer types a dump can decompose.
// 128-bit values are covered separately by Uint128.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// intSource decomposes a sequence of integers into bytes, element by
// element, in the given byte order. It is a plain Source: the layout engine
// downstream needs no special-casing for integer input.
type intSource[T Integer] struct {
	vals  []T
	order binary.ByteOrder
	width int
	pos   int // byte position across the whole decomposed sequence

	cur     [8]byte
	curElt  int
	haveCur bool
}

func newIntSource[T Integer](vals []T, order binary.ByteOrder) *intSource[T] {
	var zero T
	return &intSource[T]{
		vals:   vals,
		order:  order,
		width:  int(unsafe.Sizeof(zero)),
		curElt: -1,
	}
}

func (s *intSource[T]) total() int {
	return len(s.vals) * s.width
}

func (s *intSource[T]) load(elt int) {
	if s.haveCur && s.curElt == elt {
		return
	}
	// Conversion to uint64 sign-extends signed values; PutUint keeps only
	// the low width bytes, which is exactly the two's complement encoding.
	buf.PutUint(s.cur[:s.width], uint64(s.vals[elt]), s.order)
	s.curElt = elt
	s.haveCur = true
}

func (s *intSource[T]) Read(p []byte) (int, error) {
	total := s.total()
	if s.pos >= total {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) && s.pos < total {
		elt := s.pos / s.width
		off := s.pos % s.width
		s.load(elt)
		m := copy(p[n:], s.cur[off:s.width])
		n += m
		s.pos += m
	}
	return n, nil
}

func (s *intSource[T]) Skip(n int) (int, error) {
	rem := s.total() - s.pos
	if n > rem {
		n = rem
	}
	s.pos += n
	return n, nil
}

func (s *intSource[T]) Size() int {
	return s.total()
}

// Uint128 is a 128-bit value, decomposed like the narrower integer types.
type Uint128 struct {
	Hi, Lo uint64
}

// put writes the 16-byte encoding of u into b in the given order.
func (u Uint128) put(b []byte, order binary.ByteOrder) {
	if buf.Little(order) {
		order.PutUint64(b[0:8], u.Lo)
		order.PutUint64(b[8:16], u.Hi)
		return
	}
	order.PutUint64(b[0:8], u.Hi)
	order.PutUint64(b[8:16], u.Lo)
}

type uint128Source struct {
	vals  []Uint128
	order binary.ByteOrder
	pos   int

	cur     [16]byte
	curElt  int
	haveCur bool
}

func newUint128Source(vals []Uint128, order binary.ByteOrder) *uint128Source {
	return &uint128Source{vals: vals, order: order, curElt: -1}
}

func (s *uint128Source) total() int {
	return len(s.vals) * 16
}

func (s *uint128Source) Read(p []byte) (int, error) {
	total := s.total()
	if s.pos >= total {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) && s.pos < total {
		elt := s.pos / 16
		off := s.pos % 16
		if !s.haveCur || s.curElt != elt {
			s.vals[elt].put(s.cur[:], s.order)
			s.curElt = elt
			s.haveCur = true
		}
		m := copy(p[n:], s.cur[off:])
		n += m
		s.pos += m
	}
	return n, nil
}

func (s *uint128Source) Skip(n int) (int, error) {
	rem := s.total() - s.pos
	if n > rem {
		n = rem
	}
	s.pos += n
	return n, nil
}

func (s *uint128Source) Size() int {
	return s.total()
}

// groupingForWidth is the grouping preset applied when a dump is built from
// integers: groups match the element width so each element reads as one
// block.
func groupingForWidth(w int) Grouping {
	switch w {
	case 2:
		return Grouped(GroupShort, SpacingNone, 8, SpacingNormal)
	case 4:
		return Grouped(GroupInt, SpacingNone, 4, SpacingNormal)
	case 8:
		return Grouped(GroupLong, SpacingNone, 2, SpacingNormal)
	case 16:
		return Grouped(GroupULong, SpacingNormal, 1, SpacingNormal)
	default:
		return Grouped(GroupShort, SpacingNone, 8, SpacingNormal)
	}
}

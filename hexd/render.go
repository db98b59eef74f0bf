package hexd

import (
	"unicode"
	"unicode/utf8"
)

const (
	upperDigits = "0123456789ABCDEF"
	lowerDigits = "0123456789abcdef"
)

// nibbles returns the number of hex digits needed for v (0 for 0).
func nibbles(v int) int {
	n := 0
	for v > 0 {
		v >>= 4
		n++
	}
	return n
}

// renderer formats line descriptors into text. One renderer serves a whole
// dump and reuses a single scratch buffer, so rendering allocates only when
// a line grows past the previous high-water mark.
type renderer struct {
	opts    Options
	width   int
	lut     string
	spacing []string // spacing after each byte column, from the group spec

	// digits is the offset column width fitted from the source's size
	// hint, or 0 when the length is unknown and each line fits itself.
	digits int

	buf []byte
}

// newRenderer fits the column layout for one dump. hint is the source's
// total byte count, or -1 when unknown.
func newRenderer(opts Options, hint int) *renderer {
	r := &renderer{
		opts:  opts,
		width: opts.LineWidth(),
		lut:   lowerDigits,
	}
	if opts.Uppercase {
		r.lut = upperDigits
	}
	r.spacing = make([]string, r.width)
	for i := range r.spacing {
		r.spacing[i] = opts.Grouping.spacingAt(i).spaces()
	}
	if hint >= 0 {
		m := hint + opts.OffsetBias
		if opts.OffsetMode == OffsetRelative {
			m += opts.Range.Skip
		}
		b := (nibbles(m) + 1) / 2
		if b < 4 {
			b = 4
		}
		r.digits = 2 * b
	}
	return r
}

// byteAt returns the byte shown in column i of the line, or ok=false for a
// blank-padded column of a partial line.
func (r *renderer) byteAt(lb *lineBuf, i int) (byte, bool) {
	lead := lb.eltIndex % r.width
	if r.opts.Align && lb.rightAligned() {
		if i < lead || i >= lb.n+lead {
			return 0, false
		}
		return lb.data[i-lead], true
	}
	if i < lb.n {
		return lb.data[i], true
	}
	return 0, false
}

// render formats one line. rowIndex is the source index printed in the
// offset column; for elided lines the driver passes the index of the last
// repeated line rather than the descriptor's own.
func (r *renderer) render(lb *lineBuf, rowIndex int) string {
	r.buf = r.buf[:0]
	if r.opts.ShowOffset {
		r.writeOffset(rowIndex)
		r.buf = append(r.buf, ':', ' ')
	}

	bodyStart := len(r.buf)
	for i := 0; i < r.width; i++ {
		b, ok := r.byteAt(lb, i)
		r.writeCell(b, ok)
		if i != r.width-1 || r.opts.ShowAscii {
			r.buf = append(r.buf, r.spacing[i]...)
		}
	}
	if r.opts.ShowAscii && r.spacing[r.width-1] == "" {
		r.buf = append(r.buf, ' ')
	}
	if r.opts.HexColor != nil {
		body := r.opts.HexColor.Sprint(string(r.buf[bodyStart:]))
		r.buf = append(r.buf[:bodyStart], body...)
	}

	if r.opts.ShowAscii {
		r.buf = append(r.buf, '|')
		for i := 0; i < r.width; i++ {
			b, ok := r.byteAt(lb, i)
			r.writeSidebar(b, ok)
		}
		r.buf = append(r.buf, '|')
	}
	return string(r.buf)
}

// elisionMarker is the line printed in place of an elided run.
func (r *renderer) elisionMarker() string {
	return "*"
}

// writeOffset appends the display offset for rowIndex, zero-padded to the
// dump's fitted width, or to at least eight digits when the source length
// is unknown.
func (r *renderer) writeOffset(rowIndex int) {
	v := rowIndex
	switch r.opts.OffsetMode {
	case OffsetAbsolute:
		sub := r.opts.Range.Skip
		if rowIndex < sub {
			sub = rowIndex
		}
		v = rowIndex - sub + r.opts.OffsetBias
	default:
		v = rowIndex + r.opts.OffsetBias
	}
	d := r.digits
	if d == 0 {
		n := nibbles(v)
		d = n + n&1
		if d < 8 {
			d = 8
		}
	}
	for shift := (d - 1) * 4; shift >= 0; shift -= 4 {
		r.buf = append(r.buf, r.lut[(v>>uint(shift))&0xF])
	}
}

// writeCell appends one byte's rendering in the configured base, or base
// width blanks for a missing byte.
func (r *renderer) writeCell(b byte, ok bool) {
	switch r.opts.Base {
	case BaseBinary:
		if !ok {
			r.buf = append(r.buf, "        "...)
			return
		}
		for bit := 7; bit >= 0; bit-- {
			r.buf = append(r.buf, r.lut[(b>>uint(bit))&1])
		}

	case BaseOctal:
		if !ok {
			r.buf = append(r.buf, "   "...)
			return
		}
		lead := r.opts.Leading.char()
		c0, c1, c2 := (b>>6)&0x7, (b>>3)&0x7, b&0x7
		if c0 == 0 && c1 != 0 {
			r.buf = append(r.buf, lead)
		} else {
			r.buf = append(r.buf, r.lut[c0])
		}
		if c0 == 0 && c1 == 0 && c2 != 0 {
			r.buf = append(r.buf, lead)
		} else {
			r.buf = append(r.buf, r.lut[c1])
		}
		r.buf = append(r.buf, r.lut[c2])

	case BaseDecimal:
		if !ok {
			r.buf = append(r.buf, "   "...)
			return
		}
		lead := r.opts.Leading.char()
		c0, c1, c2 := (b/100)%10, (b/10)%10, b%10
		if c0 == 0 {
			r.buf = append(r.buf, lead)
		} else {
			r.buf = append(r.buf, r.lut[c0])
		}
		if c0 == 0 && c1 == 0 && c2 != 0 {
			r.buf = append(r.buf, lead)
		} else {
			r.buf = append(r.buf, r.lut[c1])
		}
		r.buf = append(r.buf, r.lut[c2])

	default: // BaseHex
		if !ok {
			r.buf = append(r.buf, ' ', ' ')
			return
		}
		r.buf = append(r.buf, r.lut[b>>4], r.lut[b&0xF])
	}
}

// writeSidebar appends one byte's sidebar character: the byte itself when
// printable, the substitute otherwise, a space for a missing byte.
func (r *renderer) writeSidebar(b byte, ok bool) {
	if !ok {
		r.buf = append(r.buf, ' ')
		return
	}
	if cm := r.opts.Charmap; cm != nil {
		ch := cm.DecodeByte(b)
		if ch == utf8.RuneError || !unicode.IsPrint(ch) {
			r.buf = append(r.buf, r.opts.Substitute)
			return
		}
		r.buf = utf8.AppendRune(r.buf, ch)
		return
	}
	if b >= 0x20 && b <= 0x7E {
		r.buf = append(r.buf, b)
		return
	}
	r.buf = append(r.buf, r.opts.Substitute)
}

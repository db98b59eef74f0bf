package hexd

import (
	"github.com/fatih/color"
	"golang.org/x/text/encoding/charmap"
)

// The fluent option methods below mutate the Dump's options in place and
// return the receiver, so a dump reads as a single chain:
//
//	hexd.Bytes(data).Ungrouped(1, hexd.SpacingNormal).Octal().Print()
//
// Invalid settings are reported by the terminal methods, not here.

// Options replaces the entire option set.
func (d *Dump) Options(opts Options) *Dump {
	d.opts = opts
	return d
}

// Grouping replaces the body layout.
func (d *Dump) Grouping(g Grouping) *Dump {
	d.opts.Grouping = g
	return d
}

// Ungrouped lays the body out as count single-byte cells separated by
// spacing.
func (d *Dump) Ungrouped(count int, spacing Spacing) *Dump {
	d.opts.Grouping = Ungrouped(count, spacing)
	return d
}

// Grouped lays the body out as numGroups groups of size bytes, with
// byteSpacing inside each group and groupSpacing between groups.
func (d *Dump) Grouped(size GroupSize, byteSpacing Spacing, numGroups int, groupSpacing Spacing) *Dump {
	d.opts.Grouping = Grouped(size, byteSpacing, numGroups, groupSpacing)
	return d
}

// Uppercase sets the digit case for hexadecimal output.
func (d *Dump) Uppercase(on bool) *Dump {
	d.opts.Uppercase = on
	return d
}

// Autoskip enables or disables eliding runs of repeated lines.
func (d *Dump) Autoskip(on bool) *Dump {
	d.opts.Autoskip = on
	return d
}

// Aligned enables or disables pinning ranged output to line-width
// boundaries.
func (d *Dump) Aligned(on bool) *Dump {
	d.opts.Align = on
	return d
}

// ShowOffset toggles the leading offset column.
func (d *Dump) ShowOffset(on bool) *Dump {
	d.opts.ShowOffset = on
	return d
}

// ShowAscii toggles the trailing text column.
func (d *Dump) ShowAscii(on bool) *Dump {
	d.opts.ShowAscii = on
	return d
}

// Range restricts the dump to source offsets [start, end).
func (d *Dump) Range(start, end int) *Dump {
	d.opts.Range = Range{Skip: start, Limit: end}
	return d
}

// RangeFrom restricts the dump to source offsets at or after start.
func (d *Dump) RangeFrom(start int) *Dump {
	d.opts.Range = Range{Skip: start, Limit: -1}
	return d
}

// RangeTo restricts the dump to source offsets before end.
func (d *Dump) RangeTo(end int) *Dump {
	d.opts.Range = Range{Skip: 0, Limit: end}
	return d
}

// RelativeOffset labels lines by position within the dumped range, plus
// bias.
func (d *Dump) RelativeOffset(bias int) *Dump {
	d.opts.OffsetMode = OffsetRelative
	d.opts.OffsetBias = bias
	return d
}

// AbsoluteOffset labels lines by position within the source, plus bias.
func (d *Dump) AbsoluteOffset(bias int) *Dump {
	d.opts.OffsetMode = OffsetAbsolute
	d.opts.OffsetBias = bias
	return d
}

// Hexadecimal renders body cells in base 16.
func (d *Dump) Hexadecimal() *Dump {
	d.opts.Base = BaseHex
	return d
}

// Decimal renders body cells in base 10, space-padded.
func (d *Dump) Decimal() *Dump {
	d.opts.Base = BaseDecimal
	d.opts.Leading = LeadingSpace
	return d
}

// Octal renders body cells in base 8, zero-padded.
func (d *Dump) Octal() *Dump {
	d.opts.Base = BaseOctal
	d.opts.Leading = LeadingZero
	return d
}

// Binary renders body cells in base 2.
func (d *Dump) Binary() *Dump {
	d.opts.Base = BaseBinary
	return d
}

// Base sets the cell base and the pad character for decimal and octal
// cells.
func (d *Dump) Base(b Base, lead LeadingZeroChar) *Dump {
	d.opts.Base = b
	d.opts.Leading = lead
	return d
}

// Substitute sets the text-column stand-in for unprintable bytes.
func (d *Dump) Substitute(c byte) *Dump {
	d.opts.Substitute = c
	return d
}

// Charmap decodes text-column bytes through the given code page instead of
// treating them as ASCII.
func (d *Dump) Charmap(cm *charmap.Charmap) *Dump {
	d.opts.Charmap = cm
	return d
}

// Colored renders the hex body through c. Pass nil to disable.
func (d *Dump) Colored(c *color.Color) *Dump {
	d.opts.HexColor = c
	return d
}

// FlushEvery flushes flushable sinks after every n lines. Zero flushes
// only at the end of the dump.
func (d *Dump) FlushEvery(n int) *Dump {
	d.opts.FlushEvery = n
	return d
}

package hexd

import (
	"github.com/fatih/color"
	"golang.org/x/text/encoding/charmap"
)

// Spacing specifies the gap inserted after an element of the hex body.
type Spacing int

const (
	// SpacingNone inserts nothing between elements.
	SpacingNone Spacing = iota

	// SpacingNormal inserts a single space between elements.
	SpacingNormal

	// SpacingWide inserts two spaces between elements.
	SpacingWide

	// SpacingUltraWide inserts four spaces between elements.
	SpacingUltraWide
)

func (s Spacing) spaces() string {
	switch s {
	case SpacingNone:
		return ""
	case SpacingNormal:
		return " "
	case SpacingWide:
		return "  "
	case SpacingUltraWide:
		return "    "
	default:
		return ""
	}
}

func (s Spacing) valid() bool {
	return s >= SpacingNone && s <= SpacingUltraWide
}

// GroupSize is the number of source bytes rendered as one unbroken block.
type GroupSize int

const (
	GroupByte  GroupSize = 1
	GroupShort GroupSize = 2
	GroupInt   GroupSize = 4
	GroupLong  GroupSize = 8
	GroupULong GroupSize = 16
)

// Group is one entry of a group spec: a run of Size bytes followed by
// Spacing before the next group.
type Group struct {
	Size    GroupSize
	Spacing Spacing
}

// Grouping describes how the bytes of a line are subdivided in the hex body.
//
// Groups holds one full cycle of the spec; the line width is the sum of the
// group sizes and is always derived, never set independently. ByteSpacing is
// inserted between bytes inside a group, each Group's Spacing after the
// group's last byte.
//
// Most callers use the Ungrouped or Grouped constructors:
//
//	hexd.Ungrouped(8, hexd.SpacingNormal)                                        // 00 00 00 00 00 00 00 00
//	hexd.Grouped(hexd.GroupShort, hexd.SpacingNone, 8, hexd.SpacingNormal)       // 0000 0000 ... (the default)
//	hexd.Grouped(hexd.GroupInt, hexd.SpacingNone, 4, hexd.SpacingNormal)         // 00000000 00000000 ...
type Grouping struct {
	Groups      []Group
	ByteSpacing Spacing
}

// Ungrouped renders count bytes per line with uniform spacing between them.
func Ungrouped(count int, spacing Spacing) Grouping {
	groups := make([]Group, count)
	for i := range groups {
		groups[i] = Group{Size: GroupByte, Spacing: spacing}
	}
	return Grouping{Groups: groups, ByteSpacing: spacing}
}

// Grouped renders numGroups groups of size bytes each, with byteSpacing
// inside a group and groupSpacing between groups.
func Grouped(size GroupSize, byteSpacing Spacing, numGroups int, groupSpacing Spacing) Grouping {
	groups := make([]Group, numGroups)
	for i := range groups {
		groups[i] = Group{Size: size, Spacing: groupSpacing}
	}
	return Grouping{Groups: groups, ByteSpacing: byteSpacing}
}

// LineWidth returns the number of source bytes covered by one line.
func (g Grouping) LineWidth() int {
	w := 0
	for _, grp := range g.Groups {
		w += int(grp.Size)
	}
	return w
}

// spacingAt returns the spacing rendered after byte index i of a line.
func (g Grouping) spacingAt(i int) Spacing {
	cum := 0
	for _, grp := range g.Groups {
		if i < cum+int(grp.Size) {
			if i == cum+int(grp.Size)-1 {
				return grp.Spacing
			}
			return g.ByteSpacing
		}
		cum += int(grp.Size)
	}
	return SpacingNone
}

func (g Grouping) firstGroupSize() int {
	if len(g.Groups) == 0 {
		return 0
	}
	return int(g.Groups[0].Size)
}

func (g Grouping) validate() error {
	if len(g.Groups) == 0 {
		return ErrEmptyGroupSpec
	}
	if !g.ByteSpacing.valid() {
		return ErrBadSpacing
	}
	for _, grp := range g.Groups {
		if grp.Size <= 0 {
			return ErrZeroWidthGroup
		}
		if !grp.Spacing.valid() {
			return ErrBadSpacing
		}
	}
	if g.LineWidth() > MaxLineWidth {
		return ErrLineTooWide
	}
	return nil
}

// Base selects the numeral system used for the hex body. The offset column
// is always hexadecimal.
type Base int

const (
	BaseHex Base = iota
	BaseDecimal
	BaseOctal
	BaseBinary
)

// cellWidth is the rendered character count per byte for the base.
func (b Base) cellWidth() int {
	switch b {
	case BaseBinary:
		return 8
	case BaseDecimal, BaseOctal:
		return 3
	default:
		return 2
	}
}

func (b Base) valid() bool {
	return b >= BaseHex && b <= BaseBinary
}

// LeadingZeroChar is the character shown in place of leading zeros for
// decimal and octal cells.
type LeadingZeroChar int

const (
	LeadingZero LeadingZeroChar = iota
	LeadingSpace
	LeadingUnderscore
)

func (l LeadingZeroChar) char() byte {
	switch l {
	case LeadingSpace:
		return ' '
	case LeadingUnderscore:
		return '_'
	default:
		return '0'
	}
}

func (l LeadingZeroChar) valid() bool {
	return l >= LeadingZero && l <= LeadingUnderscore
}

// OffsetMode selects how the display-offset bias composes with a line's
// source index.
type OffsetMode int

const (
	// OffsetRelative adds the bias to the line's source-aligned index.
	OffsetRelative OffsetMode = iota

	// OffsetAbsolute replaces the range window's base: printed offsets
	// count up from the bias at the start of the range.
	OffsetAbsolute
)

// Range is the half-open interval [Skip, Limit) of source byte indices
// included in the dump. Limit may exceed the source length; it is clipped
// while draining. A negative Limit means unbounded.
type Range struct {
	Skip  int
	Limit int
}

// FullRange covers the entire source.
func FullRange() Range {
	return Range{Skip: 0, Limit: -1}
}

// length returns Limit-Skip, or -1 when the range is unbounded.
func (r Range) length() int {
	if r.Limit < 0 {
		return -1
	}
	return r.Limit - r.Skip
}

func (r Range) validate() error {
	if r.Skip < 0 {
		return ErrNegativeSkip
	}
	if r.Limit >= 0 && r.Limit < r.Skip {
		return ErrBackwardRange
	}
	return nil
}

// Options controls the layout and rendering of one dump. An Options value is
// fixed for the lifetime of a dump; the engine never observes a mutation
// after the first byte is drained, and never observes an invalid value
// (Validate runs before any byte is consumed).
type Options struct {
	// Autoskip elides runs of three or more identical full lines, printing
	// a single "*" line between the first and last occurrence.
	Autoskip bool

	// Uppercase renders hex digits in upper case (offset column and body).
	Uppercase bool

	// ShowOffset includes the offset column.
	ShowOffset bool

	// ShowAscii includes the printable-character sidebar.
	ShowAscii bool

	// Align pins lines to line-width boundaries of the source when the
	// range starts or ends mid-line, blank-padding the missing bytes.
	// When false, lines start exactly at Range.Skip.
	Align bool

	// Base is the numeral system for the hex body.
	Base Base

	// Leading is the leading-zero character for decimal and octal cells.
	Leading LeadingZeroChar

	// Grouping subdivides each line's bytes; it also fixes the line width.
	Grouping Grouping

	// Range restricts the dump to a sub-interval of the source.
	Range Range

	// OffsetMode and OffsetBias control the printed offsets.
	OffsetMode OffsetMode
	OffsetBias int

	// Substitute replaces non-printable bytes in the sidebar.
	Substitute byte

	// Charmap, when set, decodes sidebar bytes through a code page
	// instead of raw ASCII (for example charmap.CodePage037 for an
	// EBCDIC sidebar, or charmap.Windows1252).
	Charmap *charmap.Charmap

	// HexColor, when set, wraps the hex body of every line in the given
	// ANSI attributes. The dump's byte content is otherwise unchanged.
	HexColor *color.Color

	// FlushEvery flushes flushable sinks after every N lines; 0 flushes
	// only at end-of-dump.
	FlushEvery int
}

// DefaultOptions returns the canonical hexdump layout: sixteen bytes per
// line in eight two-byte groups, uppercase hex, full range, zero bias,
// autoskip on, offset column and ASCII sidebar shown.
func DefaultOptions() Options {
	return Options{
		Autoskip:   true,
		Uppercase:  true,
		ShowOffset: true,
		ShowAscii:  true,
		Align:      true,
		Base:       BaseHex,
		Leading:    LeadingZero,
		Grouping:   Grouped(GroupShort, SpacingNone, 8, SpacingNormal),
		Range:      FullRange(),
		OffsetMode: OffsetRelative,
		OffsetBias: 0,
		Substitute: '.',
	}
}

// LineWidth returns the number of source bytes covered by one output line.
func (o Options) LineWidth() int {
	return o.Grouping.LineWidth()
}

// Validate reports whether the options describe a renderable layout.
func (o Options) Validate() error {
	if err := o.Grouping.validate(); err != nil {
		return err
	}
	if err := o.Range.validate(); err != nil {
		return err
	}
	if !o.Base.valid() {
		return ErrBadBase
	}
	if !o.Leading.valid() {
		return ErrBadLeadingZero
	}
	if o.OffsetBias < 0 {
		return ErrNegativeBias
	}
	if o.FlushEvery < 0 {
		return ErrNegativeFlush
	}
	return nil
}

package hexd

import "errors"

var (
	// ErrEmptyGroupSpec indicates a Grouping with no groups.
	ErrEmptyGroupSpec = errors.New("hexd: empty group spec")
	// ErrZeroWidthGroup indicates a group whose byte width is not positive.
	ErrZeroWidthGroup = errors.New("hexd: group width must be positive")
	// ErrLineTooWide indicates a line width beyond the engine's line buffer.
	ErrLineTooWide = errors.New("hexd: line width exceeds buffer capacity")
	// ErrBadSpacing indicates an out-of-range Spacing value.
	ErrBadSpacing = errors.New("hexd: unknown spacing")
	// ErrBadBase indicates an out-of-range Base value.
	ErrBadBase = errors.New("hexd: unknown base")
	// ErrBadLeadingZero indicates an out-of-range LeadingZeroChar value.
	ErrBadLeadingZero = errors.New("hexd: unknown leading zero char")
	// ErrNegativeSkip indicates a Range starting before index zero.
	ErrNegativeSkip = errors.New("hexd: range start must not be negative")
	// ErrBackwardRange indicates a Range whose end precedes its start.
	ErrBackwardRange = errors.New("hexd: range end precedes start")
	// ErrNegativeBias indicates a negative display-offset bias.
	ErrNegativeBias = errors.New("hexd: offset bias must not be negative")
	// ErrNegativeFlush indicates a negative flush interval.
	ErrNegativeFlush = errors.New("hexd: flush interval must not be negative")
)

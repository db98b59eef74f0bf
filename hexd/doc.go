// Package hexd renders byte sequences as configurable hex dumps.
//
// # Overview
//
// This package turns any byte sequence into the familiar three-column dump:
// an offset column, a grouped hex (or decimal, octal, binary) body, and a
// printable-text sidebar. It streams: input is consumed one line at a time
// and output is emitted one line at a time, so dumping a multi-gigabyte
// file holds one line of each in memory.
//
//	00000000: 4865 6C6C 6F2C 2077 6F72 6C64 2120 486F |Hello, world! Ho|
//	00000010: 7065 6675 6C6C 7920 796F 7527 7265 2073 |pefully you're s|
//
// # Key Types
//
// The main types provided by this package are:
//
//   - Dump: A byte source bound to options, with fluent configuration and
//     terminal methods (String, Print, WriteTo, To)
//   - Options: The full option set; DefaultOptions matches the dump above
//   - Grouping: The body layout, built with Grouped or Ungrouped
//   - Source: The input abstraction, with optional Skipper and Sizer
//   - Sink: The line-at-a-time output abstraction
//   - FileSource: A memory-mapped file source returned by OpenFile
//
// # Dumping
//
// The usual entry points wrap a value and chain options:
//
//	hexd.Bytes(data).Print()
//	hexd.Reader(conn).Ungrouped(8, hexd.SpacingNormal).WriteTo(w)
//	hexd.Ints(samples, binary.BigEndian).Octal().Print()
//
// Within a slice, Range restricts the window and the offset column can
// label lines relative to the range or to the whole source:
//
//	hexd.Bytes(data).Range(0x40, 0x80).AbsoluteOffset(0).Print()
//
// # Autoskip
//
// Runs of three or more identical full lines collapse to the first line,
// a "*" marker, and the last line, matching classic xxd output. Disable
// with Autoskip(false).
//
// # Custom Sources and Sinks
//
// Anything with an io.Reader-style Read can be dumped via New. Sources
// additionally implementing Skipper skip to a range start without
// producing bytes, and Sizer lets the engine fit the offset column to the
// total size up front. On the output side, To drives any Sink; sinks
// implementing Flusher are flushed per Options.FlushEvery and at the end
// of the dump.
package hexd

// Package buf contains helpers for endian-safe encoding routines.
package buf

import "encoding/binary"

// PutUint writes the low len(b) bytes of v into b in the given order.
// Supported widths are 1, 2, 4 and 8; other widths leave b untouched.
func PutUint(b []byte, v uint64, order binary.ByteOrder) {
	switch len(b) {
	case 1:
		b[0] = byte(v)
	case 2:
		order.PutUint16(b, uint16(v))
	case 4:
		order.PutUint32(b, uint32(v))
	case 8:
		order.PutUint64(b, v)
	}
}

// Little reports whether order encodes multi-byte values least significant
// byte first. It probes the order rather than comparing against the
// binary.LittleEndian singleton, so custom ByteOrder implementations work.
func Little(order binary.ByteOrder) bool {
	var p [2]byte
	order.PutUint16(p[:], 1)
	return p[0] == 1
}

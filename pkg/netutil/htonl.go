package netutil

import "encoding/binary"

// Htons converts a 16-bit value from host to network byte order.
func Htons(v uint16) uint16 {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return binary.NativeEndian.Uint16(b[:])
}

func Ntohs(v uint16) uint16 { return Htons(v) }

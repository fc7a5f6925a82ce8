package fastpkt

// Checksum computes the Internet checksum (RFC 1071) of data.
//
// Words are summed in network byte order, so the result must be stored
// big-endian. The one's complement sum does not depend on byte order, so
// the stored bytes equal those of a host order sum stored in host order.
func Checksum(data []byte) uint16 {
	return tcpipChecksum(data, 0)
}

// ValidChecksum reports whether data, checksum field included, sums to all ones.
func ValidChecksum(data []byte) bool {
	return tcpipChecksum(data, 0) == 0
}

func tcpipChecksum(data []byte, csum uint32) uint16 {
	// Loop to length - 1 in steps of 2, then pick up an odd trailing byte
	// as the high half of one more word.
	length := len(data) - 1
	for i := 0; i < length; i += 2 {
		csum += uint32(data[i]) << 8
		csum += uint32(data[i+1])
	}
	if len(data)%2 == 1 {
		csum += uint32(data[length]) << 8
	}
	for csum > 0xffff {
		csum = (csum >> 16) + (csum & 0xffff)
	}
	return ^uint16(csum)
}

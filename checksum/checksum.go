// Package checksum implements the 16-bit internet checksum described in
// RFC 1071, used for the IPv4, TCP, and ICMP headers this tool builds.
package checksum

// Sum returns the one's-complement of the one's-complement 16-bit sum of
// data. A trailing odd byte is treated as the high byte of a zero-padded
// word. Pure function; data is never modified.
func Sum(data []byte) uint16 {
	var sum uint32

	for i := 0; i+1 < len(data); i += 2 {
		sum += uint32(data[i])<<8 | uint32(data[i+1])
	}

	if len(data)%2 == 1 {
		sum += uint32(data[len(data)-1]) << 8
	}

	// Fold carries back into the low 16 bits.
	for sum > 0xffff {
		sum = (sum >> 16) + (sum & 0xffff)
	}

	return ^uint16(sum)
}

// Package packet builds the raw IPv4, TCP, and ICMP headers sent by the
// attack runners. All byte-order and field-offset knowledge lives here;
// nothing outside this package touches raw offsets.
package packet

import (
	"encoding/binary"
	"math/rand"
	"net"

	"github.com/nsrg-lab/attackgen/checksum"
)

// IP protocol numbers used by the builders.
const (
	ProtocolICMP uint8 = 1
	ProtocolTCP  uint8 = 6
)

const ipv4HeaderLen = 20

// IPv4Header is a fixed-layout 20-byte IPv4 header with no options.
type IPv4Header struct {
	VersionIHL uint8 // 4 in the high nibble, header words in the low.
	TOS        uint8
	TotalLen   uint16
	ID         uint16
	FragOff    uint16 // Flags and fragment offset; always zero here.
	TTL        uint8
	Protocol   uint8
	Checksum   uint16
	SrcIP      net.IP
	DstIP      net.IP
}

func (h *IPv4Header) marshal() []byte {
	b := make([]byte, ipv4HeaderLen)

	b[0] = h.VersionIHL
	b[1] = h.TOS
	binary.BigEndian.PutUint16(b[2:4], h.TotalLen)
	binary.BigEndian.PutUint16(b[4:6], h.ID)
	binary.BigEndian.PutUint16(b[6:8], h.FragOff)
	b[8] = h.TTL
	b[9] = h.Protocol
	binary.BigEndian.PutUint16(b[10:12], h.Checksum)
	copy(b[12:16], h.SrcIP.To4())
	copy(b[16:20], h.DstIP.To4())

	return b
}

// BuildIPv4 returns a ready-to-send IPv4 header for a payload of
// payloadLen bytes. The identification field is freshly randomized on
// every call rather than drawn from a counter; uncoordinated flood
// traffic does not carry sequential IDs, and the detectability profile
// of the generated traffic depends on keeping it that way.
func BuildIPv4(payloadLen int, protocol uint8, srcIP, dstIP net.IP) []byte {

	h := IPv4Header{
		VersionIHL: 4<<4 | ipv4HeaderLen/4,
		TotalLen:   uint16(ipv4HeaderLen + payloadLen),
		ID:         uint16(rand.Intn(1 << 16)),
		TTL:        64,
		Protocol:   protocol,
		SrcIP:      srcIP,
		DstIP:      dstIP,
	}

	h.Checksum = checksum.Sum(h.marshal())

	return h.marshal()
}

package packet

import (
	"encoding/binary"
	"math/rand"
	"net"

	"github.com/nsrg-lab/attackgen/checksum"
)

const tcpHeaderLen = 20

// FlagSYN is the only TCP flag this tool ever sets.
const FlagSYN uint8 = 0x02

// TCPHeader is a fixed-layout 20-byte TCP header with no options.
type TCPHeader struct {
	SrcPort    uint16
	DstPort    uint16
	Seq        uint32
	Ack        uint32
	DataOffset uint8 // Header length in 32-bit words.
	Flags      uint8
	Window     uint16
	Checksum   uint16
	Urgent     uint16
}

func (h *TCPHeader) marshal() []byte {
	b := make([]byte, tcpHeaderLen)

	binary.BigEndian.PutUint16(b[0:2], h.SrcPort)
	binary.BigEndian.PutUint16(b[2:4], h.DstPort)
	binary.BigEndian.PutUint32(b[4:8], h.Seq)
	binary.BigEndian.PutUint32(b[8:12], h.Ack)
	b[12] = h.DataOffset << 4
	b[13] = h.Flags
	binary.BigEndian.PutUint16(b[14:16], h.Window)
	binary.BigEndian.PutUint16(b[16:18], h.Checksum)
	binary.BigEndian.PutUint16(b[18:20], h.Urgent)

	return b
}

// pseudoHeader is the virtual header prepended for the TCP checksum.
// It is never transmitted.
func pseudoHeader(srcIP, dstIP net.IP, protocol uint8, segmentLen int) []byte {
	b := make([]byte, 12)

	copy(b[0:4], srcIP.To4())
	copy(b[4:8], dstIP.To4())
	b[9] = protocol
	binary.BigEndian.PutUint16(b[10:12], uint16(segmentLen))

	return b
}

// BuildTCPSyn returns a bare SYN segment. The sequence number is
// randomized per call, the acknowledgment number is zero, and no flag
// other than SYN is set; the checksum covers the pseudo-header plus the
// segment with the checksum field zeroed, then is spliced back in.
func BuildTCPSyn(srcPort, dstPort uint16, srcIP, dstIP net.IP) []byte {

	h := TCPHeader{
		SrcPort:    srcPort,
		DstPort:    dstPort,
		Seq:        rand.Uint32(),
		DataOffset: tcpHeaderLen / 4,
		Flags:      FlagSYN,
		Window:     5840,
	}

	segment := h.marshal()
	h.Checksum = checksum.Sum(append(pseudoHeader(srcIP, dstIP, ProtocolTCP, len(segment)), segment...))

	return h.marshal()
}

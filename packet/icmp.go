package packet

import (
	"bytes"
	"encoding/binary"
	"math/rand"

	"github.com/nsrg-lab/attackgen/checksum"
)

const (
	icmpEchoRequest = 8
	icmpHeaderLen   = 8

	// EchoPayloadLen matches the 56 data bytes of a standard ping.
	EchoPayloadLen = 56

	echoFiller = 'A'
)

// ICMPEchoHeader is a fixed-layout 8-byte ICMP echo request header.
type ICMPEchoHeader struct {
	Type     uint8
	Code     uint8
	Checksum uint16
	ID       uint16
	Seq      uint16
}

func (h *ICMPEchoHeader) marshal() []byte {
	b := make([]byte, icmpHeaderLen)

	b[0] = h.Type
	b[1] = h.Code
	binary.BigEndian.PutUint16(b[2:4], h.Checksum)
	binary.BigEndian.PutUint16(b[4:6], h.ID)
	binary.BigEndian.PutUint16(b[6:8], h.Seq)

	return b
}

// BuildICMPEcho returns an echo request carrying seq and a fixed
// 56-byte filler payload. The identifier is randomized once per packet;
// the checksum covers header plus payload with the field zeroed first.
func BuildICMPEcho(seq uint16) []byte {

	h := ICMPEchoHeader{
		Type: icmpEchoRequest,
		ID:   uint16(rand.Intn(1 << 16)),
		Seq:  seq,
	}

	pkt := append(h.marshal(), bytes.Repeat([]byte{echoFiller}, EchoPayloadLen)...)
	h.Checksum = checksum.Sum(pkt)
	copy(pkt[:icmpHeaderLen], h.marshal())

	return pkt
}

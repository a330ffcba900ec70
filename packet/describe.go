package packet

import (
	"strings"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// Describe decodes a built packet with gopacket and returns a short
// layer summary for logging. withIPHeader selects whether data starts at
// the IPv4 header or directly at an ICMP header (the kernel prepends the
// IP header on ICMP raw sockets).
func Describe(data []byte, withIPHeader bool) string {

	first := layers.LayerTypeIPv4
	if !withIPHeader {
		first = layers.LayerTypeICMPv4
	}

	p := gopacket.NewPacket(data, first, gopacket.Default)

	if errLayer := p.ErrorLayer(); errLayer != nil {
		return "undecodable packet: " + errLayer.Error().Error()
	}

	parts := make([]string, 0, 3)
	for _, l := range p.Layers() {
		parts = append(parts, gopacket.LayerString(l))
	}

	return strings.Join(parts, " | ")
}

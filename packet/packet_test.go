package packet_test

import (
	"bytes"
	"net"
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"github.com/nsrg-lab/attackgen/checksum"
	"github.com/nsrg-lab/attackgen/packet"
)

var (
	testSrcIP = net.ParseIP("10.0.0.11")
	testDstIP = net.ParseIP("10.0.0.20")
)

func TestBuildIPv4(t *testing.T) {

	b := packet.BuildIPv4(20, packet.ProtocolTCP, testSrcIP, testDstIP)

	if len(b) != 20 {
		t.Fatalf("header length = %d, want 20", len(b))
	}

	ip := &layers.IPv4{}
	if err := ip.DecodeFromBytes(b, gopacket.NilDecodeFeedback); err != nil {
		t.Fatalf("gopacket failed to decode built header: %v", err)
	}

	if ip.Version != 4 || ip.IHL != 5 {
		t.Errorf("version/IHL = %d/%d, want 4/5", ip.Version, ip.IHL)
	}

	if ip.Length != 40 {
		t.Errorf("total length = %d, want 40", ip.Length)
	}

	if ip.TTL != 64 {
		t.Errorf("TTL = %d, want 64", ip.TTL)
	}

	if ip.Protocol != layers.IPProtocolTCP {
		t.Errorf("protocol = %d, want TCP", ip.Protocol)
	}

	if !ip.SrcIP.Equal(testSrcIP) || !ip.DstIP.Equal(testDstIP) {
		t.Errorf("addresses = %v -> %v, want %v -> %v", ip.SrcIP, ip.DstIP, testSrcIP, testDstIP)
	}

	// A header carrying its own correct checksum sums to zero.
	if s := checksum.Sum(b); s != 0 {
		t.Errorf("checksum verification sum = %#04x, want 0", s)
	}
}

func TestBuildTCPSyn(t *testing.T) {

	b := packet.BuildTCPSyn(12345, 80, testSrcIP, testDstIP)

	if len(b) != 20 {
		t.Fatalf("segment length = %d, want 20", len(b))
	}

	tcp := &layers.TCP{}
	if err := tcp.DecodeFromBytes(b, gopacket.NilDecodeFeedback); err != nil {
		t.Fatalf("gopacket failed to decode built segment: %v", err)
	}

	if tcp.SrcPort != 12345 || tcp.DstPort != 80 {
		t.Errorf("ports = %d -> %d, want 12345 -> 80", tcp.SrcPort, tcp.DstPort)
	}

	if !tcp.SYN {
		t.Error("SYN flag not set")
	}

	if tcp.FIN || tcp.ACK || tcp.RST || tcp.PSH || tcp.URG {
		t.Error("flag other than SYN is set")
	}

	if tcp.Ack != 0 {
		t.Errorf("ack number = %d, want 0", tcp.Ack)
	}

	if tcp.DataOffset != 5 {
		t.Errorf("data offset = %d, want 5", tcp.DataOffset)
	}

	if tcp.Window != 5840 {
		t.Errorf("window = %d, want 5840", tcp.Window)
	}

	// Verify against the pseudo-header the checksum was computed over.
	pseudo := make([]byte, 12)
	copy(pseudo[0:4], testSrcIP.To4())
	copy(pseudo[4:8], testDstIP.To4())
	pseudo[9] = packet.ProtocolTCP
	pseudo[10] = 0
	pseudo[11] = 20

	if s := checksum.Sum(append(pseudo, b...)); s != 0 {
		t.Errorf("pseudo-header checksum verification sum = %#04x, want 0", s)
	}
}

func TestBuildICMPEcho(t *testing.T) {

	b := packet.BuildICMPEcho(7)

	if len(b) != 8+packet.EchoPayloadLen {
		t.Fatalf("packet length = %d, want %d", len(b), 8+packet.EchoPayloadLen)
	}

	icmp := &layers.ICMPv4{}
	if err := icmp.DecodeFromBytes(b, gopacket.NilDecodeFeedback); err != nil {
		t.Fatalf("gopacket failed to decode built packet: %v", err)
	}

	if icmp.TypeCode.Type() != layers.ICMPv4TypeEchoRequest || icmp.TypeCode.Code() != 0 {
		t.Errorf("type/code = %d/%d, want 8/0", icmp.TypeCode.Type(), icmp.TypeCode.Code())
	}

	if icmp.Seq != 7 {
		t.Errorf("sequence = %d, want 7", icmp.Seq)
	}

	if !bytes.Equal(b[8:], bytes.Repeat([]byte{'A'}, packet.EchoPayloadLen)) {
		t.Error("payload is not the fixed 56-byte filler")
	}

	if s := checksum.Sum(b); s != 0 {
		t.Errorf("checksum verification sum = %#04x, want 0", s)
	}
}

func TestPerPacketRandomization(t *testing.T) {

	// Identification and sequence numbers are re-randomized per packet,
	// never drawn from a counter. Build a handful and require variation.
	ids := make(map[uint16]bool)
	seqs := make(map[uint32]bool)

	for i := 0; i < 8; i++ {
		ip := &layers.IPv4{}
		if err := ip.DecodeFromBytes(packet.BuildIPv4(20, packet.ProtocolTCP, testSrcIP, testDstIP), gopacket.NilDecodeFeedback); err != nil {
			t.Fatal(err)
		}
		ids[ip.Id] = true

		tcp := &layers.TCP{}
		if err := tcp.DecodeFromBytes(packet.BuildTCPSyn(12345, 80, testSrcIP, testDstIP), gopacket.NilDecodeFeedback); err != nil {
			t.Fatal(err)
		}
		seqs[tcp.Seq] = true
	}

	if len(ids) < 2 {
		t.Error("IPv4 identification identical across 8 packets")
	}

	if len(seqs) < 2 {
		t.Error("TCP sequence number identical across 8 packets")
	}
}

func TestDescribe(t *testing.T) {

	seg := packet.BuildTCPSyn(12345, 80, testSrcIP, testDstIP)
	pkt := append(packet.BuildIPv4(len(seg), packet.ProtocolTCP, testSrcIP, testDstIP), seg...)

	s := packet.Describe(pkt, true)
	if s == "" {
		t.Fatal("empty description for a valid packet")
	}

	if got := packet.Describe(packet.BuildICMPEcho(0), false); got == "" {
		t.Fatal("empty description for a valid ICMP packet")
	}
}

package config

import (
	"net"
)

type PortScanOptions struct {
	TargetIP net.IP
	SourceIP net.IP

	StartPort int
	EndPort   int
	Rate      int // Probes per second; 0 == unbounded.
}

func (o *PortScanOptions) AttackType() string {
	return "port_scan"
}

// PortCount is the exact number of probes a scan attempts.
func (o *PortScanOptions) PortCount() int {
	return o.EndPort - o.StartPort + 1
}

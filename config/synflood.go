package config

import (
	"net"
)

type SynFloodOptions struct {
	TargetIP net.IP
	SourceIP net.IP

	TargetPort int
	Count      int
	Rate       int // Packets per second; 0 == unbounded.
}

func (o *SynFloodOptions) AttackType() string {
	return "syn_flood"
}

package config

import (
	"net"
)

type IcmpFloodOptions struct {
	TargetIP net.IP

	Count int
	Rate  int // Packets per second; 0 == unbounded.
}

func (o *IcmpFloodOptions) AttackType() string {
	return "icmp_flood"
}

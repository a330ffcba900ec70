package config

import (
	"net"
)

type SocketeerOptions struct {
	Protocol        int // IPPROTO_TCP or IPPROTO_ICMP.
	IncludeIPHeader bool
	TargetIP        net.IP
}

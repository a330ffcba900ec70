package config

import (
	"net"
	"time"
)

// DefaultConnectTimeout bounds each HTTP flood connection attempt. The
// flood is unpaced; this timeout is the only thing gating it.
const DefaultConnectTimeout = 2 * time.Second

type HttpFloodOptions struct {
	TargetIP net.IP

	TargetPort     int
	Count          int
	ConnectTimeout time.Duration
}

func (o *HttpFloodOptions) AttackType() string {
	return "http_flood"
}

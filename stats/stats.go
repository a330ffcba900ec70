// Package stats accumulates the ground truth of a campaign: an exact,
// query-able record of what was sent, consumed later by the detection
// metrics evaluator.
package stats

import (
	"encoding/json"
	"time"
)

type AttackKind int

const (
	SynFlood AttackKind = iota
	PortScan
	IcmpFlood
	HttpFlood
)

// Name is the key the attack is recorded under in the ground truth.
func (k AttackKind) Name() string {
	switch k {
	case SynFlood:
		return "syn_flood"
	case PortScan:
		return "port_scan"
	case IcmpFlood:
		return "icmp_flood"
	case HttpFlood:
		return "http_flood"
	}
	return "unknown"
}

// Label is the human-readable attack type the evaluator correlates
// signature IDs against. These strings are part of the output contract.
func (k AttackKind) Label() string {
	switch k {
	case SynFlood:
		return "SYN Flood"
	case PortScan:
		return "Port Scan"
	case IcmpFlood:
		return "ICMP Flood"
	case HttpFlood:
		return "HTTP Flood"
	}
	return "Unknown"
}

// AttackRecord is the canonical per-run record. It is mutated only by
// the owning runner while the run is in progress and treated as
// immutable once finalized. The legacy field-name split
// (packets_sent/requests_sent, target_rate/rate) exists only in
// MarshalJSON, never here.
type AttackRecord struct {
	Kind AttackKind

	Port      int // SYN and HTTP floods.
	StartPort int // Port scan.
	EndPort   int

	RequestedCount int
	Sent           int
	Failed         int

	TargetRate int
	ActualRate float64

	Duration time.Duration
}

// Finalize closes the record after the loop ends, successfully or via
// abort. Observed rate is sent packets over elapsed wall-clock seconds.
func (r *AttackRecord) Finalize(elapsed time.Duration) {

	r.Duration = elapsed

	if s := elapsed.Seconds(); s > 0 {
		r.ActualRate = float64(r.Sent) / s
	}
}

// MarshalJSON emits the record in the shape the external evaluator
// consumes: raw-packet attacks carry packets_sent/packets_failed plus
// target_rate and actual_rate; the HTTP flood carries
// requests_sent/requests_failed and a single observed rate.
func (r AttackRecord) MarshalJSON() ([]byte, error) {

	m := map[string]interface{}{
		"attack_type": r.Kind.Label(),
		"duration":    r.Duration.Seconds(),
	}

	switch r.Kind {
	case HttpFlood:
		m["port"] = r.Port
		m["requested_count"] = r.RequestedCount
		m["requests_sent"] = r.Sent
		m["requests_failed"] = r.Failed
		m["rate"] = r.ActualRate
	case PortScan:
		m["start_port"] = r.StartPort
		m["end_port"] = r.EndPort
		m["port_count"] = r.RequestedCount
		m["packets_sent"] = r.Sent
		m["packets_failed"] = r.Failed
		m["target_rate"] = r.TargetRate
		m["actual_rate"] = r.ActualRate
	case SynFlood:
		m["port"] = r.Port
		m["requested_count"] = r.RequestedCount
		m["packets_sent"] = r.Sent
		m["packets_failed"] = r.Failed
		m["target_rate"] = r.TargetRate
		m["actual_rate"] = r.ActualRate
	case IcmpFlood:
		m["requested_count"] = r.RequestedCount
		m["packets_sent"] = r.Sent
		m["packets_failed"] = r.Failed
		m["target_rate"] = r.TargetRate
		m["actual_rate"] = r.ActualRate
	}

	return json.Marshal(m)
}

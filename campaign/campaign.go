// Package campaign orchestrates attack runs. Execution is strictly
// sequential: at most one runner is active at a time, campaigns in a
// suite run back-to-back with a fixed pause, and the single ground-truth
// record is owned here and mutated only between runs.
package campaign

import (
	"fmt"
	"log"
	"net"
	"time"

	"github.com/nsrg-lab/attackgen/config"
	"github.com/nsrg-lab/attackgen/generator"
	"github.com/nsrg-lab/attackgen/socketeer"
	"github.com/nsrg-lab/attackgen/stats"
)

type Campaign struct {
	targetIP net.IP
	sourceIP net.IP

	pause time.Duration

	groundTruth *stats.CampaignGroundTruth
}

func New(targetIP, sourceIP net.IP) *Campaign {

	log.SetFlags(log.LstdFlags | log.LUTC)

	c := Campaign{
		targetIP:    targetIP,
		sourceIP:    sourceIP,
		pause:       2 * time.Second,
		groundTruth: stats.NewCampaignGroundTruth(targetIP.String(), sourceIP.String()),
	}

	return &c
}

// SetPause overrides the fixed inter-campaign pause.
func (c *Campaign) SetPause(d time.Duration) {
	c.pause = d
}

func (c *Campaign) GroundTruth() *stats.CampaignGroundTruth {
	return c.groundTruth
}

func (c *Campaign) addLog(s string) bool {
	log.Print("INFO: " + s)
	return true
}

func (c *Campaign) addError(e error) bool {
	log.Print("ERROR: " + e.Error())
	return true
}

func (c *Campaign) addRecord(r stats.AttackRecord) bool {
	c.groundTruth.AddRecord(r)
	return true
}

// RunOne builds and drives a single runner against the given sender. A
// setup-time failure (privilege denial) is returned and leaves the
// ground truth untouched for that run.
func (c *Campaign) RunOne(o config.AttackConfig, sender socketeer.PayloadSender) error {

	r, err := generator.New(generator.RunnerInitParams{
		Options:    o,
		Sender:     sender,
		LogFunc:    c.addLog,
		ErrFunc:    c.addError,
		RecordFunc: c.addRecord,
	})

	if err != nil {
		return err
	}

	c.addLog("starting " + o.AttackType())

	return r.Run()
}

func (c *Campaign) RunSynFlood(o *config.SynFloodOptions) error {
	return c.RunOne(o, socketeer.NewTCPSender(c.targetIP, c.addLog, c.addError))
}

func (c *Campaign) RunPortScan(o *config.PortScanOptions) error {
	return c.RunOne(o, socketeer.NewTCPSender(c.targetIP, c.addLog, c.addError))
}

func (c *Campaign) RunIcmpFlood(o *config.IcmpFloodOptions) error {
	return c.RunOne(o, socketeer.NewICMPSender(c.targetIP, c.addLog, c.addError))
}

func (c *Campaign) RunHttpFlood(o *config.HttpFloodOptions) error {
	return c.RunOne(o, nil)
}

// RunSuite executes the standard research suite in its fixed order:
// HTTP flood, ICMP flood, port scan, SYN flood, pausing between runs.
// The first setup failure aborts the whole suite.
func (c *Campaign) RunSuite(sc config.SuiteConfig) error {

	c.SetPause(sc.Pause())

	c.addLog(fmt.Sprintf("attack suite: target %s, source %s", c.targetIP, c.sourceIP))

	if err := c.RunHttpFlood(&config.HttpFloodOptions{
		TargetIP:   c.targetIP,
		TargetPort: sc.HttpPort,
		Count:      sc.HttpCount,
	}); err != nil {
		return err
	}

	time.Sleep(c.pause)

	if err := c.RunIcmpFlood(&config.IcmpFloodOptions{
		TargetIP: c.targetIP,
		Count:    sc.IcmpCount,
		Rate:     sc.IcmpRate,
	}); err != nil {
		return err
	}

	time.Sleep(c.pause)

	if err := c.RunPortScan(&config.PortScanOptions{
		TargetIP:  c.targetIP,
		SourceIP:  c.sourceIP,
		StartPort: sc.ScanStartPort,
		EndPort:   sc.ScanEndPort,
		Rate:      sc.ScanRate,
	}); err != nil {
		return err
	}

	time.Sleep(c.pause)

	if err := c.RunSynFlood(&config.SynFloodOptions{
		TargetIP:   c.targetIP,
		SourceIP:   c.sourceIP,
		TargetPort: sc.SynPort,
		Count:      sc.SynCount,
		Rate:       sc.SynRate,
	}); err != nil {
		return err
	}

	return nil
}

// Finish finalizes the ground truth and persists it. A write failure is
// a hard failure of the overall run.
func (c *Campaign) Finish(outputPath string) error {

	c.groundTruth.Finalize()

	if err := c.groundTruth.Save(outputPath); err != nil {
		return err
	}

	c.addLog(fmt.Sprintf("total sent: %d, ground truth saved to %s", c.groundTruth.TotalSent(), outputPath))

	return nil
}

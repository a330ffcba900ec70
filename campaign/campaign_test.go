package campaign_test

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/nsrg-lab/attackgen/campaign"
	"github.com/nsrg-lab/attackgen/config"
)

type nullSender struct {
	sends int
}

func (n *nullSender) Open() error { return nil }

func (n *nullSender) Send(payload []byte) error {
	n.sends++
	return nil
}

func (n *nullSender) Close() error { return nil }

func TestSequentialRunsAccumulateGroundTruth(t *testing.T) {

	c := campaign.New(net.ParseIP("10.0.0.20"), net.ParseIP("10.0.0.11"))
	c.SetPause(0)

	syn := &nullSender{}
	if err := c.RunOne(&config.SynFloodOptions{
		TargetIP:   net.ParseIP("10.0.0.20"),
		SourceIP:   net.ParseIP("10.0.0.11"),
		TargetPort: 8080,
		Count:      30,
	}, syn); err != nil {
		t.Fatalf("syn flood: %v", err)
	}

	scan := &nullSender{}
	if err := c.RunOne(&config.PortScanOptions{
		TargetIP:  net.ParseIP("10.0.0.20"),
		SourceIP:  net.ParseIP("10.0.0.11"),
		StartPort: 1,
		EndPort:   20,
	}, scan); err != nil {
		t.Fatalf("port scan: %v", err)
	}

	g := c.GroundTruth()

	if len(g.Attacks) != 2 {
		t.Fatalf("recorded %d attacks, want 2", len(g.Attacks))
	}

	if g.Attacks["syn_flood"].Sent != 30 {
		t.Errorf("syn_flood sent = %d, want 30", g.Attacks["syn_flood"].Sent)
	}

	if g.Attacks["port_scan"].Sent != 20 {
		t.Errorf("port_scan sent = %d, want 20", g.Attacks["port_scan"].Sent)
	}

	if syn.sends != 30 || scan.sends != 20 {
		t.Errorf("send counts = %d/%d, want 30/20", syn.sends, scan.sends)
	}
}

func TestFinishPersistsGroundTruth(t *testing.T) {

	c := campaign.New(net.ParseIP("10.0.0.20"), net.ParseIP("10.0.0.11"))
	c.SetPause(0)

	if err := c.RunOne(&config.IcmpFloodOptions{
		TargetIP: net.ParseIP("10.0.0.20"),
		Count:    10,
	}, &nullSender{}); err != nil {
		t.Fatalf("icmp flood: %v", err)
	}

	path := filepath.Join(t.TempDir(), "gt.json")
	if err := c.Finish(path); err != nil {
		t.Fatalf("Finish: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	var out struct {
		Target  string                     `json:"target"`
		Attacks map[string]json.RawMessage `json:"attacks"`
		Totals  *struct {
			TotalPacketsSent int `json:"total_packets_sent"`
		} `json:"totals"`
	}

	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("persisted ground truth unparsable: %v", err)
	}

	if out.Target != "10.0.0.20" {
		t.Errorf("target = %q", out.Target)
	}

	if _, ok := out.Attacks["icmp_flood"]; !ok {
		t.Error("icmp_flood record missing from persisted ground truth")
	}

	if out.Totals == nil || out.Totals.TotalPacketsSent != 10 {
		t.Errorf("totals = %+v, want total_packets_sent 10", out.Totals)
	}
}

func TestFinishSurfacesWriteFailure(t *testing.T) {

	c := campaign.New(net.ParseIP("10.0.0.20"), net.ParseIP("10.0.0.11"))

	if err := c.Finish(filepath.Join(t.TempDir(), "no", "such", "dir", "gt.json")); err == nil {
		t.Error("Finish did not surface the write failure")
	}
}

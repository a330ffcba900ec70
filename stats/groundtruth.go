package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Totals aggregates the whole campaign for the summary block of the
// ground-truth file.
type Totals struct {
	TotalPacketsSent int     `json:"total_packets_sent"`
	TotalDuration    float64 `json:"total_duration"`
}

// CampaignGroundTruth is the single mutable record of a campaign. It is
// owned by the orchestrator for the campaign's lifetime, mutated only
// between runs, persisted at the end, and then discarded.
type CampaignGroundTruth struct {
	Target    string                  `json:"target"`
	Source    string                  `json:"source"`
	StartTime float64                 `json:"start_time"`
	Attacks   map[string]AttackRecord `json:"attacks"`

	EndTime       float64 `json:"end_time,omitempty"`
	TotalDuration float64 `json:"total_duration,omitempty"`
	Totals        *Totals `json:"totals,omitempty"`
}

func NewCampaignGroundTruth(target, source string) *CampaignGroundTruth {

	g := CampaignGroundTruth{
		Target:    target,
		Source:    source,
		StartTime: float64(time.Now().UnixNano()) / float64(time.Second),
		Attacks:   make(map[string]AttackRecord),
	}

	return &g
}

// AddRecord files a finalized record under its attack name. Insertion
// order mirrors execution order but is not significant for lookup.
func (g *CampaignGroundTruth) AddRecord(r AttackRecord) {
	g.Attacks[r.Kind.Name()] = r
}

// Finalize computes the aggregate totals once all runs have ended.
func (g *CampaignGroundTruth) Finalize() {

	g.EndTime = float64(time.Now().UnixNano()) / float64(time.Second)
	g.TotalDuration = g.EndTime - g.StartTime

	totals := Totals{TotalDuration: g.TotalDuration}
	for _, r := range g.Attacks {
		totals.TotalPacketsSent += r.Sent
	}

	g.Totals = &totals
}

// TotalSent is the sum of packets/requests sent across all runs.
func (g *CampaignGroundTruth) TotalSent() int {

	total := 0
	for _, r := range g.Attacks {
		total += r.Sent
	}

	return total
}

// Save persists the ground truth for the external evaluator. A write
// failure is a hard failure of the overall run and is returned to the
// caller, never swallowed.
func (g *CampaignGroundTruth) Save(path string) error {

	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing ground truth: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing ground truth to %s: %w", path, err)
	}

	return nil
}

// DefaultOutputPath names the ground-truth file the way the evaluator
// tooling expects to find it.
func DefaultOutputPath() string {
	return fmt.Sprintf("/tmp/controlled_attack_stats_%d.json", time.Now().Unix())
}

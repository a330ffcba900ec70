package metrics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// AttackMetrics is the per-attack section of the detection report.
type AttackMetrics struct {
	AttackType     string  `json:"attack_type"`
	PacketsSent    int     `json:"packets_sent"`
	Detected       bool    `json:"detected"`
	AttackDuration float64 `json:"attack_duration"`
	TargetRate     float64 `json:"target_rate"`
	ActualRate     float64 `json:"actual_rate"`

	TimeToDetectSeconds  *float64 `json:"time_to_detect_seconds"`
	DetectionTimestamp   *string  `json:"detection_timestamp"`
	TotalAlerts          int      `json:"total_alerts"`
	DetectionRatePercent float64  `json:"detection_rate_percent"`
	Signature            *string  `json:"signature"`
	Severity             *int     `json:"severity"`
}

type Metadata struct {
	TestType          string `json:"test_type"`
	Iteration         string `json:"iteration"`
	AnalysisTimestamp string `json:"analysis_timestamp"`
	GroundTruthFile   string `json:"ground_truth_file"`
	EveJSONFile       string `json:"eve_json_file"`
}

type Summary struct {
	TotalAttacks                int     `json:"total_attacks"`
	DetectedAttacks             int     `json:"detected_attacks"`
	UndetectedAttacks           int     `json:"undetected_attacks"`
	DetectionSuccessRatePercent float64 `json:"detection_success_rate_percent"`
	TotalPacketsSent            int     `json:"total_packets_sent"`
	TotalAlerts                 int     `json:"total_alerts"`
	OverallDetectionRatePercent float64 `json:"overall_detection_rate_percent"`
}

type Report struct {
	Metadata Metadata                 `json:"metadata"`
	Attacks  map[string]AttackMetrics `json:"attacks"`
	Summary  Summary                  `json:"summary"`
}

// CalculateMetrics joins the ground truth with the parsed detections.
func (c *Collector) CalculateMetrics() map[string]AttackMetrics {

	metrics := make(map[string]AttackMetrics, len(c.groundTruth))

	for name, truth := range c.groundTruth {

		m := AttackMetrics{
			AttackType:     truth.AttackType,
			PacketsSent:    truth.PacketsSent,
			AttackDuration: truth.Duration,
			TargetRate:     truth.TargetRate,
			ActualRate:     truth.ActualRate,
		}

		if d, ok := c.firstDetections[truth.AttackType]; ok {
			m.Detected = true

			ttd := d.TimeToDetect
			ts := d.Timestamp
			sig := d.Signature
			sev := d.Severity

			m.TimeToDetectSeconds = &ttd
			m.DetectionTimestamp = &ts
			m.Signature = &sig
			m.Severity = &sev

			m.TotalAlerts = c.alertCounts[truth.AttackType]
			if truth.PacketsSent > 0 {
				m.DetectionRatePercent = float64(m.TotalAlerts) / float64(truth.PacketsSent) * 100
			}
		}

		metrics[name] = m
	}

	return metrics
}

// GenerateReport assembles the full report with summary statistics.
func (c *Collector) GenerateReport(metrics map[string]AttackMetrics, testType, iteration string) Report {

	summary := Summary{TotalAttacks: len(metrics)}

	for _, m := range metrics {
		if m.Detected {
			summary.DetectedAttacks++
		}
		summary.TotalPacketsSent += m.PacketsSent
		summary.TotalAlerts += m.TotalAlerts
	}

	summary.UndetectedAttacks = summary.TotalAttacks - summary.DetectedAttacks

	if summary.TotalAttacks > 0 {
		summary.DetectionSuccessRatePercent = float64(summary.DetectedAttacks) / float64(summary.TotalAttacks) * 100
	}

	if summary.TotalPacketsSent > 0 {
		summary.OverallDetectionRatePercent = float64(summary.TotalAlerts) / float64(summary.TotalPacketsSent) * 100
	}

	return Report{
		Metadata: Metadata{
			TestType:          testType,
			Iteration:         iteration,
			AnalysisTimestamp: time.Now().Format(time.RFC3339),
			GroundTruthFile:   c.groundTruthFile,
			EveJSONFile:       c.eveFile,
		},
		Attacks: metrics,
		Summary: summary,
	}
}

// Save writes the report as indented JSON, creating parent directories
// as needed.
func (r Report) Save(path string) error {

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report to %s: %w", path, err)
	}

	return nil
}

// Package metrics scores IDS alerts against attack ground truth. It
// consumes the JSON file the campaign persists plus a Suricata eve.json
// event log, and reports per-attack detection latency, alert counts,
// and detection rates. Analysis failures never touch the generator.
package metrics

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// sidToAttack maps the study's Suricata rule signature IDs to the
// attack-type labels the ground truth carries.
var sidToAttack = map[string]string{
	"1000001": "HTTP Flood",
	"1000002": "Port Scan",
	"1000003": "ICMP Flood",
	"1000004": "SYN Flood",
	"1000005": "Suspicious User-Agent",
	"1000006": "Rapid Connections",
}

// AttackTruth is the canonical view of one ground-truth record. The
// legacy field-name split of the input file is resolved here, at the
// parse boundary, and nowhere else.
type AttackTruth struct {
	AttackType  string
	PacketsSent int
	Duration    float64
	TargetRate  float64
	ActualRate  float64
}

// Detection captures the first alert seen for an attack type.
type Detection struct {
	Timestamp    string
	TimeToDetect float64
	Signature    string
	Severity     int
}

type Collector struct {
	groundTruthFile string
	eveFile         string

	groundTruth     map[string]AttackTruth
	attackStartTime time.Time

	firstDetections map[string]Detection
	alertCounts     map[string]int
}

func NewCollector(groundTruthFile, eveFile string) *Collector {

	c := Collector{
		groundTruthFile: groundTruthFile,
		eveFile:         eveFile,
		firstDetections: make(map[string]Detection),
		alertCounts:     make(map[string]int),
	}

	return &c
}

type groundTruthAttack struct {
	AttackType   string  `json:"attack_type"`
	PacketsSent  int     `json:"packets_sent"`
	RequestsSent int     `json:"requests_sent"`
	Duration     float64 `json:"duration"`
	TargetRate   float64 `json:"target_rate"`
	Rate         float64 `json:"rate"`
	ActualRate   float64 `json:"actual_rate"`
}

type groundTruthFile struct {
	StartTime float64                      `json:"start_time"`
	Attacks   map[string]groundTruthAttack `json:"attacks"`
}

// ParseGroundTruth loads the attack generator output. An unreadable or
// unparsable file aborts the analysis.
func (c *Collector) ParseGroundTruth() error {

	data, err := os.ReadFile(c.groundTruthFile)
	if err != nil {
		return fmt.Errorf("reading ground truth: %w", err)
	}

	var gt groundTruthFile
	if err := json.Unmarshal(data, &gt); err != nil {
		return fmt.Errorf("parsing ground truth %s: %w", c.groundTruthFile, err)
	}

	if gt.Attacks == nil {
		return fmt.Errorf("ground truth %s has no attacks block", c.groundTruthFile)
	}

	c.groundTruth = make(map[string]AttackTruth, len(gt.Attacks))

	for name, a := range gt.Attacks {
		sent := a.PacketsSent
		if sent == 0 {
			sent = a.RequestsSent
		}

		targetRate := a.TargetRate
		if targetRate == 0 {
			targetRate = a.Rate
		}

		actualRate := a.ActualRate
		if actualRate == 0 {
			actualRate = a.Rate
		}

		c.groundTruth[name] = AttackTruth{
			AttackType:  a.AttackType,
			PacketsSent: sent,
			Duration:    a.Duration,
			TargetRate:  targetRate,
			ActualRate:  actualRate,
		}
	}

	sec := int64(gt.StartTime)
	nsec := int64((gt.StartTime - float64(sec)) * float64(time.Second))
	c.attackStartTime = time.Unix(sec, nsec)

	return nil
}

type eveEvent struct {
	EventType string `json:"event_type"`
	Timestamp string `json:"timestamp"`
	Alert     struct {
		SignatureID json.Number `json:"signature_id"`
		Signature   string      `json:"signature"`
		Severity    int         `json:"severity"`
	} `json:"alert"`
}

var eveTimestampLayouts = []string{
	"2006-01-02T15:04:05.999999-0700",
	"2006-01-02T15:04:05.999999Z07:00",
	time.RFC3339Nano,
}

func parseEveTimestamp(s string) (time.Time, error) {

	var lastErr error
	for _, layout := range eveTimestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}

// ParseDetections scans the eve.json event stream. Malformed lines and
// non-alert events are skipped; only alerts matching the study's rule
// SIDs are counted. Detection latency is alert timestamp minus the
// campaign start time.
func (c *Collector) ParseDetections() error {

	f, err := os.Open(c.eveFile)
	if err != nil {
		return fmt.Errorf("reading detection log: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {

		var event eveEvent
		if err := json.Unmarshal(scanner.Bytes(), &event); err != nil {
			continue
		}

		if event.EventType != "alert" {
			continue
		}

		attackType, ok := sidToAttack[event.Alert.SignatureID.String()]
		if !ok {
			continue
		}

		c.alertCounts[attackType]++

		if _, seen := c.firstDetections[attackType]; seen {
			continue
		}

		ts, err := parseEveTimestamp(event.Timestamp)
		if err != nil {
			continue
		}

		c.firstDetections[attackType] = Detection{
			Timestamp:    event.Timestamp,
			TimeToDetect: ts.Sub(c.attackStartTime).Seconds(),
			Signature:    event.Alert.Signature,
			Severity:     event.Alert.Severity,
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanning detection log %s: %w", c.eveFile, err)
	}

	return nil
}

// FirstDetections exposes the per-attack first alerts seen so far.
func (c *Collector) FirstDetections() map[string]Detection {
	return c.firstDetections
}

// AlertCounts exposes the per-attack alert tallies.
func (c *Collector) AlertCounts() map[string]int {
	return c.alertCounts
}

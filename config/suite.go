package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SuiteConfig carries the parameters of the standard attack suite. The
// zero-value defaults match the fixed research suite: HTTP flood, ICMP
// flood, port scan, then SYN flood, with a 2-second pause in between.
type SuiteConfig struct {
	HttpPort  int `yaml:"http_port"`
	HttpCount int `yaml:"http_count"`

	IcmpCount int `yaml:"icmp_count"`
	IcmpRate  int `yaml:"icmp_rate"`

	ScanStartPort int `yaml:"scan_start_port"`
	ScanEndPort   int `yaml:"scan_end_port"`
	ScanRate      int `yaml:"scan_rate"`

	SynPort  int `yaml:"syn_port"`
	SynCount int `yaml:"syn_count"`
	SynRate  int `yaml:"syn_rate"`

	PauseSeconds int `yaml:"pause_seconds"`
}

func DefaultSuite() SuiteConfig {
	return SuiteConfig{
		HttpPort:      8080,
		HttpCount:     500,
		IcmpCount:     10000,
		IcmpRate:      1000,
		ScanStartPort: 1,
		ScanEndPort:   1000,
		ScanRate:      1000,
		SynPort:       8080,
		SynCount:      100000,
		SynRate:       10000,
		PauseSeconds:  2,
	}
}

func (c SuiteConfig) Pause() time.Duration {
	return time.Duration(c.PauseSeconds) * time.Second
}

// LoadSuite reads a YAML suite file over the standard defaults; fields
// absent from the file keep their default values.
func LoadSuite(path string) (SuiteConfig, error) {

	c := DefaultSuite()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading suite config: %w", err)
	}

	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing suite config %s: %w", path, err)
	}

	return c, nil
}

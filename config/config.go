// Package config holds the option structs for each attack campaign.
package config

// AttackConfig is implemented by every campaign option struct and keys
// the runner factory.
type AttackConfig interface {
	AttackType() string
}

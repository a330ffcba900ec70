// Package generator holds the attack runners. Each runner drives one
// campaign: it builds packets, sends them through its payload sender,
// paces itself, and finalizes exactly one ground-truth record. Runners
// are strictly sequential and never adapt to network responses.
package generator

import (
	"errors"

	"github.com/nsrg-lab/attackgen/config"
	"github.com/nsrg-lab/attackgen/socketeer"
	"github.com/nsrg-lab/attackgen/stats"
)

// Runner executes one campaign. Run blocks until the requested number
// of iterations has been attempted, hands the finalized record to the
// record callback, and returns an error only for setup-time failures
// (socket creation), in which case no record is produced.
type Runner interface {
	Run() error
}

type RunnerInitParams struct {
	Options    config.AttackConfig
	Sender     socketeer.PayloadSender // Unused by the HTTP flood.
	LogFunc    func(string) bool
	ErrFunc    func(error) bool
	RecordFunc func(stats.AttackRecord) bool
}

var runners map[string]func(RunnerInitParams) Runner = make(map[string]func(RunnerInitParams) Runner)

func AddRunner(s string, f func(RunnerInitParams) Runner) error {
	if _, found := runners[s]; found {
		return errors.New("Runner type already exists: " + s)
	}

	runners[s] = f

	return nil
}

func New(p RunnerInitParams) (Runner, error) {

	rf, ok := runners[p.Options.AttackType()]

	if !ok {
		return nil, errors.New("Runners - attack type not found: " + p.Options.AttackType())
	}

	return rf(p), nil
}

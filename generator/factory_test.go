package generator_test

import (
	"testing"

	"github.com/nsrg-lab/attackgen/generator"
)

type TestAttackConfig struct {
	aType string
}

func (t *TestAttackConfig) AttackType() string {
	return t.aType
}

type TestRunner struct {
}

func (t *TestRunner) Run() error {
	return nil
}

func TestNew(t *testing.T) {

	o := &TestAttackConfig{
		aType: "__TEST__",
	}

	if _, err := generator.New(generator.RunnerInitParams{Options: o}); err == nil {
		t.Errorf("Runner factory did not return error for unknown type.")
	}

	if err := generator.AddRunner(o.aType, func(p generator.RunnerInitParams) generator.Runner { return &TestRunner{} }); err != nil {
		t.Errorf("Runner factory failed to add new type.")
	}

	if err := generator.AddRunner(o.aType, func(p generator.RunnerInitParams) generator.Runner { return &TestRunner{} }); err == nil {
		t.Errorf("Runner factory allowed duplicate type.")
	}

	if _, err := generator.New(generator.RunnerInitParams{Options: o}); err != nil {
		t.Errorf("Runner factory failed to return known type.")
	}
}

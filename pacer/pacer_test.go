package pacer_test

import (
	"testing"
	"time"

	"github.com/nsrg-lab/attackgen/pacer"
)

func TestDelay(t *testing.T) {

	if d := pacer.New(1000).Delay(); d != time.Millisecond {
		t.Errorf("Delay at 1000/s = %v, want 1ms", d)
	}

	if d := pacer.New(1).Delay(); d != time.Second {
		t.Errorf("Delay at 1/s = %v, want 1s", d)
	}
}

func TestUnboundedRate(t *testing.T) {

	if d := pacer.New(0).Delay(); d != 0 {
		t.Errorf("Delay at rate 0 = %v, want 0", d)
	}

	if d := pacer.New(-5).Delay(); d != 0 {
		t.Errorf("Delay at negative rate = %v, want 0", d)
	}

	// An unbounded Pace must not block noticeably.
	start := time.Now()
	p := pacer.New(0)
	for i := 0; i < 1000; i++ {
		p.Pace()
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("1000 unbounded paces took %v", elapsed)
	}
}

func TestPaceTiming(t *testing.T) {

	p := pacer.New(100) // 10ms per operation.

	start := time.Now()
	for i := 0; i < 5; i++ {
		p.Pace()
	}
	elapsed := time.Since(start)

	if elapsed < 45*time.Millisecond {
		t.Errorf("5 paces at 100/s took %v, want >= ~50ms", elapsed)
	}
}

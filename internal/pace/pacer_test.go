package pace

import (
	"testing"
	"time"
)

type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func TestPacer_SleepsRemainder(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	p := NewWithClock(100*time.Millisecond, clock.Now, clock.Sleep)

	clock.now = clock.now.Add(30 * time.Millisecond)
	if got := p.Wait(); got != 70*time.Millisecond {
		t.Errorf("Wait() = %v, want 70ms", got)
	}
	if clock.now != time.Unix(1000, 0).Add(100*time.Millisecond) {
		t.Errorf("clock = %v, want start+100ms", clock.now)
	}
}

func TestPacer_LateIterationDoesNotSleep(t *testing.T) {
	start := time.Unix(1000, 0)
	clock := &fakeClock{now: start}
	p := NewWithClock(100*time.Millisecond, clock.Now, clock.Sleep)

	clock.now = start.Add(150 * time.Millisecond)
	if got := p.Wait(); got != 0 {
		t.Errorf("late Wait() = %v, want 0", got)
	}
	if len(clock.slept) != 0 {
		t.Errorf("slept %v, want no sleep", clock.slept)
	}

	// the deadline keeps its cadence: next one is start+200ms
	clock.now = start.Add(160 * time.Millisecond)
	if got := p.Wait(); got != 40*time.Millisecond {
		t.Errorf("Wait() after late tick = %v, want 40ms", got)
	}
}

func TestPacer_HoldsRate(t *testing.T) {
	start := time.Unix(1000, 0)
	clock := &fakeClock{now: start}
	p := NewWithClock(40*time.Millisecond, clock.Now, clock.Sleep)

	for i := 0; i < 25; i++ {
		clock.now = clock.now.Add(5 * time.Millisecond)
		p.Wait()
	}
	if got := clock.now.Sub(start); got != time.Second {
		t.Errorf("25 ticks at 25fps took %v, want 1s", got)
	}
}

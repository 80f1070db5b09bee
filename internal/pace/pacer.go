package pace

import "time"

// Pacer holds a loop to a fixed rate by sleeping until an ideal deadline
// that advances by one interval per tick. Late iterations do not sleep, and
// the deadline keeps advancing regardless.
type Pacer struct {
	interval time.Duration
	ideal    time.Time
	now      func() time.Time
	sleep    func(time.Duration)
}

func New(interval time.Duration) *Pacer {
	return NewWithClock(interval, time.Now, time.Sleep)
}

func NewWithClock(interval time.Duration, now func() time.Time, sleep func(time.Duration)) *Pacer {
	return &Pacer{
		interval: interval,
		ideal:    now(),
		now:      now,
		sleep:    sleep,
	}
}

// Wait sleeps until the next deadline and returns how long it slept.
func (p *Pacer) Wait() time.Duration {
	p.ideal = p.ideal.Add(p.interval)
	d := p.ideal.Sub(p.now())
	if d <= 0 {
		return 0
	}
	p.sleep(d)
	return d
}

package engine

import "time"

// Clock supplies the current time for auto-advance delays.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Delay is a one-shot timer polled once per frame.
type Delay struct {
	after    time.Duration
	deadline time.Time
	armed    bool
}

func NewDelay(after time.Duration) Delay {
	return Delay{after: after}
}

// Start arms the delay relative to now, replacing any pending deadline.
func (d *Delay) Start(now time.Time) {
	d.deadline = now.Add(d.after)
	d.armed = true
}

// Stop disarms the delay.
func (d *Delay) Stop() {
	d.armed = false
}

func (d *Delay) Armed() bool {
	return d.armed
}

// Expired reports whether an armed delay has elapsed at now.
func (d *Delay) Expired(now time.Time) bool {
	return d.armed && now.After(d.deadline)
}

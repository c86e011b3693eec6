package game

import "time"

// scheduler drives ticks at the session speed. A stopped scheduler returns
// a nil channel, which blocks forever in a select.
type scheduler struct {
	ticker  *time.Ticker
	period  time.Duration
	running bool
}

func newScheduler() *scheduler {
	return &scheduler{}
}

// tickPeriod returns the interval between ticks at speed ticks per second.
func tickPeriod(speed int) time.Duration {
	if speed < 1 {
		speed = 1
	}
	return time.Second / time.Duration(speed)
}

// Start (re)starts ticking at the given speed.
func (s *scheduler) Start(speed int) {
	s.period = tickPeriod(speed)
	if s.ticker == nil {
		s.ticker = time.NewTicker(s.period)
	} else {
		s.ticker.Reset(s.period)
	}
	s.running = true
}

// Stop halts ticking until the next Start.
func (s *scheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
	s.running = false
}

// C returns the tick channel, or nil while stopped.
func (s *scheduler) C() <-chan time.Time {
	if !s.running {
		return nil
	}
	return s.ticker.C
}

// Period returns the current tick interval.
func (s *scheduler) Period() time.Duration {
	return s.period
}

// Running reports whether ticks are being delivered.
func (s *scheduler) Running() bool {
	return s.running
}

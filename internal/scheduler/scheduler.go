// Package scheduler runs a job once per calendar day at a fixed wall-clock
// time. Ticks missed while the process is down are skipped, not caught up.
package scheduler

import (
	"fmt"
	"log"
	"time"
)

type Scheduler struct {
	hour   int
	minute int
	run    func(time.Time) error
	stop   chan struct{}
}

// New builds a scheduler that invokes run with the current time at the given
// "HH:MM" local time each day.
func New(at string, run func(time.Time) error) (*Scheduler, error) {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule time %q: %w", at, err)
	}
	return &Scheduler{
		hour:   t.Hour(),
		minute: t.Minute(),
		run:    run,
		stop:   make(chan struct{}),
	}, nil
}

func (s *Scheduler) Start() {
	go s.loop()
}

func (s *Scheduler) Stop() {
	close(s.stop)
}

func (s *Scheduler) loop() {
	for {
		next := s.Next(time.Now())
		select {
		case <-time.After(time.Until(next)):
			s.fire(next)
		case <-s.stop:
			return
		}
	}
}

// fire runs one tick. Errors and panics are logged so a bad evaluation never
// kills the loop.
func (s *Scheduler) fire(now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("❌ Scheduled run panicked: %v", r)
		}
	}()

	if err := s.run(now); err != nil {
		log.Printf("❌ Scheduled run failed: %v", err)
	}
}

// Next returns the first occurrence of the configured time-of-day strictly
// after now.
func (s *Scheduler) Next(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, s.minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

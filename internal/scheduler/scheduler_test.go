package scheduler

import (
	"errors"
	"testing"
	"time"
)

func TestNewRejectsBadSchedule(t *testing.T) {
	for _, at := range []string{"", "9am", "25:00", "09:60"} {
		if _, err := New(at, func(time.Time) error { return nil }); err == nil {
			t.Errorf("expected error for schedule %q", at)
		}
	}
}

func TestNext(t *testing.T) {
	s, err := New("09:00", func(time.Time) error { return nil })
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"before today's tick",
			time.Date(2025, time.March, 15, 8, 30, 0, 0, time.UTC),
			time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			"exactly at the tick",
			time.Date(2025, time.March, 15, 9, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 16, 9, 0, 0, 0, time.UTC),
		},
		{
			"after today's tick",
			time.Date(2025, time.March, 15, 14, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 16, 9, 0, 0, 0, time.UTC),
		},
		{
			"month boundary",
			time.Date(2025, time.March, 31, 10, 0, 0, 0, time.UTC),
			time.Date(2025, time.April, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Next(tt.now); !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFireSurvivesErrorAndPanic(t *testing.T) {
	ran := 0

	s, err := New("09:00", func(time.Time) error {
		ran++
		switch ran {
		case 1:
			return errors.New("evaluation blew up")
		case 2:
			panic("evaluation panicked")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	now := time.Now()
	s.fire(now)
	s.fire(now)
	s.fire(now)

	if ran != 3 {
		t.Errorf("expected 3 runs, got %d", ran)
	}
}

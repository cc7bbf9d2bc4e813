package filter

import (
	"testing"
	"time"

	"github.com/jimezsa/scholarcli/internal/models"
)

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name     string
		deadline *string
		now      time.Time
		want     int
		ok       bool
	}{
		{"whole days", models.StringPtr("2024-10-15"), now, 5, true},
		{"partial day rounds up", models.StringPtr("2024-10-15"), now.Add(6 * time.Hour), 5, true},
		{"same instant", models.StringPtr("2024-10-10"), now, 0, true},
		{"past", models.StringPtr("2024-10-01"), now, -9, true},
		{"deadline passed five days ago", models.StringPtr("2024-10-15"), time.Date(2024, 10, 20, 0, 0, 0, 0, time.UTC), -5, true},
		{"past partial day rounds toward zero", models.StringPtr("2024-10-09"), now.Add(12 * time.Hour), -1, true},
		{"timestamp", models.StringPtr("2024-10-12T00:00:00Z"), now, 2, true},
		{"absent", nil, now, 0, false},
		{"unparseable", models.StringPtr("soon"), now, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DaysUntil(tc.deadline, tc.now)
			if ok != tc.ok {
				t.Fatalf("DaysUntil() ok = %v, want %v", ok, tc.ok)
			}
			if got != tc.want {
				t.Fatalf("DaysUntil() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDaysUntilIsMonotonic(t *testing.T) {
	deadline := models.StringPtr("2025-03-01")
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	prev, _ := DaysUntil(deadline, start)
	for step := 1; step < 24*90; step += 7 {
		now := start.Add(time.Duration(step) * time.Hour)
		got, _ := DaysUntil(deadline, now)
		if got > prev {
			t.Fatalf("days increased from %d to %d at %s", prev, got, now)
		}
		prev = got
	}
}

func TestUrgent(t *testing.T) {
	cases := map[int]bool{
		-3: false,
		0:  false,
		1:  true,
		30: true,
		31: false,
	}
	for days, want := range cases {
		if got := Urgent(days); got != want {
			t.Fatalf("Urgent(%d) = %v, want %v", days, got, want)
		}
	}
}

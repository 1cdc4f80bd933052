package format

import (
	"testing"
	"time"
)

func TestAmountGroupsThousands(t *testing.T) {
	cases := map[float64]string{
		0:          "0.00",
		50:         "50.00",
		1234.5:     "1,234.50",
		1000000.25: "1,000,000.25",
	}
	for in, want := range cases {
		if got := Amount(in); got != want {
			t.Errorf("Amount(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestCountGroupsThousands(t *testing.T) {
	if got := Count(12345); got != "12,345" {
		t.Errorf("Count(12345) = %q", got)
	}
}

func TestDueDate(t *testing.T) {
	if got := DueDate(nil); got != "no due date" {
		t.Errorf("DueDate(nil) = %q", got)
	}
	due := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	if got := DueDate(&due); got != "Feb 1, 2024" {
		t.Errorf("DueDate = %q", got)
	}
}

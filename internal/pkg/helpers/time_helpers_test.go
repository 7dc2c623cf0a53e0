package helpers

import (
	"testing"
	"time"
)

func TestISOFormat(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 3, 9, 8, 7, 6, 0, time.UTC), "2024-03-09T08:07:06"},
		{time.Date(2024, 3, 9, 8, 7, 6, 120000000, time.UTC), "2024-03-09T08:07:06.120000"},
		{time.Date(2024, 3, 9, 8, 7, 6, 999, time.UTC), "2024-03-09T08:07:06"},
		{time.Date(2024, 3, 9, 8, 7, 6, 1999, time.UTC), "2024-03-09T08:07:06.000001"},
		{time.Date(2024, 3, 9, 10, 7, 6, 0, time.FixedZone("CEST", 2*3600)), "2024-03-09T08:07:06"},
	}
	for _, c := range cases {
		if got := ISOFormat(c.in); got != c.want {
			t.Errorf("ISOFormat(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("90s", time.Minute); got != 90*time.Second {
		t.Errorf("got %v", got)
	}
	if got := ParseDuration("soon", time.Minute); got != time.Minute {
		t.Errorf("expected fallback, got %v", got)
	}
}

package portfolio

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-03-15", "2024-03-15", true},
		{"2024-03", "2024-03-01", true},
		{"Mar 2024", "2024-03-01", true},
		{"2024", "2024-01-01", true},
		{"", "", false},
		{"soon", "", false},
	}
	for _, tt := range tests {
		got, ok := parseDate(tt.in)
		if ok != tt.ok {
			t.Errorf("parseDate(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got.Format("2006-01-02") != tt.want {
			t.Errorf("parseDate(%q) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
		}
	}
}

func TestEndOrNow(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := endOrNow("2024-06", now); got.Year() != 2024 || got.Month() != 6 {
		t.Errorf("endOrNow parsed = %v", got)
	}
	if got := endOrNow("", now); !got.Equal(now) {
		t.Errorf("endOrNow empty = %v, want now", got)
	}
	if got := endOrNow("present", now); !got.Equal(now) {
		t.Errorf("endOrNow unparseable = %v, want now", got)
	}
}

func TestExperienceYears(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		entries []Experience
		want    int
	}{
		{"empty", nil, 0},
		{"single ongoing", []Experience{{StartDate: "2020-01"}}, 6},
		{"closed range", []Experience{{StartDate: "2017-01", EndDate: "2019-12"}}, 3},
		{"five months rounds down", []Experience{{StartDate: "2025-10"}}, 0},
		{"six months rounds up", []Experience{{StartDate: "2025-09"}}, 1},
		{"unparseable start skipped", []Experience{{StartDate: "unknown"}, {StartDate: "2024-03"}}, 2},
		{"end before start clamps to zero", []Experience{{StartDate: "2024-01", EndDate: "2023-01"}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := experienceYears(tt.entries, now); got != tt.want {
				t.Errorf("experienceYears() = %d, want %d", got, tt.want)
			}
		})
	}
}

package portfolio

import (
	"strings"
	"testing"
)

func TestApplyPhraseRewrites(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"responsible for", "Responsible for the payments stack", "spearheaded the payments stack"},
		{"worked on", "worked on checkout", "delivered checkout"},
		{"helped", "Helped migrate the monolith", "drove migrate the monolith"},
		{"participated in", "participated in the redesign", "co-led the redesign"},
		{"developer noun", "Senior developer at Acme", "Senior mission-critical developer at Acme"},
		{"developed verb", "Developed a billing service", "engineered a billing service"},
		{"improved", "improved latency", "dramatically improved latency"},
		{"managed", "Managed a team of four", "orchestrated a team of four"},
		{"no match passes through", "Shipped the mobile app", "Shipped the mobile app"},
		{"word boundary respected", "redeveloped the core", "redeveloped the core"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyPhraseRewrites(tt.in); got != tt.want {
				t.Errorf("ApplyPhraseRewrites(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRewriteSummary(t *testing.T) {
	if got := RewriteSummary(""); got != "" {
		t.Errorf("empty summary = %q, want empty", got)
	}

	got := RewriteSummary("I worked on search infrastructure.")
	if !strings.HasPrefix(got, "🚀 Building software that ships and scales.\n\n") {
		t.Errorf("summary missing prefix: %q", got)
	}
	if !strings.HasSuffix(got, "\n\nAlways open to hard problems and good coffee.") {
		t.Errorf("summary missing closing: %q", got)
	}
	if !strings.Contains(got, "I delivered search infrastructure.") {
		t.Errorf("summary body not rewritten: %q", got)
	}
}

func TestRewriteProjectDescription(t *testing.T) {
	if got := RewriteProjectDescription(""); got != "" {
		t.Errorf("empty description = %q, want empty", got)
	}

	got := RewriteProjectDescription("Developed a CLI for log search.")
	want := "🚀 engineered a CLI for log search. Built to production standards, end to end."
	if got != want {
		t.Errorf("RewriteProjectDescription() = %q, want %q", got, want)
	}
}

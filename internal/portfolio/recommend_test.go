package portfolio

import (
	"strings"
	"testing"
)

func sectionsOf(recs []ContentRecommendation) []string {
	out := make([]string, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.Section)
	}
	return out
}

func TestGenerateRecommendations_EmptyProfile(t *testing.T) {
	recs := GenerateRecommendations(&Profile{})
	want := []string{"hero", "experience", "projects", "skills", "testimonials"}
	got := sectionsOf(recs)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("sections = %v, want %v", got, want)
	}
	for _, r := range recs {
		if r.Priority != PriorityHigh && r.Priority != PriorityMedium {
			t.Errorf("section %q has priority %q", r.Section, r.Priority)
		}
		if r.Title == "" || r.Description == "" || r.Rationale == "" || r.Impact == "" {
			t.Errorf("section %q has empty template fields", r.Section)
		}
		if len(r.Examples) == 0 || len(r.Keywords) == 0 {
			t.Errorf("section %q missing examples or keywords", r.Section)
		}
	}
}

func TestGenerateRecommendations_ConditionalEntries(t *testing.T) {
	p := Profile{
		Projects:     []Project{{Title: "a"}, {Title: "b"}, {Title: "c"}},
		Testimonials: []string{"solid work"},
	}
	recs := GenerateRecommendations(&p)
	want := []string{"hero", "experience", "skills"}
	got := sectionsOf(recs)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("sections = %v, want %v", got, want)
	}
}

func TestIdentifyMissingElements_EmptyProfile(t *testing.T) {
	missing := IdentifyMissingElements(&Profile{})
	if len(missing) != 6 {
		t.Fatalf("got %d missing elements, want 6", len(missing))
	}
	// Experience is covered by its section score, not flagged here.
	for _, m := range missing {
		if strings.Contains(strings.ToLower(m), "experience") {
			t.Errorf("missing elements flagged experience: %q", m)
		}
	}
}

func TestIdentifyMissingElements_CompleteProfile(t *testing.T) {
	missing := IdentifyMissingElements(richProfile())
	if len(missing) != 0 {
		t.Errorf("complete profile still missing %v", missing)
	}
}

func TestIdentifyMissingElements_ProjectThreshold(t *testing.T) {
	p := Profile{Projects: []Project{{Title: "a"}, {Title: "b"}}}
	missing := IdentifyMissingElements(&p)
	found := false
	for _, m := range missing {
		if strings.Contains(m, "projects") {
			found = true
		}
	}
	if !found {
		t.Error("two projects should still trigger the projects advisory")
	}
}

package portfolio

import (
	"slices"
	"strings"
	"testing"
)

func richProfile() *Profile {
	return &Profile{
		Name: "Max", Title: "Senior Lead Engineer", Location: "Remote",
		Summary: strings.Repeat("y", 200) + " years",
		Skills: []Skill{
			{Name: "Go", Level: 95, Category: "backend"},
			{Name: "React", Level: 90, Category: "frontend"},
			{Name: "Kubernetes", Level: 88, Category: "infrastructure"},
			{Name: "Postgres", Level: 85, Category: "backend"},
			{Name: "TypeScript", Level: 85, Category: "frontend"},
			{Name: "Docker", Level: 80, Category: "infrastructure"},
			{Name: "Redis", Level: 80, Category: "backend"},
			{Name: "Terraform", Level: 75, Category: "infrastructure"},
			{Name: "GraphQL", Level: 75, Category: "backend"},
			{Name: "Next.js", Level: 70, Category: "frontend"},
		},
		Experience: []Experience{
			{Title: "Senior Lead", Company: "A", StartDate: "2020-01", Achievements: []string{"1", "2", "3"}, Description: strings.Repeat("d", 200)},
			{Title: "Senior Engineer", Company: "B", StartDate: "2016-01", EndDate: "2019-12", Achievements: []string{"4", "5"}},
			{Title: "Engineer", Company: "C", StartDate: "2013-01", EndDate: "2015-12"},
		},
		Projects: []Project{
			{Title: "P1", Description: strings.Repeat("p", 150), Technologies: []string{"a", "b", "c"}, DemoURL: "d", GithubURL: "g"},
			{Title: "P2"}, {Title: "P3"}, {Title: "P4"}, {Title: "P5"},
		},
		Certifications: []Certification{{Name: "1"}, {Name: "2"}, {Name: "3"}},
		Testimonials:   []string{strings.Repeat("t", 150), "good", "great"},
		BlogPosts:      []string{"b"},
		OpenSource:     []string{"o"},
		SpeakingEvents: []string{"s"},
	}
}

func TestGenerateHRAnalysis_RichProfile(t *testing.T) {
	hr := GenerateHRAnalysis(richProfile(), fixedNow)

	wantStrengths := []string{
		"Deep technical expertise in core skills",
		"Proven track record across multiple roles",
		"Leadership signals: senior titles or quantified achievements",
		"Full-stack versatility across frontend and backend stacks",
		"Early adoption of modern, in-demand technology",
	}
	if !slices.Equal(hr.Strengths, wantStrengths) {
		t.Errorf("Strengths = %v, want %v", hr.Strengths, wantStrengths)
	}
	if !strings.Contains(hr.MarketPosition, "$150k–$220k+") {
		t.Errorf("MarketPosition = %q, want senior salary band", hr.MarketPosition)
	}
	if len(hr.CompetitiveAdvantage) != 4 {
		t.Errorf("CompetitiveAdvantage has %d entries, want 4", len(hr.CompetitiveAdvantage))
	}
	if len(hr.ImprovementAreas) != 0 {
		t.Errorf("ImprovementAreas = %v, want none", hr.ImprovementAreas)
	}
}

func TestGenerateHRAnalysis_EmptyProfile(t *testing.T) {
	hr := GenerateHRAnalysis(&Profile{}, fixedNow)

	if len(hr.Strengths) != 0 {
		t.Errorf("Strengths = %v, want none", hr.Strengths)
	}
	if !strings.Contains(hr.MarketPosition, "$65k–$100k") {
		t.Errorf("MarketPosition = %q, want growing salary band", hr.MarketPosition)
	}
	if len(hr.ImprovementAreas) != 4 {
		t.Errorf("ImprovementAreas has %d entries, want all 4", len(hr.ImprovementAreas))
	}
}

// The opportunities list is a fixed market framing, identical for every
// profile.
func TestGenerateHRAnalysis_OpportunitiesFixed(t *testing.T) {
	empty := GenerateHRAnalysis(&Profile{}, fixedNow)
	rich := GenerateHRAnalysis(richProfile(), fixedNow)
	if !slices.Equal(empty.Opportunities, rich.Opportunities) {
		t.Error("Opportunities differ between profiles")
	}
	if len(empty.Opportunities) != 5 {
		t.Errorf("Opportunities has %d entries, want 5", len(empty.Opportunities))
	}
}

func TestPositionTier(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		want    marketTier
	}{
		{"empty goes growing", Profile{}, tierGrowing},
		{"long tenure low levels goes growing", Profile{
			Skills:     []Skill{{Name: "Go", Level: 50}},
			Experience: []Experience{{StartDate: "2015-01"}},
		}, tierGrowing},
		{"mid tenure solid levels goes mid", Profile{
			Skills:     []Skill{{Name: "Go", Level: 72}},
			Experience: []Experience{{StartDate: "2022-06", EndDate: "2026-01"}},
		}, tierMid},
		{"long tenure high levels goes senior", Profile{
			Skills:     []Skill{{Name: "Go", Level: 85}},
			Experience: []Experience{{StartDate: "2019-01"}},
		}, tierSenior},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := positionTier(&tt.profile, fixedNow); got != tt.want {
				t.Errorf("positionTier() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGenerateHiringRecommendation_Verdicts(t *testing.T) {
	midProfile := &Profile{
		Name: "M", Title: "Dev", Location: "X",
		Summary: strings.Repeat("y", 60) + " years",
		Skills:  []Skill{{Name: "React", Level: 90}},
		Experience: []Experience{
			{Title: "Senior Engineer", Company: "A", StartDate: "2020-01", Achievements: []string{"a"}, Description: strings.Repeat("d", 120)},
			{Title: "Engineer", Company: "B", StartDate: "2018-01", EndDate: "2019-12", Achievements: []string{"b"}},
			{Title: "Engineer", Company: "C", StartDate: "2016-01", EndDate: "2017-12", Achievements: []string{"c"}},
		},
	}
	lowProfile := &Profile{
		Name: "A", Title: "Dev", Location: "X",
		Summary: strings.Repeat("x", 60),
		Skills:  []Skill{{Name: "React", Level: 90}},
	}

	tests := []struct {
		name           string
		profile        *Profile
		wantVerdict    string
		wantConfidence int
	}{
		{"strong profile gets hire", richProfile(), VerdictHire, 90},
		{"decent profile gets interview", midProfile, VerdictInterview, 75},
		{"thin profile gets low-confidence interview", lowProfile, VerdictInterview, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := GenerateHiringRecommendation(tt.profile, fixedNow)
			if rec.Recommendation != tt.wantVerdict {
				t.Errorf("Recommendation = %q, want %q", rec.Recommendation, tt.wantVerdict)
			}
			if rec.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %d, want %d", rec.Confidence, tt.wantConfidence)
			}
			// Reject never comes out of the current logic.
			if rec.Recommendation == VerdictReject {
				t.Error("got reject verdict, which the logic never produces")
			}
		})
	}
}

func TestGenerateHiringRecommendation_SalaryRangeIsBandOnly(t *testing.T) {
	rec := GenerateHiringRecommendation(richProfile(), fixedNow)
	if rec.SalaryRange != tierSenior.salary {
		t.Errorf("SalaryRange = %q, want %q", rec.SalaryRange, tierSenior.salary)
	}
}

func TestMatchRoles(t *testing.T) {
	tests := []struct {
		name   string
		skills []Skill
		want   []string
	}{
		{"no skills", nil, []string{"Software Engineer"}},
		{"frontend only", []Skill{{Name: "React"}, {Name: "CSS"}}, []string{"Frontend Engineer"}},
		{"backend only", []Skill{{Name: "Go"}, {Name: "Postgres"}}, []string{"Backend Engineer"}},
		{"both stacks", []Skill{{Name: "React"}, {Name: "CSS"}, {Name: "Go"}, {Name: "Postgres"}},
			[]string{"Full-Stack Engineer", "Frontend Engineer", "Backend Engineer"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchRoles(tt.skills); !slices.Equal(got, tt.want) {
				t.Errorf("matchRoles() = %v, want %v", got, tt.want)
			}
		})
	}
}

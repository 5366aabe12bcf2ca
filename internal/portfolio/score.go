package portfolio

import (
	"math"
	"strings"
	"time"
)

// sectionWeights are the fixed aggregate weights. They sum to 1.0; a
// section missing from this map contributes nothing to the overall score.
var sectionWeights = map[string]float64{
	"hero":         0.15,
	"experience":   0.25,
	"projects":     0.25,
	"skills":       0.15,
	"achievements": 0.10,
	"testimonials": 0.10,
}

// capScore clamps a raw point sum to the 0–100 section range.
func capScore(n int) int {
	if n > 100 {
		return 100
	}
	if n < 0 {
		return 0
	}
	return n
}

// EvaluateHeroSection scores the hero/about section: fixed points for
// presence of name (20), title (25), a summary longer than 50 chars (30),
// location (15), and a summary that mentions "years" (10).
func EvaluateHeroSection(p *Profile) int {
	score := 0
	if p.Name != "" {
		score += 20
	}
	if p.Title != "" {
		score += 25
	}
	if len(p.Summary) > 50 {
		score += 30
	}
	if p.Location != "" {
		score += 15
	}
	if strings.Contains(p.Summary, "years") {
		score += 10
	}
	return capScore(score)
}

// EvaluateExperienceSection scores work history. Zero when empty;
// otherwise an entry-count bonus plus fixed points for quantified
// achievements, substantial descriptions, seniority signals in titles,
// and at least one position ending within two years of now.
func EvaluateExperienceSection(p *Profile, now time.Time) int {
	if len(p.Experience) == 0 {
		return 0
	}

	score := 0
	switch {
	case len(p.Experience) >= 3:
		score += 25
	case len(p.Experience) >= 2:
		score += 15
	default:
		score += 5
	}

	hasAchievements := false
	hasLongDescription := false
	hasSeniorTitle := false
	hasRecent := false
	cutoff := now.AddDate(-2, 0, 0)
	for _, e := range p.Experience {
		if len(e.Achievements) > 0 {
			hasAchievements = true
		}
		if len(e.Description) > 100 {
			hasLongDescription = true
		}
		title := strings.ToLower(e.Title)
		if strings.Contains(title, "senior") || strings.Contains(title, "lead") {
			hasSeniorTitle = true
		}
		if !endOrNow(e.EndDate, now).Before(cutoff) {
			hasRecent = true
		}
	}

	if hasAchievements {
		score += 30
	}
	if hasLongDescription {
		score += 20
	}
	if hasSeniorTitle {
		score += 15
	}
	if hasRecent {
		score += 10
	}
	return capScore(score)
}

// EvaluateProjectsSection scores the project portfolio. Zero when empty.
func EvaluateProjectsSection(p *Profile) int {
	if len(p.Projects) == 0 {
		return 0
	}

	score := 0
	switch {
	case len(p.Projects) >= 5:
		score += 30
	case len(p.Projects) >= 3:
		score += 20
	case len(p.Projects) >= 2:
		score += 10
	default:
		score += 5
	}

	hasDemo := false
	hasGithub := false
	hasRichStack := false
	hasLongDescription := false
	for _, pr := range p.Projects {
		if pr.DemoURL != "" {
			hasDemo = true
		}
		if pr.GithubURL != "" {
			hasGithub = true
		}
		if len(pr.Technologies) >= 3 {
			hasRichStack = true
		}
		if len(pr.Description) > 100 {
			hasLongDescription = true
		}
	}

	if hasDemo {
		score += 25
	}
	if hasGithub {
		score += 20
	}
	if hasRichStack {
		score += 15
	}
	if hasLongDescription {
		score += 10
	}
	return capScore(score)
}

// EvaluateSkillsSection scores the skill list: count bonus, depth
// bonuses for expert (>=85) and solid (>=70) levels, an average-level
// bonus, and a breadth bonus for distinct categories. An empty category
// string still counts as one distinct category.
func EvaluateSkillsSection(p *Profile) int {
	if len(p.Skills) == 0 {
		return 0
	}

	score := 0
	switch {
	case len(p.Skills) >= 10:
		score += 20
	case len(p.Skills) >= 7:
		score += 15
	case len(p.Skills) >= 5:
		score += 10
	default:
		score += 5
	}

	hasExpert := false
	hasSolid := false
	sum := 0
	categories := make(map[string]bool)
	for _, s := range p.Skills {
		if s.Level >= 85 {
			hasExpert = true
		}
		if s.Level >= 70 {
			hasSolid = true
		}
		sum += s.Level
		categories[s.Category] = true
	}
	if hasExpert {
		score += 25
	}
	if hasSolid {
		score += 20
	}

	avg := float64(sum) / float64(len(p.Skills))
	switch {
	case avg >= 75:
		score += 15
	case avg >= 60:
		score += 10
	default:
		score += 5
	}

	switch {
	case len(categories) >= 3:
		score += 15
	case len(categories) >= 2:
		score += 10
	default:
		score += 5
	}
	return capScore(score)
}

// EvaluateAchievementsSection scores quantified wins: achievements
// summed across all experience entries, certifications, and 15 points
// each for nonempty speaking, open-source, and blog activity.
func EvaluateAchievementsSection(p *Profile) int {
	score := 0

	total := 0
	for _, e := range p.Experience {
		total += len(e.Achievements)
	}
	switch {
	case total >= 5:
		score += 30
	case total >= 3:
		score += 20
	case total >= 1:
		score += 10
	}

	switch {
	case len(p.Certifications) >= 3:
		score += 25
	case len(p.Certifications) >= 2:
		score += 15
	case len(p.Certifications) >= 1:
		score += 10
	}

	if len(p.SpeakingEvents) > 0 {
		score += 15
	}
	if len(p.OpenSource) > 0 {
		score += 15
	}
	if len(p.BlogPosts) > 0 {
		score += 15
	}
	return capScore(score)
}

// EvaluateTestimonialsSection scores social proof. Zero when empty; a
// count bonus plus 40 points if any testimonial is substantial (>100 chars).
func EvaluateTestimonialsSection(p *Profile) int {
	if len(p.Testimonials) == 0 {
		return 0
	}

	score := 0
	switch {
	case len(p.Testimonials) >= 3:
		score += 60
	case len(p.Testimonials) >= 2:
		score += 40
	default:
		score += 20
	}

	for _, t := range p.Testimonials {
		if len(t) > 100 {
			score += 40
			break
		}
	}
	return capScore(score)
}

// OverallScore combines section scores with the fixed weights, rounded
// to the nearest integer.
func OverallScore(s SectionScores) int {
	total := float64(s.Hero)*sectionWeights["hero"] +
		float64(s.Experience)*sectionWeights["experience"] +
		float64(s.Projects)*sectionWeights["projects"] +
		float64(s.Skills)*sectionWeights["skills"] +
		float64(s.Achievements)*sectionWeights["achievements"] +
		float64(s.Testimonials)*sectionWeights["testimonials"]
	return int(math.Round(total))
}

// AnalyzeProfile runs the six section scorers, the recommendation
// generator, the missing-elements detector and the HR analysis over a
// profile and bundles them into one audit. Pure: the profile is never
// mutated, and `now` is the only clock input.
func AnalyzeProfile(p *Profile, now time.Time) *PortfolioAudit {
	sections := SectionScores{
		Hero:         EvaluateHeroSection(p),
		Experience:   EvaluateExperienceSection(p, now),
		Projects:     EvaluateProjectsSection(p),
		Skills:       EvaluateSkillsSection(p),
		Achievements: EvaluateAchievementsSection(p),
		Testimonials: EvaluateTestimonialsSection(p),
	}
	return &PortfolioAudit{
		OverallScore:    OverallScore(sections),
		Sections:        sections,
		Recommendations: GenerateRecommendations(p),
		MissingElements: IdentifyMissingElements(p),
		HRPerspective:   GenerateHRAnalysis(p, now),
	}
}

package portfolio

import (
	"strings"
	"time"
)

// Fixed keyword lists used for the stack-versatility predicates. Matching
// is case-insensitive substring over skill names.
var (
	frontendKeywords   = []string{"react", "vue", "angular", "svelte", "next", "css", "html", "tailwind", "typescript"}
	backendKeywords    = []string{"go", "golang", "node", "python", "java", "ruby", "php", "postgres", "mysql", "graphql", "rest"}
	modernTechKeywords = []string{"typescript", "react", "next", "kubernetes", "docker", "terraform", "graphql", "rust", "aws", "grpc"}
)

// marketTier is one of the three fixed market-position buckets. Both the
// narrative and the salary band are design constants, not computed text.
type marketTier struct {
	narrative string
	salary    string
}

var (
	tierSenior  = marketTier{"Senior-level candidate: strong depth and a track record that commands top-of-market offers", "$150k–$220k+"}
	tierMid     = marketTier{"Mid-level candidate: production experience with room to grow into ownership roles", "$100k–$150k"}
	tierGrowing = marketTier{"Growing candidate: early-career profile best positioned for high-learning environments", "$65k–$100k"}
)

// identifyOpportunities is a fixed list of market-positioning statements.
// Intentionally profile-independent — the canned framing is the product
// behavior, not a placeholder.
var identifyOpportunities = []string{
	"Demand for product-minded engineers keeps growing across remote-first companies",
	"Teams increasingly hire on public proof of work: portfolios, open source, writing",
	"Cross-functional skills (frontend + backend + infra) carry a measurable salary premium",
	"Certifications in cloud platforms remain a fast signal boost for recruiters",
	"Technical writing and speaking multiply inbound opportunities",
}

// skillMatchesAny reports whether a skill name contains any of the keywords.
func skillMatchesAny(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// countSkillMatches counts skills whose name matches the keyword list.
func countSkillMatches(skills []Skill, keywords []string) int {
	n := 0
	for _, s := range skills {
		if skillMatchesAny(s.Name, keywords) {
			n++
		}
	}
	return n
}

// averageSkillLevel returns the mean level across skills, or 0 when empty.
func averageSkillLevel(skills []Skill) float64 {
	if len(skills) == 0 {
		return 0
	}
	sum := 0
	for _, s := range skills {
		sum += s.Level
	}
	return float64(sum) / float64(len(skills))
}

// hasSeniorSignal reports a "senior"/"lead" title or any recorded
// achievement anywhere in the work history.
func hasSeniorSignal(entries []Experience) bool {
	for _, e := range entries {
		title := strings.ToLower(e.Title)
		if strings.Contains(title, "senior") || strings.Contains(title, "lead") {
			return true
		}
		if len(e.Achievements) > 0 {
			return true
		}
	}
	return false
}

// totalAchievements counts achievements across all experience entries.
func totalAchievements(entries []Experience) int {
	n := 0
	for _, e := range entries {
		n += len(e.Achievements)
	}
	return n
}

// GenerateHRAnalysis derives the qualitative read of a profile: predicate
// driven strengths/advantages/improvement areas, a fixed opportunity list,
// and a three-tier market position from total experience years and average
// skill level.
func GenerateHRAnalysis(p *Profile, now time.Time) HRAnalysis {
	var strengths []string
	for _, s := range p.Skills {
		if s.Level > 85 {
			strengths = append(strengths, "Deep technical expertise in core skills")
			break
		}
	}
	if len(p.Experience) >= 3 {
		strengths = append(strengths, "Proven track record across multiple roles")
	}
	if hasSeniorSignal(p.Experience) {
		strengths = append(strengths, "Leadership signals: senior titles or quantified achievements")
	}
	if countSkillMatches(p.Skills, frontendKeywords) >= 2 && countSkillMatches(p.Skills, backendKeywords) >= 2 {
		strengths = append(strengths, "Full-stack versatility across frontend and backend stacks")
	}
	if countSkillMatches(p.Skills, modernTechKeywords) >= 3 {
		strengths = append(strengths, "Early adoption of modern, in-demand technology")
	}

	tier := positionTier(p, now)
	position := tier.narrative + ". Typical range " + tier.salary + "."

	var advantages []string
	if len(p.Projects) >= 3 {
		advantages = append(advantages, "Public portfolio of shipped projects")
	}
	if len(p.Certifications) >= 2 {
		advantages = append(advantages, "Verified credentials recruiters can check in seconds")
	}
	if len(p.OpenSource) > 0 {
		advantages = append(advantages, "Open-source contributions demonstrate collaboration in public")
	}
	if len(p.Testimonials) > 0 {
		advantages = append(advantages, "Third-party endorsements back up the claims")
	}

	var improvements []string
	if len(p.Projects) < 3 {
		improvements = append(improvements, "Build out a portfolio of at least 3 substantial projects")
	}
	if totalAchievements(p.Experience) == 0 {
		improvements = append(improvements, "Quantify results: add metrics-backed achievements to each role")
	}
	if len(p.Certifications) < 2 {
		improvements = append(improvements, "Add recognized certifications to strengthen credibility")
	}
	if len(p.Testimonials) == 0 {
		improvements = append(improvements, "Collect testimonials from colleagues and clients")
	}

	return HRAnalysis{
		Strengths:            strengths,
		Opportunities:        identifyOpportunities,
		MarketPosition:       position,
		CompetitiveAdvantage: advantages,
		ImprovementAreas:     improvements,
	}
}

// positionTier buckets a candidate by total experience years and average
// skill level.
func positionTier(p *Profile, now time.Time) marketTier {
	years := experienceYears(p.Experience, now)
	avg := averageSkillLevel(p.Skills)
	switch {
	case years >= 5 && avg >= 80:
		return tierSenior
	case years >= 3 && avg >= 70:
		return tierMid
	default:
		return tierGrowing
	}
}

// GenerateHiringRecommendation turns an audit into a verdict. Score >= 80
// means hire (confidence 90); anything lower means interview, with
// confidence 75 at >= 60 and 50 below that. The reject verdict exists in
// the vocabulary but is never produced by current logic.
func GenerateHiringRecommendation(p *Profile, now time.Time) *HiringRecommendation {
	audit := AnalyzeProfile(p, now)
	hr := audit.HRPerspective

	rec := &HiringRecommendation{
		Reasoning:      hr.Strengths,
		InterviewFocus: hr.ImprovementAreas,
		SalaryRange:    positionTier(p, now).salary,
		RoleMatch:      matchRoles(p.Skills),
	}
	switch {
	case audit.OverallScore >= 80:
		rec.Recommendation = VerdictHire
		rec.Confidence = 90
	case audit.OverallScore >= 60:
		rec.Recommendation = VerdictInterview
		rec.Confidence = 75
	default:
		rec.Recommendation = VerdictInterview
		rec.Confidence = 50
	}
	return rec
}

// matchRoles suggests role titles from the skill mix.
func matchRoles(skills []Skill) []string {
	front := countSkillMatches(skills, frontendKeywords)
	back := countSkillMatches(skills, backendKeywords)

	var roles []string
	if front >= 2 && back >= 2 {
		roles = append(roles, "Full-Stack Engineer")
	}
	if front >= 2 {
		roles = append(roles, "Frontend Engineer")
	}
	if back >= 2 {
		roles = append(roles, "Backend Engineer")
	}
	if len(roles) == 0 {
		roles = append(roles, "Software Engineer")
	}
	return roles
}

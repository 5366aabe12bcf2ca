package portfolio

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/anatolykoptev/go_portfolio/internal/engine"
)

// LinkedInProfile is the external profile shape accepted by the
// transformer, matching what profile exports and scraper payloads carry.
type LinkedInProfile struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`

	Experience     []LinkedInPosition      `json:"experience,omitempty"`
	Skills         []LinkedInSkill         `json:"skills,omitempty"`
	Projects       []LinkedInProject       `json:"projects,omitempty"`
	Education      []LinkedInEducation     `json:"education,omitempty"`
	Certifications []LinkedInCertification `json:"certifications,omitempty"`
}

// LinkedInPosition is one employment entry in the external shape.
type LinkedInPosition struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// LinkedInSkill carries either an explicit level or an endorsement count
// the transformer converts to a level estimate.
type LinkedInSkill struct {
	Name         string `json:"name"`
	Level        int    `json:"level,omitempty"`
	Endorsements int    `json:"endorsements,omitempty"`
}

// LinkedInProject is one project entry in the external shape.
type LinkedInProject struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	URL          string   `json:"url,omitempty"`
	GithubURL    string   `json:"github_url,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
}

// LinkedInEducation is one education entry; FieldOfStudy maps to the
// internal "field" column.
type LinkedInEducation struct {
	School       string `json:"school"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
}

// LinkedInCertification is one certification entry in the external shape.
type LinkedInCertification struct {
	Name      string `json:"name"`
	Authority string `json:"authority,omitempty"`
	Date      string `json:"date,omitempty"`
	URL       string `json:"url,omitempty"`
}

// PortfolioContentMap is the transformer output: six sub-collections
// shaped to match the content store schema.
type PortfolioContentMap struct {
	Hero           HeroContent            `json:"hero"`
	Experience     []ExperienceContent    `json:"experience"`
	Skills         []SkillContent         `json:"skills"`
	Projects       []ProjectContent       `json:"projects"`
	Education      []EducationContent     `json:"education"`
	Certifications []CertificationContent `json:"certifications"`
}

// HeroContent is the singleton personal_info record.
type HeroContent struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Tagline  string `json:"tagline"`
	Summary  string `json:"summary"`
	Location string `json:"location"`
}

// ExperienceContent is one experiences record; keyed by company+title.
type ExperienceContent struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Featured     bool     `json:"featured"`
	DisplayOrder int      `json:"display_order"`
}

// SkillContent is one skills record; keyed by name.
type SkillContent struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"`
	IconURL  string `json:"icon_url"`
}

// Project statuses in the content store.
const (
	StatusCompleted  = "completed"
	StatusInProgress = "in_progress"
)

// ProjectContent is one projects record; keyed by slug.
type ProjectContent struct {
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	DemoURL      string   `json:"demo_url,omitempty"`
	GithubURL    string   `json:"github_url,omitempty"`
	Status       string   `json:"status"`
	Featured     bool     `json:"featured"`
}

// EducationContent is one education record; keyed by school+degree.
type EducationContent struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// CertificationContent is one certifications record; keyed by name.
type CertificationContent struct {
	Name          string `json:"name"`
	Issuer        string `json:"issuer"`
	Date          string `json:"date,omitempty"`
	CredentialURL string `json:"credential_url,omitempty"`
}

// techKeywords is the fixed list used to pick tagline technologies and
// derive skill categories. Matching is case-insensitive substring.
var techKeywords = []string{
	"javascript", "typescript", "react", "next", "vue", "angular", "svelte",
	"node", "go", "golang", "python", "java", "ruby", "rust", "php", "c#",
	"postgres", "mysql", "redis", "mongodb", "graphql", "grpc",
	"docker", "kubernetes", "terraform", "aws", "gcp", "azure",
}

// achievementRe matches the numeric patterns mined from descriptions:
// percentages (40%), currency ($2M, $150k), and multipliers (3x).
var achievementRe = regexp.MustCompile(`\$\d[\d,.]*\s*(?:[kKmMbB])?|\d[\d,.]*\s*%|\b\d+(?:\.\d+)?x\b`)

// htmlTagRe is a cheap markup sniff: real tags only, not stray '<'.
var htmlTagRe = regexp.MustCompile(`<[a-zA-Z/][^>]*>`)

// defaultImportRunes caps imported summaries and descriptions when no
// limit is configured.
const defaultImportRunes = 4000

// sanitizeImportText converts HTML-bearing import text to plain markdown
// before any rewriting and caps its length. Plain text passes through
// untouched apart from the cap; a failed conversion falls back to a tag
// strip rather than dropping content.
func sanitizeImportText(s string) string {
	if htmlTagRe.MatchString(s) {
		if md, err := htmltomarkdown.ConvertString(s); err == nil {
			s = strings.TrimSpace(md)
		} else {
			s = engine.CleanHTML(s)
		}
	}
	limit := engine.Cfg.MaxImportRunes
	if limit <= 0 {
		limit = defaultImportRunes
	}
	return engine.TruncateRunes(s, limit, "…")
}

// TransformToPortfolio maps an external LinkedIn-shaped profile into the
// six content-store collections. Deterministic: identical input and the
// same `now` always produce byte-identical output.
func TransformToPortfolio(p *LinkedInProfile, now time.Time) *PortfolioContentMap {
	return &PortfolioContentMap{
		Hero:           transformHero(p, now),
		Experience:     transformExperience(p.Experience),
		Skills:         transformSkills(p.Skills),
		Projects:       transformProjects(p.Projects),
		Education:      transformEducation(p.Education),
		Certifications: transformCertifications(p.Certifications),
	}
}

func transformHero(p *LinkedInProfile, now time.Time) HeroContent {
	years := linkedInExperienceYears(p.Experience, now)
	top := topTechnologies(p, 3)
	techPart := "Software"
	if len(top) > 0 {
		techPart = strings.Join(top, " & ")
	}
	return HeroContent{
		Name:     p.Name,
		Title:    p.Headline,
		Tagline:  fmt.Sprintf("%s | %d+ Years Building %s Solutions", p.Headline, years, techPart),
		Summary:  RewriteSummary(sanitizeImportText(p.Summary)),
		Location: p.Location,
	}
}

// linkedInExperienceYears mirrors experienceYears over the external shape.
func linkedInExperienceYears(entries []LinkedInPosition, now time.Time) int {
	totalMonths := 0
	for _, e := range entries {
		start, ok := parseDate(e.StartDate)
		if !ok {
			continue
		}
		totalMonths += monthsBetween(start, endOrNow(e.EndDate, now))
	}
	return (totalMonths + 6) / 12
}

// topTechnologies ranks the profile's skill names that match the fixed
// tech-keyword list by how often they appear across experience titles
// and descriptions, descending. Ties keep profile order, so the result
// is stable for identical input.
func topTechnologies(p *LinkedInProfile, n int) []string {
	var haystack strings.Builder
	for _, e := range p.Experience {
		haystack.WriteString(strings.ToLower(e.Title))
		haystack.WriteByte(' ')
		haystack.WriteString(strings.ToLower(e.Description))
		haystack.WriteByte(' ')
	}
	text := haystack.String()

	type ranked struct {
		name  string
		count int
		idx   int
	}
	var candidates []ranked
	for i, s := range p.Skills {
		if !skillMatchesAny(s.Name, techKeywords) {
			continue
		}
		candidates = append(candidates, ranked{
			name:  s.Name,
			count: strings.Count(text, strings.ToLower(s.Name)),
			idx:   i,
		})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].count != candidates[j].count {
			return candidates[i].count > candidates[j].count
		}
		return candidates[i].idx < candidates[j].idx
	})

	var top []string
	for _, c := range candidates {
		if len(top) == n {
			break
		}
		top = append(top, c.name)
	}
	return top
}

func transformExperience(entries []LinkedInPosition) []ExperienceContent {
	out := make([]ExperienceContent, 0, len(entries))
	for i, e := range entries {
		desc := ApplyPhraseRewrites(sanitizeImportText(e.Description))
		out = append(out, ExperienceContent{
			Title:        e.Title,
			Company:      e.Company,
			StartDate:    e.StartDate,
			EndDate:      e.EndDate,
			Description:  desc,
			Achievements: ExtractAchievements(desc),
			Featured:     i < 3,
			DisplayOrder: i,
		})
	}
	return out
}

// ExtractAchievements mines numeric, percentage, and currency figures
// from a description and wraps each in the canned achievement template.
func ExtractAchievements(description string) []string {
	matches := achievementRe.FindAllString(description, -1)
	achievements := make([]string, 0, len(matches))
	for _, m := range matches {
		achievements = append(achievements, fmt.Sprintf("Achieved %s improvement in key business metrics", strings.TrimSpace(m)))
	}
	return achievements
}

// EstimateSkillLevel converts an endorsement count to a proficiency
// level via fixed breakpoints.
func EstimateSkillLevel(endorsements int) int {
	switch {
	case endorsements >= 50:
		return 90
	case endorsements >= 20:
		return 80
	case endorsements >= 10:
		return 70
	case endorsements >= 5:
		return 60
	default:
		return 50
	}
}

// categorizeSkill buckets a skill name into the store's category
// vocabulary using the fixed keyword lists.
func categorizeSkill(name string) string {
	switch {
	case skillMatchesAny(name, frontendKeywords):
		return "frontend"
	case skillMatchesAny(name, backendKeywords):
		return "backend"
	case skillMatchesAny(name, []string{"docker", "kubernetes", "terraform", "aws", "gcp", "azure", "ci", "linux"}):
		return "infrastructure"
	default:
		return "other"
	}
}

func transformSkills(skills []LinkedInSkill) []SkillContent {
	out := make([]SkillContent, 0, len(skills))
	for _, s := range skills {
		level := s.Level
		if level == 0 {
			level = EstimateSkillLevel(s.Endorsements)
		}
		out = append(out, SkillContent{
			Name:     s.Name,
			Category: categorizeSkill(s.Name),
			Level:    level,
			IconURL:  SkillIconURL(s.Name),
		})
	}
	return out
}

// slugRe collapses everything outside [a-z0-9] into hyphens.
var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify builds the natural key for project records.
func Slugify(title string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

func transformProjects(projects []LinkedInProject) []ProjectContent {
	out := make([]ProjectContent, 0, len(projects))
	for i, pr := range projects {
		status := StatusInProgress
		if pr.EndDate != "" {
			status = StatusCompleted
		}
		technologies := pr.Technologies
		if technologies == nil {
			technologies = []string{}
		}
		out = append(out, ProjectContent{
			Title:        pr.Title,
			Slug:         Slugify(pr.Title),
			Description:  RewriteProjectDescription(sanitizeImportText(pr.Description)),
			Technologies: technologies,
			DemoURL:      pr.URL,
			GithubURL:    pr.GithubURL,
			Status:       status,
			Featured:     i < 3,
		})
	}
	return out
}

func transformEducation(entries []LinkedInEducation) []EducationContent {
	out := make([]EducationContent, 0, len(entries))
	for _, e := range entries {
		out = append(out, EducationContent{
			School:    e.School,
			Degree:    e.Degree,
			Field:     e.FieldOfStudy,
			StartDate: e.StartDate,
			EndDate:   e.EndDate,
		})
	}
	return out
}

func transformCertifications(entries []LinkedInCertification) []CertificationContent {
	out := make([]CertificationContent, 0, len(entries))
	for _, c := range entries {
		out = append(out, CertificationContent{
			Name:          c.Name,
			Issuer:        c.Authority,
			Date:          c.Date,
			CredentialURL: c.URL,
		})
	}
	return out
}

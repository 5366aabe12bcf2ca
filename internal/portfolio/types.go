// Package portfolio implements the content-scoring core of go_portfolio:
// section scorers, the aggregate audit, HR-style analysis, content
// recommendations, the LinkedIn-shape transformer, and the bulk injector
// that persists transformed content into the Postgres content store.
//
// All scoring and transform functions are pure: they never mutate their
// input and never touch the clock except through an explicit `now`
// parameter, so identical input always yields identical output.
package portfolio

// Profile is the aggregate input record describing a person's
// professional history. Every field is optional; the scorers treat
// absence as "worth zero points", never as an error.
type Profile struct {
	Name     string `json:"name,omitempty"`
	Title    string `json:"title,omitempty"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`

	Skills         []Skill         `json:"skills,omitempty"`
	Experience     []Experience    `json:"experience,omitempty"`
	Projects       []Project       `json:"projects,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`

	// Presence/length of these is all that matters to the scorers.
	Testimonials   []string `json:"testimonials,omitempty"`
	BlogPosts      []string `json:"blog_posts,omitempty"`
	OpenSource     []string `json:"open_source,omitempty"`
	SpeakingEvents []string `json:"speaking_events,omitempty"`
}

// Skill is a single rated skill. Level is 0–100.
type Skill struct {
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Category string `json:"category,omitempty"`
}

// Experience is one employment entry. Dates are strings in
// "2006-01-02", "2006-01", "2006" or "Jan 2006" form; an empty or
// unparseable EndDate means the position is ongoing.
type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// Project is one portfolio project entry.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	DemoURL      string   `json:"demo_url,omitempty"`
	GithubURL    string   `json:"github_url,omitempty"`
}

// Certification is one certification entry.
type Certification struct {
	Name          string   `json:"name"`
	Issuer        string   `json:"issuer"`
	Date          string   `json:"date"`
	CredentialURL string   `json:"credential_url,omitempty"`
	Skills        []string `json:"skills,omitempty"`
}

// SectionScores holds the six per-section scores, each 0–100.
type SectionScores struct {
	Hero         int `json:"hero"`
	Experience   int `json:"experience"`
	Projects     int `json:"projects"`
	Skills       int `json:"skills"`
	Achievements int `json:"achievements"`
	Testimonials int `json:"testimonials"`
}

// PortfolioAudit is the full on-demand audit of a profile. It is never
// cached or persisted by the scoring path.
type PortfolioAudit struct {
	OverallScore    int                     `json:"overall_score"`
	Sections        SectionScores           `json:"sections"`
	Recommendations []ContentRecommendation `json:"recommendations"`
	MissingElements []string                `json:"missing_elements"`
	HRPerspective   HRAnalysis              `json:"hr_perspective"`
}

// Recommendation priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// ContentRecommendation is one canned improvement suggestion. Ordering
// is insertion order from the generator, not sorted by priority.
type ContentRecommendation struct {
	Section     string   `json:"section"`
	Priority    string   `json:"priority"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Rationale   string   `json:"rationale"`
	Examples    []string `json:"examples"`
	Keywords    []string `json:"keywords"`
	Impact      string   `json:"impact"`
}

// HRAnalysis is the qualitative read of a profile, produced
// independently of the numeric scorers.
type HRAnalysis struct {
	Strengths            []string `json:"strengths"`
	Opportunities        []string `json:"opportunities"`
	MarketPosition       string   `json:"market_position"`
	CompetitiveAdvantage []string `json:"competitive_advantage"`
	ImprovementAreas     []string `json:"improvement_areas"`
}

// Hiring recommendation verdicts.
const (
	VerdictHire      = "hire"
	VerdictInterview = "interview"
	VerdictReject    = "reject"
)

// HiringRecommendation is the output of GenerateHiringRecommendation.
// Reject is part of the vocabulary but current logic never emits it.
type HiringRecommendation struct {
	Recommendation string   `json:"recommendation"`
	Confidence     int      `json:"confidence"`
	Reasoning      []string `json:"reasoning"`
	InterviewFocus []string `json:"interview_focus"`
	SalaryRange    string   `json:"salary_range"`
	RoleMatch      []string `json:"role_match"`
}

package portfolioserver

import (
	"context"
	"time"

	"github.com/anatolykoptev/go_portfolio/internal/engine"
	"github.com/anatolykoptev/go_portfolio/internal/portfolio"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AuditInput wraps the profile to score.
type AuditInput struct {
	Profile portfolio.Profile `json:"profile"`
}

func registerPortfolioAudit(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "portfolio_audit",
		Description: "Score a professional profile: six section scores (hero, experience, projects, skills, achievements, testimonials), a weighted overall score, prioritized content recommendations, missing-elements advisories, and an HR-style qualitative analysis. Deterministic; results are computed fresh on every call.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input AuditInput) (*mcp.CallToolResult, *portfolio.PortfolioAudit, error) {
		engine.CountAudit()
		return nil, portfolio.AnalyzeProfile(&input.Profile, time.Now()), nil
	})
}

func registerHiringRecommendation(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "hiring_recommendation",
		Description: "Turn a profile audit into a hiring verdict (hire or interview) with confidence, reasoning, interview focus areas, a salary band, and matching role titles.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input AuditInput) (*mcp.CallToolResult, *portfolio.HiringRecommendation, error) {
		engine.CountHiring()
		return nil, portfolio.GenerateHiringRecommendation(&input.Profile, time.Now()), nil
	})
}

package portfolioserver

import (
	"context"
	"errors"
	"time"

	"github.com/anatolykoptev/go_portfolio/internal/engine"
	"github.com/anatolykoptev/go_portfolio/internal/portfolio"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TransformInput wraps the external profile shape.
type TransformInput struct {
	Profile portfolio.LinkedInProfile `json:"profile"`
}

func registerPortfolioTransform(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "portfolio_transform",
		Description: "Preview the mapping of a LinkedIn-shaped profile into portfolio content: hero with generated tagline, rewritten experience with extracted achievements, leveled skills with icons, slugged projects, education, and certifications. Nothing is persisted.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input TransformInput) (*mcp.CallToolResult, *portfolio.PortfolioContentMap, error) {
		if input.Profile.Name == "" {
			return nil, nil, errors.New("profile name is required")
		}
		engine.CountTransform()
		return nil, portfolio.TransformToPortfolio(&input.Profile, time.Now()), nil
	})
}

func registerPortfolioImport(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "portfolio_import",
		Description: "Transform a LinkedIn-shaped profile and upsert the result into the content store, collection by collection. Per-record failures are collected, never abort the batch; one import-log row records the run. Inspect success and error in the result rather than expecting a tool error on partial failure.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input TransformInput) (*mcp.CallToolResult, *portfolio.InjectionResult, error) {
		if input.Profile.Name == "" {
			return nil, nil, errors.New("profile name is required")
		}
		db := portfolio.GetContentDB()
		if db == nil {
			return nil, nil, errors.New("content store not configured (set DATABASE_URL)")
		}

		contentMap := portfolio.TransformToPortfolio(&input.Profile, time.Now())
		result, err := portfolio.InjectPortfolioContent(ctx, db, contentMap)
		if err != nil {
			return nil, nil, err
		}
		engine.CountImport(result.RecordsInjected, result.Failed)
		return nil, result, nil
	})
}

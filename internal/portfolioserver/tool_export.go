package portfolioserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_portfolio/internal/engine"
	"github.com/anatolykoptev/go_portfolio/internal/portfolio"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ExportInput has no parameters; the export always covers every collection.
type ExportInput struct{}

func registerPortfolioExport(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "portfolio_export",
		Description: "Read every content collection (hero, experience, skills, projects, education, certifications, posts) from the store as one bundle. Results are cached briefly; imports eventually show up on expiry.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ ExportInput) (*mcp.CallToolResult, *portfolio.PortfolioExport, error) {
		db := portfolio.GetContentDB()
		if db == nil {
			return nil, nil, errors.New("content store not configured (set DATABASE_URL)")
		}

		engine.CountExport()
		cacheKey := engine.CacheKey("portfolio_export")
		if out, ok := engine.CacheLoadJSON[*portfolio.PortfolioExport](ctx, cacheKey); ok {
			return nil, out, nil
		}

		export, err := db.Export(ctx)
		if err != nil {
			return nil, nil, err
		}
		engine.CacheStoreJSON(ctx, cacheKey, export)
		return nil, export, nil
	})
}

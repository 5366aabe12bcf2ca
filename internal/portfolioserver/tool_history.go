package portfolioserver

import (
	"context"
	"time"

	"github.com/anatolykoptev/go_portfolio/internal/engine"
	"github.com/anatolykoptev/go_portfolio/internal/portfolio"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerScoreHistoryAdd(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "score_history_add",
		Description: "Score a profile and record the result in the local history (SQLite). Use to track portfolio improvements over time. Returns the snapshot ID and overall score.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input portfolio.ScoreHistoryAddInput) (*mcp.CallToolResult, *portfolio.ScoreHistoryAddResult, error) {
		result, err := portfolio.AddScoreSnapshot(ctx, input, time.Now())
		if err != nil {
			return nil, nil, err
		}
		engine.CountHistoryWrite()
		return nil, result, nil
	})
}

func registerScoreHistoryList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "score_history_list",
		Description: "List recorded score snapshots, newest first. Optional limit (default 50, max 100).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input portfolio.ScoreHistoryListInput) (*mcp.CallToolResult, *portfolio.ScoreHistoryListResult, error) {
		result, err := portfolio.ListScoreSnapshots(ctx, input)
		if err != nil {
			return nil, nil, err
		}
		return nil, result, nil
	})
}

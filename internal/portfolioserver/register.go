// Package portfolioserver registers the go_portfolio MCP tools: profile
// auditing, hiring recommendations, LinkedIn import, content export, and
// local score history.
package portfolioserver

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ToolCount is the number of tools RegisterTools installs.
const ToolCount = 7

// RegisterTools registers all portfolio tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerPortfolioAudit(server)
	registerHiringRecommendation(server)
	registerPortfolioTransform(server)
	registerPortfolioImport(server)
	registerPortfolioExport(server)
	registerScoreHistoryAdd(server)
	registerScoreHistoryList(server)
}

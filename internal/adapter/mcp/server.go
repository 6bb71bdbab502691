// Package mcpadapter exposes the game service as an MCP server with typed
// tool handlers and widget resources, over stdio or streamable HTTP.
package mcpadapter

import (
	"context"
	"net/http"
	"strings"

	"chatagotchi/internal/app/game"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverName = "chatagotchi-server"
const serverVersion = "0.1.0"

// UserResolver yields the user id a tool call acts on behalf of. Resolvers
// fail with game.ErrAuthInfoMissing when no identity is available.
type UserResolver func(ctx context.Context) (string, error)

// StaticUserResolver binds every tool call to one configured user. This is
// the stdio setup, where the process belongs to a single player.
func StaticUserResolver(userID string) UserResolver {
	userID = strings.TrimSpace(userID)
	return func(context.Context) (string, error) {
		if userID == "" {
			return "", game.ErrAuthInfoMissing
		}
		return userID, nil
	}
}

type Server struct {
	mcpServer *mcp.Server
}

// New builds an MCP server with all game tools and widget resources
// registered against the given use case.
func New(uc game.UseCase, resolve UserResolver) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(mcpServer, NewGameTool(), NewGameHandler(uc, resolve))
	mcp.AddTool(mcpServer, FeedTool(), FeedHandler(uc, resolve))
	mcp.AddTool(mcpServer, PlayTool(), PlayHandler(uc, resolve))
	mcp.AddTool(mcpServer, StatusTool(), StatusHandler(uc, resolve))
	mcp.AddTool(mcpServer, AchievementsTool(), AchievementsHandler(uc, resolve))

	mcpServer.AddResource(PetWidgetResource(), staticWidgetHandler(petWidgetURI, petWidgetHTML))
	mcpServer.AddResource(AchievementsWidgetResource(), staticWidgetHandler(achievementsWidgetURI, achievementsWidgetHTML))

	return &Server{mcpServer: mcpServer}
}

// Run serves MCP over stdio and blocks until the client disconnects or the
// context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}

// StreamableHTTPHandler returns an http.Handler serving MCP's streamable
// HTTP transport, for browser and remote clients.
func (s *Server) StreamableHTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}

package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	agentsvc "github.com/hellolead/hello-lead/internal/service/agent"
	leadsvc "github.com/hellolead/hello-lead/internal/service/lead"
	setupsvc "github.com/hellolead/hello-lead/internal/service/setup"
)

// Server wraps the mark3labs/mcp-go MCPServer and its
// StreamableHTTPServer, exposing the receptionist platform's core
// operations as tools. Tools are registered in tools.go.
type Server struct {
	httpSrv *mcpserver.StreamableHTTPServer
}

func New(setupSvc *setupsvc.Service, agentSvc *agentsvc.Service, leadSvc *leadsvc.Service) *Server {
	mcpSrv := mcpserver.NewMCPServer(
		"hello-lead",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	RegisterTools(mcpSrv, setupSvc, agentSvc, leadSvc)

	return &Server{
		httpSrv: mcpserver.NewStreamableHTTPServer(mcpSrv),
	}
}

// Handler returns an http.Handler that serves the MCP endpoint.
func (s *Server) Handler() http.Handler {
	return s.httpSrv
}

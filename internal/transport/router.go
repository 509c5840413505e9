package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hellolead/hello-lead/internal/domain/event"
	portbus "github.com/hellolead/hello-lead/internal/port/eventbus"
	agentsvc "github.com/hellolead/hello-lead/internal/service/agent"
	dashboardsvc "github.com/hellolead/hello-lead/internal/service/dashboard"
	leadsvc "github.com/hellolead/hello-lead/internal/service/lead"
	setupsvc "github.com/hellolead/hello-lead/internal/service/setup"

	agenthandler "github.com/hellolead/hello-lead/internal/transport/agent"
	callhandler "github.com/hellolead/hello-lead/internal/transport/call"
	dashboardhandler "github.com/hellolead/hello-lead/internal/transport/dashboard"
	leadhandler "github.com/hellolead/hello-lead/internal/transport/lead"
	mcptransport "github.com/hellolead/hello-lead/internal/transport/mcp"
	setuphandler "github.com/hellolead/hello-lead/internal/transport/setup"
	wshandler "github.com/hellolead/hello-lead/internal/transport/ws"
)

func NewRouter(
	ctx context.Context,
	setupSvc *setupsvc.Service,
	agentSvc *agentsvc.Service,
	leadSvc *leadsvc.Service,
	dashboardSvc *dashboardsvc.Service,
	mcpServer *mcptransport.Server,
	eventBus portbus.EventBus,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")

	setuphandler.Register(api.Group("/setup"), setupSvc)
	agenthandler.Register(api.Group("/agents"), agentSvc)
	leadhandler.Register(api.Group("/leads"), leadSvc)
	callhandler.Register(api.Group("/calls"), agentSvc, leadSvc)
	dashboardhandler.Register(api.Group("/dashboard"), dashboardSvc)

	r.Any("/mcp", gin.WrapH(mcpServer.Handler()))

	hub := wshandler.NewHub()
	hub.Register(api.Group("/ws"))

	// Bridge: every domain event type is forwarded to WS clients;
	// event.Type in the payload lets the client filter.
	for _, t := range []event.Type{
		event.TypePromptGenerated,
		event.TypeAgentCreated,
		event.TypeAgentUpdated,
		event.TypeAgentDeleted,
		event.TypeLeadUpdated,
	} {
		if _, err := eventBus.Subscribe(ctx, t, func(_ context.Context, e event.Event) {
			hub.Broadcast(e)
		}); err != nil {
			slog.Error("failed to subscribe event type to WS hub", "type", t, "error", err)
		}
	}

	return r
}

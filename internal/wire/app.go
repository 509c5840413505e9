package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hellolead/hello-lead/internal/adapter/gemini"
	"github.com/hellolead/hello-lead/internal/adapter/memory"
	"github.com/hellolead/hello-lead/internal/adapter/vapi"
	"github.com/hellolead/hello-lead/internal/config"

	agentsvc "github.com/hellolead/hello-lead/internal/service/agent"
	dashboardsvc "github.com/hellolead/hello-lead/internal/service/dashboard"
	leadsvc "github.com/hellolead/hello-lead/internal/service/lead"
	setupsvc "github.com/hellolead/hello-lead/internal/service/setup"

	"github.com/hellolead/hello-lead/internal/transport"
	mcptransport "github.com/hellolead/hello-lead/internal/transport/mcp"
)

// App holds the top-level resources needed to run and gracefully stop
// the server.
type App struct {
	Config *config.Config
	Server *http.Server
}

// Build is the composition root: the only place concrete types are
// wired to their interface dependencies.
func Build(ctx context.Context) (*App, error) {
	cfg := config.Load()
	cfg.Validate() // advisory; construction below is the hard gate

	// ── Adapters ─────────────────────────────────────────────────────
	generator, err := gemini.New(cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	prov, err := vapi.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating Vapi client: %w", err)
	}
	leadRepo := memory.NewLeadStore(memory.SampleLeads())
	eventBus := memory.NewEventBus()

	// ── Services ─────────────────────────────────────────────────────
	setupSvcInstance := setupsvc.NewService(generator, prov, eventBus)
	agentSvcInstance := agentsvc.NewService(prov, eventBus)
	leadSvcInstance := leadsvc.NewService(leadRepo, generator, eventBus)
	dashboardSvcInstance := dashboardsvc.NewService(leadRepo)

	mcpServer := mcptransport.New(setupSvcInstance, agentSvcInstance, leadSvcInstance)

	// ── Transport ────────────────────────────────────────────────────
	router := transport.NewRouter(
		ctx,
		setupSvcInstance,
		agentSvcInstance,
		leadSvcInstance,
		dashboardSvcInstance,
		mcpServer,
		eventBus,
	)

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	slog.Info("application wired", "port", cfg.Port, "env", cfg.Env)

	return &App{Config: cfg, Server: server}, nil
}

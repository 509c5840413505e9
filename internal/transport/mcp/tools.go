package mcp

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/hellolead/hello-lead/internal/domain/business"
	agentsvc "github.com/hellolead/hello-lead/internal/service/agent"
	leadsvc "github.com/hellolead/hello-lead/internal/service/lead"
	setupsvc "github.com/hellolead/hello-lead/internal/service/setup"
)

// RegisterTools registers all MCP tools on the server. Adding a tool is
// a new AddTool call here; server.go never changes.
func RegisterTools(
	s *mcpserver.MCPServer,
	setupSvc *setupsvc.Service,
	agentSvc *agentsvc.Service,
	leadSvc *leadsvc.Service,
) {
	s.AddTool(mcpmcp.NewTool("generate_prompt",
		mcpmcp.WithDescription("Generate a receptionist script for a business. Returns the script, 3-5 improvement suggestions, and a confidence score."),
		mcpmcp.WithString("business_name", mcpmcp.Required(), mcpmcp.Description("Business name")),
		mcpmcp.WithString("business_type", mcpmcp.Required(), mcpmcp.Description("Business type, e.g. dental clinic")),
		mcpmcp.WithString("phone_number", mcpmcp.Description("Business phone number")),
		mcpmcp.WithString("email", mcpmcp.Description("Business email")),
		mcpmcp.WithString("address", mcpmcp.Description("Business address")),
		mcpmcp.WithString("pricing", mcpmcp.Description("Free-text pricing description")),
		mcpmcp.WithString("services", mcpmcp.Description("Comma-separated service labels from the catalog")),
		mcpmcp.WithString("special_instructions", mcpmcp.Description("Free-text special instructions")),
	), generatePromptHandler(setupSvc))

	s.AddTool(mcpmcp.NewTool("launch_agent",
		mcpmcp.WithDescription("Provision a voice agent on the platform from a generated script. Returns the platform-assigned agent."),
		mcpmcp.WithString("business_name", mcpmcp.Required(), mcpmcp.Description("Business name")),
		mcpmcp.WithString("business_type", mcpmcp.Required(), mcpmcp.Description("Business type")),
		mcpmcp.WithString("prompt", mcpmcp.Required(), mcpmcp.Description("Generated receptionist script")),
		mcpmcp.WithString("phone_number", mcpmcp.Description("Phone number to attach to the agent")),
		mcpmcp.WithString("name", mcpmcp.Description("Agent display name; defaults to '<business> Receptionist'")),
		mcpmcp.WithString("services", mcpmcp.Description("Comma-separated service labels from the catalog")),
		mcpmcp.WithString("pricing", mcpmcp.Description("Free-text pricing description")),
	), launchAgentHandler(setupSvc))

	s.AddTool(mcpmcp.NewTool("list_agents",
		mcpmcp.WithDescription("List all provisioned voice agents."),
	), listAgentsHandler(agentSvc))

	s.AddTool(mcpmcp.NewTool("delete_agent",
		mcpmcp.WithDescription("Delete a provisioned voice agent."),
		mcpmcp.WithString("agent_id", mcpmcp.Required(), mcpmcp.Description("Platform-assigned agent ID")),
	), deleteAgentHandler(agentSvc))

	s.AddTool(mcpmcp.NewTool("get_call_logs",
		mcpmcp.WithDescription("Read call logs, scoped to one agent when agent_id is given."),
		mcpmcp.WithString("agent_id", mcpmcp.Description("Platform-assigned agent ID; omit for the global log")),
	), getCallLogsHandler(agentSvc))

	s.AddTool(mcpmcp.NewTool("follow_up_questions",
		mcpmcp.WithDescription("Generate 3-5 follow-up questions to qualify a lead."),
		mcpmcp.WithString("lead_id", mcpmcp.Required(), mcpmcp.Description("Lead UUID")),
	), followUpQuestionsHandler(leadSvc))

	s.AddTool(mcpmcp.NewTool("summarize_call",
		mcpmcp.WithDescription("Summarize a call transcript: key points, needs, actions, follow-up."),
		mcpmcp.WithString("transcript", mcpmcp.Required(), mcpmcp.Description("Raw call transcript")),
	), summarizeCallHandler(leadSvc))
}

// ── Tool handlers ─────────────────────────────────────────────────────

func profileFromRequest(req mcpmcp.CallToolRequest) business.Profile {
	return business.Profile{
		Name:                mcpmcp.ParseString(req, "business_name", ""),
		Type:                mcpmcp.ParseString(req, "business_type", ""),
		PhoneNumber:         mcpmcp.ParseString(req, "phone_number", ""),
		Email:               mcpmcp.ParseString(req, "email", ""),
		Address:             mcpmcp.ParseString(req, "address", ""),
		Pricing:             mcpmcp.ParseString(req, "pricing", ""),
		WorkingHours:        business.DefaultWeek(),
		Services:            splitServices(mcpmcp.ParseString(req, "services", "")),
		SpecialInstructions: mcpmcp.ParseString(req, "special_instructions", ""),
	}
}

func splitServices(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func generatePromptHandler(svc *setupsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		generated, err := svc.GenerateScript(ctx, profileFromRequest(req))
		if err != nil {
			return mcpmcp.NewToolResultText("error: " + err.Error()), nil
		}
		return jsonResult(generated)
	}
}

func launchAgentHandler(svc *setupsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		profile := profileFromRequest(req)
		promptText := mcpmcp.ParseString(req, "prompt", "")
		name := mcpmcp.ParseString(req, "name", "")

		agent, err := svc.LaunchAgent(ctx, profile, promptText, name)
		if err != nil {
			return mcpmcp.NewToolResultText("error: " + err.Error()), nil
		}
		return jsonResult(agent)
	}
}

func listAgentsHandler(svc *agentsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		agents, err := svc.List(ctx)
		if err != nil {
			return mcpmcp.NewToolResultText("error: " + err.Error()), nil
		}
		return jsonResult(agents)
	}
}

func deleteAgentHandler(svc *agentsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		id := mcpmcp.ParseString(req, "agent_id", "")
		if id == "" {
			return mcpmcp.NewToolResultText("error: agent_id is required"), nil
		}
		if err := svc.Delete(ctx, id); err != nil {
			return mcpmcp.NewToolResultText("error: " + err.Error()), nil
		}
		return mcpmcp.NewToolResultText("deleted"), nil
	}
}

func getCallLogsHandler(svc *agentsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		logs, err := svc.CallLogs(ctx, mcpmcp.ParseString(req, "agent_id", ""))
		if err != nil {
			return mcpmcp.NewToolResultText("error: " + err.Error()), nil
		}
		return jsonResult(logs)
	}
}

func followUpQuestionsHandler(svc *leadsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		id, err := uuid.Parse(mcpmcp.ParseString(req, "lead_id", ""))
		if err != nil {
			return mcpmcp.NewToolResultText("error: invalid lead_id"), nil
		}
		questions, err := svc.FollowUpQuestions(ctx, id)
		if err != nil {
			return mcpmcp.NewToolResultText("error: " + err.Error()), nil
		}
		return jsonResult(questions)
	}
}

func summarizeCallHandler(svc *leadsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		transcript := mcpmcp.ParseString(req, "transcript", "")
		summary, err := svc.SummarizeCall(ctx, transcript)
		if err != nil {
			return mcpmcp.NewToolResultText("error: " + err.Error()), nil
		}
		return mcpmcp.NewToolResultText(summary), nil
	}
}

func jsonResult(v any) (*mcpmcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcpmcp.NewToolResultText("error: " + err.Error()), nil
	}
	return mcpmcp.NewToolResultText(string(data)), nil
}

package agent

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hellolead/hello-lead/internal/domain/event"
	"github.com/hellolead/hello-lead/internal/domain/voiceagent"
	portbus "github.com/hellolead/hello-lead/internal/port/eventbus"
	portprovisioner "github.com/hellolead/hello-lead/internal/port/provisioner"
)

// Service manages provisioned voice agents: listing, partial updates,
// deletion and call-log reads. Nothing is cached; every read is a live
// round trip to the platform.
type Service struct {
	provisioner portprovisioner.Provisioner
	bus         portbus.EventBus
}

func NewService(provisioner portprovisioner.Provisioner, bus portbus.EventBus) *Service {
	return &Service{provisioner: provisioner, bus: bus}
}

func (s *Service) List(ctx context.Context) ([]voiceagent.Agent, error) {
	agents, err := s.provisioner.ListAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	return agents, nil
}

func (s *Service) Update(ctx context.Context, id string, upd voiceagent.Update) (voiceagent.Agent, error) {
	agent, err := s.provisioner.UpdateAgent(ctx, id, upd)
	if err != nil {
		return voiceagent.Agent{}, fmt.Errorf("update agent: %w", err)
	}

	if err := s.bus.Publish(ctx, event.New(event.TypeAgentUpdated, agent.ID)); err != nil {
		slog.ErrorContext(ctx, "failed to publish AgentUpdated event", "agent_id", agent.ID, "error", err)
	}
	return agent, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.provisioner.DeleteAgent(ctx, id); err != nil {
		return fmt.Errorf("delete agent: %w", err)
	}

	if err := s.bus.Publish(ctx, event.New(event.TypeAgentDeleted, id)); err != nil {
		slog.ErrorContext(ctx, "failed to publish AgentDeleted event", "agent_id", id, "error", err)
	}
	return nil
}

// CallLogs returns the platform call log, scoped to one agent when id
// is non-empty.
func (s *Service) CallLogs(ctx context.Context, agentID string) ([]voiceagent.CallLog, error) {
	logs, err := s.provisioner.CallLogs(ctx, agentID)
	if err != nil {
		return nil, fmt.Errorf("get call logs: %w", err)
	}
	return logs, nil
}

package setup

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hellolead/hello-lead/internal/domain/business"
	"github.com/hellolead/hello-lead/internal/domain/event"
	"github.com/hellolead/hello-lead/internal/domain/prompt"
	"github.com/hellolead/hello-lead/internal/domain/voiceagent"
	portbus "github.com/hellolead/hello-lead/internal/port/eventbus"
	portpromptgen "github.com/hellolead/hello-lead/internal/port/promptgen"
	portprovisioner "github.com/hellolead/hello-lead/internal/port/provisioner"
)

// Service drives the two-step setup flow: generate a receptionist
// script from a business profile, then launch a voice agent from it.
// Each step is a single attempt; failures propagate to the caller, who
// may retry manually.
type Service struct {
	generator   portpromptgen.Generator
	provisioner portprovisioner.Provisioner
	bus         portbus.EventBus
}

func NewService(generator portpromptgen.Generator, provisioner portprovisioner.Provisioner, bus portbus.EventBus) *Service {
	return &Service{generator: generator, provisioner: provisioner, bus: bus}
}

// GenerateScript validates the profile and produces a receptionist
// script plus improvement suggestions.
func (s *Service) GenerateScript(ctx context.Context, p business.Profile) (prompt.Generated, error) {
	if err := p.Validate(); err != nil {
		return prompt.Generated{}, fmt.Errorf("validate profile: %w", err)
	}

	generated, err := s.generator.GeneratePrompt(ctx, p)
	if err != nil {
		return prompt.Generated{}, fmt.Errorf("generate script: %w", err)
	}

	if err := s.bus.Publish(ctx, event.New(event.TypePromptGenerated, p.Name)); err != nil {
		slog.ErrorContext(ctx, "failed to publish PromptGenerated event", "business", p.Name, "error", err)
	}

	return generated, nil
}

// LaunchAgent provisions a voice agent from a generated script. An
// empty name defaults to "<business> Receptionist"; the phone number
// defaults to the profile's.
func (s *Service) LaunchAgent(ctx context.Context, p business.Profile, promptText, name string) (voiceagent.Agent, error) {
	if err := p.Validate(); err != nil {
		return voiceagent.Agent{}, fmt.Errorf("validate profile: %w", err)
	}
	if promptText == "" {
		return voiceagent.Agent{}, fmt.Errorf("prompt is required")
	}
	if name == "" {
		name = p.Name + " Receptionist"
	}

	agent, err := s.provisioner.CreateAgent(ctx, voiceagent.CreateParams{
		Name:        name,
		Prompt:      promptText,
		PhoneNumber: p.PhoneNumber,
		Profile:     p,
	})
	if err != nil {
		return voiceagent.Agent{}, fmt.Errorf("launch agent: %w", err)
	}

	if err := s.bus.Publish(ctx, event.New(event.TypeAgentCreated, agent.ID)); err != nil {
		slog.ErrorContext(ctx, "failed to publish AgentCreated event", "agent_id", agent.ID, "error", err)
	}

	return agent, nil
}

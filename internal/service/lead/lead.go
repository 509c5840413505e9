package lead

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hellolead/hello-lead/internal/domain/event"
	domainlead "github.com/hellolead/hello-lead/internal/domain/lead"
	portbus "github.com/hellolead/hello-lead/internal/port/eventbus"
	portlead "github.com/hellolead/hello-lead/internal/port/lead"
	portpromptgen "github.com/hellolead/hello-lead/internal/port/promptgen"
)

// Service provides lead listing and status tracking over the in-memory
// store, plus AI assists (follow-up questions, call summaries) through
// the prompt generator.
type Service struct {
	repo      portlead.Repository
	generator portpromptgen.Generator
	bus       portbus.EventBus
}

func NewService(repo portlead.Repository, generator portpromptgen.Generator, bus portbus.EventBus) *Service {
	return &Service{repo: repo, generator: generator, bus: bus}
}

func (s *Service) List(ctx context.Context, filters domainlead.ListFilters) ([]domainlead.Lead, error) {
	leads, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	return leads, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainlead.Lead, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainlead.Lead{}, fmt.Errorf("get lead: %w", err)
	}
	return l, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status domainlead.Status) (domainlead.Lead, error) {
	if !status.Valid() {
		return domainlead.Lead{}, fmt.Errorf("invalid lead status %q", status)
	}

	l, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return domainlead.Lead{}, fmt.Errorf("update lead status: %w", err)
	}

	if err := s.bus.Publish(ctx, event.New(event.TypeLeadUpdated, l.ID.String())); err != nil {
		slog.ErrorContext(ctx, "failed to publish LeadUpdated event", "lead_id", l.ID, "error", err)
	}
	return l, nil
}

// FollowUpQuestions asks the model for 3-5 qualification questions for
// the lead.
func (s *Service) FollowUpQuestions(ctx context.Context, id uuid.UUID) ([]string, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get lead: %w", err)
	}

	questions, err := s.generator.FollowUpQuestions(ctx, l.Summary())
	if err != nil {
		return nil, fmt.Errorf("generate follow-up questions: %w", err)
	}
	return questions, nil
}

// SummarizeCall returns a model-written summary of a call transcript.
func (s *Service) SummarizeCall(ctx context.Context, transcript string) (string, error) {
	if transcript == "" {
		return "", fmt.Errorf("transcript is required")
	}

	summary, err := s.generator.CallSummary(ctx, transcript)
	if err != nil {
		return "", fmt.Errorf("summarize call: %w", err)
	}
	return summary, nil
}

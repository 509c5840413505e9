package testutil

import (
	"context"
	"sync"

	"github.com/hellolead/hello-lead/internal/domain/business"
	"github.com/hellolead/hello-lead/internal/domain/event"
	"github.com/hellolead/hello-lead/internal/domain/lead"
	"github.com/hellolead/hello-lead/internal/domain/prompt"
	"github.com/hellolead/hello-lead/internal/domain/voiceagent"
	portbus "github.com/hellolead/hello-lead/internal/port/eventbus"
)

// FakeGenerator is a test double for the promptgen port. Each method
// returns the configured value or error and counts its calls.
type FakeGenerator struct {
	GenerateResult  prompt.Generated
	GenerateErr     error
	QuestionsResult []string
	QuestionsErr    error
	SummaryResult   string
	SummaryErr      error

	GenerateCalls  int
	QuestionsCalls int
	SummaryCalls   int
	LastProfile    business.Profile
	LastSummaryIn  string
}

func (f *FakeGenerator) GeneratePrompt(_ context.Context, p business.Profile) (prompt.Generated, error) {
	f.GenerateCalls++
	f.LastProfile = p
	return f.GenerateResult, f.GenerateErr
}

func (f *FakeGenerator) FollowUpQuestions(_ context.Context, _ lead.Summary) ([]string, error) {
	f.QuestionsCalls++
	return f.QuestionsResult, f.QuestionsErr
}

func (f *FakeGenerator) CallSummary(_ context.Context, transcript string) (string, error) {
	f.SummaryCalls++
	f.LastSummaryIn = transcript
	return f.SummaryResult, f.SummaryErr
}

// FakeProvisioner is a test double for the provisioner port.
type FakeProvisioner struct {
	CreateResult voiceagent.Agent
	CreateErr    error
	ListResult   []voiceagent.Agent
	ListErr      error
	UpdateResult voiceagent.Agent
	UpdateErr    error
	DeleteErr    error
	LogsResult   []voiceagent.CallLog
	LogsErr      error

	CreateCalls     int
	LastParams      voiceagent.CreateParams
	LastUpdateID    string
	LastUpdate      voiceagent.Update
	LastDeleteID    string
	LastAssistantID string
}

func (f *FakeProvisioner) CreateAgent(_ context.Context, params voiceagent.CreateParams) (voiceagent.Agent, error) {
	f.CreateCalls++
	f.LastParams = params
	return f.CreateResult, f.CreateErr
}

func (f *FakeProvisioner) ListAgents(_ context.Context) ([]voiceagent.Agent, error) {
	return f.ListResult, f.ListErr
}

func (f *FakeProvisioner) UpdateAgent(_ context.Context, id string, upd voiceagent.Update) (voiceagent.Agent, error) {
	f.LastUpdateID = id
	f.LastUpdate = upd
	return f.UpdateResult, f.UpdateErr
}

func (f *FakeProvisioner) DeleteAgent(_ context.Context, id string) error {
	f.LastDeleteID = id
	return f.DeleteErr
}

func (f *FakeProvisioner) CallLogs(_ context.Context, assistantID string) ([]voiceagent.CallLog, error) {
	f.LastAssistantID = assistantID
	return f.LogsResult, f.LogsErr
}

// CaptureBus records every published event. Safe for concurrent use.
type CaptureBus struct {
	mu     sync.Mutex
	Events []event.Event
}

func (b *CaptureBus) Publish(_ context.Context, e event.Event) error {
	b.mu.Lock()
	b.Events = append(b.Events, e)
	b.mu.Unlock()
	return nil
}

func (b *CaptureBus) Subscribe(_ context.Context, _ event.Type, _ portbus.Handler) (portbus.Subscription, error) {
	return noopSubscription{}, nil
}

// OfType returns all captured events of the given type.
func (b *CaptureBus) OfType(t event.Type) []event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []event.Event
	for _, e := range b.Events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

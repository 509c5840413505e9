package provisioner

import (
	"context"

	"github.com/hellolead/hello-lead/internal/domain/voiceagent"
)

// Provisioner manages assistant lifecycle on the external voice
// platform. Every call is a live round trip; nothing is cached.
type Provisioner interface {
	CreateAgent(ctx context.Context, params voiceagent.CreateParams) (voiceagent.Agent, error)
	ListAgents(ctx context.Context) ([]voiceagent.Agent, error)
	UpdateAgent(ctx context.Context, id string, upd voiceagent.Update) (voiceagent.Agent, error)
	DeleteAgent(ctx context.Context, id string) error

	// CallLogs returns call records, scoped to one assistant when
	// assistantID is non-empty and the platform-wide log otherwise.
	CallLogs(ctx context.Context, assistantID string) ([]voiceagent.CallLog, error)
}

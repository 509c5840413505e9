package voiceagent

import (
	"time"

	"github.com/hellolead/hello-lead/internal/domain/business"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Agent is a provisioned assistant on the voice platform. The ID is
// assigned by the platform on creation and is never fabricated locally.
type Agent struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Prompt      string    `json:"prompt"`
	PhoneNumber string    `json:"phoneNumber"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateParams carries everything needed to provision a new agent. The
// profile feeds the platform-side metadata block.
type CreateParams struct {
	Name        string
	Prompt      string
	PhoneNumber string
	Profile     business.Profile
}

// Update is a partial-field patch. Nil fields are omitted from the
// request; merge semantics are the platform's.
type Update struct {
	Name        *string `json:"name,omitempty"`
	Prompt      *string `json:"prompt,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Status      *Status `json:"status,omitempty"`
}

// CallLog is one call record as reported by the platform. Fields beyond
// the identifiers are passed through as-is.
type CallLog struct {
	ID          string     `json:"id"`
	AssistantID string     `json:"assistantId"`
	Status      string     `json:"status"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	EndedAt     *time.Time `json:"endedAt,omitempty"`
	Transcript  string     `json:"transcript,omitempty"`
	Summary     string     `json:"summary,omitempty"`
}

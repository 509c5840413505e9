package event

import "time"

type Type string

const (
	TypePromptGenerated Type = "prompt_generated"
	TypeAgentCreated    Type = "agent_created"
	TypeAgentUpdated    Type = "agent_updated"
	TypeAgentDeleted    Type = "agent_deleted"
	TypeLeadUpdated     Type = "lead_updated"
)

// Event carries identifiers only, not full state. Subscribers fetch
// fresh state through the appropriate service.
type Event struct {
	Type      Type      `json:"type"`
	EntityID  string    `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}

func New(eventType Type, entityID string) Event {
	return Event{
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}

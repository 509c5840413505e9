package lead

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNew         Status = "new"
	StatusContacted   Status = "contacted"
	StatusAppointment Status = "appointment"
	StatusConverted   Status = "converted"
	StatusLost        Status = "lost"
)

// Valid reports whether s is one of the known lead statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusContacted, StatusAppointment, StatusConverted, StatusLost:
		return true
	}
	return false
}

// Lead is a captured caller record. Leads live in an in-memory store
// only; there is no durable storage.
type Lead struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Status       Status    `json:"status"`
	Interest     string    `json:"interest"`
	Notes        string    `json:"notes"`
	CallDuration string    `json:"call_duration"`
	CreatedAt    time.Time `json:"created_at"`
}

// Summary is the slice of a lead handed to the prompt generator when
// asking for follow-up questions.
type Summary struct {
	Name         string `json:"name"`
	Interest     string `json:"interest"`
	CallDuration string `json:"call_duration"`
	Status       Status `json:"status"`
}

func (l Lead) Summary() Summary {
	return Summary{
		Name:         l.Name,
		Interest:     l.Interest,
		CallDuration: l.CallDuration,
		Status:       l.Status,
	}
}

// ListFilters narrows a lead listing. Search matches case-insensitively
// against name, phone, email and interest.
type ListFilters struct {
	Status *Status
	Search string
}

// Matches reports whether the lead passes the filters.
func (l Lead) Matches(f ListFilters) bool {
	if f.Status != nil && l.Status != *f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	q := strings.ToLower(f.Search)
	for _, field := range []string{l.Name, l.Phone, l.Email, l.Interest} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

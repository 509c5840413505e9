package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domainlead "github.com/hellolead/hello-lead/internal/domain/lead"
	portlead "github.com/hellolead/hello-lead/internal/port/lead"
)

var ErrNotFound = errors.New("lead: not found")

var _ portlead.Repository = (*LeadStore)(nil)

// LeadStore is the in-memory lead repository. It is seeded with sample
// records and holds nothing durably; restarting the process resets it.
type LeadStore struct {
	mu    sync.RWMutex
	leads map[uuid.UUID]domainlead.Lead
}

func NewLeadStore(seed []domainlead.Lead) *LeadStore {
	s := &LeadStore{leads: make(map[uuid.UUID]domainlead.Lead, len(seed))}
	for _, l := range seed {
		s.leads[l.ID] = l
	}
	return s
}

// List returns leads matching the filters, newest first.
func (s *LeadStore) List(_ context.Context, filters domainlead.ListFilters) ([]domainlead.Lead, error) {
	s.mu.RLock()
	out := make([]domainlead.Lead, 0, len(s.leads))
	for _, l := range s.leads {
		if l.Matches(filters) {
			out = append(out, l)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *LeadStore) GetByID(_ context.Context, id uuid.UUID) (domainlead.Lead, error) {
	s.mu.RLock()
	l, ok := s.leads[id]
	s.mu.RUnlock()
	if !ok {
		return domainlead.Lead{}, ErrNotFound
	}
	return l, nil
}

func (s *LeadStore) UpdateStatus(_ context.Context, id uuid.UUID, status domainlead.Status) (domainlead.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.leads[id]
	if !ok {
		return domainlead.Lead{}, ErrNotFound
	}
	l.Status = status
	s.leads[id] = l
	return l, nil
}

func (s *LeadStore) SetNotes(_ context.Context, id uuid.UUID, notes string) (domainlead.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.leads[id]
	if !ok {
		return domainlead.Lead{}, ErrNotFound
	}
	l.Notes = notes
	s.leads[id] = l
	return l, nil
}

// SampleLeads returns the demo records shown on a fresh install.
func SampleLeads() []domainlead.Lead {
	return []domainlead.Lead{
		{
			ID:           uuid.New(),
			Name:         "John Doe",
			Phone:        "+1 (555) 123-4567",
			Email:        "john.doe@email.com",
			Status:       domainlead.StatusNew,
			Interest:     "Dental cleaning appointment",
			Notes:        "Called asking about pricing for dental cleaning. Interested in booking next week.",
			CallDuration: "3:45",
			CreatedAt:    time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:           uuid.New(),
			Name:         "Sarah Smith",
			Phone:        "+1 (555) 234-5678",
			Email:        "sarah.smith@email.com",
			Status:       domainlead.StatusAppointment,
			Interest:     "Consultation for legal services",
			Notes:        "Needs consultation for business contract review. Appointment booked for Friday.",
			CallDuration: "5:20",
			CreatedAt:    time.Date(2024, 1, 14, 14, 15, 0, 0, time.UTC),
		},
		{
			ID:           uuid.New(),
			Name:         "Mike Johnson",
			Phone:        "+1 (555) 345-6789",
			Email:        "mike.johnson@email.com",
			Status:       domainlead.StatusContacted,
			Interest:     "Home renovation quote",
			Notes:        "Referred by previous client. Looking for kitchen renovation estimate.",
			CallDuration: "4:10",
			CreatedAt:    time.Date(2024, 1, 13, 9, 45, 0, 0, time.UTC),
		},
		{
			ID:           uuid.New(),
			Name:         "Lisa Brown",
			Phone:        "+1 (555) 456-7890",
			Email:        "lisa.brown@email.com",
			Status:       domainlead.StatusConverted,
			Interest:     "Tax preparation services",
			Notes:        "Converted to paying client. Tax preparation completed successfully.",
			CallDuration: "6:30",
			CreatedAt:    time.Date(2024, 1, 10, 16, 20, 0, 0, time.UTC),
		},
	}
}

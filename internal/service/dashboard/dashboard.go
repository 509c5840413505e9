package dashboard

import (
	"context"
	"fmt"

	domainlead "github.com/hellolead/hello-lead/internal/domain/lead"
	portlead "github.com/hellolead/hello-lead/internal/port/lead"
)

// Overview is everything the dashboard renders in one payload.
type Overview struct {
	Stats       Stats        `json:"stats"`
	CallVolume  []DayVolume  `json:"call_volume"`
	LeadSources []LeadSource `json:"lead_sources"`
}

type Stats struct {
	TotalCalls         int     `json:"total_calls"`
	AppointmentsBooked int     `json:"appointments_booked"`
	NewLeads           int     `json:"new_leads"`
	ConversionRate     float64 `json:"conversion_rate"`
}

type DayVolume struct {
	Day          string `json:"day"`
	Calls        int    `json:"calls"`
	Appointments int    `json:"appointments"`
}

type LeadSource struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Sample series. Call analytics are not wired to the platform yet, so
// the weekly chart and source breakdown are demo data, same as the
// original dashboard.
var (
	sampleCallVolume = []DayVolume{
		{Day: "Mon", Calls: 12, Appointments: 8},
		{Day: "Tue", Calls: 15, Appointments: 10},
		{Day: "Wed", Calls: 18, Appointments: 12},
		{Day: "Thu", Calls: 14, Appointments: 9},
		{Day: "Fri", Calls: 20, Appointments: 15},
		{Day: "Sat", Calls: 8, Appointments: 6},
		{Day: "Sun", Calls: 5, Appointments: 3},
	}
	sampleLeadSources = []LeadSource{
		{Name: "Direct Calls", Value: 45},
		{Name: "Referrals", Value: 25},
		{Name: "Online", Value: 20},
		{Name: "Other", Value: 10},
	}
)

// Service aggregates the dashboard overview. Headline lead counts come
// from the lead store; call series are sample data.
type Service struct {
	leads portlead.Repository
}

func NewService(leads portlead.Repository) *Service {
	return &Service{leads: leads}
}

func (s *Service) Overview(ctx context.Context) (Overview, error) {
	leads, err := s.leads.List(ctx, domainlead.ListFilters{})
	if err != nil {
		return Overview{}, fmt.Errorf("list leads: %w", err)
	}

	var stats Stats
	for _, v := range sampleCallVolume {
		stats.TotalCalls += v.Calls
		stats.AppointmentsBooked += v.Appointments
	}

	converted := 0
	for _, l := range leads {
		if l.Status == domainlead.StatusNew {
			stats.NewLeads++
		}
		if l.Status == domainlead.StatusConverted {
			converted++
		}
	}
	if len(leads) > 0 {
		stats.ConversionRate = float64(converted) / float64(len(leads))
	}

	return Overview{
		Stats:       stats,
		CallVolume:  sampleCallVolume,
		LeadSources: sampleLeadSources,
	}, nil
}

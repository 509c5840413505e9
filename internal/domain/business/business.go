package business

import (
	"fmt"
	"regexp"
	"strings"
)

// Weekdays orders the schedule Monday-first, matching the setup form.
var Weekdays = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ServiceCatalog is the fixed set of selectable service labels.
var ServiceCatalog = []string{
	"Consultation",
	"Appointment Booking",
	"Price Quotes",
	"Service Information",
	"Emergency Services",
	"Follow-up Calls",
}

var timeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// DaySchedule is one weekday's opening hours. Start and End are "HH:MM"
// 24-hour strings and are only meaningful when Open is true.
type DaySchedule struct {
	Open  bool   `json:"open"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeekSchedule holds exactly seven entries, indexed per Weekdays.
type WeekSchedule [7]DaySchedule

// DefaultWeek returns the setup form defaults: weekdays 09:00-17:00
// open, weekend 10:00-15:00 closed.
func DefaultWeek() WeekSchedule {
	var w WeekSchedule
	for i := 0; i < 5; i++ {
		w[i] = DaySchedule{Open: true, Start: "09:00", End: "17:00"}
	}
	w[5] = DaySchedule{Open: false, Start: "10:00", End: "15:00"}
	w[6] = DaySchedule{Open: false, Start: "10:00", End: "15:00"}
	return w
}

// Lines renders the schedule as seven human-readable lines, e.g.
// "Monday: 09:00 - 17:00" or "Sunday: Closed".
func (w WeekSchedule) Lines() []string {
	lines := make([]string, 7)
	for i, day := range w {
		if day.Open {
			lines[i] = fmt.Sprintf("%s: %s - %s", Weekdays[i], day.Start, day.End)
		} else {
			lines[i] = fmt.Sprintf("%s: Closed", Weekdays[i])
		}
	}
	return lines
}

// Profile is the structured description of a business that drives
// receptionist script generation. Held in memory only.
type Profile struct {
	Name                string       `json:"business_name"`
	Type                string       `json:"business_type"`
	PhoneNumber         string       `json:"phone_number"`
	Email               string       `json:"email"`
	Address             string       `json:"address"`
	Pricing             string       `json:"pricing"`
	WorkingHours        WeekSchedule `json:"working_hours"`
	Services            []string     `json:"services"`
	SpecialInstructions string       `json:"special_instructions"`
}

// Validate enforces the boundary invariants: name and type are
// required, open days carry well-formed HH:MM times, and services are
// drawn from the catalog without duplicates. Everything else may be
// empty.
func (p Profile) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("business name is required")
	}
	if strings.TrimSpace(p.Type) == "" {
		return fmt.Errorf("business type is required")
	}
	for i, day := range p.WorkingHours {
		if !day.Open {
			continue
		}
		if !timeRe.MatchString(day.Start) || !timeRe.MatchString(day.End) {
			return fmt.Errorf("%s: times must be HH:MM", Weekdays[i])
		}
	}
	seen := make(map[string]bool, len(p.Services))
	for _, svc := range p.Services {
		if !inCatalog(svc) {
			return fmt.Errorf("unknown service %q", svc)
		}
		if seen[svc] {
			return fmt.Errorf("duplicate service %q", svc)
		}
		seen[svc] = true
	}
	return nil
}

func inCatalog(svc string) bool {
	for _, s := range ServiceCatalog {
		if s == svc {
			return true
		}
	}
	return false
}

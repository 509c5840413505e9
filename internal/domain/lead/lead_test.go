package lead_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hellolead/hello-lead/internal/domain/lead"
)

func TestStatus_Valid(t *testing.T) {
	for _, s := range []lead.Status{
		lead.StatusNew, lead.StatusContacted, lead.StatusAppointment,
		lead.StatusConverted, lead.StatusLost,
	} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, lead.Status("archived").Valid())
}

func TestLead_Matches(t *testing.T) {
	l := lead.Lead{
		Name:     "John Doe",
		Phone:    "+1 (555) 123-4567",
		Email:    "john.doe@email.com",
		Status:   lead.StatusNew,
		Interest: "Dental cleaning appointment",
	}

	assert.True(t, l.Matches(lead.ListFilters{}))
	assert.True(t, l.Matches(lead.ListFilters{Search: "john"}))
	assert.True(t, l.Matches(lead.ListFilters{Search: "DENTAL"}))
	assert.True(t, l.Matches(lead.ListFilters{Search: "555"}))
	assert.False(t, l.Matches(lead.ListFilters{Search: "plumbing"}))

	converted := lead.StatusConverted
	assert.False(t, l.Matches(lead.ListFilters{Status: &converted}))

	isNew := lead.StatusNew
	assert.True(t, l.Matches(lead.ListFilters{Status: &isNew, Search: "doe"}))
	assert.False(t, l.Matches(lead.ListFilters{Status: &isNew, Search: "nope"}))
}

func TestLead_Summary(t *testing.T) {
	l := lead.Lead{Name: "Sarah Smith", Interest: "Legal consult", CallDuration: "5:20", Status: lead.StatusAppointment}
	s := l.Summary()
	assert.Equal(t, "Sarah Smith", s.Name)
	assert.Equal(t, "Legal consult", s.Interest)
	assert.Equal(t, "5:20", s.CallDuration)
	assert.Equal(t, lead.StatusAppointment, s.Status)
}

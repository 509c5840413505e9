package lead_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellolead/hello-lead/internal/adapter/memory"
	"github.com/hellolead/hello-lead/internal/domain/event"
	domainlead "github.com/hellolead/hello-lead/internal/domain/lead"
	leadsvc "github.com/hellolead/hello-lead/internal/service/lead"
	"github.com/hellolead/hello-lead/internal/testutil"
)

func newLeadSvc(seed []domainlead.Lead) (*leadsvc.Service, *testutil.FakeGenerator, *testutil.CaptureBus) {
	gen := &testutil.FakeGenerator{}
	bus := &testutil.CaptureBus{}
	return leadsvc.NewService(memory.NewLeadStore(seed), gen, bus), gen, bus
}

func TestList_Filters(t *testing.T) {
	svc, _, _ := newLeadSvc(memory.SampleLeads())

	status := domainlead.StatusNew
	leads, err := svc.List(context.Background(), domainlead.ListFilters{Status: &status})
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, "John Doe", leads[0].Name)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	seed := memory.SampleLeads()
	svc, _, bus := newLeadSvc(seed)

	_, err := svc.UpdateStatus(context.Background(), seed[0].ID, domainlead.Status("archived"))
	require.Error(t, err)
	assert.Empty(t, bus.Events)
}

func TestUpdateStatus_PublishesEvent(t *testing.T) {
	seed := memory.SampleLeads()
	svc, _, bus := newLeadSvc(seed)

	l, err := svc.UpdateStatus(context.Background(), seed[0].ID, domainlead.StatusContacted)
	require.NoError(t, err)
	assert.Equal(t, domainlead.StatusContacted, l.Status)

	events := bus.OfType(event.TypeLeadUpdated)
	require.Len(t, events, 1)
	assert.Equal(t, seed[0].ID.String(), events[0].EntityID)
}

func TestFollowUpQuestions(t *testing.T) {
	seed := memory.SampleLeads()
	svc, gen, _ := newLeadSvc(seed)
	gen.QuestionsResult = []string{"q1", "q2"}

	questions, err := svc.FollowUpQuestions(context.Background(), seed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q2"}, questions)
	assert.Equal(t, 1, gen.QuestionsCalls)
}

func TestFollowUpQuestions_UnknownLead(t *testing.T) {
	svc, gen, _ := newLeadSvc(nil)

	_, err := svc.FollowUpQuestions(context.Background(), uuid.New())
	assert.ErrorIs(t, err, memory.ErrNotFound)
	assert.Zero(t, gen.QuestionsCalls)
}

func TestSummarizeCall(t *testing.T) {
	svc, gen, _ := newLeadSvc(nil)
	gen.SummaryResult = "short summary"

	got, err := svc.SummarizeCall(context.Background(), "caller said hi")
	require.NoError(t, err)
	assert.Equal(t, "short summary", got)
	assert.Equal(t, "caller said hi", gen.LastSummaryIn)
}

func TestSummarizeCall_EmptyTranscript(t *testing.T) {
	svc, gen, _ := newLeadSvc(nil)

	_, err := svc.SummarizeCall(context.Background(), "")
	require.Error(t, err)
	assert.Zero(t, gen.SummaryCalls)
}

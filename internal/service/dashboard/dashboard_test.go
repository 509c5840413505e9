package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellolead/hello-lead/internal/adapter/memory"
	dashboardsvc "github.com/hellolead/hello-lead/internal/service/dashboard"
)

func TestOverview(t *testing.T) {
	svc := dashboardsvc.NewService(memory.NewLeadStore(memory.SampleLeads()))

	o, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 92, o.Stats.TotalCalls)
	assert.Equal(t, 63, o.Stats.AppointmentsBooked)
	assert.Equal(t, 1, o.Stats.NewLeads)
	assert.InDelta(t, 0.25, o.Stats.ConversionRate, 1e-9)

	require.Len(t, o.CallVolume, 7)
	assert.Equal(t, "Mon", o.CallVolume[0].Day)
	require.Len(t, o.LeadSources, 4)
}

func TestOverview_NoLeads(t *testing.T) {
	svc := dashboardsvc.NewService(memory.NewLeadStore(nil))

	o, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Zero(t, o.Stats.NewLeads)
	assert.Zero(t, o.Stats.ConversionRate)
}

package lead_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellolead/hello-lead/internal/adapter/memory"
	domainlead "github.com/hellolead/hello-lead/internal/domain/lead"
	leadsvc "github.com/hellolead/hello-lead/internal/service/lead"
	"github.com/hellolead/hello-lead/internal/testutil"
	transportlead "github.com/hellolead/hello-lead/internal/transport/lead"
	"github.com/hellolead/hello-lead/internal/upstream"
)

func init() { gin.SetMode(gin.TestMode) }

func newRouter(seed []domainlead.Lead, gen *testutil.FakeGenerator) *gin.Engine {
	svc := leadsvc.NewService(memory.NewLeadStore(seed), gen, &testutil.CaptureBus{})
	r := gin.New()
	transportlead.Register(r.Group("/leads"), svc)
	return r
}

func TestListLeads_StatusAndSearch(t *testing.T) {
	r := newRouter(memory.SampleLeads(), &testutil.FakeGenerator{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/leads?status=converted", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got []domainlead.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Lisa Brown", got[0].Name)

	w = httptest.NewRecorder()
	req, _ = http.NewRequestWithContext(context.Background(), http.MethodGet, "/leads?q=renovation", nil)
	r.ServeHTTP(w, req)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Mike Johnson", got[0].Name)
}

func TestListLeads_InvalidStatus(t *testing.T) {
	r := newRouter(nil, &testutil.FakeGenerator{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/leads?status=archived", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateLeadStatus(t *testing.T) {
	seed := memory.SampleLeads()
	r := newRouter(seed, &testutil.FakeGenerator{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPatch,
		"/leads/"+seed[0].ID.String()+"/status", bytes.NewReader([]byte(`{"status":"contacted"}`)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got domainlead.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, domainlead.StatusContacted, got.Status)
}

func TestUpdateLeadStatus_NotFound(t *testing.T) {
	r := newRouter(nil, &testutil.FakeGenerator{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPatch,
		"/leads/"+uuid.NewString()+"/status", bytes.NewReader([]byte(`{"status":"contacted"}`)))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFollowUps(t *testing.T) {
	seed := memory.SampleLeads()
	gen := &testutil.FakeGenerator{QuestionsResult: []string{"q1", "q2"}}
	r := newRouter(seed, gen)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost,
		"/leads/"+seed[0].ID.String()+"/follow-ups", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Questions []string `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"q1", "q2"}, got.Questions)
}

func TestFollowUps_UpstreamFailure(t *testing.T) {
	seed := memory.SampleLeads()
	gen := &testutil.FakeGenerator{QuestionsErr: &upstream.StatusError{Service: "Gemini", StatusCode: 503, Status: "503 Service Unavailable"}}
	r := newRouter(seed, gen)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost,
		"/leads/"+seed[0].ID.String()+"/follow-ups", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

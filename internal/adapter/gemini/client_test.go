package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellolead/hello-lead/internal/adapter/gemini"
	"github.com/hellolead/hello-lead/internal/domain/business"
	"github.com/hellolead/hello-lead/internal/domain/lead"
	"github.com/hellolead/hello-lead/internal/upstream"
)

// fakeUpstream captures every request and replays a canned response.
type fakeUpstream struct {
	status   int
	text     string
	rawBody  string
	requests []capturedRequest
}

type capturedRequest struct {
	query string
	body  map[string]any
}

func (f *fakeUpstream) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		var body map[string]any
		_ = json.Unmarshal(data, &body)
		f.requests = append(f.requests, capturedRequest{query: r.URL.RawQuery, body: body})

		if f.status != 0 && (f.status < 200 || f.status > 299) {
			w.WriteHeader(f.status)
			return
		}
		if f.rawBody != "" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(f.rawBody))
			return
		}
		resp := map[string]any{
			"candidates": []any{
				map[string]any{
					"content": map[string]any{
						"parts": []any{map[string]any{"text": f.text}},
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func newClient(t *testing.T, up *fakeUpstream) *gemini.Client {
	t.Helper()
	srv := httptest.NewServer(up.handler())
	t.Cleanup(srv.Close)
	c, err := gemini.New("test-key", gemini.WithBaseURL(srv.URL))
	require.NoError(t, err)
	return c
}

func testProfile() business.Profile {
	return business.Profile{
		Name:         "Bright Smile Dental",
		Type:         "Dental Clinic",
		PhoneNumber:  "+1 (555) 000-1111",
		Email:        "hello@brightsmile.example",
		Address:      "12 Main St",
		Pricing:      "Cleanings from $90",
		WorkingHours: business.DefaultWeek(),
		Services:     []string{"Consultation", "Appointment Booking"},
	}
}

func TestNew_EmptyKey(t *testing.T) {
	_, err := gemini.New("")
	var credErr *upstream.CredentialError
	require.ErrorAs(t, err, &credErr)
	assert.Equal(t, "GEMINI_API_KEY", credErr.Name)
}

func TestGeneratePrompt_DelimiterProtocol(t *testing.T) {
	up := &fakeUpstream{text: strings.Join([]string{
		"You are the receptionist for Bright Smile Dental.",
		"Greet every caller warmly.",
		"---SUGGESTIONS---",
		"- Mention weekend availability",
		"- Offer new-patient discounts",
		"- Confirm insurance up front",
	}, "\n")}
	c := newClient(t, up)

	got, err := c.GeneratePrompt(context.Background(), testProfile())
	require.NoError(t, err)

	assert.Equal(t, "You are the receptionist for Bright Smile Dental.\nGreet every caller warmly.", got.Prompt)
	assert.Equal(t, []string{
		"Mention weekend availability",
		"Offer new-patient discounts",
		"Confirm insurance up front",
	}, got.Suggestions)
	assert.InDelta(t, 0.9, got.Confidence, 1e-9)
	assert.NotContains(t, got.Prompt, "---SUGGESTIONS---")
}

func TestGeneratePrompt_PositionalFallback(t *testing.T) {
	// No marker line: 5 body lines followed by 5 bullet lines.
	up := &fakeUpstream{text: strings.Join([]string{
		"line one",
		"line two",
		"line three",
		"line four",
		"line five",
		"- first",
		"- second",
		"- third",
		"- fourth",
		"- fifth",
	}, "\n")}
	c := newClient(t, up)

	got, err := c.GeneratePrompt(context.Background(), testProfile())
	require.NoError(t, err)

	assert.Equal(t, "line one\nline two\nline three\nline four\nline five", got.Prompt)
	require.Len(t, got.Suggestions, 5)
	assert.Equal(t, []string{"first", "second", "third", "fourth", "fifth"}, got.Suggestions)
}

func TestGeneratePrompt_OneRequest(t *testing.T) {
	up := &fakeUpstream{text: "body\n---SUGGESTIONS---\n- one"}
	c := newClient(t, up)

	_, err := c.GeneratePrompt(context.Background(), testProfile())
	require.NoError(t, err)
	require.Len(t, up.requests, 1)

	req := up.requests[0]
	assert.Equal(t, "key=test-key", req.query)

	genCfg, ok := req.body["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 0.7, genCfg["temperature"], 1e-9)
	assert.InDelta(t, 40, genCfg["topK"], 1e-9)
	assert.InDelta(t, 0.95, genCfg["topP"], 1e-9)
	assert.InDelta(t, 2048, genCfg["maxOutputTokens"], 1e-9)

	contents := req.body["contents"].([]any)
	part := contents[0].(map[string]any)["parts"].([]any)[0].(map[string]any)
	doc := part["text"].(string)
	assert.Contains(t, doc, "Bright Smile Dental")
	assert.Contains(t, doc, "Monday: 09:00 - 17:00")
	assert.Contains(t, doc, "Saturday: Closed")
	assert.Contains(t, doc, "Consultation, Appointment Booking")
	assert.Contains(t, doc, "Greet callers warmly")
}

func TestGeneratePrompt_UpstreamError(t *testing.T) {
	up := &fakeUpstream{status: http.StatusServiceUnavailable}
	c := newClient(t, up)

	_, err := c.GeneratePrompt(context.Background(), testProfile())
	var statusErr *upstream.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Equal(t, "Gemini", statusErr.Service)
}

func TestGeneratePrompt_NoCandidates(t *testing.T) {
	up := &fakeUpstream{rawBody: `{"candidates":[]}`}
	c := newClient(t, up)

	_, err := c.GeneratePrompt(context.Background(), testProfile())
	var decErr *upstream.DecodeError
	require.ErrorAs(t, err, &decErr)
}

func TestFollowUpQuestions_KeepsBulletsOnly(t *testing.T) {
	up := &fakeUpstream{text: strings.Join([]string{
		"Here are some questions:",
		"- What is your budget?",
		"* When would you like to start?",
		"ignore me",
		"  - Have you worked with a similar provider before?",
	}, "\n")}
	c := newClient(t, up)

	got, err := c.FollowUpQuestions(context.Background(), lead.Summary{Name: "John Doe", Interest: "Dental cleaning", CallDuration: "3:45", Status: "new"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"What is your budget?",
		"When would you like to start?",
		"Have you worked with a similar provider before?",
	}, got)

	genCfg := up.requests[0].body["generationConfig"].(map[string]any)
	assert.InDelta(t, 0.8, genCfg["temperature"], 1e-9)
	assert.InDelta(t, 500, genCfg["maxOutputTokens"], 1e-9)
}

func TestCallSummary_RawText(t *testing.T) {
	up := &fakeUpstream{text: "Caller asked about pricing.\nFollow up next week."}
	c := newClient(t, up)

	got, err := c.CallSummary(context.Background(), "hello, how much is a cleaning?")
	require.NoError(t, err)
	assert.Equal(t, "Caller asked about pricing.\nFollow up next week.", got)

	genCfg := up.requests[0].body["generationConfig"].(map[string]any)
	assert.InDelta(t, 0.5, genCfg["temperature"], 1e-9)
	assert.InDelta(t, 300, genCfg["maxOutputTokens"], 1e-9)
}

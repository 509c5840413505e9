// Package vapi is a client for the Vapi voice platform assistant API:
// create, list, patch and delete assistants, plus call-log reads. Every
// operation is a single blocking round trip with no retries or caching.
package vapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/hellolead/hello-lead/internal/config"
	"github.com/hellolead/hello-lead/internal/domain/voiceagent"
	portprovisioner "github.com/hellolead/hello-lead/internal/port/provisioner"
	"github.com/hellolead/hello-lead/internal/upstream"
)

const defaultBaseURL = "https://api.vapi.ai"

// firstMessage is the fixed opening utterance for every new assistant.
const firstMessage = "Hello! Thank you for calling. I'm your AI receptionist. How can I help you today?"

var _ portprovisioner.Provisioner = (*Client)(nil)

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	voice config.Voice
	model config.Model
}

type Option func(*Client)

// WithBaseURL overrides the endpoint, for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the transport, for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New builds a client using the configured default voice and model for
// assistant creation.
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg.VapiAPIKey == "" {
		return nil, &upstream.CredentialError{Name: "VAPI_API_KEY"}
	}
	c := &Client{
		apiKey:     cfg.VapiAPIKey,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		voice:      cfg.DefaultVoice,
		model:      cfg.DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ── Wire types ────────────────────────────────────────────────────────

type modelBlock struct {
	Provider     string  `json:"provider"`
	Model        string  `json:"model"`
	Temperature  float64 `json:"temperature"`
	SystemPrompt string  `json:"systemPrompt"`
}

type voiceBlock struct {
	Provider string `json:"provider"`
	VoiceID  string `json:"voiceId"`
}

type metadataBlock struct {
	BusinessName string   `json:"businessName"`
	BusinessType string   `json:"businessType"`
	Services     []string `json:"services"`
	Pricing      string   `json:"pricing"`
}

type createAssistantRequest struct {
	Name             string        `json:"name"`
	Prompt           string        `json:"prompt"`
	PhoneNumber      string        `json:"phoneNumber"`
	Model            modelBlock    `json:"model"`
	Voice            voiceBlock    `json:"voice"`
	FirstMessage     string        `json:"firstMessage"`
	RecordingEnabled bool          `json:"recordingEnabled"`
	Metadata         metadataBlock `json:"metadata"`
}

// do issues one request and decodes the 2xx response into out (skipped
// when out is nil).
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call Vapi: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &upstream.StatusError{Service: "Vapi", StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &upstream.DecodeError{Service: "Vapi", Msg: err.Error()}
	}
	return nil
}

// CreateAgent provisions a new assistant. The generated prompt rides
// both as the top-level prompt and as the model's system prompt; the
// metadata block carries the business profile for the platform's own
// bookkeeping.
func (c *Client) CreateAgent(ctx context.Context, params voiceagent.CreateParams) (voiceagent.Agent, error) {
	reqBody := createAssistantRequest{
		Name:        params.Name,
		Prompt:      params.Prompt,
		PhoneNumber: params.PhoneNumber,
		Model: modelBlock{
			Provider:     c.model.Provider,
			Model:        c.model.Model,
			Temperature:  c.model.Temperature,
			SystemPrompt: params.Prompt,
		},
		Voice: voiceBlock{
			Provider: c.voice.Provider,
			VoiceID:  c.voice.VoiceID,
		},
		FirstMessage:     firstMessage,
		RecordingEnabled: true,
		Metadata: metadataBlock{
			BusinessName: params.Profile.Name,
			BusinessType: params.Profile.Type,
			Services:     params.Profile.Services,
			Pricing:      params.Profile.Pricing,
		},
	}

	var agent voiceagent.Agent
	if err := c.do(ctx, http.MethodPost, "/assistant", reqBody, &agent); err != nil {
		return voiceagent.Agent{}, err
	}
	return agent, nil
}

// ListAgents returns all assistants in one page; the platform is
// assumed to return the complete set.
func (c *Client) ListAgents(ctx context.Context) ([]voiceagent.Agent, error) {
	var agents []voiceagent.Agent
	if err := c.do(ctx, http.MethodGet, "/assistant", nil, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// UpdateAgent patches only the fields set on upd; merge semantics are
// the platform's.
func (c *Client) UpdateAgent(ctx context.Context, id string, upd voiceagent.Update) (voiceagent.Agent, error) {
	var agent voiceagent.Agent
	if err := c.do(ctx, http.MethodPatch, "/assistant/"+url.PathEscape(id), upd, &agent); err != nil {
		return voiceagent.Agent{}, err
	}
	return agent, nil
}

// DeleteAgent removes the assistant. Double-delete behaviour is
// whatever the platform defines.
func (c *Client) DeleteAgent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/assistant/"+url.PathEscape(id), nil, nil)
}

// CallLogs reads call records, scoped by assistantId when provided.
func (c *Client) CallLogs(ctx context.Context, assistantID string) ([]voiceagent.CallLog, error) {
	path := "/call"
	if assistantID != "" {
		path += "?assistantId=" + url.QueryEscape(assistantID)
	}

	var logs []voiceagent.CallLog
	if err := c.do(ctx, http.MethodGet, path, nil, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

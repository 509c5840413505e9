// Package gemini is a client for the Google Gemini generateContent
// endpoint, used to write receptionist scripts, follow-up questions and
// call summaries. One blocking request per operation, no retries.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/hellolead/hello-lead/internal/domain/business"
	"github.com/hellolead/hello-lead/internal/domain/lead"
	"github.com/hellolead/hello-lead/internal/domain/prompt"
	portpromptgen "github.com/hellolead/hello-lead/internal/port/promptgen"
	"github.com/hellolead/hello-lead/internal/upstream"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

var _ portpromptgen.Generator = (*Client)(nil)

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client

	// Decode order: the delimiter protocol requested in the instruction
	// document first, the legacy last-5-lines heuristic as fallback.
	decoders []decoder
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

func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &upstream.CredentialError{Name: "GEMINI_API_KEY"}
	}
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		decoders: []decoder{
			delimiterDecoder{marker: suggestionsMarker},
			positionalDecoder{trailing: 5},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ── Wire types ────────────────────────────────────────────────────────

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK,omitempty"`
	TopP            float64 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generate performs one generateContent round trip and returns the
// candidate text.
func (c *Client) generate(ctx context.Context, text string, cfg generationConfig) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: text}}}},
		GenerationConfig: cfg,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"?key="+c.apiKey, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call Gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &upstream.StatusError{Service: "Gemini", StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &upstream.DecodeError{Service: "Gemini", Msg: err.Error()}
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", &upstream.DecodeError{Service: "Gemini", Msg: "no candidate text"}
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// GeneratePrompt builds the instruction document for the profile and
// splits the response into script body and improvement suggestions.
func (c *Client) GeneratePrompt(ctx context.Context, p business.Profile) (prompt.Generated, error) {
	text, err := c.generate(ctx, buildPromptRequest(p), generationConfig{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 2048,
	})
	if err != nil {
		return prompt.Generated{}, err
	}

	for _, d := range c.decoders {
		if dec, ok := d.decode(text); ok {
			return prompt.Generated{
				Prompt:      dec.body,
				Suggestions: dec.suggestions,
				Confidence:  prompt.WellFormedConfidence,
			}, nil
		}
	}
	// The positional decoder always accepts, so this is unreachable in
	// practice; kept so adding stricter decoders stays safe.
	return prompt.Generated{}, &upstream.DecodeError{Service: "Gemini", Msg: "undecodable response"}
}

// FollowUpQuestions asks for lead-qualification questions and keeps
// only the bullet lines, markers stripped.
func (c *Client) FollowUpQuestions(ctx context.Context, s lead.Summary) ([]string, error) {
	text, err := c.generate(ctx, buildFollowUpRequest(s), generationConfig{
		Temperature:     0.8,
		MaxOutputTokens: 500,
	})
	if err != nil {
		return nil, err
	}

	var questions []string
	for _, line := range strings.Split(text, "\n") {
		if q, ok := cleanBullet(line); ok {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

// CallSummary returns the raw model output for a transcript, untouched.
func (c *Client) CallSummary(ctx context.Context, transcript string) (string, error) {
	return c.generate(ctx, buildSummaryRequest(transcript), generationConfig{
		Temperature:     0.5,
		MaxOutputTokens: 300,
	})
}

// ── Instruction documents ─────────────────────────────────────────────

func buildPromptRequest(p business.Profile) string {
	var b strings.Builder
	b.WriteString("You are an AI assistant helping to create a professional receptionist prompt for a business.\n\n")
	b.WriteString("Business Details:\n")
	fmt.Fprintf(&b, "- Business Name: %s\n", p.Name)
	fmt.Fprintf(&b, "- Business Type: %s\n", p.Type)
	fmt.Fprintf(&b, "- Phone: %s\n", p.PhoneNumber)
	fmt.Fprintf(&b, "- Email: %s\n", p.Email)
	fmt.Fprintf(&b, "- Address: %s\n", p.Address)
	fmt.Fprintf(&b, "- Pricing: %s\n", p.Pricing)
	b.WriteString("\nWorking Hours:\n")
	b.WriteString(strings.Join(p.WorkingHours.Lines(), "\n"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Services Offered: %s\n\n", strings.Join(p.Services, ", "))
	fmt.Fprintf(&b, "Special Instructions: %s\n\n", p.SpecialInstructions)
	b.WriteString(`Please create a comprehensive, professional prompt for an AI receptionist that will:
1. Greet callers warmly and professionally
2. Collect their name and contact information
3. Understand their needs and questions
4. Provide relevant information about services and pricing
5. Book appointments when requested
6. Take detailed messages for follow-up
7. Be polite, helpful, and professional at all times
8. Handle common objections gracefully
9. Always ask for the caller's name and phone number for follow-up purposes

The prompt should be conversational, professional, and specific to this business type. Include specific details about their services and pricing when relevant.

After the prompt, output a line containing exactly `)
	b.WriteString(suggestionsMarker)
	b.WriteString(", then 3-5 suggestions for improving the prompt based on the business type and services, one per line, each starting with \"- \".")
	return b.String()
}

func buildFollowUpRequest(s lead.Summary) string {
	return fmt.Sprintf(`Based on this lead information, generate 3-5 follow-up questions that would be helpful for a business to ask:

Lead Information:
- Name: %s
- Interest: %s
- Call Duration: %s
- Status: %s

Generate professional, specific questions that would help qualify this lead and move them toward conversion. Output one question per line, each starting with "- ".`,
		s.Name, s.Interest, s.CallDuration, s.Status)
}

func buildSummaryRequest(transcript string) string {
	return fmt.Sprintf(`Please provide a concise summary of this call transcript, highlighting:
1. Key points discussed
2. Customer needs identified
3. Actions required
4. Follow-up needed

Transcript:
%s

Provide a professional, structured summary.`, transcript)
}

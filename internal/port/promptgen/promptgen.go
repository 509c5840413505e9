package promptgen

import (
	"context"

	"github.com/hellolead/hello-lead/internal/domain/business"
	"github.com/hellolead/hello-lead/internal/domain/lead"
	"github.com/hellolead/hello-lead/internal/domain/prompt"
)

// Generator turns business and lead data into receptionist text via an
// external language model. Implementations issue exactly one blocking
// request per call and never retry.
type Generator interface {
	// GeneratePrompt builds the instruction document for the profile,
	// submits it, and splits the response into script and suggestions.
	GeneratePrompt(ctx context.Context, p business.Profile) (prompt.Generated, error)

	// FollowUpQuestions returns cleaned bullet lines suggesting how to
	// qualify the lead. Non-bullet lines are dropped.
	FollowUpQuestions(ctx context.Context, s lead.Summary) ([]string, error)

	// CallSummary returns the raw model output for a transcript
	// summarisation request, without post-processing.
	CallSummary(ctx context.Context, transcript string) (string, error)
}

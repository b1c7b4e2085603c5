// Package llm produces coaching replies: it builds the coaching prompt from
// the analysis pipeline's output, calls the configured Gemini model, and
// provides a deterministic fallback coach for when no model is available.
package llm

import (
	"context"

	"fricoach/internal/model"
)

// Generator turns a fully assembled prompt into a coaching reply.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// PromptInput bundles everything the prompt builder and fallback coach need
// for one coaching turn.
type PromptInput struct {
	Profile model.CustomerProfile
	Message string
	Stress  model.StressAnalysis
	FRI     model.FRIResult
	Cases   []model.ScoredCase
}

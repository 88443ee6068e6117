// Package genai builds prompts for, invokes and parses responses from
// the generative-AI boundary.
package genai

import (
	"context"

	"github.com/appforge/appforge/pkg/models"
)

// Client defines the generation operations the workspace depends on.
// Use this interface for dependency injection to enable mocking in
// tests.
type Client interface {
	// Generate creates a new project from a natural-language prompt, a
	// framework and a set of selected feature ids.
	Generate(ctx context.Context, prompt string, framework models.Framework, featureIDs []string) (*models.GeneratedProject, error)

	// Modify applies a free-text instruction to an existing project and
	// returns the updated project. ID, Prompt, Framework and Name are
	// preserved from the original unconditionally.
	Modify(ctx context.Context, instruction string, project *models.GeneratedProject) (*models.GeneratedProject, error)
}

// Ensure OpenAIClient implements Client at compile time.
var _ Client = (*OpenAIClient)(nil)

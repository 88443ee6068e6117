package genai

import (
	"context"

	"github.com/appforge/appforge/pkg/models"
)

// MockClient is a configurable mock for testing generation flows.
// Set the function fields to control behavior in tests.
type MockClient struct {
	// GenerateFunc is called when Generate is invoked.
	// If nil, returns nil project and nil error.
	GenerateFunc func(ctx context.Context, prompt string, framework models.Framework, featureIDs []string) (*models.GeneratedProject, error)

	// ModifyFunc is called when Modify is invoked.
	// If nil, returns the project unchanged and nil error.
	ModifyFunc func(ctx context.Context, instruction string, project *models.GeneratedProject) (*models.GeneratedProject, error)

	// Call tracking for verification
	GenerateCalls int
	ModifyCalls   int
}

// Generate implements Client.
func (m *MockClient) Generate(ctx context.Context, prompt string, framework models.Framework, featureIDs []string) (*models.GeneratedProject, error) {
	m.GenerateCalls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, framework, featureIDs)
	}
	return nil, nil
}

// Modify implements Client.
func (m *MockClient) Modify(ctx context.Context, instruction string, project *models.GeneratedProject) (*models.GeneratedProject, error) {
	m.ModifyCalls++
	if m.ModifyFunc != nil {
		return m.ModifyFunc(ctx, instruction, project)
	}
	return project, nil
}

// Ensure MockClient implements Client at compile time.
var _ Client = (*MockClient)(nil)

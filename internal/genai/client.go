package genai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/appforge/appforge/pkg/models"
)

// Config holds configuration for creating a generation client.
type Config struct {
	Endpoint    string // Base URL, e.g. "https://api.openai.com/v1"
	Model       string // Model name, e.g. "gpt-4o"
	APIKey      string // Optional for local endpoints
	Temperature float64
}

// OpenAIClient talks to an OpenAI-compatible chat-completions endpoint
// and requests structured JSON responses.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
	logger      *zap.Logger
}

// NewOpenAIClient creates a generation client.
func NewOpenAIClient(cfg *Config, logger *zap.Logger) (*OpenAIClient, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = strings.TrimSuffix(cfg.Endpoint, "/")

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		temperature: float32(cfg.Temperature),
		logger:      logger.Named("genai"),
	}, nil
}

// Generate implements Client.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string, framework models.Framework, featureIDs []string) (*models.GeneratedProject, error) {
	payload, err := c.completeProject(ctx, BuildGeneratePrompt(prompt, framework, featureIDs))
	if err != nil {
		return nil, &GenerationError{Cause: err}
	}

	files := payload.fileMap()
	if len(files) == 0 {
		return nil, &GenerationError{Cause: errors.New("model returned no files")}
	}

	return &models.GeneratedProject{
		ID:            newProjectID(),
		Name:          DeriveName(prompt),
		Prompt:        prompt,
		Framework:     framework,
		Files:         files,
		Dependencies:  payload.Dependencies,
		Explanation:   payload.Explanation,
		BuildCommands: payload.BuildCommands,
		CreatedAt:     time.Now(),
	}, nil
}

// Modify implements Client.
func (c *OpenAIClient) Modify(ctx context.Context, instruction string, project *models.GeneratedProject) (*models.GeneratedProject, error) {
	payload, err := c.completeProject(ctx, BuildModifyPrompt(instruction, project))
	if err != nil {
		return nil, &ModificationError{Cause: err}
	}

	files := payload.fileMap()
	if len(files) == 0 {
		return nil, &ModificationError{Cause: errors.New("model returned no files")}
	}

	updated := *project
	updated.Files = files
	updated.Dependencies = payload.Dependencies
	updated.Explanation = payload.Explanation
	updated.BuildCommands = payload.BuildCommands
	return &updated, nil
}

// completeProject sends one chat-completion request with the strict
// project response schema and parses the result.
func (c *OpenAIClient) completeProject(ctx context.Context, prompt string) (projectPayload, error) {
	c.logger.Debug("generation request",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)))

	start := time.Now()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "generated_project",
				Schema: projectSchema,
				Strict: true,
			},
		},
	})
	if err != nil {
		c.logger.Error("generation request failed",
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return projectPayload{}, err
	}

	if len(resp.Choices) == 0 {
		return projectPayload{}, fmt.Errorf("no choices in response")
	}

	payload, err := ParseJSONResponse[projectPayload](resp.Choices[0].Message.Content)
	if err != nil {
		c.logger.Error("generation response parse failed", zap.Error(err))
		return projectPayload{}, err
	}

	c.logger.Info("generation request completed",
		zap.Int("files", len(payload.Files)),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("elapsed", time.Since(start)))

	return payload, nil
}

// DeriveName derives a project name from the user prompt: prompts
// longer than 50 characters are cut to the first 47 plus an ellipsis.
func DeriveName(prompt string) string {
	runes := []rune(prompt)
	if len(runes) > 50 {
		return string(runes[:47]) + "..."
	}
	return prompt
}

// newProjectID builds an id from the creation time plus randomness,
// stable for the project's lifetime.
func newProjectID() string {
	return fmt.Sprintf("proj-%d-%s", time.Now().UnixMilli(), uuid.New().String()[:8])
}

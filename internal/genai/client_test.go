package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/appforge/appforge/pkg/models"
)

// newTestClient points an OpenAIClient at a server that always
// replies with the given message content.
func newTestClient(t *testing.T, content string) (*OpenAIClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  "test-model",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))

	client, err := NewOpenAIClient(&Config{
		Endpoint: server.URL,
		Model:    "test-model",
		APIKey:   "test-key",
	}, zap.NewNop())
	if err != nil {
		server.Close()
		t.Fatalf("failed to create client: %v", err)
	}
	return client, server
}

const validResponse = `{
	"files": [
		{"path": "index.html", "content": "<html></html>"},
		{"path": "app.py", "content": "print()"}
	],
	"dependencies": ["flask"],
	"explanation": "a small app",
	"build_commands": ["python app.py"]
}`

func TestGenerate_BuildsProject(t *testing.T) {
	client, server := newTestClient(t, validResponse)
	defer server.Close()

	framework := models.Framework{Value: "flask", Label: "Flask"}
	project, err := client.Generate(context.Background(), "Build a blog with comments", framework, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(project.Files) != 2 {
		t.Errorf("expected 2 files, got %d", len(project.Files))
	}
	if project.Files["app.py"] != "print()" {
		t.Error("file content not mapped by path")
	}
	if project.Name != "Build a blog with comments" {
		t.Errorf("name should be the short prompt verbatim, got %q", project.Name)
	}
	if project.Prompt != "Build a blog with comments" {
		t.Error("prompt must be attached verbatim")
	}
	if project.Framework != framework {
		t.Error("framework must be attached verbatim")
	}
	if !strings.HasPrefix(project.ID, "proj-") {
		t.Errorf("unexpected id format: %q", project.ID)
	}
	if project.Explanation != "a small app" {
		t.Errorf("explanation not carried over: %q", project.Explanation)
	}
}

func TestGenerate_EmptyFilesIsFailure(t *testing.T) {
	client, server := newTestClient(t, `{"files": [], "dependencies": [], "explanation": "", "build_commands": []}`)
	defer server.Close()

	_, err := client.Generate(context.Background(), "Build a blog with comments", models.Framework{Label: "Flask"}, nil)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

func TestGenerate_DropsIncompleteFileEntries(t *testing.T) {
	client, server := newTestClient(t, `{
		"files": [
			{"path": "kept.html", "content": "<html></html>"},
			{"path": "", "content": "orphan content"},
			{"path": "no-content.txt", "content": ""}
		],
		"dependencies": [], "explanation": "", "build_commands": []
	}`)
	defer server.Close()

	project, err := client.Generate(context.Background(), "Build a blog with comments", models.Framework{Label: "Flask"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(project.Files) != 1 {
		t.Errorf("expected only complete entries to survive, got %v", project.Files)
	}
	if _, ok := project.Files["kept.html"]; !ok {
		t.Error("complete entry was dropped")
	}
}

func TestGenerate_TransportErrorIsNormalized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client, err := NewOpenAIClient(&Config{Endpoint: server.URL, Model: "test-model"}, zap.NewNop())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	_, err = client.Generate(context.Background(), "Build a blog with comments", models.Framework{Label: "Flask"}, nil)
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if strings.Contains(err.Error(), "429") {
		t.Error("raw cause must not leak into the user-facing message")
	}
}

func TestModify_PreservesIdentity(t *testing.T) {
	client, server := newTestClient(t, `{
		"files": [{"path": "main.go", "content": "package main"}],
		"dependencies": ["chi"],
		"explanation": "switched to Go",
		"build_commands": ["go build"]
	}`)
	defer server.Close()

	original := &models.GeneratedProject{
		ID:            "proj-123-abc",
		Name:          "My project",
		Prompt:        "Build a blog with comments",
		Framework:     models.Framework{Value: "flask", Label: "Flask"},
		Files:         map[string]string{"app.py": "print()"},
		Dependencies:  []string{"flask"},
		BuildCommands: []string{"python app.py"},
	}

	updated, err := client.Modify(context.Background(), "rewrite it in Go", original)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.ID != original.ID || updated.Prompt != original.Prompt ||
		updated.Framework != original.Framework || updated.Name != original.Name {
		t.Error("id, prompt, framework and name must be preserved")
	}
	if _, ok := updated.Files["main.go"]; !ok {
		t.Error("files must be replaced wholesale from the response")
	}
	if len(updated.Dependencies) != 1 || updated.Dependencies[0] != "chi" {
		t.Errorf("dependencies not replaced: %v", updated.Dependencies)
	}
	// the original value must be untouched
	if _, ok := original.Files["main.go"]; ok {
		t.Error("Modify must not mutate the input project")
	}
}

func TestModify_EmptyFilesIsFailure(t *testing.T) {
	client, server := newTestClient(t, `{"files": [], "dependencies": [], "explanation": "", "build_commands": []}`)
	defer server.Close()

	original := &models.GeneratedProject{
		ID:    "proj-123-abc",
		Files: map[string]string{"app.py": "print()"},
	}

	_, err := client.Modify(context.Background(), "delete everything", original)
	var modErr *ModificationError
	if !errors.As(err, &modErr) {
		t.Fatalf("expected ModificationError, got %v", err)
	}
}

func TestDeriveName(t *testing.T) {
	short := "Build a blog with comments"
	if got := DeriveName(short); got != short {
		t.Errorf("short prompts are used verbatim, got %q", got)
	}

	long := strings.Repeat("a", 60)
	got := DeriveName(long)
	if got != strings.Repeat("a", 47)+"..." {
		t.Errorf("long prompts are truncated to 47 chars plus ellipsis, got %q", got)
	}
}

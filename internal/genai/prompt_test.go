package genai

import (
	"strings"
	"testing"

	"github.com/appforge/appforge/internal/catalog"
	"github.com/appforge/appforge/pkg/models"
)

var testFramework = models.Framework{
	Value: "flask",
	Label: "Flask",
}

func TestBuildGeneratePrompt_EmbedsRequestAndFramework(t *testing.T) {
	prompt := BuildGeneratePrompt("Build a blog with comments", testFramework, nil)

	if !strings.Contains(prompt, "Build a blog with comments") {
		t.Error("user prompt missing from instruction")
	}
	if !strings.Contains(prompt, "Flask") {
		t.Error("framework label missing from instruction")
	}
	if strings.Contains(prompt, "Include the following features") {
		t.Error("feature block should be absent when no features are selected")
	}
}

func TestBuildGeneratePrompt_JoinsFeatureLabels(t *testing.T) {
	prompt := BuildGeneratePrompt("Build a blog with comments", testFramework,
		[]string{"authentication", "rest-api"})

	if !strings.Contains(prompt, "User Authentication, REST API") {
		t.Errorf("feature labels not comma-joined:\n%s", prompt)
	}
}

func TestBuildGeneratePrompt_FrontendBlockIsConditional(t *testing.T) {
	without := BuildGeneratePrompt("Build a blog with comments", testFramework,
		[]string{"authentication"})
	if strings.Contains(without, frontendDesignInstruction) {
		t.Error("frontend design block present without the feature")
	}

	with := BuildGeneratePrompt("Build a blog with comments", testFramework,
		[]string{"authentication", catalog.FeatureClearFrontendDesign})
	if !strings.Contains(with, frontendDesignInstruction) {
		t.Error("frontend design block missing despite the feature")
	}
}

func TestBuildModifyPrompt_ExcludesPromptAndFramework(t *testing.T) {
	project := &models.GeneratedProject{
		ID:        "proj-1",
		Prompt:    "the-original-secret-prompt",
		Framework: models.Framework{Value: "flask", Label: "UniqueFrameworkLabel"},
		Files: map[string]string{
			"app.py": "print()",
		},
		Dependencies:  []string{"flask"},
		BuildCommands: []string{"python app.py"},
	}

	prompt := BuildModifyPrompt("add a search page", project)

	if strings.Contains(prompt, "the-original-secret-prompt") {
		t.Error("original prompt must not be sent with modifications")
	}
	if strings.Contains(prompt, "UniqueFrameworkLabel") {
		t.Error("framework must not be sent with modifications")
	}
	if !strings.Contains(prompt, "app.py") {
		t.Error("current files missing from modification payload")
	}
	if !strings.Contains(prompt, "add a search page") {
		t.Error("instruction missing from modification payload")
	}
	if !strings.Contains(prompt, "ENTIRE updated project") {
		t.Error("full-replacement contract missing")
	}
}

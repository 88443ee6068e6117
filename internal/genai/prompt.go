package genai

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/appforge/appforge/internal/catalog"
	"github.com/appforge/appforge/pkg/models"
)

const systemMessage = `You are an expert full-stack engineer that generates complete, runnable web application projects. You always respond with a single JSON object matching the requested schema, with no markdown fences and no commentary outside the JSON.`

const responseContract = `Respond with a JSON object containing:
- "files": every source file as {"path", "content"} with full file contents
- "dependencies": package names the project depends on
- "explanation": a short description of what was generated
- "build_commands": shell commands to build and run the project
Do not wrap the JSON in markdown.`

const frontendDesignInstruction = `Pay particular attention to the frontend design: produce a clean, modern visual layout with a coherent color palette, consistent spacing and typography, sensible navigation, and polished empty and error states. Every page must look finished, not like a wireframe.`

// BuildGeneratePrompt assembles the natural-language instruction for a
// fresh generation request.
func BuildGeneratePrompt(prompt string, framework models.Framework, featureIDs []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a complete %s web application for the following request:\n\n%s\n", framework.Label, prompt)

	if labels := catalog.FeatureLabels(featureIDs); len(labels) > 0 {
		fmt.Fprintf(&b, "\nInclude the following features: %s.\n", strings.Join(labels, ", "))
	}

	if hasFeature(featureIDs, catalog.FeatureClearFrontendDesign) {
		b.WriteString("\n" + frontendDesignInstruction + "\n")
	}

	b.WriteString("\n" + responseContract)
	return b.String()
}

// modifyState is the project snapshot sent with a modification
// request. Prompt and framework are deliberately excluded to keep the
// payload small.
type modifyState struct {
	Files         []filePayload `json:"files"`
	Dependencies  []string      `json:"dependencies"`
	BuildCommands []string      `json:"build_commands"`
}

// BuildModifyPrompt assembles the instruction for a modification
// request. The entire current file set is embedded and the entire
// updated file set is requested back; no diffing.
func BuildModifyPrompt(instruction string, project *models.GeneratedProject) string {
	state := modifyState{
		Dependencies:  project.Dependencies,
		BuildCommands: project.BuildCommands,
	}

	paths := make([]string, 0, len(project.Files))
	for path := range project.Files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		state.Files = append(state.Files, filePayload{Path: path, Content: project.Files[path]})
	}

	// Marshal of plain strings and string slices cannot fail.
	raw, _ := json.Marshal(state)

	var b strings.Builder
	b.WriteString("Here is the current state of a web application project as JSON:\n\n")
	b.Write(raw)
	fmt.Fprintf(&b, "\n\nApply the following modification:\n\n%s\n", instruction)
	b.WriteString("\nReturn the ENTIRE updated project, including unchanged files, not a diff.\n")
	b.WriteString("\n" + responseContract)
	return b.String()
}

func hasFeature(ids []string, want string) bool {
	for _, id := range ids {
		if id == want {
			return true
		}
	}
	return false
}

package genai

import (
	"github.com/sashabaranov/go-openai/jsonschema"
)

// filePayload is one generated file in the wire format.
type filePayload struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// projectPayload mirrors the JSON object the model must answer with.
// The same shape is used for generation and modification responses.
type projectPayload struct {
	Files         []filePayload `json:"files"`
	Dependencies  []string      `json:"dependencies"`
	Explanation   string        `json:"explanation"`
	BuildCommands []string      `json:"build_commands"`
}

// fileMap flattens the file array into a path -> content mapping.
// Entries missing either path or content are silently dropped.
func (p projectPayload) fileMap() map[string]string {
	files := make(map[string]string, len(p.Files))
	for _, f := range p.Files {
		if f.Path == "" || f.Content == "" {
			continue
		}
		files[f.Path] = f.Content
	}
	return files
}

// projectSchema is the strict response schema sent with every request.
var projectSchema = &jsonschema.Definition{
	Type: jsonschema.Object,
	Properties: map[string]jsonschema.Definition{
		"files": {
			Type: jsonschema.Array,
			Items: &jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"path":    {Type: jsonschema.String, Description: "Relative file path"},
					"content": {Type: jsonschema.String, Description: "Full text content of the file"},
				},
				Required:             []string{"path", "content"},
				AdditionalProperties: false,
			},
		},
		"dependencies": {
			Type:  jsonschema.Array,
			Items: &jsonschema.Definition{Type: jsonschema.String},
		},
		"explanation": {Type: jsonschema.String},
		"build_commands": {
			Type:  jsonschema.Array,
			Items: &jsonschema.Definition{Type: jsonschema.String},
		},
	},
	Required:             []string{"files", "dependencies", "explanation", "build_commands"},
	AdditionalProperties: false,
}

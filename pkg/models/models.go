package models

import "time"

// Framework is a catalog entry for a selectable target web framework.
type Framework struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// FeatureCategory classifies optional features. The set is closed.
type FeatureCategory string

const (
	CategorySecurity       FeatureCategory = "security"
	CategoryData           FeatureCategory = "data"
	CategoryAPI            FeatureCategory = "api"
	CategoryUI             FeatureCategory = "ui"
	CategoryDevOps         FeatureCategory = "devops"
	CategoryInfrastructure FeatureCategory = "infrastructure"
)

// Feature is a catalog entry for an optional capability a generated
// project may include. Projects reference features by id only at
// configuration time; feature objects are never persisted.
type Feature struct {
	ID       string          `json:"id"`
	Label    string          `json:"label"`
	Category FeatureCategory `json:"category"`
}

// GeneratedProject is the canonical persisted unit of work.
// ID, Prompt and Framework are set once at creation and never change;
// Files, Dependencies, Explanation and BuildCommands are replaced
// wholesale on each successful modification.
type GeneratedProject struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Prompt        string            `json:"prompt"`
	Framework     Framework         `json:"framework"`
	Files         map[string]string `json:"files"`
	Dependencies  []string          `json:"dependencies"`
	Explanation   string            `json:"explanation"`
	BuildCommands []string          `json:"build_commands"`
	CreatedAt     time.Time         `json:"created_at"`
}

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry in the modification conversation for the
// currently active project.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Agent is a cosmetic persona used to attribute simulated progress
// log lines. It carries no business state.
type Agent struct {
	ID       string
	Name     string
	Role     string
	Gradient string // two space-separated terminal colors, dark to light
}

// AgentLogEntry is a single line in the simulated progress log.
type AgentLogEntry struct {
	AgentID string
	Message string
	Time    time.Time
}

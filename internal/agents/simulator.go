// Package agents defines the scripted progress-log choreography shown
// while a real generation request is in flight. The script has no
// causal relationship to the request; it exists purely to give the
// illusion of multi-agent work.
package agents

import (
	"fmt"
	"time"

	"github.com/appforge/appforge/internal/catalog"
)

// Step is one beat of the choreography.
type Step struct {
	AgentID string
	Message string
	// Delay is the pause before this step is emitted.
	Delay time.Duration
	// Activate lists agent ids that become active at this step.
	Activate []string
}

// Script returns the fixed choreography for one generation run. The
// framework label only flavors the backend message.
func Script(frameworkLabel string) []Step {
	return []Step{
		{
			AgentID:  catalog.AgentTeamLeader,
			Message:  "Analyzing requirements and breaking the work into tasks...",
			Activate: []string{catalog.AgentTeamLeader},
		},
		{
			AgentID: catalog.AgentTeamLeader,
			Message: "Team assembled. Starting parallel workstreams.",
			Delay:   1500 * time.Millisecond,
			Activate: []string{
				catalog.AgentTeamLeader,
				catalog.AgentCoder,
				catalog.AgentFrontend,
				catalog.AgentDatabase,
			},
		},
		{
			AgentID: catalog.AgentCoder,
			Message: fmt.Sprintf("Scaffolding the %s backend: models, controllers, services...", frameworkLabel),
			Delay:   1 * time.Second,
		},
		{
			AgentID: catalog.AgentDatabase,
			Message: "Designing the schema and wiring up data access...",
			Delay:   2 * time.Second,
		},
		{
			AgentID: catalog.AgentFrontend,
			Message: "Building views, layouts and client-side assets...",
			Delay:   1500 * time.Millisecond,
		},
		{
			AgentID: catalog.AgentTeamLeader,
			Message: "All workstreams complete. Generating the final project...",
			Delay:   1800 * time.Millisecond,
		},
	}
}

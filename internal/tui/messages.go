package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appforge/appforge/internal/agents"
	"github.com/appforge/appforge/internal/genai"
	"github.com/appforge/appforge/pkg/models"
)

// Message types for async operations
type (
	// generationResultMsg carries the outcome of a generation request.
	// run ties it to the attempt that issued it.
	generationResultMsg struct {
		run     int
		project *models.GeneratedProject
		err     error
	}

	// modificationResultMsg carries the outcome of a modification
	// request. projectID ties it to the project it was issued for.
	modificationResultMsg struct {
		projectID string
		project   *models.GeneratedProject
		err       error
	}

	// agentStepMsg emits one step of the simulated agent choreography.
	agentStepMsg struct {
		run    int
		script []agents.Step
		index  int
	}

	// copyResetMsg reverts the transient "copied" acknowledgement.
	copyResetMsg struct{}

	// TickMsg is sent periodically for spinner animation.
	TickMsg time.Time
)

// generateCmd invokes the generation client asynchronously.
func generateCmd(client genai.Client, run int, prompt string, framework models.Framework, featureIDs []string) tea.Cmd {
	return func() tea.Msg {
		project, err := client.Generate(context.Background(), prompt, framework, featureIDs)
		return generationResultMsg{
			run:     run,
			project: project,
			err:     err,
		}
	}
}

// modifyCmd invokes the modification operation asynchronously.
func modifyCmd(client genai.Client, instruction string, project *models.GeneratedProject) tea.Cmd {
	id := project.ID
	return func() tea.Msg {
		updated, err := client.Modify(context.Background(), instruction, project)
		return modificationResultMsg{
			projectID: id,
			project:   updated,
			err:       err,
		}
	}
}

// agentStepCmd schedules one choreography step after its delay. The
// script is carried in the message chain so a superseded run keeps
// appending to the log without touching newer state.
func agentStepCmd(run int, script []agents.Step, index int) tea.Cmd {
	return tea.Tick(script[index].Delay, func(time.Time) tea.Msg {
		return agentStepMsg{run: run, script: script, index: index}
	})
}

// copyResetCmd reverts the "copied" flag after a fixed delay.
func copyResetCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return copyResetMsg{}
	})
}

// tickCmd creates a ticker for spinner animation.
func tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

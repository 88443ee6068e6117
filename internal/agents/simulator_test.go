package agents

import (
	"strings"
	"testing"
	"time"

	"github.com/appforge/appforge/internal/catalog"
)

func TestScriptShape(t *testing.T) {
	script := Script("Flask")

	if len(script) != 6 {
		t.Fatalf("expected 6 steps, got %d", len(script))
	}

	if script[0].AgentID != catalog.AgentTeamLeader {
		t.Error("choreography must open with the team leader")
	}
	if script[len(script)-1].AgentID != catalog.AgentTeamLeader {
		t.Error("choreography must close with the team leader")
	}

	order := []string{script[2].AgentID, script[3].AgentID, script[4].AgentID}
	want := []string{catalog.AgentCoder, catalog.AgentDatabase, catalog.AgentFrontend}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("step %d: expected %s, got %s", i+2, want[i], order[i])
		}
	}
}

func TestScriptDelays(t *testing.T) {
	script := Script("Flask")

	var total time.Duration
	for _, step := range script {
		total += step.Delay
	}
	if total != 7800*time.Millisecond {
		t.Errorf("cumulative delay should be 7.8s, got %s", total)
	}
	if script[0].Delay != 0 {
		t.Error("first step must fire immediately")
	}
}

func TestScriptActivation(t *testing.T) {
	script := Script("Flask")

	if len(script[0].Activate) != 1 {
		t.Error("only the team leader is active at the start")
	}
	if len(script[1].Activate) != 4 {
		t.Error("team assembly must activate all four agents")
	}
}

func TestScriptMentionsFramework(t *testing.T) {
	script := Script("ASP.NET Core MVC")

	found := false
	for _, step := range script {
		if strings.Contains(step.Message, "ASP.NET Core MVC") {
			found = true
		}
	}
	if !found {
		t.Error("the framework label should flavor the backend message")
	}
}

package rules

import (
	"fmt"
	"strings"
	"testing"

	"github.com/speakapp/axlabel/internal/patch"
)

func TestDefaultTasks(t *testing.T) {
	tasks := DefaultTasks()
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}
	if tasks[0].Path != HUDViewPath || tasks[1].Path != MainViewPath || tasks[2].Path != SettingsViewPath {
		t.Errorf("unexpected task order: %v, %v, %v", tasks[0].Path, tasks[1].Path, tasks[2].Path)
	}
	if len(tasks[0].Patterns) != 10 {
		t.Errorf("HUD view: expected 10 pattern rules, got %d", len(tasks[0].Patterns))
	}
	if len(tasks[2].Inserts) != 5 {
		t.Errorf("settings view: expected 5 inserts, got %d", len(tasks[2].Inserts))
	}
}

func TestHUDViewRules(t *testing.T) {
	// Minimal stub containing a single known marker.
	stub := strings.Join([]string{
		"struct HUDView: View {",
		"  var body: some View {",
		"    Text(manager.snapshot.headline)",
		"      .foregroundStyle(headlineColor)",
		"  }",
	}, "\n")

	got, results := patch.ApplyPatterns(stub, hudViewRules)

	matched := 0
	for _, r := range results {
		if r.Matched() {
			matched += r.Matches
		}
	}
	if matched != 1 {
		t.Fatalf("expected exactly 1 matching rule against the stub, got %d", matched)
	}

	lines := strings.Split(got, "\n")
	if added := len(lines) - 5; added != matched {
		t.Errorf("line count grew by %d, want %d", added, matched)
	}

	// The label must directly follow the marker line.
	const label = `          .accessibilityLabel("Status: \(manager.snapshot.headline)")`
	for i, line := range lines {
		if strings.Contains(line, ".foregroundStyle(headlineColor)") {
			if i+1 >= len(lines) || lines[i+1] != label {
				t.Errorf("label not directly after marker, next line: %q", lines[i+1])
			}
			return
		}
	}
	t.Fatal("marker line disappeared from output")
}

func TestMainViewRules(t *testing.T) {
	stub := strings.Join([]string{
		"struct MainView: View {",
		`  .speakTooltip("Start or stop a recording from anywhere in Speak. We'll let you know when we're listening.")`,
		"}",
		"",
		"// @Implement This is the main app container",
	}, "\n")

	got, results := patch.ApplyPatterns(stub, mainViewRules)

	if !results[0].Matched() {
		t.Error("record button tooltip rule did not match")
	}
	if results[1].Matched() {
		t.Error("mode badge rule matched a stub that lacks its marker")
	}
	if !results[2].Matched() {
		t.Error("helper property rule did not match")
	}

	if !strings.Contains(got, ".accessibilityLabel(accessibilityLabelForRecordButton)") {
		t.Error("tooltip label was not inserted")
	}
	if !strings.Contains(got, "private var accessibilityLabelForRecordButton: String {") {
		t.Error("helper property was not inserted")
	}
	// The helper re-emits the container marker so the rule cannot match twice.
	if !strings.Contains(got, "// @Implement This is the main app container") {
		t.Error("container marker comment was dropped")
	}
	if !strings.Contains(got, `return "Stop recording"`) {
		t.Error("helper switch body incomplete")
	}
}

func TestSettingsViewInserts(t *testing.T) {
	lines := make([]string, 700)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}

	got, inserted, skipped := patch.ApplyInserts(lines, settingsViewInserts)
	if inserted != 5 || skipped != 0 {
		t.Fatalf("inserted=%d skipped=%d, want 5/0", inserted, skipped)
	}
	if len(got) != 705 {
		t.Fatalf("expected 705 lines, got %d", len(got))
	}

	// Every label must directly follow the line it was anchored to.
	for _, ins := range settingsViewInserts {
		anchor := fmt.Sprintf("line %d", ins.After)
		found := false
		for i, line := range got {
			if line == anchor {
				if i+1 >= len(got) || got[i+1] != ins.Text {
					t.Errorf("insert after %q not adjacent, next line: %q", anchor, got[i+1])
				}
				found = true
				break
			}
		}
		if !found {
			t.Errorf("anchor line %q missing from output", anchor)
		}
	}
}

func TestSettingsViewInsertsStaleIndices(t *testing.T) {
	// A trimmed-down file revision: every index is stale and skipped.
	lines := []string{"line 0", "line 1", "line 2"}
	got, inserted, skipped := patch.ApplyInserts(lines, settingsViewInserts)
	if inserted != 0 || skipped != 5 {
		t.Fatalf("inserted=%d skipped=%d, want 0/5", inserted, skipped)
	}
	if len(got) != 3 {
		t.Errorf("file length changed: %d", len(got))
	}
}

// Package rules holds the static patch tables for the Speak app view
// sources. Patterns match against whitespace-flexible runs of SwiftUI
// modifier chains; replacements re-emit the matched text via $1 and append
// the accessibility annotation on its own line.
package rules

import (
	"regexp"

	"github.com/speakapp/axlabel/model"
)

const (
	HUDViewPath      = "Sources/SpeakApp/HUDView.swift"
	MainViewPath     = "Sources/SpeakApp/MainView.swift"
	SettingsViewPath = "Sources/SpeakApp/SettingsView.swift"
)

func rule(search, replace string) model.PatternRule {
	return model.PatternRule{Search: regexp.MustCompile(search), Replace: replace}
}

var hudViewRules = []model.PatternRule{
	rule(`(\.foregroundStyle\(headlineColor\))`,
		"$1\n          .accessibilityLabel(\"Status: \\(manager.snapshot.headline)\")"),
	rule(`(Text\(sub\)\s+\.font\(\.subheadline\)\s+\.foregroundStyle\(\.secondary\))`,
		"$1\n            .accessibilityLabel(sub)"),
	rule(`(\.padding\(\.top, 4\))(\s+\})`,
		"$1\n            .accessibilityHint(\"Press Command-R to retry the operation\")$2"),
	rule(`(AudioLevelMeterView\(level: manager\.audioLevel, width: 100, height: 4\)\s+\.padding\(\.top, 2\))`,
		"$1\n          .accessibilityLabel(\"Audio level meter\")\n          .accessibilityValue(\"\\(Int(manager.audioLevel * 100)) percent\")"),
	rule(`(Text\(elapsedText\)\s+\.font\(\.caption\.monospacedDigit\(\)\)\s+\.foregroundStyle\(\.secondary\))`,
		"$1\n          .accessibilityLabel(\"Elapsed time: \\(elapsedText)\")"),
	rule(`(\.animation\(\.easeInOut\(duration: 0\.2\), value: isFinal\))`,
		"$1\n        .accessibilityLabel(isFinal ? \"Transcript: \\(text)\" : \"Partial transcript: \\(text)\")"),
	rule(`(Capsule\(\)\s+\.fill\(\.quaternary\)\s+\))`,
		"$1\n          .accessibilityLabel(\"Confidence: \\(Int(confidence * 100)) percent\")"),
	rule(`(Image\(systemName: "exclamationmark\.triangle\.fill"\)\s+\.font\(\.system\(size: 32, weight: \.bold\)\)\s+\.foregroundStyle\(phaseColor\.gradient\)\s+\.scaleEffect\(scale\)\s+\.shadow\(color: phaseColor\.opacity\(0\.45\), radius: 10, x: 0, y: 6\))`,
		"$1\n          .accessibilityLabel(\"Error indicator\")"),
	rule(`(Image\(systemName: "checkmark\.circle\.fill"\)\s+\.font\(\.system\(size: 28, weight: \.semibold\)\)\s+\.foregroundStyle\(phaseColor\)\s+\.shadow\(color: phaseColor\.opacity\(0\.3\), radius: 6, x: 0, y: 4\))`,
		"$1\n        .accessibilityLabel(\"Success indicator\")"),
	rule(`(Circle\(\)\s+\.fill\(phaseColor\.gradient\)\s+\.frame\(width: 18, height: 18\)\s+\.scaleEffect\(scale\)\s+\.shadow\(color: phaseColor\.opacity\(0\.4\), radius: 6, x: 0, y: 4\))`,
		"$1\n          .accessibilityLabel(\"Recording status indicator\")"),
}

// recordButtonHelper replaces the closing brace before the container
// marker comment, re-emitting both around the computed property.
const recordButtonHelper = "\n  \n" + `  private var accessibilityLabelForRecordButton: String {
    switch environment.main.state {
    case .idle, .completed(_), .failed(_):
      return "Start recording"
    case .recording:
      return "Stop recording"
    case .processing:
      return "Processing recording"
    case .delivering:
      return "Delivering transcription"
    }
  }
}

// @Implement This is the main app container`

var mainViewRules = []model.PatternRule{
	rule(`(\.speakTooltip\("Start or stop a recording from anywhere in Speak\. We'll let you know when we're listening\."\))`,
		"$1\n      .accessibilityLabel(accessibilityLabelForRecordButton)"),
	rule(`(\.strokeBorder\(\.secondary\.opacity\(0\.3\), lineWidth: 0\.5\)\s+\))`,
		"$1\n      .accessibilityLabel(\"Current mode: \\(environment.settings.transcriptionMode.displayName)\")"),
	rule(`\}\s*\n\s*// @Implement This is the main app container`,
		recordButtonHelper),
}

// settingsViewInserts targets the picker declarations by line number in the
// current revision of SettingsView.swift. Stale indices past EOF are
// skipped at apply time.
var settingsViewInserts = []model.Insert{
	{After: 254, Text: `          .accessibilityLabel("Appearance theme picker")`},
	{After: 274, Text: `          .accessibilityLabel("Text output method picker")`},
	{After: 353, Text: `          .accessibilityLabel("Audio input device picker")`},
	{After: 655, Text: `          .accessibilityLabel("Transcription mode picker")`},
	{After: 670, Text: `          .accessibilityLabel("Preferred locale picker")`},
}

// DefaultTasks returns the fixed task list for one run, in application
// order.
func DefaultTasks() []model.FileTask {
	return []model.FileTask{
		{Path: HUDViewPath, Patterns: hudViewRules},
		{Path: MainViewPath, Patterns: mainViewRules},
		{Path: SettingsViewPath, Inserts: settingsViewInserts},
	}
}

package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/speakapp/axlabel/model"
)

var (
	HeaderColor  = color.New(color.FgBlue, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	SuccessColor = color.New(color.FgGreen)
	WarningColor = color.New(color.FgYellow)
	ErrorColor   = color.New(color.FgRed)
	PathColor    = color.New(color.FgYellow)
)

func Header(format string, a ...interface{}) {
	HeaderColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Info(format string, a ...interface{}) {
	InfoColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Success(format string, a ...interface{}) {
	SuccessColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Warning(format string, a ...interface{}) {
	WarningColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", a...)
}

func Path(format string, a ...interface{}) {
	PathColor.Fprintf(os.Stderr, "  "+format+"\n", a...)
}

// --- Summaries ---

// FileUpdated prints the per-file confirmation line.
func FileUpdated(name string) {
	fmt.Printf("✅ %s updated\n", name)
}

// PrintRunSummary prints the final state of a run.
func PrintRunSummary(summary model.Summary) {
	clean := len(summary.Failed) == 0 && len(summary.Unmatched) == 0

	if clean && len(summary.Updated) > 0 && !summary.DryRun {
		fmt.Println("\n✅ All files updated with accessibility labels!")
		return
	}
	if summary.Message != "" {
		Header("\n%s", summary.Message)
	}

	if !clean && len(summary.Updated) > 0 {
		Success("\nUpdated %d file(s):", len(summary.Updated))
		for _, f := range summary.Updated {
			fmt.Printf("  - %s\n", f)
		}
	}
	if len(summary.Unmatched) > 0 {
		Warning("\n%d rule(s) did not match:", len(summary.Unmatched))
		for _, r := range summary.Unmatched {
			fmt.Printf("  - %s\n", r)
		}
	}
	if len(summary.Failed) > 0 {
		Error("\nFailed to process %d file(s):", len(summary.Failed))
		for _, f := range summary.Failed {
			fmt.Printf("  - %s\n", f)
		}
	}
	if len(summary.Updated) == 0 && len(summary.Failed) == 0 {
		Info("No files were updated.")
	}
}

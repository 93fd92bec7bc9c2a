package axlabel

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/speakapp/axlabel/cli"
	"github.com/speakapp/axlabel/internal/fs"
	"github.com/speakapp/axlabel/internal/patch"
	"github.com/speakapp/axlabel/internal/rules"
	"github.com/speakapp/axlabel/internal/ui"
	"github.com/speakapp/axlabel/model"
)

// App orchestrates the entire application logic.
type App struct {
	cfg          *cli.Config
	pathResolver *fs.PathResolver
	tasks        []model.FileTask
}

// DetailedError enhances a standard error with a stack trace.
type DetailedError struct {
	Err   error
	Stack []byte
}

func (e *DetailedError) Error() string {
	return e.Err.Error()
}

// New creates a new App instance with the built-in task list.
func New(cfg *cli.Config) (*App, error) {
	return &App{
		cfg:          cfg,
		pathResolver: fs.NewPathResolver(cfg.LookupDirs),
		tasks:        rules.DefaultTasks(),
	}, nil
}

// SetTasks replaces the built-in task list. Used by the library interface.
func (a *App) SetTasks(tasks []model.FileTask) {
	a.tasks = tasks
}

// Execute runs every task in order and returns the run summary.
func (a *App) Execute() (summary model.Summary, err error) {
	// Centralized panic recovery.
	defer func() {
		if r := recover(); r != nil {
			err = &DetailedError{
				Err:   fmt.Errorf("internal panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()

	return a.patchFiles()
}

// patchFiles applies each task's rules to its target file. The first
// read/write failure aborts the run; files patched before it stay
// modified.
func (a *App) patchFiles() (model.Summary, error) {
	var summary model.Summary
	var diffs strings.Builder

	for _, task := range a.tasks {
		path := a.pathResolver.ResolveExisting(task.Path)
		if path == "" {
			summary.Failed = append(summary.Failed, task.Path)
			a.relativizeSummaryPaths(&summary)
			return summary, fmt.Errorf("target file not found: %s", task.Path)
		}

		result, err := patch.File(path, task, a.cfg.DryRun)
		if err != nil {
			summary.Failed = append(summary.Failed, path)
			a.relativizeSummaryPaths(&summary)
			return summary, err
		}

		for _, r := range result.Results {
			if !r.Matched() {
				diag := fmt.Sprintf("%s: rule #%d", task.Path, r.Index+1)
				summary.Unmatched = append(summary.Unmatched, diag)
				ui.Warning("Rule #%d did not match in %s.", r.Index+1, task.Path)
			}
		}
		if result.Skipped > 0 {
			ui.Warning("Skipped %d out-of-range insert(s) in %s.", result.Skipped, task.Path)
		}

		if a.cfg.DryRun {
			diffs.WriteString(result.Diff)
		}

		summary.Updated = append(summary.Updated, path)
		if !a.cfg.DryRun {
			ui.FileUpdated(filepath.Base(path))
		}
	}

	if a.cfg.DryRun {
		summary.DryRun = true
		fmt.Print(diffs.String())
		if a.cfg.Copy {
			if err := clipboard.WriteAll(diffs.String()); err != nil {
				ui.Warning("Failed to copy diff to clipboard: %v", err)
			} else {
				ui.Info("Diff copied to clipboard.")
			}
		}
		summary.Message = "Dry run: no files were written."
	} else if len(summary.Failed) == 0 {
		summary.Message = "All files updated with accessibility labels!"
	}

	a.relativizeSummaryPaths(&summary)
	return summary, nil
}

// relativizeSummaryPaths converts absolute file paths in a summary to be
// relative to the current working directory for cleaner display.
func (a *App) relativizeSummaryPaths(summary *model.Summary) {
	wd, err := os.Getwd()
	if err != nil {
		// Cannot get CWD, so we can't make paths relative.
		return
	}

	makeRelative := func(absPaths []string) []string {
		relPaths := make([]string, len(absPaths))
		for i, p := range absPaths {
			rel, err := filepath.Rel(wd, p)
			if err != nil || strings.HasPrefix(rel, "..") {
				relPaths[i] = p // Fallback to absolute path
			} else {
				relPaths[i] = rel
			}
		}
		return relPaths
	}

	summary.Updated = makeRelative(summary.Updated)
	summary.Failed = makeRelative(summary.Failed)
}

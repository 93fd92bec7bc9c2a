package axlabel

import (
	"fmt"

	"github.com/speakapp/axlabel/cli"
	"github.com/speakapp/axlabel/model"
)

// Config for using axlabel as a library.
type Config struct {
	// Compute diffs without writing any file.
	DryRun bool
	// Directories to resolve relative target paths against.
	LookupDirs []string
}

// Apply runs the given tasks against the filesystem and returns the run
// summary. An empty task list applies the built-in Speak rule tables.
func Apply(tasks []model.FileTask, config Config) (model.Summary, error) {
	cliCfg := &cli.Config{
		DryRun:     config.DryRun,
		LookupDirs: config.LookupDirs,
	}

	app, err := New(cliCfg)
	if err != nil {
		return model.Summary{}, fmt.Errorf("failed to initialize axlabel app: %w", err)
	}
	if len(tasks) > 0 {
		app.SetTasks(tasks)
	}

	return app.Execute()
}

package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	DryRun      bool
	Copy        bool
	NoAnimation bool
	LookupDirs  []string
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	// Define flags
	pflag.BoolVarP(&cfg.DryRun, "dry-run", "n", false, "Print a unified diff of the changes instead of writing files.")
	pflag.BoolVarP(&cfg.Copy, "copy", "c", false, "Copy the computed diff to the clipboard (implies --dry-run).")
	pflag.BoolVar(&cfg.NoAnimation, "no-animation", false, "Disable loading spinner and progress updates.")
	pflag.StringSliceVarP(&cfg.LookupDirs, "lookup-dir", "l", []string{}, "Directories to resolve the Speak source paths against (default: current directory).")

	pflag.Usage = func() {
		fmt.Println("Usage: axlabel [flags]")
		fmt.Println("\nInject accessibility-label annotations into the Speak app view sources.")
		fmt.Println("\nExample: axlabel -l ~/src/speak")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if pflag.NArg() > 0 {
		return nil, fmt.Errorf("error: unexpected argument '%s'", pflag.Arg(0))
	}

	// Copying a diff only makes sense when one is computed.
	if cfg.Copy {
		cfg.DryRun = true
	}

	return cfg, nil
}

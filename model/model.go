package model

import "regexp"

// PatternRule is a single search-and-replace transformation. Search is run
// globally against the whole file buffer; Replace may reference capture
// groups with $1 or ${1} and may contain literal newlines.
type PatternRule struct {
	Search  *regexp.Regexp
	Replace string
}

// Insert adds one literal line immediately after a 0-based line index of
// the original file.
type Insert struct {
	After int
	Text  string
}

// FileTask groups all rules targeting one file. A task carries pattern
// rules, positional inserts, or both.
type FileTask struct {
	Path     string
	Patterns []PatternRule
	Inserts  []Insert
}

// RuleResult reports the outcome of one pattern rule.
type RuleResult struct {
	Index   int // position in the task's rule list
	Matches int
}

// Matched reports whether the rule changed anything.
func (r RuleResult) Matched() bool { return r.Matches > 0 }

// FileResult holds the outcome of patching one file.
type FileResult struct {
	Path      string
	Results   []RuleResult
	Inserted  int // positional inserts that landed in range
	Skipped   int // positional inserts dropped as out of range
	Unmatched int // pattern rules with zero matches
	Diff      string
}

// Summary holds the results of a full run for display.
type Summary struct {
	Updated   []string
	Failed    []string
	Unmatched []string // "path: rule #N" diagnostics
	Message   string
	DryRun    bool
}

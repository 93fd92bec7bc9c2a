package patch

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/speakapp/axlabel/model"
)

// ApplyPatterns runs each rule in list order against content. Every rule
// sees the output of the rules before it, so later rules may match text an
// earlier rule produced. A rule that matches nothing leaves the content
// untouched and is reported with a zero match count.
func ApplyPatterns(content string, rules []model.PatternRule) (string, []model.RuleResult) {
	results := make([]model.RuleResult, 0, len(rules))
	for i, rule := range rules {
		matches := len(rule.Search.FindAllStringIndex(content, -1))
		if matches > 0 {
			content = rule.Search.ReplaceAllString(content, rule.Replace)
		}
		results = append(results, model.RuleResult{Index: i, Matches: matches})
	}
	return content, results
}

// ApplyInserts places each insert's text as a new line immediately after
// its 0-based index in the original numbering. Inserts are applied in
// descending index order so an insertion never shifts the target of a
// not-yet-applied one. Indices past the end of the file are skipped.
func ApplyInserts(lines []string, inserts []model.Insert) (result []string, inserted, skipped int) {
	sorted := make([]model.Insert, len(inserts))
	copy(sorted, inserts)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].After > sorted[j].After
	})

	result = make([]string, len(lines))
	copy(result, lines)

	for _, ins := range sorted {
		if ins.After < 0 || ins.After >= len(lines) {
			skipped++
			continue
		}
		at := ins.After + 1
		result = append(result[:at], append([]string{ins.Text}, result[at:]...)...)
		inserted++
	}
	return result, inserted, skipped
}

// File applies one task to the file on disk. The file is read once,
// transformed fully in memory, and written once, overwriting the previous
// contents. With dryRun set the file is left untouched and the returned
// result carries a unified diff of what would have changed.
func File(path string, task model.FileTask, dryRun bool) (model.FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.FileResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	original := string(data)

	result := model.FileResult{Path: path}

	content := original
	if len(task.Patterns) > 0 {
		content, result.Results = ApplyPatterns(content, task.Patterns)
		for _, r := range result.Results {
			if !r.Matched() {
				result.Unmatched++
			}
		}
	}

	if len(task.Inserts) > 0 {
		lines := strings.Split(content, "\n")
		lines, result.Inserted, result.Skipped = ApplyInserts(lines, task.Inserts)
		content = strings.Join(lines, "\n")
	}

	if dryRun {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(original),
			B:        difflib.SplitLines(content),
			FromFile: "a/" + path,
			ToFile:   "b/" + path,
			Context:  3,
		})
		if err != nil {
			return result, fmt.Errorf("failed to diff %s: %w", path, err)
		}
		result.Diff = diff
		return result, nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return result, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return result, nil
}

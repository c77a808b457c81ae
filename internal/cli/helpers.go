// Package cli implements the npmstate commands. Commands are thin
// drivers over pkg/state and pkg/declaration; they own flag parsing and
// result presentation only.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/statekit/npmstate/pkg/model"
)

// These variables will be set by the main package
var (
	OutputFormat *string
)

func outputFormat() string {
	if OutputFormat != nil && *OutputFormat != "" {
		return *OutputFormat
	}
	return "table"
}

// printResults renders reconciliation results in the selected output
// format.
func printResults(results []model.Result) error {
	switch outputFormat() {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "table":
		printResultsTable(results)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", outputFormat())
	}
}

func printResultsTable(results []model.Result) {
	if len(results) == 0 {
		fmt.Println("Nothing declared")
		return
	}

	// Header
	fmt.Printf("%-30s %-10s %s\n", "NAME", "RESULT", "COMMENT")
	fmt.Println(strings.Repeat("-", TableRuleWidth))

	// Rows
	for _, res := range results {
		fmt.Printf("%-30s %-10s %s\n", truncate(res.Name, MaxNameLength), res.Status, res.Comment)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// countFailed returns how many results ended in failure.
func countFailed(results []model.Result) int {
	failed := 0
	for _, res := range results {
		if res.Status == model.StatusFailed {
			failed++
		}
	}
	return failed
}

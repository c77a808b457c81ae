package cli

// Default values for CLI output formatting.
const (
	// MaxNameLength is the maximum length of a state name to display.
	MaxNameLength = 30
	// TableRuleWidth is the width of the rule under the table header.
	TableRuleWidth = 72
)

package npm

import "github.com/statekit/npmstate/pkg/model"

// OutcomeKind tags the result of an install invocation.
type OutcomeKind int

const (
	// OutcomeNoOp means the manager had nothing to do.
	OutcomeNoOp OutcomeKind = iota
	// OutcomeInstalled means packages were installed and their records
	// are available.
	OutcomeInstalled
	// OutcomeParseFailure means the manager ran but could not produce
	// machine-readable output; Raw carries whatever it printed.
	OutcomeParseFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeInstalled:
		return "installed"
	case OutcomeParseFailure:
		return "parse-failure"
	default:
		return "no-op"
	}
}

// InstallOutcome is the tagged result of Manager.Install.
type InstallOutcome struct {
	Kind     OutcomeKind
	Packages map[string]model.PackageInfo // set for OutcomeInstalled
	Raw      string                       // set for OutcomeParseFailure
}

// Installed builds a successful outcome carrying installed records.
func Installed(pkgs map[string]model.PackageInfo) InstallOutcome {
	return InstallOutcome{Kind: OutcomeInstalled, Packages: pkgs}
}

// ParseFailure builds an outcome for unparseable manager output.
func ParseFailure(raw string) InstallOutcome {
	return InstallOutcome{Kind: OutcomeParseFailure, Raw: raw}
}

// NoOp builds an outcome for an invocation that changed nothing.
func NoOp() InstallOutcome {
	return InstallOutcome{Kind: OutcomeNoOp}
}

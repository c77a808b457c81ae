// Package model provides the data structures shared between the npm
// capability layer and the state reconciler: package specs, installed
// package records and reconciliation results.
package model

import "strings"

// PackageInfo holds the metadata recorded for one installed package.
// The listing capability may report more fields than the reconciler
// consumes; only Version participates in state decisions.
type PackageInfo struct {
	Version     string `yaml:"version" json:"version"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	From        string `yaml:"from,omitempty" json:"from,omitempty"`
}

// Spec is a parsed package declaration, "<name>@<version>" with the
// version optional. Name is lower-cased so lookups against installed
// records are case-insensitive.
type Spec struct {
	Name    string
	Version string
}

// ParseSpec splits a raw package spec on the first "@". The name part is
// trimmed and lower-cased; an absent version means any installed version
// satisfies the spec.
func ParseSpec(raw string) Spec {
	name, ver, _ := strings.Cut(raw, "@")
	return Spec{
		Name:    strings.ToLower(strings.TrimSpace(name)),
		Version: ver,
	}
}

// String renders the spec back into "name@version" form, or just the
// name when no version was declared.
func (s Spec) String() string {
	if s.Version == "" {
		return s.Name
	}
	return s.Name + "@" + s.Version
}

// Pinned reports whether the spec demands an exact version.
func (s Spec) Pinned() bool {
	return s.Version != ""
}

// SatisfiedBy reports whether an installed record satisfies the spec.
// Pinned versions require exact string equality; npm versions are not
// guaranteed to be parseable semver, so no ordering semantics apply.
func (s Spec) SatisfiedBy(info PackageInfo) bool {
	if !s.Pinned() {
		return true
	}
	return info.Version == s.Version
}

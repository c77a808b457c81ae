//go:generate mockgen -destination=./mocks/manager.go -package=mocks . Manager

// Package npm defines the capability contract the state reconciler calls
// into. Implementations wrap an actual package manager; this module only
// ships a read-only snapshot implementation for offline planning, real
// subprocess-backed managers are supplied by the host engine.
package npm

import (
	"context"

	"github.com/statekit/npmstate/pkg/model"
)

// ListOptions scope a listing query. An empty Dir means the global
// install scope.
type ListOptions struct {
	Dir  string
	User string
	Env  []string // KEY=VALUE pairs forwarded to the subprocess layer
}

// InstallOptions describe one install invocation. Exactly one of Pkg or
// Pkgs is set for a package install; both empty means install from the
// manifest found in Dir (bootstrap mode).
type InstallOptions struct {
	Dir      string
	User     string
	Registry string
	Env      []string
	Pkg      string
	Pkgs     []string
}

// UninstallOptions describe one uninstall invocation.
type UninstallOptions struct {
	Pkg  string
	Dir  string
	User string
}

// Manager is the narrow interface over a package manager that the
// reconciler consumes. List returns installed records keyed by package
// name; whether keys are already lower-cased is up to the
// implementation, callers normalize as needed. Install reports its
// outcome as a tagged InstallOutcome rather than a loosely typed value.
type Manager interface {
	List(ctx context.Context, opts ListOptions) (map[string]model.PackageInfo, error)
	Install(ctx context.Context, opts InstallOptions) (InstallOutcome, error)
	Uninstall(ctx context.Context, opts UninstallOptions) (bool, error)
}

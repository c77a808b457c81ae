package npm

import (
	"context"
	"os"

	"github.com/statekit/npmstate/pkg/errors"
	"github.com/statekit/npmstate/pkg/model"
	"gopkg.in/yaml.v3"
)

// SnapshotManager serves listing queries from a YAML snapshot of
// installed packages, a mapping of package name to its record:
//
//	coffee-script:
//	  version: 1.0.1
//	pm2:
//	  version: 5.3.0
//
// It exists so reconciliation plans can be computed on machines without a
// working npm install. Install and Uninstall always fail with ErrReadOnly
// wrapped in an ExecutionError, so any non-dry-run mutation attempted
// against a snapshot surfaces as a failed result rather than a silent
// no-op.
type SnapshotManager struct {
	Path string
}

// NewSnapshotManager returns a manager backed by the snapshot file at
// path. The file is read on every List call, matching the reconciler's
// query-fresh-every-time contract.
func NewSnapshotManager(path string) *SnapshotManager {
	return &SnapshotManager{Path: path}
}

// List loads the snapshot. Dir, User and Env are accepted for interface
// compatibility but a snapshot has a single scope.
func (m *SnapshotManager) List(_ context.Context, _ ListOptions) (map[string]model.PackageInfo, error) {
	data, err := os.ReadFile(m.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.ErrSnapshotMissing, "%s", m.Path)
		}
		return nil, &ExecutionError{Op: "list", Err: err}
	}

	var pkgs map[string]model.PackageInfo
	if err := yaml.Unmarshal(data, &pkgs); err != nil {
		return nil, &ExecutionError{Op: "list", Err: errors.Wrap(errors.ErrSnapshotParse, err.Error())}
	}
	if pkgs == nil {
		pkgs = map[string]model.PackageInfo{}
	}
	return pkgs, nil
}

// Install always fails: snapshots cannot be mutated.
func (m *SnapshotManager) Install(_ context.Context, _ InstallOptions) (InstallOutcome, error) {
	return InstallOutcome{}, &ExecutionError{Op: "install", Err: ErrReadOnly}
}

// Uninstall always fails: snapshots cannot be mutated.
func (m *SnapshotManager) Uninstall(_ context.Context, _ UninstallOptions) (bool, error) {
	return false, &ExecutionError{Op: "uninstall", Err: ErrReadOnly}
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/statekit/npmstate/internal/logger"
	"github.com/statekit/npmstate/pkg/declaration"
	"github.com/statekit/npmstate/pkg/model"
	"github.com/statekit/npmstate/pkg/npm"
	"github.com/statekit/npmstate/pkg/state"
)

// NewPlanCmd creates the plan command.
func NewPlanCmd() *cobra.Command {
	var (
		declPath     string
		snapshotPath string
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what reconciling a declaration would change",
		Long: `Compute the reconciliation plan for a declaration file against a
snapshot of currently installed packages, without touching npm.

The snapshot is a YAML mapping of package name to record:

    coffee-script:
      version: 1.0.1

Every entry is evaluated in dry-run mode. Bootstrap entries install from
a directory manifest and cannot be planned against a snapshot; they are
reported as pending.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), declPath, snapshotPath)
		},
	}

	cmd.Flags().StringVarP(&declPath, "file", "f", "", "declaration file to plan")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "installed-packages snapshot file")
	_ = cmd.MarkFlagRequired("file")
	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}

func runPlan(ctx context.Context, declPath, snapshotPath string) error {
	decl, err := declaration.Load(declPath)
	if err != nil {
		return fmt.Errorf("failed to load declaration: %w", err)
	}
	for _, warning := range decl.Lint() {
		logger.Warn(warning)
	}

	reconciler := state.New(npm.NewSnapshotManager(snapshotPath), true)

	results := make([]model.Result, 0, len(decl.Installed)+len(decl.Removed)+len(decl.Bootstrap))
	for _, inst := range decl.Installed {
		name := inst.Name
		if name == "" {
			name = inst.Pkgs[0]
		}
		logger.Debug("planning installed state", logger.Fields{"name": name, "dir": inst.Dir})
		results = append(results, reconciler.Installed(ctx, name, state.InstalledOptions{
			Pkgs:           inst.Pkgs,
			Dir:            inst.Dir,
			User:           inst.User,
			ForceReinstall: inst.ForceReinstall,
			Registry:       inst.Registry,
			Env:            inst.Env,
		}))
	}
	for _, rm := range decl.Removed {
		logger.Debug("planning removed state", logger.Fields{"name": rm.Name, "dir": rm.Dir})
		results = append(results, reconciler.Removed(ctx, rm.Name, state.RemovedOptions{
			Dir:  rm.Dir,
			User: rm.User,
		}))
	}
	for _, bs := range decl.Bootstrap {
		// Bootstrap has no dry-run path in the reconciler and the
		// snapshot manager cannot run installs, so the plan reports
		// these as pending without evaluating them.
		results = append(results, model.Result{
			Name:    bs.Dir,
			Status:  model.StatusPending,
			Comment: fmt.Sprintf("Directory '%s' would be bootstrapped from its manifest", bs.Dir),
		})
	}

	if err := printResults(results); err != nil {
		return err
	}

	if failed := countFailed(results); failed > 0 {
		return fmt.Errorf("%d of %d states failed", failed, len(results))
	}
	return nil
}

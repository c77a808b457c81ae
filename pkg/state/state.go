// Package state implements desired-state reconciliation for npm
// packages. Each operation queries the injected manager for the current
// installed set, diffs it against the declaration, and applies the
// difference unless dry-run mode is set. No state is retained between
// calls; idempotence comes from re-querying every time.
package state

import (
	"context"
	"fmt"
	"strings"

	"github.com/statekit/npmstate/pkg/model"
	"github.com/statekit/npmstate/pkg/npm"
)

// Reconciler evaluates package declarations against the state reported
// by Manager. With DryRun set, mutating operations are never invoked and
// would-be changes are reported with a pending status.
type Reconciler struct {
	Manager npm.Manager
	DryRun  bool
}

// New constructs a Reconciler. Helper for wiring.
func New(mgr npm.Manager, dryRun bool) *Reconciler {
	return &Reconciler{Manager: mgr, DryRun: dryRun}
}

// InstalledOptions control one Installed call.
type InstalledOptions struct {
	// Pkgs is an ordered list of package specs installed with a single
	// manager invocation. When set it takes precedence over the name
	// argument.
	Pkgs []string
	// Dir is the target install directory; empty means the global scope.
	Dir string
	// User is the identity the manager runs under.
	User string
	// ForceReinstall installs every spec even if already satisfied.
	ForceReinstall bool
	// Registry is an alternate package source URL.
	Registry string
	// Env lists KEY=VALUE pairs forwarded to the subprocess layer.
	Env []string
}

// RemovedOptions control one Removed call.
type RemovedOptions struct {
	Dir  string
	User string
}

// BootstrapOptions control one Bootstrap call.
type BootstrapOptions struct {
	User string
}

// Installed ensures the named package (or every spec in opts.Pkgs) is
// installed, at the exact declared version when the spec carries one.
// Version comparison is exact string equality; package names are matched
// case-insensitively against the listing.
func (r *Reconciler) Installed(ctx context.Context, name string, opts InstalledOptions) model.Result {
	res := model.Result{Name: name}

	pkgList := opts.Pkgs
	if pkgList == nil {
		pkgList = []string{name}
	}

	installed, err := r.Manager.List(ctx, npm.ListOptions{Dir: opts.Dir, User: opts.User, Env: opts.Env})
	if err != nil {
		res.Status = model.StatusFailed
		res.Comment = fmt.Sprintf("Error looking up '%s': %v", name, err)
		return res
	}

	records := make(map[string]model.PackageInfo, len(installed))
	for pkgName, info := range installed {
		records[strings.ToLower(pkgName)] = info
	}

	var pkgsSatisfied []string
	var pkgsToInstall []string
	// specName carries the last parsed spec name out of the loop; the
	// single-package install path below passes it, normalized and
	// version-stripped, instead of the caller's name argument.
	var specName string
	for _, raw := range pkgList {
		spec := model.ParseSpec(raw)
		specName = spec.Name

		if opts.ForceReinstall {
			pkgsToInstall = append(pkgsToInstall, raw)
			continue
		}
		info, ok := records[spec.Name]
		if !ok {
			pkgsToInstall = append(pkgsToInstall, raw)
			continue
		}
		if !spec.SatisfiedBy(info) {
			pkgsToInstall = append(pkgsToInstall, raw)
			continue
		}
		pkgsSatisfied = append(pkgsSatisfied, spec.Name+"@"+info.Version)
	}

	if r.DryRun {
		res.Status = model.StatusPending
		var comments []string
		if len(pkgsToInstall) > 0 {
			comments = append(comments, fmt.Sprintf("NPM package(s) '%s' are set to be installed",
				strings.Join(pkgsToInstall, ", ")))
			res.Changes = model.Changes{Old: []string{}, New: pkgsToInstall}
		}
		if len(pkgsSatisfied) > 0 {
			comments = append(comments, fmt.Sprintf("Package(s) '%s' satisfied by %s",
				strings.Join(pkgList, ", "), strings.Join(pkgsSatisfied, ", ")))
		}
		res.Comment = strings.Join(comments, ". ")
		return res
	}

	if len(pkgsToInstall) == 0 {
		res.Status = model.StatusSuccess
		res.Comment = fmt.Sprintf("Package(s) '%s' satisfied by %s",
			strings.Join(pkgList, ", "), strings.Join(pkgsSatisfied, ", "))
		return res
	}

	installOpts := npm.InstallOptions{
		Dir:      opts.Dir,
		User:     opts.User,
		Registry: opts.Registry,
		Env:      opts.Env,
	}
	if opts.Pkgs != nil {
		installOpts.Pkgs = opts.Pkgs
	} else {
		installOpts.Pkg = specName
	}

	out, err := r.Manager.Install(ctx, installOpts)
	if err != nil {
		res.Status = model.StatusFailed
		res.Comment = fmt.Sprintf("Error installing '%s': %v", strings.Join(pkgList, ", "), err)
		return res
	}

	if out.Kind == npm.OutcomeInstalled && len(out.Packages) > 0 {
		res.Status = model.StatusSuccess
		res.Changes = model.Changes{Old: []string{}, New: pkgsToInstall}
		res.Comment = fmt.Sprintf("Package(s) '%s' successfully installed", strings.Join(pkgsToInstall, ", "))
	} else {
		res.Status = model.StatusFailed
		res.Comment = fmt.Sprintf("Could not install package(s) '%s'", strings.Join(pkgList, ", "))
	}
	return res
}

// Removed ensures the named package is not installed in the given
// directory scope. The listing query takes only the directory, and name
// is matched against listing keys exactly, with no case normalization;
// both differ from Installed.
func (r *Reconciler) Removed(ctx context.Context, name string, opts RemovedOptions) model.Result {
	res := model.Result{Name: name}

	installed, err := r.Manager.List(ctx, npm.ListOptions{Dir: opts.Dir})
	if err != nil {
		res.Status = model.StatusFailed
		res.Comment = fmt.Sprintf("Error uninstalling '%s': %v", name, err)
		return res
	}

	if _, ok := installed[name]; !ok {
		res.Status = model.StatusSuccess
		res.Comment = fmt.Sprintf("Package '%s' is not installed", name)
		return res
	}

	if r.DryRun {
		res.Status = model.StatusPending
		res.Comment = fmt.Sprintf("Package '%s' is set to be removed", name)
		return res
	}

	removed, err := r.Manager.Uninstall(ctx, npm.UninstallOptions{Pkg: name, Dir: opts.Dir, User: opts.User})
	switch {
	case err != nil:
		res.Status = model.StatusFailed
		res.Comment = fmt.Sprintf("Error removing package '%s': %v", name, err)
	case removed:
		res.Status = model.StatusSuccess
		res.Changes = model.Changes{Actions: map[string]string{name: "Removed"}}
		res.Comment = fmt.Sprintf("Package '%s' was successfully removed", name)
	default:
		res.Status = model.StatusFailed
		res.Comment = fmt.Sprintf("Error removing package '%s'", name)
	}
	return res
}

// Bootstrap installs a directory's dependencies from the manifest it
// contains (manager invoked with no package argument). Bootstrap has no
// dry-run short circuit; the install call happens regardless of the
// DryRun flag.
func (r *Reconciler) Bootstrap(ctx context.Context, dir string, opts BootstrapOptions) model.Result {
	res := model.Result{Name: dir}

	out, err := r.Manager.Install(ctx, npm.InstallOptions{Dir: dir, User: opts.User})
	if err != nil {
		res.Status = model.StatusFailed
		res.Comment = fmt.Sprintf("Error bootstrapping '%s': %v", dir, err)
		return res
	}

	switch {
	case out.Kind == npm.OutcomeParseFailure:
		res.Status = model.StatusFailed
		res.Comment = "Could not bootstrap directory"
	case out.Kind == npm.OutcomeInstalled && len(out.Packages) > 0:
		res.Status = model.StatusSuccess
		res.Changes = model.Changes{Actions: map[string]string{dir: "Bootstrapped"}}
		res.Comment = "Directory was successfully bootstrapped"
	default:
		res.Status = model.StatusSuccess
		res.Comment = "Directory is already bootstrapped"
	}
	return res
}

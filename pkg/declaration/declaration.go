// Package declaration loads and validates the YAML files describing
// desired npm package state. A declaration file lists packages to keep
// installed, packages to keep absent, and directories to bootstrap from
// their manifests:
//
//	installed:
//	  - name: coffee-script@1.0.1
//	    user: deploy
//	  - pkgs: [pm2, forever]
//	    dir: /srv/app
//	removed:
//	  - name: uglify-js
//	bootstrap:
//	  - dir: /srv/app
//	    user: deploy
package declaration

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	version "github.com/hashicorp/go-version"
	"github.com/statekit/npmstate/pkg/errors"
	"github.com/statekit/npmstate/pkg/model"
	"gopkg.in/yaml.v3"
)

// Install declares one set of packages to keep installed.
type Install struct {
	Name           string   `yaml:"name,omitempty"`
	Pkgs           []string `yaml:"pkgs,omitempty"`
	Dir            string   `yaml:"dir,omitempty"`
	User           string   `yaml:"user,omitempty"`
	ForceReinstall bool     `yaml:"force_reinstall,omitempty"`
	Registry       string   `yaml:"registry,omitempty"`
	Env            []string `yaml:"env,omitempty"`
}

// Removal declares one package to keep absent.
type Removal struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir,omitempty"`
	User string `yaml:"user,omitempty"`
}

// Bootstrap declares one directory whose manifest dependencies should be
// installed.
type Bootstrap struct {
	Dir  string `yaml:"dir"`
	User string `yaml:"user,omitempty"`
}

// File is one parsed declaration file.
type File struct {
	Installed []Install   `yaml:"installed,omitempty"`
	Removed   []Removal   `yaml:"removed,omitempty"`
	Bootstrap []Bootstrap `yaml:"bootstrap,omitempty"`
}

// Load reads and validates a declaration file from path.
func Load(path string) (*File, error) {
	if path == "" {
		return nil, errors.ErrEmptyDeclarationPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid declaration file path: %s", path)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open declaration file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadFromReader(file)
}

// LoadFromReader reads and validates a declaration from an io.Reader.
func LoadFromReader(reader io.Reader) (*File, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read declaration data")
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrDeclarationParse, err.Error())
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks structural requirements: every installed entry names
// at least one package, removals name a package, bootstraps name a
// directory, and env entries are KEY=VALUE pairs.
func (f *File) Validate() error {
	for i, inst := range f.Installed {
		if inst.Name == "" && len(inst.Pkgs) == 0 {
			return errors.Wrapf(errors.ErrDeclarationValidate, "installed[%d]: name or pkgs required", i)
		}
		for _, env := range inst.Env {
			key, _, found := strings.Cut(env, "=")
			if !found || key == "" {
				return errors.Wrapf(errors.ErrDeclarationValidate, "installed[%d]: env entry %q is not KEY=VALUE", i, env)
			}
		}
	}
	for i, rm := range f.Removed {
		if rm.Name == "" {
			return errors.Wrapf(errors.ErrDeclarationValidate, "removed[%d]: name required", i)
		}
	}
	for i, bs := range f.Bootstrap {
		if bs.Dir == "" {
			return errors.Wrapf(errors.ErrDeclarationValidate, "bootstrap[%d]: dir required", i)
		}
	}
	return nil
}

// Specs returns the working list of package specs for one installed
// entry: Pkgs when present, otherwise the single Name.
func (i Install) Specs() []string {
	if len(i.Pkgs) > 0 {
		return i.Pkgs
	}
	return []string{i.Name}
}

// Lint returns human-readable warnings for declarations that are valid
// but suspicious: pinned versions that do not parse as versions, or the
// same package declared both installed and removed. Reconciliation
// compares pinned versions by exact string equality, so an unparseable
// pin is not an error, only worth flagging.
func (f *File) Lint() []string {
	var warnings []string

	declared := make(map[string]bool)
	for i, inst := range f.Installed {
		for _, raw := range inst.Specs() {
			spec := model.ParseSpec(raw)
			declared[spec.Name] = true
			if !spec.Pinned() {
				continue
			}
			if _, err := version.NewVersion(spec.Version); err != nil {
				warnings = append(warnings,
					fmt.Sprintf("installed[%d]: pinned version %q of %q does not parse as a version", i, spec.Version, spec.Name))
			}
		}
	}
	for i, rm := range f.Removed {
		if declared[strings.ToLower(rm.Name)] {
			warnings = append(warnings,
				fmt.Sprintf("removed[%d]: package %q is also declared installed", i, rm.Name))
		}
	}
	return warnings
}

package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/jomtui/jom/internal/errdefs"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

//go:embed distros.yaml
var embedded []byte

// PackageManagerType labels the package manager a distro uses
type PackageManagerType string

const (
	PackageManagerPacman PackageManagerType = "pacman"
	PackageManagerDNF    PackageManagerType = "dnf"
	PackageManagerAPT    PackageManagerType = "apt"
	PackageManagerZypper PackageManagerType = "zypper"
	PackageManagerNix    PackageManagerType = "nix"
)

// Action selects which command list of a package applies.
type Action int

const (
	ActionInstall Action = iota
	ActionUninstall
)

// Actions is the fixed list shown on the action screen, in display order.
var Actions = []Action{ActionInstall, ActionUninstall}

func (a Action) String() string {
	switch a {
	case ActionUninstall:
		return "uninstall"
	default:
		return "install"
	}
}

// Package holds the commands for installing and uninstalling one package.
// The commands are opaque strings.
type Package struct {
	Name      string   `yaml:"name"`
	Install   []string `yaml:"install"`
	Uninstall []string `yaml:"uninstall"`
}

// Commands returns the command list for the given action.
func (p Package) Commands(a Action) []string {
	if a == ActionUninstall {
		return p.Uninstall
	}
	return p.Install
}

type Distro struct {
	Name     string             `yaml:"name"`
	ID       string             `yaml:"id,omitempty"`
	Manager  PackageManagerType `yaml:"manager,omitempty"`
	Packages []Package          `yaml:"packages"`
}

// Catalog is the ordered, read-only list of distributions.
type Catalog struct {
	Distros []Distro `yaml:"distros"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Parse decodes and validates a YAML catalog. Unknown fields are rejected.
// An empty document yields an empty catalog.
func Parse(data []byte) (*Catalog, error) {
	c := &Catalog{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, errdefs.Wrap(errdefs.ErrTypeCatalogParse, "parsing catalog", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads a catalog file from fs.
func Load(fs afero.Fs, path string) (*Catalog, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	return Parse(data)
}

func (c *Catalog) Validate() error {
	ids := make(map[string]int)
	for i, d := range c.Distros {
		if d.Name == "" {
			return invalid("distro #%d has no name", i)
		}
		if d.ID != "" {
			if prev, ok := ids[d.ID]; ok {
				return invalid("distro %q reuses id %q of distro #%d", d.Name, d.ID, prev)
			}
			ids[d.ID] = i
		}

		names := make(map[string]struct{}, len(d.Packages))
		for j, p := range d.Packages {
			if p.Name == "" {
				return invalid("distro %q: package #%d has no name", d.Name, j)
			}
			if _, dup := names[p.Name]; dup {
				return invalid("distro %q: duplicate package %q", d.Name, p.Name)
			}
			names[p.Name] = struct{}{}
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errdefs.NewCustomError(errdefs.ErrTypeCatalogInvalid, fmt.Sprintf(format, args...))
}

func (c *Catalog) Len() int {
	return len(c.Distros)
}

func (c *Catalog) Distro(i int) (Distro, error) {
	if i < 0 || i >= len(c.Distros) {
		return Distro{}, errdefs.NewCustomError(errdefs.ErrTypeIndexOutOfRange,
			fmt.Sprintf("distro index %d out of range [0,%d)", i, len(c.Distros)))
	}
	return c.Distros[i], nil
}

// DistroName returns the name at index i, or an index error.
func (c *Catalog) DistroName(i int) (string, error) {
	d, err := c.Distro(i)
	if err != nil {
		return "", err
	}
	return d.Name, nil
}

// IndexByID finds the distro whose os-release ID matches id.
func (c *Catalog) IndexByID(id string) (int, bool) {
	if id == "" {
		return 0, false
	}
	for i, d := range c.Distros {
		if d.ID == id {
			return i, true
		}
	}
	return 0, false
}

// Match returns the first distro whose ID equals one of ids, in ids order.
func (c *Catalog) Match(ids []string) (int, bool) {
	for _, id := range ids {
		if i, ok := c.IndexByID(id); ok {
			return i, true
		}
	}
	return 0, false
}

// Package pkgmeta defines the package configuration record and the
// field validators applied to user-supplied metadata.
package pkgmeta

import "fmt"

// Default field values applied to a fresh configuration record.
const (
	DefaultVersion           = "1.0.0"
	DefaultDesktopIcon       = "applications-system"
	DefaultDesktopCategories = "System"
	DefaultMenuSection       = "99-Misc"
	DefaultMaintainer        = "Serenium Team"
	DefaultEmail             = "team@serenium.org"
)

// Config is the package configuration record. It is populated once, either
// interactively or from a description file, and is read-only during emission.
//
// The yaml and mapstructure tags match the keys of the on-disk description
// file, so the echo file written into the scaffold round-trips through Load.
type Config struct {
	// Name is the package name.
	Name string `yaml:"name" mapstructure:"name"`

	// Version is the package version (semver-prefixed).
	Version string `yaml:"version" mapstructure:"version"`

	// Description is the short one-line description.
	Description string `yaml:"description" mapstructure:"description"`

	// LongDescription is the extended description. Falls back to
	// Description when left blank.
	LongDescription string `yaml:"long_description" mapstructure:"long_description"`

	// IsMetapackage marks a package that carries no files, only dependencies.
	IsMetapackage bool `yaml:"is_metapackage" mapstructure:"is_metapackage"`

	// Tools are the tool names listed by the launcher script and README.
	// Order is preserved. Cleared for metapackages.
	Tools []string `yaml:"tools" mapstructure:"tools"`

	// CreateDesktop enables desktop entry and menu symlink generation.
	CreateDesktop bool `yaml:"create_desktop" mapstructure:"create_desktop"`

	DesktopName       string `yaml:"desktop_name" mapstructure:"desktop_name"`
	DesktopComment    string `yaml:"desktop_comment" mapstructure:"desktop_comment"`
	DesktopIcon       string `yaml:"desktop_icon" mapstructure:"desktop_icon"`
	DesktopCategories string `yaml:"desktop_categories" mapstructure:"desktop_categories"`

	// Dependencies are listed verbatim in the control file and README.
	Dependencies []string `yaml:"dependencies" mapstructure:"dependencies"`

	// MenuSection names the subdirectory under the menu tree.
	MenuSection string `yaml:"menu_section" mapstructure:"menu_section"`

	Maintainer string `yaml:"maintainer" mapstructure:"maintainer"`
	Email      string `yaml:"email" mapstructure:"email"`
}

// NewConfig returns a configuration record with default field values.
func NewConfig() *Config {
	return &Config{
		Version:           DefaultVersion,
		DesktopIcon:       DefaultDesktopIcon,
		DesktopCategories: DefaultDesktopCategories,
		MenuSection:       DefaultMenuSection,
		Maintainer:        DefaultMaintainer,
		Email:             DefaultEmail,
	}
}

// Normalize enforces the record invariants after population. A metapackage
// carries no tools and no desktop entry regardless of any other input, and
// the long description is never empty once finalized.
func (c *Config) Normalize() {
	if c.IsMetapackage {
		c.Tools = nil
		c.CreateDesktop = false
	}
	if c.LongDescription == "" {
		c.LongDescription = c.Description
	}
}

// TargetDirName returns the deterministic scaffold directory name.
func (c *Config) TargetDirName() string {
	return fmt.Sprintf("%s-%s", c.Name, c.Version)
}

// TypeLabel returns the human-readable package type.
func (c *Config) TypeLabel() string {
	if c.IsMetapackage {
		return "Metapackage"
	}
	return "Regular Package"
}

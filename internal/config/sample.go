package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/serenium/cli/internal/pkgmeta"
)

// SampleFileName is where WriteSample puts the generated file.
const SampleFileName = "sample-config.yaml"

// Sample returns a fully populated example configuration record.
func Sample() *pkgmeta.Config {
	return &pkgmeta.Config{
		Name:              "sample-package",
		Version:           "1.0.0",
		Description:       "A sample package created with Serenium",
		LongDescription:   "This is a longer description of what the package does and its purpose.",
		IsMetapackage:     false,
		Tools:             []string{"tool1", "tool2"},
		CreateDesktop:     true,
		DesktopName:       "Sample Package",
		DesktopComment:    "Launch the sample package",
		DesktopIcon:       "applications-system",
		DesktopCategories: "System",
		Dependencies:      []string{"python3", "python3-yaml"},
		MenuSection:       "01-System",
		Maintainer:        "Your Name",
		Email:             "your.email@example.com",
	}
}

// WriteSample writes the example configuration to path.
func WriteSample(path string) error {
	data, err := yaml.Marshal(Sample())
	if err != nil {
		return fmt.Errorf("encoding sample configuration: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing sample configuration: %w", err)
	}
	return nil
}

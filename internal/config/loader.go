// Package config loads package description files and writes the sample
// configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	serrors "github.com/serenium/cli/internal/errors"
	"github.com/serenium/cli/internal/pkgmeta"
)

// supportedExtensions are the accepted description file formats, chosen by
// file extension.
var supportedExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// Load reads a package description file into a configuration record.
//
// Recognized keys overwrite the defaulted record wholesale; unknown keys are
// ignored. No per-field validation runs on this path: operators supplying a
// file are trusted to have validated it already. Normalize still runs so the
// metapackage invariant holds regardless of file contents.
func Load(path string) (*pkgmeta.Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, serrors.NewNotFoundError(path, "configuration file not found")
		}
		return nil, serrors.NewFormatError(path, fmt.Sprintf("reading configuration file: %v", err), "")
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return nil, serrors.NewFormatError(path,
			fmt.Sprintf("unsupported configuration format %q", ext),
			"Use a .yaml, .yml, or .json file.")
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, serrors.NewFormatError(path,
			fmt.Sprintf("parsing configuration file: %v", err), "")
	}

	cfg := pkgmeta.NewConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, serrors.NewFormatError(path,
			fmt.Sprintf("decoding configuration file: %v", err), "")
	}

	cfg.Normalize()
	return cfg, nil
}

// Complete reports whether a loaded record carries enough information to
// build without interactive prompts.
func Complete(cfg *pkgmeta.Config) bool {
	return cfg != nil && cfg.Name != "" && cfg.Description != ""
}

package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/serenium/cli/internal/build"
	"github.com/serenium/cli/internal/collect"
	"github.com/serenium/cli/internal/config"
	serrors "github.com/serenium/cli/internal/errors"
	"github.com/serenium/cli/internal/output"
	"github.com/serenium/cli/internal/pkgmeta"
	"github.com/serenium/cli/internal/version"
)

// rootFlags holds the flag values for a single invocation. Kept on a
// struct instead of package-level vars so tests can run commands in
// isolation.
type rootFlags struct {
	configPath   string
	theme        string
	outputDir    string
	createSample bool
	verbose      bool
}

// NewRootCmd creates the root command for the serenium CLI.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "serenium",
		Short: "Debian package scaffolding tool",
		Long: `Serenium collects package metadata interactively (or from a config
file) and generates a ready-to-build Debian packaging skeleton:
debian/ control files, launcher script, desktop entry, menu entry,
build script and README.`,
		Version:       version.GetInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, flags)
		},
	}

	rootCmd.SetVersionTemplate(version.GetInfo().String() + "\n")

	rootCmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "Path to a package description file (.yaml, .yml or .json)")
	rootCmd.Flags().StringVarP(&flags.theme, "theme", "t", "", "Color theme: "+strings.Join(output.ThemeNames(), ", "))
	rootCmd.Flags().StringVarP(&flags.outputDir, "output-dir", "d", ".", "Directory the package skeleton is created in")
	rootCmd.Flags().BoolVar(&flags.createSample, "create-sample-config", false, "Write "+config.SampleFileName+" and exit")
	rootCmd.Flags().BoolVar(&flags.verbose, "verbose", false, "Enable verbose output")

	return rootCmd
}

func runRoot(cmd *cobra.Command, flags *rootFlags) error {
	if flags.createSample {
		return writeSampleConfig(flags)
	}

	themeName := output.DefaultTheme
	themeFixed := flags.theme != ""
	if themeFixed {
		name, err := output.ResolveTheme(flags.theme)
		if err != nil {
			return exitWith(err)
		}
		themeName = name
	}

	logger, closer := output.NewLogger(output.LogOptions{
		FilePath: output.LogFileName,
		Verbose:  flags.verbose,
	})
	defer closer.Close()

	theme := output.NewTheme(themeName)
	logger.Debug("starting run", "theme", themeName, "config", flags.configPath)

	cfg := pkgmeta.NewConfig()
	fromFile := false
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			logger.Error("config load failed", "path", flags.configPath, "error", err)
			return exitWith(err)
		}
		cfg = loaded
		fromFile = config.Complete(cfg)
		if fromFile {
			output.Println(theme.Info("Using configuration from " + flags.configPath))
			logger.Info("configuration loaded", "path", flags.configPath, "package", cfg.Name)
		} else {
			output.Println(theme.Warning("Config file is missing name or description; switching to prompts"))
		}
	}

	if !fromFile {
		collector := collect.New(theme, logger)

		// Offer the theme picker only when the theme was not pinned on
		// the command line and we are talking to a terminal.
		if !themeFixed && output.IsTTY() {
			chosen, err := collector.ChooseTheme(themeName)
			if err != nil {
				return cancelOrExit(theme, err)
			}
			if chosen != themeName {
				themeName = chosen
				theme = output.NewTheme(themeName)
				collector = collect.New(theme, logger)
				logger.Debug("theme selected", "theme", themeName)
			}
		}

		if err := collector.Run(cfg); err != nil {
			return cancelOrExit(theme, err)
		}
	}

	orchestrator := build.New(cfg, theme, logger)
	orchestrator.OutputDir = flags.outputDir
	if err := orchestrator.Run(cmd.Context()); err != nil {
		return cancelOrExit(theme, err)
	}
	return nil
}

// writeSampleConfig handles --create-sample-config.
func writeSampleConfig(flags *rootFlags) error {
	themeName := output.DefaultTheme
	if flags.theme != "" {
		name, err := output.ResolveTheme(flags.theme)
		if err != nil {
			return exitWith(err)
		}
		themeName = name
	}
	theme := output.NewTheme(themeName)

	if err := config.WriteSample(config.SampleFileName); err != nil {
		return exitWith(err)
	}
	output.Println(theme.Success("Sample configuration written to " + config.SampleFileName))
	output.Println(theme.Muted("Edit it and run: serenium --config " + config.SampleFileName))
	return nil
}

// cancelOrExit prints a cancellation notice for user interrupts so main
// does not re-print the raw error, then maps the error to an exit code.
func cancelOrExit(theme *output.Theme, err error) error {
	code := ExitCodeFromError(err)
	if code == ExitCancelled {
		output.Println("")
		output.Println(theme.Warning("Cancelled by user."))
		return &serrors.ExitError{Err: err, Code: code, Printed: true}
	}
	return exitWith(err)
}

func exitWith(err error) error {
	return serrors.NewExitError(err, ExitCodeFromError(err))
}

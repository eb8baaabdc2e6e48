// Package build sequences scaffold emission: target directory management,
// overwrite confirmation, step progress, and the post-build summary.
package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/log"

	serrors "github.com/serenium/cli/internal/errors"
	"github.com/serenium/cli/internal/emit"
	"github.com/serenium/cli/internal/output"
	"github.com/serenium/cli/internal/pkgmeta"
)

// totalSteps is the fixed emission step count shown in the progress bar.
// Cosmetic only; it never affects control flow.
const totalSteps = 7

// Orchestrator runs the build pipeline for one configuration record.
type Orchestrator struct {
	cfg    *pkgmeta.Config
	theme  *output.Theme
	logger *log.Logger

	// OutputDir is the parent of the generated scaffold directory.
	OutputDir string

	// Confirm asks the overwrite question. Survey-backed by default;
	// injectable for tests.
	Confirm func(message string) (bool, error)
}

// New creates an orchestrator with an explicit theme and logger.
func New(cfg *pkgmeta.Config, theme *output.Theme, logger *log.Logger) *Orchestrator {
	return &Orchestrator{
		cfg:       cfg,
		theme:     theme,
		logger:    logger,
		OutputDir: ".",
		Confirm:   surveyConfirm,
	}
}

func surveyConfirm(message string) (bool, error) {
	confirmed := false
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: false}, &confirmed); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return false, serrors.Wrap(serrors.ErrCancelled, "prompt interrupted")
		}
		return false, err
	}
	return confirmed, nil
}

// Run executes the pipeline. An existing target directory requires explicit
// affirmative confirmation before being recursively deleted; any other
// answer aborts quietly with nothing touched. Emission errors stop the
// remaining steps and propagate; partially written output is not rolled
// back.
func (o *Orchestrator) Run(ctx context.Context) error {
	t := o.theme

	output.Println("")
	output.Println(t.Header("Building Package Structure"))
	output.Println("")

	target := filepath.Join(o.OutputDir, o.cfg.TargetDirName())

	if _, err := os.Stat(target); err == nil {
		confirmed, err := o.Confirm(fmt.Sprintf("Directory %s already exists. Overwrite?", target))
		if err != nil {
			return err
		}
		if !confirmed {
			output.Println(t.Error("Build aborted by user."))
			o.logger.Info("build aborted: target directory kept", "target", target)
			return nil
		}

		err = output.RunWithSpinner(ctx, "Removing "+target, func() error {
			return os.RemoveAll(target)
		})
		if err != nil {
			return fmt.Errorf("removing %s: %w", target, err)
		}
	}

	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}

	emitter := emit.New(o.cfg, target)

	steps := []struct {
		label string
		run   func() error
	}{
		{"Creating Debian packaging structure", emitter.WriteDebianDir},
		{"Creating package files", emitter.WritePackageFiles},
		{"Creating desktop entry", emitter.WriteDesktopEntry},
		{"Setting up menu structure", emitter.WriteMenuEntry},
		{"Creating build script", emitter.WriteBuildScript},
		{"Generating documentation", emitter.WriteReadme},
		{"Saving configuration", emitter.WriteConfigEcho},
	}

	for i, step := range steps {
		output.Println(t.ProgressBar(i+1, totalSteps) + " " + t.Muted(step.label))
		o.logger.Debug("emission step", "step", i+1, "of", totalSteps, "label", step.label)

		if err := step.run(); err != nil {
			o.logger.Error("build failed", "step", step.label, "error", err)
			output.Println(t.Error("Build failed: " + err.Error()))
			return err
		}
	}

	output.Println("")
	output.Println(t.Success("Package scaffold created at: " + target))
	output.Println("")
	output.Println(t.Box(o.summary()))
	output.Println("")
	output.Println(output.RenderFileTree(o.cfg.TargetDirName(), emitter.CreatedFiles()))
	output.Println(t.Header("Next Steps"))
	output.Println(t.ListItem("Navigate to package directory:", "📁"))
	output.Println("   " + t.Highlight("cd "+target))
	output.Println("")
	output.Println(t.ListItem("Build the package:", "🔨"))
	output.Println("   " + t.Highlight("./build.sh"))
	output.Println("")
	output.Println(t.Footer("Happy packaging! ⚡"))

	o.logger.Info("package scaffold created",
		"package", o.cfg.Name,
		"version", o.cfg.Version,
		"target", target,
	)
	return nil
}

// summary formats the configuration overview shown after a build.
func (o *Orchestrator) summary() string {
	t := o.theme
	c := o.cfg

	var lines []string
	lines = append(lines, "Package: "+t.Highlight(c.Name))
	lines = append(lines, "Version: "+t.Highlight(c.Version))
	lines = append(lines, "Type: "+t.Highlight(c.TypeLabel()))

	if len(c.Tools) > 0 {
		lines = append(lines, "Tools: "+t.Highlight(strings.Join(c.Tools, ", ")))
	}
	if len(c.Dependencies) > 0 {
		lines = append(lines, "Dependencies: "+t.Highlight(strings.Join(c.Dependencies, ", ")))
	}
	if c.CreateDesktop {
		lines = append(lines, "Desktop Entry: "+t.Highlight(c.DesktopName))
	}
	lines = append(lines, "Menu Section: "+t.Highlight(c.MenuSection))

	return strings.Join(lines, "\n")
}

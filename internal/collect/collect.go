// Package collect drives the interactive prompts that populate a package
// configuration record.
package collect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/log"

	serrors "github.com/serenium/cli/internal/errors"
	"github.com/serenium/cli/internal/output"
	"github.com/serenium/cli/internal/pkgmeta"
)

// Package type choices offered during collection.
const (
	choiceRegular     = "Regular package (with files)"
	choiceMetapackage = "Metapackage (dependencies only)"
)

// Collector prompts the user field by field. Each answer is sanitized and
// validated before the next question; invalid input re-prompts in place.
type Collector struct {
	theme  *output.Theme
	logger *log.Logger

	// askOpts lets tests redirect survey's terminal streams.
	askOpts []survey.AskOpt
}

// New creates a collector with an explicit theme and logger.
func New(theme *output.Theme, logger *log.Logger) *Collector {
	return &Collector{theme: theme, logger: logger}
}

func (c *Collector) ask(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
	if err := survey.AskOne(p, response, append(opts, c.askOpts...)...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return serrors.Wrap(serrors.ErrCancelled, "prompt interrupted")
		}
		return err
	}
	return nil
}

// Run populates cfg interactively. The record is normalized before return.
func (c *Collector) Run(cfg *pkgmeta.Config) error {
	t := c.theme

	output.Print(output.Banner(t.Name))
	output.Println(t.Header("Serenium Package Builder"))
	output.Println("")

	output.Println(t.ListItem("Package Configuration", "📋"))
	output.Println(t.Separator())

	name, err := c.askString(&survey.Input{
		Message: "Package name (e.g., serenium-toolkit):",
	}, NameValidator())
	if err != nil {
		return err
	}
	cfg.Name = name

	version, err := c.askString(&survey.Input{
		Message: "Version (e.g., 1.0.0):",
		Default: pkgmeta.DefaultVersion,
	}, VersionValidator())
	if err != nil {
		return err
	}
	cfg.Version = version

	if cfg.Description, err = c.askString(&survey.Input{
		Message: "Short description:",
	}, nil); err != nil {
		return err
	}
	if cfg.LongDescription, err = c.askString(&survey.Input{
		Message: "Long description (optional):",
	}, nil); err != nil {
		return err
	}

	output.Println("")
	output.Println(t.ListItem("Package Type Selection", "📦"))
	output.Println(t.Separator())

	var pkgType string
	if err := c.ask(&survey.Select{
		Message: "Package type:",
		Options: []string{choiceRegular, choiceMetapackage},
		Default: choiceRegular,
	}, &pkgType); err != nil {
		return err
	}
	cfg.IsMetapackage = pkgType == choiceMetapackage

	if !cfg.IsMetapackage {
		output.Println("")
		output.Println(t.ListItem("Tools and Files", "🛠️"))
		output.Println(t.Separator())

		toolsInput, err := c.askString(&survey.Input{
			Message: "Tools to include (comma-separated, e.g., nmap, wireshark, john):",
		}, nil)
		if err != nil {
			return err
		}
		cfg.Tools = SplitList(toolsInput)

		output.Println("")
		output.Println(t.ListItem("Desktop Entry Configuration", "🖥️"))
		output.Println(t.Separator())

		if err := c.ask(&survey.Confirm{
			Message: "Create desktop entry?",
			Default: false,
		}, &cfg.CreateDesktop); err != nil {
			return err
		}

		if cfg.CreateDesktop {
			if cfg.DesktopName, err = c.askString(&survey.Input{
				Message: "Desktop entry name:",
			}, nil); err != nil {
				return err
			}
			if cfg.DesktopComment, err = c.askString(&survey.Input{
				Message: "Desktop comment:",
			}, nil); err != nil {
				return err
			}
			if cfg.DesktopIcon, err = c.askString(&survey.Input{
				Message: "Icon name (optional):",
				Default: pkgmeta.DefaultDesktopIcon,
			}, nil); err != nil {
				return err
			}
			if cfg.DesktopCategories, err = c.askString(&survey.Input{
				Message: "Categories (e.g., System;Security):",
				Default: pkgmeta.DefaultDesktopCategories,
			}, nil); err != nil {
				return err
			}
		}
	}

	output.Println("")
	output.Println(t.ListItem("Dependencies", "📦"))
	output.Println(t.Separator())

	depsInput, err := c.askString(&survey.Input{
		Message: "Dependencies (comma-separated, e.g., python3, git):",
	}, nil)
	if err != nil {
		return err
	}
	cfg.Dependencies = SplitList(depsInput)

	output.Println("")
	output.Println(t.ListItem("Menu Placement", "📂"))
	output.Println(t.Separator())

	if cfg.MenuSection, err = c.askString(&survey.Input{
		Message: "Menu section (e.g., 01-System):",
		Default: pkgmeta.DefaultMenuSection,
	}, nil); err != nil {
		return err
	}

	output.Println("")
	output.Println(t.ListItem("Maintainer Information", "👤"))
	output.Println(t.Separator())

	if cfg.Maintainer, err = c.askString(&survey.Input{
		Message: "Maintainer name:",
		Default: pkgmeta.DefaultMaintainer,
	}, nil); err != nil {
		return err
	}
	if cfg.Email, err = c.askString(&survey.Input{
		Message: "Maintainer email:",
		Default: pkgmeta.DefaultEmail,
	}, EmailValidator()); err != nil {
		return err
	}

	cfg.Normalize()
	c.logger.Info("configuration collected", "package", cfg.Name, "version", cfg.Version)
	return nil
}

// askString asks one input prompt and sanitizes the answer.
func (c *Collector) askString(p *survey.Input, validator survey.Validator) (string, error) {
	var answer string
	opts := []survey.AskOpt{}
	if validator != nil {
		opts = append(opts, survey.WithValidator(validator))
	}
	if err := c.ask(p, &answer, opts...); err != nil {
		return "", err
	}
	return pkgmeta.Sanitize(answer), nil
}

// ChooseTheme runs the optional interactive theme selection with preview.
// Declining at any point returns the current theme unchanged.
func (c *Collector) ChooseTheme(current output.ThemeName) (output.ThemeName, error) {
	wantSelect := true
	if err := c.ask(&survey.Confirm{
		Message: "Would you like to select a theme?",
		Default: true,
	}, &wantSelect); err != nil {
		return current, err
	}
	if !wantSelect {
		return current, nil
	}

	var picked string
	if err := c.ask(&survey.Select{
		Message: "Theme:",
		Options: output.ThemeNames(),
		Default: string(current),
	}, &picked); err != nil {
		return current, err
	}

	chosen, err := output.ResolveTheme(picked)
	if err != nil {
		return current, err
	}

	output.Println("")
	output.Println(output.NewTheme(chosen).Preview())

	keep := true
	if err := c.ask(&survey.Confirm{
		Message: "Use this theme?",
		Default: true,
	}, &keep); err != nil {
		return current, err
	}
	if !keep {
		output.Println(c.theme.Muted(fmt.Sprintf("Using default %s theme.", output.DefaultTheme)))
		return output.DefaultTheme, nil
	}
	return chosen, nil
}

// SplitList splits comma-separated input into trimmed, non-empty items,
// preserving order.
func SplitList(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	var items []string
	for _, part := range strings.Split(input, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}

package emit

import (
	"fmt"
	"os"
	"path/filepath"
)

// WritePackageFiles emits the usr/bin launcher script for regular packages.
// Metapackages carry no files; the launcher also requires at least one tool.
func (e *Emitter) WritePackageFiles() error {
	if e.cfg.IsMetapackage {
		return nil
	}

	if err := e.mkdir(filepath.Join("usr", "bin")); err != nil {
		return err
	}

	if len(e.cfg.Tools) == 0 {
		return nil
	}

	return e.writeRendered("launcher.tmpl", filepath.Join("usr", "bin", e.cfg.Name),
		scriptPerm, "Launcher script")
}

// WriteDesktopEntry emits the freedesktop application entry when enabled.
func (e *Emitter) WriteDesktopEntry() error {
	if !e.cfg.CreateDesktop {
		return nil
	}

	rel := filepath.Join("usr", "share", "applications", e.cfg.Name+".desktop")
	return e.writeRendered("desktop.tmpl", rel, filePerm, "Desktop entry")
}

// WriteMenuEntry creates the menu section directory and, when a desktop
// entry exists, a relative symlink back to it. The link target is resolved
// by the filesystem at install time; moving the real entry breaks it.
func (e *Emitter) WriteMenuEntry() error {
	menuDir := filepath.Join("usr", "share", "serenium-menu", "applications", e.cfg.MenuSection)
	if err := e.mkdir(menuDir); err != nil {
		return err
	}

	if !e.cfg.CreateDesktop {
		return nil
	}

	linkName := e.cfg.Name + ".desktop"
	linkPath := filepath.Join(e.root, menuDir, linkName)
	target := filepath.Join("..", "..", "..", "applications", linkName)

	if err := os.Symlink(target, linkPath); err != nil {
		return fmt.Errorf("creating menu symlink %s: %w", linkName, err)
	}
	e.created[filepath.Join(menuDir, linkName)] = "Menu entry"
	return nil
}

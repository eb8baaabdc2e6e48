// Package emit renders the scaffold artifacts from a finalized
// configuration record.
package emit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/serenium/cli/internal/pkgmeta"
)

// File permissions for emitted artifacts.
const (
	dirPerm    = 0o755
	filePerm   = 0o644
	scriptPerm = 0o755
)

// Emitter writes the scaffold artifacts for one package under a target
// directory. The configuration record is read-only once emission begins.
type Emitter struct {
	cfg  *pkgmeta.Config
	root string

	// now is injectable for deterministic changelog timestamps in tests.
	now func() time.Time

	created map[string]string
}

// New creates an emitter rooted at targetDir. The directory does not need
// to exist yet.
func New(cfg *pkgmeta.Config, targetDir string) *Emitter {
	return &Emitter{
		cfg:     cfg,
		root:    targetDir,
		now:     time.Now,
		created: make(map[string]string),
	}
}

// WithClock overrides the changelog timestamp source.
func (e *Emitter) WithClock(now func() time.Time) *Emitter {
	e.now = now
	return e
}

// CreatedFiles returns the emitted artifacts mapped to one-line
// descriptions, for display.
func (e *Emitter) CreatedFiles() map[string]string {
	return e.created
}

// templateData is the substitution context shared by all artifact templates.
type templateData struct {
	Name                   string
	Version                string
	Description            string
	LongDescriptionWrapped string
	Section                string
	Depends                string
	DependenciesJoined     string
	Maintainer             string
	Email                  string
	Date                   string
	TypeLabel              string
	Tools                  []string
	Dependencies           []string
	DesktopName            string
	DesktopComment         string
	DesktopIcon            string
	DesktopCategories      string
}

func (e *Emitter) data() templateData {
	c := e.cfg

	section := "misc"
	if c.IsMetapackage {
		section = "metapackages"
	}

	// Empty dependency lists defer to the packaging tool's substitution.
	depends := "${misc:Depends}"
	if len(c.Dependencies) > 0 {
		depends = strings.Join(c.Dependencies, ", ")
	}

	// Continuation lines in the control description carry a leading space.
	wrappedLines := strings.Split(c.LongDescription, "\n")
	for i, line := range wrappedLines {
		wrappedLines[i] = " " + line
	}

	return templateData{
		Name:                   c.Name,
		Version:                c.Version,
		Description:            c.Description,
		LongDescriptionWrapped: strings.Join(wrappedLines, "\n"),
		Section:                section,
		Depends:                depends,
		DependenciesJoined:     strings.Join(c.Dependencies, ", "),
		Maintainer:             c.Maintainer,
		Email:                  c.Email,
		Date:                   e.now().Format("Mon, 02 Jan 2006 15:04:05 -0700"),
		TypeLabel:              c.TypeLabel(),
		Tools:                  c.Tools,
		Dependencies:           c.Dependencies,
		DesktopName:            c.DesktopName,
		DesktopComment:         c.DesktopComment,
		DesktopIcon:            c.DesktopIcon,
		DesktopCategories:      c.DesktopCategories,
	}
}

// mkdir creates a directory under the target root.
func (e *Emitter) mkdir(rel string) error {
	if err := os.MkdirAll(filepath.Join(e.root, rel), dirPerm); err != nil {
		return fmt.Errorf("creating directory %s: %w", rel, err)
	}
	return nil
}

// write emits one file under the target root, creating parents as needed.
func (e *Emitter) write(rel string, content []byte, perm os.FileMode, desc string) error {
	path := filepath.Join(e.root, rel)
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", rel, err)
	}
	if err := os.WriteFile(path, content, perm); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	e.created[rel] = desc
	return nil
}

// writeRendered renders an embedded template and emits the result.
func (e *Emitter) writeRendered(tmplName, rel string, perm os.FileMode, desc string) error {
	content, err := render(tmplName, e.data())
	if err != nil {
		return err
	}
	return e.write(rel, content, perm, desc)
}

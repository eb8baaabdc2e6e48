package emit

import "path/filepath"

// Fixed marker file contents.
const (
	compatLevel  = "13"
	sourceFormat = "3.0 (native)"
)

// WriteDebianDir emits the debian/ packaging metadata: changelog, control,
// rules, compat level, and source format marker.
func (e *Emitter) WriteDebianDir() error {
	if err := e.mkdir("debian"); err != nil {
		return err
	}

	if err := e.writeRendered("changelog.tmpl", filepath.Join("debian", "changelog"),
		filePerm, "Package changelog"); err != nil {
		return err
	}

	if err := e.writeRendered("control.tmpl", filepath.Join("debian", "control"),
		filePerm, "Package metadata"); err != nil {
		return err
	}

	if err := e.writeRendered("rules.tmpl", filepath.Join("debian", "rules"),
		scriptPerm, "Build rules"); err != nil {
		return err
	}

	if err := e.write(filepath.Join("debian", "compat"), []byte(compatLevel),
		filePerm, "Compatibility level"); err != nil {
		return err
	}

	return e.write(filepath.Join("debian", "source", "format"), []byte(sourceFormat),
		filePerm, "Source format")
}

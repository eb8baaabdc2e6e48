package emit

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EchoFileName is the configuration echo written into the scaffold for
// reproducibility; it loads back through the config package.
const EchoFileName = "serenium-config.yaml"

// WriteBuildScript emits the executable build.sh wrapper.
func (e *Emitter) WriteBuildScript() error {
	return e.writeRendered("build.sh.tmpl", "build.sh", scriptPerm, "Build script")
}

// WriteReadme emits the package README.
func (e *Emitter) WriteReadme() error {
	return e.writeRendered("readme.md.tmpl", "README.md", filePerm, "Documentation")
}

// WriteConfigEcho serializes the configuration record back into the
// scaffold.
func (e *Emitter) WriteConfigEcho() error {
	data, err := yaml.Marshal(e.cfg)
	if err != nil {
		return fmt.Errorf("encoding configuration echo: %w", err)
	}
	return e.write(EchoFileName, data, filePerm, "Saved configuration")
}

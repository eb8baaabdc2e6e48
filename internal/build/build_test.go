package build

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenium/cli/internal/output"
	"github.com/serenium/cli/internal/pkgmeta"
)

func testOrchestrator(t *testing.T, cfg *pkgmeta.Config) *Orchestrator {
	t.Helper()
	o := New(cfg, output.NewPlainTheme(output.ThemeSerenium), log.New(io.Discard))
	o.OutputDir = t.TempDir()
	o.Confirm = func(string) (bool, error) {
		t.Fatal("confirmation prompt not expected")
		return false, nil
	}
	return o
}

func testConfig() *pkgmeta.Config {
	cfg := pkgmeta.NewConfig()
	cfg.Name = "test-package"
	cfg.Version = "1.0.0"
	cfg.Description = "Test package"
	cfg.Normalize()
	return cfg
}

func TestRun_CreatesScaffold(t *testing.T) {
	cfg := testConfig()
	cfg.Tools = []string{"nmap"}
	cfg.Dependencies = []string{"python3", "git"}

	o := testOrchestrator(t, cfg)
	require.NoError(t, o.Run(context.Background()))

	target := filepath.Join(o.OutputDir, "test-package-1.0.0")
	assert.FileExists(t, filepath.Join(target, "debian", "changelog"))
	assert.FileExists(t, filepath.Join(target, "debian", "control"))
	assert.FileExists(t, filepath.Join(target, "debian", "rules"))
	assert.FileExists(t, filepath.Join(target, "debian", "compat"))
	assert.FileExists(t, filepath.Join(target, "debian", "source", "format"))
	assert.FileExists(t, filepath.Join(target, "usr", "bin", "test-package"))
	assert.FileExists(t, filepath.Join(target, "build.sh"))
	assert.FileExists(t, filepath.Join(target, "README.md"))
	assert.FileExists(t, filepath.Join(target, "serenium-config.yaml"))
}

func TestRun_MetapackageScaffold(t *testing.T) {
	cfg := testConfig()
	cfg.IsMetapackage = true
	cfg.Tools = []string{"nmap"}
	cfg.Normalize()

	o := testOrchestrator(t, cfg)
	require.NoError(t, o.Run(context.Background()))

	target := filepath.Join(o.OutputDir, "test-package-1.0.0")
	assert.FileExists(t, filepath.Join(target, "debian", "control"))
	assert.NoFileExists(t, filepath.Join(target, "usr", "bin", "test-package"))
}

func TestRun_OverwriteDeclinedLeavesDirUntouched(t *testing.T) {
	cfg := testConfig()
	o := testOrchestrator(t, cfg)

	// Pre-existing target with a sentinel file
	target := filepath.Join(o.OutputDir, cfg.TargetDirName())
	require.NoError(t, os.MkdirAll(target, 0o755))
	sentinel := filepath.Join(target, "keep-me.txt")
	require.NoError(t, os.WriteFile(sentinel, []byte("precious"), 0o644))

	asked := false
	o.Confirm = func(string) (bool, error) {
		asked = true
		return false, nil
	}

	require.NoError(t, o.Run(context.Background()))
	assert.True(t, asked)

	// Nothing deleted, nothing emitted
	data, err := os.ReadFile(sentinel)
	require.NoError(t, err)
	assert.Equal(t, "precious", string(data))
	assert.NoFileExists(t, filepath.Join(target, "debian", "control"))
}

func TestRun_OverwriteConfirmedReplacesDir(t *testing.T) {
	cfg := testConfig()
	o := testOrchestrator(t, cfg)

	target := filepath.Join(o.OutputDir, cfg.TargetDirName())
	require.NoError(t, os.MkdirAll(target, 0o755))
	stale := filepath.Join(target, "stale.txt")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	o.Confirm = func(string) (bool, error) { return true, nil }

	require.NoError(t, o.Run(context.Background()))

	assert.NoFileExists(t, stale)
	assert.FileExists(t, filepath.Join(target, "debian", "control"))
}

func TestRun_NoConfirmationForFreshTarget(t *testing.T) {
	o := testOrchestrator(t, testConfig())
	// testOrchestrator's Confirm fails the test when called
	require.NoError(t, o.Run(context.Background()))
}

func TestSummary(t *testing.T) {
	cfg := testConfig()
	cfg.Tools = []string{"nmap", "john"}
	cfg.Dependencies = []string{"git"}
	cfg.CreateDesktop = true
	cfg.DesktopName = "Test Package"

	o := testOrchestrator(t, cfg)
	s := o.summary()

	assert.Contains(t, s, "Package: test-package")
	assert.Contains(t, s, "Version: 1.0.0")
	assert.Contains(t, s, "Type: Regular Package")
	assert.Contains(t, s, "Tools: nmap, john")
	assert.Contains(t, s, "Dependencies: git")
	assert.Contains(t, s, "Desktop Entry: Test Package")
	assert.Contains(t, s, "Menu Section: 99-Misc")
}

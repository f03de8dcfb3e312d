package cmd

import (
	"bytes"
	"context"
	"kytos-utils/internal/config"
	"kytos-utils/internal/console"
	"kytos-utils/internal/logger"
	"kytos-utils/internal/napps"
	"kytos-utils/internal/napps/local"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	exec    *Executor
	out     *bytes.Buffer
	venv    string
	enabled string
	install string
}

// newTestEnv returns an Executor whose config file and $VIRTUAL_ENV live in
// a temporary directory, with the given NApps installed.
func newTestEnv(t *testing.T, installed ...string) *testEnv {
	t.Helper()
	console.SetTTY(false)

	dir := t.TempDir()
	venv := filepath.Join(dir, "venv")
	enabled := filepath.Join(venv, "var", "lib", "kytos", "napps")
	install := filepath.Join(enabled, ".installed")
	for _, raw := range installed {
		require.NoError(t, os.MkdirAll(filepath.Join(install, raw), 0755))
	}

	out := &bytes.Buffer{}
	e := &Executor{
		Out:        out,
		ConfigPath: filepath.Join(dir, "config", "kytos.toml"),
		LegacyPath: filepath.Join(dir, ".kytosrc"),
		LookupEnv: func(key string) (string, bool) {
			if key == "VIRTUAL_ENV" {
				return venv, true
			}
			return "", false
		},
		NewManager: func(installPath, enabledPath string) napps.Manager {
			return local.NewManager(installPath, enabledPath)
		},
	}
	return &testEnv{exec: e, out: out, venv: venv, enabled: enabled, install: install}
}

func (te *testEnv) run(command Command, args ...string) int {
	return te.exec.Execute(context.Background(), Invocation{Command: command, Args: args})
}

func TestExecuteEnableAndList(t *testing.T) {
	te := newTestEnv(t, "alice/a", "bob/b")

	require.Equal(t, 0, te.run(CommandEnable, "alice/a"))
	target, err := os.Readlink(filepath.Join(te.enabled, "alice", "a"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(te.install, "alice", "a"), target)

	te.out.Reset()
	require.Equal(t, 0, te.run(CommandList))
	expected := "\n" +
		"Status  NApp  \n" +
		"====== =======\n" +
		" [IE]  alice/a\n" +
		" [ID]  bob/b  \n" +
		"\n" +
		"Status: (I)nstalled, (E)nabled, (D)isabled\n" +
		"\n"
	assert.Equal(t, expected, te.out.String())
}

func TestExecutePersistsDefaults(t *testing.T) {
	te := newTestEnv(t)

	require.Equal(t, 0, te.run(CommandList))

	store, err := config.Open(context.Background(), config.Options{Path: te.exec.ConfigPath})
	require.NoError(t, err)
	enabled, ok := store.NApps().Get("enabled_path")
	require.True(t, ok)
	assert.Equal(t, te.enabled, enabled)
	install, ok := store.NApps().Get("install_path")
	require.True(t, ok)
	assert.Equal(t, te.enabled+"/.installed", install)
}

func TestExecuteUsesConfiguredPaths(t *testing.T) {
	te := newTestEnv(t)
	custom := filepath.Join(t.TempDir(), "custom")
	require.NoError(t, os.MkdirAll(filepath.Join(custom, "installed", "kytos", "of_core"), 0755))

	store, err := config.Open(context.Background(), config.Options{Path: te.exec.ConfigPath})
	require.NoError(t, err)
	require.NoError(t, store.NApps().Set("enabled_path", filepath.Join(custom, "enabled")))
	require.NoError(t, store.NApps().Set("install_path", filepath.Join(custom, "installed")))

	require.Equal(t, 0, te.run(CommandEnable, "kytos/of_core"))
	_, err = os.Lstat(filepath.Join(custom, "enabled", "kytos", "of_core"))
	assert.NoError(t, err)
	_, err = os.Stat(te.enabled)
	assert.True(t, os.IsNotExist(err), "default enabled folder must not be created")
}

func TestExecuteEnableStopsAtFirstError(t *testing.T) {
	te := newTestEnv(t, "alice/a", "carol/c")

	assert.Equal(t, 1, te.run(CommandEnable, "alice/a", "bob/b", "carol/c"))

	_, err := os.Lstat(filepath.Join(te.enabled, "alice", "a"))
	assert.NoError(t, err)
	_, err = os.Lstat(filepath.Join(te.enabled, "carol", "c"))
	assert.True(t, os.IsNotExist(err))
}

func TestExecuteInvalidNAppTouchesNothing(t *testing.T) {
	te := newTestEnv(t, "alice/a")

	assert.Equal(t, 1, te.run(CommandEnable, "alice/a", "not-a-napp"))

	_, err := os.Lstat(filepath.Join(te.enabled, "alice", "a"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(te.exec.ConfigPath)
	assert.True(t, os.IsNotExist(err), "config must not be written")
}

func TestExecuteDisable(t *testing.T) {
	te := newTestEnv(t, "alice/a")

	require.Equal(t, 0, te.run(CommandEnable, "alice/a"))
	require.Equal(t, 0, te.run(CommandDisable, "alice/a"))

	_, err := os.Lstat(filepath.Join(te.enabled, "alice", "a"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(te.install, "alice", "a"))
	assert.NoError(t, err)

	assert.Equal(t, 1, te.run(CommandDisable, "alice/a"))
}

type recordingManager struct {
	installPath, enabledPath string
	disabled                 []napps.NApp
}

func (m *recordingManager) Enable(ctx context.Context, n napps.NApp) error { return nil }

func (m *recordingManager) Disable(ctx context.Context, n napps.NApp) error {
	m.disabled = append(m.disabled, n)
	return nil
}

func (m *recordingManager) ListEnabled(ctx context.Context) ([]napps.NApp, error) { return nil, nil }

func (m *recordingManager) ListDisabled(ctx context.Context) ([]napps.NApp, error) { return nil, nil }

func TestExecuteDisableResolvesOnlyEnabledPath(t *testing.T) {
	te := newTestEnv(t)
	rec := &recordingManager{}
	te.exec.NewManager = func(installPath, enabledPath string) napps.Manager {
		rec.installPath, rec.enabledPath = installPath, enabledPath
		return rec
	}

	require.Equal(t, 0, te.run(CommandDisable, "alice/a", "bob/b"))
	assert.Equal(t, "", rec.installPath)
	assert.Equal(t, te.enabled, rec.enabledPath)
	assert.Equal(t, []napps.NApp{{Author: "alice", Name: "a"}, {Author: "bob", Name: "b"}}, rec.disabled)

	store, err := config.Open(context.Background(), config.Options{Path: te.exec.ConfigPath})
	require.NoError(t, err)
	_, ok := store.NApps().Get("install_path")
	assert.False(t, ok)
}

func TestExecutePaths(t *testing.T) {
	te := newTestEnv(t)

	require.Equal(t, 0, te.run(CommandPaths))
	out := te.out.String()
	assert.Contains(t, out, te.exec.ConfigPath)
	assert.Contains(t, out, "| enabled_path | "+te.enabled)
	assert.Contains(t, out, "| install_path | "+te.install)
}

func TestExecuteHelp(t *testing.T) {
	te := newTestEnv(t)

	require.Equal(t, 0, te.run(CommandHelp, "disable"))
	assert.Contains(t, te.out.String(), "disable <author/name>...")

	assert.Equal(t, 1, te.run(CommandHelp, "install"))
}

func TestExecuteVersion(t *testing.T) {
	te := newTestEnv(t)

	require.Equal(t, 0, te.run(CommandVersion))
	assert.Contains(t, te.out.String(), "kytos-utils")
}

func TestExecuteWithoutHandlerIsFatal(t *testing.T) {
	te := newTestEnv(t)

	assert.PanicsWithValue(t, logger.FatalError{}, func() {
		te.run(CommandNone)
	})
}

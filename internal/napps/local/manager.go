// Package local implements napps.Manager on the local filesystem.
//
// Installed NApps live in <install_path>/<author>/<name>. Enabling a NApp
// creates the symlink <enabled_path>/<author>/<name> pointing at the
// installed directory; disabling removes that link.
package local

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"kytos-utils/internal/logger"
	"kytos-utils/internal/napps"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Manager manages NApps below an install and an enabled directory.
type Manager struct {
	installPath string
	enabledPath string
}

// NewManager returns a Manager. installPath may be empty for managers that
// only disable NApps.
func NewManager(installPath, enabledPath string) *Manager {
	return &Manager{installPath: installPath, enabledPath: enabledPath}
}

var _ napps.Manager = (*Manager)(nil)

func (m *Manager) installedDir(n napps.NApp) string {
	return filepath.Join(m.installPath, n.Author, n.Name)
}

func (m *Manager) enabledLink(n napps.NApp) string {
	return filepath.Join(m.enabledPath, n.Author, n.Name)
}

// Enable links the installed NApp into the enabled directory.
func (m *Manager) Enable(ctx context.Context, n napps.NApp) error {
	if m.installPath == "" {
		return errors.New("enable: install path not configured")
	}

	src := m.installedDir(n)
	info, err := os.Stat(src)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return fmt.Errorf("%w: %s", napps.ErrNotInstalled, n)
	}
	if err != nil {
		return fmt.Errorf("enable %s: %w", n, err)
	}

	dst := m.enabledLink(n)
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%w: %s", napps.ErrAlreadyEnabled, n)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("enable %s: %w", n, err)
	}

	logger.Info(ctx, "Enabling NApp '{{_NApp_}}%s{{|-|}}'", n)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("enable %s: %w", n, err)
	}
	if err := os.Symlink(src, dst); err != nil {
		return fmt.Errorf("enable %s: %w", n, err)
	}
	logger.Notice(ctx, "NApp '{{_NApp_}}%s{{|-|}}' enabled.", n)
	return nil
}

// Disable removes the enabled link of the NApp. The installed copy is kept.
func (m *Manager) Disable(ctx context.Context, n napps.NApp) error {
	dst := m.enabledLink(n)
	if _, err := os.Lstat(dst); errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", napps.ErrNotEnabled, n)
	} else if err != nil {
		return fmt.Errorf("disable %s: %w", n, err)
	}

	logger.Info(ctx, "Disabling NApp '{{_NApp_}}%s{{|-|}}'", n)
	if err := os.Remove(dst); err != nil {
		return fmt.Errorf("disable %s: %w", n, err)
	}
	logger.Notice(ctx, "NApp '{{_NApp_}}%s{{|-|}}' disabled.", n)
	return nil
}

// ListEnabled returns the NApps present in the enabled directory.
func (m *Manager) ListEnabled(ctx context.Context) ([]napps.NApp, error) {
	return scan(ctx, m.enabledPath)
}

// ListInstalled returns the NApps present in the install directory.
func (m *Manager) ListInstalled(ctx context.Context) ([]napps.NApp, error) {
	return scan(ctx, m.installPath)
}

// ListDisabled returns installed NApps that are not enabled.
func (m *Manager) ListDisabled(ctx context.Context) ([]napps.NApp, error) {
	installed, err := m.ListInstalled(ctx)
	if err != nil {
		return nil, err
	}
	enabled, err := m.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}

	var disabled []napps.NApp
	for _, n := range installed {
		if !slices.Contains(enabled, n) {
			disabled = append(disabled, n)
		}
	}
	return disabled, nil
}

// skipName reports entries that are not NApp directories (e.g. .installed, __pycache__).
func skipName(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "__")
}

// scan lists <root>/<author>/<name> directories (following symlinks), sorted.
// A missing root holds no NApps.
func scan(ctx context.Context, root string) ([]napps.NApp, error) {
	if root == "" {
		return nil, nil
	}

	authors, err := os.ReadDir(root)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug(ctx, "NApps folder '{{_Folder_}}%s{{|-|}}' does not exist.", root)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", root, err)
	}

	var found []napps.NApp
	for _, author := range authors {
		if skipName(author.Name()) || !isDir(filepath.Join(root, author.Name())) {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(root, author.Name()))
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", root, err)
		}
		for _, entry := range entries {
			if skipName(entry.Name()) || !isDir(filepath.Join(root, author.Name(), entry.Name())) {
				continue
			}
			napp := napps.NApp{Author: author.Name(), Name: entry.Name()}
			logger.Trace(ctx, "Found NApp '{{_NApp_}}%s{{|-|}}' in '{{_Folder_}}%s{{|-|}}'", napp, root)
			found = append(found, napp)
		}
	}
	return found, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

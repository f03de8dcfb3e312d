package napps

import (
	"context"
	"fmt"
	"kytos-utils/internal/constants"
	"kytos-utils/internal/logger"
	"kytos-utils/internal/paths"
	"os"
	"path/filepath"
)

// ConfigStore is the key/value view of the configuration the resolver needs.
type ConfigStore interface {
	// Get returns the stored value for key, if any.
	Get(key string) (string, bool)
	// SetIfAbsent stores value under key unless key already has a value, and
	// persists the change. It returns the value now stored and whether it was
	// written by this call.
	SetIfAbsent(key, value string) (stored string, created bool, err error)
}

// PathResolver resolves the install and enabled NApp directories, writing
// computed defaults back to the store the first time they are needed.
type PathResolver struct {
	store     ConfigStore
	lookupEnv func(string) (string, bool)
}

// NewPathResolver returns a resolver backed by store and the process environment.
func NewPathResolver(store ConfigStore) *PathResolver {
	return &PathResolver{store: store, lookupEnv: os.LookupEnv}
}

// WithEnv replaces the environment lookup (used by tests).
func (r *PathResolver) WithEnv(lookupEnv func(string) (string, bool)) *PathResolver {
	r.lookupEnv = lookupEnv
	return r
}

// DefaultEnabledPath returns <base>/var/lib/kytos/napps, with base falling back to "/".
func DefaultEnabledPath(base string) string {
	if base == "" {
		base = string(filepath.Separator)
	}
	return filepath.Join(base, "var", "lib", "kytos", "napps")
}

// DefaultInstallPath returns the install registry inside enabledPath.
func DefaultInstallPath(enabledPath string) string {
	return enabledPath + "/" + constants.InstalledDirName
}

// EnabledPath returns the configured enabled_path, defaulting to a directory
// under $VIRTUAL_ENV (or the filesystem root).
func (r *PathResolver) EnabledPath(ctx context.Context) (string, error) {
	if v, ok := r.store.Get(constants.EnabledPathKey); ok {
		return paths.ExpandVariables(v), nil
	}

	base, _ := r.lookupEnv(constants.VirtualEnvVar)
	return r.persistDefault(ctx, constants.EnabledPathKey, DefaultEnabledPath(base))
}

// InstallPath returns the configured install_path. When unset, enabled_path is
// resolved first and the default is derived from its stored value.
func (r *PathResolver) InstallPath(ctx context.Context) (string, error) {
	if v, ok := r.store.Get(constants.InstallPathKey); ok {
		return paths.ExpandVariables(v), nil
	}

	if _, err := r.EnabledPath(ctx); err != nil {
		return "", err
	}
	enabled, _ := r.store.Get(constants.EnabledPathKey)
	return r.persistDefault(ctx, constants.InstallPathKey, DefaultInstallPath(enabled))
}

func (r *PathResolver) persistDefault(ctx context.Context, key, value string) (string, error) {
	stored, created, err := r.store.SetIfAbsent(key, value)
	if err != nil {
		return "", fmt.Errorf("saving default %s: %w", key, err)
	}
	if created {
		logger.Warn(ctx, "Using default {{_Var_}}%s{{|-|}}='{{_Folder_}}%s{{|-|}}'. Set it in the configuration file to silence this warning.", key, stored)
	}
	return paths.ExpandVariables(stored), nil
}

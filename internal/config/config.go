// Package config implements the file-backed configuration store.
//
// Settings are grouped in sections and persisted as TOML tables, e.g.
//
//	[napps]
//	enabled_path = "/var/lib/kytos/napps"
//	install_path = "/var/lib/kytos/napps/.installed"
//
// Writes hold an advisory lock on <file>.lock and re-read the file first,
// so a value written by another process is never overwritten by SetIfAbsent.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"kytos-utils/internal/constants"
	"kytos-utils/internal/logger"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/gofrs/flock"
	toml "github.com/pelletier/go-toml/v2"
)

// Options describes parameters for opening a configuration store.
type Options struct {
	Path       string // TOML file (required)
	LegacyPath string // Optional INI file imported when Path does not exist yet
}

// Store holds the settings of one configuration file.
type Store struct {
	path     string
	sections map[string]map[string]string
}

// Open loads the configuration file. A missing file yields an empty store,
// seeded from the legacy INI file when one exists.
func Open(ctx context.Context, opts Options) (*Store, error) {
	if opts.Path == "" {
		return nil, errors.New("config: no configuration file path")
	}

	s := &Store{path: opts.Path, sections: map[string]map[string]string{}}
	sections, err := readFile(opts.Path)
	switch {
	case err == nil:
		s.sections = sections
		return s, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}

	if opts.LegacyPath == "" {
		return s, nil
	}
	if _, err := os.Stat(opts.LegacyPath); err != nil {
		return s, nil
	}

	logger.Notice(ctx, "Migrating configuration from '{{_File_}}%s{{|-|}}' to '{{_File_}}%s{{|-|}}'", opts.LegacyPath, opts.Path)
	legacy, err := loadLegacyConfig(opts.LegacyPath)
	if err != nil {
		return nil, fmt.Errorf("config: migrate %s: %w", opts.LegacyPath, err)
	}
	s.sections = legacy
	if err := s.Save(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the configuration file location.
func (s *Store) Path() string {
	return s.path
}

// Section returns the key/value view of a section.
func (s *Store) Section(name string) *Section {
	return &Section{store: s, name: name}
}

// NApps returns the section holding NApp directory settings.
func (s *Store) NApps() *Section {
	return s.Section(constants.NAppsSection)
}

// Save writes the store to disk.
func (s *Store) Save() error {
	return s.withLock(func() error {
		return writeFile(s.path, s.sections)
	})
}

func (s *Store) withLock(fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	lock := flock.New(s.path + constants.LockFileSuffix)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("config: lock %s: %w", s.path, err)
	}
	defer func() { _ = lock.Unlock() }()
	return fn()
}

// Section is a named group of settings within a Store.
type Section struct {
	store *Store
	name  string
}

// Get returns the value stored under key.
func (c *Section) Get(key string) (string, bool) {
	v, ok := c.store.sections[c.name][key]
	return v, ok
}

// Keys returns the section's keys in sorted order.
func (c *Section) Keys() []string {
	return slices.Sorted(maps.Keys(c.store.sections[c.name]))
}

// Set stores value under key and saves the file.
func (c *Section) Set(key, value string) error {
	return c.store.withLock(func() error {
		if err := c.store.reload(); err != nil {
			return err
		}
		c.put(key, value)
		return writeFile(c.store.path, c.store.sections)
	})
}

// SetIfAbsent stores value under key unless a value is already present, in
// memory or on disk. It returns the stored value and whether this call wrote it.
func (c *Section) SetIfAbsent(key, value string) (string, bool, error) {
	if v, ok := c.Get(key); ok {
		return v, false, nil
	}

	created := false
	err := c.store.withLock(func() error {
		if err := c.store.reload(); err != nil {
			return err
		}
		if _, ok := c.Get(key); ok {
			return nil
		}
		c.put(key, value)
		created = true
		return writeFile(c.store.path, c.store.sections)
	})
	if err != nil {
		return "", false, err
	}
	v, _ := c.Get(key)
	return v, created, nil
}

func (c *Section) put(key, value string) {
	if c.store.sections[c.name] == nil {
		c.store.sections[c.name] = map[string]string{}
	}
	c.store.sections[c.name][key] = value
}

// reload merges the file contents into memory. In-memory values win for keys
// present in both.
func (s *Store) reload() error {
	onDisk, err := readFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	for name, values := range onDisk {
		if s.sections[name] == nil {
			s.sections[name] = map[string]string{}
		}
		for k, v := range values {
			if _, ok := s.sections[name][k]; !ok {
				s.sections[name][k] = v
			}
		}
	}
	return nil
}

func readFile(path string) (map[string]map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	sections := make(map[string]map[string]string, len(raw))
	for name, values := range raw {
		sections[name] = make(map[string]string, len(values))
		for k, v := range values {
			sections[name][k] = fmt.Sprint(v)
		}
	}
	return sections, nil
}

func writeFile(path string, sections map[string]map[string]string) error {
	data, err := toml.Marshal(sections)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".kytos-*.toml")
	if err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

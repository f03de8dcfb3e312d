package config

import (
	"gopkg.in/ini.v1"
)

// loadLegacyConfig reads the INI file written by older releases (~/.kytosrc).
// %(key)s references are resolved against the same section.
func loadLegacyConfig(path string) (map[string]map[string]string, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, err
	}

	sections := map[string]map[string]string{}
	for _, section := range file.Sections() {
		if len(section.Keys()) == 0 {
			continue
		}
		values := make(map[string]string, len(section.Keys()))
		for _, key := range section.Keys() {
			values[key.Name()] = key.String()
		}
		name := section.Name()
		if name == ini.DefaultSection {
			name = "default"
		}
		sections[name] = values
	}
	return sections, nil
}

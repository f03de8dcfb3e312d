package paths

import (
	"kytos-utils/internal/constants"
	"os"
	"os/user"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

var (
	// ConfigFileOverride replaces the config file location (set by --config and tests).
	ConfigFileOverride string
	// StateHomeOverride allows overriding the state home for tests.
	StateHomeOverride string
	// HomeOverride allows overriding the home directory used for the legacy config file.
	HomeOverride string
)

// GetConfigFilePath returns the absolute path to the kytos.toml file.
// It places it in a subdirectory named after the application (e.g., ~/.config/kytos/kytos.toml).
func GetConfigFilePath() string {
	if ConfigFileOverride != "" {
		return ConfigFileOverride
	}
	if runtime.GOOS == "darwin" {
		return filepath.Join(homeDir(), ".config", constants.ConfigDirName, constants.AppConfigFileName)
	}
	return filepath.Join(xdg.ConfigHome, constants.ConfigDirName, constants.AppConfigFileName)
}

// GetConfigDir returns the absolute path to the kytos configuration directory.
func GetConfigDir() string {
	return filepath.Dir(GetConfigFilePath())
}

// GetLegacyConfigFilePath returns the INI file written by older releases (~/.kytosrc).
func GetLegacyConfigFilePath() string {
	return filepath.Join(homeDir(), constants.LegacyConfigName)
}

// GetStateDir returns the absolute path to the kytos state directory.
func GetStateDir() string {
	if StateHomeOverride != "" {
		return StateHomeOverride
	}
	return filepath.Join(xdg.StateHome, constants.ConfigDirName)
}

// GetLogFilePath returns the path of the application log file.
func GetLogFilePath() string {
	return filepath.Join(GetStateDir(), constants.LogFileName)
}

// ExpandVariables expands variables in configured path values.
// It supports:
// - ${XDG_CONFIG_HOME} -> xdg.ConfigHome
// - ${XDG_DATA_HOME}   -> xdg.DataHome
// - ${XDG_STATE_HOME}  -> xdg.StateHome
// - ${HOME}            -> user home directory
// - ${USER}            -> current username
// - anything else      -> process environment
func ExpandVariables(val string) string {
	mapper := func(varName string) string {
		switch varName {
		case "XDG_CONFIG_HOME":
			return xdg.ConfigHome
		case "XDG_DATA_HOME":
			return xdg.DataHome
		case "XDG_STATE_HOME":
			return xdg.StateHome
		case "HOME":
			return homeDir()
		case "USER":
			u, err := user.Current()
			if err != nil {
				return os.Getenv("USERNAME") // Fallback for Windows
			}
			return u.Username
		}
		return os.Getenv(varName)
	}
	return os.Expand(val, mapper)
}

func homeDir() string {
	if HomeOverride != "" {
		return HomeOverride
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return xdg.Home
}

package constants

// Config sections
const (
	NAppsSection = "napps"
)

// Config keys
const (
	EnabledPathKey = "enabled_path"
	InstallPathKey = "install_path"
)

// Folder Names
const (
	ConfigDirName    = "kytos"
	InstalledDirName = ".installed"
)

// File Names
const (
	AppConfigFileName = "kytos.toml"
	LegacyConfigName  = ".kytosrc"
	LockFileSuffix    = ".lock"
	LogFileName       = "kytos-napps.log"
)

// Environment
const (
	// VirtualEnvVar names the base directory used for default NApp paths.
	VirtualEnvVar = "VIRTUAL_ENV"
)

package fscompat

import (
	"fmt"
)

const (
	// DefaultDfCommand is the mount-table reporting command used to detect
	// filesystem types when no override is configured.
	DefaultDfCommand = "df"

	// DefaultZfsParamPath is the well-known kernel parameter file guarding
	// ZFS sparse-write compatibility.
	DefaultZfsParamPath = "/sys/module/zfs/parameters/zfs_dmu_offset_next_sync"

	// KeyDfCommand is the configuration key overriding the mount-table
	// reporting command.
	KeyDfCommand = "BMAP_DF_COMMAND"

	// KeyZfsParamPath is the configuration key overriding the ZFS kernel
	// parameter file location.
	KeyZfsParamPath = "BMAP_ZFS_PARAM_PATH"
)

type configProvider interface {
	ReadGeneric(filenames ...string) (map[string]string, error)
	MapKeyToString(envMap map[string]string, key string) string
}

// Settings holds the host-specific locations the probing functions operate
// against. The zero value is not usable; obtain one from [DefaultSettings] or
// [LoadSettings].
type Settings struct {
	// DfCommand is the mount-table reporting command.
	DfCommand string

	// ZfsParamPath is the location of the ZFS compatibility parameter.
	ZfsParamPath string
}

// DefaultSettings returns a pointer to a new [Settings] with the built-in
// defaults.
func DefaultSettings() *Settings {
	return &Settings{
		DfCommand:    DefaultDfCommand,
		ZfsParamPath: DefaultZfsParamPath,
	}
}

// LoadSettings reads override settings from the given Unix-type environment
// files, falling back to the built-in defaults for any key that is unset.
// With no filenames given, the defaults are returned without touching the
// filesystem.
func LoadSettings(configHandler configProvider, filenames ...string) (*Settings, error) {
	settings := DefaultSettings()

	if len(filenames) == 0 {
		return settings, nil
	}

	envMap, err := configHandler.ReadGeneric(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(fscompat-settings) failed to read configuration: %w", err)
	}

	if value := configHandler.MapKeyToString(envMap, KeyDfCommand); value != "" {
		settings.DfCommand = value
	}
	if value := configHandler.MapKeyToString(envMap, KeyZfsParamPath); value != "" {
		settings.ZfsParamPath = value
	}

	return settings, nil
}

package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is used for directory and environment variable naming.
const AppName = "gitstory"

const (
	// ProjectDirName is the per-repository configuration directory.
	ProjectDirName = ".gitstory"

	// WorkflowFileName is the workflow definition inside ProjectDirName.
	WorkflowFileName = "workflow.yaml"

	// ConfigName is the config file base name (without extension).
	ConfigName = "config"

	// ConfigDirEnv overrides UserConfigDir.
	ConfigDirEnv = "GITSTORY_CONFIG_DIR"
)

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// UserConfigDir returns the directory searched for the user-level config file.
func UserConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ProjectDir returns the .gitstory directory under root.
func ProjectDir(root string) string {
	return filepath.Join(root, ProjectDirName)
}

// WorkflowPath returns the workflow definition path under root.
// With an empty root the path is relative to the working directory.
func WorkflowPath(root string) string {
	return filepath.Join(ProjectDir(root), WorkflowFileName)
}

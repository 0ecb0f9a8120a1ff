// Package paths names the files and directories gitstory reads.
//
// Project state lives in a .gitstory directory at the repository root.
// User-level configuration lives under the XDG config home:
//
//	Linux:   ~/.config/gitstory/config.yaml
//	macOS:   ~/Library/Application Support/gitstory/config.yaml
//	Windows: %LOCALAPPDATA%\gitstory\config.yaml
//
// GITSTORY_CONFIG_DIR overrides the user-level directory.
package paths

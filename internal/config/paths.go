// ABOUTME: Standard filesystem paths for promptchat configuration
// ABOUTME: Resolves ~/.promptchat/ for global and .promptchat/ for project paths

package config

import (
	"os"
	"path/filepath"
)

const dirName = ".promptchat"

// GlobalDir returns the user-global config directory (~/.promptchat/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", dirName)
	}
	return filepath.Join(home, dirName)
}

// ProjectDir returns the project-local config directory.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, dirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.json")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.json")
}

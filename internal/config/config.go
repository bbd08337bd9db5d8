// ABOUTME: Demo settings loading with global + project config deep merge
// ABOUTME: JSON-based configuration; project values override global ones

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings holds the merged promptchat configuration.
type Settings struct {
	// Scenario is the path to a YAML script for the fake host.
	Scenario string `json:"scenario,omitempty"`
	// Style is the glamour style used for assistant markdown.
	Style string `json:"style,omitempty"`
	// Quota overrides the scripted host's input quota.
	Quota float64 `json:"quota,omitempty"`
	// Verbose enables debug logging.
	Verbose bool `json:"verbose,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return merge(global, project), nil
}

// loadFile reads Settings from a JSON file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge deep-merges project settings onto global settings.
// Non-zero project values win.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global
	if project.Scenario != "" {
		result.Scenario = project.Scenario
	}
	if project.Style != "" {
		result.Style = project.Style
	}
	if project.Quota != 0 {
		result.Quota = project.Quota
	}
	if project.Verbose {
		result.Verbose = true
	}
	return &result
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/scaffolddemo"
	projectConfigDir = ".scaffolddemo"
	configFileName   = "config.yaml"
)

// LoadConfig loads the configuration by layering default, user, and project settings.
func LoadConfig() (DemoConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// user config is optional
		fmt.Fprintf(os.Stderr, "Warning: Could not determine user config path: %v\n", err)
	} else if config, err = overlayIfExists(config, userConfigPath); err != nil {
		return DemoConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not determine project config path: %v\n", err)
	} else if config, err = overlayIfExists(config, projectConfigPath); err != nil {
		return DemoConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
	}

	return config, nil
}

// LoadConfigFromPath loads the defaults overlaid with a single file. Unlike
// the layered lookup, a missing file is an error.
func LoadConfigFromPath(path string) (DemoConfig, error) {
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return DemoConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeConfigs(GetDefaultConfig(), overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func overlayIfExists(base DemoConfig, path string) (DemoConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return base, err
	}
	return mergeConfigs(base, overlay), nil
}

// loadConfigFromFile loads a DemoConfig from a YAML file.
func loadConfigFromFile(filePath string) (DemoConfig, error) {
	var config DemoConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return DemoConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return DemoConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Scalars override
// when set; item lists replace the base list wholesale.
func mergeConfigs(base, overlay DemoConfig) DemoConfig {
	merged := base

	if overlay.GlobalSettings.Locale != "" {
		merged.GlobalSettings.Locale = overlay.GlobalSettings.Locale
	}
	if overlay.GlobalSettings.DarkMode != nil {
		merged.GlobalSettings.DarkMode = overlay.GlobalSettings.DarkMode
	}
	if overlay.GlobalSettings.Mouse != nil {
		merged.GlobalSettings.Mouse = overlay.GlobalSettings.Mouse
	}

	if overlay.Screen != "" {
		merged.Screen = overlay.Screen
	}
	if overlay.Title != "" {
		merged.Title = overlay.Title
	}
	if len(overlay.BottomItems) > 0 {
		merged.BottomItems = append([]NavigationItem(nil), overlay.BottomItems...)
	}
	if len(overlay.DrawerItems) > 0 {
		merged.DrawerItems = append([]NavigationItem(nil), overlay.DrawerItems...)
	}
	if len(overlay.MenuItems) > 0 {
		merged.MenuItems = append([]string(nil), overlay.MenuItems...)
	}

	if overlay.Snackbar.Message != "" {
		merged.Snackbar.Message = overlay.Snackbar.Message
	}
	if overlay.Snackbar.Duration != 0 {
		merged.Snackbar.Duration = overlay.Snackbar.Duration
	}

	if overlay.Animation.Frames != nil {
		merged.Animation.Frames = overlay.Animation.Frames
	}
	if overlay.Animation.FrameInterval != 0 {
		merged.Animation.FrameInterval = overlay.Animation.FrameInterval
	}

	return merged
}


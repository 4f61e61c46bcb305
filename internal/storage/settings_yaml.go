package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"pomotray/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	FocusMinutes      *int  `yaml:"focusMinutes"`
	ShortBreakMinutes *int  `yaml:"shortBreakMinutes"`
	LongBreakMinutes  *int  `yaml:"longBreakMinutes"`
	LongBreakInterval *int  `yaml:"longBreakInterval"`
	SoundEnabled      *bool `yaml:"soundEnabled"`
	SoundVolume       *int  `yaml:"soundVolume"`
	LaunchAtLogin     *bool `yaml:"launchAtLogin"`
}

// LoadSettings reads user preferences from YAML, merging persisted fields
// over defaults. A missing or unreadable file yields defaults.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return loadSettingsFile(configPath)
}

// SaveSettings clamps every numeric field to its range and writes the
// result to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := resolveConfigPath(appName, settingsFileName)
	if err != nil {
		return err
	}
	return saveSettingsFile(configPath, settings)
}

func loadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func saveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	clamped := settings.Clamped()
	fileData := yamlSettings{
		FocusMinutes:      &clamped.FocusMinutes,
		ShortBreakMinutes: &clamped.ShortBreakMinutes,
		LongBreakMinutes:  &clamped.LongBreakMinutes,
		LongBreakInterval: &clamped.LongBreakInterval,
		SoundEnabled:      &clamped.SoundEnabled,
		SoundVolume:       &clamped.SoundVolume,
		LaunchAtLogin:     &clamped.LaunchAtLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveConfigPath(appName, fileName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, fileName), nil
}

// applyYamlSettings copies persisted fields over the defaults. A field that
// is absent or out of its valid range keeps the default value; clamping to
// the range happens only on save.
func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.FocusMinutes != nil && inRange(*fileData.FocusMinutes, preferences.MinFocusMinutes, preferences.MaxFocusMinutes) {
		settings.FocusMinutes = *fileData.FocusMinutes
	}
	if fileData.ShortBreakMinutes != nil && inRange(*fileData.ShortBreakMinutes, preferences.MinShortBreakMinutes, preferences.MaxShortBreakMinutes) {
		settings.ShortBreakMinutes = *fileData.ShortBreakMinutes
	}
	if fileData.LongBreakMinutes != nil && inRange(*fileData.LongBreakMinutes, preferences.MinLongBreakMinutes, preferences.MaxLongBreakMinutes) {
		settings.LongBreakMinutes = *fileData.LongBreakMinutes
	}
	if fileData.LongBreakInterval != nil && inRange(*fileData.LongBreakInterval, preferences.MinLongBreakInterval, preferences.MaxLongBreakInterval) {
		settings.LongBreakInterval = *fileData.LongBreakInterval
	}
	if fileData.SoundVolume != nil && inRange(*fileData.SoundVolume, preferences.MinSoundVolume, preferences.MaxSoundVolume) {
		settings.SoundVolume = *fileData.SoundVolume
	}
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.LaunchAtLogin != nil {
		settings.LaunchAtLogin = *fileData.LaunchAtLogin
	}
}

func inRange(value, min, max int) bool {
	return value >= min && value <= max
}

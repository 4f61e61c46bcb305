package storage

import (
	"os"
	"path/filepath"
	"testing"

	"pomotray/internal/ui/preferences"
)

func settingsPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "settings.yaml")
}

func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := loadSettingsFile(settingsPath(t))
	if err != nil {
		t.Fatalf("missing file returned error: %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Fatalf("missing file settings = %+v, want defaults", settings)
	}
}

func TestLoadSettingsCorruptFile(t *testing.T) {
	path := settingsPath(t)
	if err := os.WriteFile(path, []byte("{{{ not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := loadSettingsFile(path)
	if err == nil {
		t.Error("corrupt file produced no warning error")
	}
	if settings != preferences.DefaultSettings() {
		t.Fatalf("corrupt file settings = %+v, want defaults", settings)
	}
}

func TestLoadSettingsMergesFieldByField(t *testing.T) {
	path := settingsPath(t)
	payload := "focusMinutes: 50\nsoundEnabled: false\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := loadSettingsFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings.FocusMinutes != 50 {
		t.Errorf("focusMinutes = %d, want 50", settings.FocusMinutes)
	}
	if settings.SoundEnabled {
		t.Error("soundEnabled not applied")
	}
	defaults := preferences.DefaultSettings()
	if settings.ShortBreakMinutes != defaults.ShortBreakMinutes ||
		settings.LongBreakInterval != defaults.LongBreakInterval {
		t.Errorf("absent fields did not keep defaults: %+v", settings)
	}
}

func TestLoadSettingsOutOfRangeFieldFallsBack(t *testing.T) {
	path := settingsPath(t)
	payload := "focusMinutes: 0\nshortBreakMinutes: 10\nlongBreakInterval: 99\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := loadSettingsFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defaults := preferences.DefaultSettings()
	if settings.FocusMinutes != defaults.FocusMinutes {
		t.Errorf("focusMinutes = %d, want default %d", settings.FocusMinutes, defaults.FocusMinutes)
	}
	if settings.LongBreakInterval != defaults.LongBreakInterval {
		t.Errorf("longBreakInterval = %d, want default %d", settings.LongBreakInterval, defaults.LongBreakInterval)
	}
	if settings.ShortBreakMinutes != 10 {
		t.Errorf("shortBreakMinutes = %d, want 10", settings.ShortBreakMinutes)
	}
}

func TestSaveSettingsClampsBeforePersisting(t *testing.T) {
	path := settingsPath(t)
	settings := preferences.Settings{
		FocusMinutes:      999,
		ShortBreakMinutes: 0,
		LongBreakMinutes:  30,
		LongBreakInterval: 1,
		SoundEnabled:      true,
		SoundVolume:       150,
	}
	if err := saveSettingsFile(path, settings); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := loadSettingsFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.FocusMinutes != preferences.MaxFocusMinutes {
		t.Errorf("focusMinutes = %d, want clamped %d", loaded.FocusMinutes, preferences.MaxFocusMinutes)
	}
	if loaded.ShortBreakMinutes != preferences.MinShortBreakMinutes {
		t.Errorf("shortBreakMinutes = %d, want clamped %d", loaded.ShortBreakMinutes, preferences.MinShortBreakMinutes)
	}
	if loaded.LongBreakInterval != preferences.MinLongBreakInterval {
		t.Errorf("longBreakInterval = %d, want clamped %d", loaded.LongBreakInterval, preferences.MinLongBreakInterval)
	}
	if loaded.SoundVolume != preferences.MaxSoundVolume {
		t.Errorf("soundVolume = %d, want clamped %d", loaded.SoundVolume, preferences.MaxSoundVolume)
	}
	if loaded.LongBreakMinutes != 30 {
		t.Errorf("longBreakMinutes = %d, want 30 untouched", loaded.LongBreakMinutes)
	}
}

func TestSaveLoadIdempotent(t *testing.T) {
	path := settingsPath(t)
	original := preferences.DefaultSettings()
	original.FocusMinutes = 45
	original.SoundVolume = 30

	if err := saveSettingsFile(path, original); err != nil {
		t.Fatalf("first save: %v", err)
	}
	loaded, err := loadSettingsFile(path)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if err := saveSettingsFile(path, loaded); err != nil {
		t.Fatalf("second save: %v", err)
	}
	reloaded, err := loadSettingsFile(path)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if reloaded != loaded {
		t.Fatalf("save(load()) not idempotent: %+v != %+v", reloaded, loaded)
	}
}

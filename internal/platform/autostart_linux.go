//go:build linux

package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func enableAutostart(appName, execPath string) error {
	autostartDir, err := autostartDirPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(autostartDir, 0o755); err != nil {
		return fmt.Errorf("autostart: create dir: %w", err)
	}

	execLine := execPath
	if strings.Contains(execLine, " ") {
		execLine = `"` + execLine + `"`
	}
	entry := fmt.Sprintf("[Desktop Entry]\nType=Application\nName=%s\nExec=%s\nX-GNOME-Autostart-enabled=true\nTerminal=false\n",
		appName, execLine)

	entryPath := filepath.Join(autostartDir, autostartID(appName)+".desktop")
	if err := os.WriteFile(entryPath, []byte(entry), 0o644); err != nil {
		return fmt.Errorf("autostart: write desktop entry: %w", err)
	}
	return nil
}

func disableAutostart(appName string) error {
	autostartDir, err := autostartDirPath()
	if err != nil {
		return err
	}
	entryPath := filepath.Join(autostartDir, autostartID(appName)+".desktop")
	if err := os.Remove(entryPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("autostart: remove desktop entry: %w", err)
	}
	return nil
}

func autostartDirPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("autostart: resolve config dir: %w", err)
	}
	return filepath.Join(configDir, "autostart"), nil
}

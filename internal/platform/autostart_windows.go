//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

const runKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func enableAutostart(appName, execPath string) error {
	quoted := `"` + strings.Trim(execPath, `"`) + `"`
	command := exec.Command("reg", "add", runKey, "/v", appName, "/t", "REG_SZ", "/d", quoted, "/f")
	if output, err := command.CombinedOutput(); err != nil {
		return fmt.Errorf("autostart: reg add: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

func disableAutostart(appName string) error {
	command := exec.Command("reg", "delete", runKey, "/v", appName, "/f")
	if output, err := command.CombinedOutput(); err != nil {
		return fmt.Errorf("autostart: reg delete: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}

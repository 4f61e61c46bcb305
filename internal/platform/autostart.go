package platform

import (
	"fmt"
	"strings"
)

// SetAutostart registers or removes the application in the OS launch-at-login
// mechanism for the current user.
func SetAutostart(appName, execPath string, enabled bool) error {
	if strings.TrimSpace(appName) == "" {
		return fmt.Errorf("autostart: app name is empty")
	}
	if enabled {
		if strings.TrimSpace(execPath) == "" {
			return fmt.Errorf("autostart: exec path is empty")
		}
		return enableAutostart(appName, execPath)
	}
	return disableAutostart(appName)
}

func autostartID(appName string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(appName)), " ", "-")
}

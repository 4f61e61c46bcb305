//go:build windows

package platform

import (
	"fmt"
	"os/exec"
)

const chimeSoundPath = `C:\Windows\Media\Windows Notify.wav`

func playChime(volume float64) error {
	// Media.SoundPlayer has no volume control; the chime plays at system
	// volume whenever the configured volume is audible at all.
	if volume <= 0 {
		return nil
	}
	script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", chimeSoundPath)
	if err := exec.Command("powershell", "-NoProfile", "-Command", script).Run(); err != nil {
		return fmt.Errorf("powershell sound player: %w", err)
	}
	return nil
}

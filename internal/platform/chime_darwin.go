//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

const chimeSoundPath = "/System/Library/Sounds/Glass.aiff"

func playChime(volume float64) error {
	if err := exec.Command("afplay", "-v", fmt.Sprintf("%.2f", volume), chimeSoundPath).Run(); err != nil {
		return fmt.Errorf("afplay: %w", err)
	}
	return nil
}

//go:build linux

package platform

import (
	"fmt"
	"os"
	"os/exec"
)

var chimeCandidates = []string{
	"/usr/share/sounds/freedesktop/stereo/complete.oga",
	"/usr/share/sounds/freedesktop/stereo/bell.oga",
}

func playChime(volume float64) error {
	soundPath := ""
	for _, candidate := range chimeCandidates {
		if _, err := os.Stat(candidate); err == nil {
			soundPath = candidate
			break
		}
	}
	if soundPath == "" {
		return fmt.Errorf("no system completion sound found")
	}

	if paplay, err := exec.LookPath("paplay"); err == nil {
		// paplay volume is linear, 0..65536.
		return exec.Command(paplay, fmt.Sprintf("--volume=%d", int(volume*65536)), soundPath).Run()
	}
	if ffplay, err := exec.LookPath("ffplay"); err == nil {
		return exec.Command(ffplay, "-nodisp", "-autoexit", "-loglevel", "quiet",
			"-volume", fmt.Sprintf("%d", int(volume*100)), soundPath).Run()
	}
	return fmt.Errorf("no audio player available")
}

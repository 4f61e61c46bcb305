package platform

import "log"

// PlayChime plays the completion sound at the given volume in [0,1],
// best-effort and without blocking the caller. Playback failures are only
// logged; there is nothing the timer can do about them.
func PlayChime(volume float64) {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	go func() {
		if err := playChime(volume); err != nil {
			log.Printf("play chime: %v", err)
		}
	}()
}

// Package player previews generated clips in mpv.
package player

import (
	"os/exec"

	"github.com/user/sub2clip/deps"
)

// Preview starts mpv with the generated clip, looping animated formats so
// short GIFs don't flash by. It checks that mpv is installed first and
// returns an error with an install hint if not.
// Returns the *exec.Cmd for the running process which can be used for cleanup.
func Preview(clipPath string, loop bool) (*exec.Cmd, error) {
	if err := deps.CheckMpv(); err != nil {
		return nil, err
	}

	args := []string{"--really-quiet"}
	if loop {
		args = append(args, "--loop-file=inf")
	}
	args = append(args, clipPath)

	cmd := exec.Command("mpv", args...)

	// Start the process (non-blocking)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return cmd, nil
}

// PreviewAndWait launches mpv and blocks until the viewer is closed.
func PreviewAndWait(clipPath string, loop bool) error {
	cmd, err := Preview(clipPath, loop)
	if err != nil {
		return err
	}
	return cmd.Wait()
}

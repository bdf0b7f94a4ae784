// Package viewerapp opens finished playblasts with the platform's default
// application or a user-configured player.
package viewerapp

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/user/playblast/pkg/ports"
)

// Viewer implements ports.Viewer by launching external viewer processes.
// The viewer process is started detached; playback is not awaited.
type Viewer struct{}

// New creates a new Viewer.
func New() *Viewer {
	return &Viewer{}
}

// Open opens path with the operating system's default application.
func (v *Viewer) Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}

// OpenWith opens path with a specific executable, typically a player the
// user configured for quicktime-style containers.
func (v *Viewer) OpenWith(executable, path string) error {
	cmd := exec.Command(executable, path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s with %s: %w", path, executable, err)
	}
	return nil
}

// Ensure Viewer implements ports.Viewer
var _ ports.Viewer = (*Viewer)(nil)

// Package execrunner runs external commands through os/exec while streaming
// their stderr output line by line.
package execrunner

import (
	"bufio"
	"context"
	"os/exec"
	"time"

	"github.com/user/playblast/pkg/ports"
)

// pumpInterval is how long the wait loop sleeps between pump calls while
// the child process runs.
const pumpInterval = 10 * time.Microsecond

// Runner implements ports.CommandRunner with os/exec.
type Runner struct{}

// New creates a new Runner.
func New() *Runner {
	return &Runner{}
}

// Run starts the command and blocks until it exits. Each stderr line is
// passed to onLine as it arrives; pump is invoked repeatedly while waiting
// so the caller can keep its host application responsive. ffmpeg writes its
// progress to stderr, which is why stdout is not captured.
func (r *Runner) Run(ctx context.Context, path string, args []string, onLine func(string), pump func()) error {
	cmd := exec.CommandContext(ctx, path, args...)

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	// The scanner goroutine only moves bytes off the pipe; onLine and pump
	// both run below on the calling goroutine, which is the only thread
	// allowed to touch the host.
	lines := make(chan string)
	scanned := make(chan struct{})
	go func() {
		defer close(lines)
		defer close(scanned)
		scanner := bufio.NewScanner(stderr)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	done := make(chan error, 1)
	go func() {
		// Wait closes the pipe, so the scanner must finish first.
		<-scanned
		done <- cmd.Wait()
	}()

	for {
		select {
		case line, ok := <-lines:
			if !ok {
				// Scanner finished; a nil channel never fires again.
				lines = nil
				continue
			}
			if onLine != nil {
				onLine(line)
			}
		case err := <-done:
			return err
		default:
			if pump != nil {
				pump()
			}
			time.Sleep(pumpInterval)
		}
	}
}

// Ensure Runner implements ports.CommandRunner
var _ ports.CommandRunner = (*Runner)(nil)

package ports

import "context"

// CommandRunner executes an external binary and blocks until it exits.
//
// The process's stderr is delivered to onLine one line at a time, as it
// arrives. While waiting, pump is invoked repeatedly so the caller can keep
// the host's UI event queue serviced; both callbacks run on the calling
// goroutine.
type CommandRunner interface {
	Run(ctx context.Context, path string, args []string, onLine func(string), pump func()) error
}

package mocks

import (
	"context"

	"github.com/user/playblast/pkg/ports"
)

// Runner is a mock implementation of ports.CommandRunner.
type Runner struct {
	// Lines are delivered to onLine before returning.
	Lines []string
	// Pumps is how many times the pump callback is invoked.
	Pumps int
	// Err is returned after the lines are delivered.
	Err error

	// Recorded invocation.
	Path string
	Args []string

	RunFunc func(ctx context.Context, path string, args []string, onLine func(string), pump func()) error
}

func (m *Runner) Run(ctx context.Context, path string, args []string, onLine func(string), pump func()) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, path, args, onLine, pump)
	}
	m.Path = path
	m.Args = append([]string(nil), args...)
	for i := 0; i < m.Pumps; i++ {
		pump()
	}
	for _, line := range m.Lines {
		onLine(line)
	}
	return m.Err
}

// Ensure Runner implements ports.CommandRunner
var _ ports.CommandRunner = (*Runner)(nil)

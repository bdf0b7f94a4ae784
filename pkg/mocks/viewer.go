package mocks

import "github.com/user/playblast/pkg/ports"

// Viewer is a mock implementation of ports.Viewer recording what was opened.
type Viewer struct {
	Opened     []string
	OpenedWith [][2]string

	OpenFunc     func(path string) error
	OpenWithFunc func(executable, path string) error
}

func (m *Viewer) Open(path string) error {
	if m.OpenFunc != nil {
		return m.OpenFunc(path)
	}
	m.Opened = append(m.Opened, path)
	return nil
}

func (m *Viewer) OpenWith(executable, path string) error {
	if m.OpenWithFunc != nil {
		return m.OpenWithFunc(executable, path)
	}
	m.OpenedWith = append(m.OpenedWith, [2]string{executable, path})
	return nil
}

// Ensure Viewer implements ports.Viewer
var _ ports.Viewer = (*Viewer)(nil)

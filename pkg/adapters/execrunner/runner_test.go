package execrunner

import (
	"bytes"
	"context"
	"runtime"
	"strconv"
	"testing"
)

// goroutineID parses the current goroutine's ID from its stack header.
// Test-only; the ID has no meaning beyond identity comparison.
func goroutineID() uint64 {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	fields := bytes.Fields(buf)
	id, _ := strconv.ParseUint(string(fields[1]), 10, 64)
	return id
}

func TestRunner_StreamsStderrLines(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	r := New()

	var lines []string
	pumped := 0
	err := r.Run(context.Background(), "sh",
		[]string{"-c", "echo one >&2; echo two >&2"},
		func(line string) { lines = append(lines, line) },
		func() { pumped++ })
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "one" || lines[1] != "two" {
		t.Errorf("unexpected lines: %v", lines)
	}
	if pumped == 0 {
		t.Error("expected pump to be called at least once")
	}
}

func TestRunner_CallbacksRunOnCallingGoroutine(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	r := New()
	caller := goroutineID()

	var lineGIDs, pumpGIDs []uint64
	err := r.Run(context.Background(), "sh",
		[]string{"-c", "echo one >&2; echo two >&2; echo three >&2"},
		func(string) { lineGIDs = append(lineGIDs, goroutineID()) },
		func() {
			if len(pumpGIDs) == 0 {
				pumpGIDs = append(pumpGIDs, goroutineID())
			}
		})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(lineGIDs) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lineGIDs))
	}
	for i, gid := range lineGIDs {
		if gid != caller {
			t.Errorf("onLine %d ran on goroutine %d, want calling goroutine %d", i, gid, caller)
		}
	}
	for _, gid := range pumpGIDs {
		if gid != caller {
			t.Errorf("pump ran on goroutine %d, want calling goroutine %d", gid, caller)
		}
	}
}

func TestRunner_NonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}

	r := New()

	err := r.Run(context.Background(), "sh", []string{"-c", "exit 3"}, nil, nil)
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
}

func TestRunner_MissingExecutable(t *testing.T) {
	r := New()

	err := r.Run(context.Background(), "/nonexistent/binary", nil, nil, nil)
	if err == nil {
		t.Fatal("expected error for missing executable")
	}
}

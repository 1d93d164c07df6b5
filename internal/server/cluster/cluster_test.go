package cluster

import (
	"context"
	"io"
	"log/slog"
	"os/exec"
	"sync/atomic"
	"testing"
	"time"

	"github.com/basharkhan/brainly/internal/logging"
)

func TestIsWorker(t *testing.T) {
	if IsWorker() {
		t.Fatalf("expected primary process by default")
	}
	t.Setenv(workerEnvName, "1")
	if !IsWorker() {
		t.Fatalf("expected worker process with %s=1", workerEnvName)
	}
}

func TestNumWorkers(t *testing.T) {
	if got := NumWorkers(0); got < 1 {
		t.Fatalf("expected at least one worker, got %d", got)
	}
	if one, two := NumWorkers(1), NumWorkers(2); two != one*2 {
		t.Fatalf("expected multiplier to scale worker count, got %d and %d", one, two)
	}
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSupervisorRestartsDeadWorkers(t *testing.T) {
	var starts atomic.Int64

	orig := newWorkerCmd
	newWorkerCmd = func(exe string, args []string) *exec.Cmd {
		starts.Add(1)
		return exec.Command("sleep", "0.01")
	}
	defer func() { newWorkerCmd = orig }()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	s := NewSupervisor(testLogger(), 2)
	if err := s.Run(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := starts.Load(); got <= 2 {
		t.Fatalf("expected exited workers to be restarted, got %d starts", got)
	}
}

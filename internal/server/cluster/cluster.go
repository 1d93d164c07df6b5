// Package cluster implements the per-core worker process model: a primary
// process forks one worker per available core by re-executing the binary,
// and restarts any worker that dies (one-for-one, unlimited retries, no
// backoff). Workers are stateless and coordinate only through the database;
// they share the listening port via SO_REUSEPORT.
package cluster

import (
	"context"
	"os"
	"os/exec"
	"runtime"
	"syscall"

	"github.com/basharkhan/brainly/internal/logging"
)

// workerEnvName marks a process as a worker; the primary leaves it unset.
const workerEnvName = "BRAINLY_WORKER"

// IsWorker reports whether this process was forked as a worker.
func IsWorker() bool {
	return os.Getenv(workerEnvName) == "1"
}

// NumWorkers returns the worker count for the given multiplier, at least one.
func NumWorkers(perCore int) int {
	if perCore < 1 {
		perCore = 1
	}
	return runtime.NumCPU() * perCore
}

// newWorkerCmd is a seam for testing worker process creation.
var newWorkerCmd = func(exe string, args []string) *exec.Cmd {
	cmd := exec.Command(exe, args...)
	cmd.Env = append(os.Environ(), workerEnvName+"=1")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// Supervisor forks and babysits worker processes.
type Supervisor struct {
	log        logging.Logger
	numWorkers int
}

// NewSupervisor constructs a Supervisor for numWorkers workers.
func NewSupervisor(log logging.Logger, numWorkers int) *Supervisor {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Supervisor{
		log:        log.With("module", "cluster"),
		numWorkers: numWorkers,
	}
}

// Run forks the workers and restarts any that exit until ctx is canceled,
// then signals the survivors and waits for them to finish.
func (s *Supervisor) Run(ctx context.Context) error {
	exe, err := os.Executable()
	if err != nil {
		return err
	}

	s.log.Info(ctx, "primary process running", "pid", os.Getpid(), "workers", s.numWorkers)

	procs := make([]*exec.Cmd, s.numWorkers)
	exits := make(chan int, s.numWorkers)

	start := func(slot int) error {
		cmd := newWorkerCmd(exe, os.Args[1:])
		if err := cmd.Start(); err != nil {
			return err
		}
		procs[slot] = cmd
		go func() {
			_ = cmd.Wait()
			exits <- slot
		}()
		s.log.Info(ctx, "worker started", "pid", cmd.Process.Pid)
		return nil
	}

	for i := range procs {
		if err := start(i); err != nil {
			return err
		}
	}

	running := s.numWorkers
	for {
		select {
		case <-ctx.Done():
			for _, cmd := range procs {
				if cmd != nil && cmd.Process != nil {
					_ = cmd.Process.Signal(syscall.SIGTERM)
				}
			}
			for running > 0 {
				<-exits
				running--
			}
			s.log.Info(context.Background(), "all workers stopped")
			return nil
		case slot := <-exits:
			if ctx.Err() != nil {
				running--
				continue
			}
			s.log.Warn(ctx, "worker died, spawning a new one")
			if err := start(slot); err != nil {
				s.log.Error(ctx, "failed to restart worker", "error", err)
				running--
			}
		}
	}
}

package scheduler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/maxkimambo/diskpress/pkg/plan"
)

// Outcome is the terminal state of a run.
type Outcome int

const (
	// Completed means every planned step executed successfully.
	Completed Outcome = iota
	// Canceled means the run was interrupted by the user. It is a normal
	// termination, not a failure.
	Canceled
	// Aborted means a safety check or a write failed; the run stopped at
	// the first error.
	Aborted
)

func (o Outcome) String() string {
	switch o {
	case Completed:
		return "completed"
	case Canceled:
		return "canceled"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Writer materializes a file of the given size in the target directory.
type Writer interface {
	Allocate(sizeMB int64) (path string, err error)
}

// Guard reports whether it is currently safe to write to the target
// filesystem.
type Guard interface {
	Check() error
}

// Config describes one run. Source, Guard and Writer are required.
type Config struct {
	Source plan.Source
	Steps  int           // planned step count; 0 for unbounded sources
	Delay  time.Duration // wait between steps
	Guard  Guard
	Writer Writer

	// OnStep is called after each successful write with the step number,
	// the size just written and the cumulative total. May be nil.
	OnStep func(step int, sizeMB, writtenMB int64)

	Logger *slog.Logger
}

// Result summarizes a finished run.
type Result struct {
	Outcome   Outcome
	StepsDone int
	WrittenMB int64
	Elapsed   time.Duration
}

// Scheduler drives a run strictly sequentially: one step at a time, a guard
// check before every write, an interruptible delay between steps. No
// concurrent writes are ever in flight.
type Scheduler struct {
	cfg Config
	log *slog.Logger
}

// New validates cfg and returns a scheduler.
func New(cfg Config) (*Scheduler, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("scheduler config: Source is required")
	}
	if cfg.Guard == nil {
		return nil, fmt.Errorf("scheduler config: Guard is required")
	}
	if cfg.Writer == nil {
		return nil, fmt.Errorf("scheduler config: Writer is required")
	}
	if cfg.Delay < 0 {
		return nil, fmt.Errorf("scheduler config: Delay must not be negative, got %s", cfg.Delay)
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scheduler{cfg: cfg, log: log}, nil
}

// Run executes the schedule until the source is exhausted, the context is
// cancelled, or a step fails. The returned error is non-nil only for
// Aborted; cancellation is reported through the Result alone.
func (s *Scheduler) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	res := Result{}

	for {
		if ctx.Err() != nil {
			res.Outcome = Canceled
			break
		}

		size, ok := s.cfg.Source.Next()
		if !ok {
			res.Outcome = Completed
			break
		}

		if err := s.cfg.Guard.Check(); err != nil {
			res.Outcome = Aborted
			res.Elapsed = time.Since(start)
			s.log.Error("disk safety check failed", "step", res.StepsDone+1, "error", err)
			return res, err
		}

		path, err := s.cfg.Writer.Allocate(size)
		if err != nil {
			res.Outcome = Aborted
			res.Elapsed = time.Since(start)
			s.log.Error("write failed", "step", res.StepsDone+1, "size_mb", size, "error", err)
			return res, err
		}

		res.StepsDone++
		res.WrittenMB += size
		s.log.Debug("wrote file", "step", res.StepsDone, "size_mb", size, "path", path)
		if s.cfg.OnStep != nil {
			s.cfg.OnStep(res.StepsDone, size, res.WrittenMB)
		}

		if s.cfg.Steps > 0 && res.StepsDone >= s.cfg.Steps {
			res.Outcome = Completed
			break
		}

		if !s.wait(ctx) {
			res.Outcome = Canceled
			break
		}
	}

	res.Elapsed = time.Since(start)
	s.log.Info("run finished",
		"outcome", res.Outcome.String(),
		"steps", res.StepsDone,
		"written_mb", res.WrittenMB,
		"elapsed", res.Elapsed.Round(time.Millisecond))
	return res, nil
}

// wait blocks for the inter-step delay. It returns false when the context
// was cancelled before the delay elapsed.
func (s *Scheduler) wait(ctx context.Context) bool {
	if s.cfg.Delay <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(s.cfg.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

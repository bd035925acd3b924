package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/maxkimambo/diskpress/internal/diskguard"
	"github.com/maxkimambo/diskpress/internal/logging"
	"github.com/maxkimambo/diskpress/internal/progress"
	"github.com/maxkimambo/diskpress/internal/scheduler"
	signalpkg "github.com/maxkimambo/diskpress/internal/signal"
	"github.com/maxkimambo/diskpress/internal/writer"
	"github.com/maxkimambo/diskpress/pkg/plan"
)

// run wires the shared machinery for both subcommands and maps the run
// outcome onto the exit-code policy: a nil return (exit 0) for completion
// and cancellation, an error (exit 1) for aborts. totalMB is the planned
// volume for bounded runs and 0 for unbounded ones.
func run(dir string, src plan.Source, steps int, totalMB int64, delay time.Duration) error {
	if highWater <= 0 || highWater > 100 {
		return fmt.Errorf("--high-water must be in (0, 100], got %.1f", highWater)
	}

	log := logging.New("diskpress", logLevel)

	alloc := writer.NewAllocator(dir)
	if err := alloc.Prepare(); err != nil {
		return err
	}

	handler := signalpkg.NewHandler(context.Background(), os.Stderr)
	handler.Start()
	defer handler.Stop()

	// There is no reclamation: remind the operator where the files are once
	// the run winds down, however it ends.
	handler.RegisterCleanup(func() error {
		log.Info("written files left in place", "dir", dir)
		return nil
	})

	guard := diskguard.New(dir)
	guard.HighWater = highWater

	sched, err := scheduler.New(scheduler.Config{
		Source: src,
		Steps:  steps,
		Delay:  delay,
		Guard:  guard,
		Writer: alloc,
		Logger: log,
		OnStep: func(step int, sizeMB, writtenMB int64) {
			if quiet {
				return
			}
			fmt.Fprintf(os.Stdout, "\r%s %s written",
				progress.Render(step, steps),
				humanize.IBytes(uint64(writtenMB)<<20))
		},
	})
	if err != nil {
		return err
	}

	if totalMB > 0 {
		log.Info("starting run",
			"dir", dir,
			"total", humanize.IBytes(uint64(totalMB)<<20),
			"steps", steps,
			"delay", delay,
			"high_water_pct", highWater)
	} else {
		log.Info("starting run", "dir", dir, "steps", "unbounded", "delay", delay, "high_water_pct", highWater)
	}

	res, runErr := sched.Run(handler.Context())
	if !quiet && res.StepsDone > 0 {
		fmt.Fprintln(os.Stdout)
	}
	handler.Stop()

	switch res.Outcome {
	case scheduler.Canceled:
		log.Info("run canceled by user",
			"steps", res.StepsDone,
			"written", humanize.IBytes(uint64(res.WrittenMB)<<20))
		return nil
	case scheduler.Aborted:
		return fmt.Errorf("run aborted after %d steps (%s written): %w",
			res.StepsDone, humanize.IBytes(uint64(res.WrittenMB)<<20), runErr)
	default:
		return nil
	}
}

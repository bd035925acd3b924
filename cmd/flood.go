package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/maxkimambo/diskpress/pkg/plan"
	"github.com/maxkimambo/diskpress/pkg/sizeparser"
)

var floodCmd = &cobra.Command{
	Use:   "flood <min> <max> <interval_sec> [target_dir]",
	Short: "Write randomly sized files until interrupted",
	Long: `Flood writes files forever, drawing each size uniformly from [<min>, <max>]
megabytes inclusive and waiting <interval_sec> seconds between writes. There
is no total; the run ends on Ctrl-C/SIGTERM or when the disk-safety ceiling
is reached.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: runFlood,
}

func runFlood(cmd *cobra.Command, args []string) error {
	minMB, err := sizeparser.ParseMB(args[0])
	if err != nil {
		return fmt.Errorf("invalid minimum size: %v", err)
	}
	maxMB, err := sizeparser.ParseMB(args[1])
	if err != nil {
		return fmt.Errorf("invalid maximum size: %v", err)
	}

	intervalSec, err := strconv.ParseInt(args[2], 10, 64)
	if err != nil || intervalSec < 0 {
		return fmt.Errorf("interval must be a non-negative integer of seconds, got %q", args[2])
	}

	dir := defaultDir
	if len(args) == 4 {
		dir = args[3]
	}
	if dirFlag != "" {
		dir = dirFlag
	}

	src, err := plan.Uniform(minMB, maxMB, nil)
	if err != nil {
		return err
	}

	return run(dir, src, 0, 0, time.Duration(intervalSec)*time.Second)
}

func init() {
	rootCmd.AddCommand(floodCmd)
}

package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/maxkimambo/diskpress/pkg/plan"
	"github.com/maxkimambo/diskpress/pkg/sizeparser"
)

var (
	strategyFlag string
	everyFlag    time.Duration
)

var fillCmd = &cobra.Command{
	Use:   "fill <total> <minutes> [target_dir] [fixed|fib]",
	Short: "Write a fixed total volume over a number of timed steps",
	Long: `Fill writes <total> megabytes over <minutes> steps, one write per step,
waiting --every between steps (one minute by default, so a run takes about
<minutes> minutes).

The 'fixed' strategy gives every step an equal share, with the division
remainder added to the last step. The 'fib' strategy ramps step sizes up
along a Fibonacci curve, simulating accelerating disk consumption. Both
write exactly <total> megabytes.

Sizes are accepted as bare megabyte counts ("512") or suffixed ("2GB").`,
	Args: cobra.RangeArgs(2, 4),
	RunE: runFill,
}

func runFill(cmd *cobra.Command, args []string) error {
	totalMB, err := sizeparser.ParseMB(args[0])
	if err != nil {
		return fmt.Errorf("invalid total: %v", err)
	}

	minutes, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || minutes < 1 {
		return fmt.Errorf("minutes must be a positive integer, got %q", args[1])
	}

	dir := defaultDir
	if len(args) >= 3 {
		dir = args[2]
	}
	if dirFlag != "" {
		dir = dirFlag
	}

	strategy := strategyFlag
	if len(args) == 4 {
		strategy = args[3]
	}

	p, err := plan.Compute(strategy, totalMB, minutes)
	if err != nil {
		return err
	}

	return run(dir, p.Source(), len(p), p.TotalMB(), everyFlag)
}

func init() {
	fillCmd.Flags().StringVarP(&strategyFlag, "strategy", "s", plan.StrategyFixed,
		fmt.Sprintf("allocation strategy %v (overridden by the fourth positional argument)", plan.Strategies()))
	fillCmd.Flags().DurationVar(&everyFlag, "every", time.Minute, "delay between steps")
	rootCmd.AddCommand(fillCmd)
}

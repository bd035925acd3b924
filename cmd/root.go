package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/maxkimambo/diskpress/internal/diskguard"
)

var (
	dirFlag   string
	highWater float64
	logLevel  string
	quiet     bool
	version   = "0.1.0"
)

// defaultDir is used when no target directory is given.
const defaultDir = "/var/tmp/diskpress"

var rootCmd = &cobra.Command{
	Use:   "diskpress",
	Short: "A rate-controlled disk-pressure generator",
	Long: `Diskpress writes files to a target directory on a timed cadence until a
configured total volume has been written, following a chosen size-distribution
pattern, while refusing to push filesystem usage past a safety ceiling.

It is meant for operators who need to simulate disk pressure (for testing
alerting, autoscaling, or cleanup jobs) in a controlled, interruptible way.
Written files are left in place; cleaning them up is the operator's job.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI. Exit code 0 covers completion and user cancellation;
// 1 covers validation failures, disk-safety trips and write failures.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dirFlag, "dir", "d", "", "target directory (overrides the positional argument)")
	rootCmd.PersistentFlags().Float64Var(&highWater, "high-water", diskguard.DefaultHighWater, "abort once disk usage reaches this percentage")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress the progress bar")
}

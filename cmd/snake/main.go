// snake is a terminal snake game with a timed golden apple.
//
// Usage:
//
//	snake           - Play
//	snake keys      - Show key bindings
//	snake rules     - Show the constants the game runs with
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write logs to a file (default: discarded)
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake with a golden apple, in your terminal",
	Long: `Steer the snake around a wrap-around board and eat apples to grow.
A golden apple shows up now and then: it is worth three apples, starts
blinking after four seconds and disappears after six.

Fill the whole board to win. Running into yourself ends the round.

Examples:
  snake
  snake --seed 42
  snake --log-file snake.log --debug
  snake rules`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(rulesCmd)
}

// newLogger opens the log destination. The terminal belongs to the game, so
// without a file the logs are discarded.
func newLogger(path string, debug bool) (*log.Logger, io.Closer, error) {
	var w io.WriteCloser = nopCloser{io.Discard}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, w, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

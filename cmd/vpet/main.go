// vpet is a virtual pet that lives in the terminal.
//
// Usage:
//
//	vpet play               - Look after your pet
//	vpet serve              - Start SSH server for remote play
//	vpet items              - List the items and what they do
//	vpet runs               - Show past runs
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed
//	--db <path>         - Set database path (default: ~/.vpet/runs.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/tui-pet/internal/scenes"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vpet",
	Short: "vpet - a virtual pet in your terminal",
	Long: `vpet is a tiny virtual pet. Its health and fun drain every second;
feed it, give it toys and spin it around to keep it going.

Available commands:
  play     - Look after your pet
  serve    - Start SSH server for remote play
  items    - List the items and what they do
  runs     - View past runs

Examples:
  vpet play
  vpet play --difficulty hard --name Rex
  vpet serve --ssh :2222
  vpet runs --board`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.vpet/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(runsCmd)
}

// newLogger builds the program logger. fallback is used when no log file
// is given; the returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "vpet",
		Level:           level,
	})
	return logger, closer, nil
}

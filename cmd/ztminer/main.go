// Command ztminer runs the ZT Miner shooter in a terminal or over SSH.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/zt-miner/internal/games/ztminer"
)

var (
	flagTickRate int
	flagSeed     int64
	flagDBPath   string
	flagProfile  string
	flagLogPath  string
	flagDebug    bool
)

var rootCmd = &cobra.Command{
	Use:   "ztminer",
	Short: "Drill up through the planet crust and reach the surface",
	Long: `ZT Miner is a vertical shooter for the terminal.

Pilot a mining ship up through five crust layers, drill through rock,
shoot down drones and turrets, and collect energy orbs to keep the hull
intact. Reach the surface to win.

Controls:
  WASD / arrows   Move
  X               Drill
  Space           Shoot
  P               Pause
  R               Restart (game over / victory)
  Q               Quit

Running ztminer without a subcommand starts a game.`,
	Run: runPlay,
}

func init() {
	home, _ := os.UserHomeDir()
	user := os.Getenv("USER")

	rootCmd.PersistentFlags().IntVar(&flagTickRate, "fps", 60, "Simulation ticks per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Random seed (0 = time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ztminer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", user, "Pilot profile name")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", filepath.Join(home, ".ztminer", "ztminer.log"), "Log file path (empty disables logging)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogFile returns a logger writing to flagLogPath, or a discarding
// logger when the path is empty or unusable. The returned close func is
// always safe to call.
func openLogFile() (*log.Logger, func()) {
	if flagLogPath == "" {
		return log.New(io.Discard), func() {}
	}
	if err := os.MkdirAll(filepath.Dir(flagLogPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          ztminer.GameID,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

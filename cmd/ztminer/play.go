package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zt-miner/internal/config"
	"github.com/vovakirdan/zt-miner/internal/core"
	"github.com/vovakirdan/zt-miner/internal/games/ztminer"
	"github.com/vovakirdan/zt-miner/internal/platform/tui"
	"github.com/vovakirdan/zt-miner/internal/registry"
	"github.com/vovakirdan/zt-miner/internal/storage"
)

var (
	flagConfigPath string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start ZT Miner in the current terminal.

The briefing is shown on a profile's first run and skipped afterwards;
press I on the launch screen to replay it.

Examples:
  ztminer play
  ztminer play --difficulty hard
  ztminer play --config ./my-ztminer.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfigPath, "config", "", "Path to a ztminer.yaml config file")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}

	logger, closeLog := openLogFile()
	defer closeLog()

	ztminer.SetConfigPath(flagConfigPath)
	ztminer.SetDifficultyPreset(flagDifficulty)
	ztminer.SetLogger(logger)

	game, err := registry.Create(ztminer.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagTickRate
	cfg.Seed = flagSeed
	if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = width, height
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "error", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, flagProfile, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

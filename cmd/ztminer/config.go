package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zt-miner/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration a game would start with, as YAML.

The output reflects --config (or the default search path) with the
--difficulty preset applied. Save it to ~/.ztminer/configs/ztminer.yaml
and edit it to tune the game.

Examples:
  ztminer config
  ztminer config --difficulty easy > ~/.ztminer/configs/ztminer.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	addPlayFlags(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.LoadZTMiner(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	out, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out)
}

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dmarkhas/novafall/internal/audio"
	"github.com/dmarkhas/novafall/internal/config"
	"github.com/dmarkhas/novafall/internal/core"
	"github.com/dmarkhas/novafall/internal/platform/tui"
	"github.com/dmarkhas/novafall/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a local play session.

Controls:
  Arrows/WASD  - Move
  Space/F      - Fire (hold for continuous fire)
  B            - Boost (drains energy)
  Enter        - Launch (from the title screen)
  R            - Restart (after game over)
  M            - Toggle sound
  Q/Ctrl+C     - Quit

With a full nova charge, pressing fire releases a screen-clearing pulse
instead of a shot.

Examples:
  novafall play
  novafall play --seed 42
  novafall play --config ./my-tuning.yaml --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "novafall"})

	tuning, err := config.LoadTuning(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tuning config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		// Continue without storage, the game still works
		store = nil
	}

	// Audio is best-effort: headless or device-less environments play silent
	var sound *audio.Engine
	if !flagMute {
		sound = audio.NewEngine()
		if audioErr := sound.Initialize(); audioErr != nil {
			logger.Warn("audio unavailable", "error", audioErr)
			sound = nil
		}
	}

	runErr := tui.Run(tuning, store, sound, logger, cfg)

	if sound != nil {
		sound.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pet/internal/audio/speaker"
	"github.com/vovakirdan/tui-pet/internal/config"
	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/platform/tui"
	"github.com/vovakirdan/tui-pet/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Look after your pet",
	Long: `Start the pet. Health and fun drain over time; when either runs out
the game ends and you return to the title screen.

Controls:
  1-3          - Pick apple, candy or toy
  4/R          - Spin the pet
  Click        - Pick a button, or place the picked item in the yard
  Arrows/WASD  - Move the placement cursor
  Shift+Arrows - Drag the pet
  Enter/Space  - Place the picked item at the cursor
  Esc          - Put the picked item back
  :            - Type a command (feed apple, spin, help)
  Tab          - Run history
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Decay at half speed
  normal - Decay as configured
  hard   - Decay at one and a half times the speed
  fixed  - Decay exactly as configured, no preset scaling

Examples:
  vpet play
  vpet play --difficulty easy
  vpet play --name Rex --sound
  vpet play --config ./my-pet.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom pet config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues on the local speaker")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume between 0 and 1")
	playCmd.Flags().StringVar(&flagName, "name", "", "Name your pet")
}

// loadPetConfig applies the play flags on top of the loaded config.
func loadPetConfig() (config.PetConfig, error) {
	petCfg, err := config.LoadPet(flagConfig)
	if err != nil {
		return petCfg, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return petCfg, err
		}
		config.ApplyPreset(&petCfg, preset)
	}
	if flagName != "" {
		petCfg.Pet.Name = flagName
	}
	return petCfg, petCfg.Validate()
}

func runPlay(_ *cobra.Command, _ []string) {
	petCfg, err := loadPetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alt screen owns the terminal, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Pet:    petCfg,
		Logger: logger,
	}

	if flagSound {
		sm := speaker.NewSoundManager(flagVolume)
		if err := sm.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			// Continue without sound
		} else {
			defer sm.Cleanup()
			opts.Sound = sm
		}
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the pet still works
		store = nil
	}
	opts.Store = store

	runErr := tui.Run(opts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running pet: %v\n", runErr)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Garsondee/Pitch-Sense/internal/app"
)

var (
	flagConfig     string
	flagFormation  string
	flagGameType   string
	flagFullscreen bool
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "pitch-sense",
	Short: "Interactive coaching board for soccer and futsal",
	Long: `Pitch Sense is a drag-and-drop coaching board: seat a squad in a
formation, drag players between anchors, sketch moves on the tactics
view and export the board as an image.

Keys: T view, D draw, N names, F formation, G game, C clear strokes,
U undo, S copy summary, E/Q export PNG/QOI, Esc deselect.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig(flagConfig)
		if err != nil {
			return err
		}
		if flagFormation != "" {
			cfg.Formation = flagFormation
		}
		if flagGameType != "" {
			cfg.GameType = flagGameType
		}
		if flagFullscreen {
			cfg.Fullscreen = true
		}
		return app.Run(cfg, newLogger())
	},
}

var formationsCmd = &cobra.Command{
	Use:   "formations",
	Short: "List the formation library",
	Long:  `Lists the stock formations plus any loaded from the configured formation file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.LoadConfig(flagConfig)
		if err != nil {
			return err
		}
		forms, err := app.LoadFormations(cfg.FormationFile)
		if err != nil {
			return err
		}
		for _, f := range forms {
			fmt.Printf("%-8s %-7s %2d anchors\n", f.Name, f.Game, len(f.Anchors))
		}
		return nil
	},
}

func newLogger() *slog.Logger {
	lvl := slog.LevelInfo
	if flagVerbose {
		lvl = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(log)
	return log
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().StringVarP(&flagFormation, "formation", "f", "", "starting formation name")
	rootCmd.Flags().StringVarP(&flagGameType, "game-type", "g", "", "soccer or futsal")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "start fullscreen")
	rootCmd.AddCommand(formationsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

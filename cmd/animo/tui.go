package main

import (
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/animo/internal/tui"
	"github.com/jmylchreest/animo/internal/widget"
)

var tuiOpts struct {
	seed uint64
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive widget",
	Long: `Launch the interactive terminal widget.

The widget shows a phrase card, a "Mostrar frase" button, a counter of shown
phrases and an input for adding new phrases.

Key bindings:
  enter/space   Show a random phrase (button focused)
  tab           Switch focus between the button and the input
  enter         Add the typed phrase (input focused)
  esc           Leave the input
  c             Copy the current phrase to clipboard
  l             Browse all phrases
  ?             Show help
  q             Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	for _, c := range []*cobra.Command{rootCmd, tuiCmd} {
		c.Flags().Uint64Var(&tuiOpts.seed, "seed", 0,
			"Seed for phrase and scheme selection (random if unset)")
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	c := getConfig()

	log, closeLog, err := tuiLogger(globalOpts.verbose, filepath.Join(os.TempDir(), "animo.log"))
	if err != nil {
		return err
	}
	defer closeLog()

	ctrl, err := widget.New(widget.Options{
		Logger:          log,
		Rand:            newRand(tuiOpts.seed, cmd.Flags().Changed("seed")),
		CounterTemplate: c.Widget.CounterTemplate,
	})
	if err != nil {
		return err
	}

	return tui.Run(tui.RunOptions{
		Config:     c,
		ConfigPath: configPath(),
		Controller: ctrl,
		Logger:     log,
	})
}

// tuiLogger returns the logger used while the TUI owns the terminal. Nothing
// may write to stderr then, so logs go to logPath when verbose and are
// discarded otherwise.
func tuiLogger(verbose bool, logPath string) (*slog.Logger, func() error, error) {
	if !verbose {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	f, err := tea.LogToFile(logPath, "animo")
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), f.Close, nil
}

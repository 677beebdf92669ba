package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/animo/internal/adapter/input"
	"github.com/jmylchreest/animo/internal/widget"
)

// addTimeout bounds how long --add waits on a file or stdin.
const addTimeout = 10 * time.Second

var pickOpts struct {
	count   int
	seed    uint64
	counter bool
	scheme  bool
	add     []string
}

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Print random phrases without the TUI",
	Long: `Press the "Mostrar frase" button N times and print each phrase shown.

Consecutive phrases never repeat while more than one phrase exists.

Examples:
  # One phrase
  animo pick

  # Five phrases with the applied scheme, reproducibly
  animo pick -n 5 --scheme --seed 42

  # Add your own phrases first (one per line, or JSON/YAML lists)
  printf 'Paso a paso\nHoy sí\n' | animo pick -n 3 --add -`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().IntVarP(&pickOpts.count, "count", "n", 1,
		"Number of phrases to show")
	pickCmd.Flags().Uint64Var(&pickOpts.seed, "seed", 0,
		"Seed for phrase and scheme selection (random if unset)")
	pickCmd.Flags().BoolVar(&pickOpts.counter, "counter", false,
		"Print the counter label after the last phrase")
	pickCmd.Flags().BoolVar(&pickOpts.scheme, "scheme", false,
		"Print the name of the scheme applied with each phrase")
	pickCmd.Flags().StringArrayVarP(&pickOpts.add, "add", "a", nil,
		"Add phrases from a file before picking (- for stdin; repeatable)")
}

func runPick(cmd *cobra.Command, args []string) error {
	if pickOpts.count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", pickOpts.count)
	}

	ctrl, err := widget.New(widget.Options{
		Logger:          logger,
		Rand:            newRand(pickOpts.seed, cmd.Flags().Changed("seed")),
		CounterTemplate: getConfig().Widget.CounterTemplate,
	})
	if err != nil {
		return err
	}

	surface := widget.NewHeadlessSurface()
	ctrl.Bind(surface)

	for _, path := range pickOpts.add {
		if err := addPhrases(cmd.Context(), surface, path); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	for range pickOpts.count {
		surface.Activate(widget.ShowButton)

		text := surface.Text(widget.PhraseDisplay)
		if pickOpts.scheme {
			s, _ := ctrl.LastScheme()
			fmt.Fprintf(out, "%s\t%s\n", s.Name, text)
			continue
		}
		fmt.Fprintln(out, text)
	}

	if pickOpts.counter {
		fmt.Fprintln(out, surface.Text(widget.Counter))
	}

	return nil
}

// addPhrases submits every phrase read from path through the add form, so
// empty and duplicate phrases are rejected the same way the widget does.
func addPhrases(ctx context.Context, surface *widget.HeadlessSurface, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, addTimeout)
	defer cancel()

	r, closeFn, err := input.Open(path)
	if err != nil {
		return err
	}
	defer closeFn()

	texts, err := r.Read(ctx)
	if err != nil {
		return fmt.Errorf("failed to read phrases: %w", err)
	}
	if len(texts) == 0 {
		logger.Warn("no phrases found", "source", r.Name())
		return nil
	}

	added := 0
	for _, text := range texts {
		surface.Element(widget.AddInput).WriteText(text)
		surface.Submit(widget.AddForm)

		fb := surface.Element(widget.Feedback)
		if fb.Attrs[widget.AttrState] != string(widget.StateSuccess) {
			logger.Warn("phrase not added", "source", r.Name(), "phrase", text, "reason", fb.Text)
			continue
		}
		added++
	}

	logger.Debug("added phrases", "source", r.Name(), "read", len(texts), "added", added)
	return nil
}

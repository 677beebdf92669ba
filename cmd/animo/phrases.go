package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/animo/internal/adapter/output"
	"github.com/jmylchreest/animo/internal/phrase"
)

var phrasesOpts struct {
	format   string
	template string
	search   string
	age      bool
}

var phrasesCmd = &cobra.Command{
	Use:   "phrases [index|id]",
	Short: "List the built-in phrases",
	Long: `List the phrases a new widget starts with.

With an index (1-based) or ID argument, outputs that single phrase.

Examples:
  # Numbered list
  animo phrases

  # Phrases mentioning "tú", as JSON
  animo phrases --search tú --format json

  # Second phrase only
  animo phrases 2 --format plain`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPhrases,
}

func init() {
	rootCmd.AddCommand(phrasesCmd)

	phrasesCmd.Flags().StringVarP(&phrasesOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml, ids)")
	phrasesCmd.Flags().StringVar(&phrasesOpts.template, "template", "",
		"Custom Go template for plain output")
	phrasesCmd.Flags().StringVarP(&phrasesOpts.search, "search", "s", "",
		"Only phrases containing this text (case-insensitive)")
	phrasesCmd.Flags().BoolVar(&phrasesOpts.age, "age", false,
		"Show when each phrase was added")
}

func runPhrases(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(phrasesOpts.format)
	if err != nil {
		return err
	}

	phrases := phrase.NewStore().All()

	if len(args) > 0 {
		p, err := lookupPhrase(phrases, args[0])
		if err != nil {
			return err
		}
		phrases = []phrase.Phrase{*p}
	} else if phrasesOpts.search != "" {
		phrases = phrase.Search(phrases, phrasesOpts.search)
	}

	if len(phrases) == 0 {
		logger.Debug("no phrases to output", "search", phrasesOpts.search)
		return nil
	}

	opts := output.DefaultFormatterOptions()
	opts.Template = phrasesOpts.template
	opts.ShowAge = phrasesOpts.age
	// A single looked-up phrase prints bare so it can be piped
	opts.ShowIndex = len(args) == 0

	return output.NewFormatter(format, opts).FormatPhrases(cmd.OutOrStdout(), phrases)
}

// lookupPhrase resolves a 1-based index or an ID.
func lookupPhrase(phrases []phrase.Phrase, arg string) (*phrase.Phrase, error) {
	if idx, err := strconv.Atoi(arg); err == nil {
		if p := phrase.LookupByIndex(phrases, idx); p != nil {
			return p, nil
		}
		return nil, fmt.Errorf("phrase at index %d not found", idx)
	}
	if p := phrase.LookupByID(phrases, arg); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("phrase with ID %s not found", arg)
}

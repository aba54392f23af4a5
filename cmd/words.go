package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/conneroisu/shuffle/internal/wordlist"
)

func newWordsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "words <word...>",
		Short: "Report whether words are in the allowed word list",
		Long: `Report whether each word is in the allowed word list. Lookups ignore case.

Without a configured list (--words, SHUFFLE_WORDS_FILE or words.file) every
word is allowed. Exactly two words without flags are read as a shuffle check
("shuffle words a wordsa"); add a flag or a third word to look them up.

Examples:
  shuffle words tournament dinner --words ./words.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setup(cmd, nil); err != nil {
				return err
			}
			cmd.SilenceUsage = true

			out := cmd.OutOrStdout()
			if _, ok := a.words.(wordlist.AllowAll); ok {
				fmt.Fprintln(out, "No word list configured; every word is allowed.")
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, word := range args {
				status := "not allowed"
				if a.words.Contains(word) {
					status = "allowed"
				}
				fmt.Fprintf(tw, "%s\t%s\n", word, status)
			}
			return tw.Flush()
		},
	}
}

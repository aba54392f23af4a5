package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/shuffle/internal/shuffle"
)

func newCheckCommand(a *app) *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check <first word> <second word> <shuffled>",
		Short: "Check whether a string is a shuffle of two words",
		Long: `Check whether <shuffled> interleaves <first word> and <second word> while
keeping the letter order of each. Comparison ignores case.

The default greedy strategy scans once and breaks ties between the two words
with a short lookahead. It can reject a true shuffle when that lookahead is
misled; --strategy exact always gives the definitive answer.

When a word list is configured, both words must appear in it.

Examples:
  shuffle check TOURNAMENT DINNER TDINOURNANMENTER
  shuffle check foo bar fbxoro --format json
  shuffle check ba baab bababa --strategy exact`,
		Args: threeWords,
		RunE: a.runCheck,
	}

	addCheckFlags(checkCmd.Flags())

	return checkCmd
}

// verdict is the structured form of a check result.
type verdict struct {
	First    string           `json:"first" yaml:"first"`
	Second   string           `json:"second" yaml:"second"`
	Shuffled string           `json:"shuffled" yaml:"shuffled"`
	Valid    bool             `json:"valid" yaml:"valid"`
	Verdict  string           `json:"verdict" yaml:"verdict"`
	Strategy shuffle.Strategy `json:"strategy" yaml:"strategy"`
	Reason   shuffle.Reason   `json:"reason" yaml:"reason"`
	Index    *int             `json:"index,omitempty" yaml:"index,omitempty"`
	Char     string           `json:"char,omitempty" yaml:"char,omitempty"`
	Rejected []string         `json:"rejected_words,omitempty" yaml:"rejected_words,omitempty"`
	Error    string           `json:"error,omitempty" yaml:"error,omitempty"`
}

func verdictLine(valid bool) string {
	if valid {
		return "shuffle CORRECT"
	}
	return "shuffle INCORRECT"
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	if err := a.setup(cmd, checkFlagKeys); err != nil {
		return err
	}
	cmd.SilenceUsage = true

	first, second, shuffled := args[0], args[1], args[2]
	v := a.validator()
	res := v.Validate(cmd.Context(), first, second, shuffled)

	out := verdict{
		First:    first,
		Second:   second,
		Shuffled: shuffled,
		Valid:    res.Valid,
		Verdict:  verdictLine(res.Valid),
		Strategy: v.Strategy(),
		Reason:   res.Reason,
		Rejected: res.Rejected,
	}
	if res.Reason == shuffle.ReasonMismatch {
		index := res.Index
		out.Index = &index
		out.Char = string(res.Char)
	}
	if err := res.Err(); err != nil {
		out.Error = err.Error()
	}

	switch a.cfg.Check.Format {
	case "json":
		return writeJSON(cmd.OutOrStdout(), out)
	case "yaml":
		return writeYAML(cmd.OutOrStdout(), out)
	default:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), out.Verdict)
		return err
	}
}

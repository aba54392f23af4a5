package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/conneroisu/shuffle/internal/config"
)

// checkFlagKeys maps check flags onto configuration keys.
var checkFlagKeys = map[string]string{
	"strategy": config.KeyCheckStrategy,
	"format":   config.KeyCheckFormat,
}

// batchFlagKeys maps batch flags onto configuration keys.
var batchFlagKeys = map[string]string{
	"strategy": config.KeyCheckStrategy,
	"format":   config.KeyBatchFormat,
	"workers":  config.KeyBatchWorkers,
}

func addStrategyFlag(fs *pflag.FlagSet) {
	fs.StringP("strategy", "s", "greedy", "Validation strategy (greedy, exact)")
}

func addCheckFlags(fs *pflag.FlagSet) {
	addStrategyFlag(fs)
	fs.StringP("format", "f", "text", "Output format (text, json, yaml)")
}

func addBatchFlags(fs *pflag.FlagSet) {
	addStrategyFlag(fs)
	fs.StringP("format", "f", "table", "Output format (table, json, yaml)")
	fs.IntP("workers", "w", runtime.GOMAXPROCS(0), "Maximum concurrent validations")
	fs.Bool("watch", false, "Re-run whenever the case file changes")
}

// threeWords is the positional-argument contract of the check command.
func threeWords(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("invalid arguments passed: expected <first word> <second word> <shuffled>, got %d argument(s)", len(args))
	}
	return nil
}

// ValidateFormat checks value against the supported output formats.
func ValidateFormat(value string, supported []string) error {
	for _, s := range supported {
		if strings.EqualFold(value, s) {
			return nil
		}
	}
	return fmt.Errorf("unsupported format: %s (supported: %s)", value, strings.Join(supported, ", "))
}

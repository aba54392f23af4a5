// Package cmd provides the command-line interface for shuffle with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports configuration through several sources with clear precedence:
//	1. Command-line flags (--words, --strategy, etc.) - highest priority
//	2. Individual environment variables (SHUFFLE_WORDS_FILE, etc.)
//	3. Configuration file: --config, else SHUFFLE_CONFIG_FILE, else .shuffle.yml
//	4. Built-in defaults - lowest priority
//
// Environment Variables:
//
//	SHUFFLE_CONFIG_FILE: Path to custom configuration file
//	SHUFFLE_WORDS_FILE: Allowed word list
//	SHUFFLE_CHECK_STRATEGY: greedy or exact
//	And the rest following the SHUFFLE_<SECTION>_<OPTION> pattern
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/conneroisu/shuffle/internal/config"
	"github.com/conneroisu/shuffle/internal/logging"
	"github.com/conneroisu/shuffle/internal/shuffle"
	"github.com/conneroisu/shuffle/internal/wordlist"
)

// app carries the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string

	cfg    *config.Config
	logger logging.Logger
	words  wordlist.Lookup
}

// Execute builds the command tree and runs it against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand returns the root command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "shuffle [first word] [second word] [shuffled]",
		Short: "Check whether a string is a shuffle of two words",
		Long: `shuffle checks whether a string is an interleaving of two words, keeping the
letter order of each word. Comparison ignores case.

Called with three arguments and no flags it behaves like "shuffle check",
even when the first word is also a command name.

Examples:
  shuffle TOURNAMENT DINNER TDINOURNANMENTER     # shuffle CORRECT
  shuffle check foo bar fbxoro                   # shuffle INCORRECT
  shuffle check --strategy exact ba baab bababa  # exact decision
  shuffle batch cases.yml --format json          # many cases at once
  shuffle words tournament dinner                # allow-list lookup`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			if err := threeWords(cmd, args); err != nil {
				return err
			}
			return a.runCheck(cmd, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is .shuffle.yml, can also use SHUFFLE_CONFIG_FILE env var)")
	pf.StringP("log-level", "l", "warn", "log level (debug, info, warn, error)")
	pf.String("log-format", "text", "log format (text, json)")
	pf.String("words", "", "allowed word list, one word per line (default: every word is allowed)")
	pf.Bool("words-optional", true, "treat a missing word list as allowing every word")

	addCheckFlags(rootCmd.Flags())

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(
		newCheckCommand(a),
		newBatchCommand(a),
		newWordsCommand(a),
		newVersionCommand(),
	)
	rootCmd.InitDefaultHelpCmd()

	for _, sub := range rootCmd.Commands() {
		a.acceptThreeWords(sub)
	}

	return rootCmd
}

// acceptThreeWords makes "<name> <word> <word>" without flags check the
// three words, as the root command would for any other first word.
func (a *app) acceptThreeWords(cmd *cobra.Command) {
	args, runE, run := cmd.Args, cmd.RunE, cmd.Run

	cmd.Args = func(c *cobra.Command, rest []string) error {
		if bareThreeWords(c, rest) || args == nil {
			return nil
		}
		return args(c, rest)
	}
	cmd.RunE = func(c *cobra.Command, rest []string) error {
		if bareThreeWords(c, rest) {
			return a.runCheck(c, append([]string{c.CalledAs()}, rest...))
		}
		if runE != nil {
			return runE(c, rest)
		}
		if run != nil {
			run(c, rest)
		}
		return nil
	}
	cmd.Run = nil
}

func bareThreeWords(cmd *cobra.Command, rest []string) bool {
	return len(rest) == 2 && cmd.Flags().NFlag() == 0
}

// initConfig initializes the configuration system.
//
// Configuration file priority (highest to lowest):
//  1. --config flag
//  2. SHUFFLE_CONFIG_FILE environment variable
//  3. .shuffle.yml in the current directory
//
// Every key can also be set through a SHUFFLE_ prefixed environment
// variable, e.g. SHUFFLE_WORDS_FILE=/usr/share/dict/words.
func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if envConfigFile := os.Getenv("SHUFFLE_CONFIG_FILE"); envConfigFile != "" {
		a.v.SetConfigFile(envConfigFile)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".shuffle")
	}

	a.v.SetEnvPrefix("SHUFFLE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		// A missing default file is fine; an explicit one must load.
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || os.Getenv("SHUFFLE_CONFIG_FILE") != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return bindFlags(a.v, cmd.Flags(), map[string]string{
		"log-level":      config.KeyLogLevel,
		"log-format":     config.KeyLogFormat,
		"words":          config.KeyWordsFile,
		"words-optional": config.KeyWordsOptional,
	})
}

// setup binds the running command's flags, loads the configuration and
// builds the logger and the allowed word list. The word list is read here,
// once per invocation, and shared read-only afterwards.
func (a *app) setup(cmd *cobra.Command, keys map[string]string) error {
	if err := bindFlags(a.v, cmd.Flags(), keys); err != nil {
		return err
	}

	cfg, err := config.LoadFrom(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	lc := cfg.LoggerConfig()
	lc.Output = cmd.ErrOrStderr()
	a.logger = logging.NewLogger(lc)

	words, err := wordlist.Open(cfg.Words.File, cfg.Words.Optional)
	if err != nil {
		return err
	}
	a.words = words
	if set, ok := words.(*wordlist.Set); ok {
		a.logger.Debug(cmd.Context(), "Loaded word list", "path", cfg.Words.File, "words", set.Len())
	}

	return nil
}

// validator builds a Validator from the loaded configuration.
func (a *app) validator() *shuffle.Validator {
	return shuffle.New(
		shuffle.WithAllowedWords(a.words),
		shuffle.WithStrategy(a.cfg.Strategy()),
		shuffle.WithLogger(a.logger),
	)
}

// bindFlags binds each named flag in fs that exists to its viper key.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		flag := fs.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

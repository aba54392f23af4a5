// Package cmd provides the command-line interface for shuffle.
//
// This package implements the CLI commands using the Cobra framework.
// Every command decides whether a shuffled string is an in-order
// interleaving of two words.
//
// # Available Commands
//
//   - check: Validate a single first/second/shuffled triple
//   - batch: Validate every case in a YAML case file, optionally on change
//   - words: Report whether words are in the configured word list
//   - version: Print build information
//
// Invoking the root command with exactly three arguments and no flags behaves
// like check, including when the first word names a command ("shuffle words
// a wordsa" is a check, not a word list lookup).
//
// # Command Examples
//
//	// Classic three argument form
//	shuffle TOURNAMENT DINNER TDINOURNANMENTER
//
//	// Exact strategy with JSON output
//	shuffle check --strategy exact --format json ba baab bababa
//
//	// Run a case file with four workers and rerun on save
//	shuffle batch --workers 4 --watch cases.yml
//
//	// Restrict input words to a vocabulary
//	shuffle check --words words.txt foo bar fbaoro
//
// # Configuration Integration
//
// Commands respect configuration from multiple sources in order of precedence:
//
//  1. Command-line flags (highest priority)
//  2. Environment variables (SHUFFLE_*)
//  3. Configuration file (.shuffle.yml)
//  4. Default values (lowest priority)
//
// # Exit Status
//
// A verdict of "shuffle INCORRECT" is a normal result and exits with status
// zero. Usage errors, unreadable inputs, invalid configuration and failed
// batch expectations exit with status one.
package cmd

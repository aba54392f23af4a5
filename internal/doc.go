// Package internal contains the core implementation packages for shuffle.
//
// # Package Organization
//
//   - shuffle: Interleaving validation with greedy and exact strategies
//   - wordlist: Allowed word lists loaded from plain text files
//   - batch: YAML case files and the concurrent case runner
//   - config: Viper backed configuration with validation
//   - errors: Typed errors carrying a category, a code and context
//   - logging: Structured logging on top of log/slog
//   - watcher: Debounced file watching for batch reruns
//   - version: Build information injected at link time
//   - testutils: Shared test fixtures
//
// # Dependencies Between Packages
//
// The shuffle package only depends on errors and logging. Membership in the
// allowed word list is expressed as an interface so that wordlist and
// shuffle stay independent; the cmd package wires them together.
package internal

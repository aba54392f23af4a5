package shuffle

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conneroisu/shuffle/internal/logging"
)

// Membership answers whether a lower-cased word is allowed.
type Membership interface {
	Contains(word string) bool
}

// Strategy selects the decision procedure used by a Validator.
type Strategy string

const (
	StrategyGreedy Strategy = "greedy"
	StrategyExact  Strategy = "exact"
)

// ParseStrategy converts a strategy name (case-insensitive) into a Strategy.
// The empty string selects StrategyGreedy.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(name))) {
	case "", StrategyGreedy:
		return StrategyGreedy, nil
	case StrategyExact:
		return StrategyExact, nil
	default:
		return "", fmt.Errorf("unsupported strategy: %s (supported: greedy, exact)", name)
	}
}

// Validator checks candidate shuffles against two source words.
type Validator struct {
	allowed  Membership
	strategy Strategy
	logger   logging.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithAllowedWords gates validation on both source words being members of m.
// A nil m allows every word.
func WithAllowedWords(m Membership) Option {
	return func(v *Validator) {
		v.allowed = m
	}
}

// WithStrategy selects the decision procedure. Unknown values fall back to
// StrategyGreedy.
func WithStrategy(s Strategy) Option {
	return func(v *Validator) {
		v.strategy = s
	}
}

// WithLogger sets the logger that receives rejection diagnostics.
func WithLogger(l logging.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// New creates a Validator. Without options it uses the greedy strategy,
// allows every word and discards diagnostics.
func New(opts ...Option) *Validator {
	v := &Validator{
		strategy: StrategyGreedy,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.strategy != StrategyExact {
		v.strategy = StrategyGreedy
	}
	v.logger = v.logger.WithComponent("shuffle")
	return v
}

// Strategy returns the decision procedure in use.
func (v *Validator) Strategy() Strategy {
	return v.strategy
}

// IsValidShuffle reports whether candidate is a greedy-accepted shuffle of
// wordA and wordB. A nil allowed permits every word.
func IsValidShuffle(wordA, wordB, candidate string, allowed Membership) bool {
	return New(WithAllowedWords(allowed)).Validate(context.Background(), wordA, wordB, candidate).Valid
}

// Validate decides whether candidate is a shuffle of wordA and wordB.
//
// Steps:
//  1. Reject if the allow-list is set and either word is not a member.
//  2. Reject if the candidate length differs from len(wordA)+len(wordB).
//  3. Scan the candidate, consuming each character from the front of
//     whichever word it matches. Under StrategyGreedy an ambiguous character
//     is assigned by lookahead (see probe); under StrategyExact the full
//     table of consumed prefixes is evaluated.
//
// Rejections are logged at WARN level; a mismatch carries the candidate
// index and character.
func (v *Validator) Validate(ctx context.Context, wordA, wordB, candidate string) Result {
	a, b, s := lower(wordA), lower(wordB), lower(candidate)

	if rejected := v.disallowed(a, b); len(rejected) > 0 {
		v.logger.Warn(ctx, nil, "Invalid words given, not in the allowed word list",
			"words", rejected)
		return Result{Reason: ReasonWordNotAllowed, Index: -1, Rejected: rejected}
	}

	ra, rb, rs := []rune(a), []rune(b), []rune(s)
	if len(rs) != len(ra)+len(rb) {
		v.logger.Debug(ctx, "Shuffle length differs from combined word length",
			"expected", len(ra)+len(rb), "actual", len(rs))
		return Result{Reason: ReasonLengthMismatch, Index: -1}
	}

	var (
		index int
		ok    bool
	)
	if v.strategy == StrategyExact {
		index, ok = exact(ra, rb, rs)
	} else {
		index, ok = greedy(ra, rb, rs)
	}
	if ok {
		return validResult()
	}

	v.logger.Warn(ctx, nil, "Found a letter that is out of order, or is not in either word",
		"index", index, "char", string(rs[index]), "strategy", string(v.strategy))
	return Result{Reason: ReasonMismatch, Index: index, Char: rs[index]}
}

func (v *Validator) disallowed(words ...string) []string {
	if v.allowed == nil {
		return nil
	}
	var rejected []string
	for _, w := range words {
		if !v.allowed.Contains(w) {
			rejected = append(rejected, w)
		}
	}
	return rejected
}

// greedy runs the single-pass scan and returns the index of the first
// character that matched neither queue front.
func greedy(a, b, s []rune) (int, bool) {
	qa := &CharQueue{chars: a}
	qb := &CharQueue{chars: b}

	for i, c := range s {
		fa, okA := qa.Front()
		fb, okB := qb.Front()
		matchA := okA && fa == c
		matchB := okB && fb == c

		switch {
		case matchA && matchB:
			rest := s[i+1:]
			// Strictly greater wins; a tie consumes from the first word.
			if probe(rest, qb) > probe(rest, qa) {
				qb.Pop()
			} else {
				qa.Pop()
			}
		case matchA:
			qa.Pop()
		case matchB:
			qb.Pop()
		default:
			return i, false
		}
	}

	return -1, true
}

// probe assumes the current character is taken from q and counts how many
// of the following candidate characters match q's next characters in a row.
// It works on a clone; q is left untouched.
func probe(rest []rune, q *CharQueue) int {
	speculative := q.Clone()
	speculative.Pop()

	count := 0
	for _, c := range rest {
		next, ok := speculative.Pop()
		if !ok || next != c {
			break
		}
		count++
	}
	return count
}

// lower returns the lower-cased form of s. A Caser is stateful, so a fresh
// one is built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

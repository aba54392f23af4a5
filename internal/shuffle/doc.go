// Package shuffle decides whether a candidate string is an interleaving
// ("shuffle") of two source words.
//
// An interleaving merges two words while keeping the internal character order
// of each. "fbaoro" is a shuffle of "foo" and "bar"; "fboaro" is not a
// shuffle of "foo" and "rab".
//
// Comparison is case-insensitive throughout: every input is lower-cased
// before it is inspected, so "Foo"/"Bar"/"fBaoro" and "foo"/"bar"/"FBAORO"
// always produce the same verdict.
//
// Two strategies are available:
//
//   - StrategyGreedy is a single left-to-right scan. When the next candidate
//     character could have come from either word, a bounded run-length
//     lookahead picks the word whose remaining letters keep matching longer.
//     Ties go to the first word and the choice is never revisited.
//   - StrategyExact runs dynamic programming over consumed-prefix lengths.
//
// The greedy strategy is the default. It is not a complete decision procedure:
// adversarial inputs exist where the lookahead ties or is misled and a true
// interleaving is rejected. For example ("ba", "baab", "bababa") is rejected at
// index 4 while ("baab", "ba", "bababa") is accepted. Use StrategyExact, or the
// IsInterleaving function, when a definitive answer is needed.
//
// An optional Membership collaborator gates which source words may be checked
// at all. A nil Membership allows every word.
//
// Complexity (greedy):
//
//	Time   = O(n²) worst case, n = len(candidate), from the lookahead probes
//	Memory = O(n)
//
// Complexity (exact):
//
//	Time   = O(len(a)·len(b))
//	Memory = O(len(b))
//
// A Validator holds no mutable state after construction, so one value may be
// shared by any number of goroutines.
package shuffle

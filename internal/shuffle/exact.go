package shuffle

// IsInterleaving reports whether candidate is an interleaving of wordA and
// wordB, comparing case-insensitively. Unlike Validator.Validate it is an
// exact decision and ignores any allow-list.
//
// Algorithm Outline (rolling row):
//  1. Let n = len(a), m = len(b). Reject if len(s) != n+m.
//  2. reach[j] after processing row i is true when a[:i] and b[:j] can be
//     interleaved into s[:i+j].
//  3. reach[j] = (reach[j] from row i-1 && a[i-1] == s[i+j-1]) ||
//     (reach[j-1] in row i && b[j-1] == s[i+j-1]).
//  4. The answer is reach[m] after row n.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(m)
func IsInterleaving(wordA, wordB, candidate string) bool {
	a, b, s := []rune(lower(wordA)), []rune(lower(wordB)), []rune(lower(candidate))
	if len(s) != len(a)+len(b) {
		return false
	}
	_, ok := exact(a, b, s)
	return ok
}

// exact evaluates the table and, on failure, returns the length of the
// longest candidate prefix that any split of the two words could produce.
// That length is the index of the first character no interleaving explains.
func exact(a, b, s []rune) (int, bool) {
	n, m := len(a), len(b)

	reach := make([]bool, m+1)
	furthest := 0

	for i := 0; i <= n; i++ {
		for j := 0; j <= m; j++ {
			switch {
			case i == 0 && j == 0:
				reach[j] = true
			case i == 0:
				reach[j] = reach[j-1] && b[j-1] == s[j-1]
			case j == 0:
				reach[j] = reach[j] && a[i-1] == s[i-1]
			default:
				k := i + j - 1
				reach[j] = (reach[j] && a[i-1] == s[k]) || (reach[j-1] && b[j-1] == s[k])
			}
			if reach[j] && i+j > furthest {
				furthest = i + j
			}
		}
	}

	if reach[m] {
		return -1, true
	}
	return furthest, false
}

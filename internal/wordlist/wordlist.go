// Package wordlist provides the allowed-word collaborator consulted before a
// shuffle is checked.
//
// The list is built once at startup and is read-only afterwards. When no
// list is configured every word is allowed.
package wordlist

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	shuffleerrors "github.com/conneroisu/shuffle/internal/errors"
)

// Lookup answers whether a word is allowed. Implementations compare
// case-insensitively.
type Lookup interface {
	Contains(word string) bool
}

// AllowAll permits every word.
type AllowAll struct{}

// Contains always returns true.
func (AllowAll) Contains(string) bool { return true }

// Set is an immutable set of lower-cased words.
type Set struct {
	words map[string]struct{}
}

// FromWords builds a Set from the given words.
func FromWords(words ...string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w = normalize(w); w != "" {
			s.words[w] = struct{}{}
		}
	}
	return s
}

// Load reads one word per line. Surrounding whitespace is trimmed; blank
// lines and lines starting with '#' are skipped.
func Load(r io.Reader) (*Set, error) {
	s := &Set{words: make(map[string]struct{})}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.words[normalize(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, shuffleerrors.NewIOError(shuffleerrors.ErrCodeFileUnreadable,
			"failed to read word list", err)
	}

	return s, nil
}

// LoadFile reads a word list from path.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		code := shuffleerrors.ErrCodeFileUnreadable
		if errors.Is(err, fs.ErrNotExist) {
			code = shuffleerrors.ErrCodeFileNotFound
		}
		return nil, shuffleerrors.NewIOError(code, "failed to open word list", err).
			WithContext("path", path)
	}
	defer f.Close()

	set, err := Load(f)
	if err != nil {
		var se *shuffleerrors.ShuffleError
		if errors.As(err, &se) {
			se.WithContext("path", path)
		}
		return nil, err
	}
	return set, nil
}

// Open returns the Lookup for path. An empty path yields AllowAll. A missing
// file also yields AllowAll when optional is set; any other failure is
// returned.
func Open(path string, optional bool) (Lookup, error) {
	if path == "" {
		return AllowAll{}, nil
	}

	set, err := LoadFile(path)
	if err != nil {
		if optional && shuffleerrors.HasCode(err, shuffleerrors.ErrCodeFileNotFound) {
			return AllowAll{}, nil
		}
		return nil, err
	}
	return set, nil
}

// Contains reports whether word is in the set, ignoring case.
func (s *Set) Contains(word string) bool {
	_, ok := s.words[normalize(word)]
	return ok
}

// Len returns the number of distinct words.
func (s *Set) Len() int {
	return len(s.words)
}

// Words returns the words in sorted order.
func (s *Set) Words() []string {
	out := make([]string, 0, len(s.words))
	for w := range s.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

func normalize(word string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(word))
}

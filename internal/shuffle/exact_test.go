package shuffle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInterleaving(t *testing.T) {
	tests := []struct {
		first, second, shuffled string
		expected                bool
	}{
		{"TOURNAMENT", "DINNER", "TDINOURNANMENTER", true},
		{"TOURNAMENT", "DINNER", "DINTOURNERNAMENT", true},
		{"foo", "bar", "fbaoro", true},
		{"Foo", "Bar", "FBAORO", true},
		{"ba", "baab", "bababa", true},
		{"", "", "", true},
		{"", "abc", "abc", true},
		{"abc", "", "acb", false},
		{"foo", "bar", "fbxoro", false},
		{"TOURNAMENT", "DINNER", "TIDNOURNANMENTER", false},
		{"foo", "bar", "foobarx", false},
		{"aab", "axy", "aaxaby", true},
		{"aab", "axy", "abaaxy", false},
	}

	for _, tt := range tests {
		t.Run(tt.first+"+"+tt.second+"="+tt.shuffled, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsInterleaving(tt.first, tt.second, tt.shuffled))
		})
	}
}

func TestExactStrategy_FailureIndex(t *testing.T) {
	v := New(WithStrategy(StrategyExact))

	res := v.Validate(context.Background(), "foo", "bar", "fbxoro")
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonMismatch, res.Reason)
	assert.Equal(t, 2, res.Index)
	assert.Equal(t, 'x', res.Char)

	// "fob" is the longest explainable prefix; 'r' follows before 'a'.
	res = v.Validate(context.Background(), "foo", "bar", "fobroa")
	assert.False(t, res.Valid)
	assert.Equal(t, 3, res.Index)
	assert.Equal(t, 'r', res.Char)
}

func TestExactStrategy_RespectsAllowList(t *testing.T) {
	v := New(WithStrategy(StrategyExact), WithAllowedWords(wordSet{"bar": true}))

	res := v.Validate(context.Background(), "foo", "bar", "foobar")
	assert.Equal(t, ReasonWordNotAllowed, res.Reason)
}

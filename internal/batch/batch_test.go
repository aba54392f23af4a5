package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shuffleerrors "github.com/conneroisu/shuffle/internal/errors"
	"github.com/conneroisu/shuffle/internal/shuffle"
)

const yamlCases = `cases:
  - name: tournament
    first: TOURNAMENT
    second: DINNER
    shuffled: TDINOURNANMENTER
    expect: true
  - first: foo
    second: bar
    shuffled: fbxoro
    expect: false
  - first: foo
    second: bar
    shuffled: fbaoro
`

const jsonCases = `{"cases": [
  {"first": "foo", "second": "bar", "shuffled": "foobar", "expect": true},
  {"first": "ba", "second": "baab", "shuffled": "bababa", "expect": true}
]}`

func boolPtr(b bool) *bool { return &b }

func TestParse(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		cases, err := Parse([]byte(yamlCases))
		require.NoError(t, err)
		require.Len(t, cases, 3)

		assert.Equal(t, "tournament", cases[0].Label())
		require.NotNil(t, cases[0].Expect)
		assert.True(t, *cases[0].Expect)
		assert.Equal(t, "foo+bar=fbxoro", cases[1].Label())
		assert.Nil(t, cases[2].Expect)
	})

	t.Run("json", func(t *testing.T) {
		cases, err := Parse([]byte(jsonCases))
		require.NoError(t, err)
		assert.Len(t, cases, 2)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Parse([]byte("cases:\n  - first: a\n    third: b\n"))
		require.Error(t, err)
		assert.True(t, shuffleerrors.HasCode(err, shuffleerrors.ErrCodeCaseFileInvalid))
	})

	t.Run("no cases", func(t *testing.T) {
		_, err := Parse([]byte("cases: []\n"))
		require.Error(t, err)
		assert.True(t, shuffleerrors.HasCode(err, shuffleerrors.ErrCodeCaseFileInvalid))
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Parse([]byte("cases: [unterminated"))
		assert.Error(t, err)
	})
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlCases), 0o644))

	cases, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, cases, 3)

	_, err = ReadFile(filepath.Join(dir, "nope.yml"))
	require.Error(t, err)
	assert.True(t, shuffleerrors.HasCode(err, shuffleerrors.ErrCodeFileNotFound))

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("cases: []\n"), 0o644))
	_, err = ReadFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yml")
}

func TestRunner_Run(t *testing.T) {
	cases, err := Parse([]byte(yamlCases))
	require.NoError(t, err)

	report, err := NewRunner(shuffle.New(), 2, nil).Run(context.Background(), cases)
	require.NoError(t, err)

	_, err = uuid.Parse(report.RunID)
	assert.NoError(t, err)
	assert.Equal(t, shuffle.StrategyGreedy, report.Strategy)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Valid)
	assert.Equal(t, 1, report.Invalid)
	assert.Equal(t, 0, report.Failed)
	assert.NoError(t, report.Err())

	require.Len(t, report.Outcomes, 3)
	assert.Equal(t, "tournament", report.Outcomes[0].Name)
	assert.True(t, report.Outcomes[0].Valid)

	mismatch := report.Outcomes[1]
	assert.False(t, mismatch.Valid)
	assert.Equal(t, shuffle.ReasonMismatch, mismatch.Reason)
	assert.Equal(t, 2, mismatch.Index)
	assert.Equal(t, "x", mismatch.Char)
	assert.True(t, mismatch.Passed)

	assert.True(t, report.Outcomes[2].Passed, "cases without expectation always pass")
}

func TestRunner_ExpectationFailures(t *testing.T) {
	cases := []Case{
		{Name: "greedy limit", First: "ba", Second: "baab", Shuffled: "bababa", Expect: boolPtr(true)},
		{Name: "plain", First: "foo", Second: "bar", Shuffled: "barfoo", Expect: boolPtr(true)},
	}

	report, err := NewRunner(shuffle.New(), 4, nil).Run(context.Background(), cases)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Failed)

	err = report.Err()
	require.Error(t, err)
	assert.True(t, shuffleerrors.HasCode(err, shuffleerrors.ErrCodeExpectation))
	assert.Contains(t, err.Error(), "greedy limit")

	exactReport, err := NewRunner(shuffle.New(shuffle.WithStrategy(shuffle.StrategyExact)), 4, nil).
		Run(context.Background(), cases)
	require.NoError(t, err)
	assert.Equal(t, shuffle.StrategyExact, exactReport.Strategy)
	assert.Equal(t, 0, exactReport.Failed)
}

func TestRunner_PreservesOrderUnderConcurrency(t *testing.T) {
	var cases []Case
	for i := 0; i < 200; i++ {
		if i%3 == 0 {
			cases = append(cases, Case{First: "foo", Second: "bar", Shuffled: "fbxoro"})
		} else {
			cases = append(cases, Case{First: "foo", Second: "bar", Shuffled: "fbaoro"})
		}
	}

	report, err := NewRunner(shuffle.New(), 8, nil).Run(context.Background(), cases)
	require.NoError(t, err)

	for i, o := range report.Outcomes {
		assert.Equal(t, i%3 != 0, o.Valid, "outcome %d", i)
	}
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cases := []Case{{First: "a", Second: "b", Shuffled: "ab"}}
	_, err := NewRunner(shuffle.New(), 0, nil).Run(ctx, cases)
	assert.ErrorIs(t, err, context.Canceled)
}

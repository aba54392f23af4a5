package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shuffleerrors "github.com/conneroisu/shuffle/internal/errors"
)

func TestAllowAll(t *testing.T) {
	var l Lookup = AllowAll{}
	assert.True(t, l.Contains("anything"))
	assert.True(t, l.Contains(""))
}

func TestLoad(t *testing.T) {
	input := `# allowed words
Foo
  bar

BAZ
foo
`
	set, err := Load(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, set.Len())
	assert.Equal(t, []string{"bar", "baz", "foo"}, set.Words())

	assert.True(t, set.Contains("foo"))
	assert.True(t, set.Contains("FOO"))
	assert.True(t, set.Contains("Baz"))
	assert.False(t, set.Contains("qux"))
	assert.False(t, set.Contains("# allowed words"))
}

func TestLoad_ReadError(t *testing.T) {
	_, err := Load(iotest.ErrReader(errors.New("broken pipe")))
	require.Error(t, err)
	assert.True(t, shuffleerrors.HasCode(err, shuffleerrors.ErrCodeFileUnreadable))
}

func TestFromWords(t *testing.T) {
	set := FromWords("Tournament", "DINNER", " ", "")
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("tournament"))
	assert.True(t, set.Contains("Dinner"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("foo\nbar\n"), 0o644))

	set, err := LoadFile(path)
	require.NoError(t, err)
	assert.True(t, set.Contains("BAR"))

	_, err = LoadFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, shuffleerrors.HasCode(err, shuffleerrors.ErrCodeFileNotFound))
	assert.Contains(t, err.Error(), "missing.txt")
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("foo\n"), 0o644))
	missing := filepath.Join(dir, "missing.txt")

	t.Run("empty path is permissive", func(t *testing.T) {
		l, err := Open("", false)
		require.NoError(t, err)
		assert.IsType(t, AllowAll{}, l)
	})

	t.Run("existing file", func(t *testing.T) {
		l, err := Open(path, false)
		require.NoError(t, err)
		assert.True(t, l.Contains("FOO"))
		assert.False(t, l.Contains("bar"))
	})

	t.Run("missing optional file is permissive", func(t *testing.T) {
		l, err := Open(missing, true)
		require.NoError(t, err)
		assert.True(t, l.Contains("bar"))
	})

	t.Run("missing required file fails", func(t *testing.T) {
		_, err := Open(missing, false)
		assert.Error(t, err)
	})
}

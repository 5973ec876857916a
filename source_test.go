package lineio

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextLine(t *testing.T) {
	src := FromString("first line\nsecond\n\nlast")

	for i, want := range []string{"first line", "second", "", "last"} {
		ln, err := src.NextLine()
		require.NoError(t, err)
		assert.Equal(t, want, ln.Text())
		assert.Equal(t, i+1, ln.Lineno())
	}

	_, err := src.NextLine()
	assert.Equal(t, io.EOF, err)

	// EOF is sticky.
	_, err = src.NextLine()
	assert.Equal(t, io.EOF, err)
	assert.NoError(t, src.Err())
}

func TestNextLineCRLF(t *testing.T) {
	src := FromString("a b\r\nc\r\n")

	ln, err := src.NextLine()
	require.NoError(t, err)
	assert.Equal(t, "a b", ln.Text())
	assert.Equal(t, []string{"a", "b"}, ln.Tokens())

	ln, err = src.NextLine()
	require.NoError(t, err)
	assert.Equal(t, "c", ln.Text())
}

func TestLinesIteration(t *testing.T) {
	src := FromString("a\nb\nc\n")

	var got []string
	for ln := range src.Lines() {
		got = append(got, ln.Text())
	}

	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.NoError(t, src.Err())
}

func TestLinesEarlyBreak(t *testing.T) {
	src := FromString("a\nb\nc\n")

	for range src.Lines() {
		break
	}

	// Iteration is forward-only; the cursor stays where it stopped.
	ln, err := src.NextLine()
	require.NoError(t, err)
	assert.Equal(t, "b", ln.Text())
}

func TestBlocks(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			"two blocks",
			"1 2\n3 4\n\n5 6\n",
			[][]string{{"1 2", "3 4"}, {"5 6"}},
		},
		{
			"leading and repeated blanks",
			"\n\na\n\n\n\nb\nc",
			[][]string{{"a"}, {"b", "c"}},
		},
		{
			"no trailing newline",
			"x",
			[][]string{{"x"}},
		},
		{
			"only blanks",
			"\n\n\n",
			nil,
		},
		{
			"empty input",
			"",
			nil,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			src := FromString(tc.input)

			var got [][]string
			for b := range src.Blocks() {
				got = append(got, b.Text())
			}

			assert.Equal(t, tc.want, got)
			assert.NoError(t, src.Err())
		})
	}
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInput)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("10 20\n30\n"), 0o644))

	src, err := FromFile(path)
	require.NoError(t, err)
	defer src.Close()

	lines := slices.Collect(src.Lines())
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"10", "20"}, lines[0].Tokens())

	assert.NoError(t, src.Close())
	// Close is idempotent.
	assert.NoError(t, src.Close())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestReadErrorSticky(t *testing.T) {
	src := FromReader(failingReader{})

	for range src.Lines() {
		t.Fatal("no line should be yielded")
	}

	require.Error(t, src.Err())
	assert.ErrorIs(t, src.Err(), ErrInput)

	_, err := src.NextLine()
	assert.Equal(t, src.Err(), err)
}

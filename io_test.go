package lineio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIoLineLoop(t *testing.T) {
	var out bytes.Buffer
	o := NewReadWriter(strings.NewReader("1 2\n3 4\n40 2\n"), &out)

	for ln := range o.Lines() {
		a, b, err := Tuple2[int64, int64](ln)
		require.NoError(t, err)
		require.NoError(t, o.Writeln(a+b))
	}

	require.NoError(t, o.Err())
	assert.Equal(t, "3\n7\n42\n", out.String())
}

func TestIoBlocks(t *testing.T) {
	var out bytes.Buffer
	o := NewReadWriter(strings.NewReader("1 2\n3 4\n\n5 6\n"), &out)

	var sums []int
	for b := range o.Blocks() {
		sum := 0
		for _, ln := range b.Lines() {
			for _, v := range PositiveNums[int](ln) {
				sum += v
			}
		}
		sums = append(sums, sum)
	}

	assert.Equal(t, []int{10, 11}, sums)
}

func TestIoReadAll(t *testing.T) {
	o := NewString("test 1 +4, 1\nabc")

	content, err := o.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "test 1 +4, 1\nabc", content)

	// The input is spent afterwards.
	content, err = o.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "", content)
}

func TestIoReadAllAfterLines(t *testing.T) {
	o := NewString("head\nrest 1\nrest 2\n")

	ln, err := o.NextLine()
	require.NoError(t, err)
	assert.Equal(t, "head", ln.Text())

	content, err := o.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "rest 1\nrest 2\n", content)
}

func TestNums(t *testing.T) {
	o := NewString("a: 12, b: -1 and d = 2")

	nums, err := Nums[int64](o)
	require.NoError(t, err)
	assert.Equal(t, []int64{12, -1, 2}, nums)
}

func TestNumsAcrossLines(t *testing.T) {
	o := NewString("x3y\n-7 foo9\n")

	nums, err := Nums[int](o)
	require.NoError(t, err)
	assert.Equal(t, []int{3, -7, 9}, nums)
}

func TestNumsOverflow(t *testing.T) {
	o := NewString("99999999999999999999")

	_, err := Nums[int64](o)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConversion)
}

func TestWrite(t *testing.T) {
	var out bytes.Buffer
	o := NewReadWriter(strings.NewReader(""), &out)

	require.NoError(t, o.Write("Test\n"))
	require.NoError(t, o.Write(5))
	require.NoError(t, o.Writef(" %02d", 7))
	require.NoError(t, o.Flush())

	assert.Equal(t, "Test\n5 07", out.String())
}

func TestOpenFileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("20 22\n"), 0o644))

	o, err := OpenFileToFile(in, out)
	require.NoError(t, err)

	ln, err := o.NextLine()
	require.NoError(t, err)
	a, b, err := Tuple2[int, int](ln)
	require.NoError(t, err)
	require.NoError(t, o.Write(a + b))
	require.NoError(t, o.Close())

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "42", string(written))
}

func TestOpenFileToFileSamePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "both.txt")
	require.NoError(t, os.WriteFile(path, []byte("1\n"), 0o644))

	_, err := OpenFileToFile(path, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInput)
}

func TestOpenFileMissing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInput)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

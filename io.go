package lineio

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"regexp"
	"slices"

	"spheric.cloud/xiter"
)

// Io bundles a Source with a buffered writer,
// covering the read-compute-print loop of a contest solution.
// It exclusively owns its Source for its lifetime.
// An Io is not safe for concurrent use.
type Io struct {
	src *Source
	w   *bufio.Writer
	wc  io.Closer
}

// New reads from standard input and writes to standard output.
func New() *Io {
	return NewReadWriter(os.Stdin, os.Stdout)
}

// NewReadWriter reads from r and writes to w.
func NewReadWriter(r io.Reader, w io.Writer) *Io {
	return &Io{src: FromReader(r), w: bufio.NewWriter(w)}
}

// NewString reads from an in-memory string and writes to standard output.
func NewString(s string) *Io {
	return &Io{src: FromString(s), w: bufio.NewWriter(os.Stdout)}
}

// OpenFile reads from the named file and writes to standard output.
func OpenFile(path string) (*Io, error) {
	src, err := FromFile(path)
	if err != nil {
		return nil, err
	}

	return &Io{src: src, w: bufio.NewWriter(os.Stdout)}, nil
}

// OpenFileToFile reads from one file and writes to another.
// Reading from and writing to the same path is rejected.
func OpenFileToFile(in, out string) (*Io, error) {
	if in == out {
		return nil, &IOError{
			Err: fmt.Errorf("cannot read from and write to the same file %q", in),
		}
	}

	src, err := FromFile(in)
	if err != nil {
		return nil, err
	}

	f, err := os.Create(out)
	if err != nil {
		src.Close()
		return nil, &IOError{Err: err}
	}

	return &Io{src: src, w: bufio.NewWriter(f), wc: f}, nil
}

// NewToFile reads from standard input and writes to the named file.
func NewToFile(path string) (*Io, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, &IOError{Err: err}
	}

	return &Io{src: FromStdin(), w: bufio.NewWriter(f), wc: f}, nil
}

// NextLine returns the next input line. See Source.NextLine.
func (o *Io) NextLine() (*Line, error) {
	return o.src.NextLine()
}

// NextBlock returns the next input block. See Source.NextBlock.
func (o *Io) NextBlock() (*Block, error) {
	return o.src.NextBlock()
}

// Lines iterates the remaining input lines. See Source.Lines.
func (o *Io) Lines() iter.Seq[*Line] {
	return o.src.Lines()
}

// Blocks iterates the remaining input blocks. See Source.Blocks.
func (o *Io) Blocks() iter.Seq[*Block] {
	return o.src.Blocks()
}

// Err reports the read error that terminated iteration, if any.
func (o *Io) Err() error {
	return o.src.Err()
}

// ReadAll drains and returns the remaining unread input.
func (o *Io) ReadAll() (string, error) {
	return o.src.readRest()
}

var numPattern = regexp.MustCompile(`-?\d+`)

// Nums scans the remaining input for integer literals,
// ignoring everything between them,
// and returns the literals parsed as T in order of appearance.
// Unlike PositiveNums this is not line-bound and not sign-filtered,
// but a literal too large for T is still a ConversionError.
func Nums[T Signed](o *Io) ([]T, error) {
	all, err := o.ReadAll()
	if err != nil {
		return nil, err
	}

	matches := numPattern.FindAllString(all, -1)
	return xiter.TryCollect(xiter.MapErr(slices.Values(matches),
		func(m string) (T, error) {
			v, err := parseToken[T](m)
			if err != nil {
				return v, &ConversionError{
					Token:  m,
					Target: fmt.Sprintf("%T", v),
					Cause:  err,
				}
			}
			return v, nil
		}))
}

// Write prints v to the buffered output.
func (o *Io) Write(v any) error {
	_, err := fmt.Fprint(o.w, v)
	return err
}

// Writef prints to the buffered output in the manner of fmt.Printf.
func (o *Io) Writef(format string, args ...any) error {
	_, err := fmt.Fprintf(o.w, format, args...)
	return err
}

// Writeln prints v followed by a newline, then flushes.
func (o *Io) Writeln(v any) error {
	if err := o.Write(v); err != nil {
		return err
	}
	if err := o.w.WriteByte('\n'); err != nil {
		return err
	}
	return o.Flush()
}

// Flush forces buffered output out.
// Avoid calling it inside tight loops; Close flushes too.
func (o *Io) Flush() error {
	return o.w.Flush()
}

// Close flushes the output and releases both underlying files,
// on all paths, including early returns.
func (o *Io) Close() error {
	err := o.w.Flush()

	if cerr := o.src.Close(); err == nil {
		err = cerr
	}

	if o.wc != nil {
		c := o.wc
		o.wc = nil
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}

	return err
}

package lineio

import (
	"bufio"
	"io"
	"iter"
	"os"
	"strings"
)

// Source owns a buffered stream of input lines.
// It is consumed forward-only, exactly once; there is no rewind.
// A Source is not safe for concurrent use.
type Source struct {
	r      *bufio.Reader
	closer io.Closer
	lineno int
	err    error
	done   bool
}

// FromFile opens path for line iteration.
// It fails with an IOError when the path does not exist or is unreadable.
func FromFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Err: err}
	}

	return &Source{r: bufio.NewReader(f), closer: f}, nil
}

// FromStdin reads from standard input.
func FromStdin() *Source {
	return FromReader(os.Stdin)
}

// FromReader reads from an arbitrary reader.
func FromReader(r io.Reader) *Source {
	return &Source{r: bufio.NewReader(r)}
}

// FromString reads from an in-memory string,
// which makes parsing fixed test input easy.
func FromString(s string) *Source {
	return FromReader(strings.NewReader(s))
}

// NextLine returns the next line with its trailing newline removed.
// It returns io.EOF at the end of the source.
// An unrecoverable read error is returned as an IOError,
// is sticky, and terminates iteration.
func (s *Source) NextLine() (*Line, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.done {
		return nil, io.EOF
	}

	raw, err := s.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			s.err = &IOError{Err: err}
			return nil, s.err
		}

		// A final line without a newline is still a line.
		s.done = true
		if raw == "" {
			return nil, io.EOF
		}
	}

	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")
	s.lineno++
	return newLine(raw, s.lineno), nil
}

// NextBlock returns the next maximal run of consecutive non-blank lines,
// skipping any blank lines before it.
// It returns io.EOF only when no further non-blank content exists.
func (s *Source) NextBlock() (*Block, error) {
	var lines []*Line
	for {
		ln, err := s.NextLine()
		if err == io.EOF {
			if len(lines) == 0 {
				return nil, io.EOF
			}
			return &Block{lines: lines}, nil
		}
		if err != nil {
			return nil, err
		}

		if ln.blank() {
			if len(lines) == 0 {
				continue
			}
			return &Block{lines: lines}, nil
		}

		lines = append(lines, ln)
	}
}

// Lines returns a lazy, forward-only sequence over the remaining lines.
// The sequence is not restartable: ranging over it advances the Source.
// It ends at the end of the source or at the first read error;
// check Err afterwards to tell the two apart.
func (s *Source) Lines() iter.Seq[*Line] {
	return func(yield func(*Line) bool) {
		for {
			ln, err := s.NextLine()
			if err != nil {
				return
			}
			if !yield(ln) {
				return
			}
		}
	}
}

// Blocks is the block-wise analogue of Lines.
func (s *Source) Blocks() iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		for {
			b, err := s.NextBlock()
			if err != nil {
				return
			}
			if !yield(b) {
				return
			}
		}
	}
}

// Err reports the read error that terminated iteration, if any.
// Reaching the end of the source is not an error.
func (s *Source) Err() error {
	return s.err
}

// Close releases the underlying file, when there is one.
// It is safe to call more than once.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}

	c := s.closer
	s.closer = nil
	if err := c.Close(); err != nil {
		return &IOError{Err: err}
	}

	return nil
}

// readRest drains the remaining raw input.
func (s *Source) readRest() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if s.done {
		return "", nil
	}

	b, err := io.ReadAll(s.r)
	s.done = true
	if err != nil {
		s.err = &IOError{Err: err}
		return "", s.err
	}

	return string(b), nil
}

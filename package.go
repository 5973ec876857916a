/*
Package lineio reads loosely structured, line-oriented text input -
the kind consumed by programming-contest judges -
and converts it directly into strongly-typed Go values.

The input model is deliberately small.
A Source yields Lines in order, exactly once, with no rewind.
Each Line splits into tokens:
maximal runs of non-separator characters,
where separators are spaces, tabs and commas.
Blank lines carry meaning only for block iteration,
which groups consecutive non-blank lines into Blocks.


Reading typed values

The extraction functions consume tokens left-to-right
from a Line's cursor and parse them into the requested types:

	src := lineio.FromString("3 hello -5.1")
	ln, _ := src.NextLine()
	n, word, f, err := lineio.Tuple3[int, string, float64](ln)

Extraction is all-or-nothing per call.
If fewer tokens remain than the requested arity,
the call fails with an ArityError and consumes nothing.
If a token does not parse,
the call fails with a ConversionError naming the token,
its 0-indexed position within the call,
and the target type;
tokens after the failing position are not attempted.

Any type may be an extraction target.
The built-in scalars
(string, bool, the sized integers, floats and complex128)
have fast paths.
Other types implement either the Unmarshaler interface
or encoding.TextUnmarshaler;
the latter is how the math/big types work out of the box:

	v, err := lineio.Value[big.Int](ln)


The Io facade

Io bundles a Source with a buffered writer,
mirroring the read-compute-print loop of contest solutions:

	io, err := lineio.OpenFile("input.txt")
	if err != nil { ... }
	defer io.Close()
	for ln := range io.Lines() {
		a, b, err := lineio.Tuple2[int64, int64](ln)
		if err != nil { ... }
		io.Writeln(a + b)
	}

Neither Io nor Source is safe for concurrent use;
the model is one reader, one pass, one goroutine.


Utilities

ConvertRadix re-encodes integer tokens between bases 2 and 62.
It is never applied implicitly during extraction.

The Memoize family wraps pure functions with a cache
keyed by their argument tuple.
It is independent of the parsing engine
and never invoked by it.
*/
package lineio

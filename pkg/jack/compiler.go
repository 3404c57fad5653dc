package jack

import "io"

// CompileReader tokenizes and compiles the single class held in r, writing
// the resulting VM instructions to w. It instantiates a fresh Lexer,
// Resolver and VMWriter for the call: no state survives across
// compilations, and none is shared across goroutines compiling different
// files concurrently.
func CompileReader(r io.Reader, w io.Writer) error {
	lex := NewLexer(r)
	vm := NewVMWriter(w)
	p := NewParser(lex, vm)

	return p.Compile()
}

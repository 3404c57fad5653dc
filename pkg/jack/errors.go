package jack

import "fmt"

// LexError reports a lexical error: an unrecognized character, an
// out-of-range integer constant, or an unterminated string/comment.
type LexError struct {
	Lexeme string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error: %s", e.Lexeme)
}

// SyntaxError reports a parse-time token mismatch: the set of tokens the
// current production expected, and what was actually found. Compilation is
// fatal on the first one raised; there is no recovery.
type SyntaxError struct {
	Expected string
	Got      Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: expected %s, got %q", e.Expected, e.Got.Value)
}

// UndefinedError reports a reference to an identifier that resolves in
// neither the subroutine nor the class symbol table, encountered where the
// grammar requires a declared variable (a scalar read/write, or an array
// base). An undeclared identifier in a qualified-call position is instead
// taken to mean a class or function name; everywhere else, an unresolved
// name is fatal.
type UndefinedError struct {
	Name string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("undefined identifier: %s", e.Name)
}

// InternalError reports a compiler invariant violation that should never
// occur on well-formed input reaching this point, e.g. an unknown
// subroutine kind reaching the subroutine prologue.
type InternalError struct {
	Msg string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error: %s", e.Msg)
}

// Package testsrc generates random but lexically valid fragments of
// source text, for exercising the lexer beyond its hand-written cases.
package testsrc

import (
	"math/rand"
	"strings"
)

// validTokens enumerates a representative lexeme for every token shape the
// lexer accepts, semicolon-separated.
const validTokens = "class;Main;constructor;function;method;field;static;var;int;char;boolean;void;true;false;null;this;let;do;if;else;while;return;{;};(;);[;];.;,;;;+;-;*;/;&;|;<;>;=;~;x;count;0;1;32767;\"hello\";\"\";// a line comment\n"

// GetRandomTokens returns size random lexemes joined by single spaces.
func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

// GetRandomTokensWithSep returns size random lexemes joined by sep.
func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validTokens, ";")

	toks := make([]string, 0, size)
	for len(toks) < size {
		toks = append(toks, valid[rand.Intn(len(valid))])
	}

	return strings.Join(toks, sep)
}

//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import "fmt"

// ParseErrorKind classifies what kind of textual input a ParseError
// was raised from.
type ParseErrorKind uint8

// ParseErrorKind constants.
const (
	// FenSyntax: malformed FEN field (row count, run sums, unknown char,
	// bad turn/castling/ep token, non-numeric clocks).
	FenSyntax ParseErrorKind = iota
	// UciSyntax: wrong length, out-of-range file/rank/promo, promotion
	// on a non-back-rank square.
	UciSyntax
	// UnsupportedNotation: SAN forms beyond castling/null.
	UnsupportedNotation
	// IllegalMove: parsed move not present in the legal-move set for
	// the current position (optional strict-mode check).
	IllegalMove
	// ParseErrorSquare: malformed single-square text (e.g. "e4" input
	// helpers), not one of spec's four move/FEN error kinds.
	ParseErrorSquare
)

func (k ParseErrorKind) String() string {
	switch k {
	case FenSyntax:
		return "fen syntax"
	case UciSyntax:
		return "uci syntax"
	case UnsupportedNotation:
		return "unsupported notation"
	case IllegalMove:
		return "illegal move"
	case ParseErrorSquare:
		return "square"
	default:
		return "unknown"
	}
}

// ParseError reports a malformed FEN, UCI move, or square string. Input
// keeps the offending text so callers can surface it without it having
// to be re-derived from context.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Kind, e.Input, e.Msg)
}

// Is lets callers check error kind with errors.Is(err, &ParseError{Kind:
// FenSyntax}) without needing to match Input/Msg.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

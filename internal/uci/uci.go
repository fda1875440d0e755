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

// Package uci implements the coordinate move notation used on the UCI
// wire: parsing a "e2e4"/"e7e8q" token against a position into a Move,
// and rendering a Move back to that same notation. The UCI command
// loop itself (engine <-> GUI protocol, search, time management) is
// out of scope; this package only covers the move notation.
package uci

import (
	"regexp"
	"strings"

	"github.com/cosmobobak/chesscore-go/internal/movegen"
	"github.com/cosmobobak/chesscore-go/internal/position"
	. "github.com/cosmobobak/chesscore-go/internal/types"
)

// nullMoveTokens are the UCI-ish spellings a GUI or test harness may
// send to mean "no move". Engines differ on which of these they emit;
// all four are accepted on parse, but RenderMove always writes "0000",
// matching Move.StringUci's rendering of MoveNone.
var nullMoveTokens = map[string]bool{
	"--":   true,
	"Z0":   true,
	"0000": true,
	"@@@@": true,
}

// regexUciToken matches the coordinate grammar: file-rank-file-rank
// with an optional single promotion letter. It accepts both cases for
// the promotion letter; Movegen.GetMoveFromUci lower-cases it before
// comparing against the legal-move list.
var regexUciToken = regexp.MustCompile(`^[a-h][1-8][a-h][1-8][nbrqNBRQ]?$`)

// ParseMove resolves a UCI coordinate token against the legal moves of
// p. Grammar errors (wrong shape, a promotion letter on a move whose
// destination isn't rank 1 or 8) are reported as UciSyntax; a
// well-formed token that names no legal move on p is reported as
// IllegalMove. Any of nullMoveTokens parses to MoveNone with no error.
func ParseMove(mg *movegen.Movegen, p *position.Position, token string) (Move, error) {
	token = strings.TrimSpace(token)

	if nullMoveTokens[token] {
		return MoveNone, nil
	}

	if !regexUciToken.MatchString(token) {
		return MoveNone, &ParseError{Kind: UciSyntax, Input: token, Msg: "not a valid UCI move token"}
	}

	if len(token) == 5 {
		destRank := token[3]
		if destRank != '1' && destRank != '8' {
			return MoveNone, &ParseError{Kind: UciSyntax, Input: token, Msg: "promotion letter on a move not ending on rank 1 or 8"}
		}
	}

	m := mg.GetMoveFromUci(p, token)
	if m == MoveNone {
		return MoveNone, &ParseError{Kind: IllegalMove, Input: token, Msg: "not a legal move in this position"}
	}
	return m, nil
}

// RenderMove returns the UCI coordinate notation for m, e.g. "e2e4",
// "e7e8q" or "0000" for the null move. It is a thin wrapper over
// Move.StringUci kept here so callers only need to import this
// package for both directions of the notation.
func RenderMove(m Move) string {
	return m.StringUci()
}

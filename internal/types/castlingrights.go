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

import "strings"

// CastlingRights is a Bitboard restricted to the four rook home squares
// (a1, h1, a8, h8). A set bit means the rook that started the game on
// that square still carries its castling right; a cleared bit means
// that side has lost the right, either because the rook or its king
// has moved or because the rook was captured on its home square.
//
// This is a more compact encoding than a 4-flag bitset: it lets move
// generation and make/unmake derive "which right does touching this
// square void" with a single square-indexed Bb lookup (GetCastlingRights)
// instead of a color/side switch.
type CastlingRights Bitboard

// Castling rights constants, one bit per rook home square.
const (
	CastlingNone    CastlingRights = 0
	CastlingWhiteOO CastlingRights = CastlingRights(1) << SqH1
	CastlingWhiteOOO CastlingRights = CastlingRights(1) << SqA1
	CastlingBlackOO CastlingRights = CastlingRights(1) << SqH8
	CastlingBlackOOO CastlingRights = CastlingRights(1) << SqA8

	CastlingWhite = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack = CastlingBlackOO | CastlingBlackOOO
	CastlingAny   = CastlingWhite | CastlingBlack
)

// Has checks if any bit of rhs is set in cr.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs != 0
}

// Remove clears the bits of rhs from cr and returns the new value.
func (cr *CastlingRights) Remove(rhs CastlingRights) CastlingRights {
	*cr = *cr &^ rhs
	return *cr
}

// Add sets the bits of rhs in cr and returns the new value.
func (cr *CastlingRights) Add(rhs CastlingRights) CastlingRights {
	*cr = *cr | rhs
	return *cr
}

// String renders cr in FEN castling-field form, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var os strings.Builder
	if cr.Has(CastlingWhiteOO) {
		os.WriteString("K")
	}
	if cr.Has(CastlingWhiteOOO) {
		os.WriteString("Q")
	}
	if cr.Has(CastlingBlackOO) {
		os.WriteString("k")
	}
	if cr.Has(CastlingBlackOOO) {
		os.WriteString("q")
	}
	return os.String()
}

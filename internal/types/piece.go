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

import (
	"strings"
)

// Piece combines a Color and a PieceType into a single value that can sit
// in a board array slot.
//  PieceNone   = 0b0000
//  WhiteKing   = 0b0001
//  WhitePawn   = 0b0010
//  WhiteKnight = 0b0011
//  WhiteBishop = 0b0100
//  WhiteRook   = 0b0101
//  WhiteQueen  = 0b0110
//  BlackKing   = 0b1001
//  BlackPawn   = 0b1010
//  BlackKnight = 0b1011
//  BlackBishop = 0b1100
//  BlackRook   = 0b1101
//  BlackQueen  = 0b1110
//  PieceLength = 0b10000
type Piece int8

// Piece constants.
const (
	PieceNone   Piece = 0
	WhiteKing   Piece = 1
	WhitePawn   Piece = 2
	WhiteKnight Piece = 3
	WhiteBishop Piece = 4
	WhiteRook   Piece = 5
	WhiteQueen  Piece = 6
	BlackKing   Piece = 9
	BlackPawn   Piece = 10
	BlackKnight Piece = 11
	BlackBishop Piece = 12
	BlackRook   Piece = 13
	BlackQueen  Piece = 14
	PieceLength Piece = 16
)

// MakePiece creates the piece given by color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece((int(c) << 3) + int(pt))
}

// ColorOf returns the color of the given piece.
func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

// TypeOf returns the piece type of the given piece.
func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

// PieceFromChar returns the Piece corresponding to the given FEN character.
// Returns PieceNone if s is not exactly one valid piece letter.
func PieceFromChar(s string) Piece {
	if len(s) != 1 || s == "-" {
		return PieceNone
	}
	index := strings.Index(pieceToString, s)
	if index == -1 {
		return PieceNone
	}
	return Piece(index)
}

var pieceToString = " KPNBRQ- kpnbrq-"

// String returns the FEN letter for the piece (upper case for White).
func (p Piece) String() string {
	return string(pieceToString[p])
}

var pieceToChar = " KONBRQ- k*nbrq-"

// Char returns a FEN-like letter for the piece, using O/* for pawns.
func (p Piece) Char() string {
	return string(pieceToChar[p])
}

var pieceToUnicode = []string{" ", "♔", "♙", "♘", "♗", "♖", "♕", "-",
	" ", "♚", "♟", "♞", "♝", "♜", "♛", "-"}

// UniChar returns a unicode chess glyph for the piece.
func (p Piece) UniChar() string {
	return pieceToUnicode[p]
}

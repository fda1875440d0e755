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
	"fmt"
	"strings"
)

// Move is a 16-bit unsigned int encoding a chess move as a primitive
// data type.
//  MoveNone Move = 0
//  BITMAP 16-bit
//  1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  --------------------------------
//                       1 1 1 1 1 1  to
//           1 1 1 1 1 1              from
//       1 1                          promotion piece type (pt-2 -> 0-3)
//   1 1                              move type
//
// Unlike the search-era encoding this carries no sort value: ordering
// moves is a search concern and this core never ranks them.
type Move uint16

// MoveNone is the zero value, not a valid move.
const MoveNone Move = 0

const (
	fromShift     uint   = 6
	promTypeShift uint   = 12
	typeShift     uint   = 14
	squareMask    Move   = 0x3F
	toMask               = squareMask
	fromMask             = squareMask << fromShift
	promTypeMask  Move   = 3 << promTypeShift
	moveTypeMask  Move   = 3 << typeShift
)

// CreateMove returns an encoded Move. promType is only meaningful when
// t is Promotion; pass PtNone otherwise.
func CreateMove(from Square, to Square, t MoveType, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	// promType is squeezed into 2 bits (4 values: Knight, Bishop, Rook,
	// Queen) by subtracting the Knight value to land in 0-3.
	return Move(to) |
		Move(from)<<fromShift |
		Move(promType-Knight)<<promTypeShift |
		Move(t)<<typeShift
}

// MoveType returns the move's MoveType (Normal, Promotion, EnPassant, Castling).
func (m Move) MoveType() MoveType {
	return MoveType((m & moveTypeMask) >> typeShift)
}

// PromotionType returns the PieceType to promote to. Only meaningful
// when MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m&promTypeMask)>>promTypeShift) + Knight
}

// To returns the destination square of the move.
func (m Move) To() Square {
	return Square(m & toMask)
}

// From returns the origin square of the move.
func (m Move) From() Square {
	return Square((m & fromMask) >> fromShift)
}

// IsValid checks that the move has valid squares, a valid promotion
// piece type and a valid move type. MoveNone is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.PromotionType().IsValid() &&
		m.MoveType().IsValid()
}

// String returns a human readable representation of the move.
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-5s  type:%1s  prom:%1s  (%d) }",
		m.StringUci(), m.MoveType().String(), m.PromotionType().Char(), m)
}

// StringUci returns the UCI coordinate notation for the move, e.g.
// "e2e4" or "e7e8q".
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		os.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return os.String()
}

// StringBits returns a string with the bitwise breakdown of the move,
// useful when debugging move generation.
func (m Move) StringBits() string {
	return fmt.Sprintf(
		"Move { From[%-0.6b](%s) To[%-0.6b](%s) Prom[%-0.2b](%s) tType[%-0.2b](%s) (%d)}",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		m.PromotionType(), m.PromotionType().Char(),
		m.MoveType(), m.MoveType().String(),
		m)
}

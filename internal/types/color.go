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

// Color identifies one of the two sides in a chess game.
type Color uint8

// Color constants.
const (
	White       Color = 0
	Black       Color = 1
	ColorLength Color = 2
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid tests if c is a valid Color value.
func (c Color) IsValid() bool {
	return c < ColorLength
}

// String returns "w" for White and "b" for Black.
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

var moveDirectionFactor = [ColorLength]int{1, -1}

// Direction returns 1 for White and -1 for Black, useful for scaling
// rank-wise offsets that differ by side to move.
func (c Color) Direction() int {
	return moveDirectionFactor[c]
}

var pawnDir = [ColorLength]Direction{North, South}

// MoveDirection returns the Direction a pawn of this color advances towards.
func (c Color) MoveDirection() Direction {
	return pawnDir[c]
}

var promotionRankBb = [ColorLength]Bitboard{Rank8_Bb, Rank1_Bb}

// PromotionRankBb returns the Bb of the rank on which a pawn of this
// color promotes.
func (c Color) PromotionRankBb() Bitboard {
	return promotionRankBb[c]
}

var pawnDoubleRankBb = [ColorLength]Bitboard{Rank3_Bb, Rank6_Bb}

// PawnDoubleRank returns the Bb of the rank a pawn of this color passes
// over when making its initial two-square advance.
func (c Color) PawnDoubleRank() Bitboard {
	return pawnDoubleRankBb[c]
}

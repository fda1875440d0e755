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

package attacks

import (
	. "github.com/cosmobobak/chesscore-go/internal/types"
)

var rookRayDirections = [4]Direction{North, East, South, West}
var bishopRayDirections = [4]Direction{Northeast, Southeast, Southwest, Northwest}

// plainAttacks recomputes sliding attacks by walking each ray until the
// first blocker, with no precomputed table at all. It is slower than the
// magic-hash strategy but needs no startup build step, and is the
// reference implementation the magic tables are tested against.
func plainAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Rook:
		return rayAttacks(sq, occupied, rookRayDirections)
	case Bishop:
		return rayAttacks(sq, occupied, bishopRayDirections)
	case Queen:
		return rayAttacks(sq, occupied, rookRayDirections) | rayAttacks(sq, occupied, bishopRayDirections)
	default:
		// king/knight/pawn attacks have no occupancy dependence; the
		// precomputed pseudo-attack tables serve both strategies equally.
		return GetAttacksBb(pt, sq, occupied)
	}
}

func rayAttacks(sq Square, occupied Bitboard, dirs [4]Direction) Bitboard {
	var attack Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if !next.IsValid() || SquareDistance(s, next) != 1 {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

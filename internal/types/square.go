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
)

// Square represents exactly one square on a chess board.
type Square uint8

//noinspection GoUnusedConst
const (
	SqA1 Square = iota // 0
	SqB1
	SqC1
	SqD1
	SqE1
	SqF1
	SqG1
	SqH1
	SqA2
	SqB2
	SqC2
	SqD2
	SqE2
	SqF2
	SqG2
	SqH2
	SqA3
	SqB3
	SqC3
	SqD3
	SqE3
	SqF3
	SqG3
	SqH3
	SqA4
	SqB4
	SqC4
	SqD4
	SqE4
	SqF4
	SqG4
	SqH4
	SqA5
	SqB5
	SqC5
	SqD5
	SqE5
	SqF5
	SqG5
	SqH5
	SqA6
	SqB6
	SqC6
	SqD6
	SqE6
	SqF6
	SqG6
	SqH6
	SqA7
	SqB7
	SqC7
	SqD7
	SqE7
	SqF7
	SqG7
	SqH7
	SqA8
	SqB8
	SqC8
	SqD8
	SqE8
	SqF8
	SqG8
	SqH8   // 63
	SqNone // 64

	// SqLength is the size needed for arrays indexed by Square that
	// must also hold an entry for the SqNone sentinel.
	SqLength = SqNone + 1
)

// IsValid checks whether sq represents a valid square on the board (sq < 64).
func (sq Square) IsValid() bool {
	return sq < SqNone
}

// FileOf returns the file of the square.
func (sq Square) FileOf() File {
	return File(sq & 7)
}

// RankOf returns the rank of the square.
func (sq Square) RankOf() Rank {
	return Rank(sq >> 3)
}

// MakeSquare returns the square denoted by s (e.g. "e4"), or SqNone if
// s does not describe a valid square.
func MakeSquare(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	file := File(s[0] - 'a')
	rank := Rank(s[1] - '1')
	if !file.IsValid() || !rank.IsValid() {
		return SqNone
	}
	return SquareOf(file, rank)
}

// SquareOf returns the square at file f, rank r, or SqNone if either
// is invalid.
func SquareOf(f File, r Rank) Square {
	if !f.IsValid() || !r.IsValid() {
		return SqNone
	}
	return Square((int(r) << 3) + int(f))
}

// To returns the square reached by stepping one square in direction d,
// or SqNone if that step would leave the board.
func (sq Square) To(d Direction) Square {
	switch d {
	case North:
		return sqTo[sq][0]
	case East:
		return sqTo[sq][1]
	case South:
		return sqTo[sq][2]
	case West:
		return sqTo[sq][3]
	case Northeast:
		return sqTo[sq][4]
	case Southeast:
		return sqTo[sq][5]
	case Southwest:
		return sqTo[sq][6]
	case Northwest:
		return sqTo[sq][7]
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
}

// String returns the file letter and rank number (e.g. "e5"), or "-"
// if sq is not a valid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileOf().String() + sq.RankOf().String()
}

var sqTo [SqLength][8]Square

func init() {
	for sq := SqA1; sq < SqNone; sq++ {
		for i, dir := range Directions {
			sqTo[sq][i] = sq.toPreCompute(dir)
		}
	}
}

func (sq Square) toPreCompute(d Direction) Square {
	switch d {
	case North:
		sq += Square(d)
	case East:
		if sq.FileOf() < FileH {
			sq += Square(d)
		} else {
			return SqNone
		}
	case South:
		sq += Square(d)
	case West:
		if sq.FileOf() > FileA {
			sq += Square(d)
		} else {
			return SqNone
		}
	case Northeast:
		if sq.FileOf() < FileH {
			sq += Square(d)
		} else {
			return SqNone
		}
	case Southeast:
		if sq.FileOf() < FileH {
			sq += Square(d)
		} else {
			return SqNone
		}
	case Southwest:
		if sq.FileOf() > FileA {
			sq += Square(d)
		} else {
			return SqNone
		}
	case Northwest:
		if sq.FileOf() > FileA {
			sq += Square(d)
		} else {
			return SqNone
		}
	default:
		panic(fmt.Sprintf("invalid direction %d", d))
	}
	if sq.IsValid() {
		return sq
	}
	return SqNone
}

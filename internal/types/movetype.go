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

// MoveType classifies how a Move changes the board beyond the plain
// from/to square transfer.
type MoveType uint8

// MoveType constants, packed into the top 2 bits of a Move, above the
// promotion piece type (see Move).
const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling

	MoveTypeLength
)

// IsValid tests if mt is a valid MoveType value.
func (mt MoveType) IsValid() bool {
	return mt < MoveTypeLength
}

// String returns a short label for the move type.
func (mt MoveType) String() string {
	switch mt {
	case Normal:
		return "n"
	case Promotion:
		return "p"
	case EnPassant:
		return "e"
	case Castling:
		return "c"
	default:
		panic(fmt.Sprintf("invalid move type %d", mt))
	}
}

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

// Package util provides small helpers shared by the FEN/UCI parsers and
// the bitboard/movegen packages.
package util

// Abs is a non-branching function to determine the absolute value of an int.
func Abs(n int) int {
	y := n >> 31
	return (n ^ y) - y
}

// Min returns the smaller of the given integers.
func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// Max returns the bigger of the given integers.
func Max(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// IsAlpha checks if the char is a letter.
func IsAlpha(l uint8) bool {
	if (l < 'a' || l > 'z') && (l < 'A' || l > 'Z') {
		return false
	}
	return true
}

// IsDigit checks if the char is a digit 0-9.
func IsDigit(l uint8) bool {
	if l < '0' || l > '9' {
		return false
	}
	return true
}

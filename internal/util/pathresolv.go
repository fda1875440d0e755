/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveFile resolves a path to a file, trying it first relative to the
// working directory and then relative to the user's home directory.
// Path needs to be a file or a not-found error is returned.
func ResolveFile(file string) (string, error) {
	file = filepath.Clean(file)

	if filepath.IsAbs(file) {
		if fileExists(file) {
			return file, nil
		}
		return file, fmt.Errorf("file could not be found: %s", file)
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	if dir, err := os.UserHomeDir(); err == nil {
		if candidate := filepath.Join(dir, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	return file, fmt.Errorf("file could not be found: %s", file)
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil || info == nil {
		return false
	}
	return info.Mode().IsRegular()
}

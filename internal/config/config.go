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

// Package config holds globally available configuration variables
// which are either set by defaults or read from a config file.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/cosmobobak/chesscore-go/internal/util"
)

// globally available config values.
var (
	// ConfFile holds the path to the used config file (relative to working directory)
	ConfFile = "./config.toml"

	// Settings is the global configuration read in from file
	Settings conf

	initialized = false
)

type conf struct {
	Log     logConfiguration
	Attacks attacksConfiguration
}

// Setup reads the configuration file and sets defaults for anything it
// doesn't provide. Safe to call more than once - later calls are no-ops.
func Setup() {
	if initialized {
		return
	}

	Settings = conf{
		Log:     defaultLogConfiguration(),
		Attacks: defaultAttacksConfiguration(),
	}

	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("Config file not found. Using defaults. (", err, ")")
	}

	if Settings.Attacks.Table != tableKindMagic && Settings.Attacks.Table != tableKindPlain {
		log.Println("Unknown attacks.table setting", Settings.Attacks.Table, "- falling back to", tableKindMagic)
		Settings.Attacks.Table = tableKindMagic
	}

	initialized = true
}

// String prints out the settings and values of the Attacks section of
// the current configuration; no other section is printed.
// This uses reflection to read variables and their values.
func (settings *conf) String() string {
	var c strings.Builder
	c.WriteString("Attacks Config:\n")
	s := reflect.ValueOf(&settings.Attacks).Elem()
	typeOfT := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		c.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, typeOfT.Field(i).Name, f.Type(), f.Interface()))
	}
	return c.String()
}

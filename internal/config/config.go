// Copyright 2026 The Piecetable Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// piecetable.Option.
package config

// Config collects all configurable parameters for edit operations in this module.
type Config struct {
	// Attr is the attribution token recorded on changes produced by the operation. nil means
	// no attribution.
	Attr any

	// If set, the differ segments its inputs by grapheme cluster instead of by code point.
	Graphemes bool
}

// Default is the default configuration.
var Default = Config{}

// Flag describes a single config entry. This is used to detect if options are being passed to
// operations that don't support them.
type Flag int

const (
	Attribution Flag = 1 << iota
	Graphemes
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Attribution:
		return "piecetable.Attribution"
	case Graphemes:
		return "differ.Graphemes"
	default:
		panic("never reached")
	}
}

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

// Package edits translates the result vectors of the diff algorithm into an ordered edit script
// over runs of segments. The script is the internal representation that the differ replays against
// a piece table.
package edits

import (
	"strings"
	"unicode/utf8"
)

// Op describes the kind of a script segment.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (op Op) String() string {
	switch op {
	case Equal:
		return "equal"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "invalid"
	}
}

// Segment is a maximal run of equal, inserted, or deleted text.
type Segment struct {
	Op   Op
	Text string
	Len  int // length of Text in code points
}

// Script coalesces the result vectors rx, ry over the inputs x and y into an ordered edit script.
// The inputs are sequences of segments, one string per code point or grapheme cluster. Within a
// replaced region, the deletion run comes before the insertion run; replaying the script strictly
// left to right with a cursor reproduces y from x.
func Script(x, y []string, rx, ry []bool) []Segment {
	n, m := len(rx)-1, len(ry)-1
	var script []Segment
	for s, t := 0, 0; s < n || t < m; {
		start := s
		for s < n && rx[s] {
			s++
		}
		if s > start {
			script = append(script, segment(Delete, x[start:s]))
		}

		start = t
		for t < m && ry[t] {
			t++
		}
		if t > start {
			script = append(script, segment(Insert, y[start:t]))
		}

		start = s
		for s < n && t < m && !rx[s] && !ry[t] {
			s++
			t++
		}
		if s > start {
			script = append(script, segment(Equal, x[start:s]))
		}
	}
	return script
}

func segment(op Op, parts []string) Segment {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(p)
	}
	text := sb.String()
	return Segment{Op: op, Text: text, Len: utf8.RuneCountInString(text)}
}

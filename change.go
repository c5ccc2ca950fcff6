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

package piecetable

import "fmt"

// Op describes the kind of a change.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Insert Op = iota + 1 // Text was inserted at the position
	Delete               // Text was removed starting at the position
)

// Change describes one atomic edit.
//
//   - For Insert, Text is the exact substring that was inserted at Pos.
//   - For Delete, Text is the exact substring that was removed starting at Pos. Deletions carry
//     the removed text rather than just its length so that they can be inverted without consulting
//     any external state.
//
// Pos is a zero-based code-point offset into the text as it existed immediately before the change
// was applied. Attr is an optional opaque token recording who or what produced the edit; nil means
// no attribution.
//
// Changes are immutable values. The ones recorded in a [Table] are constructed by its edit
// operations; [NewChange] is for callers that build or replay edit logs themselves.
type Change struct {
	Op   Op
	Text string
	Pos  int
	Attr any
}

// NewChange returns a validated Change. It fails with [ErrInvalidOp] if op is neither [Insert] nor
// [Delete] and with [ErrInvalidPosition] if pos is negative. attr may be any value including nil.
func NewChange(op Op, text string, pos int, attr any) (Change, error) {
	switch op {
	case Insert, Delete:
	default:
		return Change{}, fmt.Errorf("%w: %d", ErrInvalidOp, int(op))
	}
	if pos < 0 {
		return Change{}, fmt.Errorf("%w: %d", ErrInvalidPosition, pos)
	}
	return Change{Op: op, Text: text, Pos: pos, Attr: attr}, nil
}

// Invert returns the change that exactly undoes c: the op is flipped between [Insert] and
// [Delete], text, position, and attribution stay the same.
func (c Change) Invert() Change {
	switch c.Op {
	case Insert:
		c.Op = Delete
	case Delete:
		c.Op = Insert
	default:
		panic("never reached")
	}
	return c
}

func (c Change) String() string {
	if c.Attr == nil {
		return fmt.Sprintf("%v(%q@%d)", c.Op, c.Text, c.Pos)
	}
	return fmt.Sprintf("%v(%q@%d by %v)", c.Op, c.Text, c.Pos, c.Attr)
}

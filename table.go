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

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"edlog.io/piecetable/internal/config"
	"edlog.io/piecetable/internal/runeview"
)

// Table is a piece-table edit log: an original text plus an ordered, reversible log of changes
// whose cumulative application yields the current text.
//
// The zero value is an empty table. Tables are immutable: every operation returns a new value and
// leaves its receiver untouched, so a Table can be copied, stored, and read concurrently without
// synchronization.
type Table struct {
	original string
	result   string

	// The two halves of the edit history, split at the current point of the undo timeline. Both
	// are stacks with their top at the last element: applied holds the changes in effect, oldest
	// first; pending holds the undone changes, most recently undone last.
	applied []Change
	pending []Change
}

// New returns a table seeded with text. The original and current text are equal and both logs are
// empty.
func New(text string) Table {
	return Table{original: text, result: text}
}

// Original returns the text the table was constructed with. It is never affected by edits.
func (t Table) Original() string { return t.original }

// Text returns the current text, i.e. the original with all applied changes folded in.
func (t Table) Text() string { return t.result }

// Len returns the length of the current text in code points.
func (t Table) Len() int { return utf8.RuneCountInString(t.result) }

// Applied returns a copy of the changes currently in effect, most recent first.
func (t Table) Applied() []Change { return reversed(t.applied) }

// Pending returns a copy of the undone changes, most recently undone first. A non-empty result
// means the table rejects new edits until the changes are redone.
func (t Table) Pending() []Change { return reversed(t.pending) }

func reversed(changes []Change) []Change {
	if len(changes) == 0 {
		return nil
	}
	out := make([]Change, len(changes))
	for i, c := range changes {
		out[len(changes)-1-i] = c
	}
	return out
}

// Insert returns a new table with text spliced in at the code-point offset pos of the current
// text. Inserting empty text is a no-op and records no change.
//
// Insert fails with [ErrUnappliedChanges] while undone changes are pending and with
// [ErrInvalidPosition] if pos is negative or past the end of the current text. On failure the
// returned table is the receiver, unchanged.
//
// The following option is supported: [Attribution]
func (t Table) Insert(text string, pos int, opts ...Option) (Table, error) {
	cfg := config.FromOptions(opts, config.Attribution)
	if text == "" {
		return t, nil
	}
	if len(t.pending) > 0 {
		return t, fmt.Errorf("%w: %d change(s) to redo", ErrUnappliedChanges, len(t.pending))
	}
	v := runeview.From(t.result)
	if pos < 0 || pos > v.Len() {
		return t, fmt.Errorf("%w: insert at %d in text of length %d", ErrInvalidPosition, pos, v.Len())
	}
	c := Change{Op: Insert, Text: text, Pos: pos, Attr: cfg.Attr}
	return Table{
		original: t.original,
		result:   v.Insert(pos, text).String(),
		applied:  push(t.applied, c),
		pending:  t.pending,
	}, nil
}

// Delete returns a new table with length code points removed starting at the code-point offset pos
// of the current text. The recorded change carries the removed substring, not just its length, so
// it remains invertible on its own. Deleting zero code points is a no-op and records no change.
//
// Delete fails with [ErrUnappliedChanges] while undone changes are pending, with
// [ErrInvalidPosition] if pos is negative or past the end of the current text, and with
// [ErrInvalidLength] if length is negative or the span reaches past the end. On failure the
// returned table is the receiver, unchanged.
//
// The following option is supported: [Attribution]
func (t Table) Delete(pos, length int, opts ...Option) (Table, error) {
	cfg := config.FromOptions(opts, config.Attribution)
	if length == 0 {
		return t, nil
	}
	if len(t.pending) > 0 {
		return t, fmt.Errorf("%w: %d change(s) to redo", ErrUnappliedChanges, len(t.pending))
	}
	v := runeview.From(t.result)
	if pos < 0 || pos > v.Len() {
		return t, fmt.Errorf("%w: delete at %d in text of length %d", ErrInvalidPosition, pos, v.Len())
	}
	if length < 0 || pos+length > v.Len() {
		return t, fmt.Errorf("%w: delete %d code point(s) at %d in text of length %d", ErrInvalidLength, length, pos, v.Len())
	}
	c := Change{Op: Delete, Text: v.Slice(pos, pos+length), Pos: pos, Attr: cfg.Attr}
	return Table{
		original: t.original,
		result:   v.Delete(pos, length).String(),
		applied:  push(t.applied, c),
		pending:  t.pending,
	}, nil
}

// Undo reverts the most recently applied change by applying its inverse to the current text and
// moving the change onto the pending log. The boolean reports whether a change was undone; it is
// false when the table is already at its first state, in which case the returned table is the
// receiver, unchanged. Reaching the first state is a normal boundary condition, not an error.
func (t Table) Undo() (Table, bool) {
	if len(t.applied) == 0 {
		return t, false
	}
	c := t.applied[len(t.applied)-1]
	return Table{
		original: t.original,
		result:   splice(t.result, c.Invert()),
		applied:  pop(t.applied),
		pending:  push(t.pending, c),
	}, true
}

// Redo re-applies the most recently undone change and moves it back onto the applied log. The
// boolean reports whether a change was redone; it is false when the table is already at its last
// state, in which case the returned table is the receiver, unchanged.
func (t Table) Redo() (Table, bool) {
	if len(t.pending) == 0 {
		return t, false
	}
	c := t.pending[len(t.pending)-1]
	return Table{
		original: t.original,
		result:   splice(t.result, c),
		applied:  push(t.applied, c),
		pending:  pop(t.pending),
	}, true
}

// push and pop never write into the backing array of the input slice, so tables sharing a log
// prefix can never observe each other's edits.

func push(changes []Change, c Change) []Change {
	return append(changes[:len(changes):len(changes)], c)
}

func pop(changes []Change) []Change {
	return slices.Clip(changes[:len(changes)-1])
}

// splice applies a trusted change to text. Changes recorded in a log are in bounds for the text
// they are replayed against by construction.
func splice(text string, c Change) string {
	v := runeview.From(text)
	switch c.Op {
	case Insert:
		return v.Insert(c.Pos, c.Text).String()
	case Delete:
		return v.Delete(c.Pos, utf8.RuneCountInString(c.Text)).String()
	default:
		panic("never reached")
	}
}

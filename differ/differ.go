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

// Package differ derives piece-table edit logs from string differences.
//
// Given a table and a target text, the differ computes a minimal edit script between the table's
// current text and the target with Myers' algorithm and replays it as a sequence of insert and
// delete operations against the table. The resulting table's text equals the target exactly, and
// its log records the rewrite as ordered, individually invertible changes.
package differ

import (
	"fmt"

	"edlog.io/piecetable"
	"edlog.io/piecetable/internal/config"
	"edlog.io/piecetable/internal/edits"
	"edlog.io/piecetable/internal/myers"
	"edlog.io/piecetable/internal/runeview"
	"github.com/rivo/uniseg"
)

// Strings builds a table from original and edits it into target.
//
// The following options are supported: [piecetable.Attribution], [Graphemes]
func Strings(original, target string, opts ...piecetable.Option) (piecetable.Table, error) {
	return Apply(piecetable.New(original), target, opts...)
}

// Apply edits the current text of t into target and returns the extended table. It fails with
// [piecetable.ErrUnappliedChanges] if t has undone changes pending: the diff would be computed
// against a state in the middle of the undo timeline, which is ambiguous. On failure the returned
// table is t, unchanged.
//
// The edit script is minimal and replayed strictly left to right, so the changes land in the
// applied log in the order a reader scanning both texts would encounter them, deletions before
// insertions within a replaced region.
//
// The following options are supported: [piecetable.Attribution], [Graphemes]
func Apply(t piecetable.Table, target string, opts ...piecetable.Option) (piecetable.Table, error) {
	cfg := config.FromOptions(opts, config.Attribution|config.Graphemes)
	if len(t.Pending()) > 0 {
		return t, fmt.Errorf("%w: cannot diff against a table mid-undo", piecetable.ErrUnappliedChanges)
	}

	x := segments(t.Text(), cfg.Graphemes)
	y := segments(target, cfg.Graphemes)
	rx, ry := myers.Diff(x, y)

	var eopts []piecetable.Option
	if cfg.Attr != nil {
		eopts = append(eopts, piecetable.Attribution(cfg.Attr))
	}

	// Replay the script with a running cursor measured in code points of the evolving text.
	// Equal runs advance the cursor, insertions advance it past the inserted text, and deletions
	// leave it in place since the deleted span is no longer present.
	pos := 0
	for _, seg := range edits.Script(x, y, rx, ry) {
		var err error
		switch seg.Op {
		case edits.Equal:
			pos += seg.Len
		case edits.Insert:
			t, err = t.Insert(seg.Text, pos, eopts...)
			pos += seg.Len
		case edits.Delete:
			t, err = t.Delete(pos, seg.Len, eopts...)
		default:
			panic("never reached")
		}
		if err != nil {
			return t, err
		}
	}
	return t, nil
}

// segments splits s into the elements the diff runs over: one string per code point, or one per
// grapheme cluster when requested.
func segments(s string, graphemes bool) []string {
	if !graphemes {
		return runeview.Split(s)
	}
	var out []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		out = append(out, gr.Str())
	}
	return out
}

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

// Package piecetable implements a text buffer as an ordered, reversible log of
// edit operations against an original text.
//
// A [Table] holds the original text, the materialized current text, and two
// logs: the changes currently in effect and the changes that have been undone.
// Edits go through [Table.Insert] and [Table.Delete], each of which records an
// invertible [Change] and returns a new Table value. [Table.Undo] and
// [Table.Redo] walk the two logs in either direction. Because deletions capture
// the removed text rather than just its length, every change can be inverted
// without consulting any external state.
//
// All positions and lengths are measured in Unicode code points, not bytes, so
// edits on multi-byte text stay meaningful.
//
// Tables are immutable values: no operation mutates its receiver, so any number
// of goroutines may hold and read snapshots of the same table concurrently
// without synchronization. There is no merge operation; two writers extending
// the same logical history must be serialized by the caller.
//
// One deliberate restriction: while undone changes are pending (that is, after
// an undo that has not been redone), new edits are rejected with
// [ErrUnappliedChanges] rather than discarding the redo branch. The log never
// branches; a new edit can only be made from the tip of the applied history.
//
// Note: To derive an edit log from two versions of a text, see
// [edlog.io/piecetable/differ].
//
// [edlog.io/piecetable/differ]: https://pkg.go.dev/edlog.io/piecetable/differ
package piecetable

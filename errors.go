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

import "errors"

var (
	// ErrInvalidOp indicates a change operation that is neither Insert nor Delete.
	ErrInvalidOp = errors.New("piecetable: invalid operation")

	// ErrInvalidPosition indicates a negative or out-of-bounds position.
	ErrInvalidPosition = errors.New("piecetable: position out of bounds")

	// ErrInvalidLength indicates a negative length or one that reaches past the end of the text.
	ErrInvalidLength = errors.New("piecetable: length out of bounds")

	// ErrUnappliedChanges indicates an attempted edit while undone changes are pending. The log
	// forbids branching history: redo or discard the pending changes before editing.
	ErrUnappliedChanges = errors.New("piecetable: undone changes pending")
)

// Must returns t if err is nil and panics otherwise. It allows chaining of fallible operations
// when failure can only be a programming error:
//
//	t := piecetable.Must(piecetable.New("my test").Insert("super ", 3))
func Must(t Table, err error) Table {
	if err != nil {
		panic(err)
	}
	return t
}

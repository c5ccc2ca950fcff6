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

// Package runeview provides an immutable code-point view over a string.
//
// All indices are code-point offsets, never byte offsets. Slicing through a view can therefore
// never split a multi-byte UTF-8 sequence.
package runeview

// View is an immutable sequence of code points decoded from a string.
type View struct {
	runes []rune
}

// From decodes s into a View.
func From(s string) View {
	return View{[]rune(s)}
}

// Len returns the number of code points in the view.
func (v View) Len() int { return len(v.runes) }

// String returns the text of the view.
func (v View) String() string { return string(v.runes) }

// Slice returns the text of the code points in [i, j).
//
// Slice panics if the range is out of bounds.
func (v View) Slice(i, j int) string {
	return string(v.runes[i:j])
}

// Insert returns a new view with s spliced in at code-point offset i. The receiver is unchanged.
//
// Insert panics if i is out of bounds.
func (v View) Insert(i int, s string) View {
	ins := []rune(s)
	out := make([]rune, 0, len(v.runes)+len(ins))
	out = append(out, v.runes[:i]...)
	out = append(out, ins...)
	out = append(out, v.runes[i:]...)
	return View{out}
}

// Delete returns a new view with the n code points starting at offset i removed. The receiver is
// unchanged.
//
// Delete panics if the range is out of bounds.
func (v View) Delete(i, n int) View {
	out := make([]rune, 0, len(v.runes)-n)
	out = append(out, v.runes[:i]...)
	out = append(out, v.runes[i+n:]...)
	return View{out}
}

// Split returns the code points of s as one string per code point.
func Split(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

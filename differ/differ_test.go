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

package differ_test

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"edlog.io/piecetable"
	"edlog.io/piecetable/differ"
	"github.com/google/go-cmp/cmp"
)

func TestStrings(t *testing.T) {
	tests := []struct {
		name             string
		original, target string
		opts             []piecetable.Option
		wantLog          []piecetable.Change
	}{
		{
			name:     "identical",
			original: "test",
			target:   "test",
			wantLog:  nil,
		},
		{
			name:     "both-empty",
			original: "",
			target:   "",
			wantLog:  nil,
		},
		{
			name:     "from-empty",
			original: "",
			target:   "test",
			wantLog: []piecetable.Change{
				{Op: piecetable.Insert, Text: "test", Pos: 0},
			},
		},
		{
			name:     "to-empty",
			original: "test",
			target:   "",
			wantLog: []piecetable.Change{
				{Op: piecetable.Delete, Text: "test", Pos: 0},
			},
		},
		{
			name:     "replace-in-middle",
			original: "test",
			target:   "text",
			wantLog: []piecetable.Change{
				{Op: piecetable.Insert, Text: "x", Pos: 2},
				{Op: piecetable.Delete, Text: "s", Pos: 2},
			},
		},
		{
			name:     "prefix",
			original: "my",
			target:   "my test",
			wantLog: []piecetable.Change{
				{Op: piecetable.Insert, Text: " test", Pos: 2},
			},
		},
		{
			name:     "suffix",
			original: "test",
			target:   "my test",
			wantLog: []piecetable.Change{
				{Op: piecetable.Insert, Text: "my ", Pos: 0},
			},
		},
		{
			name:     "disjoint",
			original: "abc",
			target:   "xyz",
			wantLog: []piecetable.Change{
				{Op: piecetable.Insert, Text: "xyz", Pos: 0},
				{Op: piecetable.Delete, Text: "abc", Pos: 0},
			},
		},
		{
			name:     "multibyte",
			original: "Hello, World",
			target:   "Hello, 世界",
			wantLog: []piecetable.Change{
				{Op: piecetable.Insert, Text: "世界", Pos: 7},
				{Op: piecetable.Delete, Text: "World", Pos: 7},
			},
		},
		{
			name:     "attribution",
			original: "test",
			target:   "text",
			opts:     []piecetable.Option{piecetable.Attribution("alice")},
			wantLog: []piecetable.Change{
				{Op: piecetable.Insert, Text: "x", Pos: 2, Attr: "alice"},
				{Op: piecetable.Delete, Text: "s", Pos: 2, Attr: "alice"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := differ.Strings(tt.original, tt.target, tt.opts...)
			if err != nil {
				t.Fatalf("Strings() failed: %v", err)
			}
			if got.Text() != tt.target {
				t.Errorf("Text() = %q, want %q", got.Text(), tt.target)
			}
			if got.Original() != tt.original {
				t.Errorf("Original() = %q, want %q", got.Original(), tt.original)
			}
			if diff := cmp.Diff(tt.wantLog, got.Applied()); diff != "" {
				t.Errorf("applied log is different [-want, +got]:\n%s", diff)
			}
		})
	}
}

func TestApply(t *testing.T) {
	// The diff extends the existing log rather than replacing it.
	pt := piecetable.Must(piecetable.New("my test").Insert("super ", 3))
	got, err := differ.Apply(pt, "my sober test")
	if err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	if got.Text() != "my sober test" {
		t.Errorf("Text() = %q, want %q", got.Text(), "my sober test")
	}
	if got.Original() != "my test" {
		t.Errorf("Original() = %q, want %q", got.Original(), "my test")
	}
	want := []piecetable.Change{
		{Op: piecetable.Insert, Text: "ob", Pos: 4},
		{Op: piecetable.Delete, Text: "up", Pos: 4},
		{Op: piecetable.Insert, Text: "super ", Pos: 3},
	}
	if diff := cmp.Diff(want, got.Applied()); diff != "" {
		t.Errorf("applied log is different [-want, +got]:\n%s", diff)
	}

	// Every diff-derived change undoes individually like a hand-made edit.
	for i := len(want); i > 0; i-- {
		next, ok := got.Undo()
		if !ok {
			t.Fatalf("Undo() hit the first state with %d change(s) left", i)
		}
		got = next
	}
	if got.Text() != "my test" {
		t.Errorf("Text() after undoing everything = %q, want %q", got.Text(), "my test")
	}
}

func TestApplyMidUndo(t *testing.T) {
	pt := piecetable.Must(piecetable.New("my test").Insert("super ", 3))
	pt, ok := pt.Undo()
	if !ok {
		t.Fatal("Undo() failed")
	}
	got, err := differ.Apply(pt, "anything")
	if !errors.Is(err, piecetable.ErrUnappliedChanges) {
		t.Fatalf("Apply() error = %v, want %v", err, piecetable.ErrUnappliedChanges)
	}
	if got.Text() != pt.Text() {
		t.Errorf("table changed on failure: Text() = %q, want %q", got.Text(), pt.Text())
	}
}

func TestGraphemes(t *testing.T) {
	// "é" as e + combining acute accent. A code-point diff against the precomposed form may
	// split the sequence; a grapheme diff treats it as one unit.
	original := "café"
	target := "cafés"
	got, err := differ.Strings(original, target, differ.Graphemes())
	if err != nil {
		t.Fatalf("Strings() failed: %v", err)
	}
	if got.Text() != target {
		t.Errorf("Text() = %q, want %q", got.Text(), target)
	}
	want := []piecetable.Change{
		{Op: piecetable.Insert, Text: "és", Pos: 3},
		{Op: piecetable.Delete, Text: "é", Pos: 3},
	}
	if diff := cmp.Diff(want, got.Applied()); diff != "" {
		t.Errorf("applied log is different [-want, +got]:\n%s", diff)
	}
}

func TestStringsRandom(t *testing.T) {
	const alphabet = "abcd世界\n"
	params := []struct {
		n, m int
	}{
		{0, 30},
		{30, 0},
		{30, 30},
		{200, 180},
	}
	for _, p := range params {
		name := fmt.Sprintf("n=%d_m=%d", p.n, p.m)
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
			runes := []rune(alphabet)
			randText := func(n int) string {
				out := make([]rune, n)
				for i := range out {
					out[i] = runes[rng.IntN(len(runes))]
				}
				return string(out)
			}
			for range 50 {
				x, y := randText(p.n), randText(p.m)
				got, err := differ.Strings(x, y)
				if err != nil {
					t.Fatalf("Strings(%q, %q) failed: %v", x, y, err)
				}
				if got.Text() != y {
					t.Fatalf("Strings(%q, %q).Text() = %q, want %q", x, y, got.Text(), y)
				}

				// The whole rewrite undoes back to the original.
				for {
					next, ok := got.Undo()
					if !ok {
						break
					}
					got = next
				}
				if got.Text() != x {
					t.Fatalf("undoing Strings(%q, %q) left %q", x, y, got.Text())
				}
			}
		})
	}
}

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

package edits

import (
	"testing"

	"edlog.io/piecetable/internal/myers"
	"edlog.io/piecetable/internal/runeview"
	"github.com/google/go-cmp/cmp"
)

func TestScript(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		want []Segment
	}{
		{
			name: "identical",
			x:    "abc",
			y:    "abc",
			want: []Segment{
				{Equal, "abc", 3},
			},
		},
		{
			name: "empty",
			x:    "",
			y:    "",
			want: nil,
		},
		{
			name: "insert-only",
			x:    "",
			y:    "abc",
			want: []Segment{
				{Insert, "abc", 3},
			},
		},
		{
			name: "delete-only",
			x:    "abc",
			y:    "",
			want: []Segment{
				{Delete, "abc", 3},
			},
		},
		{
			name: "replace-deletes-first",
			x:    "test",
			y:    "text",
			want: []Segment{
				{Equal, "te", 2},
				{Delete, "s", 1},
				{Insert, "x", 1},
				{Equal, "t", 1},
			},
		},
		{
			name: "multibyte-lengths",
			x:    "héllo",
			y:    "hello",
			want: []Segment{
				{Equal, "h", 1},
				{Delete, "é", 1},
				{Insert, "e", 1},
				{Equal, "llo", 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := runeview.Split(tt.x)
			y := runeview.Split(tt.y)
			rx, ry := myers.Diff(x, y)
			got := Script(x, y, rx, ry)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("script is different [-want, +got]:\n%s", diff)
			}
		})
	}
}

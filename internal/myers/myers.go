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

// Package myers implements Myers' shortest-edit-script algorithm.
//
// The implementation uses the linear space refinement described in section 4.2 of the paper: the
// middle section of an optimal path is found with simultaneous forward and backward searches for
// furthest reaching d-paths, then the algorithm recurses into the two remaining rectangles. The
// runtime is O(ND) where N is the sum of the input lengths and D is the number of differences. No
// cost-limiting heuristics are applied: the resulting edit script is always minimal, which the
// replay layer above this package depends on.
//
// A short outline of the algorithm: model all possible edits transforming x into y as a grid where
// a step right deletes an element of x, a step down inserts an element of y, and a free diagonal
// step consumes one matching element of each. A minimal edit script is a minimum-cost path from the
// top left to the bottom right corner. Let a d-path be a path with exactly d non-diagonal edges.
// The greedy search tracks, per diagonal k = s - t, the furthest reaching d-path, which by the
// paper's Lemma 2 can always be built from a furthest reaching (d-1)-path on a neighboring
// diagonal. Searching forward from the start and backward from the end simultaneously until the two
// frontiers overlap yields the middle of an optimal path using memory linear in the input size.
//
// Reference: Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266
// (1986). https://doi.org/10.1007/BF01840446
package myers

import "math"

// Diff compares the contents of x and y and returns result vectors describing a minimal edit
// script that transforms one into the other: rx[s] reports that x[s] is deleted and ry[t] that y[t]
// is inserted. Elements not marked in either vector match pairwise in order.
//
// Both result vectors carry one extra border element at the end to make iterating over runs of
// edits easier: len(rx) == len(x)+1 and len(ry) == len(y)+1.
func Diff[T comparable](x, y []T) (rx, ry []bool) {
	smin, tmin := 0, 0
	smax, tmax := len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	// Allocate result vectors, including the border elements.
	r := make([]bool, len(x)+len(y)+2)
	rx = r[: len(x)+1 : len(x)+1]
	ry = r[len(x)+1:]

	// Handle trivial cases without running the search.
	switch {
	case smin != smax && tmin == tmax:
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return rx, ry
	case smin == smax && tmin != tmax:
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return rx, ry
	case smin == smax && tmin == tmax:
		return rx, ry
	}

	var m myers[T]
	m.x, m.y = x, y
	m.rx, m.ry = rx, ry

	// The v-arrays need room for every diagonal of the stripped rectangle plus a border of one
	// element on each side that lets the k-loops treat the edges of the search space like any
	// other diagonal.
	diagonals := (smax - smin) + (tmax - tmin)
	vlen := 2*diagonals + 3
	buf := make([]int, 2*vlen)
	m.vf = buf[:vlen]
	m.vb = buf[vlen:]
	m.v0 = diagonals + 1

	m.compare(smin, smax, tmin, tmax)
	return rx, ry
}

type myers[T comparable] struct {
	// Inputs to compare.
	x, y []T

	// v-arrays for the forward and backward searches. A v-array stores the endpoint of the
	// furthest reaching d-path in diagonal k in v[v0+k], where v0 translates k in [-d, d] to a
	// non-negative index. Endpoints only store the s-coordinate since t = s - k.
	vf, vb []int
	v0     int

	// Result vectors.
	rx, ry []bool
}

// compare marks a minimal edit script from (smin, tmin) to (smax, tmax) in the result vectors.
func (m *myers[T]) compare(smin, smax, tmin, tmax int) {
	if smin == smax {
		// x is exhausted, everything in tmin to tmax is an insertion.
		for t := tmin; t < tmax; t++ {
			m.ry[t] = true
		}
	} else if tmin == tmax {
		// y is exhausted, everything in smin to smax is a deletion.
		for s := smin; s < smax; s++ {
			m.rx[s] = true
		}
	} else {
		// Split the rectangle at a sequence of diagonals in the middle of an optimal path and
		// recurse into the two remaining rectangles. The middle diagonals themselves are matches
		// and stay unmarked.
		s0, s1, t0, t1 := m.split(smin, smax, tmin, tmax)
		m.compare(smin, s0, tmin, t0)
		m.compare(s1, smax, t1, tmax)
	}
}

// split finds the endpoints (s0, t0) to (s1, t1) of a, possibly empty, sequence of diagonals in the
// middle of an optimal path from (smin, tmin) to (smax, tmax).
//
// Important: x[smin:smax] and y[tmin:tmax] must not have a common prefix or a common suffix and
// they may not both be empty.
func (m *myers[T]) split(smin, smax, tmin, tmax int) (s0, s1, t0, t1 int) {
	x, y := m.x, m.y
	vf, vb := m.vf, m.vb
	v0 := m.v0

	// Bounds for k. Since t = s - k, the min and max follow from k = s - t.
	kmin, kmax := smin-tmax, smax-tmin

	// Number all diagonals consistently by centering the forward and backward searches around
	// different midpoints. That way k never needs to be translated when checking for overlap.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// From the paper's Corollary 1, d-paths end on odd diagonals exactly when the total length
	// difference is odd. This decides which of the two searches checks for overlap.
	odd := ((smax-smin)-(tmax-tmin))%2 != 0

	// There is no common prefix or suffix, so there is no 0-path and the d=0 iteration would only
	// produce these trivial endpoints. Seeding them directly lets the loop start at d=1 without
	// special cases.
	vf[v0+fmid] = smin
	vb[v0+bmid] = smax
	for d := 1; ; d++ {
		// Forward search for a furthest reaching d-path on each diagonal k. Keeping fmin and fmax
		// inside [kmin, kmax] avoids leaving the edit grid; the border elements of the v-array are
		// initialized such that the selection below never picks a path from outside the grid.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0

			// Lemma 2: the furthest reaching d-path on diagonal k extends the better of the
			// furthest reaching (d-1)-paths on diagonals k-1 and k+1. Ties prefer the horizontal
			// edge, i.e. deletions are emitted before insertions.
			var s int
			if vf[k0-1] < vf[k0+1] {
				s = vf[k0+1]
			} else {
				s = vf[k0-1] + 1
			}
			t := s - k

			// Follow the diagonals as far as possible.
			ms, mt := s, t
			for s < smax && t < tmax && x[s] == y[t] {
				s++
				t++
			}
			vf[k0] = s

			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return ms, s, mt, t
			}
		}

		// Backward search, the mirror image of the forward search.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			ms, mt := s, t
			for s > smin && t > tmin && x[s-1] == y[t-1] {
				s--
				t--
			}
			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[k0] {
				return s, ms, t, mt
			}
		}
	}
}

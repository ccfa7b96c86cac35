/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package segment partitions input text into a minimum-total-bit sequence
// of mode segments via dynamic programming, grounded on the reference
// Python optimizer's (position, mode, unfilled-group-slot) recurrence.
package segment

import (
	"errors"
	"fmt"

	"github.com/go-rmqr/rmqrcode/mode"
	"github.com/go-rmqr/rmqrcode/version"
)

// MaxLength is the longest input the optimizer will partition. It is one
// short of the most characters an rMQR symbol at level M can carry: 361
// numeric digits fit R17x139.
const MaxLength = 360

// ErrTooLong is returned when the input exceeds MaxLength characters.
var ErrTooLong = errors.New("segment: input exceeds 360 characters")

// Segment is a contiguous run of text encoded in a single mode.
type Segment struct {
	Mode mode.Mode
	Text string
}

// modes is the fixed enumeration order used to break DP ties: Numeric,
// Alphanumeric, Byte, Kanji.
var modes = [4]mode.Mode{mode.Numeric, mode.Alphanumeric, mode.Byte, mode.Kanji}

// groupSlots is the number of distinct "unfilled group" states each mode
// cycles through: 3 for Numeric, 2 for Alphanumeric, 1 (always 0) for Byte
// and Kanji.
var groupSlots = [4]int{3, 2, 1, 1}

func modeIndex(m mode.Mode) int {
	for i, candidate := range modes {
		if candidate == m {
			return i
		}
	}
	panic("segment: unknown mode")
}

// validModes returns the modes character r may be encoded in, enumeration
// order preserved.
func validModes(r rune) []mode.Mode {
	var out []mode.Mode
	s := string(r)
	if mode.IsNumeric(s) {
		out = append(out, mode.Numeric)
	}
	if mode.IsAlphanumeric(s) {
		out = append(out, mode.Alphanumeric)
	}
	out = append(out, mode.Byte)
	if mode.IsKanji(r) {
		out = append(out, mode.Kanji)
	}
	return out
}

const infinity = 1 << 30

type cell struct {
	cost     int
	prevMode int // index into modes, -1 at the root
	prevU    int
}

// Optimize partitions data into the minimum-total-bit sequence of
// segments for the given version, returning the segments and their total
// encoded length in bits (including every mode indicator and character-
// count indicator, but not the terminator).
func Optimize(data string, desc version.Descriptor) ([]Segment, int, error) {
	runes := []rune(data)
	n := len(runes)
	if n > MaxLength {
		return nil, 0, fmt.Errorf("%w (got %d)", ErrTooLong, n)
	}
	if n == 0 {
		return nil, 0, nil
	}

	cciWidth := func(mi int) int { return modes[mi].CharCountBits(desc) }

	// dp[i][mi][u] is the minimum cost of a path that has consumed the
	// first i characters and currently sits in modes[mi] with group-slot
	// u. dp[0][mi][0] is the cost of a not-yet-used header for modes[mi].
	dp := make([][4][3]int, n+1)
	parent := make([][4][3]cell, n+1)
	for i := range dp {
		for mi := range dp[i] {
			for u := range dp[i][mi] {
				dp[i][mi][u] = infinity
			}
		}
	}
	for mi := range modes {
		dp[0][mi][0] = mode.Length(modes[mi], 0, cciWidth(mi))
		parent[0][mi][0] = cell{prevMode: -1, prevU: -1}
	}

	for i := 0; i < n; i++ {
		candidates := validModes(runes[i])
		for mi := range modes {
			for u := 0; u < groupSlots[mi]; u++ {
				base := dp[i][mi][u]
				if base >= infinity {
					continue
				}
				for _, next := range candidates {
					ni := modeIndex(next)
					var cost, newU int
					if ni == mi {
						switch next {
						case mode.Numeric:
							if u == 0 {
								cost = 4
							} else {
								cost = 3
							}
							newU = (u + 1) % 3
						case mode.Alphanumeric:
							if u == 0 {
								cost = 6
							} else {
								cost = 5
							}
							newU = (u + 1) % 2
						case mode.Byte:
							cost, newU = 8, 0
						case mode.Kanji:
							cost, newU = 13, 0
						}
					} else {
						cost = mode.Length(next, 1, cciWidth(ni))
						if next == mode.Numeric || next == mode.Alphanumeric {
							newU = 1
						} else {
							newU = 0
						}
					}

					total := base + cost
					if total < dp[i+1][ni][newU] {
						dp[i+1][ni][newU] = total
						parent[i+1][ni][newU] = cell{cost: total, prevMode: mi, prevU: u}
					}
				}
			}
		}
	}

	bestMi, bestU, bestCost := -1, -1, infinity
	for mi := range modes {
		for u := 0; u < groupSlots[mi]; u++ {
			if dp[n][mi][u] < bestCost {
				bestCost = dp[n][mi][u]
				bestMi, bestU = mi, u
			}
		}
	}

	charMode := make([]int, n)
	mi, u, i := bestMi, bestU, n
	for i > 0 {
		charMode[i-1] = mi
		p := parent[i][mi][u]
		mi, u = p.prevMode, p.prevU
		i--
	}

	var segments []Segment
	start := 0
	for i := 1; i <= n; i++ {
		if i == n || charMode[i] != charMode[start] {
			segments = append(segments, Segment{
				Mode: modes[charMode[start]],
				Text: string(runes[start:i]),
			})
			start = i
		}
	}

	return segments, bestCost, nil
}

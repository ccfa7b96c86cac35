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

package rmqrcode

import (
	"github.com/go-rmqr/rmqrcode/segment"
	"github.com/go-rmqr/rmqrcode/version"
)

// FitStrategy picks which of several capacity-satisfying versions to
// prefer when Fit has more than one candidate.
type FitStrategy int

const (
	// MinimizeWidth prefers the narrowest version.
	MinimizeWidth FitStrategy = iota
	// MinimizeHeight prefers the shortest version.
	MinimizeHeight
	// Balanced prefers the version minimizing height*9 + width.
	Balanced
)

func (s FitStrategy) key(d version.Descriptor) int {
	switch s {
	case MinimizeWidth:
		return d.Width
	case MinimizeHeight:
		return d.Height
	default:
		return d.Height*9 + d.Width
	}
}

// Fit chooses the smallest version (by strategy) able to carry data at
// the given ECC level, builds its segments, and returns a completed
// Symbol. It fails with DataTooLong if no version fits.
func Fit(data string, ecc version.ECC, strategy FitStrategy, opts ...Option) (*Symbol, error) {
	type candidate struct {
		desc     version.Descriptor
		segments []segment.Segment
	}

	var candidates []candidate
	seenWidth := map[int]bool{}
	seenHeight := map[int]bool{}

	for _, desc := range version.All {
		segs, bits, err := segment.Optimize(data, desc)
		if err != nil {
			return nil, wrapError(DataTooLong, "segment optimizer", err)
		}
		if bits > desc.DataCapacity(ecc) {
			continue
		}
		if seenWidth[desc.Width] || seenHeight[desc.Height] {
			continue
		}
		seenWidth[desc.Width] = true
		seenHeight[desc.Height] = true
		candidates = append(candidates, candidate{desc: desc, segments: segs})
	}

	if len(candidates) == 0 {
		return nil, newError(DataTooLong, "no version can carry this payload at the requested ECC level")
	}

	best := candidates[0]
	bestKey := strategy.key(best.desc)
	for _, c := range candidates[1:] {
		if k := strategy.key(c.desc); k < bestKey {
			best, bestKey = c, k
		}
	}

	s, err := New(best.desc.Name, ecc, opts...)
	if err != nil {
		return nil, err
	}
	for _, seg := range best.segments {
		if err := s.AppendSegment(seg.Mode, seg.Text); err != nil {
			return nil, err
		}
	}
	if err := s.Make(); err != nil {
		return nil, err
	}
	return s, nil
}

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
	"github.com/go-rmqr/rmqrcode/bch"
	"github.com/go-rmqr/rmqrcode/version"
)

// drawFinderPattern draws the top-left 7x7 finder (a dark ring around a
// dark 3x3 core, light between) plus its light separator.
func (m *Matrix) drawFinderPattern() {
	for y := 0; y < 7; y++ {
		for x := 0; x < 7; x++ {
			dark := y == 0 || y == 6 || x == 0 || x == 6 || (y >= 2 && y <= 4 && x >= 2 && x <= 4)
			m.setFunction(x, y, darkIf(dark))
		}
	}

	last := 7
	if m.height-1 < last {
		last = m.height - 1
	}
	for y := 0; y <= last; y++ {
		m.setFunction(7, y, Light)
	}
	if m.height >= 9 {
		for x := 0; x <= 7; x++ {
			m.setFunction(x, 7, Light)
		}
	}
}

// drawFinderSubPattern draws the bottom-right 5x5 finder sub pattern: a
// dark ring around a single dark center module.
func (m *Matrix) drawFinderSubPattern() {
	y0, x0 := m.height-5, m.width-5
	for dy := 0; dy < 5; dy++ {
		for dx := 0; dx < 5; dx++ {
			dark := dy == 0 || dy == 4 || dx == 0 || dx == 4 || (dy == 2 && dx == 2)
			m.setFunction(x0+dx, y0+dy, darkIf(dark))
		}
	}
}

// drawCornerFinderPatterns draws the small dark/light marks in the
// bottom-left and top-right corners that let a reader disambiguate
// orientation.
func (m *Matrix) drawCornerFinderPatterns() {
	m.setFunction(0, m.height-1, Dark)
	m.setFunction(1, m.height-1, Dark)
	m.setFunction(2, m.height-1, Dark)
	if m.height >= 11 {
		m.setFunction(0, m.height-2, Dark)
		m.setFunction(1, m.height-2, Light)
	}

	m.setFunction(m.width-1, 0, Dark)
	m.setFunction(m.width-2, 0, Dark)
	m.setFunction(m.width-1, 1, Dark)
	m.setFunction(m.width-2, 1, Light)
}

// drawAlignmentPatterns draws a 3x3 dark-corners/dark-center/light-edges
// pattern at each alignment center column, once at row 1 and once at row
// height-2.
func (m *Matrix) drawAlignmentPatterns(desc version.Descriptor) {
	centers := version.AlignmentCoordinates(desc.Width)
	rows := [2]int{1, desc.Height - 2}

	for _, xc := range centers {
		for _, yc := range rows {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					dark := dx == 0 && dy == 0 || (dx != 0 && dy != 0)
					m.setFunction(xc+dx, yc+dy, darkIf(dark))
				}
			}
		}
	}
}

// drawTimingPatterns fills every still-undefined cell of the border rows
// and the vertical timing columns (the outer edges plus each alignment
// center column) with the alternating dark/light timing sequence.
func (m *Matrix) drawTimingPatterns(desc version.Descriptor) {
	for x := 0; x < m.width; x++ {
		if m.At(x, 0) == Undefined {
			m.setFunction(x, 0, darkIf((x+1)%2 == 1))
		}
		if m.At(x, m.height-1) == Undefined {
			m.setFunction(x, m.height-1, darkIf((x+1)%2 == 1))
		}
	}

	cols := append([]int{0, m.width - 1}, version.AlignmentCoordinates(desc.Width)...)
	for _, x := range cols {
		for y := 0; y < m.height; y++ {
			if m.At(x, y) == Undefined {
				m.setFunction(x, y, darkIf((y+1)%2 == 1))
			}
		}
	}
}

// drawFormatInformation computes the 18-bit BCH codeword for (version,
// ecc) and writes its two masked copies, one beside the finder pattern
// and one beside the finder sub pattern.
func (m *Matrix) drawFormatInformation(desc version.Descriptor, ecc version.ECC) {
	format := desc.VersionIndicator | ecc.FormatBit()<<6
	codeword := bch.Encode(format)

	finderBits := codeword ^ finderFormatMask
	for n := 0; n < 18; n++ {
		row := 1 + n%5
		col := 8 + n/5
		m.setFunction(col, row, darkIf((finderBits>>n)&1 == 1))
	}

	subBits := codeword ^ subFormatMask
	for n := 0; n < 15; n++ {
		row := desc.Height - 6 + n%5
		col := desc.Width - 8 + n/5
		m.setFunction(col, row, darkIf((subBits>>n)&1 == 1))
	}
	tailCols := [3]int{desc.Width - 5, desc.Width - 4, desc.Width - 3}
	for i, n := 0, 15; n < 18; n, i = n+1, i+1 {
		m.setFunction(tailCols[i], desc.Height-6, darkIf((subBits>>n)&1 == 1))
	}
}

// drawCodewords walks the zigzag data path from the bottom-right of the
// symbol, placing each codeword's bits MSB-first into every still-
// undefined cell, then remainderBits light modules to exhaust any
// leftover capacity, marking every placed cell as mask-eligible.
func (m *Matrix) drawCodewords(codewords []byte, remainderBits int) {
	total := len(codewords)*8 + remainderBits
	placed := 0
	cy, cx := m.height-6, m.width-2
	dy := -1

	for placed < total {
		for _, x := range [2]int{cx, cx - 1} {
			if placed >= total {
				break
			}
			if m.At(x, cy) != Undefined {
				continue
			}

			var dark bool
			if placed < len(codewords)*8 {
				b := codewords[placed/8]
				dark = (b>>(7-placed%8))&1 == 1
			}
			m.setData(x, cy, darkIf(dark))
			placed++
		}

		switch {
		case dy == -1 && cy == 1:
			cx -= 2
			dy = 1
		case dy == 1 && cy == m.height-2:
			cx -= 2
			dy = -1
		default:
			cy += dy
		}
	}
}

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
 *
 * Version geometry reproduced from ISO/IEC 23941:2022 (rMQR), by way of
 * OUDON/rmqrcode-python's rmqr_versions.py and data_capacities.py tables.
 */

// Package version holds the 32 legal rMQR (version, width, height) triples
// and their associated per-version constants: the version indicator used
// in the format information, block plans, character-count-indicator
// widths, remainder bits, and alignment pattern coordinates.
package version

// ECC is the error correction level of an rMQR symbol. rMQR defines only
// two levels, M and H; unlike regular QR there is no L or Q.
type ECC int

const (
	M ECC = iota
	H
)

// FormatBit is the single-bit ECC-level flag folded into the 6-bit format
// information value (bit 6, set for level H).
func (e ECC) FormatBit() int {
	if e == H {
		return 1
	}
	return 0
}

// BlockSpec is one entry of a version's block plan: num contiguous blocks,
// each with c total codewords of which k are data (c-k are ECC).
type BlockSpec struct {
	Num int
	C   int
	K   int
}

// CCIWidths holds the character-count-indicator bit width for each mode at
// a given version.
type CCIWidths struct {
	Numeric      int
	Alphanumeric int
	Byte         int
	Kanji        int
}

// Descriptor describes one legal rMQR version.
type Descriptor struct {
	Name             string
	VersionIndicator int
	Width            int
	Height           int
	RemainderBits    int
	CodewordsTotal   int
	CCI              CCIWidths
	Blocks           map[ECC][]BlockSpec
	DataBits         map[ECC]int
}

// DataCapacity returns the data-bit capacity for the given ECC level: the
// number of codewords carrying data (not ECC) across every block, times 8.
func (d Descriptor) DataCapacity(ecc ECC) int {
	return d.DataBits[ecc]
}

// alignmentCoordinates lists the column center(s) of the alignment
// patterns for a given symbol width; the same columns are used for both
// the top and bottom copy of the pattern. Per ISO/IEC 23941:2022 Annex E.
var alignmentCoordinates = map[int][]int{
	27:  {},
	43:  {21},
	59:  {19, 39},
	77:  {25, 51},
	99:  {23, 51, 79},
	139: {27, 55, 83, 111},
}

// AlignmentCoordinates returns the alignment pattern center columns for the
// given symbol width.
func AlignmentCoordinates(width int) []int {
	return alignmentCoordinates[width]
}

// All is every legal rMQR version, in version-indicator order (0..31):
// height 7, 9, 11, 13, 15, 17 outermost, width ascending within each
// height, skipping the (height, width) combinations ISO/IEC 23941 does not
// define.
var All = buildVersions()

// byName indexes All by version name ("R7x43", ...).
var byName = func() map[string]Descriptor {
	m := make(map[string]Descriptor, len(All))
	for _, d := range All {
		m[d.Name] = d
	}
	return m
}()

// ByName looks up a version descriptor by its name, e.g. "R13x99". The
// second return value is false if the name is not a legal rMQR version.
func ByName(name string) (Descriptor, bool) {
	d, ok := byName[name]
	return d, ok
}

func buildVersions() []Descriptor {
	type raw struct {
		height, width, remainder, codewordsTotal int
		cci                                      CCIWidths
		blocksM, blocksH                         []BlockSpec
		dataBitsM, dataBitsH                     int
	}

	rows := []raw{
		{7, 43, 0, 13, CCIWidths{4, 3, 3, 2},
			[]BlockSpec{{1, 13, 6}}, []BlockSpec{{1, 13, 3}}, 48, 24},
		{7, 59, 3, 21, CCIWidths{5, 5, 4, 3},
			[]BlockSpec{{1, 21, 12}}, []BlockSpec{{1, 21, 7}}, 96, 56},
		{7, 77, 5, 32, CCIWidths{6, 5, 5, 4},
			[]BlockSpec{{1, 32, 20}}, []BlockSpec{{1, 32, 10}}, 160, 80},
		{7, 99, 6, 44, CCIWidths{7, 6, 5, 5},
			[]BlockSpec{{1, 44, 28}}, []BlockSpec{{1, 44, 14}}, 224, 112},
		{7, 139, 1, 68, CCIWidths{7, 6, 6, 5},
			[]BlockSpec{{1, 68, 44}}, []BlockSpec{{2, 34, 12}}, 352, 192},

		{9, 43, 2, 21, CCIWidths{5, 5, 4, 3},
			[]BlockSpec{{1, 21, 12}}, []BlockSpec{{1, 21, 7}}, 96, 56},
		{9, 59, 3, 33, CCIWidths{6, 5, 5, 4},
			[]BlockSpec{{1, 33, 21}}, []BlockSpec{{1, 33, 11}}, 168, 88},
		{9, 77, 1, 49, CCIWidths{7, 6, 5, 5},
			[]BlockSpec{{1, 49, 31}}, []BlockSpec{{1, 24, 8}, {1, 25, 9}}, 248, 136},
		{9, 99, 4, 66, CCIWidths{7, 6, 6, 5},
			[]BlockSpec{{1, 66, 42}}, []BlockSpec{{2, 33, 11}}, 336, 176},
		{9, 139, 5, 99, CCIWidths{8, 7, 6, 6},
			[]BlockSpec{{1, 49, 31}, {1, 50, 32}}, []BlockSpec{{3, 33, 11}}, 504, 264},

		{11, 27, 2, 15, CCIWidths{4, 4, 3, 2},
			[]BlockSpec{{1, 15, 7}}, []BlockSpec{{1, 15, 5}}, 56, 40},
		{11, 43, 1, 31, CCIWidths{6, 5, 5, 4},
			[]BlockSpec{{1, 31, 19}}, []BlockSpec{{1, 31, 11}}, 152, 88},
		{11, 59, 0, 47, CCIWidths{7, 6, 5, 5},
			[]BlockSpec{{1, 47, 31}}, []BlockSpec{{1, 23, 7}, {1, 24, 8}}, 248, 120},
		{11, 77, 2, 67, CCIWidths{7, 6, 6, 5},
			[]BlockSpec{{1, 67, 43}}, []BlockSpec{{1, 33, 11}, {1, 34, 12}}, 344, 184},
		{11, 99, 7, 89, CCIWidths{8, 7, 6, 6},
			[]BlockSpec{{1, 44, 28}, {1, 45, 29}}, []BlockSpec{{1, 44, 14}, {1, 45, 15}}, 456, 232},
		{11, 139, 6, 132, CCIWidths{8, 7, 7, 6},
			[]BlockSpec{{2, 66, 42}}, []BlockSpec{{3, 44, 14}}, 672, 336},

		{13, 27, 4, 21, CCIWidths{5, 5, 4, 3},
			[]BlockSpec{{1, 21, 14}}, []BlockSpec{{1, 21, 7}}, 112, 56},
		{13, 43, 1, 41, CCIWidths{6, 6, 5, 5},
			[]BlockSpec{{1, 41, 27}}, []BlockSpec{{1, 41, 13}}, 216, 104},
		{13, 59, 6, 60, CCIWidths{7, 6, 6, 5},
			[]BlockSpec{{1, 60, 38}}, []BlockSpec{{2, 30, 10}}, 304, 160},
		{13, 77, 4, 85, CCIWidths{7, 7, 6, 6},
			[]BlockSpec{{1, 42, 26}, {1, 43, 27}}, []BlockSpec{{1, 42, 14}, {1, 43, 15}}, 424, 232},
		{13, 99, 3, 113, CCIWidths{8, 7, 7, 6},
			[]BlockSpec{{1, 56, 36}, {1, 57, 37}}, []BlockSpec{{1, 37, 11}, {2, 38, 12}}, 584, 280},
		{13, 139, 0, 166, CCIWidths{8, 8, 7, 7},
			[]BlockSpec{{2, 55, 35}, {1, 56, 36}}, []BlockSpec{{2, 41, 13}, {2, 42, 14}}, 848, 432},

		{15, 43, 1, 51, CCIWidths{7, 6, 6, 5},
			[]BlockSpec{{1, 51, 33}}, []BlockSpec{{1, 25, 7}, {1, 26, 8}}, 264, 120},
		{15, 59, 4, 74, CCIWidths{7, 7, 6, 5},
			[]BlockSpec{{1, 74, 48}}, []BlockSpec{{2, 37, 13}}, 384, 208},
		{15, 77, 6, 103, CCIWidths{8, 7, 7, 6},
			[]BlockSpec{{1, 51, 33}, {1, 52, 34}}, []BlockSpec{{2, 34, 10}, {1, 35, 11}}, 536, 248},
		{15, 99, 7, 136, CCIWidths{8, 7, 7, 6},
			[]BlockSpec{{2, 68, 44}}, []BlockSpec{{4, 34, 12}}, 704, 384},
		{15, 139, 2, 199, CCIWidths{9, 8, 7, 7},
			[]BlockSpec{{2, 66, 42}, {1, 67, 43}}, []BlockSpec{{1, 39, 13}, {4, 40, 14}}, 1016, 552},

		{17, 43, 1, 61, CCIWidths{7, 6, 6, 5},
			[]BlockSpec{{1, 61, 39}}, []BlockSpec{{1, 30, 10}, {1, 31, 11}}, 312, 168},
		{17, 59, 2, 88, CCIWidths{8, 7, 6, 6},
			[]BlockSpec{{2, 44, 28}}, []BlockSpec{{2, 44, 14}}, 448, 224},
		{17, 77, 0, 122, CCIWidths{8, 7, 7, 6},
			[]BlockSpec{{2, 61, 39}}, []BlockSpec{{1, 40, 12}, {2, 41, 13}}, 624, 304},
		{17, 99, 3, 160, CCIWidths{8, 8, 7, 6},
			[]BlockSpec{{2, 53, 33}, {1, 54, 34}}, []BlockSpec{{4, 40, 14}}, 800, 448},
		{17, 139, 4, 232, CCIWidths{9, 8, 8, 7},
			[]BlockSpec{{4, 58, 38}}, []BlockSpec{{2, 38, 12}, {4, 39, 13}}, 1216, 608},
	}

	descriptors := make([]Descriptor, len(rows))
	for i, r := range rows {
		descriptors[i] = Descriptor{
			Name:             formatName(r.height, r.width),
			VersionIndicator: i,
			Width:            r.width,
			Height:           r.height,
			RemainderBits:    r.remainder,
			CodewordsTotal:   r.codewordsTotal,
			CCI:              r.cci,
			Blocks: map[ECC][]BlockSpec{
				M: r.blocksM,
				H: r.blocksH,
			},
			DataBits: map[ECC]int{
				M: r.dataBitsM,
				H: r.dataBitsH,
			},
		}
	}
	return descriptors
}

func formatName(height, width int) string {
	return "R" + itoa(height) + "x" + itoa(width)
}

// itoa avoids importing strconv for a handful of small positive integers.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

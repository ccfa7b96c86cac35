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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-rmqr/rmqrcode/internal/bitbuf"
	"github.com/go-rmqr/rmqrcode/mode"
	"github.com/go-rmqr/rmqrcode/segment"
	"github.com/go-rmqr/rmqrcode/version"
)

// TestEncodeCodewordsAccounting checks the §3 invariants directly: total
// codewords after interleaving equal codewords_total, and the ECC length
// matches codewords_total minus the chosen ECC level's data-codeword count.
func TestEncodeCodewordsAccounting(t *testing.T) {
	desc, ok := version.ByName("R13x99")
	require.True(t, ok)

	for _, ecc := range []version.ECC{version.M, version.H} {
		segs := []segment.Segment{{Mode: mode.Byte, Text: "abcdef"}}
		codewords, err := encodeCodewords(segs, desc, ecc)
		require.NoError(t, err)

		assert.Equal(t, desc.CodewordsTotal, len(codewords), "interleaved codeword count must equal codewords_total for ecc=%d", ecc)

		sumK, sumC := 0, 0
		for _, b := range desc.Blocks[ecc] {
			sumK += b.Num * b.K
			sumC += b.Num * b.C
		}
		assert.Equal(t, desc.CodewordsTotal, sumC, "sum of c across blocks must equal codewords_total")
		assert.Equal(t, desc.CodewordsTotal-sumK, sumC-sumK, "total ECC codewords must equal codewords_total - sum(k)")
	}
}

// TestPadCodewordsFillsToCodewordsTotal exercises the pad helper directly:
// regardless of how many data+terminator bytes precede it, the padded
// array always reaches exactly total bytes, alternating the two pad words.
func TestPadCodewordsFillsToCodewordsTotal(t *testing.T) {
	out := padCodewords([]byte{0x01, 0x02}, 6)
	require.Len(t, out, 6)
	assert.Equal(t, []byte{0x01, 0x02, padCodewordA, padCodewordB, padCodewordA, padCodewordB}, out)
}

func TestAddTerminatorAndPadOmitsPartialTerminator(t *testing.T) {
	for _, remaining := range []int{1, 2} {
		var bb bitbuf.Buffer
		bb.AppendBits(0, 16-remaining)

		out, err := addTerminatorAndPad(bb, 16)
		require.NoError(t, err)
		assert.Equal(t, 16, out.Len(), "padding to a byte boundary must not add a partial terminator when remaining=%d", remaining)
	}
}

func TestAddTerminatorAndPadAppendsFullTerminatorWhenThreeBitsFit(t *testing.T) {
	var bb bitbuf.Buffer
	bb.AppendBits(0b1, 1)

	out, err := addTerminatorAndPad(bb, 16)
	require.NoError(t, err)
	assert.Equal(t, 8, out.Len())
	assert.Equal(t, bitbuf.Buffer{1, 0, 0, 0, 0, 0, 0, 0}, out)
}

func TestSplitIntoBlocksOnlyConsumesDataCodewordsFromTheFront(t *testing.T) {
	desc, ok := version.ByName("R13x99")
	require.True(t, ok)

	padded := padCodewords([]byte{0xAA}, desc.CodewordsTotal)
	dataBlocks, eccBlocks := splitIntoBlocks(padded, desc.Blocks[version.M])

	totalK := 0
	for _, b := range dataBlocks {
		totalK += len(b)
	}
	assert.Equal(t, 73, totalK)
	assert.Len(t, eccBlocks, len(dataBlocks))
}

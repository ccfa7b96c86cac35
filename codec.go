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
	"fmt"

	"github.com/go-rmqr/rmqrcode/gf256"
	"github.com/go-rmqr/rmqrcode/internal/bitbuf"
	"github.com/go-rmqr/rmqrcode/mode"
	"github.com/go-rmqr/rmqrcode/segment"
	"github.com/go-rmqr/rmqrcode/version"
)

// padCodewordA and padCodewordB are alternated to fill codewords_total
// once the data and terminator bits have been packed.
const (
	padCodewordA byte = 0b1110_1100
	padCodewordB byte = 0b0001_0001
)

// encodeBitstream concatenates the bit-level encoding of every segment:
// mode indicator, character-count indicator, then payload.
func encodeBitstream(segs []segment.Segment, desc version.Descriptor) (bitbuf.Buffer, error) {
	var bb bitbuf.Buffer
	for _, seg := range segs {
		cci := seg.Mode.CharCountBits(desc)

		var payload bitbuf.Buffer
		var charCount int
		var err error
		switch seg.Mode {
		case mode.Numeric:
			payload = mode.EncodeNumeric(seg.Text)
			charCount = len([]rune(seg.Text))
		case mode.Alphanumeric:
			payload = mode.EncodeAlphanumeric(seg.Text)
			charCount = len([]rune(seg.Text))
		case mode.Byte:
			raw := []byte(seg.Text)
			payload = mode.EncodeBytes(raw)
			charCount = len(raw)
		case mode.Kanji:
			payload, err = mode.EncodeKanji(seg.Text)
			if err != nil {
				return nil, wrapError(IllegalCharacter, "kanji segment", err)
			}
			charCount, err = mode.KanjiCharCount(seg.Text)
			if err != nil {
				return nil, wrapError(IllegalCharacter, "kanji segment", err)
			}
		}

		if charCount >= 1<<cci {
			return nil, newError(DataTooLong, fmt.Sprintf("segment of %d characters does not fit a %d-bit character count indicator", charCount, cci))
		}

		bb.AppendBits(uint32(seg.Mode.Indicator()), 3)
		bb.AppendBits(uint32(charCount), cci)
		bb.AppendBuffer(payload)
	}
	return bb, nil
}

// addTerminatorAndPad appends the terminator (three 0 bits if they fit,
// otherwise none) and right-pads the final codeword with 0 bits, failing if
// the data does not fit capacityBits.
func addTerminatorAndPad(bb bitbuf.Buffer, capacityBits int) (bitbuf.Buffer, error) {
	if bb.Len() > capacityBits {
		return nil, newError(DataTooLong, fmt.Sprintf("encoded length %d bits exceeds capacity %d bits", bb.Len(), capacityBits))
	}

	if capacityBits-bb.Len() >= 3 {
		bb.AppendBits(0, 3)
	}

	if pad := (8 - bb.Len()%8) % 8; pad > 0 {
		bb.AppendBits(0, pad)
	}

	if bb.Len() > capacityBits {
		return nil, newError(DataTooLong, fmt.Sprintf("encoded length %d bits exceeds capacity %d bits", bb.Len(), capacityBits))
	}

	return bb, nil
}

// padCodewords appends alternating pad codewords until data holds
// exactly total codewords.
func padCodewords(data []byte, total int) []byte {
	out := make([]byte, len(data), total)
	copy(out, data)
	next := padCodewordA
	for len(out) < total {
		out = append(out, next)
		if next == padCodewordA {
			next = padCodewordB
		} else {
			next = padCodewordA
		}
	}
	return out
}

// splitIntoBlocks walks the block plan left to right, carving num
// contiguous blocks of k data codewords from data for each (num, c, k)
// triple, and computes the c-k Reed-Solomon ECC codewords for each block.
func splitIntoBlocks(data []byte, blocks []version.BlockSpec) (dataBlocks, eccBlocks [][]byte) {
	pos := 0
	for _, spec := range blocks {
		n := spec.C - spec.K
		g := gf256.GeneratorPolynomial(n)
		for i := 0; i < spec.Num; i++ {
			block := data[pos : pos+spec.K]
			pos += spec.K
			dataBlocks = append(dataBlocks, block)
			eccBlocks = append(eccBlocks, gf256.ComputeRemainder(block, g, n))
		}
	}
	return dataBlocks, eccBlocks
}

// interleave emits data codewords column-by-column across blocks, then
// ECC codewords the same way: for i = 0, 1, 2, ..., for each block in
// order, append its i-th element if it has one.
func interleave(dataBlocks, eccBlocks [][]byte) []byte {
	var out []byte
	out = appendColumns(out, dataBlocks)
	out = appendColumns(out, eccBlocks)
	return out
}

func appendColumns(out []byte, blocks [][]byte) []byte {
	maxLen := 0
	for _, b := range blocks {
		if len(b) > maxLen {
			maxLen = len(b)
		}
	}
	for i := 0; i < maxLen; i++ {
		for _, b := range blocks {
			if i < len(b) {
				out = append(out, b[i])
			}
		}
	}
	return out
}

// encodeCodewords runs the full codec pipeline: segment encoding,
// terminator, padding, block split, ECC, and interleave. It returns the
// final codeword sequence ready for zigzag placement.
func encodeCodewords(segs []segment.Segment, desc version.Descriptor, ecc version.ECC) ([]byte, error) {
	bb, err := encodeBitstream(segs, desc)
	if err != nil {
		return nil, err
	}

	capacityBits := desc.DataCapacity(ecc)
	bb, err = addTerminatorAndPad(bb, capacityBits)
	if err != nil {
		return nil, err
	}

	data := padCodewords(bb.Pack(), desc.CodewordsTotal)

	dataBlocks, eccBlocks := splitIntoBlocks(data, desc.Blocks[ecc])
	return interleave(dataBlocks, eccBlocks), nil
}

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

// Package bitbuf is an appendable sequence of bits, one byte (0 or 1) per
// bit. Segment encoders and the codec pipeline build bitstreams with it
// before they are packed into 8-bit codewords.
package bitbuf

// Buffer is a sequence of bits, MSB-first within each appended value.
type Buffer []byte

// AppendBits appends the low-order length bits of val, high bit first.
func (b *Buffer) AppendBits(val uint32, length int) {
	if length < 0 || length > 31 || (val>>uint(length)) != 0 {
		panic("bitbuf: value out of range")
	}

	for i := length - 1; i >= 0; i-- {
		*b = append(*b, byte(val>>uint(i)&1))
	}
}

// AppendBuffer appends every bit of other to b.
func (b *Buffer) AppendBuffer(other Buffer) {
	*b = append(*b, other...)
}

// Len returns the number of bits currently in the buffer.
func (b Buffer) Len() int {
	return len(b)
}

// Pack packs the buffer into 8-bit codewords, MSB first, zero-padding the
// final codeword on the right if it is short.
func (b Buffer) Pack() []byte {
	codewords := make([]byte, (len(b)+7)/8)
	for i, bit := range b {
		codewords[i>>3] |= bit << (7 - uint(i&7))
	}
	return codewords
}

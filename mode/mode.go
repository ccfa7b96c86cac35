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

// Package mode implements the four rMQR encoding modes (numeric,
// alphanumeric, byte and kanji): their mode indicators, character-count
// widths, and the bit-level encoding of a string or byte slice into each
// mode's data representation.
package mode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-rmqr/rmqrcode/internal/bitbuf"
	"github.com/go-rmqr/rmqrcode/version"
	"golang.org/x/text/encoding/japanese"
)

// Mode identifies one of the four rMQR encoding modes.
type Mode int

const (
	Numeric Mode = iota
	Alphanumeric
	Byte
	Kanji
)

// Indicator is the 3-bit mode indicator placed ahead of a segment's
// character count.
func (m Mode) Indicator() int {
	switch m {
	case Numeric:
		return 0x1
	case Alphanumeric:
		return 0x2
	case Byte:
		return 0x3
	case Kanji:
		return 0x4
	default:
		panic("mode: unknown mode")
	}
}

func (m Mode) String() string {
	switch m {
	case Numeric:
		return "Numeric"
	case Alphanumeric:
		return "Alphanumeric"
	case Byte:
		return "Byte"
	case Kanji:
		return "Kanji"
	default:
		return "Unknown"
	}
}

// CharCountBits returns the width, in bits, of the character-count
// indicator for this mode at the given version.
func (m Mode) CharCountBits(d version.Descriptor) int {
	switch m {
	case Numeric:
		return d.CCI.Numeric
	case Alphanumeric:
		return d.CCI.Alphanumeric
	case Byte:
		return d.CCI.Byte
	case Kanji:
		return d.CCI.Kanji
	default:
		panic("mode: unknown mode")
	}
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	numericRegexp      = regexp.MustCompile(`^[0-9]*$`)
	alphanumericRegexp = regexp.MustCompile(`^[0-9A-Z $%*+\-./:]*$`)
)

// IsNumeric reports whether text can be encoded in numeric mode.
func IsNumeric(text string) bool { return numericRegexp.MatchString(text) }

// IsAlphanumeric reports whether text can be encoded in alphanumeric mode.
func IsAlphanumeric(text string) bool { return alphanumericRegexp.MatchString(text) }

// EncodeNumeric packs digits 3 at a time into 10/7/4-bit groups.
func EncodeNumeric(digits string) bitbuf.Buffer {
	if !IsNumeric(digits) {
		panic("mode: string contains non-numeric characters")
	}

	var bb bitbuf.Buffer
	for i := 0; i < len(digits); {
		n := len(digits) - i
		if n > 3 {
			n = 3
		}
		v, _ := strconv.Atoi(digits[i : i+n])
		bb.AppendBits(uint32(v), n*3+1)
		i += n
	}
	return bb
}

// EncodeAlphanumeric packs characters two at a time into 11-bit groups,
// with a trailing single character packed into 6 bits.
func EncodeAlphanumeric(text string) bitbuf.Buffer {
	if !IsAlphanumeric(text) {
		panic("mode: string contains non-alphanumeric characters")
	}

	var bb bitbuf.Buffer
	var i int
	for i = 0; i+1 < len(text); i += 2 {
		v := strings.IndexByte(alphanumericCharset, text[i])*45 +
			strings.IndexByte(alphanumericCharset, text[i+1])
		bb.AppendBits(uint32(v), 11)
	}
	if i < len(text) {
		v := strings.IndexByte(alphanumericCharset, text[i])
		bb.AppendBits(uint32(v), 6)
	}
	return bb
}

// EncodeBytes packs each byte of data into an 8-bit group, in order.
func EncodeBytes(data []byte) bitbuf.Buffer {
	var bb bitbuf.Buffer
	for _, b := range data {
		bb.AppendBits(uint32(b), 8)
	}
	return bb
}

var shiftJISEncoder = japanese.ShiftJIS.NewEncoder()

// EncodeKanji transcodes text to Shift-JIS and packs each resulting
// double-byte character into a 13-bit group: the JIS X 0208 codepoint,
// shifted into the 0x8140-0x9FFC or 0xE040-0xEBBF range, has its block
// offset subtracted and the high/low bytes recombined at 0xC0 per row.
func EncodeKanji(text string) (bitbuf.Buffer, error) {
	encoded, err := shiftJISEncoder.String(text)
	if err != nil {
		return nil, fmt.Errorf("mode: %q is not representable in Shift-JIS: %w", text, err)
	}
	if len(encoded)%2 != 0 {
		return nil, fmt.Errorf("mode: %q did not transcode to whole Shift-JIS characters", text)
	}

	var bb bitbuf.Buffer
	for i := 0; i < len(encoded); i += 2 {
		c := int(encoded[i])<<8 | int(encoded[i+1])
		switch {
		case c >= 0x8140 && c <= 0x9FFC:
			c -= 0x8140
		case c >= 0xE040 && c <= 0xEBBF:
			c -= 0xC140
		default:
			return nil, fmt.Errorf("mode: character at byte %d (0x%04X) is outside the kanji mode range", i, c)
		}
		c = (c>>8)*0xC0 + (c & 0xFF)
		bb.AppendBits(uint32(c), 13)
	}
	return bb, nil
}

// KanjiCharCount returns the number of double-byte kanji characters text
// transcodes to, for use as the segment's character count.
func KanjiCharCount(text string) (int, error) {
	encoded, err := shiftJISEncoder.String(text)
	if err != nil {
		return 0, err
	}
	return len(encoded) / 2, nil
}

// IsKanji reports whether r transcodes to a single Shift-JIS double-byte
// character in one of the two ranges kanji mode can represent.
func IsKanji(r rune) bool {
	encoded, err := shiftJISEncoder.String(string(r))
	if err != nil || len(encoded) != 2 {
		return false
	}
	c := int(encoded[0])<<8 | int(encoded[1])
	return (c >= 0x8140 && c <= 0x9FFC) || (c >= 0xE040 && c <= 0xEBBF)
}

// PayloadBits returns the number of payload bits (excluding the mode
// indicator and character-count indicator) needed to encode charCount
// characters in mode m.
func PayloadBits(m Mode, charCount int) int {
	switch m {
	case Numeric:
		bits := (charCount / 3) * 10
		switch charCount % 3 {
		case 2:
			bits += 7
		case 1:
			bits += 4
		}
		return bits
	case Alphanumeric:
		bits := (charCount / 2) * 11
		if charCount%2 == 1 {
			bits += 6
		}
		return bits
	case Byte:
		return charCount * 8
	case Kanji:
		return charCount * 13
	default:
		panic("mode: unknown mode")
	}
}

// Length returns the total bit length of a full segment in mode m carrying
// charCount characters, given the character-count-indicator width cciWidth:
// 3 (mode indicator) + cciWidth + the payload bits.
func Length(m Mode, charCount, cciWidth int) int {
	return 3 + cciWidth + PayloadBits(m, charCount)
}

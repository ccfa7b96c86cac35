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

// Package rmqrcode encodes rectangular Micro QR Code (rMQR) symbols per
// ISO/IEC 23941:2022: segment optimization, the codec pipeline (bitstream,
// padding, Reed-Solomon ECC, interleaving), and the matrix builder (fixed
// function patterns, BCH-protected format information, zigzag codeword
// placement, and masking).
package rmqrcode

import (
	"go.uber.org/zap"

	"github.com/go-rmqr/rmqrcode/bch"
	"github.com/go-rmqr/rmqrcode/mode"
	"github.com/go-rmqr/rmqrcode/segment"
	"github.com/go-rmqr/rmqrcode/version"
)

// finderFormatMask and subFormatMask are XORed into the 18-bit BCH
// codeword before it is written into its two copies in the symbol.
const (
	finderFormatMask = 0b011111101010110010
	subFormatMask    = 0b100000101001111011
)

// Symbol is an rMQR code: a version, an ECC level, and the segments that
// make up its payload. Segments are appended before Make commits them to
// the matrix; after Make, the symbol is read-only.
type Symbol struct {
	version  version.Descriptor
	ecc      version.ECC
	segments []segment.Segment
	matrix   *Matrix
	logger   *zap.Logger
}

// New creates a Symbol for the named version ("R13x99") and ECC level.
func New(versionName string, ecc version.ECC, opts ...Option) (*Symbol, error) {
	desc, ok := version.ByName(versionName)
	if !ok {
		return nil, newError(IllegalVersion, versionName)
	}

	s := &Symbol{version: desc, ecc: ecc, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// AppendSegment appends a segment of the given mode and text. The text
// must be valid for mode (§4.3); this surfaces as IllegalCharacter only
// here, on manual mode selection — the optimizer-driven Fit path never
// selects an invalid mode for its input.
func (s *Symbol) AppendSegment(m mode.Mode, text string) error {
	switch m {
	case mode.Numeric:
		if !mode.IsNumeric(text) {
			return newError(IllegalCharacter, "text contains non-numeric characters")
		}
	case mode.Alphanumeric:
		if !mode.IsAlphanumeric(text) {
			return newError(IllegalCharacter, "text contains non-alphanumeric characters")
		}
	case mode.Kanji:
		for _, r := range text {
			if !mode.IsKanji(r) {
				return newError(IllegalCharacter, "text contains a character outside the kanji mode range")
			}
		}
	}
	s.segments = append(s.segments, segment.Segment{Mode: m, Text: text})
	return nil
}

// Version returns the symbol's version name, e.g. "R13x99".
func (s *Symbol) Version() string { return s.version.Name }

// ECC returns the symbol's error correction level.
func (s *Symbol) ECC() version.ECC { return s.ecc }

// Matrix returns the completed module matrix; it is nil until Make
// succeeds.
func (s *Symbol) Matrix() *Matrix { return s.matrix }

// Make commits the appended segments to the matrix: encode, pad, split
// into blocks with Reed-Solomon ECC, interleave, then lay out every
// function pattern, format information, and data module before applying
// the mask.
func (s *Symbol) Make() error {
	if len(s.segments) == 0 {
		return newError(NoSegment, "Make called with no appended segments")
	}

	codewords, err := encodeCodewords(s.segments, s.version, s.ecc)
	if err != nil {
		return err
	}

	s.logger.Debug("encoded codewords",
		zap.String("version", s.version.Name),
		zap.Int("ecc", int(s.ecc)),
		zap.Int("count", len(codewords)))

	m := newMatrix(s.version.Width, s.version.Height)
	m.drawFinderPattern()
	m.drawFinderSubPattern()
	m.drawCornerFinderPatterns()
	m.drawAlignmentPatterns(s.version)
	m.drawTimingPatterns(s.version)
	m.drawFormatInformation(s.version, s.ecc)
	m.drawCodewords(codewords, s.version.RemainderBits)
	m.applyMask()

	if n := m.undefinedCount(); n != 0 {
		return newError(DataTooLong, "internal: matrix construction left undefined modules")
	}

	s.matrix = m
	return nil
}

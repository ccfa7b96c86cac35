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

package bitbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendBitsMSBFirst(t *testing.T) {
	var b Buffer
	b.AppendBits(0b101, 3)
	assert.Equal(t, Buffer{1, 0, 1}, b)
	assert.Equal(t, 3, b.Len())
}

func TestAppendBufferConcatenates(t *testing.T) {
	var a, c Buffer
	a.AppendBits(0b11, 2)
	c.AppendBits(0b0, 1)
	a.AppendBuffer(c)
	assert.Equal(t, Buffer{1, 1, 0}, a)
}

func TestPackZeroPadsFinalCodeword(t *testing.T) {
	var b Buffer
	b.AppendBits(0b1011, 4)
	packed := b.Pack()
	assert.Equal(t, []byte{0b1011_0000}, packed)
}

func TestPackMultipleCodewords(t *testing.T) {
	var b Buffer
	b.AppendBits(0xAB, 8)
	b.AppendBits(0x3, 2)
	packed := b.Pack()
	assert.Equal(t, []byte{0xAB, 0b1100_0000}, packed)
}

func TestAppendBitsPanicsOnOutOfRangeValue(t *testing.T) {
	defer func() {
		assert.NotNil(t, recover())
	}()
	var b Buffer
	b.AppendBits(0b100, 2)
}

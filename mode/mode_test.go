package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndicatorsAreDistinct(t *testing.T) {
	seen := map[int]bool{}
	for _, m := range []Mode{Numeric, Alphanumeric, Byte, Kanji} {
		assert.False(t, seen[m.Indicator()])
		seen[m.Indicator()] = true
	}
}

func TestIsNumeric(t *testing.T) {
	assert.True(t, IsNumeric("0123456789"))
	assert.True(t, IsNumeric(""))
	assert.False(t, IsNumeric("12A"))
}

func TestIsAlphanumeric(t *testing.T) {
	assert.True(t, IsAlphanumeric("HELLO WORLD $%*+-./:"))
	assert.False(t, IsAlphanumeric("hello"))
}

func TestEncodeNumericGroupsOfThree(t *testing.T) {
	bb := EncodeNumeric("12345")
	assert.Equal(t, 3*3+1+2*3+1, bb.Len())
}

func TestEncodeAlphanumericTrailingSingle(t *testing.T) {
	bb := EncodeAlphanumeric("AB1")
	assert.Equal(t, 11+6, bb.Len())
}

func TestEncodeAlphanumericPair(t *testing.T) {
	bb := EncodeAlphanumeric("AB")
	assert.Equal(t, 11, bb.Len())
}

func TestEncodeBytesLength(t *testing.T) {
	bb := EncodeBytes([]byte("hi"))
	assert.Equal(t, 16, bb.Len())
}

func TestEncodeKanjiRoundTripLength(t *testing.T) {
	bb, err := EncodeKanji("点")
	assert.NoError(t, err)
	assert.Equal(t, 13, bb.Len())
}

func TestEncodeKanjiRejectsNonKanji(t *testing.T) {
	_, err := EncodeKanji("A")
	assert.Error(t, err)
}

func TestKanjiCharCount(t *testing.T) {
	n, err := KanjiCharCount("点字")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}

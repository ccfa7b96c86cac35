package rmqrcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-rmqr/rmqrcode/bch"
	"github.com/go-rmqr/rmqrcode/mode"
	"github.com/go-rmqr/rmqrcode/version"
)

func TestNewUnknownVersion(t *testing.T) {
	_, err := New("R99x999", version.M)
	require.Error(t, err)
	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, IllegalVersion, rerr.Kind)
}

func TestMakeWithNoSegmentsFails(t *testing.T) {
	s, err := New("R7x43", version.M)
	require.NoError(t, err)

	err = s.Make()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoSegment)
}

func TestAppendSegmentRejectsIllegalCharacter(t *testing.T) {
	s, err := New("R7x43", version.M)
	require.NoError(t, err)

	err = s.AppendSegment(mode.Numeric, "12a")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIllegalCharacter)
}

func TestMakeProducesACompleteMatrix(t *testing.T) {
	s, err := New("R13x99", version.M)
	require.NoError(t, err)
	require.NoError(t, s.AppendSegment(mode.Byte, "abc"))
	require.NoError(t, s.Make())

	m := s.Matrix()
	require.NotNil(t, m)
	assert.Equal(t, 13, m.Height())
	assert.Equal(t, 99, m.Width())
	assert.Equal(t, 0, m.undefinedCount())
}

func TestMakeGridWithQuietZone(t *testing.T) {
	s, err := New("R13x99", version.M)
	require.NoError(t, err)
	require.NoError(t, s.AppendSegment(mode.Byte, "abc"))
	require.NoError(t, s.Make())

	grid := s.Matrix().Grid(false)
	assert.Len(t, grid, 13)
	assert.Len(t, grid[0], 99)

	withQuiet := s.Matrix().Grid(true)
	assert.Len(t, withQuiet, 17)
	assert.Len(t, withQuiet[0], 103)
	for x := 0; x < 103; x++ {
		assert.Equal(t, 0, withQuiet[0][x])
		assert.Equal(t, 0, withQuiet[16][x])
	}
}

func TestFinderPatternIsFixedRegardlessOfPayload(t *testing.T) {
	const want = "" +
		"DDDDDDD" +
		"DLLLLLD" +
		"DLDDDLD" +
		"DLDDDLD" +
		"DLDDDLD" +
		"DLLLLLD" +
		"DDDDDDD"

	for _, payload := range []string{"abc", "123456789", "HELLO WORLD"} {
		s, err := New("R13x99", version.M)
		require.NoError(t, err)
		require.NoError(t, s.AppendSegment(mode.Byte, payload))
		require.NoError(t, s.Make())

		var got strings.Builder
		for y := 0; y < 7; y++ {
			for x := 0; x < 7; x++ {
				if s.Matrix().At(x, y) == Dark {
					got.WriteByte('D')
				} else {
					got.WriteByte('L')
				}
			}
		}
		assert.Equal(t, want, got.String(), "finder pattern changed for payload %q", payload)
	}
}

func TestMaskIdempotence(t *testing.T) {
	s, err := New("R13x99", version.M)
	require.NoError(t, err)
	require.NoError(t, s.AppendSegment(mode.Byte, "abcdef"))
	require.NoError(t, s.Make())

	before := make([]ModuleColor, 0, s.Matrix().width*s.Matrix().height)
	for y := 0; y < s.Matrix().height; y++ {
		for x := 0; x < s.Matrix().width; x++ {
			before = append(before, s.Matrix().At(x, y))
		}
	}

	s.Matrix().applyMask()
	s.Matrix().applyMask()

	i := 0
	for y := 0; y < s.Matrix().height; y++ {
		for x := 0; x < s.Matrix().width; x++ {
			assert.Equal(t, before[i], s.Matrix().At(x, y))
			i++
		}
	}
}

func TestMakeWithECCHEncodesTheECCFlagAtBitSix(t *testing.T) {
	desc, ok := version.ByName("R13x99")
	require.True(t, ok)

	s, err := New("R13x99", version.H)
	require.NoError(t, err)
	require.NoError(t, s.AppendSegment(mode.Byte, "abc"))
	require.NoError(t, s.Make())
	assert.Equal(t, 0, s.Matrix().undefinedCount())

	want := bch.Encode(desc.VersionIndicator | 1<<6)
	finderBits := want ^ finderFormatMask
	for n := 0; n < 18; n++ {
		row := 1 + n%5
		col := 8 + n/5
		wantDark := (finderBits>>n)&1 == 1
		gotDark := s.Matrix().At(col, row) == Dark
		assert.Equal(t, wantDark, gotDark, "finder-side format bit %d mismatched for ECC H", n)
	}
}

func TestMakeWithECCMAndHProduceDifferentFormatInformation(t *testing.T) {
	buildFinderCorner := func(ecc version.ECC) string {
		s, err := New("R13x99", ecc)
		require.NoError(t, err)
		require.NoError(t, s.AppendSegment(mode.Byte, "abc"))
		require.NoError(t, s.Make())

		var sb strings.Builder
		for row := 1; row <= 5; row++ {
			for col := 8; col <= 11; col++ {
				if s.Matrix().At(col, row) == Dark {
					sb.WriteByte('D')
				} else {
					sb.WriteByte('L')
				}
			}
		}
		return sb.String()
	}

	assert.NotEqual(t, buildFinderCorner(version.M), buildFinderCorner(version.H))
}

func TestDataTooLongBoundaryByteMode(t *testing.T) {
	desc, ok := version.ByName("R13x99")
	require.True(t, ok)

	// The longest byte-mode payload that fits: capacity minus the
	// 3-bit mode indicator and CCI, divided by 8, minus one byte of
	// margin so the 3-bit terminator always has room.
	cci := desc.CCI.Byte
	maxChars := (desc.DataCapacity(version.M) - 3 - cci) / 8
	if desc.DataCapacity(version.M)-3-cci-maxChars*8 < 3 {
		maxChars--
	}

	s, err := New("R13x99", version.M)
	require.NoError(t, err)
	require.NoError(t, s.AppendSegment(mode.Byte, strings.Repeat("a", maxChars)))
	assert.NoError(t, s.Make())

	s2, err := New("R13x99", version.M)
	require.NoError(t, err)
	require.NoError(t, s2.AppendSegment(mode.Byte, strings.Repeat("a", maxChars+1)))
	err = s2.Make()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDataTooLong)
}

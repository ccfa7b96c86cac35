package gf256

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpLogRoundTrip(t *testing.T) {
	for v := 1; v <= 255; v++ {
		assert.Equal(t, v, Exp(Log(v)), "exp(log(%d)) should round-trip", v)
	}
	for e := 0; e < 255; e++ {
		assert.Equal(t, e, Log(Exp(e)), "log(exp(%d)) should round-trip", e)
	}
}

func TestMultiplyIdentity(t *testing.T) {
	for v := 1; v <= 255; v++ {
		assert.Equal(t, v, Multiply(v, 1))
		assert.Equal(t, 0, Multiply(v, 0))
	}
}

func TestComputeRemainderDeterministic(t *testing.T) {
	data := []byte{0x10, 0x20, 0x0c, 0x56, 0x61, 0x80}
	g := GeneratorPolynomial(10)

	first := ComputeRemainder(data, g, 10)
	second := ComputeRemainder(data, g, 10)
	assert.Equal(t, first, second)
	assert.Len(t, first, 10)
}

func TestGeneratorPolynomialDegree(t *testing.T) {
	for _, n := range []int{7, 10, 13, 22, 30} {
		g := GeneratorPolynomial(n)
		assert.Len(t, g, n+1)
		assert.Equal(t, 0, g[0], "leading coefficient of a monic generator is always alpha^0")
	}
}

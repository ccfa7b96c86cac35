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

// Package gf256 implements arithmetic in GF(2^8) under the primitive
// polynomial x^8 + x^4 + x^3 + x^2 + 1 (0x11D), and Reed-Solomon error
// correction codeword generation on top of it.
package gf256

const primitive = 0x11D

var (
	exp [256]int // exp[e] = alpha^e, e in [0, 254]; exp[255] mirrors exp[0].
	log [256]int // log[v], v in [1, 255]; log[0] is undefined (sentinel -1).
)

func init() {
	val := 1
	for e := 0; e < 255; e++ {
		exp[e] = val
		log[val] = e
		val <<= 1
		if val&0x100 != 0 {
			val ^= primitive
		}
	}
	exp[255] = exp[0]
	log[0] = -1
}

// Exp returns alpha^e for e in [0, 254].
func Exp(e int) int {
	return exp[e%255]
}

// Log returns the exponent l such that alpha^l = v, for v in [1, 255].
func Log(v int) int {
	return log[v]
}

// Multiply returns the product of x and y in GF(2^8).
func Multiply(x, y int) int {
	if x == 0 || y == 0 {
		return 0
	}
	return exp[(log[x]+log[y])%255]
}

// polyMultiply multiplies two polynomials represented by their coefficients
// in descending order of degree.
func polyMultiply(p, q []int) []int {
	res := make([]int, len(p)+len(q)-1)
	for i, pc := range p {
		for j, qc := range q {
			res[i+j] ^= Multiply(pc, qc)
		}
	}
	return res
}

// GeneratorPolynomial builds the Reed-Solomon generator polynomial of the
// given degree n, i.e. the product (x - alpha^0)(x - alpha^1)...(x -
// alpha^(n-1)). The result is n+1 exponents g[0..n], in descending order of
// degree: g[0] is the (always 1) leading coefficient of x^n, g[n] is the
// constant term.
func GeneratorPolynomial(n int) []int {
	coeffs := []int{1}
	for i := 0; i < n; i++ {
		coeffs = polyMultiply(coeffs, []int{1, Exp(i)})
	}

	g := make([]int, len(coeffs))
	for i, c := range coeffs {
		g[i] = Log(c)
	}
	return g
}

// ComputeRemainder computes the n Reed-Solomon error-correction codewords
// for the given k data codewords (8-bit values) and generator polynomial g
// (n+1 exponents, as returned by GeneratorPolynomial). This is polynomial
// division of data*x^n by g in GF(2^8); the result is the remainder.
func ComputeRemainder(data []byte, g []int, n int) []byte {
	f := make([]int, len(data)+n)
	for i, d := range data {
		f[i] = int(d)
	}

	for i := 0; i < len(data); i++ {
		if f[i] == 0 {
			continue
		}
		m := Log(f[i])
		for j := 0; j <= n; j++ {
			f[i+j] ^= Exp((g[j] + m) % 255)
		}
	}

	remainder := make([]byte, n)
	for i := 0; i < n; i++ {
		remainder[i] = byte(f[len(data)+i])
	}
	return remainder
}

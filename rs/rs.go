/*
NAME
  rs.go

DESCRIPTION
  rs implements a systematic Reed-Solomon codec over GF(2^8): encoding with
  parity appended after the data, and erasure-only decoding via syndromes,
  the erasure locator polynomial, and the Forney algorithm. This is the
  forward-error-correction layer that container/packet applies column-wise
  across a packet's frames.

AUTHOR
  Aurora contributors

LICENSE
  Copyright (C) 2026 the Aurora project. All Rights Reserved.
*/

// Package rs implements systematic, erasure-only Reed-Solomon coding over
// GF(2^8).
package rs

import (
	"github.com/pkg/errors"

	"github.com/novasignal/aurora/gf"
)

// ErrTooManyErasures is returned by Decode when more positions are erased
// than the code can correct.
var ErrTooManyErasures = errors.New("rs: too many erasures to correct")

// errZeroDerivative indicates a malformed codeword: the formal derivative of
// the erasure locator polynomial vanished at a root, so Forney's algorithm
// cannot recover that position's value.
var errZeroDerivative = errors.New("rs: zero derivative at locator root")

// Encode performs systematic Reed-Solomon encoding: data is copied unchanged
// into the first len(data) output bytes, followed by nsym parity bytes, such
// that encode(data) is a valid codeword of the generator polynomial of
// degree nsym.
func Encode(data []byte, nsym int) []byte {
	gen := gf.GeneratorPoly(nsym)

	// msg(x)*x^nsym, expressed low-degree-first, is data shifted up by nsym
	// zero coefficients.
	msg := make([]byte, len(data)+nsym)
	copy(msg[nsym:], reverse(data))

	rem := syntheticDivideRemainder(msg, gen)

	out := make([]byte, len(data)+nsym)
	copy(out, data)
	copy(out[len(data):], reverse(rem))
	return out
}

// syntheticDivideRemainder computes msg(x) mod gen(x) via synthetic
// division, both polynomials given low-degree-first, gen monic
// (gen[len(gen)-1] is the degree-nsym coefficient, always 1).
func syntheticDivideRemainder(msg, gen []byte) []byte {
	work := make([]byte, len(msg))
	copy(work, msg)
	nsym := len(gen) - 1

	for i := len(work) - 1; i >= nsym; i-- {
		coef := work[i]
		if coef == 0 {
			continue
		}
		for j := 0; j <= nsym; j++ {
			work[i-nsym+j] ^= gf.Mul(gen[j], coef)
		}
	}
	return work[:nsym]
}

func reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// Decode reconstructs the k-byte systematic data prefix from a length-k+nsym
// codeword, some positions of which may be erased. erasures holds the
// sequence positions (0-indexed, position 0 is the first transmitted byte)
// known to be missing; received[p] for p in erasures is ignored. Decode
// fails with ErrTooManyErasures if len(erasures) > nsym.
func Decode(received []byte, k, nsym int, erasures []int) ([]byte, error) {
	n := k + nsym
	if len(received) != n {
		return nil, errors.Errorf("rs: received length %d, want %d", len(received), n)
	}
	if len(erasures) > nsym {
		return nil, ErrTooManyErasures
	}

	if len(erasures) == 0 {
		return append([]byte(nil), received[:k]...), nil
	}

	// Work in polynomial-index order: sequence position i corresponds to
	// polynomial coefficient n-1-i (low-degree-first). Erased positions are
	// treated as zero: their true value is recovered below and XORed in, so
	// whatever placeholder the caller left there must not leak into the
	// syndrome computation.
	poly := reverse(received)
	erasedIdx := make([]int, len(erasures))
	for i, p := range erasures {
		erasedIdx[i] = n - 1 - p
		poly[erasedIdx[i]] = 0
	}

	syn := syndromes(poly, nsym)
	if allZero(syn) {
		return append([]byte(nil), received[:k]...), nil
	}

	locator := erasureLocator(erasedIdx)
	evaluator := errorEvaluator(syn, locator, len(erasedIdx))

	corrected := append([]byte(nil), poly...)
	for _, p := range erasedIdx {
		xi := gf.Exp(p)
		xiInv, err := gf.Inverse(xi)
		if err != nil {
			return nil, errors.Wrap(err, "rs: erasure position has zero locator root")
		}
		num := gf.Mul(xi, gf.PolyEval(evaluator, xiInv))
		den := polyEvalOddDerivative(locator, xiInv)
		if den == 0 {
			return nil, errZeroDerivative
		}
		val, err := gf.Div(num, den)
		if err != nil {
			return nil, errors.Wrap(err, "rs: forney division")
		}
		corrected[p] ^= val
	}

	out := reverse(corrected)
	return out[:k], nil
}

// syndromes computes S_j = R(alpha^j) for j=0..nsym-1, where R is the
// received polynomial (low-degree-first).
func syndromes(poly []byte, nsym int) []byte {
	s := make([]byte, nsym)
	for j := 0; j < nsym; j++ {
		s[j] = gf.PolyEval(poly, gf.Exp(j))
	}
	return s
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// erasureLocator returns Lambda(x) = product over erased positions p of
// (1 + alpha^p * x), low-degree-first.
func erasureLocator(erasedIdx []int) []byte {
	locator := []byte{1}
	for _, p := range erasedIdx {
		locator = gf.PolyMul(locator, []byte{1, gf.Exp(p)})
	}
	return locator
}

// errorEvaluator returns Omega(x) = S(x)*Lambda(x) mod x^numErasures.
func errorEvaluator(syn, locator []byte, numErasures int) []byte {
	prod := gf.PolyMul(syn, locator)
	if len(prod) > numErasures {
		prod = prod[:numErasures]
	}
	return prod
}

// polyEvalOddDerivative evaluates the formal derivative of p at x, keeping
// only odd-degree terms as required in characteristic 2 (even-degree terms
// have coefficient-multiple-of-2 equal to zero).
func polyEvalOddDerivative(p []byte, x byte) byte {
	var y byte
	for i := 1; i < len(p); i += 2 {
		y ^= gf.Mul(p[i], gf.Pow(x, i-1))
	}
	return y
}

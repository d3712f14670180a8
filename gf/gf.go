/*
NAME
  gf.go

DESCRIPTION
  gf provides GF(2^8) field arithmetic over the primitive polynomial 0x11D
  (x^8+x^4+x^3+x^2+1) with primitive element alpha=2. This is the field the
  Reed-Solomon codec in package rs is built on.

AUTHOR
  Aurora contributors

LICENSE
  Copyright (C) 2026 the Aurora project. All Rights Reserved.
*/

// Package gf implements GF(2^8) arithmetic used by the Reed-Solomon codec.
package gf

import "github.com/pkg/errors"

// primitivePoly is the field's generator polynomial, 0x11D.
const primitivePoly = 0x11D

// ErrDivideByZero is returned by Div when the divisor is zero.
var ErrDivideByZero = errors.New("gf: divide by zero")

// ErrInverseOfZero is returned by Inverse when called on zero, which has no
// multiplicative inverse in this field.
var ErrInverseOfZero = errors.New("gf: inverse of zero")

// exp and log are the field's exponential and logarithm tables. exp is
// doubled in length (512 entries) so that Mul's exponent sum never needs a
// modulo-255 reduction.
var (
	exp [512]byte
	log [256]byte
)

func init() {
	x := 1
	for i := 0; i < 255; i++ {
		exp[i] = byte(x)
		log[x] = byte(i)
		x <<= 1
		if x&0x100 != 0 {
			x ^= primitivePoly
		}
	}
	for i := 255; i < 512; i++ {
		exp[i] = exp[i-255]
	}
}

// Add returns a+b in GF(2^8), which is the same as subtraction in
// characteristic 2.
func Add(a, b byte) byte { return a ^ b }

// Sub returns a-b in GF(2^8); identical to Add.
func Sub(a, b byte) byte { return a ^ b }

// Mul returns a*b in GF(2^8).
func Mul(a, b byte) byte {
	if a == 0 || b == 0 {
		return 0
	}
	return exp[int(log[a])+int(log[b])]
}

// Div returns a/b in GF(2^8). It returns ErrDivideByZero if b is zero.
func Div(a, b byte) (byte, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	if a == 0 {
		return 0, nil
	}
	idx := int(log[a]) - int(log[b])
	if idx < 0 {
		idx += 255
	}
	return exp[idx], nil
}

// Pow returns a^n in GF(2^8).
func Pow(a byte, n int) byte {
	if a == 0 {
		if n == 0 {
			return 1
		}
		return 0
	}
	e := (int(log[a]) * n) % 255
	if e < 0 {
		e += 255
	}
	return exp[e]
}

// Inverse returns the multiplicative inverse of a. It returns
// ErrInverseOfZero if a is zero.
func Inverse(a byte) (byte, error) {
	if a == 0 {
		return 0, ErrInverseOfZero
	}
	return exp[255-int(log[a])], nil
}

// Exp returns alpha^i. Negative i are reduced modulo 255 before lookup.
func Exp(i int) byte {
	i %= 255
	if i < 0 {
		i += 255
	}
	return exp[i]
}

package gf

// Polynomials are represented as byte slices with coefficient index 0 being
// the lowest degree term (little-endian, matching the order rs uses for
// generator-polynomial construction and synthetic division).

// PolyScale returns p scaled by the constant k.
func PolyScale(p []byte, k byte) []byte {
	out := make([]byte, len(p))
	for i, c := range p {
		out[i] = Mul(c, k)
	}
	return out
}

// PolyAdd returns p+q (equivalently p-q), zero-extending the shorter operand.
func PolyAdd(p, q []byte) []byte {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make([]byte, n)
	for i := 0; i < len(p); i++ {
		out[i] = p[i]
	}
	for i := 0; i < len(q); i++ {
		out[i] ^= q[i]
	}
	return out
}

// PolyMul returns the product of p and q.
func PolyMul(p, q []byte) []byte {
	out := make([]byte, len(p)+len(q)-1)
	for i, pc := range p {
		if pc == 0 {
			continue
		}
		for j, qc := range q {
			out[i+j] ^= Mul(pc, qc)
		}
	}
	return out
}

// PolyEval evaluates p at x using Horner's method, treating p[len(p)-1] as
// the highest-degree coefficient.
func PolyEval(p []byte, x byte) byte {
	var y byte
	for i := len(p) - 1; i >= 0; i-- {
		y = Mul(y, x) ^ p[i]
	}
	return y
}

// GeneratorPoly returns the Reed-Solomon generator polynomial of degree
// nsym: the product over i=0..nsym-1 of (x + alpha^i).
func GeneratorPoly(nsym int) []byte {
	g := []byte{1}
	for i := 0; i < nsym; i++ {
		g = PolyMul(g, []byte{Exp(i), 1})
	}
	return g
}

package gf

import "testing"

func TestFieldAxioms(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			ab := Add(byte(a), byte(b))
			ba := Add(byte(b), byte(a))
			if ab != ba {
				t.Fatalf("add not commutative: %d+%d", a, b)
			}
			if Mul(byte(a), byte(b)) != Mul(byte(b), byte(a)) {
				t.Fatalf("mul not commutative: %d*%d", a, b)
			}
		}
	}
}

func TestAddSelfIsZero(t *testing.T) {
	for a := 0; a < 256; a++ {
		if Add(byte(a), byte(a)) != 0 {
			t.Fatalf("a+a != 0 for a=%d", a)
		}
	}
}

func TestMulIdentity(t *testing.T) {
	for a := 0; a < 256; a++ {
		if Mul(byte(a), 1) != byte(a) {
			t.Fatalf("a*1 != a for a=%d", a)
		}
	}
}

func TestInverse(t *testing.T) {
	for a := 1; a < 256; a++ {
		inv, err := Inverse(byte(a))
		if err != nil {
			t.Fatalf("Inverse(%d): %v", a, err)
		}
		if Mul(byte(a), inv) != 1 {
			t.Fatalf("a*inverse(a) != 1 for a=%d", a)
		}
	}
	if _, err := Inverse(0); err != ErrInverseOfZero {
		t.Fatalf("Inverse(0): want ErrInverseOfZero, got %v", err)
	}
}

func TestDivByZero(t *testing.T) {
	if _, err := Div(5, 0); err != ErrDivideByZero {
		t.Fatalf("Div(5,0): want ErrDivideByZero, got %v", err)
	}
}

func TestPow255IsOne(t *testing.T) {
	for a := 1; a < 256; a++ {
		if Pow(byte(a), 255) != 1 {
			t.Fatalf("Pow(%d,255) != 1", a)
		}
	}
}

func TestDistributive(t *testing.T) {
	for a := 0; a < 256; a += 17 {
		for b := 0; b < 256; b += 23 {
			for c := 0; c < 256; c += 29 {
				lhs := Mul(byte(a), Add(byte(b), byte(c)))
				rhs := Add(Mul(byte(a), byte(b)), Mul(byte(a), byte(c)))
				if lhs != rhs {
					t.Fatalf("distributive law failed for a=%d b=%d c=%d", a, b, c)
				}
			}
		}
	}
}

// Mul(0x53, 0xCA) == 0x01 is the textbook RS test vector for the AES field
// (primitive poly 0x11B), where the two values are mutual inverses. This
// module uses 0x11D, under which the product is 0x8F, not 0x01; TestInverse
// already covers a*inverse(a)=1 across the whole field, so this just pins a
// fixed vector against the poly actually implemented here.
func TestKnownVector(t *testing.T) {
	if got := Mul(0x53, 0xCA); got != 0x8F {
		t.Fatalf("Mul(0x53,0xCA) = 0x%02x, want 0x8F", got)
	}
}

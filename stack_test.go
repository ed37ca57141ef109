package bset

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

var operators = ByteSet{}.AddString("+-*/%&|^")

var classStack = ByteStack{}.
	AddSet(Digits).
	AddSet(Alphabetic).
	AddSet(operators)

const (
	digitsLane     = Lane0
	alphabeticLane = Lane1
	operatorsLane  = Lane2
)

func TestStackSetEquivalence(t *testing.T) {
	c := qt.New(t)
	for i := 0; i < 256; i++ {
		b := byte(i)
		c.Assert(classStack.Contains(digitsLane, b), qt.Equals, Digits.Contains(b), qt.Commentf("byte %#x", b))
		c.Assert(classStack.Contains(alphabeticLane, b), qt.Equals, Alphabetic.Contains(b), qt.Commentf("byte %#x", b))
		c.Assert(classStack.Contains(operatorsLane, b), qt.Equals, operators.Contains(b), qt.Commentf("byte %#x", b))
	}
}

func TestStackScenario(t *testing.T) {
	c := qt.New(t)
	c.Assert(classStack.Contains(operatorsLane, '%'), qt.IsTrue)
	c.Assert(classStack.Contains(operatorsLane, '5'), qt.IsFalse)
	c.Assert(classStack.Contains(digitsLane, '5'), qt.IsTrue)
	c.Assert(classStack.Lanes(), qt.Equals, 3)
}

func TestUnpopulatedLane(t *testing.T) {
	c := qt.New(t)
	stack := ByteStack{}.AddSet(Digits).AddSet(Alphabetic)
	for i := 0; i < 256; i++ {
		c.Assert(stack.Contains(Lane5, byte(i)), qt.IsFalse, qt.Commentf("byte %#x", i))
		c.Assert(stack.Contains(Lane7, byte(i)), qt.IsFalse, qt.Commentf("byte %#x", i))
	}
	var empty ASCIIStack
	for i := 0; i < 256; i++ {
		c.Assert(empty.Contains(Lane0, byte(i)), qt.IsFalse, qt.Commentf("byte %#x", i))
	}
}

func TestASCIIStack(t *testing.T) {
	c := qt.New(t)
	stack := ASCIIStack{}.
		AddSet(ASCIIDigits).
		AddSet(MakeASCIISet("+-*/%&|^"))
	for i := 0; i < 256; i++ {
		b := byte(i)
		c.Assert(stack.Contains(Lane0, b), qt.Equals, ASCIIDigits.Contains(b), qt.Commentf("byte %#x", b))
	}
	c.Assert(stack.Contains(Lane1, '%'), qt.IsTrue)
	c.Assert(stack.Contains(Lane1, 200), qt.IsFalse)
	c.Assert(stack.Lanes(), qt.Equals, 2)
}

func TestAddASCIISet(t *testing.T) {
	c := qt.New(t)
	stack := ByteStack{}.AddASCIISet(ASCIIDigits)
	for i := 0; i < 256; i++ {
		b := byte(i)
		c.Assert(stack.Contains(Lane0, b), qt.Equals, Digits.Contains(b), qt.Commentf("byte %#x", b))
	}
}

func TestEightLanes(t *testing.T) {
	c := qt.New(t)
	sets := []ByteSet{
		Lowercase, Uppercase, Digits, Whitespace,
		operators, Graphic, URIReserved, Newline,
	}
	var stack ByteStack
	for _, s := range sets {
		stack = stack.AddSet(s)
	}
	c.Assert(stack.Lanes(), qt.Equals, 8)
	for lane, s := range sets {
		for i := 0; i < 256; i++ {
			b := byte(i)
			c.Assert(stack.Contains(Lane(lane), b), qt.Equals, s.Contains(b), qt.Commentf("lane %d byte %#x", lane, b))
		}
	}
}

func TestNinthSetPanics(t *testing.T) {
	c := qt.New(t)
	var stack ByteStack
	for i := 0; i < maxLanes; i++ {
		stack = stack.AddSet(Digits)
	}
	c.Assert(func() {
		stack.AddSet(Digits)
	}, qt.PanicMatches, `bset: cannot stack more than 8 sets`)

	var astack ASCIIStack
	for i := 0; i < maxLanes; i++ {
		astack = astack.AddSet(ASCIIDigits)
	}
	c.Assert(func() {
		astack.AddSet(ASCIIDigits)
	}, qt.PanicMatches, `bset: cannot stack more than 8 sets`)
}

var benchByteStack = ByteStack{}.
	AddSet(Lowercase).
	AddSet(Alphabetic).
	AddSet(Alphanumeric).
	AddSet(URIReserved)

var benchASCIIStack = ASCIIStack{}.
	AddSet(ASCIILowercase).
	AddSet(ASCIIAlphabetic).
	AddSet(ASCIIAlphanumeric).
	AddSet(ASCIIURIReserved)

func BenchmarkLowercaseByteStack(b *testing.B) {
	benchmarkMembership(b, func(c byte) bool {
		return benchByteStack.Contains(Lane0, c)
	})
}

func BenchmarkLowercaseASCIIStack(b *testing.B) {
	benchmarkMembership(b, func(c byte) bool {
		return benchASCIIStack.Contains(Lane0, c)
	})
}

func BenchmarkAlphanumericByteStack(b *testing.B) {
	benchmarkMembership(b, func(c byte) bool {
		return benchByteStack.Contains(Lane2, c)
	})
}

func BenchmarkURIReservedByteStack(b *testing.B) {
	benchmarkMembership(b, func(c byte) bool {
		return benchByteStack.Contains(Lane3, c)
	})
}

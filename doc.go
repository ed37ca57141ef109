// Package bset provides fast, compact sets of bytes and ASCII
// characters, for deciding membership of a byte in a fixed set at
// high throughput. It is aimed at lexers, parsers and validators.
//
// The sets are plain fixed-size values with no indirection: building
// one allocates nothing, and a set assembled in a package-level var
// costs nothing after program initialisation. ByteSet covers the full
// byte range; ASCIISet spans half the memory in exchange for a range
// check on every lookup:
//
//	var operators = bset.ASCIISet{}.AddString("+-*/%&|^")
//
//	operators.Contains('%') // true
//
// Up to 8 sets over the same domain can be packed into a ByteStack or
// ASCIIStack. A stack stores the membership flags of all its sets for
// a given byte in the same backing byte, so testing any of the sets
// costs one load plus a shift, instead of one lookup per set. Sets in
// a stack are identified by the order they were added, through the
// Lane0-Lane7 constants:
//
//	var classes = bset.ByteStack{}.
//		AddSet(bset.Digits).
//		AddSet(bset.Alphabetic).
//		AddSet(bset.ByteSet{}.AddString("+-*/%&|^"))
//
//	const (
//		digits     = bset.Lane0
//		alphabetic = bset.Lane1
//		operators  = bset.Lane2
//	)
//
//	classes.Contains(operators, '%') // true
//
// A stack always occupies 8 times the memory of one set, however many
// sets it holds, so stacking pays off the more sets share it.
package bset

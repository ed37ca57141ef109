package bset

import (
	"fmt"
	"math/bits"
	"strings"
)

// asciiLen is the number of values in the ASCII domain.
const asciiLen = 0x80

// ByteSet is a set of bytes, represented as a 256-bit vector.
// The zero value is the empty set. Sets are immutable values:
// the builder methods return a new set and never modify their
// receiver, so a set can be built once in a package-level var
// and shared freely between goroutines.
//
// This is compact (good cache behaviour): a whole set spans 32 bytes.
type ByteSet [4]uint64

// ASCIISet is a set of ASCII characters, represented as a 128-bit
// vector. It spans half the memory of a ByteSet at the cost of a
// range check on every lookup. The zero value is the empty set.
//
// Bytes outside the ASCII range (>= 0x80) are never members:
// adding one is a no-op and Contains reports false for them.
type ASCIISet [2]uint64

// MakeByteSet returns the set of the bytes in s.
func MakeByteSet(s string) ByteSet {
	var set ByteSet
	for i := 0; i < len(s); i++ {
		set = set.Add(s[i])
	}
	return set
}

// MakeASCIISet returns the set of the ASCII characters in s.
// Non-ASCII bytes in s are ignored.
func MakeASCIISet(s string) ASCIISet {
	var set ASCIISet
	for i := 0; i < len(s); i++ {
		set = set.Add(s[i])
	}
	return set
}

// Contains reports whether the set holds the byte b.
func (s ByteSet) Contains(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}

// Add returns the set with b added.
func (s ByteSet) Add(b byte) ByteSet {
	s[b>>6] |= 1 << (b & 63)
	return s
}

// Remove returns the set with b removed.
func (s ByteSet) Remove(b byte) ByteSet {
	s[b>>6] &^= 1 << (b & 63)
	return s
}

// AddBytes returns the set with every byte of bs added.
func (s ByteSet) AddBytes(bs []byte) ByteSet {
	for _, b := range bs {
		s = s.Add(b)
	}
	return s
}

// RemoveBytes returns the set with every byte of bs removed.
func (s ByteSet) RemoveBytes(bs []byte) ByteSet {
	for _, b := range bs {
		s = s.Remove(b)
	}
	return s
}

// AddString returns the set with every byte of str added.
func (s ByteSet) AddString(str string) ByteSet {
	for i := 0; i < len(str); i++ {
		s = s.Add(str[i])
	}
	return s
}

// AddRange returns the set with every byte in [lo, hi] added.
// It returns the set unchanged if lo > hi.
func (s ByteSet) AddRange(lo, hi byte) ByteSet {
	for b := int(lo); b <= int(hi); b++ {
		s = s.Add(byte(b))
	}
	return s
}

// RemoveRange returns the set with every byte in [lo, hi] removed.
func (s ByteSet) RemoveRange(lo, hi byte) ByteSet {
	for b := int(lo); b <= int(hi); b++ {
		s = s.Remove(byte(b))
	}
	return s
}

// Union returns the union of s and t.
func (s ByteSet) Union(t ByteSet) ByteSet {
	for i := range s {
		s[i] |= t[i]
	}
	return s
}

// Intersect returns the intersection of s and t.
func (s ByteSet) Intersect(t ByteSet) ByteSet {
	for i := range s {
		s[i] &= t[i]
	}
	return s
}

// Complement returns the set of all bytes not in s.
func (s ByteSet) Complement() ByteSet {
	for i := range s {
		s[i] = ^s[i]
	}
	return s
}

// Difference returns the set of bytes in s but not in t.
func (s ByteSet) Difference(t ByteSet) ByteSet {
	return s.Intersect(t.Complement())
}

// ASCII narrows the set to the ASCII domain.
// Members outside the ASCII range are dropped.
func (s ByteSet) ASCII() ASCIISet {
	return ASCIISet{s[0], s[1]}
}

// Len returns the number of members in the set.
func (s ByteSet) Len() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

func (s ByteSet) String() string {
	var buf strings.Builder
	for i := 0; i < 256; i++ {
		if s.Contains(byte(i)) {
			buf.WriteByte(byte(i))
		}
	}
	m := buf.String()
	if len(m) > 128 {
		return fmt.Sprintf("not(%v)", s.Complement())
	}
	return fmt.Sprintf("%q", m)
}

// Contains reports whether the set holds the byte b.
// It is always false for b outside the ASCII range.
func (s ASCIISet) Contains(b byte) bool {
	return b < asciiLen && s[b>>6]&(1<<(b&63)) != 0
}

// Add returns the set with b added. Bytes outside the
// ASCII range are ignored.
func (s ASCIISet) Add(b byte) ASCIISet {
	if b >= asciiLen {
		return s
	}
	s[b>>6] |= 1 << (b & 63)
	return s
}

// Remove returns the set with b removed.
func (s ASCIISet) Remove(b byte) ASCIISet {
	if b >= asciiLen {
		return s
	}
	s[b>>6] &^= 1 << (b & 63)
	return s
}

// AddBytes returns the set with every ASCII byte of bs added.
func (s ASCIISet) AddBytes(bs []byte) ASCIISet {
	for _, b := range bs {
		s = s.Add(b)
	}
	return s
}

// RemoveBytes returns the set with every byte of bs removed.
func (s ASCIISet) RemoveBytes(bs []byte) ASCIISet {
	for _, b := range bs {
		s = s.Remove(b)
	}
	return s
}

// AddString returns the set with every ASCII byte of str added.
func (s ASCIISet) AddString(str string) ASCIISet {
	for i := 0; i < len(str); i++ {
		s = s.Add(str[i])
	}
	return s
}

// AddRange returns the set with every byte in [lo, hi] added.
func (s ASCIISet) AddRange(lo, hi byte) ASCIISet {
	for b := int(lo); b <= int(hi); b++ {
		s = s.Add(byte(b))
	}
	return s
}

// RemoveRange returns the set with every byte in [lo, hi] removed.
func (s ASCIISet) RemoveRange(lo, hi byte) ASCIISet {
	for b := int(lo); b <= int(hi); b++ {
		s = s.Remove(byte(b))
	}
	return s
}

// Union returns the union of s and t.
func (s ASCIISet) Union(t ASCIISet) ASCIISet {
	for i := range s {
		s[i] |= t[i]
	}
	return s
}

// Intersect returns the intersection of s and t.
func (s ASCIISet) Intersect(t ASCIISet) ASCIISet {
	for i := range s {
		s[i] &= t[i]
	}
	return s
}

// Complement returns the set of all ASCII characters not in s.
// The result stays within the ASCII domain.
func (s ASCIISet) Complement() ASCIISet {
	for i := range s {
		s[i] = ^s[i]
	}
	return s
}

// Difference returns the set of characters in s but not in t.
func (s ASCIISet) Difference(t ASCIISet) ASCIISet {
	return s.Intersect(t.Complement())
}

// Bytes widens the set to the full byte domain.
func (s ASCIISet) Bytes() ByteSet {
	return ByteSet{s[0], s[1], 0, 0}
}

// Len returns the number of members in the set.
func (s ASCIISet) Len() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

func (s ASCIISet) String() string {
	var buf strings.Builder
	for i := 0; i < asciiLen; i++ {
		if s.Contains(byte(i)) {
			buf.WriteByte(byte(i))
		}
	}
	m := buf.String()
	if len(m) > 64 {
		return fmt.Sprintf("not(%v)", s.Complement())
	}
	return fmt.Sprintf("%q", m)
}

package bset

// A Lane selects one of the up to 8 sets packed into a stack.
// Pass one of the Lane0-Lane7 constants to Contains; with a
// constant lane the lookup compiles down to a single load,
// shift and mask.
type Lane uint8

// Lane indices, in the order the sets were added to the stack.
// Callers usually give them meaningful names:
//
//	const (
//		digits     = bset.Lane0
//		alphabetic = bset.Lane1
//	)
const (
	Lane0 Lane = iota
	Lane1
	Lane2
	Lane3
	Lane4
	Lane5
	Lane6
	Lane7
)

// maxLanes is the number of sets a stack can hold.
const maxLanes = 8

// ByteStack packs up to 8 byte sets into one structure for fast
// lookup. Byte i of the backing array holds, one per bit, the
// membership flags of value i in each of the 8 lanes, so testing
// any lane costs one load regardless of how many sets are stacked.
//
// The memory size is fixed at 8 times that of a single ByteSet and
// does not grow as sets are added. Lanes never populated by AddSet
// are empty: querying them reports false for every byte.
//
// The zero value is an empty stack. Like sets, stacks are immutable
// values, intended to be assembled once in a package-level var.
type ByteStack struct {
	masks [256]uint8
	used  uint8
}

// ASCIIStack packs up to 8 ASCII sets into one structure for fast
// lookup. See ByteStack for the layout; the only difference is the
// halved domain and the range check on lookup.
type ASCIIStack struct {
	masks [asciiLen]uint8
	used  uint8
}

// AddSet returns the stack with set packed into the next free lane.
// The first set added is queried with Lane0, the second with Lane1,
// and so on. It panics if the stack already holds 8 sets; since
// stacks are meant to be built in package-level vars, such a panic
// surfaces at program start.
func (s ByteStack) AddSet(set ByteSet) ByteStack {
	if s.used == maxLanes {
		panic("bset: cannot stack more than 8 sets")
	}
	bit := uint8(1) << s.used
	for i := range s.masks {
		if set.Contains(byte(i)) {
			s.masks[i] |= bit
		}
	}
	s.used++
	return s
}

// AddASCIISet returns the stack with set packed into the next free
// lane, like AddSet. The bytes beyond the ASCII range are absent
// from that lane.
func (s ByteStack) AddASCIISet(set ASCIISet) ByteStack {
	return s.AddSet(set.Bytes())
}

// Contains reports whether the set at the given lane holds the byte b.
func (s ByteStack) Contains(lane Lane, b byte) bool {
	return s.masks[b]&(1<<lane) != 0
}

// Lanes returns the number of sets added to the stack.
func (s ByteStack) Lanes() int {
	return int(s.used)
}

// AddSet returns the stack with set packed into the next free lane.
// It panics if the stack already holds 8 sets.
func (s ASCIIStack) AddSet(set ASCIISet) ASCIIStack {
	if s.used == maxLanes {
		panic("bset: cannot stack more than 8 sets")
	}
	bit := uint8(1) << s.used
	for i := range s.masks {
		if set.Contains(byte(i)) {
			s.masks[i] |= bit
		}
	}
	s.used++
	return s
}

// Contains reports whether the set at the given lane holds the byte b.
// It is always false for b outside the ASCII range.
func (s ASCIIStack) Contains(lane Lane, b byte) bool {
	return b < asciiLen && s.masks[b]&(1<<lane) != 0
}

// Lanes returns the number of sets added to the stack.
func (s ASCIIStack) Lanes() int {
	return int(s.used)
}

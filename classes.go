package bset

// Commonly needed byte classes. Each is built with the ordinary
// builder methods, so for example Digits holds exactly the members
// of ByteSet{}.AddRange('0', '9').
var (
	// Lowercase letters ('a' - 'z').
	Lowercase = ByteSet{}.AddRange('a', 'z')
	// Uppercase letters ('A' - 'Z').
	Uppercase = ByteSet{}.AddRange('A', 'Z')
	// Numerical digits ('0' - '9').
	Digits = ByteSet{}.AddRange('0', '9')
	// Uppercase and lowercase letters.
	Alphabetic = Lowercase.Union(Uppercase)
	// Uppercase and lowercase letters and digits.
	Alphanumeric = Alphabetic.Union(Digits)

	// Space and tab.
	SpaceTab = MakeByteSet(" \t")
	// Line feed and carriage return.
	Newline = MakeByteSet("\r\n")
	// Space, tab, line feed and carriage return.
	Whitespace = SpaceTab.Union(Newline)

	// ASCII graphic characters ('!' - '~').
	Graphic = ByteSet{}.AddRange('!', '~')
	// Reserved URI characters (RFC 3986, section 2.2).
	URIReserved = MakeByteSet("!#$&'()*+,/:;=?@[]")
)

// The same classes, narrowed to the ASCII domain.
var (
	ASCIILowercase    = Lowercase.ASCII()
	ASCIIUppercase    = Uppercase.ASCII()
	ASCIIDigits       = Digits.ASCII()
	ASCIIAlphabetic   = Alphabetic.ASCII()
	ASCIIAlphanumeric = Alphanumeric.ASCII()
	ASCIISpaceTab     = SpaceTab.ASCII()
	ASCIINewline      = Newline.ASCII()
	ASCIIWhitespace   = Whitespace.ASCII()
	ASCIIGraphic      = Graphic.ASCII()
	ASCIIURIReserved  = URIReserved.ASCII()
)

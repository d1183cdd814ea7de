package str

// Uppercase converts ASCII letters to upper case in place. Multi-byte
// codepoints are left untouched; there is no Unicode case folding.
func (s *String) Uppercase() {
	for i, b := range s.buf {
		if b >= 'a' && b <= 'z' {
			s.buf[i] = b - ('a' - 'A')
		}
	}
}

// Lowercase converts ASCII letters to lower case in place. Multi-byte
// codepoints are left untouched.
func (s *String) Lowercase() {
	for i, b := range s.buf {
		if b >= 'A' && b <= 'Z' {
			s.buf[i] = b + ('a' - 'A')
		}
	}
}

// Capitalize upper-cases the first ASCII-alphabetic codepoint and
// stops. Leading multi-byte codepoints are skipped, not capitalized:
// Capitalize of "éhello" yields "éHello", even though 'h' is not the
// first visible character. Without any ASCII letter the content is
// unchanged.
func (s *String) Capitalize() {
	for i, b := range s.buf {
		if b >= 'a' && b <= 'z' {
			s.buf[i] = b - ('a' - 'A')
			return
		}
		if b >= 'A' && b <= 'Z' {
			return
		}
	}
}

// Trim removes ASCII whitespace (space, \t, \n, \r) from both ends.
func (s *String) Trim() {
	s.trim(true, true)
}

// TrimStart removes leading ASCII whitespace.
func (s *String) TrimStart() {
	s.trim(true, false)
}

// TrimEnd removes trailing ASCII whitespace.
func (s *String) TrimEnd() {
	s.trim(false, true)
}

// trim re-duplicates into an exactly-sized buffer only when the
// trimmed result differs in length from the original.
func (s *String) trim(start, end bool) {
	lo, hi := 0, len(s.buf)
	if start {
		for lo < hi && isASCIISpace(s.buf[lo]) {
			lo++
		}
	}
	if end {
		for hi > lo && isASCIISpace(s.buf[hi-1]) {
			hi--
		}
	}
	if lo == 0 && hi == len(s.buf) {
		return
	}
	s.buf = append([]byte(nil), s.buf[lo:hi]...)
}

func isASCIISpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

package str

// compareFunc compares one haystack byte against one needle byte.
type compareFunc func(a, b byte) bool

func byteEqual(a, b byte) bool {
	return a == b
}

// asciiCaseInsensitiveEqual folds ASCII letters before comparing.
// Bytes of multi-byte codepoints never fall in the ASCII letter
// range, so those still match exactly.
func asciiCaseInsensitiveEqual(a, b byte) bool {
	return asciiLower(a) == asciiLower(b)
}

func asciiLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// find returns the codepoint index of the first occurrence of needle
// in haystack under eq. An empty needle matches at codepoint 0.
// Candidate positions start only at codepoint boundaries; the
// codepoint index is tracked alongside the byte cursor so the result
// is codepoint-based.
func find(haystack, needle []byte, eq compareFunc) (int, bool) {
	if len(needle) == 0 {
		return 0, true
	}

	cp := 0
	for off := 0; off+len(needle) <= len(haystack); cp++ {
		if matchAt(haystack, needle, off, eq) {
			return cp, true
		}
		n, err := codepointByteLength(haystack[off])
		if err != nil {
			return 0, false
		}
		off += n
	}
	return 0, false
}

func matchAt(haystack, needle []byte, off int, eq compareFunc) bool {
	for i := range needle {
		if !eq(haystack[off+i], needle[i]) {
			return false
		}
	}
	return true
}

// IndexOf returns the codepoint index of the first exact occurrence
// of needle, or false when needle does not occur.
func (s *String) IndexOf(needle []byte) (int, bool) {
	return find(s.buf, needle, byteEqual)
}

// IndexOfIgnoreCase is IndexOf with ASCII-case-insensitive byte
// comparison. Case-insensitivity makes no difference beyond ASCII.
func (s *String) IndexOfIgnoreCase(needle []byte) (int, bool) {
	return find(s.buf, needle, asciiCaseInsensitiveEqual)
}

// Contains reports whether needle occurs in s.
func (s *String) Contains(needle []byte, ignoreCase bool) bool {
	var ok bool
	if ignoreCase {
		_, ok = s.IndexOfIgnoreCase(needle)
	} else {
		_, ok = s.IndexOf(needle)
	}
	return ok
}

// StartsWith reports whether the buffer begins with prefix, compared
// byte for byte.
func (s *String) StartsWith(prefix []byte) bool {
	return len(prefix) <= len(s.buf) && matchAt(s.buf, prefix, 0, byteEqual)
}

// EndsWith reports whether the buffer ends with suffix, compared byte
// for byte.
func (s *String) EndsWith(suffix []byte) bool {
	return len(suffix) <= len(s.buf) && matchAt(s.buf, suffix, len(s.buf)-len(suffix), byteEqual)
}

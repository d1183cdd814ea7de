package str

// String is an exclusively owned, growable byte buffer holding
// well-formed UTF-8 text, edited by codepoint index.
//
// No operation may leave the buffer malformed. Every mutation that
// changes the byte length installs a freshly allocated buffer; on
// failure the original content is untouched.
type String struct {
	buf []byte
}

// Empty returns a String with no content.
func Empty() *String {
	return &String{}
}

// FromCopy returns a String owning a copy of b. b must be well-formed
// UTF-8; constructors do not re-validate whole buffers.
func FromCopy(b []byte) *String {
	return &String{buf: append([]byte(nil), b...)}
}

// FromOwned returns a String that takes ownership of b without
// copying. The caller must not read or write b afterwards.
func FromOwned(b []byte) *String {
	return &String{buf: b}
}

// FromString returns a String holding a copy of s.
func FromString(s string) *String {
	return &String{buf: []byte(s)}
}

// Clone returns an independently owned copy.
func (s *String) Clone() *String {
	return FromCopy(s.buf)
}

// Len returns the number of codepoints. O(byte length); the count is
// not cached.
func (s *String) Len() int {
	return codepointCount(s.buf)
}

// ByteLen returns the number of bytes.
func (s *String) ByteLen() int {
	return len(s.buf)
}

// IsEmpty reports whether the buffer holds no bytes.
func (s *String) IsEmpty() bool {
	return len(s.buf) == 0
}

// Bytes returns the backing buffer as a read-only view. Callers must
// not mutate it; the next mutating operation invalidates it.
func (s *String) Bytes() []byte {
	return s.buf
}

// Text returns the content as a Go string copy.
func (s *String) Text() string {
	return string(s.buf)
}

// CharAt returns the encoded bytes of the codepoint at ordinal i, or
// false when i is out of range. The slice views the backing buffer.
func (s *String) CharAt(i int) ([]byte, bool) {
	if i < 0 {
		return nil, false
	}
	off, err := byteOffsetForCodepoint(s.buf, 0, 0, i)
	if err != nil || off >= len(s.buf) {
		return nil, false
	}
	n, err := codepointByteLength(s.buf[off])
	if err != nil {
		return nil, false
	}
	return s.buf[off : off+n], true
}

// ByteAt returns the raw byte at byte offset i. Byte offsets and
// codepoint indices are distinct spaces; callers must not mix them.
func (s *String) ByteAt(i int) (byte, bool) {
	if i < 0 || i >= len(s.buf) {
		return 0, false
	}
	return s.buf[i], true
}

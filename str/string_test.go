package str

import "testing"

func TestString_Constructors(t *testing.T) {
	if got := Empty().Text(); got != "" {
		t.Fatalf("Empty text=%q, want \"\"", got)
	}

	src := []byte("héllo")
	s := FromCopy(src)
	src[0] = 'x'
	if got, want := s.Text(), "héllo"; got != want {
		t.Fatalf("FromCopy text=%q, want %q (caller slice must not alias)", got, want)
	}

	owned := []byte("世界")
	if got, want := FromOwned(owned).Text(), "世界"; got != want {
		t.Fatalf("FromOwned text=%q, want %q", got, want)
	}

	if got, want := FromString("abc").Text(), "abc"; got != want {
		t.Fatalf("FromString text=%q, want %q", got, want)
	}
}

func TestString_Clone_IsIndependent(t *testing.T) {
	s := FromString("abc")
	c := s.Clone()

	if err := s.Append([]byte("d")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if got, want := c.Text(), "abc"; got != want {
		t.Fatalf("clone text=%q, want %q", got, want)
	}
}

func TestString_Lengths(t *testing.T) {
	cases := []struct {
		text    string
		cpLen   int
		byteLen int
	}{
		{text: "", cpLen: 0, byteLen: 0},
		{text: "abc", cpLen: 3, byteLen: 3},
		{text: "Café", cpLen: 4, byteLen: 5},
		{text: "世界", cpLen: 2, byteLen: 6},
		{text: "🌍", cpLen: 1, byteLen: 4},
	}

	for _, tc := range cases {
		s := FromString(tc.text)
		if got := s.Len(); got != tc.cpLen {
			t.Fatalf("Len(%q)=%d, want %d", tc.text, got, tc.cpLen)
		}
		if got := s.ByteLen(); got != tc.byteLen {
			t.Fatalf("ByteLen(%q)=%d, want %d", tc.text, got, tc.byteLen)
		}
		if got, want := s.IsEmpty(), tc.byteLen == 0; got != want {
			t.Fatalf("IsEmpty(%q)=%v, want %v", tc.text, got, want)
		}
	}
}

func TestString_CharAt(t *testing.T) {
	s := FromString("aé世🌍")

	cases := []struct {
		index int
		want  string
	}{
		{index: 0, want: "a"},
		{index: 1, want: "é"},
		{index: 2, want: "世"},
		{index: 3, want: "🌍"},
	}

	for _, tc := range cases {
		got, ok := s.CharAt(tc.index)
		if !ok {
			t.Fatalf("CharAt(%d): not ok", tc.index)
		}
		if string(got) != tc.want {
			t.Fatalf("CharAt(%d)=%q, want %q", tc.index, got, tc.want)
		}
	}

	if _, ok := s.CharAt(4); ok {
		t.Fatalf("CharAt(4): ok, want out of range")
	}
	if _, ok := s.CharAt(-1); ok {
		t.Fatalf("CharAt(-1): ok, want out of range")
	}
}

func TestString_ByteAt(t *testing.T) {
	s := FromString("é") // 0xC3 0xA9

	if got, ok := s.ByteAt(0); !ok || got != 0xC3 {
		t.Fatalf("ByteAt(0)=0x%02X ok=%v, want 0xC3 true", got, ok)
	}
	if got, ok := s.ByteAt(1); !ok || got != 0xA9 {
		t.Fatalf("ByteAt(1)=0x%02X ok=%v, want 0xA9 true", got, ok)
	}
	if _, ok := s.ByteAt(2); ok {
		t.Fatalf("ByteAt(2): ok, want out of range")
	}
	if _, ok := s.ByteAt(-1); ok {
		t.Fatalf("ByteAt(-1): ok, want out of range")
	}
}

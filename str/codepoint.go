package str

import "fmt"

// codepointByteLength returns how many bytes the codepoint starting
// with lead occupies, per the UTF-8 leading-byte patterns:
// 0xxxxxxx -> 1, 110xxxxx -> 2, 1110xxxx -> 3, 11110xxx -> 4.
func codepointByteLength(lead byte) (int, error) {
	switch {
	case lead&0x80 == 0x00:
		return 1, nil
	case lead&0xE0 == 0xC0:
		return 2, nil
	case lead&0xF0 == 0xE0:
		return 3, nil
	case lead&0xF8 == 0xF0:
		return 4, nil
	default:
		return 0, fmt.Errorf("%w: 0x%02X", ErrInvalidLeadingByte, lead)
	}
}

// isContinuation reports whether b is a UTF-8 continuation byte
// (top two bits 10).
func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// byteOffsetForCodepoint scans forward codepoint-by-codepoint from a
// known anchor (byte offset startByte holds codepoint ordinal
// startIndex) until target is reached. target may address one past
// the last codepoint, which resolves to len(buf).
//
// Codepoint boundaries are not random-accessible, so this is
// O(target - startIndex) in codepoints scanned.
func byteOffsetForCodepoint(buf []byte, startByte, startIndex, target int) (int, error) {
	off := startByte
	for idx := startIndex; idx < target; idx++ {
		if off >= len(buf) {
			return 0, ErrIndexOutOfBounds
		}
		n, err := codepointByteLength(buf[off])
		if err != nil {
			return 0, err
		}
		off += n
	}
	return off, nil
}

// codepointCount counts codepoint boundaries in buf. O(len(buf)).
func codepointCount(buf []byte) int {
	n := 0
	for _, b := range buf {
		if !isContinuation(b) {
			n++
		}
	}
	return n
}

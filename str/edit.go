package str

import "fmt"

// Insert places text before the codepoint at index. index may equal
// Len(), which appends. Inserting nothing at a valid index is a
// no-op.
func (s *String) Insert(index int, text []byte) error {
	if index < 0 {
		return fmt.Errorf("insert at %d: %w", index, ErrIndexOutOfBounds)
	}
	off, err := byteOffsetForCodepoint(s.buf, 0, 0, index)
	if err != nil {
		return fmt.Errorf("insert at %d: %w", index, err)
	}
	if len(text) == 0 {
		return nil
	}

	next := make([]byte, 0, len(s.buf)+len(text))
	next = append(next, s.buf[:off]...)
	next = append(next, text...)
	next = append(next, s.buf[off:]...)
	s.buf = next
	return nil
}

// Append inserts text after the last codepoint.
func (s *String) Append(text []byte) error {
	return s.Insert(s.Len(), text)
}

// Prepend inserts text before the first codepoint.
func (s *String) Prepend(text []byte) error {
	return s.Insert(0, text)
}

// Remove deletes the codepoints in the half-open range [start, end).
// A zero-width range is a no-op.
func (s *String) Remove(start, end int) error {
	startOff, endOff, err := s.resolveRange(start, end)
	if err != nil {
		return fmt.Errorf("remove [%d, %d): %w", start, end, err)
	}
	if startOff == endOff {
		return nil
	}

	next := make([]byte, 0, len(s.buf)-(endOff-startOff))
	next = append(next, s.buf[:startOff]...)
	next = append(next, s.buf[endOff:]...)
	s.buf = next
	return nil
}

// Substring returns a new, independently owned String holding the
// codepoints in the half-open range [start, end). An empty range
// yields an empty String without touching the source.
func (s *String) Substring(start, end int) (*String, error) {
	startOff, endOff, err := s.resolveRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("substring [%d, %d): %w", start, end, err)
	}
	return FromCopy(s.buf[startOff:endOff]), nil
}

// Reverse reorders the codepoints back to front. Bytes inside each
// codepoint keep their order, so the result stays well-formed.
func (s *String) Reverse() error {
	if len(s.buf) < 2 {
		return nil
	}

	next := make([]byte, 0, len(s.buf))
	for p := len(s.buf) - 1; p >= 0; p-- {
		if isContinuation(s.buf[p]) {
			continue
		}
		n, err := codepointByteLength(s.buf[p])
		if err != nil {
			return fmt.Errorf("reverse: %w", err)
		}
		next = append(next, s.buf[p:p+n]...)
	}
	s.buf = next
	return nil
}

// resolveRange maps a half-open codepoint range to byte offsets,
// reusing the start offset as the anchor for the end scan.
func (s *String) resolveRange(start, end int) (startOff, endOff int, err error) {
	if start < 0 || end < start {
		return 0, 0, ErrIndexOutOfBounds
	}
	startOff, err = byteOffsetForCodepoint(s.buf, 0, 0, start)
	if err != nil {
		return 0, 0, err
	}
	endOff, err = byteOffsetForCodepoint(s.buf, startOff, start, end)
	if err != nil {
		return 0, 0, err
	}
	return startOff, endOff, nil
}

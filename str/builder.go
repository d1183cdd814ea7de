package str

import "fmt"

// Builder records an ordered sequence of deferred edits against a
// source String and applies them atomically to an independent copy.
//
// The operation log grows as needed. Payload slices are borrowed, not
// copied, until Build runs; callers must keep them unchanged until
// then. A Builder is single-shot: any use after Build panics.
type Builder struct {
	src      *String
	ops      []op
	consumed bool
}

// Edit returns a Builder whose Build starts from an independent copy
// of the content s holds at Build time.
func (s *String) Edit() *Builder {
	return &Builder{src: s}
}

func (b *Builder) record(o op) *Builder {
	if b.consumed {
		panic("str: Builder used after Build")
	}
	b.ops = append(b.ops, o)
	return b
}

// Trim records a Trim.
func (b *Builder) Trim() *Builder {
	return b.record(op{kind: opTrim})
}

// Uppercase records an Uppercase.
func (b *Builder) Uppercase() *Builder {
	return b.record(op{kind: opUppercase})
}

// Lowercase records a Lowercase.
func (b *Builder) Lowercase() *Builder {
	return b.record(op{kind: opLowercase})
}

// Capitalize records a Capitalize.
func (b *Builder) Capitalize() *Builder {
	return b.record(op{kind: opCapitalize})
}

// Reverse records a Reverse.
func (b *Builder) Reverse() *Builder {
	return b.record(op{kind: opReverse})
}

// Append records an Append of text.
func (b *Builder) Append(text []byte) *Builder {
	return b.record(op{kind: opAppend, text: text})
}

// Prepend records a Prepend of text.
func (b *Builder) Prepend(text []byte) *Builder {
	return b.record(op{kind: opPrepend, text: text})
}

// Insert records an Insert of text before codepoint index.
func (b *Builder) Insert(index int, text []byte) *Builder {
	return b.record(op{kind: opInsert, index: index, text: text})
}

// Remove records a Remove of the half-open codepoint range
// [start, end).
func (b *Builder) Remove(start, end int) *Builder {
	return b.record(op{kind: opRemove, start: start, end: end})
}

// Build duplicates the source and applies the recorded operations
// strictly in recording order. The first failing operation aborts the
// whole build and its error is returned; no partial result is ever
// observable. Build consumes the Builder.
func (b *Builder) Build() (*String, error) {
	if b.consumed {
		panic("str: Builder used after Build")
	}
	b.consumed = true

	out := b.src.Clone()
	for i, o := range b.ops {
		if err := applyOp(out, o); err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i, o.kind, err)
		}
	}
	return out, nil
}

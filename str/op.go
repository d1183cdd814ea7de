package str

import "fmt"

// opKind identifies one deferred edit kind.
type opKind uint8

const (
	opTrim opKind = iota
	opUppercase
	opLowercase
	opCapitalize
	opReverse
	opAppend
	opPrepend
	opInsert
	opRemove
)

func (k opKind) String() string {
	switch k {
	case opTrim:
		return "trim"
	case opUppercase:
		return "uppercase"
	case opLowercase:
		return "lowercase"
	case opCapitalize:
		return "capitalize"
	case opReverse:
		return "reverse"
	case opAppend:
		return "append"
	case opPrepend:
		return "prepend"
	case opInsert:
		return "insert"
	case opRemove:
		return "remove"
	default:
		return fmt.Sprintf("opKind(%d)", uint8(k))
	}
}

// op is one recorded edit: a kind plus whichever payload that kind
// uses. text is borrowed from the caller until the log is replayed.
type op struct {
	kind  opKind
	text  []byte
	index int
	start int
	end   int
}

// applyOp replays one recorded operation against s through the same
// primitives direct calls use, so replayed and direct edits have
// identical semantics.
func applyOp(s *String, o op) error {
	switch o.kind {
	case opTrim:
		s.Trim()
		return nil
	case opUppercase:
		s.Uppercase()
		return nil
	case opLowercase:
		s.Lowercase()
		return nil
	case opCapitalize:
		s.Capitalize()
		return nil
	case opReverse:
		return s.Reverse()
	case opAppend:
		return s.Append(o.text)
	case opPrepend:
		return s.Prepend(o.text)
	case opInsert:
		return s.Insert(o.index, o.text)
	case opRemove:
		return s.Remove(o.start, o.end)
	default:
		return fmt.Errorf("unknown operation kind %d", uint8(o.kind))
	}
}

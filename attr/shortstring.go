package attr

import (
	"unicode/utf8"

	"eiplink/eip"
)

// ShortString is a SHORT_STRING attribute: a 1-byte length prefix followed
// by that many text bytes, bounded by a declared capacity of at most 255.
// The stored value never exceeds the capacity; assignments that would are
// truncated, not rejected.
type ShortString struct {
	val string
	cap int
	acc AccessCode
}

// NewShortString creates a string attribute with the given capacity.  An
// initial value longer than the capacity is truncated.
func NewShortString(val string, acc AccessCode, capacity uint8) ShortString {
	s := ShortString{cap: int(capacity), acc: acc}
	s.Set(val)
	return s
}

func (s *ShortString) Get() string {
	return s.val
}

// Set replaces the stored value, truncating to the capacity if needed.
func (s *ShortString) Set(val string) {
	if len(val) > s.cap {
		logTruncated("ShortString.Set", len(val), s.cap)
		val = val[:s.cap]
	}
	s.val = val
}

// Size returns the serialized size in bytes, including the length prefix.
func (s *ShortString) Size() int {
	return 1 + len(s.val)
}

func (s *ShortString) Decode(c *eip.Cursor) error {
	if !s.acc.Settable() {
		return eip.ErrAttributeNotSettable
	}
	if c.Remaining() < 1 {
		return eip.ErrNotEnoughData
	}
	l := int(c.Byte())
	if c.Remaining() < l {
		return eip.ErrNotEnoughData
	}
	if s.cap < l {
		return eip.ErrTooMuchData
	}
	v := string(c.Take(l))
	if !utf8.ValidString(v) {
		return eip.ErrInvalidParameter
	}
	s.val = v
	return nil
}

func (s *ShortString) Encode(b *eip.Buffer) error {
	if !s.acc.Gettable() {
		return eip.ErrAttributeNotGettable
	}
	if b.Remaining() < s.Size() {
		return eip.ErrReplyDataTooLarge
	}
	b.PutByte(byte(len(s.val))) // length is bounded during assignment
	b.Put([]byte(s.val))
	return nil
}

package attr

import (
	"encoding/binary"

	"eiplink/eip"
)

// Value is the set of fixed-width integer types an Attr can hold.  The wire
// width is the type's natural width and encoding is little-endian.
type Value interface {
	~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32
}

// Attr is a single bounded-width attribute: a value plus the access mask
// gating its wire codec.  One generic holder covers all six CIP integer
// attribute types; the named aliases below carry the CIP spelling.
type Attr[T Value] struct {
	val T
	acc AccessCode
}

// CIP elementary attribute types.
type (
	Sint  = Attr[int8]
	Int   = Attr[int16]
	Dint  = Attr[int32]
	Usint = Attr[uint8]
	Uint  = Attr[uint16]
	Udint = Attr[uint32]
)

// New creates an attribute.  The access code applies to the wire interface
// only; Get and Set are never gated.
func New[T Value](val T, acc AccessCode) Attr[T] {
	return Attr[T]{val: val, acc: acc}
}

func (a *Attr[T]) Get() T {
	return a.val
}

func (a *Attr[T]) Set(val T) {
	a.val = val
}

// Size returns the serialized size in bytes.
func (a *Attr[T]) Size() int {
	return binary.Size(a.val)
}

func (a *Attr[T]) Decode(c *eip.Cursor) error {
	if !a.acc.Settable() {
		return eip.ErrAttributeNotSettable
	}
	n := a.Size()
	if c.Remaining() < n {
		return eip.ErrNotEnoughData
	}
	if _, err := binary.Decode(c.Take(n), binary.LittleEndian, &a.val); err != nil {
		return eip.ErrIncorrectData
	}
	return nil
}

func (a *Attr[T]) Encode(b *eip.Buffer) error {
	if !a.acc.Gettable() {
		return eip.ErrAttributeNotGettable
	}
	if b.Remaining() < a.Size() {
		return eip.ErrReplyDataTooLarge
	}
	p, err := binary.Append(nil, binary.LittleEndian, a.val)
	if err != nil {
		return eip.ErrIncorrectData
	}
	b.Put(p)
	return nil
}

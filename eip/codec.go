// Package eip implements the EtherNet/IP encapsulation layer: the codec
// contract shared by every wire type, the bounded cursor/buffer plumbing,
// the common packet item framing, and the session registry.
package eip

import "encoding/binary"

// Marshaler is implemented by every wire-representable value in the stack.
//
// Decode reads exactly the bytes the value occupies from the cursor and must
// check, in order: wire-read permission (if the value carries an access
// mask), then remaining bytes, and only then consume and mutate.  Encode is
// the mirror image: permission, then sink capacity, then write.  A failing
// check leaves the current field untouched; earlier sibling fields of a
// composite may already have been processed, so callers discard the whole
// object or sink on error.
type Marshaler interface {
	Decode(c *Cursor) error
	Encode(b *Buffer) error
}

// Cursor is a read position over a received byte sequence.  All multi-byte
// reads are little-endian unless the BE variant is used.  Reads consume;
// callers check Remaining before consuming, per the Marshaler contract.
type Cursor struct {
	b []byte
}

func NewCursor(p []byte) *Cursor {
	return &Cursor{b: p}
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.b)
}

// Byte consumes and returns one byte.
func (c *Cursor) Byte() byte {
	v := c.b[0]
	c.b = c.b[1:]
	return v
}

// Uint16 consumes a little-endian 16-bit value.
func (c *Cursor) Uint16() uint16 {
	v := binary.LittleEndian.Uint16(c.b[:2])
	c.b = c.b[2:]
	return v
}

// Uint32 consumes a little-endian 32-bit value.
func (c *Cursor) Uint32() uint32 {
	v := binary.LittleEndian.Uint32(c.b[:4])
	c.b = c.b[4:]
	return v
}

// Uint16BE consumes a big-endian 16-bit value (socket address fields only).
func (c *Cursor) Uint16BE() uint16 {
	v := binary.BigEndian.Uint16(c.b[:2])
	c.b = c.b[2:]
	return v
}

// Uint32BE consumes a big-endian 32-bit value (socket address fields only).
func (c *Cursor) Uint32BE() uint32 {
	v := binary.BigEndian.Uint32(c.b[:4])
	c.b = c.b[4:]
	return v
}

// Take consumes and returns the next n bytes.  The returned slice aliases
// the cursor's backing array and is only valid until the caller's input
// buffer is reused.
func (c *Cursor) Take(n int) []byte {
	v := c.b[:n]
	c.b = c.b[n:]
	return v
}

// Buffer is a growable byte sink with a hard capacity, the write-side
// counterpart of Cursor.  Encoders check Remaining before writing so that a
// reply can never outgrow the space the transport offered.
type Buffer struct {
	b   []byte
	cap int
}

func NewBuffer(capacity int) *Buffer {
	return &Buffer{cap: capacity}
}

// Remaining returns how many more bytes may be written.
func (w *Buffer) Remaining() int {
	return w.cap - len(w.b)
}

// Len returns the number of bytes written so far.
func (w *Buffer) Len() int {
	return len(w.b)
}

// Bytes returns the written bytes.
func (w *Buffer) Bytes() []byte {
	return w.b
}

func (w *Buffer) PutByte(v byte) {
	w.b = append(w.b, v)
}

func (w *Buffer) PutUint16(v uint16) {
	w.b = binary.LittleEndian.AppendUint16(w.b, v)
}

func (w *Buffer) PutUint32(v uint32) {
	w.b = binary.LittleEndian.AppendUint32(w.b, v)
}

func (w *Buffer) PutUint16BE(v uint16) {
	w.b = binary.BigEndian.AppendUint16(w.b, v)
}

func (w *Buffer) PutUint32BE(v uint32) {
	w.b = binary.BigEndian.AppendUint32(w.b, v)
}

func (w *Buffer) Put(p []byte) {
	w.b = append(w.b, p...)
}

// SplitOff reserves the next n bytes of buf for a header whose fields are
// not known yet and returns the remainder of the buffer as a separate sink
// for the body.  Once the body is written the caller encodes the header into
// buf and reunites the two with Unsplit.  Fails with ErrReplyDataTooLarge if
// the reservation does not fit.
//
// The resulting bytes are identical to computing the header up front and
// writing sequentially; the reservation only exists to avoid a length
// pre-pass.
func SplitOff(buf *Buffer, n int) (*Buffer, error) {
	if buf.Remaining() < n {
		return nil, ErrReplyDataTooLarge
	}
	rest := &Buffer{cap: buf.Remaining() - n}
	buf.cap = buf.Len() + n
	return rest, nil
}

// Unsplit appends a buffer previously produced by SplitOff back onto w,
// restoring the original capacity.
func (w *Buffer) Unsplit(rest *Buffer) {
	w.b = append(w.b, rest.b...)
	w.cap += rest.cap
}

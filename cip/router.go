package cip

import (
	"eiplink/eip"
	"eiplink/logging"
)

// AdditionalStatusMax is the hard cap on retained additional status words.
const AdditionalStatusMax = 2

// Logical segment tag byte layout: type in bits 7-5, level in bits 4-2,
// format in bits 1-0.  Only the logical segment type is routable here.
const (
	segTypeMask    byte = 0xe0
	segTypeLogical byte = 0x20

	segLevelMask      byte = 0x1c
	segLevelClass     byte = 0x00
	segLevelInstance  byte = 0x04
	segLevelAttribute byte = 0x10

	segFormatMask byte = 0x03
	segFormat8    byte = 0x00
	segFormat16   byte = 0x01
)

// Request is a message router request: a service code plus up to three
// logical address components.  A nil component is absent from the path.
// Instance is only meaningful when Class is present, and Attribute only when
// both are; the encoder enforces that ordering (see Encode).
type Request struct {
	Service   Service
	Class     *uint16
	Instance  *uint16
	Attribute *uint16
}

// Size returns the minimum serialized size: service byte plus segment count.
func (r *Request) Size() int {
	return 1 + 1
}

// decodeLogical reads the value and level of one logical segment whose tag
// byte has already been consumed.  Any malformed or truncated segment is a
// path segment error, not a plain data shortage.
func (r *Request) decodeLogical(c *eip.Cursor, seg byte) error {
	var val uint16
	switch seg & segFormatMask {
	case segFormat8:
		if c.Remaining() < 1 {
			return eip.ErrPathSegment
		}
		val = uint16(c.Byte())
	case segFormat16:
		if c.Remaining() < 3 {
			return eip.ErrPathSegment
		}
		c.Byte() // pad
		val = c.Uint16()
	default:
		return eip.ErrPathSegment
	}

	switch seg & segLevelMask {
	case segLevelClass:
		r.Class = &val
	case segLevelInstance:
		r.Instance = &val
	case segLevelAttribute:
		r.Attribute = &val
	default:
		return eip.ErrPathSegment
	}
	return nil
}

func (r *Request) Decode(c *eip.Cursor) error {
	if c.Remaining() < r.Size() {
		return eip.ErrPathSegment
	}

	r.Service = Service(c.Byte())
	n := int(c.Byte())
	for i := 0; i < n; i++ {
		if c.Remaining() < 1 {
			return eip.ErrPathSegment
		}
		seg := c.Byte()
		if seg&segTypeMask != segTypeLogical {
			return eip.ErrPathSegment
		}
		if err := r.decodeLogical(c, seg); err != nil {
			return err
		}
	}
	return nil
}

// encodeLogical writes one logical segment, choosing the 8-bit form when the
// value fits in a byte and the padded 16-bit form otherwise.
func encodeLogical(b *eip.Buffer, val uint16, level byte) error {
	if val <= 0xff {
		if b.Remaining() < 2 { // tag + value byte
			return eip.ErrReplyDataTooLarge
		}
		b.PutByte(segTypeLogical | segFormat8 | level)
		b.PutByte(byte(val))
		return nil
	}
	if b.Remaining() < 4 { // tag + pad + 16 bit value
		return eip.ErrReplyDataTooLarge
	}
	b.PutByte(segTypeLogical | segFormat16 | level)
	b.PutByte(0)
	b.PutUint16(val)
	return nil
}

// Encode writes the request.  Segments are emitted in the fixed order
// class, instance, attribute, and a later segment is only emitted when all
// earlier ones are present, so a stray Attribute with no Class/Instance is
// silently omitted from the wire.  The segment count is backfilled through a
// reservation once the segments have been sized.
func (r *Request) Encode(b *eip.Buffer) error {
	rest, err := eip.SplitOff(b, r.Size()) // room for service + count
	if err != nil {
		return err
	}

	var n byte
	if r.Class != nil {
		if err := encodeLogical(rest, *r.Class, segLevelClass); err != nil {
			return err
		}
		n++
		if r.Instance != nil {
			if err := encodeLogical(rest, *r.Instance, segLevelInstance); err != nil {
				return err
			}
			n++
			if r.Attribute != nil {
				if err := encodeLogical(rest, *r.Attribute, segLevelAttribute); err != nil {
					return err
				}
				n++
			}
		}
	}

	b.PutByte(byte(r.Service))
	b.PutByte(n)
	b.Unsplit(rest)
	return nil
}

// Response is a message router response: service, general status, and up to
// two additional 16-bit status words.
type Response struct {
	Service              Service
	GeneralStatus        eip.ErrorCode
	AdditionalStatusSize byte // number of 16 bit words
	AdditionalStatus     [AdditionalStatusMax]uint16
}

// Size returns the serialized size for the current AdditionalStatusSize.
func (r *Response) Size() int {
	return 1 + 1 + 1 + 1 + int(r.AdditionalStatusSize)*2
}

func maxSize() int {
	return 1 + 1 + 1 + 1 + AdditionalStatusMax*2
}

// SplitOff reserves the maximum response size in buf and returns the
// remainder for the service payload.
func (r *Response) SplitOff(buf *eip.Buffer) (*eip.Buffer, error) {
	return eip.SplitOff(buf, maxSize())
}

func (r *Response) Decode(c *eip.Cursor) error {
	r.AdditionalStatusSize = 0
	if c.Remaining() < r.Size() {
		return eip.ErrNotEnoughData
	}

	r.Service = Service(c.Byte())
	c.Byte() // reserved
	r.GeneralStatus = eip.ErrorCode(c.Byte())
	size := c.Byte()
	if c.Remaining() < int(size)*2 {
		return eip.ErrNotEnoughData
	}
	r.AdditionalStatusSize = size

	for i := byte(0); i < size; i++ {
		if i < AdditionalStatusMax {
			r.AdditionalStatus[i] = c.Uint16()
		} else {
			// Keep the stream position correct, drop the word.
			r.AdditionalStatusSize = AdditionalStatusMax
			logging.DebugLog("cip", "Response.Decode: too much additional status, discarded 0x%04x", c.Uint16())
		}
	}
	return nil
}

func (r *Response) Encode(b *eip.Buffer) error {
	if b.Remaining() < r.Size() {
		return eip.ErrReplyDataTooLarge
	}

	b.PutByte(byte(r.Service))
	b.PutByte(0)
	b.PutByte(byte(r.GeneralStatus))

	size := r.AdditionalStatusSize
	if size > AdditionalStatusMax {
		size = AdditionalStatusMax
		logging.DebugLog("cip", "Response.Encode: too much additional status, truncated to %d words", size)
	}

	b.PutByte(size)
	for i := byte(0); i < size; i++ {
		b.PutUint16(r.AdditionalStatus[i])
	}
	return nil
}

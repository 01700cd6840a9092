package eip

// SendData is the fixed prefix of the SendRRData and SendUnitData payloads:
// interface handle, timeout, and the common packet item count.
type SendData struct {
	InterfaceHandle uint32
	Timeout         uint16
	ItemCount       uint16
}

func (s *SendData) Size() int {
	return 4 + 2 + 2
}

// SplitOff reserves room for this prefix in buf and returns the remainder
// for the common packet items.
func (s *SendData) SplitOff(buf *Buffer) (*Buffer, error) {
	return SplitOff(buf, s.Size())
}

func (s *SendData) Decode(c *Cursor) error {
	if c.Remaining() < s.Size() {
		return ErrNotEnoughData
	}
	s.InterfaceHandle = c.Uint32()
	s.Timeout = c.Uint16()
	s.ItemCount = c.Uint16()
	return nil
}

func (s *SendData) Encode(b *Buffer) error {
	if b.Remaining() < s.Size() {
		return ErrReplyDataTooLarge
	}
	b.PutUint32(s.InterfaceHandle)
	b.PutUint16(s.Timeout)
	b.PutUint16(s.ItemCount)
	return nil
}

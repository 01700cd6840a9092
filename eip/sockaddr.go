package eip

const sockaddrZeroLen = 8

// AFInet is the address family carried in every socket address item.
const AFInet int16 = 2

// SocketAddress is the fixed 16-byte sockaddr_in record embedded in identity
// and connection items.  Unlike everything else on the wire it is encoded in
// network byte order.
type SocketAddress struct {
	Family int16
	Port   uint16
	Addr   uint32
	zero   [sockaddrZeroLen]byte
}

// ServerSocketAddress builds the record a device advertises for itself.
func ServerSocketAddress(addr uint32, port uint16) SocketAddress {
	return SocketAddress{Family: AFInet, Port: port, Addr: addr}
}

func (s *SocketAddress) Size() int {
	return 2 + 2 + 4 + sockaddrZeroLen
}

func (s *SocketAddress) Decode(c *Cursor) error {
	if c.Remaining() < s.Size() {
		return ErrNotEnoughData
	}
	s.Family = int16(c.Uint16BE())
	s.Port = c.Uint16BE()
	s.Addr = c.Uint32BE()
	copy(s.zero[:], c.Take(sockaddrZeroLen))
	return nil
}

func (s *SocketAddress) Encode(b *Buffer) error {
	if b.Remaining() < s.Size() {
		return ErrReplyDataTooLarge
	}
	b.PutUint16BE(uint16(s.Family))
	b.PutUint16BE(s.Port)
	b.PutUint32BE(s.Addr)
	b.Put(s.zero[:])
	return nil
}

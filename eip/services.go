package eip

const serviceNameLen = 16

// Capability flags advertised in the ListServices reply.
const (
	CapEIPEncapsulation uint16 = 0x0020
	CapSupportsClass01  uint16 = 0x0100
)

var serviceName = [serviceNameLen]byte{
	'C', 'o', 'm', 'm', 'u', 'n', 'i', 'c', 'a', 't', 'i', 'o', 'n', 's', 0, 0,
}

// Services is the single "Communications" item a device reports in response
// to a ListServices command.
type Services struct {
	Item                 Item
	EncapsulationVersion uint16
	Capability           uint16
	Name                 [serviceNameLen]byte
}

// ServerServices builds the item this stack advertises: unconnected CIP
// messaging over TCP.
func ServerServices() Services {
	return Services{
		Item:                 NewItem(ItemServices, 2+2+serviceNameLen),
		EncapsulationVersion: Version,
		Capability:           CapEIPEncapsulation | CapSupportsClass01,
		Name:                 serviceName,
	}
}

func (s *Services) size() int {
	return 2 + 2 + serviceNameLen // version + capability + name
}

// List writes a complete ListServices reply payload: the item count followed
// by this item.
func (s *Services) List(b *Buffer) error {
	if b.Remaining() < 2 { // room for item count
		return ErrReplyDataTooLarge
	}
	b.PutUint16(1)
	return s.Encode(b)
}

func (s *Services) Decode(c *Cursor) error {
	if err := s.Item.Decode(c); err != nil {
		return err
	}
	if c.Remaining() < s.size() {
		return ErrNotEnoughData
	}
	s.EncapsulationVersion = c.Uint16()
	s.Capability = c.Uint16()
	copy(s.Name[:], c.Take(serviceNameLen))
	return nil
}

func (s *Services) Encode(b *Buffer) error {
	if err := s.Item.Encode(b); err != nil {
		return err
	}
	if b.Remaining() < s.size() {
		return ErrReplyDataTooLarge
	}
	b.PutUint16(s.EncapsulationVersion)
	b.PutUint16(s.Capability)
	b.Put(s.Name[:])
	return nil
}

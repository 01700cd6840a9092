package eip

// Common Packet Format item identifiers per ODVA v1.4.
const (
	ItemNullAddress      uint16 = 0x0000
	ItemIdentity         uint16 = 0x000c
	ItemConnectedAddress uint16 = 0x00a1
	ItemConnectedData    uint16 = 0x00b1
	ItemUnconnectedData  uint16 = 0x00b2
	ItemServices         uint16 = 0x0100
	ItemSocketOT         uint16 = 0x8000
	ItemSocketTO         uint16 = 0x8001
	ItemSequencedAddress uint16 = 0x8002
)

// Item is a common packet item header: a type identifier and the byte length
// of the item data that follows it.  An item wrapping a variable-length body
// is built with Len zero, the body encoded into the continuation returned by
// SplitOff, and Len backfilled before the header itself is encoded.
type Item struct {
	TypeID uint16
	Len    int
}

func NewItem(typeID uint16, length int) Item {
	return Item{TypeID: typeID, Len: length}
}

// Size returns the serialized size of the header itself.
func (i *Item) Size() int {
	return 2 + 2 // type id + length
}

// SplitOff reserves room for this header in buf and returns the remainder
// for the item body.
func (i *Item) SplitOff(buf *Buffer) (*Buffer, error) {
	return SplitOff(buf, i.Size())
}

func (i *Item) Decode(c *Cursor) error {
	if c.Remaining() < i.Size() {
		return ErrNotEnoughData
	}
	i.TypeID = c.Uint16()
	i.Len = int(c.Uint16())
	return nil
}

func (i *Item) Encode(b *Buffer) error {
	if b.Remaining() < i.Size() || i.Len > 0xffff {
		return ErrReplyDataTooLarge
	}
	b.PutUint16(i.TypeID)
	b.PutUint16(uint16(i.Len))
	return nil
}

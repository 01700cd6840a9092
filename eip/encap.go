package eip

const contextLen = 8

// Version is the encapsulation protocol version this stack implements and
// reports during session registration.
const Version uint16 = 1

// Command is an encapsulation command code.
type Command uint16

const (
	CmdNOP               Command = 0x00
	CmdListServices      Command = 0x04
	CmdListIdentity      Command = 0x63
	CmdRegisterSession   Command = 0x65
	CmdUnregisterSession Command = 0x66
	CmdSendRRData        Command = 0x6f
)

// Encapsulation is the fixed 24-byte header carried in front of every
// EtherNet/IP message.  Len counts the payload bytes that follow the header.
type Encapsulation struct {
	Command Command
	Len     uint16
	Session uint32
	Status  uint32
	Context [contextLen]byte // opaque sender context, echoed in replies
	Options uint32
}

// Size returns the serialized header size (always 24).
func (e *Encapsulation) Size() int {
	return 2 + 2 + 4 + 4 + contextLen + 4
}

// SplitOff reserves room for the header in buf and returns the remainder
// for the payload, so Len can be backfilled once the payload is encoded.
func (e *Encapsulation) SplitOff(buf *Buffer) (*Buffer, error) {
	return SplitOff(buf, e.Size())
}

func (e *Encapsulation) Decode(c *Cursor) error {
	if c.Remaining() < e.Size() {
		return ErrNotEnoughData
	}
	e.Command = Command(c.Uint16())
	e.Len = c.Uint16()
	e.Session = c.Uint32()
	e.Status = c.Uint32()
	copy(e.Context[:], c.Take(contextLen))
	e.Options = c.Uint32()
	return nil
}

func (e *Encapsulation) Encode(b *Buffer) error {
	if b.Remaining() < e.Size() {
		return ErrReplyDataTooLarge
	}
	b.PutUint16(uint16(e.Command))
	b.PutUint16(e.Len)
	b.PutUint32(e.Session)
	b.PutUint32(e.Status)
	b.Put(e.Context[:])
	b.PutUint32(e.Options)
	return nil
}

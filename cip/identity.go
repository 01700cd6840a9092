package cip

import (
	"eiplink/attr"
	"eiplink/eip"
)

// Identity object attribute ids.
const (
	IdentityVendorID uint16 = iota + 1
	IdentityDeviceType
	IdentityProductCode
	IdentityRevision
	IdentityStatus
	IdentitySerialNumber
	IdentityProductName
	IdentityState
	IdentityConfigurationConsistencyValue
	IdentityHeartbeatInterval
	identityAttrEnd
)

// Identity is the standard Identity object (class 0x01): identification of
// and general information about the device.
type Identity struct {
	VendorID                      attr.Uint
	DeviceType                    attr.Uint
	ProductCode                   attr.Uint
	Revision                      attr.Uint // major in the low byte, minor in the high
	Status                        attr.Uint
	SerialNumber                  attr.Udint
	ProductName                   attr.ShortString
	State                         attr.Usint
	ConfigurationConsistencyValue attr.Uint
	HeartbeatInterval             attr.Usint
	SocketAddress                 eip.SocketAddress
}

// NewIdentity builds the server-side object: the fixed identification
// attributes are wire-readable only, the dynamic ones keep default
// read-write access.  A product name longer than 32 bytes is truncated.
func NewIdentity(vendorID, deviceType, productCode, revision uint16, serialNumber uint32, productName string) *Identity {
	return &Identity{
		VendorID:                      attr.New(vendorID, attr.Get),
		DeviceType:                    attr.New(deviceType, attr.Get),
		ProductCode:                   attr.New(productCode, attr.Get),
		Revision:                      attr.New(revision, attr.Get),
		Status:                        attr.New[uint16](0, attr.ReadWrite),
		SerialNumber:                  attr.New(serialNumber, attr.Get),
		ProductName:                   attr.NewShortString(productName, attr.Get, 32),
		State:                         attr.New[uint8](0, attr.ReadWrite),
		ConfigurationConsistencyValue: attr.New[uint16](0, attr.ReadWrite),
		HeartbeatInterval:             attr.New[uint8](0, attr.ReadWrite),
	}
}

// DefaultIdentity builds a fully read-write object, the client-side shape
// used to decode a peer's identity.
func DefaultIdentity() *Identity {
	return &Identity{
		VendorID:                      attr.New[uint16](0, attr.ReadWrite),
		DeviceType:                    attr.New[uint16](0, attr.ReadWrite),
		ProductCode:                   attr.New[uint16](0, attr.ReadWrite),
		Revision:                      attr.New[uint16](0, attr.ReadWrite),
		Status:                        attr.New[uint16](0, attr.ReadWrite),
		SerialNumber:                  attr.New[uint32](0, attr.ReadWrite),
		ProductName:                   attr.NewShortString("", attr.ReadWrite, 255),
		State:                         attr.New[uint8](0, attr.ReadWrite),
		ConfigurationConsistencyValue: attr.New[uint16](0, attr.ReadWrite),
		HeartbeatInterval:             attr.New[uint8](0, attr.ReadWrite),
	}
}

// EncodeAttribute writes one attribute, the Get_Attribute_Single payload.
func (id *Identity) EncodeAttribute(b *eip.Buffer, a uint16) error {
	switch a {
	case IdentityVendorID:
		return id.VendorID.Encode(b)
	case IdentityDeviceType:
		return id.DeviceType.Encode(b)
	case IdentityProductCode:
		return id.ProductCode.Encode(b)
	case IdentityRevision:
		return id.Revision.Encode(b)
	case IdentityStatus:
		return id.Status.Encode(b)
	case IdentitySerialNumber:
		return id.SerialNumber.Encode(b)
	case IdentityProductName:
		return id.ProductName.Encode(b)
	case IdentityState:
		return id.State.Encode(b)
	case IdentityConfigurationConsistencyValue:
		return id.ConfigurationConsistencyValue.Encode(b)
	case IdentityHeartbeatInterval:
		return id.HeartbeatInterval.Encode(b)
	}
	return eip.ErrAttributeNotSupported
}

// DecodeAttribute reads one attribute, the Set_Attribute_Single payload.
func (id *Identity) DecodeAttribute(c *eip.Cursor, a uint16) error {
	switch a {
	case IdentityVendorID:
		return id.VendorID.Decode(c)
	case IdentityDeviceType:
		return id.DeviceType.Decode(c)
	case IdentityProductCode:
		return id.ProductCode.Decode(c)
	case IdentityRevision:
		return id.Revision.Decode(c)
	case IdentityStatus:
		return id.Status.Decode(c)
	case IdentitySerialNumber:
		return id.SerialNumber.Decode(c)
	case IdentityProductName:
		return id.ProductName.Decode(c)
	case IdentityState:
		return id.State.Decode(c)
	case IdentityConfigurationConsistencyValue:
		return id.ConfigurationConsistencyValue.Decode(c)
	case IdentityHeartbeatInterval:
		return id.HeartbeatInterval.Decode(c)
	}
	return eip.ErrAttributeNotSupported
}

// Decode reads all attributes in id order.
func (id *Identity) Decode(c *eip.Cursor) error {
	for a := uint16(1); a < identityAttrEnd; a++ {
		if err := id.DecodeAttribute(c, a); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes all attributes in id order.
func (id *Identity) Encode(b *eip.Buffer) error {
	for a := uint16(1); a < identityAttrEnd; a++ {
		if err := id.EncodeAttribute(b, a); err != nil {
			return err
		}
	}
	return nil
}

// List writes the ListIdentity item for this device: the item header is
// reserved up front, the encapsulation version, socket address, and the
// mandatory attributes (through State) fill the continuation, and the
// header's length is backfilled before the halves are reunited.
func (id *Identity) List(b *eip.Buffer) error {
	item := eip.NewItem(eip.ItemIdentity, 0)
	rest, err := item.SplitOff(b)
	if err != nil {
		return err
	}

	if rest.Remaining() < 2 {
		return eip.ErrReplyDataTooLarge
	}
	rest.PutUint16(eip.Version)

	if err := id.SocketAddress.Encode(rest); err != nil {
		return err
	}

	for a := uint16(1); a <= IdentityState; a++ {
		if err := id.EncodeAttribute(rest, a); err != nil {
			return err
		}
	}

	item.Len = rest.Len()
	if err := item.Encode(b); err != nil {
		return err
	}
	b.Unsplit(rest)
	return nil
}

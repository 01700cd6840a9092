package cip

import (
	"eiplink/attr"
	"eiplink/eip"
)

// Class-level attribute ids common to the standard objects.
const (
	StaticRevision uint16 = iota + 1
	StaticMaxInstance
	StaticNumberOfInstances
	staticAttrEnd
)

// StaticAttr is the class-level attribute block shared by the standard
// objects: object revision, highest instance id, and instance count.
type StaticAttr struct {
	Revision          attr.Uint
	MaxInstance       attr.Uint
	NumberOfInstances attr.Uint
}

// NewStaticAttr builds the server-side block with wire-readable attributes.
func NewStaticAttr(revision, maxInstance, numberOfInstances uint16) *StaticAttr {
	return &StaticAttr{
		Revision:          attr.New(revision, attr.Get),
		MaxInstance:       attr.New(maxInstance, attr.Get),
		NumberOfInstances: attr.New(numberOfInstances, attr.Get),
	}
}

// DefaultStaticAttr builds a fully read-write block for decoding a peer's
// class attributes.
func DefaultStaticAttr() *StaticAttr {
	return &StaticAttr{
		Revision:          attr.New[uint16](0, attr.ReadWrite),
		MaxInstance:       attr.New[uint16](0, attr.ReadWrite),
		NumberOfInstances: attr.New[uint16](0, attr.ReadWrite),
	}
}

// EncodeAttribute writes one attribute, the Get_Attribute_Single payload.
func (s *StaticAttr) EncodeAttribute(b *eip.Buffer, a uint16) error {
	switch a {
	case StaticRevision:
		return s.Revision.Encode(b)
	case StaticMaxInstance:
		return s.MaxInstance.Encode(b)
	case StaticNumberOfInstances:
		return s.NumberOfInstances.Encode(b)
	}
	return eip.ErrAttributeNotSupported
}

// DecodeAttribute reads one attribute, the Set_Attribute_Single payload.
func (s *StaticAttr) DecodeAttribute(c *eip.Cursor, a uint16) error {
	switch a {
	case StaticRevision:
		return s.Revision.Decode(c)
	case StaticMaxInstance:
		return s.MaxInstance.Decode(c)
	case StaticNumberOfInstances:
		return s.NumberOfInstances.Decode(c)
	}
	return eip.ErrAttributeNotSupported
}

// Decode reads all attributes in id order.
func (s *StaticAttr) Decode(c *eip.Cursor) error {
	for a := uint16(1); a < staticAttrEnd; a++ {
		if err := s.DecodeAttribute(c, a); err != nil {
			return err
		}
	}
	return nil
}

// Encode writes all attributes in id order.
func (s *StaticAttr) Encode(b *eip.Buffer) error {
	for a := uint16(1); a < staticAttrEnd; a++ {
		if err := s.EncodeAttribute(b, a); err != nil {
			return err
		}
	}
	return nil
}

// Package cip implements the CIP message router codec and the standard
// object attribute blocks carried over the EtherNet/IP encapsulation.
package cip

// Service is a CIP service code.  Replies set the high bit (SvcResponse).
type Service byte

const (
	SvcGetAttributeAll    Service = 0x01
	SvcGetAttributeSingle Service = 0x0e
	SvcSetAttributeSingle Service = 0x0f
	SvcSetAttributeAll    Service = 0x10
	SvcNoOperation        Service = 0x17

	SvcResponse Service = 0x80
)

// DataType is a CIP elementary data type code.
type DataType byte

const (
	TypeBool        DataType = 0xc1 // boolean
	TypeSint        DataType = 0xc2 // signed 8 bit integer
	TypeInt         DataType = 0xc3 // signed 16 bit integer
	TypeDint        DataType = 0xc4 // signed 32 bit integer
	TypeLint        DataType = 0xc5 // signed 64 bit integer
	TypeUsint       DataType = 0xc6 // unsigned 8 bit integer
	TypeUint        DataType = 0xc7 // unsigned 16 bit integer
	TypeUdint       DataType = 0xc8 // unsigned 32 bit integer
	TypeUlint       DataType = 0xc9 // unsigned 64 bit integer
	TypeReal        DataType = 0xca // float 32 bit
	TypeLreal       DataType = 0xcb // float 64 bit
	TypeByte        DataType = 0xd1 // bit string 8 bit
	TypeWord        DataType = 0xd2 // bit string 16 bit
	TypeDword       DataType = 0xd3 // bit string 32 bit
	TypeLword       DataType = 0xd4 // bit string 64 bit
	TypeShortString DataType = 0xda // 1 byte length + 1 byte characters
	TypeEPath       DataType = 0xdc // encoded path segments
)

// Standard object class codes served by this stack.
const (
	ClassIdentity      uint16 = 0x01
	ClassMessageRouter uint16 = 0x02
)

// ID wraps a numeric path component for building requests, where nil means
// the component is absent.
func ID(v uint16) *uint16 {
	return &v
}

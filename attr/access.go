// Package attr provides the typed, access-controlled attribute holders that
// CIP objects are assembled from.  The access mask gates only wire access
// through Decode/Encode; a program owning the attribute reads and writes it
// directly through Get/Set regardless of the mask.
package attr

// AccessCode is a capability mask controlling wire access to an attribute.
type AccessCode byte

const (
	None AccessCode = 0x00
	Get  AccessCode = 0x01
	Set  AccessCode = 0x02

	// ReadWrite is the default access for attributes a peer may both
	// retrieve and change.
	ReadWrite AccessCode = Get | Set
)

// Gettable reports whether the attribute may be encoded onto the wire.
func (a AccessCode) Gettable() bool {
	return a&Get != 0
}

// Settable reports whether the attribute may be overwritten from the wire.
func (a AccessCode) Settable() bool {
	return a&Set != 0
}

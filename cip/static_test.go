package cip

import (
	"bytes"
	"testing"

	"eiplink/eip"
)

func TestStaticAttrEncode(t *testing.T) {
	s := NewStaticAttr(1, 1, 1)
	b := eip.NewBuffer(8)
	if err := s.Encode(b); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []byte{0x01, 0x00, 0x01, 0x00, 0x01, 0x00}
	if !bytes.Equal(b.Bytes(), want) {
		t.Errorf("Encode = % x, want % x", b.Bytes(), want)
	}
}

func TestStaticAttrDecode(t *testing.T) {
	s := DefaultStaticAttr()
	raw := []byte{0x02, 0x00, 0x07, 0x00, 0x03, 0x00}
	if err := s.Decode(eip.NewCursor(raw)); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := s.Revision.Get(); got != 2 {
		t.Errorf("Revision = %d, want 2", got)
	}
	if got := s.MaxInstance.Get(); got != 7 {
		t.Errorf("MaxInstance = %d, want 7", got)
	}
	if got := s.NumberOfInstances.Get(); got != 3 {
		t.Errorf("NumberOfInstances = %d, want 3", got)
	}
}

func TestStaticAttrSingle(t *testing.T) {
	s := NewStaticAttr(2, 1, 1)

	b := eip.NewBuffer(2)
	if err := s.EncodeAttribute(b, StaticRevision); err != nil {
		t.Fatalf("EncodeAttribute(Revision): %v", err)
	}
	if !bytes.Equal(b.Bytes(), []byte{0x02, 0x00}) {
		t.Errorf("EncodeAttribute = % x, want 02 00", b.Bytes())
	}

	if err := s.EncodeAttribute(eip.NewBuffer(2), staticAttrEnd); err != eip.ErrAttributeNotSupported {
		t.Errorf("EncodeAttribute(%d) = %v, want %v", staticAttrEnd, err, eip.ErrAttributeNotSupported)
	}
	if err := s.DecodeAttribute(eip.NewCursor([]byte{0x01, 0x00}), StaticRevision); err != eip.ErrAttributeNotSettable {
		t.Errorf("DecodeAttribute(Revision) = %v, want %v", err, eip.ErrAttributeNotSettable)
	}
}

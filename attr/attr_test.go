package attr

import (
	"bytes"
	"testing"

	"eiplink/eip"
)

func TestAttrRoundTrip(t *testing.T) {
	t.Run("Sint", func(t *testing.T) {
		a := New[int8](-2, ReadWrite)
		b := eip.NewBuffer(a.Size())
		if err := a.Encode(b); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if !bytes.Equal(b.Bytes(), []byte{0xfe}) {
			t.Errorf("Encode = % x, want fe", b.Bytes())
		}

		var d Sint = New[int8](0, ReadWrite)
		if err := d.Decode(eip.NewCursor(b.Bytes())); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if d.Get() != -2 {
			t.Errorf("Get() = %d, want -2", d.Get())
		}
	})

	t.Run("Int", func(t *testing.T) {
		a := New[int16](-2, ReadWrite)
		b := eip.NewBuffer(a.Size())
		if err := a.Encode(b); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if !bytes.Equal(b.Bytes(), []byte{0xfe, 0xff}) {
			t.Errorf("Encode = % x, want fe ff", b.Bytes())
		}

		var d Int = New[int16](0, ReadWrite)
		if err := d.Decode(eip.NewCursor(b.Bytes())); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if d.Get() != -2 {
			t.Errorf("Get() = %d, want -2", d.Get())
		}
	})

	t.Run("Dint", func(t *testing.T) {
		a := New[int32](-2, ReadWrite)
		b := eip.NewBuffer(a.Size())
		if err := a.Encode(b); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if !bytes.Equal(b.Bytes(), []byte{0xfe, 0xff, 0xff, 0xff}) {
			t.Errorf("Encode = % x, want fe ff ff ff", b.Bytes())
		}

		var d Dint = New[int32](0, ReadWrite)
		if err := d.Decode(eip.NewCursor(b.Bytes())); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if d.Get() != -2 {
			t.Errorf("Get() = %d, want -2", d.Get())
		}
	})

	t.Run("Udint", func(t *testing.T) {
		a := New[uint32](0x12345678, ReadWrite)
		b := eip.NewBuffer(a.Size())
		if err := a.Encode(b); err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if !bytes.Equal(b.Bytes(), []byte{0x78, 0x56, 0x34, 0x12}) {
			t.Errorf("Encode = % x, want 78 56 34 12", b.Bytes())
		}

		var d Udint = New[uint32](0, ReadWrite)
		if err := d.Decode(eip.NewCursor(b.Bytes())); err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if d.Get() != 0x12345678 {
			t.Errorf("Get() = 0x%08x, want 0x12345678", d.Get())
		}
	})
}

func TestAttrSize(t *testing.T) {
	u8 := New[uint8](0, Get)
	u16 := New[uint16](0, Get)
	u32 := New[uint32](0, Get)

	if got := u8.Size(); got != 1 {
		t.Errorf("Usint Size() = %d, want 1", got)
	}
	if got := u16.Size(); got != 2 {
		t.Errorf("Uint Size() = %d, want 2", got)
	}
	if got := u32.Size(); got != 4 {
		t.Errorf("Udint Size() = %d, want 4", got)
	}
}

func TestAttrAccess(t *testing.T) {
	t.Run("NotSettable", func(t *testing.T) {
		a := New[uint16](7, Get)
		err := a.Decode(eip.NewCursor([]byte{0x34, 0x12}))
		if err != eip.ErrAttributeNotSettable {
			t.Fatalf("Decode = %v, want %v", err, eip.ErrAttributeNotSettable)
		}
		if a.Get() != 7 {
			t.Errorf("value changed to %d on rejected Decode", a.Get())
		}
	})

	t.Run("NotGettable", func(t *testing.T) {
		a := New[uint16](7, Set)
		b := eip.NewBuffer(2)
		if err := a.Encode(b); err != eip.ErrAttributeNotGettable {
			t.Fatalf("Encode = %v, want %v", err, eip.ErrAttributeNotGettable)
		}
		if b.Len() != 0 {
			t.Errorf("rejected Encode wrote %d bytes", b.Len())
		}
	})

	// Get and Set bypass the wire access mask.
	t.Run("DirectAccess", func(t *testing.T) {
		a := New[uint16](7, None)
		a.Set(9)
		if a.Get() != 9 {
			t.Errorf("Get() = %d, want 9", a.Get())
		}
	})
}

func TestAttrBounds(t *testing.T) {
	a := New[uint32](0x11223344, ReadWrite)

	if err := a.Decode(eip.NewCursor([]byte{0x01, 0x02, 0x03})); err != eip.ErrNotEnoughData {
		t.Fatalf("Decode(3 bytes) = %v, want %v", err, eip.ErrNotEnoughData)
	}
	if a.Get() != 0x11223344 {
		t.Errorf("value changed to 0x%08x on failed Decode", a.Get())
	}

	if err := a.Encode(eip.NewBuffer(3)); err != eip.ErrReplyDataTooLarge {
		t.Errorf("Encode(3-byte buffer) = %v, want %v", err, eip.ErrReplyDataTooLarge)
	}
}

func TestAccessCode(t *testing.T) {
	tests := []struct {
		acc      AccessCode
		gettable bool
		settable bool
	}{
		{None, false, false},
		{Get, true, false},
		{Set, false, true},
		{ReadWrite, true, true},
	}

	for _, tc := range tests {
		if got := tc.acc.Gettable(); got != tc.gettable {
			t.Errorf("AccessCode(0x%02x).Gettable() = %v, want %v", byte(tc.acc), got, tc.gettable)
		}
		if got := tc.acc.Settable(); got != tc.settable {
			t.Errorf("AccessCode(0x%02x).Settable() = %v, want %v", byte(tc.acc), got, tc.settable)
		}
	}
}

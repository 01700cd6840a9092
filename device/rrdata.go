package device

import (
	"eiplink/cip"
	"eiplink/eip"
	"eiplink/logging"
)

// sendRRData unwraps a SendRRData payload (send-data prefix + common packet
// items), routes the CIP request inside the unconnected data item, and wraps
// the message router response back into the same framing.
func (d *Device) sendRRData(enc *eip.Encapsulation, payload []byte) []byte {
	cur := eip.NewCursor(payload)

	var sd eip.SendData
	if err := sd.Decode(cur); err != nil {
		return encapReply(enc, enc.Session, eip.ErrIncorrectData, nil)
	}

	// Find the unconnected data item; address items are skipped over.
	var request []byte
	for i := uint16(0); i < sd.ItemCount; i++ {
		var item eip.Item
		if err := item.Decode(cur); err != nil {
			return encapReply(enc, enc.Session, eip.ErrIncorrectData, nil)
		}
		if cur.Remaining() < item.Len {
			return encapReply(enc, enc.Session, eip.ErrIncorrectData, nil)
		}
		data := cur.Take(item.Len)
		if item.TypeID == eip.ItemUnconnectedData {
			request = data
		}
	}
	if request == nil {
		return encapReply(enc, enc.Session, eip.ErrIncorrectData, nil)
	}

	reqCur := eip.NewCursor(request)
	var req cip.Request
	decodeErr := req.Decode(reqCur)

	// Route the service against the object dictionary.  The response
	// carries the outcome in its general status; a decode failure is
	// reported the same way rather than at the encapsulation level.
	body := eip.NewBuffer(replyCap)
	status := decodeErr
	if decodeErr == nil {
		status = d.routeService(&req, reqCur, body)
	}
	if status != nil {
		logging.DebugLog("cip", "service 0x%02X failed: %v", byte(req.Service), status)
	}

	resp := cip.Response{
		Service:       req.Service | cip.SvcResponse,
		GeneralStatus: eip.StatusOf(status),
	}

	return encapReply(enc, enc.Session, eip.Success, func(b *eip.Buffer) error {
		sd := eip.SendData{ItemCount: 2}
		if err := sd.Encode(b); err != nil {
			return err
		}

		addr := eip.NewItem(eip.ItemNullAddress, 0)
		if err := addr.Encode(b); err != nil {
			return err
		}

		// The data item length is not known until the response and its
		// payload are encoded, so the header is reserved and backfilled.
		item := eip.NewItem(eip.ItemUnconnectedData, 0)
		inner, err := item.SplitOff(b)
		if err != nil {
			return err
		}
		if err := resp.Encode(inner); err != nil {
			return err
		}
		if resp.GeneralStatus == eip.Success {
			if inner.Remaining() < body.Len() {
				return eip.ErrReplyDataTooLarge
			}
			inner.Put(body.Bytes())
		}
		item.Len = inner.Len()
		if err := item.Encode(b); err != nil {
			return err
		}
		b.Unsplit(inner)
		return nil
	})
}

// routeService applies one CIP service to the addressed object, writing any
// reply payload into b.  Failures come back as the status for the response.
func (d *Device) routeService(req *cip.Request, data *eip.Cursor, b *eip.Buffer) error {
	if req.Class == nil {
		return eip.ErrPathSegment
	}
	if req.Instance != nil && *req.Instance != 1 {
		return eip.ErrObjectDoesNotExist
	}

	switch *req.Class {
	case cip.ClassIdentity:
		switch req.Service {
		case cip.SvcGetAttributeSingle:
			if req.Attribute == nil {
				return eip.ErrPathSegment
			}
			return d.identity.EncodeAttribute(b, *req.Attribute)
		case cip.SvcSetAttributeSingle:
			if req.Attribute == nil {
				return eip.ErrPathSegment
			}
			return d.identity.DecodeAttribute(data, *req.Attribute)
		case cip.SvcGetAttributeAll:
			return d.identity.Encode(b)
		case cip.SvcNoOperation:
			return nil
		}
		return eip.ErrUnsupportedCommand

	case cip.ClassMessageRouter:
		switch req.Service {
		case cip.SvcGetAttributeSingle:
			if req.Attribute == nil {
				return eip.ErrPathSegment
			}
			return d.router.EncodeAttribute(b, *req.Attribute)
		case cip.SvcGetAttributeAll:
			return d.router.Encode(b)
		}
		return eip.ErrUnsupportedCommand
	}

	return eip.ErrObjectDoesNotExist
}

package device

import (
	"fmt"
	"io"
	"net"

	"eiplink/eip"
	"eiplink/logging"
)

// Largest encapsulation payload we accept, matching the 65535-24 frame cap
// with room for the header.
const maxPayload = 65511

// Capacity offered to a single reply frame.
const replyCap = 1024

// Serve accepts connections on ln and handles each in its own goroutine
// until Accept fails (typically because the listener was closed).
func (d *Device) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return fmt.Errorf("Serve: accept failed: %w", err)
		}
		go d.handleConn(conn)
	}
}

// handleConn runs the encapsulation request/reply loop for one connection.
// Sessions registered on this connection are torn down when it ends.
func (d *Device) handleConn(conn net.Conn) {
	defer conn.Close()

	remote := conn.RemoteAddr().String()
	logging.DebugLog("server", "accepted connection from %s", remote)
	d.event(remote, "connected")

	var sessions []uint32
	defer func() {
		d.mu.Lock()
		for _, id := range sessions {
			if err := d.session.Unregister(id); err == nil {
				d.event(remote, "session 0x%08X released", id)
			}
		}
		d.mu.Unlock()
		logging.DebugLog("server", "connection from %s closed", remote)
		d.event(remote, "disconnected")
	}()

	header := make([]byte, 24)
	for {
		if _, err := io.ReadFull(conn, header); err != nil {
			if err != io.EOF {
				logging.DebugError("server", "read header", err)
			}
			return
		}

		var enc eip.Encapsulation
		if err := enc.Decode(eip.NewCursor(header)); err != nil {
			logging.DebugError("server", "decode header", err)
			return
		}
		if enc.Len > maxPayload {
			logging.DebugLog("server", "RX excessive payload length: %d", enc.Len)
			return
		}

		payload := make([]byte, enc.Len)
		if _, err := io.ReadFull(conn, payload); err != nil {
			logging.DebugError("server", "read payload", err)
			return
		}
		logging.DebugRX("eip", append(header, payload...))

		reply, registered := d.dispatch(&enc, payload, remote)
		if registered != 0 {
			sessions = append(sessions, registered)
		}
		if reply != nil {
			logging.DebugTX("eip", reply)
			if _, err := conn.Write(reply); err != nil {
				logging.DebugError("server", "write reply", err)
				return
			}
		}

		if enc.Command == eip.CmdUnregisterSession {
			return
		}
	}
}

// encapReply frames a reply: the header is reserved up front, the payload
// encoded into the continuation, and the header length backfilled.
func encapReply(req *eip.Encapsulation, session uint32, status eip.ErrorCode, payload func(*eip.Buffer) error) []byte {
	out := eip.NewBuffer(24 + replyCap)
	enc := eip.Encapsulation{
		Command: req.Command,
		Session: session,
		Status:  uint32(status),
		Context: req.Context,
	}

	rest, err := enc.SplitOff(out)
	if err != nil {
		return nil
	}
	if payload != nil {
		if err := payload(rest); err != nil {
			logging.DebugError("server", "encode reply payload", err)
			rest = eip.NewBuffer(0)
			enc.Status = uint32(eip.StatusOf(err))
		}
	}

	enc.Len = uint16(rest.Len())
	if err := enc.Encode(out); err != nil {
		return nil
	}
	out.Unsplit(rest)
	return out.Bytes()
}

// dispatch routes one encapsulation command.  It returns the reply frame
// (nil when the command gets none) and the session id allocated by a
// successful RegisterSession, zero otherwise.
func (d *Device) dispatch(enc *eip.Encapsulation, payload []byte, remote string) ([]byte, uint32) {
	switch enc.Command {
	case eip.CmdNOP:
		return nil, 0

	case eip.CmdListIdentity:
		return encapReply(enc, enc.Session, eip.Success, func(b *eip.Buffer) error {
			if b.Remaining() < 2 { // item count
				return eip.ErrReplyDataTooLarge
			}
			b.PutUint16(1)
			return d.identity.List(b)
		}), 0

	case eip.CmdListServices:
		return encapReply(enc, enc.Session, eip.Success, func(b *eip.Buffer) error {
			return d.services.List(b)
		}), 0

	case eip.CmdRegisterSession:
		body := eip.NewBuffer(4)
		d.mu.Lock()
		id, err := d.session.Register(eip.NewCursor(payload), body)
		d.mu.Unlock()

		status := eip.StatusOf(err)
		reply := encapReply(enc, id, status, func(b *eip.Buffer) error {
			if b.Remaining() < body.Len() {
				return eip.ErrReplyDataTooLarge
			}
			b.Put(body.Bytes())
			return nil
		})
		if err == nil {
			d.event(remote, "session 0x%08X registered", id)
			return reply, id
		}
		logging.DebugLog("session", "register failed for %s: %v", remote, err)
		return reply, 0

	case eip.CmdUnregisterSession:
		d.mu.Lock()
		err := d.session.Unregister(enc.Session)
		d.mu.Unlock()
		if err != nil {
			logging.DebugLog("session", "unregister unknown session 0x%08X from %s", enc.Session, remote)
		} else {
			d.event(remote, "session 0x%08X unregistered", enc.Session)
		}
		// UnregisterSession gets no reply; the connection closes.
		return nil, 0

	case eip.CmdSendRRData:
		d.mu.Lock()
		valid := d.session.Check(enc.Session)
		d.mu.Unlock()
		if !valid {
			return encapReply(enc, enc.Session, eip.ErrInvalidSession, nil), 0
		}
		return d.sendRRData(enc, payload), 0
	}

	logging.DebugLog("server", "unsupported command 0x%02X from %s", uint16(enc.Command), remote)
	return encapReply(enc, enc.Session, eip.ErrUnsupportedCommand, nil), 0
}

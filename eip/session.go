package eip

// Session allocates and tracks the session identifiers handed out during
// connection registration.  The registry performs no locking of its own: it
// is process-duration mutable state, and a caller sharing one registry
// across concurrent connection handlers must serialize access (one registry
// behind a mutex per listening endpoint, or one per single-threaded loop).
type Session struct {
	id  uint32
	set map[uint32]struct{}
}

func NewSession() *Session {
	return &Session{set: make(map[uint32]struct{})}
}

// Register handles a RegisterSession request: it reads the requested
// protocol version and option flags from req, allocates a fresh session id,
// and writes the response body (our supported version, zero option flags)
// into res.
//
// Allocation advances a counter and skips ids still in use, so wraparound
// never reissues a live id.  Note the side-effect contract: when the
// requested version exceeds ours the id has still been allocated and the
// response body still written; the returned id is valid and the error is
// ErrUnsupportedVersion.  Callers must check the error rather than assume an
// error means nothing happened (the expected reaction is to send the reply
// and drop the connection).
func (s *Session) Register(req *Cursor, res *Buffer) (uint32, error) {
	const size = 2 + 2 // protocol version + option flags

	if req.Remaining() < size {
		return 0, ErrNotEnoughData
	}
	if res.Remaining() < size {
		return 0, ErrReplyDataTooLarge
	}

	version := req.Uint16()
	_ = req.Uint16() // option flags, unused

	if s.set == nil {
		s.set = make(map[uint32]struct{})
	}

	// Find a free session id.
	for {
		s.id++
		if _, used := s.set[s.id]; !used {
			s.set[s.id] = struct{}{}
			break
		}
	}

	res.PutUint16(Version)
	res.PutUint16(0) // option flags

	if version > Version {
		return s.id, ErrUnsupportedVersion
	}
	return s.id, nil
}

// Unregister removes id from the issued set.
func (s *Session) Unregister(id uint32) error {
	if _, ok := s.set[id]; !ok {
		return ErrInvalidSession
	}
	delete(s.set, id)
	return nil
}

// Check reports whether id is a currently issued session.
func (s *Session) Check(id uint32) bool {
	_, ok := s.set[id]
	return ok
}

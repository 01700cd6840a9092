package eip

// ErrorCode is a CIP/EIP general status code.  Zero means success; every
// non-zero value names a specific failure.  The codec layer returns these
// directly as Go errors, and the device layer copies them into response
// status fields, so the numeric value is always the wire value.
type ErrorCode byte

const (
	Success                   ErrorCode = 0x00
	ErrUnsupportedCommand     ErrorCode = 0x01
	ErrInsufficientMemory     ErrorCode = 0x02
	ErrIncorrectData          ErrorCode = 0x03
	ErrPathSegment            ErrorCode = 0x04
	ErrPathDestinationUnknown ErrorCode = 0x05
	ErrAttributeNotSettable   ErrorCode = 0x0e
	ErrReplyDataTooLarge      ErrorCode = 0x11
	ErrNotEnoughData          ErrorCode = 0x13
	ErrAttributeNotSupported  ErrorCode = 0x14
	ErrTooMuchData            ErrorCode = 0x15
	ErrObjectDoesNotExist     ErrorCode = 0x16
	ErrInvalidParameter       ErrorCode = 0x20
	ErrMessageFormat          ErrorCode = 0x24
	ErrAttributeNotGettable   ErrorCode = 0x2c
	ErrInvalidSession         ErrorCode = 0x64
	ErrUnsupportedVersion     ErrorCode = 0x69
)

func (e ErrorCode) Error() string {
	return e.String()
}

func (e ErrorCode) String() string {
	switch e {
	case Success:
		return "success"
	case ErrUnsupportedCommand:
		return "unsupported command"
	case ErrInsufficientMemory:
		return "insufficient memory"
	case ErrIncorrectData:
		return "incorrect data"
	case ErrPathSegment:
		return "path segment error"
	case ErrPathDestinationUnknown:
		return "path destination unknown"
	case ErrAttributeNotSettable:
		return "attribute not settable"
	case ErrReplyDataTooLarge:
		return "reply data too large"
	case ErrNotEnoughData:
		return "not enough data"
	case ErrAttributeNotSupported:
		return "attribute not supported"
	case ErrTooMuchData:
		return "too much data"
	case ErrObjectDoesNotExist:
		return "object does not exist"
	case ErrInvalidParameter:
		return "invalid parameter"
	case ErrMessageFormat:
		return "message format error"
	case ErrAttributeNotGettable:
		return "attribute not gettable"
	case ErrInvalidSession:
		return "invalid session"
	case ErrUnsupportedVersion:
		return "unsupported encapsulation version"
	default:
		return "unknown status"
	}
}

// StatusOf maps an error returned by a codec operation onto the wire status
// byte.  A nil error is Success; anything that is not an ErrorCode reports
// as a message format error.
func StatusOf(err error) ErrorCode {
	if err == nil {
		return Success
	}
	if code, ok := err.(ErrorCode); ok {
		return code
	}
	return ErrMessageFormat
}

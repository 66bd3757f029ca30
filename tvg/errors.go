package tvg

import "fmt"

// ErrorKind identifies the category of a decode failure or diagnostic.
type ErrorKind uint8

const (
	// ErrTruncatedInput means a read demanded more bytes than were available.
	ErrTruncatedInput ErrorKind = iota
	// ErrTrailingBytes means a subreader finished with bytes remaining that
	// its context forbids.
	ErrTrailingBytes
	// ErrMalformedPath means a path bitstream token was incomplete, its
	// padding was non-zero, or its point accounting didn't balance.
	ErrMalformedPath
	// ErrMalformedPalette means a color entry lacked a required tag or
	// carried an invalid UTF-16 name.
	ErrMalformedPalette
	// ErrMalformedThickness means a thickness profile's control points
	// were not monotonically increasing along the path.
	ErrMalformedThickness
	// ErrUnknownVersion means the envelope's version discriminator wasn't
	// in the supported set.
	ErrUnknownVersion
	// ErrNumericExtreme marks a number word in the formula's undefined
	// region. It is surfaced as a warning, never as an aborting error.
	ErrNumericExtreme
	// ErrResourceLimit means the configured allocation ceiling was
	// exceeded.
	ErrResourceLimit
)

// String returns the kind's stable name.
func (k ErrorKind) String() string {
	switch k {
	case ErrTruncatedInput:
		return "TruncatedInput"
	case ErrTrailingBytes:
		return "TrailingBytes"
	case ErrMalformedPath:
		return "MalformedPath"
	case ErrMalformedPalette:
		return "MalformedPalette"
	case ErrMalformedThickness:
		return "MalformedThickness"
	case ErrUnknownVersion:
		return "UnknownVersion"
	case ErrNumericExtreme:
		return "NumericExtreme"
	case ErrResourceLimit:
		return "ResourceLimit"
	default:
		return "Unknown"
	}
}

// DecodeError is the single error value the decoder returns on failure: a
// kind, a human-readable message, and the byte offset of the first
// unreadable or invalid byte relative to the start of the input given to
// Decode. Inside a ZLIB-encoded payload the offset is relative to the start
// of the decompressed payload instead.
type DecodeError struct {
	Kind    ErrorKind
	Message string
	Offset  int64
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("tvg: %s at offset %d: %s", e.Kind, e.Offset, e.Message)
}

func newErr(kind ErrorKind, offset int64, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, Message: fmt.Sprintf(format, args...), Offset: offset}
}

// Warning is a non-aborting diagnostic attached to a decode result, used
// for ErrNumericExtreme: a best-effort value was produced, but the source
// bytes fell outside the number format's calibrated range.
type Warning struct {
	Kind    ErrorKind
	Message string
	Offset  int64
}

func (w Warning) String() string {
	return fmt.Sprintf("%s at offset %d: %s", w.Kind, w.Offset, w.Message)
}

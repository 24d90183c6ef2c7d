// Package wire implements the binary frame grammar shared by the emberdb
// server and client: primitive codecs, the ValueType tagged union, and the
// ClientCommand/ServerResponse enums.
package wire

import (
	"errors"
	"fmt"
)

// UnknownPacketTypeError reports a discriminant byte that does not match any
// known ClientCommand or ServerResponse variant. The decoder has lost framing
// at this point and the connection must be closed.
type UnknownPacketTypeError struct {
	Tag byte
}

func (e *UnknownPacketTypeError) Error() string {
	return fmt.Sprintf("unknown packet type: %d", e.Tag)
}

// UnknownValueTypeError reports a tag byte that does not match any known
// ValueType variant, or an option<T> discriminant outside {0, 1}.
type UnknownValueTypeError struct {
	Tag byte
}

func (e *UnknownValueTypeError) Error() string {
	return fmt.Sprintf("unknown value type: %d", e.Tag)
}

// DecodedMessageError is the client-side wrapper for a server-rendered error
// string arriving in a ServerResponse.Error packet. Server errors are opaque
// on the wire, so the client never tries to recover structure from them.
type DecodedMessageError struct {
	Text string
}

func (e *DecodedMessageError) Error() string {
	return e.Text
}

// IsProtocolError reports whether err is a framing-level decode failure
// (unknown discriminant) as opposed to a transport or encoding failure.
func IsProtocolError(err error) bool {
	var unknownPacket *UnknownPacketTypeError
	var unknownValue *UnknownValueTypeError
	return errors.As(err, &unknownPacket) || errors.As(err, &unknownValue)
}

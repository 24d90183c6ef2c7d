package wire

// ResponseOp tags the variant of a ServerResponse. Discriminant order matches
// the canonical list: Error, Ok, Single, Bulk, OptInt, IntList.
type ResponseOp byte

const (
	RespError ResponseOp = iota
	RespOk
	RespSingle
	RespBulk
	RespOptInt
	RespIntList
)

// ServerResponse is every reply variant flattened into one struct, the
// response-side counterpart of ClientCommand.
type ServerResponse struct {
	Op ResponseOp

	Err    string
	Value  ValueType
	Values []ValueType
	OptInt *uint32
	Ints   []uint32
}

// Ok is the bare success response shared by commands with no payload.
var Ok = ServerResponse{Op: RespOk}

// ErrorResponse wraps msg as a ServerResponse::Error. Server errors are
// opaque on the wire: msg is the final rendered text, never a structured
// value.
func ErrorResponse(msg string) ServerResponse {
	return ServerResponse{Op: RespError, Err: msg}
}

// SingleResponse wraps one scalar.
func SingleResponse(v ValueType) ServerResponse {
	return ServerResponse{Op: RespSingle, Value: v}
}

// BulkResponse wraps zero or more scalars.
func BulkResponse(vs []ValueType) ServerResponse {
	return ServerResponse{Op: RespBulk, Values: vs}
}

// OptIntResponse wraps an optional integer, used for score/len/ttl replies.
func OptIntResponse(v *uint32) ServerResponse {
	return ServerResponse{Op: RespOptInt, OptInt: v}
}

// IntListResponse wraps an integer sequence.
func IntListResponse(vs []uint32) ServerResponse {
	return ServerResponse{Op: RespIntList, Ints: vs}
}

// AsError reports whether r is ServerResponse::Error and, if so, returns it
// wrapped as a DecodedMessageError for the caller to return up the stack.
func (r ServerResponse) AsError() error {
	if r.Op != RespError {
		return nil
	}
	return &DecodedMessageError{Text: r.Err}
}

// WriteServerResponse encodes the discriminant byte followed by the
// variant's payload.
func (e *Writer) WriteServerResponse(r ServerResponse) error {
	if err := e.WriteU8(byte(r.Op)); err != nil {
		return err
	}
	switch r.Op {
	case RespError:
		return e.WriteString(r.Err)
	case RespOk:
		return nil
	case RespSingle:
		return e.WriteValueType(r.Value)
	case RespBulk:
		return e.WriteValueSlice(r.Values)
	case RespOptInt:
		return e.WriteOptU32(r.OptInt)
	case RespIntList:
		return e.WriteU32Slice(r.Ints)
	default:
		return &UnknownPacketTypeError{Tag: byte(r.Op)}
	}
}

// ReadServerResponse decodes the discriminant byte and the matching
// variant's payload.
func (d *Reader) ReadServerResponse() (ServerResponse, error) {
	tag, err := d.ReadU8()
	if err != nil {
		return ServerResponse{}, err
	}
	switch ResponseOp(tag) {
	case RespError:
		msg, err := d.ReadString()
		return ServerResponse{Op: RespError, Err: msg}, err
	case RespOk:
		return ServerResponse{Op: RespOk}, nil
	case RespSingle:
		v, err := d.ReadValueType()
		return ServerResponse{Op: RespSingle, Value: v}, err
	case RespBulk:
		vs, err := d.ReadValueSlice()
		return ServerResponse{Op: RespBulk, Values: vs}, err
	case RespOptInt:
		v, err := d.ReadOptU32()
		return ServerResponse{Op: RespOptInt, OptInt: v}, err
	case RespIntList:
		vs, err := d.ReadU32Slice()
		return ServerResponse{Op: RespIntList, Ints: vs}, err
	default:
		return ServerResponse{}, &UnknownPacketTypeError{Tag: tag}
	}
}

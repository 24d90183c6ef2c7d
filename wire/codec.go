package wire

import (
	"encoding/binary"
	"io"
	"unicode/utf8"
)

// Reader decodes the primitive wire types from a byte stream. It keeps no
// buffering state of its own beyond what io.ReadFull needs: one read per
// primitive, no resynchronization on error.
type Reader struct {
	r   io.Reader
	buf [4]byte
}

// NewReader wraps r for primitive decoding.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadU8 reads a single byte.
func (d *Reader) ReadU8() (byte, error) {
	if _, err := io.ReadFull(d.r, d.buf[:1]); err != nil {
		return 0, err
	}
	return d.buf[0], nil
}

// ReadU32 reads a big-endian uint32.
func (d *Reader) ReadU32() (uint32, error) {
	if _, err := io.ReadFull(d.r, d.buf[:4]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(d.buf[:4]), nil
}

// ReadI32 reads a big-endian int32.
func (d *Reader) ReadI32() (int32, error) {
	v, err := d.ReadU32()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// ReadString reads a u32 length prefix followed by that many bytes of UTF-8.
func (d *Reader) ReadString() (string, error) {
	n, err := d.ReadU32()
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", &EncodingError{Reason: "invalid utf-8 in string payload"}
	}
	return string(buf), nil
}

// ReadStringSlice reads vec<string>.
func (d *Reader) ReadStringSlice() ([]string, error) {
	n, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, n)
	for i := uint32(0); i < n; i++ {
		s, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// ReadValueSlice reads vec<ValueType>.
func (d *Reader) ReadValueSlice() ([]ValueType, error) {
	n, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	out := make([]ValueType, 0, n)
	for i := uint32(0); i < n; i++ {
		v, err := d.ReadValueType()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadOptU32 reads option<u32>: a discriminant byte, 0 for absent, 1 for
// present followed by the u32.
func (d *Reader) ReadOptU32() (*uint32, error) {
	disc, err := d.ReadU8()
	if err != nil {
		return nil, err
	}
	switch disc {
	case 0:
		return nil, nil
	case 1:
		v, err := d.ReadU32()
		if err != nil {
			return nil, err
		}
		return &v, nil
	default:
		return nil, &UnknownValueTypeError{Tag: disc}
	}
}

// ReadU32Slice reads vec<u32>.
func (d *Reader) ReadU32Slice() ([]uint32, error) {
	n, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	out := make([]uint32, 0, n)
	for i := uint32(0); i < n; i++ {
		v, err := d.ReadU32()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// FieldPair is the wire pair<string, ValueType> used by HMSet/HMSetNx.
type FieldPair struct {
	Field string
	Value ValueType
}

// ReadFieldPairSlice reads vec<pair<string, ValueType>>.
func (d *Reader) ReadFieldPairSlice() ([]FieldPair, error) {
	n, err := d.ReadU32()
	if err != nil {
		return nil, err
	}
	out := make([]FieldPair, 0, n)
	for i := uint32(0); i < n; i++ {
		field, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		value, err := d.ReadValueType()
		if err != nil {
			return nil, err
		}
		out = append(out, FieldPair{Field: field, Value: value})
	}
	return out, nil
}

// Writer encodes the primitive wire types to a byte stream.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w for primitive encoding.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteU8 writes a single byte.
func (e *Writer) WriteU8(v byte) error {
	_, err := e.w.Write([]byte{v})
	return err
}

// WriteU32 writes a big-endian uint32.
func (e *Writer) WriteU32(v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := e.w.Write(buf[:])
	return err
}

// WriteI32 writes a big-endian int32.
func (e *Writer) WriteI32(v int32) error {
	return e.WriteU32(uint32(v))
}

// WriteString writes a u32 length prefix followed by the UTF-8 bytes.
func (e *Writer) WriteString(s string) error {
	if err := e.WriteU32(uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, s)
	return err
}

// WriteStringSlice writes vec<string>.
func (e *Writer) WriteStringSlice(ss []string) error {
	if err := e.WriteU32(uint32(len(ss))); err != nil {
		return err
	}
	for _, s := range ss {
		if err := e.WriteString(s); err != nil {
			return err
		}
	}
	return nil
}

// WriteValueSlice writes vec<ValueType>.
func (e *Writer) WriteValueSlice(vs []ValueType) error {
	if err := e.WriteU32(uint32(len(vs))); err != nil {
		return err
	}
	for _, v := range vs {
		if err := e.WriteValueType(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteOptU32 writes option<u32>.
func (e *Writer) WriteOptU32(v *uint32) error {
	if v == nil {
		return e.WriteU8(0)
	}
	if err := e.WriteU8(1); err != nil {
		return err
	}
	return e.WriteU32(*v)
}

// WriteU32Slice writes vec<u32>.
func (e *Writer) WriteU32Slice(vs []uint32) error {
	if err := e.WriteU32(uint32(len(vs))); err != nil {
		return err
	}
	for _, v := range vs {
		if err := e.WriteU32(v); err != nil {
			return err
		}
	}
	return nil
}

// WriteFieldPairSlice writes vec<pair<string, ValueType>>.
func (e *Writer) WriteFieldPairSlice(ps []FieldPair) error {
	if err := e.WriteU32(uint32(len(ps))); err != nil {
		return err
	}
	for _, p := range ps {
		if err := e.WriteString(p.Field); err != nil {
			return err
		}
		if err := e.WriteValueType(p.Value); err != nil {
			return err
		}
	}
	return nil
}

// EncodingError reports a byte sequence that fails UTF-8 validation while
// decoding a wire string.
type EncodingError struct {
	Reason string
}

func (e *EncodingError) Error() string {
	return e.Reason
}

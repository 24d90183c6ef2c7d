package wire

import "fmt"

// ValueKind tags the variant held by a ValueType.
type ValueKind byte

const (
	KindNone ValueKind = iota
	KindInt
	KindString
)

// ValueType is the scalar tagged union: None, Int(i32), or String. None is
// the designated absent/sentinel value — writing a key to None via Set is
// equivalent to deleting it.
type ValueType struct {
	Kind ValueKind
	Int  int32
	Str  string
}

// None is the absent/sentinel ValueType.
var None = ValueType{Kind: KindNone}

// Int wraps a signed 32-bit integer as a ValueType.
func Int(v int32) ValueType {
	return ValueType{Kind: KindInt, Int: v}
}

// String wraps a UTF-8 string as a ValueType.
func String(v string) ValueType {
	return ValueType{Kind: KindString, Str: v}
}

// IsNone reports whether v is the None sentinel.
func (v ValueType) IsNone() bool {
	return v.Kind == KindNone
}

// Describe renders v for logs and the REPL; it is not part of the wire format.
func (v ValueType) Describe() string {
	switch v.Kind {
	case KindNone:
		return "None"
	case KindInt:
		return fmt.Sprintf("Int(%d)", v.Int)
	case KindString:
		return fmt.Sprintf("String(%q)", v.Str)
	default:
		return fmt.Sprintf("ValueType(unknown kind %d)", v.Kind)
	}
}

// ReadValueType decodes one tag byte followed by the variant's payload.
func (d *Reader) ReadValueType() (ValueType, error) {
	tag, err := d.ReadU8()
	if err != nil {
		return ValueType{}, err
	}
	switch ValueKind(tag) {
	case KindNone:
		return None, nil
	case KindInt:
		v, err := d.ReadI32()
		if err != nil {
			return ValueType{}, err
		}
		return Int(v), nil
	case KindString:
		s, err := d.ReadString()
		if err != nil {
			return ValueType{}, err
		}
		return String(s), nil
	default:
		return ValueType{}, &UnknownValueTypeError{Tag: tag}
	}
}

// WriteValueType encodes the tag byte and the variant's payload.
func (e *Writer) WriteValueType(v ValueType) error {
	if err := e.WriteU8(byte(v.Kind)); err != nil {
		return err
	}
	switch v.Kind {
	case KindNone:
		return nil
	case KindInt:
		return e.WriteI32(v.Int)
	case KindString:
		return e.WriteString(v.Str)
	default:
		return fmt.Errorf("wire: cannot encode ValueType with unknown kind %d", v.Kind)
	}
}

package wire_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/emberdb/emberdb/wire"
)

func TestValueTypeRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   wire.ValueType
	}{
		{"none", wire.None},
		{"int zero", wire.Int(0)},
		{"int positive", wire.Int(42)},
		{"int negative", wire.Int(-7)},
		{"int min", wire.Int(-2147483648)},
		{"int max", wire.Int(2147483647)},
		{"string empty", wire.String("")},
		{"string ascii", wire.String("hello")},
		{"string utf8", wire.String("café ☃")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := wire.NewWriter(&buf).WriteValueType(tt.in); err != nil {
				t.Fatalf("write: %v", err)
			}
			got, err := wire.NewReader(&buf).ReadValueType()
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if got != tt.in {
				t.Errorf("round trip = %+v, want %+v", got, tt.in)
			}
		})
	}
}

func TestReadValueTypeUnknownTag(t *testing.T) {
	t.Parallel()

	buf := bytes.NewBuffer([]byte{0xFF})
	_, err := wire.NewReader(buf).ReadValueType()
	if err == nil {
		t.Fatal("expected error for unknown value tag")
	}
	var want *wire.UnknownValueTypeError
	if !errors.As(err, &want) {
		t.Errorf("error = %v, want *UnknownValueTypeError", err)
	}
}

func TestReadStringTruncatedFrame(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := wire.NewWriter(&buf).WriteU32(10); err != nil {
		t.Fatalf("write length prefix: %v", err)
	}
	buf.WriteString("abc")

	_, err := wire.NewReader(&buf).ReadString()
	if err == nil {
		t.Fatal("expected error for truncated string payload")
	}
}

func TestReadStringInvalidUTF8(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	bad := []byte{0xff, 0xfe, 0xfd}
	if err := wire.NewWriter(&buf).WriteU32(uint32(len(bad))); err != nil {
		t.Fatalf("write length prefix: %v", err)
	}
	buf.Write(bad)

	_, err := wire.NewReader(&buf).ReadString()
	if err == nil {
		t.Fatal("expected error for invalid utf-8")
	}
	var want *wire.EncodingError
	if !errors.As(err, &want) {
		t.Errorf("error = %v, want *EncodingError", err)
	}
}

func TestStringSliceRoundTrip(t *testing.T) {
	t.Parallel()

	in := []string{"alpha", "", "beta gamma", "éé"}
	var buf bytes.Buffer
	if err := wire.NewWriter(&buf).WriteStringSlice(in); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := wire.NewReader(&buf).ReadStringSlice()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("[%d] = %q, want %q", i, got[i], in[i])
		}
	}
}

func TestOptU32RoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := wire.NewWriter(&buf).WriteOptU32(nil); err != nil {
		t.Fatalf("write nil: %v", err)
	}
	got, err := wire.NewReader(&buf).ReadOptU32()
	if err != nil {
		t.Fatalf("read nil: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}

	v := uint32(99)
	buf.Reset()
	if err := wire.NewWriter(&buf).WriteOptU32(&v); err != nil {
		t.Fatalf("write present: %v", err)
	}
	got, err = wire.NewReader(&buf).ReadOptU32()
	if err != nil {
		t.Fatalf("read present: %v", err)
	}
	if got == nil || *got != v {
		t.Errorf("got %v, want %d", got, v)
	}
}

func TestFieldPairSliceRoundTrip(t *testing.T) {
	t.Parallel()

	in := []wire.FieldPair{
		{Field: "a", Value: wire.Int(1)},
		{Field: "b", Value: wire.String("x")},
		{Field: "c", Value: wire.None},
	}
	var buf bytes.Buffer
	if err := wire.NewWriter(&buf).WriteFieldPairSlice(in); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := wire.NewReader(&buf).ReadFieldPairSlice()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != len(in) {
		t.Fatalf("len = %d, want %d", len(got), len(in))
	}
	for i := range in {
		if got[i] != in[i] {
			t.Errorf("[%d] = %+v, want %+v", i, got[i], in[i])
		}
	}
}

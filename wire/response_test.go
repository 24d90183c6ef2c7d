package wire_test

import (
	"bytes"
	"testing"

	"github.com/emberdb/emberdb/wire"
)

func TestServerResponseRoundTrip(t *testing.T) {
	t.Parallel()

	five := uint32(5)
	tests := []struct {
		name string
		in   wire.ServerResponse
	}{
		{"Error", wire.ErrorResponse("bad key type")},
		{"Ok", wire.Ok},
		{"Single", wire.SingleResponse(wire.Int(42))},
		{"Bulk empty", wire.BulkResponse(nil)},
		{"Bulk", wire.BulkResponse([]wire.ValueType{wire.Int(1), wire.String("a"), wire.None})},
		{"OptInt nil", wire.OptIntResponse(nil)},
		{"OptInt present", wire.OptIntResponse(&five)},
		{"IntList", wire.IntListResponse([]uint32{1, 2, 3})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := wire.NewWriter(&buf).WriteServerResponse(tt.in); err != nil {
				t.Fatalf("write: %v", err)
			}
			got, err := wire.NewReader(&buf).ReadServerResponse()
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if got.Op != tt.in.Op || got.Err != tt.in.Err || got.Value != tt.in.Value {
				t.Errorf("round trip = %+v, want %+v", got, tt.in)
			}
		})
	}
}

func TestServerResponseAsError(t *testing.T) {
	t.Parallel()

	ok := wire.Ok
	if err := ok.AsError(); err != nil {
		t.Errorf("Ok.AsError() = %v, want nil", err)
	}

	e := wire.ErrorResponse("bad key type")
	err := e.AsError()
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if err.Error() != "bad key type" {
		t.Errorf("err.Error() = %q, want %q", err.Error(), "bad key type")
	}
}

func TestResponseDiscriminantOrder(t *testing.T) {
	t.Parallel()

	if wire.RespError != 0 || wire.RespOk != 1 || wire.RespSingle != 2 ||
		wire.RespBulk != 3 || wire.RespOptInt != 4 || wire.RespIntList != 5 {
		t.Fatal("ServerResponse discriminant order drifted from the wire contract")
	}
}

package wire_test

import (
	"bytes"
	"testing"

	"github.com/emberdb/emberdb/wire"
)

func TestClientCommandRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   wire.ClientCommand
	}{
		{"Get", wire.ClientCommand{Op: wire.OpGet, Key: "k"}},
		{"Set", wire.ClientCommand{Op: wire.OpSet, Key: "k", Value: wire.String("v")}},
		{"Del", wire.ClientCommand{Op: wire.OpDel, Keys: []string{"a", "b"}}},
		{"Expire", wire.ClientCommand{Op: wire.OpExpire, Key: "k", Expire: 30}},
		{"IncrBy", wire.ClientCommand{Op: wire.OpIncrBy, Key: "k", By: 5}},
		{"MSet", wire.ClientCommand{
			Op:     wire.OpMSet,
			Keys:   []string{"a", "b"},
			Values: []wire.ValueType{wire.Int(1), wire.String("x")},
		}},
		{"HSet", wire.ClientCommand{Op: wire.OpHSet, Key: "h", Field: "f", Value: wire.Int(3)}},
		{"HMSet", wire.ClientCommand{
			Op:  wire.OpHMSet,
			Key: "h",
			FieldPairs: []wire.FieldPair{
				{Field: "f1", Value: wire.Int(1)},
				{Field: "f2", Value: wire.String("s")},
			},
		}},
		{"ZAdd", wire.ClientCommand{Op: wire.OpZAdd, Key: "z", Score: 10, Member: "m"}},
		{"ZMScore", wire.ClientCommand{Op: wire.OpZMScore, Key: "z", Members: []string{"m1", "m2"}}},
		{"LLPushEx", wire.ClientCommand{Op: wire.OpLLPushEx, Key: "l", Value: wire.Int(7), Expire: 60}},
		{"LRange", wire.ClientCommand{Op: wire.OpLRange, Key: "l", Start: 0, End: 5}},
		{"SAdd", wire.ClientCommand{Op: wire.OpSAdd, Key: "s", Members: []string{"x", "y"}}},
		{"SPop", wire.ClientCommand{Op: wire.OpSPop, Key: "s", Count: 2}},
		{"Persist", wire.ClientCommand{Op: wire.OpPersist, Key: "k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := wire.NewWriter(&buf).WriteClientCommand(tt.in); err != nil {
				t.Fatalf("write: %v", err)
			}
			got, err := wire.NewReader(&buf).ReadClientCommand()
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if !commandsEqual(got, tt.in) {
				t.Errorf("round trip = %+v, want %+v", got, tt.in)
			}
		})
	}
}

func TestReadClientCommandUnknownDiscriminant(t *testing.T) {
	t.Parallel()

	buf := bytes.NewBuffer([]byte{0xFE})
	_, err := wire.NewReader(buf).ReadClientCommand()
	if err == nil {
		t.Fatal("expected error for unknown command discriminant")
	}
}

func TestClientCommandDiscriminantOrder(t *testing.T) {
	t.Parallel()

	// The wire contract pins discriminants to declaration order; a
	// regression here silently breaks every deployed client.
	if wire.OpExpire != 0 {
		t.Fatalf("OpExpire = %d, want 0", wire.OpExpire)
	}
	if wire.OpPersist != 1 {
		t.Fatalf("OpPersist = %d, want 1", wire.OpPersist)
	}
	if wire.OpDel != 3 {
		t.Fatalf("OpDel = %d, want 3", wire.OpDel)
	}
	if wire.OpDecr != 4 {
		t.Fatalf("OpDecr = %d, want 4", wire.OpDecr)
	}
	if wire.OpGet != 8 {
		t.Fatalf("OpGet = %d, want 8", wire.OpGet)
	}
	if wire.OpSet != 13 {
		t.Fatalf("OpSet = %d, want 13", wire.OpSet)
	}
}

func commandsEqual(a, b wire.ClientCommand) bool {
	if a.Op != b.Op || a.Key != b.Key || a.Value != b.Value ||
		a.By != b.By || a.Expire != b.Expire || a.Field != b.Field ||
		a.Score != b.Score || a.Member != b.Member ||
		a.Count != b.Count || a.Index != b.Index || a.Start != b.Start || a.End != b.End {
		return false
	}
	if !stringSlicesEqual(a.Keys, b.Keys) || !stringSlicesEqual(a.Fields, b.Fields) || !stringSlicesEqual(a.Members, b.Members) {
		return false
	}
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if a.Values[i] != b.Values[i] {
			return false
		}
	}
	if len(a.FieldPairs) != len(b.FieldPairs) {
		return false
	}
	for i := range a.FieldPairs {
		if a.FieldPairs[i] != b.FieldPairs[i] {
			return false
		}
	}
	return true
}

func stringSlicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

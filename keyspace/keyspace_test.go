package keyspace_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/emberdb/emberdb/keyspace"
	"github.com/emberdb/emberdb/wire"
)

func exec(t *testing.T, k *keyspace.Keyspace, cmd wire.ClientCommand) wire.ServerResponse {
	t.Helper()
	resp, err := keyspace.Execute(k, cmd)
	if err != nil {
		t.Fatalf("Execute(%s): unexpected error: %v", cmd.Name(), err)
	}
	return resp
}

func TestSetGetRoundTrip(t *testing.T) {
	t.Parallel()
	k := keyspace.New()

	got := exec(t, k, wire.ClientCommand{Op: wire.OpSet, Key: "k", Value: wire.String("v")})
	if got.Op != wire.RespOk {
		t.Fatalf("Set response = %+v, want Ok", got)
	}

	got = exec(t, k, wire.ClientCommand{Op: wire.OpGet, Key: "k"})
	if got.Op != wire.RespSingle || got.Value != wire.String("v") {
		t.Fatalf("Get response = %+v, want Single{String(v)}", got)
	}
}

func TestSetNoneDeletesKey(t *testing.T) {
	t.Parallel()
	k := keyspace.New()

	exec(t, k, wire.ClientCommand{Op: wire.OpSet, Key: "k", Value: wire.String("v")})
	exec(t, k, wire.ClientCommand{Op: wire.OpSet, Key: "k", Value: wire.None})

	got := exec(t, k, wire.ClientCommand{Op: wire.OpGet, Key: "k"})
	if got.Op != wire.RespSingle || !got.Value.IsNone() {
		t.Fatalf("Get after set-to-None = %+v, want Single{None}", got)
	}
}

func TestIncrOnAbsentKeyStartsAtOne(t *testing.T) {
	t.Parallel()
	k := keyspace.New()

	got := exec(t, k, wire.ClientCommand{Op: wire.OpIncr, Key: "n"})
	if got.Value != wire.Int(1) {
		t.Fatalf("first Incr = %+v, want Single{Int(1)}", got)
	}
	got = exec(t, k, wire.ClientCommand{Op: wire.OpIncr, Key: "n"})
	if got.Value != wire.Int(2) {
		t.Fatalf("second Incr = %+v, want Single{Int(2)}", got)
	}
}

func TestIncrByMaxThenIncrOverflows(t *testing.T) {
	t.Parallel()
	k := keyspace.New()

	resp := exec(t, k, wire.ClientCommand{Op: wire.OpIncrBy, Key: "n", By: 2147483647})
	if resp.Value != wire.Int(2147483647) {
		t.Fatalf("IncrBy(MAX) = %+v", resp)
	}

	_, err := keyspace.Execute(k, wire.ClientCommand{Op: wire.OpIncr, Key: "n"})
	if err == nil {
		t.Fatal("expected overflow error from Incr past i32::MAX")
	}
	var badState *keyspace.BadStateError
	if !errors.As(err, &badState) {
		t.Errorf("error = %v, want *BadStateError", err)
	}

	got := exec(t, k, wire.ClientCommand{Op: wire.OpGet, Key: "n"})
	if got.Value != wire.Int(2147483647) {
		t.Fatalf("value after failed overflow = %+v, want unchanged Int(MAX)", got)
	}
}

func TestIncrOnStringFailsWithBadKeyType(t *testing.T) {
	t.Parallel()
	k := keyspace.New()

	exec(t, k, wire.ClientCommand{Op: wire.OpSet, Key: "k", Value: wire.String("x")})

	_, err := keyspace.Execute(k, wire.ClientCommand{Op: wire.OpIncr, Key: "k"})
	if err == nil {
		t.Fatal("expected BadKeyType error")
	}
	var badKeyType *keyspace.BadKeyTypeError
	if !errors.As(err, &badKeyType) {
		t.Errorf("error = %v, want *BadKeyTypeError", err)
	}

	got := exec(t, k, wire.ClientCommand{Op: wire.OpGet, Key: "k"})
	if got.Value != wire.String("x") {
		t.Fatalf("value after failed Incr = %+v, want unchanged String(x)", got)
	}
}

func TestDelOnPartiallyPresentKeysLeavesKeyspaceEmpty(t *testing.T) {
	t.Parallel()
	k := keyspace.New()

	exec(t, k, wire.ClientCommand{Op: wire.OpSet, Key: "a", Value: wire.Int(1)})
	exec(t, k, wire.ClientCommand{Op: wire.OpSet, Key: "c", Value: wire.Int(3)})

	got := exec(t, k, wire.ClientCommand{Op: wire.OpDel, Keys: []string{"a", "b", "c"}})
	if got.Op != wire.RespOk {
		t.Fatalf("Del response = %+v, want Ok", got)
	}

	for _, key := range []string{"a", "b", "c"} {
		resp := exec(t, k, wire.ClientCommand{Op: wire.OpGet, Key: key})
		if !resp.Value.IsNone() {
			t.Errorf("Get(%q) after Del = %+v, want Single{None}", key, resp)
		}
	}
}

func TestHashSetGetAndIncr(t *testing.T) {
	t.Parallel()
	k := keyspace.New()

	exec(t, k, wire.ClientCommand{Op: wire.OpHSet, Key: "h", Field: "f", Value: wire.Int(1)})
	got := exec(t, k, wire.ClientCommand{Op: wire.OpHGet, Key: "h", Field: "f"})
	if got.Value != wire.Int(1) {
		t.Fatalf("HGet = %+v, want Single{Int(1)}", got)
	}

	got = exec(t, k, wire.ClientCommand{Op: wire.OpHIncrBy, Key: "h", Field: "f", By: 4})
	if got.Value != wire.Int(5) {
		t.Fatalf("HIncrBy = %+v, want Single{Int(5)}", got)
	}
}

func TestListPushPopRange(t *testing.T) {
	t.Parallel()
	k := keyspace.New()

	exec(t, k, wire.ClientCommand{Op: wire.OpLRPush, Key: "l", Value: wire.Int(1)})
	exec(t, k, wire.ClientCommand{Op: wire.OpLRPush, Key: "l", Value: wire.Int(2)})
	exec(t, k, wire.ClientCommand{Op: wire.OpLRPush, Key: "l", Value: wire.Int(3)})

	got := exec(t, k, wire.ClientCommand{Op: wire.OpLRange, Key: "l", Start: 0, End: 2})
	if len(got.Values) != 2 || got.Values[0] != wire.Int(1) || got.Values[1] != wire.Int(2) {
		t.Fatalf("LRange[0:2] = %+v, want [Int(1), Int(2)]", got.Values)
	}

	got = exec(t, k, wire.ClientCommand{Op: wire.OpLLPop, Key: "l", Count: 1})
	if len(got.Values) != 1 || got.Values[0] != wire.Int(1) {
		t.Fatalf("LLPop = %+v, want [Int(1)]", got.Values)
	}
}

func TestSetAddMembersAndMember(t *testing.T) {
	t.Parallel()
	k := keyspace.New()

	exec(t, k, wire.ClientCommand{Op: wire.OpSAdd, Key: "s", Members: []string{"a", "b"}})

	got := exec(t, k, wire.ClientCommand{Op: wire.OpSMember, Key: "s", Member: "a"})
	if got.Op != wire.RespOptInt || got.OptInt == nil || *got.OptInt != 1 {
		t.Fatalf("SMember(a) = %+v, want OptInt(1)", got)
	}

	got = exec(t, k, wire.ClientCommand{Op: wire.OpSMember, Key: "s", Member: "z"})
	if got.OptInt != nil {
		t.Fatalf("SMember(z) = %+v, want OptInt(None)", got)
	}
}

func TestZAddScoreAndPopMin(t *testing.T) {
	t.Parallel()
	k := keyspace.New()

	exec(t, k, wire.ClientCommand{Op: wire.OpZAdd, Key: "z", Score: 5, Member: "a"})
	exec(t, k, wire.ClientCommand{Op: wire.OpZAdd, Key: "z", Score: 1, Member: "b"})

	got := exec(t, k, wire.ClientCommand{Op: wire.OpZScore, Key: "z", Member: "a"})
	if got.OptInt == nil || *got.OptInt != 5 {
		t.Fatalf("ZScore(a) = %+v, want OptInt(5)", got)
	}

	got = exec(t, k, wire.ClientCommand{Op: wire.OpZPopMin, Key: "z", Count: 1})
	if len(got.Values) != 2 || got.Values[0] != wire.String("b") || got.Values[1] != wire.Int(1) {
		t.Fatalf("ZPopMin = %+v, want [String(b), Int(1)]", got.Values)
	}
}

// TestConcurrentIncrByIsLinearizable runs two connections worth of goroutines
// each issuing IncrBy{"c", 1} 1000 times and checks the final value is the
// exact sum, with no lost updates under concurrent access.
func TestConcurrentIncrByIsLinearizable(t *testing.T) {
	t.Parallel()
	k := keyspace.New()

	var wg sync.WaitGroup
	for g := 0; g < 2; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				if _, err := keyspace.Execute(k, wire.ClientCommand{Op: wire.OpIncrBy, Key: "c", By: 1}); err != nil {
					t.Errorf("IncrBy: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	got := exec(t, k, wire.ClientCommand{Op: wire.OpGet, Key: "c"})
	if got.Value != wire.Int(2000) {
		t.Fatalf("final value = %+v, want Single{Int(2000)}", got)
	}
}

package client_test

import (
	"net"
	"testing"

	"github.com/emberdb/emberdb/client"
	"github.com/emberdb/emberdb/keyspace"
	"github.com/emberdb/emberdb/session"
	"github.com/emberdb/emberdb/wire"
)

func newTestClient(t *testing.T) *client.Client {
	t.Helper()
	serverSide, clientSide := net.Pipe()
	ks := keyspace.New()
	s := session.New(serverSide, ks)
	go s.Serve()
	t.Cleanup(func() { clientSide.Close() })
	return client.New(clientSide)
}

func TestSetGetDel(t *testing.T) {
	t.Parallel()
	c := newTestClient(t)

	if err := c.Set("k", wire.String("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := c.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != wire.String("v") {
		t.Fatalf("Get = %+v, want String(v)", got)
	}

	if err := c.Del("k"); err != nil {
		t.Fatalf("Del: %v", err)
	}
	got, err = c.Get("k")
	if err != nil {
		t.Fatalf("Get after Del: %v", err)
	}
	if !got.IsNone() {
		t.Fatalf("Get after Del = %+v, want None", got)
	}
}

func TestGetDel(t *testing.T) {
	t.Parallel()
	c := newTestClient(t)

	if err := c.Set("k", wire.String("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := c.GetDel("k")
	if err != nil {
		t.Fatalf("GetDel: %v", err)
	}
	if got != wire.String("v") {
		t.Fatalf("GetDel = %+v, want String(v)", got)
	}

	got, err = c.Get("k")
	if err != nil {
		t.Fatalf("Get after GetDel: %v", err)
	}
	if !got.IsNone() {
		t.Fatalf("Get after GetDel = %+v, want None", got)
	}
}

func TestIncrReturnsEngineErrorOnStringKey(t *testing.T) {
	t.Parallel()
	c := newTestClient(t)

	if err := c.Set("k", wire.String("x")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, err := c.Incr("k"); err == nil {
		t.Fatal("Incr on string key: expected error")
	}
}

func TestHashRoundTrip(t *testing.T) {
	t.Parallel()
	c := newTestClient(t)

	if err := c.HSet("h", "f", wire.Int(1)); err != nil {
		t.Fatalf("HSet: %v", err)
	}
	got, err := c.HIncrBy("h", "f", 4)
	if err != nil {
		t.Fatalf("HIncrBy: %v", err)
	}
	if got != 5 {
		t.Fatalf("HIncrBy = %d, want 5", got)
	}
}

func TestHDelGet(t *testing.T) {
	t.Parallel()
	c := newTestClient(t)

	if err := c.HSet("h", "f", wire.Int(7)); err != nil {
		t.Fatalf("HSet: %v", err)
	}
	got, err := c.HDelGet("h", "f")
	if err != nil {
		t.Fatalf("HDelGet: %v", err)
	}
	if got != wire.Int(7) {
		t.Fatalf("HDelGet = %+v, want Int(7)", got)
	}

	exists, err := c.HExists("h", "f")
	if err != nil {
		t.Fatalf("HExists: %v", err)
	}
	if exists {
		t.Fatal("HExists after HDelGet = true, want false")
	}
}

func TestZSetRoundTrip(t *testing.T) {
	t.Parallel()
	c := newTestClient(t)

	if err := c.ZAdd("z", 5, "a"); err != nil {
		t.Fatalf("ZAdd: %v", err)
	}
	score, err := c.ZScore("z", "a")
	if err != nil {
		t.Fatalf("ZScore: %v", err)
	}
	if score == nil || *score != 5 {
		t.Fatalf("ZScore = %v, want 5", score)
	}

	newScore, err := c.ZDecrBy("z", 2, "a")
	if err != nil {
		t.Fatalf("ZDecrBy: %v", err)
	}
	if newScore != 3 {
		t.Fatalf("ZDecrBy result = %d, want 3", newScore)
	}
}

func TestZRemRemovesOnlyGivenMembers(t *testing.T) {
	t.Parallel()
	c := newTestClient(t)

	if err := c.ZAdd("z", 1, "a"); err != nil {
		t.Fatalf("ZAdd: %v", err)
	}
	if err := c.ZAdd("z", 2, "b"); err != nil {
		t.Fatalf("ZAdd: %v", err)
	}

	if err := c.ZRem("z", "a"); err != nil {
		t.Fatalf("ZRem: %v", err)
	}

	score, err := c.ZScore("z", "a")
	if err != nil {
		t.Fatalf("ZScore(a): %v", err)
	}
	if score != nil {
		t.Fatalf("ZScore(a) after ZRem = %v, want nil", score)
	}

	score, err = c.ZScore("z", "b")
	if err != nil {
		t.Fatalf("ZScore(b): %v", err)
	}
	if score == nil || *score != 2 {
		t.Fatalf("ZScore(b) after ZRem(a) = %v, want 2", score)
	}
}

func TestListRoundTrip(t *testing.T) {
	t.Parallel()
	c := newTestClient(t)

	if err := c.LRPush("l", wire.Int(1)); err != nil {
		t.Fatalf("LRPush: %v", err)
	}
	if err := c.LRPush("l", wire.Int(2)); err != nil {
		t.Fatalf("LRPush: %v", err)
	}
	got, err := c.LRange("l", 0, 2)
	if err != nil {
		t.Fatalf("LRange: %v", err)
	}
	if len(got) != 2 || got[0] != wire.Int(1) || got[1] != wire.Int(2) {
		t.Fatalf("LRange = %+v, want [Int(1), Int(2)]", got)
	}
}

func TestSetMembership(t *testing.T) {
	t.Parallel()
	c := newTestClient(t)

	if err := c.SAdd("s", "a", "b"); err != nil {
		t.Fatalf("SAdd: %v", err)
	}
	ok, err := c.SMember("s", "a")
	if err != nil {
		t.Fatalf("SMember: %v", err)
	}
	if !ok {
		t.Fatal("SMember(a) = false, want true")
	}
	ok, err = c.SMember("s", "z")
	if err != nil {
		t.Fatalf("SMember: %v", err)
	}
	if ok {
		t.Fatal("SMember(z) = true, want false")
	}
}

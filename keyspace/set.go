package keyspace

import (
	"math/rand"
	"time"

	"github.com/emberdb/emberdb/wire"
)

func withSet(k *Keyspace, key string, createIfAbsent bool, fn func(s map[string]struct{}) (wire.ServerResponse, error)) (wire.ServerResponse, error) {
	var e *entry
	if createIfAbsent {
		e, _ = k.getOrCreate(key, newSetEntry)
	} else {
		e = k.lookup(key)
		if e == nil {
			return fn(nil)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != KindSet {
		return wire.ServerResponse{}, &BadKeyTypeError{}
	}
	return fn(e.set)
}

func handleSExpire(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	k.setExpireAt(c.Key, time.Now().Add(time.Duration(c.Expire)*time.Second))
	return wire.Ok, nil
}

func handleSAdd(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withSet(k, c.Key, true, func(s map[string]struct{}) (wire.ServerResponse, error) {
		for _, m := range c.Members {
			s[m] = struct{}{}
		}
		return wire.Ok, nil
	})
}

func handleSAddNx(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	// Adding an already-present member to a set is already a no-op, so the
	// nx form behaves identically to plain SAdd.
	return handleSAdd(k, c)
}

func handleSAddEx(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	resp, err := withSet(k, c.Key, true, func(s map[string]struct{}) (wire.ServerResponse, error) {
		s[c.Member] = struct{}{}
		return wire.Ok, nil
	})
	if err != nil {
		return resp, err
	}
	k.setExpireAt(c.Key, time.Now().Add(time.Duration(c.Expire)*time.Second))
	return resp, nil
}

func handleSMember(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withSet(k, c.Key, false, func(s map[string]struct{}) (wire.ServerResponse, error) {
		if s == nil {
			return wire.OptIntResponse(nil), nil
		}
		if _, ok := s[c.Member]; ok {
			one := uint32(1)
			return wire.OptIntResponse(&one), nil
		}
		return wire.OptIntResponse(nil), nil
	})
}

func handleSMembers(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withSet(k, c.Key, false, func(s map[string]struct{}) (wire.ServerResponse, error) {
		out := make([]wire.ValueType, 0, len(s))
		for m := range s {
			out = append(out, wire.String(m))
		}
		return wire.BulkResponse(out), nil
	})
}

func handleSRem(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withSet(k, c.Key, false, func(s map[string]struct{}) (wire.ServerResponse, error) {
		for _, m := range c.Members {
			delete(s, m)
		}
		return wire.Ok, nil
	})
}

func handleSPop(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withSet(k, c.Key, false, func(s map[string]struct{}) (wire.ServerResponse, error) {
		members := make([]string, 0, len(s))
		for m := range s {
			members = append(members, m)
		}
		rand.Shuffle(len(members), func(i, j int) { members[i], members[j] = members[j], members[i] })

		n := c.Count
		if uint32(len(members)) < n {
			n = uint32(len(members))
		}
		out := make([]wire.ValueType, 0, n)
		for i := uint32(0); i < n; i++ {
			out = append(out, wire.String(members[i]))
			delete(s, members[i])
		}
		return wire.BulkResponse(out), nil
	})
}

package keyspace

import (
	"math"
	"time"

	"github.com/emberdb/emberdb/wire"
)

func handleExpire(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	k.setExpireAt(c.Key, time.Now().Add(time.Duration(c.Expire)*time.Second))
	return wire.Ok, nil
}

func handlePersist(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	k.setExpireAt(c.Key, time.Time{})
	return wire.Ok, nil
}

func handleTtl(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	e := k.lookup(c.Key)
	if e == nil {
		return wire.OptIntResponse(nil), nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return wire.OptIntResponse(e.ttl(time.Now())), nil
}

func handleDel(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	for _, key := range c.Keys {
		k.delete(key)
	}
	return wire.Ok, nil
}

func handleGet(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	e := k.lookup(c.Key)
	if e == nil {
		return wire.SingleResponse(wire.None), nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != KindScalar {
		return wire.ServerResponse{}, &BadKeyTypeError{}
	}
	return wire.SingleResponse(e.scalar), nil
}

func handleSet(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	if err := setScalar(k, c.Key, c.Value); err != nil {
		return wire.ServerResponse{}, err
	}
	return wire.Ok, nil
}

func handleSetEx(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	if err := setScalar(k, c.Key, c.Value); err != nil {
		return wire.ServerResponse{}, err
	}
	if !c.Value.IsNone() {
		k.setExpireAt(c.Key, time.Now().Add(time.Duration(c.Expire)*time.Second))
	}
	return wire.Ok, nil
}

func handleSetNx(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	e := k.lookup(c.Key)
	if e != nil {
		return wire.Ok, nil
	}
	if err := setScalar(k, c.Key, c.Value); err != nil {
		return wire.ServerResponse{}, err
	}
	return wire.Ok, nil
}

func handleMSet(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	for i, key := range c.Keys {
		if i >= len(c.Values) {
			break
		}
		if err := setScalar(k, key, c.Values[i]); err != nil {
			return wire.ServerResponse{}, err
		}
	}
	return wire.Ok, nil
}

func handleMSetNx(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	for i, key := range c.Keys {
		if i >= len(c.Values) {
			break
		}
		if k.lookup(key) != nil {
			continue
		}
		if err := setScalar(k, key, c.Values[i]); err != nil {
			return wire.ServerResponse{}, err
		}
	}
	return wire.Ok, nil
}

func handleGetSet(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	if !c.Value.IsNone() {
		// Swap under one hold of the entry lock so no other write can land
		// between reading the old value and storing the new one.
		e, created := k.getOrCreate(c.Key, func() *entry { return newScalarEntry(c.Value) })
		if created {
			return wire.SingleResponse(wire.None), nil
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		if e.kind != KindScalar {
			return wire.ServerResponse{}, &BadKeyTypeError{}
		}
		old := e.scalar
		e.scalar = c.Value
		return wire.SingleResponse(old), nil
	}

	e := k.lookup(c.Key)
	old := wire.None
	if e != nil {
		e.mu.Lock()
		if e.kind != KindScalar {
			e.mu.Unlock()
			return wire.ServerResponse{}, &BadKeyTypeError{}
		}
		old = e.scalar
		e.mu.Unlock()
	}
	if err := setScalar(k, c.Key, c.Value); err != nil {
		return wire.ServerResponse{}, err
	}
	return wire.SingleResponse(old), nil
}

func handleGetEx(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	e := k.lookup(c.Key)
	if e == nil {
		return wire.SingleResponse(wire.None), nil
	}
	e.mu.Lock()
	if e.kind != KindScalar {
		e.mu.Unlock()
		return wire.ServerResponse{}, &BadKeyTypeError{}
	}
	v := e.scalar
	e.mu.Unlock()
	k.setExpireAt(c.Key, time.Now().Add(time.Duration(c.Expire)*time.Second))
	return wire.SingleResponse(v), nil
}

func handleGetDel(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	var out []wire.ValueType
	for _, key := range c.Keys {
		e := k.lookup(key)
		if e == nil {
			continue
		}
		e.mu.Lock()
		if e.kind != KindScalar {
			e.mu.Unlock()
			continue
		}
		v := e.scalar
		e.mu.Unlock()
		k.delete(key)
		out = append(out, v)
	}
	return wire.BulkResponse(out), nil
}

func handleMGet(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	var out []wire.ValueType
	for _, key := range c.Keys {
		e := k.lookup(key)
		if e == nil {
			continue
		}
		e.mu.Lock()
		if e.kind != KindScalar {
			e.mu.Unlock()
			continue
		}
		out = append(out, e.scalar)
		e.mu.Unlock()
	}
	return wire.BulkResponse(out), nil
}

func handleIncr(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return incrByScalar(k, c.Key, 1)
}

func handleIncrBy(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	by, err := positiveDelta(c.By)
	if err != nil {
		return wire.ServerResponse{}, err
	}
	return incrByScalar(k, c.Key, by)
}

func handleDecr(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return incrByScalar(k, c.Key, -1)
}

func handleDecrBy(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	by, err := positiveDelta(c.By)
	if err != nil {
		return wire.ServerResponse{}, err
	}
	return incrByScalar(k, c.Key, -by)
}

// positiveDelta converts a wire by parameter into a signed delta, rejecting
// values that overflow a positive i32.
func positiveDelta(by uint32) (int32, error) {
	if by > math.MaxInt32 {
		return 0, badState("by parameter exceeds i32::MAX")
	}
	return int32(by), nil
}

// setScalar overwrites key with v, deleting the key instead when v is None,
// and fails with BadKeyType if key holds a non-scalar composite.
func setScalar(k *Keyspace, key string, v wire.ValueType) error {
	if v.IsNone() {
		k.delete(key)
		return nil
	}
	e, created := k.getOrCreate(key, func() *entry { return newScalarEntry(v) })
	if created {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != KindScalar {
		return &BadKeyTypeError{}
	}
	e.scalar = v
	return nil
}

// incrByScalar applies delta to the Int at key, creating the key at delta
// if absent, and returns the resulting value as Single{Int(...)}.
func incrByScalar(k *Keyspace, key string, delta int32) (wire.ServerResponse, error) {
	e, created := k.getOrCreate(key, func() *entry { return newScalarEntry(wire.Int(delta)) })
	if created {
		return wire.SingleResponse(wire.Int(delta)), nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != KindScalar || e.scalar.Kind != wire.KindInt {
		return wire.ServerResponse{}, &BadKeyTypeError{}
	}

	sum := int64(e.scalar.Int) + int64(delta)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		return wire.ServerResponse{}, badState("numeric overflow on incr/decr")
	}
	e.scalar = wire.Int(int32(sum))
	return wire.SingleResponse(e.scalar), nil
}

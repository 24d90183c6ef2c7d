package keyspace

import (
	"math/rand"
	"time"

	"github.com/emberdb/emberdb/wire"
)

// withHash resolves key to a Map-kind entry, creating it via newHashEntry
// when createIfAbsent is true, and runs fn with the entry's lock held. If
// the key holds a non-Map composite, fn never runs and BadKeyType is
// returned.
func withHash(k *Keyspace, key string, createIfAbsent bool, fn func(h map[string]wire.ValueType) (wire.ServerResponse, error)) (wire.ServerResponse, error) {
	var e *entry
	if createIfAbsent {
		e, _ = k.getOrCreate(key, newHashEntry)
	} else {
		e = k.lookup(key)
		if e == nil {
			return fn(nil)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != KindMap {
		return wire.ServerResponse{}, &BadKeyTypeError{}
	}
	return fn(e.hash)
}

func handleHExpire(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	k.setExpireAt(c.Key, time.Now().Add(time.Duration(c.Expire)*time.Second))
	return wire.Ok, nil
}

func handleHSet(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withHash(k, c.Key, true, func(h map[string]wire.ValueType) (wire.ServerResponse, error) {
		if c.Value.IsNone() {
			delete(h, c.Field)
		} else {
			h[c.Field] = c.Value
		}
		return wire.Ok, nil
	})
}

func handleHSetNx(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withHash(k, c.Key, true, func(h map[string]wire.ValueType) (wire.ServerResponse, error) {
		if _, ok := h[c.Field]; ok {
			return wire.Ok, nil
		}
		h[c.Field] = c.Value
		return wire.Ok, nil
	})
}

func handleHSetEx(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	resp, err := withHash(k, c.Key, true, func(h map[string]wire.ValueType) (wire.ServerResponse, error) {
		h[c.Field] = c.Value
		return wire.Ok, nil
	})
	if err != nil {
		return resp, err
	}
	k.setExpireAt(c.Key, time.Now().Add(time.Duration(c.Expire)*time.Second))
	return resp, nil
}

func handleHMSet(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withHash(k, c.Key, true, func(h map[string]wire.ValueType) (wire.ServerResponse, error) {
		for _, p := range c.FieldPairs {
			h[p.Field] = p.Value
		}
		return wire.Ok, nil
	})
}

func handleHMSetNx(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withHash(k, c.Key, true, func(h map[string]wire.ValueType) (wire.ServerResponse, error) {
		for _, p := range c.FieldPairs {
			if _, ok := h[p.Field]; ok {
				continue
			}
			h[p.Field] = p.Value
		}
		return wire.Ok, nil
	})
}

func handleHGet(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withHash(k, c.Key, false, func(h map[string]wire.ValueType) (wire.ServerResponse, error) {
		if v, ok := h[c.Field]; ok {
			return wire.SingleResponse(v), nil
		}
		return wire.SingleResponse(wire.None), nil
	})
}

func handleHExists(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withHash(k, c.Key, false, func(h map[string]wire.ValueType) (wire.ServerResponse, error) {
		if _, ok := h[c.Field]; ok {
			one := uint32(1)
			return wire.OptIntResponse(&one), nil
		}
		return wire.OptIntResponse(nil), nil
	})
}

func handleHGetAll(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withHash(k, c.Key, false, func(h map[string]wire.ValueType) (wire.ServerResponse, error) {
		out := make([]wire.ValueType, 0, len(h)*2)
		for field, v := range h {
			out = append(out, wire.String(field), v)
		}
		return wire.BulkResponse(out), nil
	})
}

func handleHMGet(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withHash(k, c.Key, false, func(h map[string]wire.ValueType) (wire.ServerResponse, error) {
		var out []wire.ValueType
		for _, f := range c.Fields {
			if v, ok := h[f]; ok {
				out = append(out, v)
			}
		}
		return wire.BulkResponse(out), nil
	})
}

func handleHKeys(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withHash(k, c.Key, false, func(h map[string]wire.ValueType) (wire.ServerResponse, error) {
		out := make([]wire.ValueType, 0, len(h))
		for field := range h {
			out = append(out, wire.String(field))
		}
		return wire.BulkResponse(out), nil
	})
}

func handleHValues(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withHash(k, c.Key, false, func(h map[string]wire.ValueType) (wire.ServerResponse, error) {
		out := make([]wire.ValueType, 0, len(h))
		for _, v := range h {
			out = append(out, v)
		}
		return wire.BulkResponse(out), nil
	})
}

func handleHLen(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withHash(k, c.Key, false, func(h map[string]wire.ValueType) (wire.ServerResponse, error) {
		n := uint32(len(h))
		return wire.OptIntResponse(&n), nil
	})
}

func handleHDel(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withHash(k, c.Key, false, func(h map[string]wire.ValueType) (wire.ServerResponse, error) {
		for _, f := range c.Fields {
			delete(h, f)
		}
		return wire.Ok, nil
	})
}

func handleHDelGet(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withHash(k, c.Key, false, func(h map[string]wire.ValueType) (wire.ServerResponse, error) {
		var out []wire.ValueType
		for _, f := range c.Fields {
			if v, ok := h[f]; ok {
				out = append(out, v)
				delete(h, f)
			}
		}
		return wire.BulkResponse(out), nil
	})
}

func handleHPopRand(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withHash(k, c.Key, false, func(h map[string]wire.ValueType) (wire.ServerResponse, error) {
		fields := make([]string, 0, len(h))
		for f := range h {
			fields = append(fields, f)
		}
		rand.Shuffle(len(fields), func(i, j int) { fields[i], fields[j] = fields[j], fields[i] })

		n := c.Count
		if uint32(len(fields)) < n {
			n = uint32(len(fields))
		}
		out := make([]wire.ValueType, 0, n)
		for i := uint32(0); i < n; i++ {
			out = append(out, h[fields[i]])
			delete(h, fields[i])
		}
		return wire.BulkResponse(out), nil
	})
}

func handleHIncr(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return incrByHashField(k, c.Key, c.Field, 1)
}

func handleHDecr(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return incrByHashField(k, c.Key, c.Field, -1)
}

func handleHIncrBy(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	by, err := positiveDelta(c.By)
	if err != nil {
		return wire.ServerResponse{}, err
	}
	return incrByHashField(k, c.Key, c.Field, by)
}

func handleHDecrBy(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	by, err := positiveDelta(c.By)
	if err != nil {
		return wire.ServerResponse{}, err
	}
	return incrByHashField(k, c.Key, c.Field, -by)
}

func incrByHashField(k *Keyspace, key, field string, delta int32) (wire.ServerResponse, error) {
	e, _ := k.getOrCreate(key, newHashEntry)
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.kind != KindMap {
		return wire.ServerResponse{}, &BadKeyTypeError{}
	}

	cur, ok := e.hash[field]
	if !ok {
		e.hash[field] = wire.Int(delta)
		return wire.SingleResponse(e.hash[field]), nil
	}
	if cur.Kind != wire.KindInt {
		return wire.ServerResponse{}, &BadKeyTypeError{}
	}

	sum := int64(cur.Int) + int64(delta)
	if sum > int64(1<<31-1) || sum < -int64(1<<31) {
		return wire.ServerResponse{}, badState("numeric overflow on hincr/hdecr")
	}
	e.hash[field] = wire.Int(int32(sum))
	return wire.SingleResponse(e.hash[field]), nil
}

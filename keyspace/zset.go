package keyspace

import (
	"time"

	"github.com/emberdb/emberdb/wire"
)

func withZSet(k *Keyspace, key string, createIfAbsent bool, fn func(z *orderedSet) (wire.ServerResponse, error)) (wire.ServerResponse, error) {
	var e *entry
	if createIfAbsent {
		e, _ = k.getOrCreate(key, newOrderedSetEntry)
	} else {
		e = k.lookup(key)
		if e == nil {
			return fn(nil)
		}
	}

	e.mu.Lock()
	kind := e.kind
	z := e.zset
	e.mu.Unlock()
	if kind != KindOrderedSet {
		return wire.ServerResponse{}, &BadKeyTypeError{}
	}
	return fn(z)
}

func handleZExpire(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	k.setExpireAt(c.Key, time.Now().Add(time.Duration(c.Expire)*time.Second))
	return wire.Ok, nil
}

func handleZAdd(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	score, err := positiveDelta(c.Score)
	if err != nil {
		return wire.ServerResponse{}, err
	}
	return withZSet(k, c.Key, true, func(z *orderedSet) (wire.ServerResponse, error) {
		z.add(c.Member, score, false)
		return wire.Ok, nil
	})
}

func handleZAddNx(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	score, err := positiveDelta(c.Score)
	if err != nil {
		return wire.ServerResponse{}, err
	}
	return withZSet(k, c.Key, true, func(z *orderedSet) (wire.ServerResponse, error) {
		z.add(c.Member, score, true)
		return wire.Ok, nil
	})
}

func handleZIncrBy(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return zAddBy(k, c, 1)
}

func handleZDecrBy(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return zAddBy(k, c, -1)
}

func zAddBy(k *Keyspace, c wire.ClientCommand, sign int32) (wire.ServerResponse, error) {
	delta, err := positiveDelta(c.Score)
	if err != nil {
		return wire.ServerResponse{}, err
	}
	return withZSet(k, c.Key, true, func(z *orderedSet) (wire.ServerResponse, error) {
		newScore := z.addBy(c.Member, delta*sign)
		return wire.SingleResponse(wire.Int(newScore)), nil
	})
}

func handleZScore(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withZSet(k, c.Key, false, func(z *orderedSet) (wire.ServerResponse, error) {
		if z == nil {
			return wire.OptIntResponse(nil), nil
		}
		score, ok := z.score(c.Member)
		if !ok {
			return wire.OptIntResponse(nil), nil
		}
		v := uint32(score)
		return wire.OptIntResponse(&v), nil
	})
}

func handleZMScore(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withZSet(k, c.Key, false, func(z *orderedSet) (wire.ServerResponse, error) {
		var out []wire.ValueType
		if z == nil {
			return wire.BulkResponse(out), nil
		}
		for _, m := range c.Members {
			if score, ok := z.score(m); ok {
				out = append(out, wire.Int(score))
			}
		}
		return wire.BulkResponse(out), nil
	})
}

func handleZRem(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withZSet(k, c.Key, false, func(z *orderedSet) (wire.ServerResponse, error) {
		if z != nil {
			z.remove(c.Member)
		}
		return wire.Ok, nil
	})
}

func handleZPopMin(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return zPop(k, c, false)
}

func handleZPopMax(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return zPop(k, c, true)
}

func zPop(k *Keyspace, c wire.ClientCommand, fromMax bool) (wire.ServerResponse, error) {
	return withZSet(k, c.Key, false, func(z *orderedSet) (wire.ServerResponse, error) {
		if z == nil {
			return wire.BulkResponse(nil), nil
		}
		var popped []zmember
		if fromMax {
			popped = z.popMax(c.Count)
		} else {
			popped = z.popMin(c.Count)
		}
		out := make([]wire.ValueType, 0, len(popped)*2)
		for _, m := range popped {
			out = append(out, wire.String(m.member), wire.Int(m.score))
		}
		return wire.BulkResponse(out), nil
	})
}

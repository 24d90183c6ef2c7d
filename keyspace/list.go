package keyspace

import (
	"time"

	"github.com/emberdb/emberdb/dlist"
	"github.com/emberdb/emberdb/wire"
)

func withList(k *Keyspace, key string, createIfAbsent bool, fn func(l *dlist.List[wire.ValueType]) (wire.ServerResponse, error)) (wire.ServerResponse, error) {
	var e *entry
	if createIfAbsent {
		e, _ = k.getOrCreate(key, newListEntry)
	} else {
		e = k.lookup(key)
		if e == nil {
			return fn(nil)
		}
	}

	e.mu.Lock()
	kind := e.kind
	l := e.list
	e.mu.Unlock()
	if kind != KindList {
		return wire.ServerResponse{}, &BadKeyTypeError{}
	}
	return fn(l)
}

func handleLExpire(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	k.setExpireAt(c.Key, time.Now().Add(time.Duration(c.Expire)*time.Second))
	return wire.Ok, nil
}

func handleLLPush(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withList(k, c.Key, true, func(l *dlist.List[wire.ValueType]) (wire.ServerResponse, error) {
		l.PushFront(c.Value)
		return wire.Ok, nil
	})
}

func handleLRPush(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withList(k, c.Key, true, func(l *dlist.List[wire.ValueType]) (wire.ServerResponse, error) {
		l.PushBack(c.Value)
		return wire.Ok, nil
	})
}

func handleLLPushNx(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	if k.lookup(c.Key) != nil {
		return wire.Ok, nil
	}
	return handleLLPush(k, c)
}

func handleLRPushNx(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	if k.lookup(c.Key) != nil {
		return wire.Ok, nil
	}
	return handleLRPush(k, c)
}

func handleLLPushEx(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	resp, err := handleLLPush(k, c)
	if err != nil {
		return resp, err
	}
	k.setExpireAt(c.Key, time.Now().Add(time.Duration(c.Expire)*time.Second))
	return resp, nil
}

func handleLRPushEx(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	resp, err := handleLRPush(k, c)
	if err != nil {
		return resp, err
	}
	k.setExpireAt(c.Key, time.Now().Add(time.Duration(c.Expire)*time.Second))
	return resp, nil
}

func handleLLPop(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withList(k, c.Key, false, func(l *dlist.List[wire.ValueType]) (wire.ServerResponse, error) {
		return popN(l, c.Count, true), nil
	})
}

func handleLRPop(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withList(k, c.Key, false, func(l *dlist.List[wire.ValueType]) (wire.ServerResponse, error) {
		return popN(l, c.Count, false), nil
	})
}

func popN(l *dlist.List[wire.ValueType], count uint32, fromFront bool) wire.ServerResponse {
	if l == nil {
		return wire.BulkResponse(nil)
	}
	out := make([]wire.ValueType, 0, count)
	for i := uint32(0); i < count; i++ {
		var v wire.ValueType
		var ok bool
		if fromFront {
			v, ok = l.PopFront()
		} else {
			v, ok = l.PopBack()
		}
		if !ok {
			break
		}
		out = append(out, v)
	}
	return wire.BulkResponse(out)
}

// handleLRange returns the half-open range [start, end) of the list,
// clamped to its bounds. Indices arrive as u32 on the wire, so negative
// indexing is not representable and isn't supported.
func handleLRange(k *Keyspace, c wire.ClientCommand) (wire.ServerResponse, error) {
	return withList(k, c.Key, false, func(l *dlist.List[wire.ValueType]) (wire.ServerResponse, error) {
		if l == nil {
			return wire.BulkResponse(nil), nil
		}
		all := l.ToSlice()
		start := int(c.Start)
		end := int(c.End)
		if start > len(all) {
			start = len(all)
		}
		if end > len(all) {
			end = len(all)
		}
		if start >= end {
			return wire.BulkResponse(nil), nil
		}
		out := make([]wire.ValueType, end-start)
		copy(out, all[start:end])
		return wire.BulkResponse(out), nil
	})
}

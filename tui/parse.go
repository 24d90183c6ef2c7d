package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emberdb/emberdb/wire"
)

// parseCommand turns one line of REPL input into a ClientCommand. It covers
// the commands most useful interactively; commands with richer argument
// shapes (field-pair bulk writes, nx/ex variants) are reachable through the
// client package but not this parser.
func parseCommand(line string) (wire.ClientCommand, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return wire.ClientCommand{}, fmt.Errorf("empty command")
	}
	verb := strings.ToUpper(fields[0])
	args := fields[1:]

	need := func(n int) error {
		if len(args) < n {
			return fmt.Errorf("%s: expected at least %d argument(s), got %d", verb, n, len(args))
		}
		return nil
	}

	switch verb {
	case "GET":
		if err := need(1); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpGet, Key: args[0]}, nil

	case "SET":
		if err := need(2); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpSet, Key: args[0], Value: parseValue(strings.Join(args[1:], " "))}, nil

	case "DEL":
		if err := need(1); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpDel, Keys: args}, nil

	case "INCR":
		if err := need(1); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpIncr, Key: args[0]}, nil

	case "INCRBY":
		if err := need(2); err != nil {
			return wire.ClientCommand{}, err
		}
		by, err := parseU32(args[1])
		if err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpIncrBy, Key: args[0], By: by}, nil

	case "DECR":
		if err := need(1); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpDecr, Key: args[0]}, nil

	case "DECRBY":
		if err := need(2); err != nil {
			return wire.ClientCommand{}, err
		}
		by, err := parseU32(args[1])
		if err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpDecrBy, Key: args[0], By: by}, nil

	case "EXPIRE":
		if err := need(2); err != nil {
			return wire.ClientCommand{}, err
		}
		secs, err := parseU32(args[1])
		if err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpExpire, Key: args[0], Expire: secs}, nil

	case "TTL":
		if err := need(1); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpTtl, Key: args[0]}, nil

	case "PERSIST":
		if err := need(1); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpPersist, Key: args[0]}, nil

	case "HSET":
		if err := need(3); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpHSet, Key: args[0], Field: args[1], Value: parseValue(strings.Join(args[2:], " "))}, nil

	case "HGET":
		if err := need(2); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpHGet, Key: args[0], Field: args[1]}, nil

	case "HDEL":
		if err := need(2); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpHDel, Key: args[0], Fields: args[1:]}, nil

	case "HGETALL":
		if err := need(1); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpHGetAll, Key: args[0]}, nil

	case "LPUSH":
		if err := need(2); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpLLPush, Key: args[0], Value: parseValue(strings.Join(args[1:], " "))}, nil

	case "RPUSH":
		if err := need(2); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpLRPush, Key: args[0], Value: parseValue(strings.Join(args[1:], " "))}, nil

	case "LPOP":
		key, count := args[0], uint32(1)
		if len(args) > 1 {
			var err error
			if count, err = parseU32(args[1]); err != nil {
				return wire.ClientCommand{}, err
			}
		}
		return wire.ClientCommand{Op: wire.OpLLPop, Key: key, Count: count}, nil

	case "RPOP":
		key, count := args[0], uint32(1)
		if len(args) > 1 {
			var err error
			if count, err = parseU32(args[1]); err != nil {
				return wire.ClientCommand{}, err
			}
		}
		return wire.ClientCommand{Op: wire.OpLRPop, Key: key, Count: count}, nil

	case "LRANGE":
		if err := need(3); err != nil {
			return wire.ClientCommand{}, err
		}
		start, err := parseU32(args[1])
		if err != nil {
			return wire.ClientCommand{}, err
		}
		end, err := parseU32(args[2])
		if err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpLRange, Key: args[0], Start: start, End: end}, nil

	case "SADD":
		if err := need(2); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpSAdd, Key: args[0], Members: args[1:]}, nil

	case "SREM":
		if err := need(2); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpSRem, Key: args[0], Members: args[1:]}, nil

	case "SMEMBER":
		if err := need(2); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpSMember, Key: args[0], Member: args[1]}, nil

	case "SMEMBERS":
		if err := need(1); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpSMembers, Key: args[0]}, nil

	case "ZADD":
		if err := need(3); err != nil {
			return wire.ClientCommand{}, err
		}
		score, err := parseU32(args[1])
		if err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpZAdd, Key: args[0], Score: score, Member: args[2]}, nil

	case "ZSCORE":
		if err := need(2); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpZScore, Key: args[0], Member: args[1]}, nil

	case "ZPOPMIN":
		key, count := args[0], uint32(1)
		if len(args) > 1 {
			var err error
			if count, err = parseU32(args[1]); err != nil {
				return wire.ClientCommand{}, err
			}
		}
		return wire.ClientCommand{Op: wire.OpZPopMin, Key: key, Count: count}, nil

	case "ZPOPMAX":
		key, count := args[0], uint32(1)
		if len(args) > 1 {
			var err error
			if count, err = parseU32(args[1]); err != nil {
				return wire.ClientCommand{}, err
			}
		}
		return wire.ClientCommand{Op: wire.OpZPopMax, Key: key, Count: count}, nil

	case "MGET":
		if err := need(1); err != nil {
			return wire.ClientCommand{}, err
		}
		return wire.ClientCommand{Op: wire.OpMGet, Keys: args}, nil

	default:
		return wire.ClientCommand{}, fmt.Errorf("unknown command %q", fields[0])
	}
}

// parseValue interprets s as an Int if it parses cleanly as a signed
// 32-bit integer, otherwise as a String.
func parseValue(s string) wire.ValueType {
	if n, err := strconv.ParseInt(s, 10, 32); err == nil {
		return wire.Int(int32(n))
	}
	return wire.String(s)
}

func parseU32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("expected a non-negative integer, got %q", s)
	}
	return uint32(n), nil
}

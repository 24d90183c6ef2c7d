package client

import "github.com/emberdb/emberdb/wire"

// ZExpire sets the whole sorted set key's TTL to seconds from now.
func (c *Client) ZExpire(key string, seconds uint32) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpZExpire, Key: key, Expire: seconds})
	return err
}

// ZAdd sets member's score within sorted set key. score is a non-negative
// magnitude; negative scores only arise from ZIncrBy/ZDecrBy.
func (c *Client) ZAdd(key string, score uint32, member string) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpZAdd, Key: key, Score: score, Member: member})
	return err
}

// ZAddNx sets member's score within sorted set key only if member is absent.
func (c *Client) ZAddNx(key string, score uint32, member string) error {
	_, err := c.send(wire.ClientCommand{Op: wire.OpZAddNx, Key: key, Score: score, Member: member})
	return err
}

// ZIncrBy adds score to member's existing score within sorted set key and
// returns the new score.
func (c *Client) ZIncrBy(key string, score uint32, member string) (int32, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpZIncrBy, Key: key, Score: score, Member: member})
	return resp.Value.Int, err
}

// ZDecrBy subtracts score from member's existing score within sorted set
// key and returns the new score.
func (c *Client) ZDecrBy(key string, score uint32, member string) (int32, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpZDecrBy, Key: key, Score: score, Member: member})
	return resp.Value.Int, err
}

// ZScore returns member's score within sorted set key, or nil if absent.
func (c *Client) ZScore(key, member string) (*int32, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpZScore, Key: key, Member: member})
	return optIntPtrAsInt32Ptr(resp.OptInt), err
}

// ZMScore returns the scores for members within sorted set key, omitting
// absent members.
func (c *Client) ZMScore(key string, members ...string) ([]wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpZMScore, Key: key, Members: members})
	return resp.Values, err
}

// ZRem removes members from sorted set key.
func (c *Client) ZRem(key string, members ...string) error {
	for _, member := range members {
		if _, err := c.send(wire.ClientCommand{Op: wire.OpZRem, Key: key, Member: member}); err != nil {
			return err
		}
	}
	return nil
}

// ZPopMin removes and returns up to count lowest-scored members from sorted
// set key, flattened as alternating member, score entries.
func (c *Client) ZPopMin(key string, count uint32) ([]wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpZPopMin, Key: key, Count: count})
	return resp.Values, err
}

// ZPopMax removes and returns up to count highest-scored members from
// sorted set key, flattened as alternating member, score entries.
func (c *Client) ZPopMax(key string, count uint32) ([]wire.ValueType, error) {
	resp, err := c.send(wire.ClientCommand{Op: wire.OpZPopMax, Key: key, Count: count})
	return resp.Values, err
}

func optIntPtrAsInt32Ptr(v *uint32) *int32 {
	if v == nil {
		return nil
	}
	s := int32(*v)
	return &s
}
